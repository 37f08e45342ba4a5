// Package llm wraps the generative model provider behind a narrow interface
// so the pipeline can be tested against a fake.
package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-1.5-flash"

// Options controls a single generation request.
type Options struct {
	// JSONMode asks the provider to emit a JSON document.
	JSONMode bool
	// Timeout bounds the request; zero means no extra deadline.
	Timeout time.Duration
	// MaxOutputTokens caps the response length; zero keeps the provider
	// default.
	MaxOutputTokens int32
	// Temperature sets sampling temperature. Zero is a valid low value for
	// deterministic output.
	Temperature float32
}

// Client is an abstraction over generative model providers.
type Client interface {
	// Generate produces text from a system instruction and a user prompt.
	Generate(ctx context.Context, system, user string, opts Options) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed client. An empty model name falls
// back to DefaultModel.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &UpstreamError{Message: "API key is required"}
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &UpstreamError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate produces text from a system instruction and a user prompt.
func (c *GeminiClient) Generate(ctx context.Context, system, user string, opts Options) (string, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(opts.Temperature)
	if opts.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxOutputTokens)
	}
	if opts.JSONMode {
		model.ResponseMIMEType = "application/json"
	}
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &TimeoutError{Message: "generation timed out", Cause: err}
		}
		return "", &UpstreamError{Message: "generation failed", Cause: err}
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse joins the text parts of the first candidate.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &UpstreamError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &UpstreamError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &UpstreamError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
