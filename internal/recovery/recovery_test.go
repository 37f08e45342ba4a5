package recovery

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithRecoveryValidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"object", `{"name": "Ada"}`, map[string]any{"name": "Ada"}},
		{"array", `[1, 2, 3]`, []any{1.0, 2.0, 3.0}},
		{"nested", `{"skills": ["Go", "SQL"]}`, map[string]any{"skills": []any{"Go", "SQL"}}},
		{"brackets inside strings", `{"a": "curly } and ] inside", "b": [1]}`,
			map[string]any{"a": "curly } and ] inside", "b": []any{1.0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseWithRecovery(tt.input)
			require.NoError(t, err)
			assert.False(t, result.Recovered, "valid input should not report recovery")
			assert.Equal(t, tt.want, result.Value)
		})
	}
}

func TestParseWithRecoveryIdempotent(t *testing.T) {
	first, err := ParseWithRecovery("```json\n{\"a\": [1, 2,]}\n```")
	require.NoError(t, err)
	require.True(t, first.Recovered)

	reserialized, err := json.Marshal(first.Value)
	require.NoError(t, err)

	second, err := ParseWithRecovery(string(reserialized))
	require.NoError(t, err)
	assert.False(t, second.Recovered)
	assert.Equal(t, first.Value, second.Value)
}

func TestParseWithRecoveryFencedJSON(t *testing.T) {
	result, err := ParseWithRecovery("```json\n{\"role\": \"engineer\"}\n```")
	require.NoError(t, err)
	assert.True(t, result.Recovered)
	assert.Equal(t, map[string]any{"role": "engineer"}, result.Value)
}

func TestParseWithRecoveryTrailingCommaInFence(t *testing.T) {
	result, err := ParseWithRecovery("```json\n{\"skills\": [\"Go\",]}\n```")
	require.NoError(t, err)
	assert.True(t, result.Recovered)
	assert.Equal(t, map[string]any{"skills": []any{"Go"}}, result.Value)
}

func TestParseWithRecoveryRepairs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{
			name:  "truncated mid-string",
			input: `{"contact": {"fullName": "Jean Du`,
			want:  map[string]any{"contact": map[string]any{"fullName": "Jean Du"}},
		},
		{
			name:  "truncated after value",
			input: `{"skills": ["Go", "Rust"`,
			want:  map[string]any{"skills": []any{"Go", "Rust"}},
		},
		{
			name:  "smart quotes",
			input: "{“name”: “Ada”}",
			want:  map[string]any{"name": "Ada"},
		},
		{
			name:  "raw newline inside string",
			input: "{\"summary\": \"line one\nline two\"}",
			want:  map[string]any{"summary": "line one\nline two"},
		},
		{
			name:  "raw tab inside string",
			input: "{\"a\": \"x\ty\"}",
			want:  map[string]any{"a": "x\ty"},
		},
		{
			name:  "trailing comma bare array",
			input: `[1, 2,]`,
			want:  []any{1.0, 2.0},
		},
		{
			name:  "prose around the object",
			input: `Here is the extraction: {"name": "Ada"} — hope this helps!`,
			want:  map[string]any{"name": "Ada"},
		},
		{
			name:  "trailing comma then truncation",
			input: `{"skills": ["Go",`,
			want:  map[string]any{"skills": []any{"Go"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseWithRecovery(tt.input)
			require.NoError(t, err)
			assert.True(t, result.Recovered)
			assert.Equal(t, tt.want, result.Value)
		})
	}
}

func TestParseWithRecoveryFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
		{"no json at all", "I could not extract anything, sorry."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseWithRecovery(tt.input)
			assert.Nil(t, result)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestBalancedSlice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain object", `{"a": 1}`, `{"a": 1}`, true},
		{"object with suffix", `{"a": 1} trailing`, `{"a": 1}`, true},
		{"object with prefix", `note: {"a": 1}`, `{"a": 1}`, true},
		{"array", `xs = [1, [2]] end`, `[1, [2]]`, true},
		{"brackets in string ignored", `{"a": "}]"}`, `{"a": "}]"}`, true},
		{"escaped quote in string", `{"a": "say \" }"} rest`, `{"a": "say \" }"}`, true},
		{"unbalanced", `{"a": [1`, "", false},
		{"no opener", "plain text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := balancedSlice(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForceClose(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"balanced untouched", `{"a": 1}`, `{"a": 1}`},
		{"open string and brace", `{"a": "b`, `{"a": "b"}`},
		{"nested brackets", `{"a": [1, {"b": 2`, `{"a": [1, {"b": 2}]}`},
		{"open string with escape", `{"a": "x\"y`, `{"a": "x\"y"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, forceClose(tt.input))
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"fence hugging braces", "```{\"a\": 1}```", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.input))
		})
	}
}
