// Package extraction turns resume files into plain text for the pipeline.
// Plain text and markdown pass through, HTML is stripped to its text, and
// PDF and DOCX are decoded from their binary containers.
package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// Extractor produces the plain text of a resume file.
type Extractor interface {
	Extract(path string) (string, error)
}

// FileExtractor extracts text from local resume files, dispatching on the
// file extension.
type FileExtractor struct{}

// NewFileExtractor returns a FileExtractor.
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

// Extract reads the file at path and returns its plain text. The result is
// whitespace-normalized; an empty result is returned as-is and left to the
// caller to treat as fatal.
func (e *FileExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Message: fmt.Sprintf("failed to read resume file %s", path), Cause: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md", "":
		return normalizeWhitespace(string(data)), nil
	case ".html", ".htm":
		return extractHTML(data)
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	default:
		return "", &UnsupportedFormatError{Message: fmt.Sprintf("unsupported resume format %q", ext)}
	}
}

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ReadError{Message: "failed to parse HTML resume", Cause: err}
	}
	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
		sb.WriteString("\n")
	})
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fragment without a body element.
		text = doc.Text()
	}
	return normalizeWhitespace(text), nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ReadError{Message: "failed to open PDF resume", Cause: err}
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", &ReadError{Message: "failed to extract PDF text", Cause: err}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", &ReadError{Message: "failed to read PDF text", Cause: err}
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ReadError{Message: "failed to open DOCX resume", Cause: err}
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", &ReadError{Message: "failed to open DOCX document part", Cause: err}
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", &ReadError{Message: "failed to read DOCX document part", Cause: err}
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", &ReadError{Message: "no document.xml found in DOCX"}
	}

	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTags.ReplaceAllString(text, " ")
	return normalizeWhitespace(text), nil
}

var (
	xmlTags        = regexp.MustCompile(`<[^>]+>`)
	horizontalRuns = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns    = regexp.MustCompile(`\n{3,}`)
)

// normalizeWhitespace collapses horizontal whitespace runs and long blank
// stretches while keeping paragraph structure.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = horizontalRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
