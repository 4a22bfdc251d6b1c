package markdown

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var (
	engine = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	sanitizer = bluemonday.UGCPolicy()

	// Only the first match is ever used.
	imageRef = regexp.MustCompile(`!\[.*?]\((.*?)\)`)
)

// ToHTML converts a markdown body to sanitized HTML. Raw HTML in the body is
// dropped by goldmark's safe default before sanitizing.
func ToHTML(body string) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// FirstImage returns the target of the first ![alt](path) reference in body.
func FirstImage(body string) (string, bool) {
	m := imageRef.FindStringSubmatch(body)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}
