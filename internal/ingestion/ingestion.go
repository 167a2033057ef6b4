// Package ingestion reads the free-form input text the pipeline analyzes.
// Inputs are plain text by default; HTML files are stripped down to their
// visible text so pasted web pages work too.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// stdinPath is the conventional path meaning "read from standard input".
const stdinPath = "-"

// ReadInput loads input text from a file path, or from r when path is "-".
// HTML content is reduced to visible text; everything is whitespace
// normalized.
func ReadInput(path string, r io.Reader) (string, error) {
	var raw []byte
	var err error

	if path == stdinPath {
		raw, err = io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
	} else {
		raw, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
	}

	return Clean(string(raw))
}

// Clean normalizes raw input text. HTML is stripped to its visible text
// first; noise elements (scripts, styles, navigation) are dropped.
func Clean(content string) (string, error) {
	if LooksLikeHTML(content) {
		text, err := StripHTML(content)
		if err != nil {
			return "", err
		}
		content = text
	}
	return NormalizeWhitespace(content), nil
}

// htmlMarker matches an opening html/doctype/body tag near the start of the
// content. Plain text mentioning tags mid-document is not mistaken for HTML.
var htmlMarker = regexp.MustCompile(`(?i)^\s*(<!doctype\s+html|<html[\s>]|<body[\s>])`)

// LooksLikeHTML reports whether the content is an HTML document.
func LooksLikeHTML(content string) bool {
	return htmlMarker.MatchString(content)
}

// StripHTML extracts the visible text of an HTML document.
func StripHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer, header").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return NormalizeWhitespace(doc.Text()), nil
	}
	return NormalizeWhitespace(body.Text()), nil
}

var multiBlank = regexp.MustCompile(`\n{3,}`)
var innerSpace = regexp.MustCompile(`[ \t]+`)

// NormalizeWhitespace normalizes line endings, collapses runs of spaces and
// tabs, and limits consecutive blank lines to two.
func NormalizeWhitespace(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(innerSpace.ReplaceAllString(line, " "))
	}
	content = strings.Join(lines, "\n")
	content = multiBlank.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
