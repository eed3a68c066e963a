// Package assemble turns raw captures into typed records.
package assemble

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Matheusmno/MWebCrawler/internal/patterns"
	"golang.org/x/net/html"
)

// ErrMalformedNumber means a capture that should be an integer is not one,
// which usually means a rule has drifted from the page layout.
var ErrMalformedNumber = errors.New("malformed number")

type ParseError struct {
	Field string
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %s", e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Int parses an unsigned base-10 integer, it never defaults to zero.
// Counts on the pages are never signed, so a sign is malformed.
func Int(field, text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "+") || strings.HasPrefix(trimmed, "-") {
		return 0, &ParseError{
			Field: field,
			Text:  text,
			Err:   fmt.Errorf("%w: signed value", ErrMalformedNumber),
		}
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{
			Field: field,
			Text:  text,
			Err:   fmt.Errorf("%w: %w", ErrMalformedNumber, err),
		}
	}
	return n, nil
}

// IntField parses the named field of a capture with Int.
func IntField(c patterns.Capture, field string) (int, error) {
	return Int(field, c.Field(field))
}

var (
	lineBreak  = regexp.MustCompile(`(?i)<br\s*/?>`)
	whitespace = regexp.MustCompile(`[\s\p{Zs}]+`)
	lineSpaces = regexp.MustCompile(`[ \t\p{Zs}]+`)
)

// Name normalizes a short text field: line breaks become spaces, entities
// are decoded and whitespace is collapsed.
func Name(text string) string {
	text = lineBreak.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// LongText normalizes a multi-line field such as a syllabus: line breaks
// become newlines and entities are decoded.
func LongText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = lineBreak.ReplaceAllString(text, "\n")
	text = html.UnescapeString(text)
	text = lineSpaces.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
