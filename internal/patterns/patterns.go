// Package patterns holds the declarative extraction rules for Matrícula Web
// pages and the extractor that runs them.
//
// A Rule is a regular expression plus the names of its capture groups. Rules
// are grouped by Kind in a Registry, so adapting to a page layout change
// means registering a different rule for the affected kind, the code that
// consumes the captures does not change.
package patterns

import (
	"fmt"
	"regexp"
)

// Kind identifies one extraction step, e.g. "the discipline lines of a
// curriculum block".
type Kind string

type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	// Fields names each capture group of Pattern, in order.
	Fields []string
}

// NewRule compiles `pattern` and panics if it is invalid or if the number
// of capture groups does not match the number of field names.
func NewRule(name, pattern string, fields ...string) *Rule {
	re := regexp.MustCompile(pattern)
	if re.NumSubexp() != len(fields) {
		panic(fmt.Sprintf(
			"rule %s: pattern has %d groups but %d fields were named",
			name, re.NumSubexp(), len(fields),
		))
	}
	return &Rule{Name: name, Pattern: re, Fields: fields}
}

func (r *Rule) index(field string) int {
	for i, f := range r.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

// HasField reports whether the rule declares a field with the given name.
func (r *Rule) HasField(field string) bool {
	return r.index(field) >= 0
}

func (r *Rule) String() string {
	return r.Name
}

// Capture is the result of one match of a rule, with one value per field.
// A group that did not participate in the match is "".
type Capture struct {
	Rule   *Rule
	Values []string
}

// Field returns the value captured for the named field. Asking for a field
// the rule does not declare is a programming error and panics.
func (c Capture) Field(name string) string {
	i := c.Rule.index(name)
	if i < 0 {
		panic(fmt.Sprintf("rule %s has no field %q", c.Rule.Name, name))
	}
	return c.Values[i]
}

// Registry maps every kind to the rules that can extract it, in order of
// preference.
type Registry map[Kind][]*Rule

// Rules returns the rules registered for a kind.
func (r Registry) Rules(kind Kind) []*Rule {
	return r[kind]
}

// Extract runs the rules registered for `kind` in order and returns the
// captures of the first one that matches anything.
func (r Registry) Extract(kind Kind, text string) []Capture {
	for _, rule := range r[kind] {
		captures := Extract(rule, text)
		if len(captures) > 0 {
			return captures
		}
	}
	return nil
}

// ExtractEach runs the rules for `kind` over the named field of every outer
// capture, the result is aligned with `outer`.
func (r Registry) ExtractEach(outer []Capture, field string, kind Kind) [][]Capture {
	out := make([][]Capture, len(outer))
	for i, c := range outer {
		out[i] = r.Extract(kind, c.Field(field))
	}
	return out
}

// Validate checks that every kind in `required` has at least one rule and
// that all of its rules declare the given fields.
func (r Registry) Validate(required map[Kind][]string) error {
	for kind, fields := range required {
		rules := r[kind]
		if len(rules) == 0 {
			return fmt.Errorf("no rule registered for %s", kind)
		}
		for _, rule := range rules {
			for _, f := range fields {
				if !rule.HasField(f) {
					return fmt.Errorf("rule %s for %s does not declare field %q", rule.Name, kind, f)
				}
			}
		}
	}
	return nil
}
