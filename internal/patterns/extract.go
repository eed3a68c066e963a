package patterns

// Extract applies a rule to text and returns every non-overlapping match
// in order. Empty text or no match gives an empty result.
func Extract(rule *Rule, text string) []Capture {
	if text == "" || rule == nil {
		return nil
	}
	matches := rule.Pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	captures := make([]Capture, len(matches))
	for i, m := range matches {
		// m[0] is the whole match
		captures[i] = Capture{Rule: rule, Values: m[1:]}
	}
	return captures
}

// Strings returns one field of every capture.
func Strings(captures []Capture, field string) []string {
	if len(captures) == 0 {
		return nil
	}
	out := make([]string, len(captures))
	for i, c := range captures {
		out[i] = c.Field(field)
	}
	return out
}
