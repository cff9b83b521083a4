package puzzle

import "strings"

// Line is one line of input with its 1-based line number.
type Line struct {
	Number int
	Text   string
}

// Lines splits input on newlines, strips carriage returns and drops the
// single empty element produced by a trailing newline.
func Lines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	input = strings.TrimSuffix(input, "\r")
	if input == "" {
		return nil
	}
	parts := strings.Split(input, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// NonBlankLines returns the lines that contain something other than
// whitespace, keeping their original line numbers for diagnostics.
func NonBlankLines(input string) []Line {
	raw := Lines(input)
	out := make([]Line, 0, len(raw))
	for i, text := range raw {
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, Line{Number: i + 1, Text: text})
	}
	return out
}
