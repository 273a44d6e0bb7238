package ansilex

import (
	"strings"

	dw "github.com/mattn/go-runewidth"
)

// Strip returns input with all escape sequences removed, including the
// payloads of OSC sequences and any malformed sequence bytes.
func Strip(input string) string {
	s := NewScanner(input, Options{})

	var builder strings.Builder
	for {
		tok, err := s.Next()
		if err != nil {
			break
		}
		if tok.Type == TokenText {
			builder.WriteString(tok.Text)
		}
	}
	return builder.String()
}

// Width returns the number of terminal columns input occupies once its
// escape sequences are stripped.
func Width(input string) int {
	return dw.StringWidth(Strip(input))
}
