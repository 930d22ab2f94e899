package parser

import "strings"

// SplitByCommas splits text on commas that are not nested inside
// parentheses. Segments are trimmed and empty ones dropped.
// Unbalanced parentheses are tolerated.
func SplitByCommas(text string) []string {
	tokens := []string{}
	depth := 0
	start := 0

	for i, c := range text {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				tokens = appendToken(tokens, text[start:i])
				start = i + 1
			}
		}
	}
	return appendToken(tokens, text[start:])
}

func appendToken(tokens []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		tokens = append(tokens, s)
	}
	return tokens
}

// makeSingular drops one trailing "s".
func makeSingular(s string) string {
	return strings.TrimSuffix(s, "s")
}
