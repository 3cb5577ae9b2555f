package truncate

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis is the marker appended to clipped and capped text.
const Ellipsis = "..."

// ToLength clips text to a maximum rune count, appending an ellipsis when
// anything was removed. The result is never longer than maxLen runes; when
// maxLen is too small to fit the ellipsis the text is cut hard instead.
func ToLength(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	if maxLen <= len(Ellipsis) {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-len(Ellipsis)]) + Ellipsis
}

// Cap enforces a hard total length on text, appending an ellipsis when it
// was cut. max values below 4 are clamped to 4 so the ellipsis always fits
// next to at least one kept rune. max <= 0 disables enforcement.
func Cap(text string, max int) string {
	if max <= 0 {
		return text
	}
	if max < 4 {
		max = 4
	}
	return ToLength(text, max)
}

// SingleLine collapses multi-line text into one line. Trailing # comments
// and leading indentation are stripped from every line, empty lines are
// dropped, and the remaining lines are joined with single spaces.
func SingleLine(text string) string {
	if !strings.ContainsAny(text, "\n#") {
		return text
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = StripComment(line)
		line = strings.TrimRight(strings.TrimLeft(line, " \t"), " \t")
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, " ")
}

// StripComment removes a trailing # comment from a single line. Hashes
// inside double-quoted strings are left alone; only a hash outside quotes,
// preceded by whitespace or at the start of the line, begins a comment.
func StripComment(line string) string {
	inQuote := false
	escaped := false
	for i, r := range line {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inQuote {
				escaped = true
			}
		case '"':
			inQuote = !inQuote
		case '#':
			if inQuote {
				continue
			}
			if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
				return strings.TrimRight(line[:i], " \t")
			}
		}
	}
	return line
}
