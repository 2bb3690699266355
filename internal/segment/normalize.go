package segment

import (
	"regexp"
	"strings"
)

var (
	reSpaces     = regexp.MustCompile(`[ \t\f\v]+`)
	reBlankLines = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText canonicalizes line breaks and horizontal whitespace while
// keeping line structure, so multiline patterns still anchor on lines.
// Offsets are always computed after this normalization.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = reSpaces.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = reBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// CompactWhitespace collapses all whitespace runs to single spaces. Used for
// extracted values and snippets, never for segment text.
func CompactWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
