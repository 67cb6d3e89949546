package helper

import (
	"regexp"
	"strings"
)

var IdentifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func IsValidIdentifier(s string) bool {
	return IdentifierRegex.MatchString(s)
}

// Or returns the trimmed value, or def when it is blank.
func Or(s, def string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return def
}

// SingleQuote escapes s for use inside a single-quoted shell word.
func SingleQuote(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

// DoubleQuote wraps s in double quotes, escaping embedded quotes.
func DoubleQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// Lines returns the non-blank, trimmed lines of s.
func Lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Fields splits on commas and spaces, dropping empties.
func Fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
}
