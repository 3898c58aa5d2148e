package session

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseDisplayName extracts the greeting name from process arguments of the
// form --key=value. The last non-empty value wins; its first letter is
// uppercased.
func ParseDisplayName(args []string) string {
	name := ""
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		_, value, found := strings.Cut(arg, "=")
		if !found || value == "" {
			continue
		}
		name = value
	}
	return capitalize(name)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Greeting returns the startup banner
func (s *Session) Greeting() string {
	if s.displayName == "" {
		return "Welcome to the File Manager!"
	}
	return "Welcome to the File Manager, " + s.displayName + "!"
}

// Farewell returns the shutdown banner
func (s *Session) Farewell() string {
	if s.displayName == "" {
		return "Thank you for using File Manager, goodbye!"
	}
	return "Thank you for using File Manager, " + s.displayName + ", goodbye!"
}
