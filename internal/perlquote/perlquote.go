// Package perlquote escapes text for Perl double-quoted (interpolating) string context.
package perlquote

import "strings"

// Escape makes s safe inside a Perl double-quoted string or an interpolating
// heredoc: backslashes are doubled first, then the "$" and "@" sigils are escaped.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `@`, `\@`)
	s = strings.ReplaceAll(s, `$`, `\$`)
	return s
}

// EscapeValue escapes s for a value that is about to be wrapped in double quotes:
// backslashes are doubled first, then embedded double quotes are escaped.
func EscapeValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// Unescape interprets the backslash escapes Perl resolves in a double-quoted
// string for non-word characters ("\\", "\$", "\@", "\"", ...). It reverses
// Escape and EscapeValue and is used to check rewritten values.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && !isWordByte(s[i+1]) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
