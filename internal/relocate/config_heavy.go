package relocate

import (
	"strings"

	"github.com/tlperl/tlperl-build/internal/lines"
	"github.com/tlperl/tlperl-build/internal/perlquote"
)

const (
	heavyAnchorPrefix      = `local *_ = \my $a;`
	heavyHeredocOpen       = `$_ = <<'!END!';`
	heavyHeredocQuoted     = `'!END!'`
	heavyHeredocDouble     = `"!END!"`
	heavyHeredocEnd        = "!END!"
	heavyTrailingKeyPrefix = "ldflags_nolargefiles"
)

type heavyState int

const (
	heavySeekingAnchor heavyState = iota
	heavySeekingHeredoc
	heavyInBody
	heavyAfterHeredoc
	heavyDone
)

// RewriteConfigHeavy rewrites the lines of a generated Config_heavy.pl.
//
// The $rootdir preamble goes before the `local *_ = \my $a;` statement and the
// following '!END!' heredoc is switched to "!END!" so it interpolates. Inside
// the heredoc every line is escaped as a whole, since its content becomes
// double-quoted, and then the escaped install path is replaced by $rootdir.
// After the terminator only the ldflags_nolargefiles line is rewritten, with
// value escaping and its single quotes turned into double quotes.
func RewriteConfigHeavy(f lines.File, installDir string) Result {
	escaped := perlquote.Escape(installDir)
	res := Result{Original: f, Rewritten: make(lines.File, 0, len(f)+len(preambleText))}
	state := heavySeekingAnchor

	for _, line := range f {
		switch state {
		case heavySeekingAnchor:
			if strings.HasPrefix(line.Text, heavyAnchorPrefix) {
				res.Rewritten = append(res.Rewritten, Preamble(line.EOLOrDefault())...)
				res.PreambleInjected = true
				state = heavySeekingHeredoc
			}
		case heavySeekingHeredoc:
			if strings.HasPrefix(line.Text, heavyHeredocOpen) {
				line.Text = strings.ReplaceAll(line.Text, heavyHeredocQuoted, heavyHeredocDouble)
				state = heavyInBody
			}
		case heavyInBody:
			if strings.HasPrefix(line.Text, heavyHeredocEnd) {
				state = heavyAfterHeredoc
				break
			}
			line.Text = perlquote.Escape(line.Text)
			line.Text = res.substitute(line.Text, escaped)
		case heavyAfterHeredoc:
			if strings.HasPrefix(line.Text, heavyTrailingKeyPrefix) {
				line.Text = perlquote.EscapeValue(line.Text)
				line.Text = res.substitute(line.Text, escaped)
				line.Text = strings.ReplaceAll(line.Text, "'", `"`)
				state = heavyDone
			}
		case heavyDone:
		}
		res.Rewritten = append(res.Rewritten, line)
	}
	return res
}

// substitute replaces every occurrence of escaped in text with RootVar and
// counts the replacements.
func (r *Result) substitute(text string, escaped string) string {
	if escaped == "" {
		return text
	}
	n := strings.Count(text, escaped)
	if n == 0 {
		return text
	}
	r.Substitutions += n
	return strings.ReplaceAll(text, escaped, RootVar)
}
