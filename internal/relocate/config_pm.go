package relocate

import (
	"strings"

	"github.com/tlperl/tlperl-build/internal/lines"
	"github.com/tlperl/tlperl-build/internal/perlquote"
)

const (
	configPMMarker           = "# tie returns the object"
	configPMAssignmentPrefix = "tie %Config"
)

type pmState int

const (
	pmSeekingMarker pmState = iota
	pmSeekingAssignment
	pmSubstituting
)

// RewriteConfigPM rewrites the lines of a generated Config.pm.
//
// The $rootdir preamble is inserted before the "# tie returns the object"
// comment. From the "tie %Config" line onwards every line that contains the
// escaped install path gets it replaced by $rootdir and its single quotes
// turned into double quotes so the variable interpolates. A file without the
// marker comes back unchanged.
func RewriteConfigPM(f lines.File, installDir string) Result {
	escaped := perlquote.Escape(installDir)
	res := Result{Original: f, Rewritten: make(lines.File, 0, len(f)+len(preambleText))}
	state := pmSeekingMarker

	for _, line := range f {
		if state == pmSeekingMarker && strings.HasPrefix(line.Text, configPMMarker) {
			res.Rewritten = append(res.Rewritten, Preamble(line.EOLOrDefault())...)
			res.PreambleInjected = true
			state = pmSeekingAssignment
		}
		if state == pmSeekingAssignment && strings.HasPrefix(line.Text, configPMAssignmentPrefix) {
			state = pmSubstituting
		}
		if state == pmSubstituting && escaped != "" && strings.Contains(line.Text, escaped) {
			line.Text = res.substitute(line.Text, escaped)
			line.Text = strings.ReplaceAll(line.Text, "'", `"`)
		}
		res.Rewritten = append(res.Rewritten, line)
	}
	return res
}
