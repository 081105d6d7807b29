// Package relocate rewrites the Config.pm and Config_heavy.pl files generated by
// a Perl build so that the build-time install path is replaced by a root that
// Perl computes at runtime from the location of the file itself.
//
// Each rewriter is a finite-state machine that classifies every line exactly
// once, in order, and never moves back to an earlier state.
package relocate

import (
	"errors"

	"github.com/tlperl/tlperl-build/internal/lines"
	"github.com/tlperl/tlperl-build/internal/messages"
)

var (
	// ErrNotADirectory reports that the install directory does not exist as a directory.
	ErrNotADirectory = errors.New(messages.RelocateNotADirectory)
	// ErrNoSubstitutions reports that strict mode found no install path to rewrite.
	ErrNoSubstitutions = errors.New(messages.RelocateNoSubstitutions)
)

// RootVar is the Perl variable holding the runtime install root.
const RootVar = "$rootdir"

// preambleText computes $rootdir from __FILE__: strip the last two path
// segments (lib/Config.pm) and turn forward slashes into backslashes.
var preambleText = []string{
	`my $rootdir = __FILE__;`,
	`$rootdir =~ s![\\/][^\\/]*[\\/][^\\/]*$!!;`,
	`$rootdir =~ s!/!\\!g;`,
	``,
}

// Preamble returns the lines that define $rootdir, terminated with eol.
func Preamble(eol string) []lines.Line {
	out := make([]lines.Line, len(preambleText))
	for i, text := range preambleText {
		out[i] = lines.Line{Text: text, EOL: eol}
	}
	return out
}

// Result describes one rewritten file.
type Result struct {
	Path             string
	Original         lines.File
	Rewritten        lines.File
	Substitutions    int
	PreambleInjected bool
}

// Changed reports whether the rewrite altered the file.
func (r Result) Changed() bool {
	return string(r.Original.Bytes()) != string(r.Rewritten.Bytes())
}

// Options controls Run.
type Options struct {
	// DryRun computes results without writing backups or rewritten files.
	DryRun bool
	// Strict turns a file without any install path occurrence into ErrNoSubstitutions.
	Strict bool
}
