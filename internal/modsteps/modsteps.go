// Package modsteps turns the module list of tlperl.README into CI workflow
// steps that build and install each CPAN module, followed by an env block
// pinning their versions.
package modsteps

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/tlperl/tlperl-build/internal/lines"
	"github.com/tlperl/tlperl-build/internal/logging"
	"github.com/tlperl/tlperl-build/internal/messages"
)

const (
	sectionStart = "INSTALLING MODULES"
	sectionEnd   = "MODIFICATIONS FOR TEXLIVE"

	moduleBuildTiny = "Module::Build::Tiny"
	win32WinError   = "Win32::WinError"
	noTestsComment  = "no tests"

	makeCommands        = "perl Makefile.PL && nmake && nmake test && nmake install"
	makeCommandsNoTests = "perl Makefile.PL && nmake && nmake install"
	buildCommands       = "perl Build.PL && Build && Build test && Build install"
	winErrorCopyCommand = "cp sources/WinError.pm work/inst/site/lib/Win32/"
)

var (
	moduleLineRe  = regexp.MustCompile(`^([0-9A-Za-z:-]+)\s+([0-9.]+)(\s+\((.*)\))?\s*`)
	fileCommentRe = regexp.MustCompile(`^file ([0-9A-Za-z:-]+?)(-[0-9.]+\.tar\.gz)?$`)
)

// Module is one entry of the README module list.
type Module struct {
	Name    string
	Version string
	// Comment is the raw parenthesised suffix including its leading whitespace.
	Comment string
	// Note is the text inside the parentheses; HasNote tells an empty note from none.
	Note    string
	HasNote bool
}

// ParseModuleLine parses a "Name version (note)" line.
func ParseModuleLine(text string) (Module, bool) {
	m := moduleLineRe.FindStringSubmatchIndex(text)
	if m == nil {
		return Module{}, false
	}
	mod := Module{
		Name:    text[m[2]:m[3]],
		Version: text[m[4]:m[5]],
	}
	if m[6] >= 0 {
		mod.Comment = text[m[6]:m[7]]
		mod.Note = text[m[8]:m[9]]
		mod.HasNote = true
	}
	return mod, true
}

// FileName is the distribution directory name, Foo::Bar -> Foo-Bar, unless
// the note names the tarball ("file Foo-Bar-1.0.tar.gz").
func (m Module) FileName() string {
	if m.HasNote {
		if fm := fileCommentRe.FindStringSubmatch(m.Note); fm != nil {
			return strings.ReplaceAll(fm[1], "::", "-")
		}
	}
	return strings.ReplaceAll(m.Name, "::", "-")
}

// EnvVar is the workflow variable holding the module version, Foo::Bar -> FOO_BAR_VERSION.
func (m Module) EnvVar() string {
	base := strings.ReplaceAll(m.Name, "::", "-")
	return strings.ToUpper(strings.ReplaceAll(base, "-", "_")) + "_VERSION"
}

// EnvRef is the workflow expression referencing EnvVar.
func (m Module) EnvRef() string {
	return "${{ env." + m.EnvVar() + " }}"
}

type readmeState int

const (
	seekingSection readmeState = iota
	inSection
	pastSection
)

// blank tracks spacing between emitted entries.
type blankState int

const (
	blankNone blankState = iota
	blankPending
	blankAfterComment
)

type generator struct {
	out            *bufio.Writer
	state          readmeState
	blank          blankState
	firstBuildTiny bool
	env            []string
}

// Generate writes the workflow steps for the README in f to w.
func Generate(f lines.File, w io.Writer) error {
	g := &generator{out: bufio.NewWriter(w), firstBuildTiny: true}
	for _, line := range f {
		g.line(line.Text)
	}
	g.println("")
	g.println("env:")
	for _, e := range g.env {
		g.println(e)
	}
	if err := g.out.Flush(); err != nil {
		return fmt.Errorf(messages.ModstepsWriteFmt, err)
	}
	log := logging.GetLogger("modsteps")
	log.Debug().Int("modules", len(g.env)).Msg("generated module steps")
	return nil
}

// Run reads the README at path and writes the generated steps to w.
func Run(sys lines.System, path string, w io.Writer) error {
	f, err := lines.Read(sys, path)
	if err != nil {
		return err
	}
	return Generate(f, w)
}

func (g *generator) line(text string) {
	switch g.state {
	case seekingSection:
		if strings.HasPrefix(text, sectionStart) {
			g.state = inSection
		}
	case inSection:
		if mod, ok := ParseModuleLine(text); ok {
			g.module(mod)
			return
		}
		trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
		switch {
		case strings.HasPrefix(text, sectionEnd):
			g.state = pastSection
		case trimmed == "":
			if g.blank == blankNone {
				g.blank = blankPending
			}
		default:
			if g.blank != blankAfterComment {
				g.println("")
			}
			g.println("      # " + trimmed)
			g.blank = blankAfterComment
		}
	case pastSection:
	}
}

func (g *generator) module(mod Module) {
	commands := makeCommands
	if mod.HasNote && mod.Note == noTestsComment {
		commands = makeCommandsNoTests
	}
	if mod.Name == moduleBuildTiny {
		// The first occurrence is the bootstrap copy built by hand.
		if g.firstBuildTiny {
			g.firstBuildTiny = false
			return
		}
		commands = buildCommands
	}

	if g.blank == blankPending {
		g.println("")
		g.println("      #")
	}
	g.blank = blankNone

	ref := mod.EnvRef()
	g.println("")
	g.println(fmt.Sprintf("      - name: Install %s %s%s", mod.Name, ref, mod.Comment))
	if mod.Name == win32WinError {
		g.println("        run: " + winErrorCopyCommand)
		return
	}
	g.println("        shell: cmd")
	g.println(fmt.Sprintf("        working-directory: work\\%s-%s", mod.FileName(), ref))
	g.println("        run: " + commands)
	g.env = append(g.env, fmt.Sprintf("  %s: %q", mod.EnvVar(), mod.Version))
}

func (g *generator) println(s string) {
	_, _ = g.out.WriteString(s)
	_ = g.out.WriteByte('\n')
}
