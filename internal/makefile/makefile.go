// Package makefile points the win32/Makefile of a Perl source tree at an
// install directory before the build.
package makefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tlperl/tlperl-build/internal/config"
	"github.com/tlperl/tlperl-build/internal/lines"
	"github.com/tlperl/tlperl-build/internal/logging"
	"github.com/tlperl/tlperl-build/internal/messages"
	"github.com/tlperl/tlperl-build/internal/relocate"
)

// RelPath is the Makefile location inside a Perl source tree.
const RelPath = "win32/Makefile"

// rule replaces a whole line matching re with the line built by value.
type rule struct {
	re    *regexp.Regexp
	value func(installDir string) string
}

func rules(settings config.MakefileConfig) []rule {
	return []rule{
		{
			re:    regexp.MustCompile(`^INST_DRV\s*=.*$`),
			value: func(dir string) string { return "INST_DRV = " + filepath.VolumeName(dir) },
		},
		{
			re:    regexp.MustCompile(`^INST_TOP\s*=.*$`),
			value: func(dir string) string { return "INST_TOP = " + dir },
		},
		{
			re:    regexp.MustCompile(`^#USE_NO_REGISTRY\s*=.*$`),
			value: func(string) string { return "USE_NO_REGISTRY = define" },
		},
		{
			re:    regexp.MustCompile(`^#CCTYPE\s*=\s*` + regexp.QuoteMeta(settings.CCType) + `\s*$`),
			value: func(string) string { return "CCTYPE = " + settings.CCType },
		},
		{
			re:    regexp.MustCompile(`^#EMAIL\s*=.*$`),
			value: func(string) string { return "EMAIL = " + settings.Email },
		},
	}
}

// Patch rewrites the install-related variables of a win32/Makefile.
// Only line text is matched, so line endings are kept as they were.
// It returns the patched file and the number of lines changed.
func Patch(f lines.File, installDir string, settings config.MakefileConfig) (lines.File, int) {
	rs := rules(settings)
	out := f.Clone()
	changed := 0
	for i, line := range out {
		for _, r := range rs {
			if r.re.MatchString(line.Text) {
				line.Text = r.value(installDir)
			}
		}
		if line.Text != f[i].Text {
			out[i] = line
			changed++
		}
	}
	return out, changed
}

// Run patches srcDir/win32/Makefile in place for installDir.
func Run(sys lines.System, srcDir string, installDir string, settings config.MakefileConfig) (int, error) {
	info, err := sys.Stat(srcDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf(messages.RelocateStatDirFmt, srcDir, err)
	}
	if err != nil || !info.IsDir() {
		return 0, fmt.Errorf(messages.RelocateNotADirectoryFmt, relocate.ErrNotADirectory, srcDir)
	}

	path := filepath.Join(srcDir, filepath.FromSlash(RelPath))
	f, err := lines.Read(sys, path)
	if err != nil {
		return 0, err
	}
	patched, changed := Patch(f, installDir, settings)
	perm := os.FileMode(0o644)
	if info, err := sys.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := lines.Write(sys, path, patched, perm); err != nil {
		return 0, fmt.Errorf(messages.MakefileWriteFmt, path, err)
	}
	log := logging.GetLogger("makefile")
	log.Info().
		Str("path", path).
		Str("instdir", installDir).
		Int("changed", changed).
		Msg("patched")
	return changed, nil
}
