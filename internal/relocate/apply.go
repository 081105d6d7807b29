package relocate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tlperl/tlperl-build/internal/lines"
	"github.com/tlperl/tlperl-build/internal/logging"
	"github.com/tlperl/tlperl-build/internal/messages"
)

// BackupSuffix is appended to a rewritten file's name for its pristine copy.
const BackupSuffix = ".orig"

// Target is one generated file and the rewriter that handles it.
type Target struct {
	Name    string
	RelPath string
	Rewrite func(f lines.File, installDir string) Result
}

// Path returns the target's location under installDir.
func (t Target) Path(installDir string) string {
	return filepath.Join(installDir, filepath.FromSlash(t.RelPath))
}

// Targets returns the files rewritten by Run, in processing order.
func Targets() []Target {
	return []Target{
		{Name: "Config.pm", RelPath: "lib/Config.pm", Rewrite: RewriteConfigPM},
		{Name: "Config_heavy.pl", RelPath: "lib/Config_heavy.pl", Rewrite: RewriteConfigHeavy},
	}
}

// BackupPath returns the sibling path that receives the original content of path
// (Config.pm -> Config.pm.orig, Config_heavy.pl -> Config_heavy.pl.orig).
func BackupPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + ext + BackupSuffix
}

// Plan reads a target under installDir and computes its rewrite without writing anything.
func Plan(sys System, t Target, installDir string) (Result, error) {
	path := t.Path(installDir)
	f, err := lines.Read(sys, path)
	if err != nil {
		return Result{}, err
	}
	res := t.Rewrite(f, installDir)
	res.Path = path
	return res, nil
}

// Commit persists a planned rewrite: the original bytes go to the backup path
// first and the target is overwritten only once the backup is on disk.
func Commit(sys System, res Result) error {
	perm := os.FileMode(0o644)
	if info, err := sys.Stat(res.Path); err == nil {
		perm = info.Mode().Perm()
	}
	backup := BackupPath(res.Path)
	if err := lines.Write(sys, backup, res.Original, perm); err != nil {
		return fmt.Errorf(messages.RelocateWriteBackupFmt, backup, err)
	}
	if err := lines.Write(sys, res.Path, res.Rewritten, perm); err != nil {
		return fmt.Errorf(messages.RelocateWriteFileFmt, res.Path, err)
	}
	return nil
}

// Run relocates every target under installDir. The directory and all target
// files are checked before anything is written, and in strict mode every file
// must contain the install path, so a failing run leaves no file half-processed.
func Run(sys System, installDir string, opts Options) ([]Result, error) {
	if err := requireDir(sys, installDir); err != nil {
		return nil, err
	}
	targets := Targets()
	for _, t := range targets {
		if err := lines.RequireFile(sys, t.Path(installDir)); err != nil {
			return nil, err
		}
	}

	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		res, err := Plan(sys, t, installDir)
		if err != nil {
			return nil, err
		}
		if err := checkResult(res, installDir, opts); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if opts.DryRun {
		return results, nil
	}
	for _, res := range results {
		if err := Commit(sys, res); err != nil {
			return results, err
		}
		logResult(res)
	}
	return results, nil
}

func requireDir(sys System, dir string) error {
	info, err := sys.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf(messages.RelocateNotADirectoryFmt, ErrNotADirectory, dir)
		}
		return fmt.Errorf(messages.RelocateStatDirFmt, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(messages.RelocateNotADirectoryFmt, ErrNotADirectory, dir)
	}
	return nil
}

func checkResult(res Result, installDir string, opts Options) error {
	if opts.Strict && res.Substitutions == 0 {
		return fmt.Errorf(messages.RelocateNoSubstitutionsFmt, ErrNoSubstitutions, res.Path, installDir)
	}
	return nil
}

func logResult(res Result) {
	log := logging.GetLogger("relocate")
	event := log.Info()
	if res.Substitutions == 0 {
		event = log.Warn()
	}
	event.
		Str("path", res.Path).
		Str("backup", BackupPath(res.Path)).
		Int("substitutions", res.Substitutions).
		Bool("preamble", res.PreambleInjected).
		Msg("relocated")
}
