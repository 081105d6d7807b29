package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlperl/tlperl-build/internal/testutil"
)

// tempDir returns a symlink-free temporary directory so paths written into
// fixtures match what resolvePathArg produces.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// runIn executes the CLI with dir as the working directory.
func runIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	var err error
	testutil.WithWorkingDir(t, dir, func() {
		err = execute(append([]string{"tlperl"}, args...), &out, &out)
	})
	return out.String(), err
}

func writeInstallTree(t *testing.T, dir string) (string, string) {
	t.Helper()
	pm := strings.Join([]string{
		"package Config;",
		"",
		"# tie returns the object, so the value returned to require will be true.",
		"tie %Config, 'Config', {",
		"    privlibexp => '" + dir + "/lib',",
		"    so => 'so',",
		"};",
		"",
	}, "\n")
	heavy := strings.Join([]string{
		"package Config;",
		"local *_ = \\my $a;",
		"$_ = <<'!END!';",
		"privlib='" + dir + "/lib'",
		"cf_email='tex-live@tug.org'",
		"!END!",
		"ldflags_nolargefiles='-L" + dir + "/lib/CORE'",
		"",
	}, "\n")
	return testutil.WriteFile(t, dir, "lib/Config.pm", pm),
		testutil.WriteFile(t, dir, "lib/Config_heavy.pl", heavy)
}
