package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"tlperl", "--version"}, &out, &out))
	assert.Contains(t, out.String(), Version)
}

func TestMainNoArgsPrintsHelp(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"tlperl"}, &out, &out))
	assert.Contains(t, out.String(), "relocate")
	assert.Contains(t, out.String(), "gen-steps")
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"tlperl", "unknown"}, &out, &out)
	require.Error(t, err)
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"tlperl", "--version"}, &out, &out, func(code int) {
		called = true
	})
	assert.False(t, called, "unexpected exit")
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"tlperl", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "[ERROR]")
	assert.Contains(t, out.String(), "unknown command")
}

func TestRunMainExecuteError(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return errors.New("boom")
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"tlperl"}, &out, &out, func(c int) { code = c })
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "[ERROR] boom")
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"tlperl", "--version"}
	main()
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuild
	})

	Version, Commit, BuildDate = "v1.2.3", "unknown", "unknown"
	assert.Equal(t, "v1.2.3", versionString())

	Commit = "abc123"
	assert.Equal(t, "v1.2.3 (commit abc123)", versionString())

	BuildDate = "2026-01-02"
	got := versionString()
	assert.True(t, strings.HasPrefix(got, "v1.2.3 ("))
	assert.Contains(t, got, "commit abc123, built 2026-01-02")
}
