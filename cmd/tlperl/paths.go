package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/tlperl/tlperl-build/internal/messages"
)

var getwd = os.Getwd

// resolvePathArg expands a leading ~, makes path absolute and resolves
// symlinks when the path exists. A missing path is returned unresolved so the
// caller can report it.
func resolvePathArg(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.PathResolveFmt, path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.PathResolveFmt, path, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real, nil
	}
	return abs, nil
}
