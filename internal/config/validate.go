package config

import (
	"fmt"
	"strings"

	"github.com/tlperl/tlperl-build/internal/messages"
)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(path string) error {
	if c.Relocate.DiffLines <= 0 {
		return fmt.Errorf(messages.ConfigDiffLinesInvalidFmt, path, c.Relocate.DiffLines)
	}
	if strings.TrimSpace(c.Makefile.CCType) == "" {
		return fmt.Errorf(messages.ConfigMakefileCCTypeRequired, path)
	}
	if strings.TrimSpace(c.Makefile.Email) == "" {
		return fmt.Errorf(messages.ConfigMakefileEmailRequired, path)
	}
	return nil
}
