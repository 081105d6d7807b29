// Package config loads the optional tlperl.toml tool configuration.
package config

import "github.com/tlperl/tlperl-build/internal/relocate"

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "tlperl.toml"

// Config is the full tool configuration.
type Config struct {
	Relocate RelocateConfig `toml:"relocate"`
	Makefile MakefileConfig `toml:"makefile"`
}

// RelocateConfig holds settings for the relocate command.
type RelocateConfig struct {
	Strict    bool `toml:"strict"`
	DiffLines int  `toml:"diff_lines"`
}

// MakefileConfig holds the values written into win32/Makefile.
type MakefileConfig struct {
	CCType string `toml:"cctype"`
	Email  string `toml:"email"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Relocate: RelocateConfig{
			Strict:    false,
			DiffLines: relocate.DefaultDiffMaxLines,
		},
		Makefile: MakefileConfig{
			CCType: "MSVC143",
			Email:  "tex-live@tug.org",
		},
	}
}
