package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt         = "missing config file %s: %w"
	ConfigInvalidConfigFmt       = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt    = "config %s has unrecognized keys: %v"
	ConfigMakefileCCTypeRequired = "%s: makefile.cctype is required"
	ConfigMakefileEmailRequired  = "%s: makefile.email is required"
	ConfigDiffLinesInvalidFmt    = "%s: relocate.diff_lines must be positive (got %d)"
)
