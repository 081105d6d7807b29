package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse         = "tlperl"
	RootShort       = "Build helpers for a relocatable TeX Live Perl"
	RootFlagConfig  = "Path to a tlperl.toml configuration file"
	RootFlagVerbose = "Increase log verbosity (repeat for more detail)"
	RootFlagNoColor = "Disable colored output"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ErrorLineFmt prefixes fatal errors written to stderr.
	ErrorLineFmt = "[ERROR] %v"

	// RelocateUse is the relocate command usage.
	RelocateUse   = "relocate <instdir>"
	RelocateShort = "Make Config.pm and Config_heavy.pl compute the install root at runtime"
	RelocateLong  = "Rewrite lib/Config.pm and lib/Config_heavy.pl under <instdir> so the build-time\n" +
		"install path is replaced by a root computed from the location of the files themselves.\n" +
		"The untouched originals are kept as Config.pm.orig and Config_heavy.pl.orig."
	RelocateFlagDryRun    = "Print the rewrite as a unified diff without touching any file"
	RelocateFlagStrict    = "Fail when a file contains no occurrence of the install path"
	RelocateFlagDiffLines = "Maximum diff lines shown per file with --dry-run"
	RelocateDryRunHeader  = "Dry run: %s (%d substitutions)\n"
	RelocateDryRunNoDiff  = "  (no changes)"

	// PatchMakefileUse is the patch-makefile command usage.
	PatchMakefileUse   = "patch-makefile <srcdir> <instdir>"
	PatchMakefileShort = "Point win32/Makefile at the install directory"

	// GenStepsUse is the gen-steps command usage.
	GenStepsUse   = "gen-steps <readme>"
	GenStepsShort = "Generate CI module build steps from tlperl.README"

	// PathResolveFmt formats argument path resolution errors.
	PathResolveFmt = "resolve path %s: %w"
)
