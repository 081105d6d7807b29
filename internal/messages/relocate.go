package messages

// Relocation messages for the Config.pm / Config_heavy.pl rewriters.
const (
	// RelocateNotADirectory is the sentinel text for a missing install directory.
	RelocateNotADirectory      = "not a directory"
	RelocateNotADirectoryFmt   = "%w: %s"
	RelocateNoSubstitutions    = "install path not found"
	RelocateNoSubstitutionsFmt = "%w: %s does not contain %s"
	RelocateStatDirFmt         = "stat %s: %w"
	RelocateWriteBackupFmt     = "write backup %s: %w"
	RelocateWriteFileFmt       = "write %s: %w"

	// LinesFileNotFound is the sentinel text for a missing target file.
	LinesFileNotFound    = "file not found"
	LinesFileNotFoundFmt = "%w: %s"
	LinesStatFileFmt     = "stat %s: %w"
	LinesReadFileFmt     = "read %s: %w"
)
