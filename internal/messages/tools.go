package messages

// Messages for the Makefile patcher and the module-steps generator.
const (
	// MakefileWriteFmt formats Makefile write failures.
	MakefileWriteFmt = "write %s: %w"

	// ModstepsWriteFmt formats output write failures.
	ModstepsWriteFmt = "write module steps: %w"
)
