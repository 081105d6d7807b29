package relocate

import (
	"os"

	"github.com/tlperl/tlperl-build/internal/lines"
)

// System abstracts the filesystem operations needed by the rewriters.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct {
	lines.RealSystem
}
