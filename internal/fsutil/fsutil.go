// Package fsutil holds small filesystem helpers shared by the rewriters.
package fsutil

import (
	"os"

	"github.com/creachadair/atomicfile"
)

// WriteFileAtomic writes data to filename by writing a temporary sibling and
// renaming it into place, so readers never observe a partially written file.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	f, err := atomicfile.New(filename, perm)
	if err != nil {
		return err
	}
	defer f.Cancel()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Close()
}
