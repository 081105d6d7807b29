// Package lines reads and writes text files as sequences of lines that keep
// their original terminators, so untouched regions round-trip byte for byte.
package lines

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/tlperl/tlperl-build/internal/messages"
)

// ErrFileNotFound reports that a target path is not an existing regular file.
var ErrFileNotFound = errors.New(messages.LinesFileNotFound)

// Line terminators recognised by Split.
const (
	LF   = "\n"
	CRLF = "\r\n"
	CR   = "\r"
)

// Line is one line of text and the terminator it had on disk.
// EOL is empty only for a final line without a terminator.
type Line struct {
	Text string
	EOL  string
}

// String returns the line as it appears on disk.
func (l Line) String() string {
	return l.Text + l.EOL
}

// EOLOrDefault returns the line terminator, or LF for an unterminated line.
func (l Line) EOLOrDefault() string {
	if l.EOL == "" {
		return LF
	}
	return l.EOL
}

// File is an ordered sequence of lines.
type File []Line

// Split breaks data into lines, treating "\r\n", "\n" and a lone "\r" as terminators.
func Split(data []byte) File {
	var f File
	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			f = append(f, Line{Text: string(data[start:i]), EOL: LF})
			start = i + 1
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				f = append(f, Line{Text: string(data[start:i]), EOL: CRLF})
				i++
			} else {
				f = append(f, Line{Text: string(data[start:i]), EOL: CR})
			}
			start = i + 1
		}
	}
	if start < len(data) {
		f = append(f, Line{Text: string(data[start:])})
	}
	return f
}

// Bytes joins the lines back together without normalising terminators.
func (f File) Bytes() []byte {
	var buf bytes.Buffer
	for _, l := range f {
		buf.WriteString(l.Text)
		buf.WriteString(l.EOL)
	}
	return buf.Bytes()
}

// Clone returns a copy of f that can be modified independently.
func (f File) Clone() File {
	return append(File(nil), f...)
}

// System is the minimal filesystem interface needed to read and write line files.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// Read loads path as a File. It returns ErrFileNotFound when path does not
// name an existing regular file.
func Read(sys System, path string) (File, error) {
	if err := RequireFile(sys, path); err != nil {
		return nil, err
	}
	data, err := sys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.LinesReadFileFmt, path, err)
	}
	return Split(data), nil
}

// RequireFile returns ErrFileNotFound unless path is an existing regular file.
func RequireFile(sys System, path string) error {
	info, err := sys.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf(messages.LinesFileNotFoundFmt, ErrFileNotFound, path)
		}
		return fmt.Errorf(messages.LinesStatFileFmt, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf(messages.LinesFileNotFoundFmt, ErrFileNotFound, path)
	}
	return nil
}

// Write stores f at path exactly as joined by Bytes.
func Write(sys System, path string, f File, perm os.FileMode) error {
	return sys.WriteFileAtomic(path, f.Bytes(), perm)
}
