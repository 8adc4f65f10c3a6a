package scratch

import (
	"io/fs"
	"os"
)

// System is the minimal filesystem interface needed for scratch preparation.
type System interface {
	Stat(path string) (fs.FileInfo, error)
	Mkdir(path string, perm os.FileMode) error
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// Stat returns the FileInfo describing the named path.
func (RealSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Mkdir creates a directory with the given permissions. The parent must
// already exist; scratch directories live directly under a temp root.
func (RealSystem) Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}
