package scratch

import (
	"errors"
	"fmt"
	"os"

	"github.com/propolis-phd/phd-launch/internal/messages"
)

// ErrConflict reports that the scratch path exists but is not a directory.
// Callers treat this as fatal and must not invoke the runner.
var ErrConflict = errors.New("scratch path exists and is not a directory")

// Ensure makes sure path is a usable scratch directory: an existing directory
// is reused as-is (prior contents are never touched), an absent path is
// created, and anything else is a conflict.
func Ensure(sys System, path string) error {
	if sys == nil {
		return errors.New(messages.ScratchSystemNil)
	}
	if path == "" {
		return errors.New(messages.ScratchPathEmpty)
	}

	info, err := sys.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf(messages.ScratchConflictFmt, path, ErrConflict)
		}
		return nil
	case os.IsNotExist(err):
		return create(sys, path)
	default:
		return fmt.Errorf(messages.ScratchInspectFmt, path, err)
	}
}

// create makes the single scratch path segment. A lost creation race where
// another invocation made the directory first counts as success.
func create(sys System, path string) error {
	err := sys.Mkdir(path, 0o755)
	if err == nil {
		return nil
	}
	if os.IsExist(err) {
		info, statErr := sys.Stat(path)
		if statErr == nil && info.IsDir() {
			return nil
		}
		return fmt.Errorf(messages.ScratchConflictFmt, path, ErrConflict)
	}
	return fmt.Errorf(messages.ScratchCreateFmt, path, err)
}
