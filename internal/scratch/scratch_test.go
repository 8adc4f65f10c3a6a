package scratch

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// testSystem provides a mock System for unit tests. Methods without a mock
// function fall back to RealSystem so tests can use t.TempDir() fixtures.
type testSystem struct {
	RealSystem

	StatFunc  func(path string) (fs.FileInfo, error)
	MkdirFunc func(path string, perm os.FileMode) error
}

func (s *testSystem) Stat(path string) (fs.FileInfo, error) {
	if s.StatFunc != nil {
		return s.StatFunc(path)
	}
	return s.RealSystem.Stat(path)
}

func (s *testSystem) Mkdir(path string, perm os.FileMode) error {
	if s.MkdirFunc != nil {
		return s.MkdirFunc(path, perm)
	}
	return s.RealSystem.Mkdir(path, perm)
}

func TestEnsure_CreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propolis-phd")

	if err := Ensure(RealSystem{}, path); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", path)
	}
}

func TestEnsure_RepeatedInvocationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "propolis-phd")
	marker := filepath.Join(path, "artifact.bin")

	for i := 0; i < 3; i++ {
		if err := Ensure(RealSystem{}, path); err != nil {
			t.Fatalf("ensure #%d: %v", i, err)
		}
		if i == 0 {
			if err := os.WriteFile(marker, []byte("data"), 0o644); err != nil {
				t.Fatalf("write marker: %v", err)
			}
		}
	}

	// Prior contents survive every run.
	if _, err := os.Stat(marker); err != nil {
		t.Fatalf("marker lost after reuse: %v", err)
	}
}

func TestEnsure_ConflictWhenPathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propolis-phd")
	if err := os.WriteFile(path, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	err := Ensure(RealSystem{}, path)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestEnsure_ExistingDirectorySkipsCreation(t *testing.T) {
	path := t.TempDir()
	mkdirCalled := false
	sys := &testSystem{
		MkdirFunc: func(string, os.FileMode) error {
			mkdirCalled = true
			return nil
		},
	}

	if err := Ensure(sys, path); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if mkdirCalled {
		t.Fatal("expected no creation call for an existing directory")
	}
}

func TestEnsure_LostCreationRaceIsSuccess(t *testing.T) {
	// Another invocation creates the directory between our Stat and Mkdir.
	path := t.TempDir()
	statCalls := 0
	sys := &testSystem{
		StatFunc: func(p string) (fs.FileInfo, error) {
			statCalls++
			if statCalls == 1 {
				return nil, os.ErrNotExist
			}
			return os.Stat(p)
		},
		MkdirFunc: func(string, os.FileMode) error {
			return os.ErrExist
		},
	}

	if err := Ensure(sys, path); err != nil {
		t.Fatalf("ensure: %v", err)
	}
}

func TestEnsure_RaceLosesToConflictingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "propolis-phd")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	statCalls := 0
	sys := &testSystem{
		StatFunc: func(p string) (fs.FileInfo, error) {
			statCalls++
			if statCalls == 1 {
				return nil, os.ErrNotExist
			}
			return os.Stat(p)
		},
		MkdirFunc: func(string, os.FileMode) error {
			return os.ErrExist
		},
	}

	err := Ensure(sys, path)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestEnsure_CreationFailurePropagates(t *testing.T) {
	wantErr := errors.New("permission denied")
	sys := &testSystem{
		StatFunc: func(string) (fs.FileInfo, error) {
			return nil, os.ErrNotExist
		},
		MkdirFunc: func(string, os.FileMode) error {
			return wantErr
		},
	}

	err := Ensure(sys, "/tmp/propolis-phd")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped creation error, got %v", err)
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("creation failure must not be a conflict: %v", err)
	}
}

func TestEnsure_StatFailurePropagates(t *testing.T) {
	wantErr := errors.New("io error")
	sys := &testSystem{
		StatFunc: func(string) (fs.FileInfo, error) {
			return nil, wantErr
		},
	}

	err := Ensure(sys, "/tmp/propolis-phd")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped stat error, got %v", err)
	}
}

func TestEnsure_RejectsNilSystemAndEmptyPath(t *testing.T) {
	if err := Ensure(nil, "/tmp/propolis-phd"); err == nil {
		t.Fatal("expected error for nil system")
	}
	if err := Ensure(RealSystem{}, ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
