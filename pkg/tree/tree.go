// Package tree stages file writes in memory on top of a base filesystem so
// a generator's output can be inspected before it reaches disk.
package tree

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	schematicerrors "github.com/kdeps/schematics/pkg/errors"
	"github.com/spf13/afero"
)

const writeFlags = os.O_WRONLY | os.O_RDWR | os.O_APPEND | os.O_CREATE | os.O_TRUNC

// Staging is an afero.Fs that reads through to base and keeps every write
// in memory until Commit.
type Staging struct {
	afero.Fs

	base  afero.Fs
	mu    sync.Mutex
	files map[string]struct{}
}

// NewStaging returns a staging tree over base. base is never written until
// Commit is called.
func NewStaging(base afero.Fs) *Staging {
	return &Staging{
		Fs:    afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base), afero.NewMemMapFs()),
		base:  base,
		files: make(map[string]struct{}),
	}
}

func (s *Staging) Name() string { return "Staging" }

func (s *Staging) Create(name string) (afero.File, error) {
	f, err := s.Fs.Create(name)
	if err == nil {
		s.record(name)
	}
	return f, err
}

func (s *Staging) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := s.Fs.OpenFile(name, flag, perm)
	if err == nil && flag&writeFlags != 0 {
		s.record(name)
	}
	return f, err
}

func (s *Staging) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[filepath.Clean(name)] = struct{}{}
}

// Changes returns the staged file paths in sorted order.
func (s *Staging) Changes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Commit copies every staged file to the base filesystem.
func (s *Staging) Commit() error {
	for _, p := range s.Changes() {
		info, err := s.Fs.Stat(p)
		if err != nil {
			return schematicerrors.WrapError(err, schematicerrors.ErrCodeFileOperations, "failed to stat staged file").WithPath(p)
		}
		content, err := afero.ReadFile(s.Fs, p)
		if err != nil {
			return schematicerrors.WrapError(err, schematicerrors.ErrCodeFileOperations, "failed to read staged file").WithPath(p)
		}
		if err := s.base.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return schematicerrors.WrapError(err, schematicerrors.ErrCodeFileOperations, "failed to create directory").WithPath(filepath.Dir(p))
		}
		if err := afero.WriteFile(s.base, p, content, info.Mode().Perm()); err != nil {
			return schematicerrors.WrapError(err, schematicerrors.ErrCodeFileOperations, "failed to commit file").WithPath(p)
		}
	}
	return nil
}
