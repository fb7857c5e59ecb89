package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DirStore is a workspace rooted at a local directory.
type DirStore struct {
	dir string
}

// NewDirStore returns a Store over dir.
func NewDirStore(dir string) *DirStore {
	if dir == "" {
		dir = "."
	}
	return &DirStore{dir: dir}
}

func (s *DirStore) Location(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *DirStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(s.Location(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", s.Location(name), ErrNotExist)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *DirStore) Save(_ context.Context, name string, data []byte, _ string) error {
	target := s.Location(name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

func (s *DirStore) Exists(_ context.Context, name string) (bool, error) {
	info, err := os.Stat(s.Location(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

func (s *DirStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
