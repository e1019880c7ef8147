package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var _ FileSystem = (*MemFS)(nil)

// MemFS is an in-memory FileSystem.
// Directories are implied by the files stored beneath them, and may also be added explicitly.
type MemFS struct {
	files map[string][]byte
	dirs  map[string]struct{}
}

// NewMemFS returns a MemFS holding the given files (path to contents) and empty directories.
func NewMemFS(files map[string]string, dirs ...string) *MemFS {
	m := &MemFS{
		files: make(map[string][]byte, len(files)),
		dirs:  make(map[string]struct{}),
	}

	for p, content := range files {
		m.AddFile(p, content)
	}
	for _, d := range dirs {
		m.AddDir(d)
	}

	return m
}

// AddFile stores a file, implicitly creating its parent directories.
func (m *MemFS) AddFile(path string, content string) {
	path = filepath.Clean(path)
	m.files[path] = []byte(content)

	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = struct{}{}
		if dir == filepath.Dir(dir) {
			break
		}
	}
}

// AddDir stores a directory, implicitly creating its parents.
func (m *MemFS) AddDir(path string) {
	for dir := filepath.Clean(path); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = struct{}{}
		if dir == filepath.Dir(dir) {
			break
		}
	}
}

func (m *MemFS) Exists(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}

	path = filepath.Clean(path)
	if _, ok := m.files[path]; ok {
		return true
	}

	_, ok := m.dirs[path]
	return ok
}

func (m *MemFS) IsFile(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}

	_, ok := m.files[filepath.Clean(path)]
	return ok
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}
