package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	afs        afero.Fs
	currentDir string
}

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	afs := afero.NewMemMapFs()
	_ = afs.MkdirAll("/workspace", 0755)
	return &MockFileSystem{
		afs:        afs,
		currentDir: "/workspace",
	}
}

// AddFile adds a file to the mock filesystem, creating parent directories.
// Relative paths are resolved against the current directory.
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	path = mfs.abs(path)
	_ = mfs.afs.MkdirAll(filepath.Dir(path), 0755)
	_ = afero.WriteFile(mfs.afs, path, content, 0644)
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	_ = mfs.afs.MkdirAll(mfs.abs(path), 0755)
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(mfs.afs, mfs.abs(path))
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	path = mfs.abs(path)

	// Parent directory must exist, as on a real filesystem
	dir := filepath.Dir(path)
	if ok, _ := afero.DirExists(mfs.afs, dir); !ok {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	return afero.WriteFile(mfs.afs, path, data, perm)
}

func (mfs *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return mfs.afs.MkdirAll(mfs.abs(path), perm)
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	return mfs.afs.Stat(mfs.abs(path))
}

func (mfs *MockFileSystem) Exists(path string) bool {
	ok, err := afero.Exists(mfs.afs, mfs.abs(path))
	return err == nil && ok
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = filepath.Clean(dir)
	_ = mfs.afs.MkdirAll(mfs.currentDir, 0755)
}

// Paths returns all regular files, sorted (for debugging and assertions)
func (mfs *MockFileSystem) Paths() []string {
	var paths []string
	_ = afero.Walk(mfs.afs, "/", func(path string, info fs.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	sort.Strings(paths)
	return paths
}

// PrintTree prints the filesystem tree (for debugging)
func (mfs *MockFileSystem) PrintTree() {
	for _, p := range mfs.Paths() {
		fmt.Printf("📄 %s\n", p)
	}
}

func (mfs *MockFileSystem) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(mfs.currentDir, path)
}
