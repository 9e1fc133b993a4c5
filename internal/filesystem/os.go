package filesystem

import (
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// OSFileSystem implements FileSystem on top of the host filesystem
type OSFileSystem struct {
	afs afero.Fs
}

// NewOSFileSystem creates a new OSFileSystem
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{afs: afero.NewOsFs()}
}

func (osfs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(osfs.afs, path)
}

func (osfs *OSFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(osfs.afs, path, data, perm)
}

func (osfs *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return osfs.afs.MkdirAll(path, perm)
}

func (osfs *OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return osfs.afs.Stat(path)
}

func (osfs *OSFileSystem) Exists(path string) bool {
	ok, err := afero.Exists(osfs.afs, path)
	return err == nil && ok
}

func (osfs *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}
