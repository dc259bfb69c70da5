package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// osFS is the FileSystem backed by the operating system.
type osFS struct{}

// NewOS returns a FileSystem backed by the real filesystem. Writes are
// atomic: content lands in a temporary file that is renamed over the target.
func NewOS() FileSystem {
	return osFS{}
}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (osFS) WriteFile(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(path, []byte(text), 0o644)
}

func (osFS) Remove(path string) error {
	return os.Remove(path)
}

func (osFS) IsRelative(path string) bool {
	return !filepath.IsAbs(path)
}

func (osFS) Parent(path string) string {
	return filepath.Dir(path)
}

func (osFS) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (osFS) FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
