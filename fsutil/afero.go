package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// aferoFS adapts any afero.Fs to the FileSystem interface. Path arithmetic
// uses filepath semantics, matching afero's own path handling.
type aferoFS struct {
	fs afero.Fs
}

// NewAfero wraps an afero filesystem. The in-memory variant,
// afero.NewMemMapFs, is what the test suites build their file trees on.
func NewAfero(fs afero.Fs) FileSystem {
	return aferoFS{fs: fs}
}

func (a aferoFS) Exists(path string) bool {
	ok, err := afero.Exists(a.fs, path)
	return err == nil && ok
}

func (a aferoFS) ReadFile(path string) (string, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (a aferoFS) WriteFile(path, text string) error {
	if err := a.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(a.fs, path, []byte(text), 0o644)
}

func (a aferoFS) Remove(path string) error {
	return a.fs.Remove(path)
}

func (a aferoFS) IsRelative(path string) bool {
	return !filepath.IsAbs(path)
}

func (a aferoFS) Parent(path string) string {
	return filepath.Dir(path)
}

func (a aferoFS) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (a aferoFS) FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := afero.Walk(a.fs, rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
