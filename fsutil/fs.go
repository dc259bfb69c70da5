// Package fsutil defines the filesystem collaborator consumed by the
// xcconfig core, with an OS-backed implementation and an afero-backed one
// for in-memory use.
package fsutil

// FileSystem is the capability surface the configuration core needs from a
// filesystem: existence checks, whole-file text reads and writes, deletion,
// path arithmetic, and discovery of files by extension.
type FileSystem interface {
	// Exists reports whether path refers to an existing file or directory.
	Exists(path string) bool

	// ReadFile returns the full text content of the file at path.
	ReadFile(path string) (string, error)

	// WriteFile replaces the file at path with the given text, creating the
	// file and any missing parent directories if necessary.
	WriteFile(path, text string) error

	// Remove deletes the file at path.
	Remove(path string) error

	// IsRelative reports whether path is relative rather than absolute.
	IsRelative(path string) bool

	// Parent returns the parent directory of path.
	Parent(path string) string

	// Join joins path elements into a single cleaned path.
	Join(elem ...string) string

	// FindFilesByExtension recursively searches rootPath for files whose
	// names end with extension and returns their full paths in lexical
	// walk order. A rootPath naming a matching file returns just that file.
	FindFilesByExtension(rootPath, extension string) ([]string, error)
}
