// Package testutil provides shared helpers for building in-memory
// configuration trees and capturing log output in tests.
package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/hyuni/xcodeproj/fsutil"
)

// WriteFiles builds an in-memory filesystem containing the given files. Map
// keys are paths, values are full file contents; parent directories are
// created as needed.
func WriteFiles(t *testing.T, files map[string]string) fsutil.FileSystem {
	t.Helper()

	memFs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(memFs, path, []byte(content), 0o644))
	}
	return fsutil.NewAfero(memFs)
}
