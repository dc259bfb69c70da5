package xcconfig

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hyuni/xcodeproj/fsutil"
)

// Serialize renders the node back to xcconfig text: one include line per
// entry in stored order, a blank separator line, then one setting line per
// key, ending with a blank line. Settings are written in sorted key order so
// output is deterministic. Unmatched lines from an earlier parse (comments,
// unusual spacing) are not reproduced; only structural content survives.
func Serialize(n *ConfigNode) string {
	var b strings.Builder
	for _, include := range n.Includes {
		fmt.Fprintf(&b, "#include \"%s\"\n", include.Path)
	}
	b.WriteString("\n")

	keys := make([]string, 0, len(n.BuildSettings))
	for key := range n.BuildSettings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, "%s = %s\n", key, n.BuildSettings[key])
	}
	b.WriteString("\n")
	return b.String()
}

// Write serializes the node to path. An existing target is deleted first
// when overwrite is set; without it the write fails with AlreadyExistsError.
func Write(fs fsutil.FileSystem, n *ConfigNode, path string, overwrite bool) error {
	if fs.Exists(path) {
		if !overwrite {
			return &AlreadyExistsError{Path: path}
		}
		if err := fs.Remove(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	if err := fs.WriteFile(path, Serialize(n)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
