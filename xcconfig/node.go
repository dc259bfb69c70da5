package xcconfig

import "maps"

// Include pairs the literal path string written in a #include directive with
// the fully loaded configuration it resolved to. The path is kept exactly as
// written, relative or absolute, so write-back reproduces the original text.
type Include struct {
	Path   string
	Config *ConfigNode
}

// ConfigNode is the in-memory representation of a single xcconfig file: its
// include directives, in file order, and the build settings defined in the
// file itself. Values are raw strings, surrounding quotes included; no type
// coercion happens at this layer.
type ConfigNode struct {
	Includes      []Include
	BuildSettings map[string]string
}

// New constructs a ConfigNode directly from an includes list and a settings
// mapping. The settings map is copied, so the caller keeps ownership of the
// argument. A nil map yields a node with an empty settings mapping.
func New(includes []Include, settings map[string]string) *ConfigNode {
	copied := make(map[string]string, len(settings))
	maps.Copy(copied, settings)
	return &ConfigNode{
		Includes:      includes,
		BuildSettings: copied,
	}
}

// Equal reports whether two nodes are structurally equal: the include lists
// must match pairwise in order, comparing both the literal path string and
// the child node recursively, while build settings compare as unordered
// key/value pairs.
func (n *ConfigNode) Equal(other *ConfigNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	if len(n.Includes) != len(other.Includes) {
		return false
	}
	for i := range n.Includes {
		if n.Includes[i].Path != other.Includes[i].Path {
			return false
		}
		if !n.Includes[i].Config.Equal(other.Includes[i].Config) {
			return false
		}
	}
	return maps.Equal(n.BuildSettings, other.BuildSettings)
}
