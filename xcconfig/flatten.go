package xcconfig

import "maps"

// Flatten resolves the node and everything it inherits through includes into
// one effective settings mapping. The node's own settings take precedence
// over anything inherited; among includes, earlier-listed includes win over
// later-listed ones, and that ordering applies transitively through nested
// includes. The receiver is never modified; a fresh mapping is returned.
func (n *ConfigNode) Flatten() map[string]string {
	flattened := make(map[string]string, len(n.BuildSettings))
	maps.Copy(flattened, n.BuildSettings)

	// Layers come back ordered from lowest to highest precedence, so they
	// are applied from the far end with first-definition-wins semantics.
	layers := n.inheritedLayers()
	for i := len(layers) - 1; i >= 0; i-- {
		for key, value := range layers[i].BuildSettings {
			if _, ok := flattened[key]; !ok {
				flattened[key] = value
			}
		}
	}
	return flattened
}

// inheritedLayers decomposes the include graph below n into synthetic
// single-file nodes ordered from lowest to highest precedence: the include
// list is walked in reverse, and each include contributes its own nested
// layers before itself.
func (n *ConfigNode) inheritedLayers() []*ConfigNode {
	var layers []*ConfigNode
	for i := len(n.Includes) - 1; i >= 0; i-- {
		child := n.Includes[i].Config
		layers = append(layers, child.inheritedLayers()...)
		layers = append(layers, New(nil, child.BuildSettings))
	}
	return layers
}
