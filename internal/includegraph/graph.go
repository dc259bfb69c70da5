// Package includegraph tracks the directed graph of resolved include paths
// built up while a configuration tree is loading, and rejects any edge that
// would close an include cycle.
package includegraph

import (
	"fmt"
	"sync"
)

// Graph is a collection of file nodes and the include edges between them.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by resolved file path.
	nodes map[string]*node
}

// node represents a single file in the graph. It is un-exported to enforce
// interaction with the graph via the public API (using path strings), not by
// direct struct manipulation.
type node struct {
	// path is the resolved file path identifying the node.
	path string
	// includes holds the set of files this file includes (successors).
	includes map[string]*node
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode registers a resolved file path in the graph. If the path is
// already registered, the function does nothing.
func (g *Graph) AddNode(path string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[path]; ok {
		return
	}

	g.nodes[path] = &node{
		path:     path,
		includes: make(map[string]*node),
	}
}

// AddEdge records that the file at fromPath includes the file at toPath. An
// error is returned if either node is unknown, if the edge is
// self-referential, or if adding it would close an include cycle; a rejected
// edge is not retained.
func (g *Graph) AddEdge(fromPath, toPath string) error {
	if fromPath == toPath {
		return fmt.Errorf("file includes itself: %s", fromPath)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromPath]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromPath)
	}

	toNode, ok := g.nodes[toPath]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toPath)
	}

	fromNode.includes[toPath] = toNode

	if err := g.detectCycles(); err != nil {
		delete(fromNode.includes, toPath)
		return err
	}

	return nil
}

// detectCycles checks the graph for any cycle and reports the first node
// found to be involved in one. The caller must hold the write lock.
func (g *Graph) detectCycles() error {
	// Classic depth-first search with three sets of nodes:
	// permanent: nodes fully visited and known not to be part of a cycle.
	// temporary: nodes currently on the recursion stack of this traversal.
	// unvisited: all other nodes.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.path] {
			return nil
		}
		if temporary[n.path] {
			// A node already on the recursion stack means a cycle.
			return fmt.Errorf("cycle detected involving file '%s'", n.path)
		}

		temporary[n.path] = true

		for _, included := range n.includes {
			if err := visit(included); err != nil {
				return err
			}
		}

		delete(temporary, n.path)
		permanent[n.path] = true

		return nil
	}

	for _, n := range g.nodes {
		if !permanent[n.path] {
			if err := visit(n); err != nil {
				return err
			}
		}
	}

	return nil
}
