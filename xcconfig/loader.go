package xcconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyuni/xcodeproj/fsutil"
	"github.com/hyuni/xcodeproj/internal/ctxlog"
	"github.com/hyuni/xcodeproj/internal/includegraph"
)

// Loader reads xcconfig files through a filesystem collaborator and links
// them into configuration trees. A Loader is stateless between calls; each
// load builds an independent tree with no caching, so the same file included
// from two sites is read and parsed twice.
type Loader struct {
	fs fsutil.FileSystem
}

// NewLoader creates a Loader backed by the given filesystem.
func NewLoader(fs fsutil.FileSystem) *Loader {
	return &Loader{fs: fs}
}

// DroppedInclude describes an include directive that was present in a file
// but did not make it into the loaded tree.
type DroppedInclude struct {
	From     string // file containing the directive
	Path     string // literal path as written in the directive
	Resolved string // path after relative resolution
	Err      error  // why the nested load failed
}

// Result carries a loaded tree together with its load diagnostics.
type Result struct {
	Node *ConfigNode

	// Files lists every file read during the load, in first-visit order and
	// without duplicates.
	Files []string

	// Dropped lists the includes that failed to resolve. The silent-drop
	// policy keeps them out of Node; callers that care can inspect them here.
	Dropped []DroppedInclude
}

// Load reads the file at path and recursively loads everything it includes.
// It fails with NotFoundError when path does not exist and with CycleError
// when the include chain revisits a file; any other failure inside a nested
// include silently drops that include from the tree. Use LoadResult to
// observe dropped includes.
func (l *Loader) Load(ctx context.Context, path string) (*ConfigNode, error) {
	result, err := l.LoadResult(ctx, path)
	if err != nil {
		return nil, err
	}
	return result.Node, nil
}

// LoadResult behaves like Load but also reports which files were visited and
// which include directives were dropped.
func (l *Loader) LoadResult(ctx context.Context, path string) (*Result, error) {
	state := &loadState{
		fs:    l.fs,
		graph: includegraph.New(),
		seen:  make(map[string]bool),
	}
	node, err := state.load(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Result{Node: node, Files: state.files, Dropped: state.dropped}, nil
}

// loadState is the bookkeeping for one LoadResult call: the include graph
// for cycle detection plus the accumulated diagnostics.
type loadState struct {
	fs      fsutil.FileSystem
	graph   *includegraph.Graph
	files   []string
	seen    map[string]bool
	dropped []DroppedInclude
}

func (s *loadState) load(ctx context.Context, path string) (*ConfigNode, error) {
	logger := ctxlog.FromContext(ctx)

	if !s.fs.Exists(path) {
		return nil, &NotFoundError{Path: path}
	}
	text, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s.graph.AddNode(path)
	if !s.seen[path] {
		s.seen[path] = true
		s.files = append(s.files, path)
	}

	includePaths, settings := parse(text)
	node := &ConfigNode{BuildSettings: settings}

	for _, includePath := range includePaths {
		// Relative include paths resolve against the directory of the file
		// the directive appears in, not the process working directory.
		resolved := includePath
		if s.fs.IsRelative(includePath) {
			resolved = s.fs.Join(s.fs.Parent(path), includePath)
		}

		s.graph.AddNode(resolved)
		if err := s.graph.AddEdge(path, resolved); err != nil {
			logger.Error("Include cycle detected.", "file", path, "include", includePath)
			return nil, &CycleError{Path: resolved}
		}

		child, err := s.load(ctx, resolved)
		if err != nil {
			var cycleErr *CycleError
			if errors.As(err, &cycleErr) {
				return nil, err
			}
			logger.Warn("Include could not be resolved, skipping.", "file", path, "include", includePath, "error", err)
			s.dropped = append(s.dropped, DroppedInclude{
				From:     path,
				Path:     includePath,
				Resolved: resolved,
				Err:      err,
			})
			continue
		}
		node.Includes = append(node.Includes, Include{Path: includePath, Config: child})
	}

	logger.Debug("Loaded xcconfig file.", "path", path, "includes", len(node.Includes), "settings", len(node.BuildSettings))
	return node, nil
}
