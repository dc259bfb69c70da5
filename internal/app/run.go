package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hyuni/xcodeproj/internal/ctxlog"
	"github.com/hyuni/xcodeproj/xcconfig"
)

// Run executes the main application logic: resolve the configured path,
// print the flattened settings, optionally write them back, and optionally
// keep watching for changes.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := a.resolveAll(ctx)
	if err != nil {
		return err
	}

	if a.config.Watch {
		if len(files) == 0 {
			return fmt.Errorf("nothing to watch: no xcconfig files under %s", a.config.ConfigPath)
		}
		return a.watch(ctx, files)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveAll expands the configured path into target files, resolves each
// one, and returns every file visited across all loads.
func (a *App) resolveAll(ctx context.Context) ([]string, error) {
	if !a.fs.Exists(a.config.ConfigPath) {
		return nil, &xcconfig.NotFoundError{Path: a.config.ConfigPath}
	}

	targets, err := a.fs.FindFilesByExtension(a.config.ConfigPath, ".xcconfig")
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", a.config.ConfigPath, err)
	}
	if len(targets) == 0 {
		a.logger.Warn("No xcconfig files found.", "path", a.config.ConfigPath)
		return nil, nil
	}
	if len(targets) > 1 && a.config.OutputPath != "" {
		return nil, errors.New("-o requires resolving a single xcconfig file")
	}
	a.logger.Debug("Resolved target files.", "count", len(targets))

	var visited []string
	for _, target := range targets {
		files, err := a.resolveOne(ctx, target, len(targets) > 1)
		if err != nil {
			return nil, err
		}
		visited = append(visited, files...)
	}
	return visited, nil
}

// resolveOne loads and flattens a single root file, prints the result, and
// performs the optional write-back. It returns the files the load visited.
func (a *App) resolveOne(ctx context.Context, path string, withHeader bool) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	result, err := a.loader.LoadResult(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	flattened := result.Node.Flatten()

	if withHeader {
		fmt.Fprintf(a.outW, "// %s\n", path)
	}
	keys := make([]string, 0, len(flattened))
	for key := range flattened {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(a.outW, "%s = %s\n", key, flattened[key])
	}
	if withHeader {
		fmt.Fprintln(a.outW)
	}

	if a.config.OutputPath != "" {
		merged := xcconfig.New(nil, flattened)
		if err := xcconfig.Write(a.fs, merged, a.config.OutputPath, a.config.Overwrite); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", a.config.OutputPath, err)
		}
		logger.Info("Flattened configuration written.", "path", a.config.OutputPath)
	}

	return result.Files, nil
}
