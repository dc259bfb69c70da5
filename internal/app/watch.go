package app

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/hyuni/xcodeproj/internal/ctxlog"
)

// watch re-resolves and re-prints whenever one of the loaded files changes.
// It blocks until the context is cancelled or the watcher shuts down.
func (a *App) watch(ctx context.Context, files []string) error {
	logger := ctxlog.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	dirs := make(map[string]bool)

	// Watch parent directories rather than the files themselves; directory
	// watches keep reporting after editors replace a file by rename.
	track := func(files []string) {
		for _, file := range files {
			watched[file] = true
			dir := a.fs.Parent(file)
			if dirs[dir] {
				continue
			}
			if err := watcher.Add(dir); err != nil {
				logger.Warn("Could not watch directory.", "dir", dir, "error", err)
				continue
			}
			dirs[dir] = true
		}
	}
	track(files)

	logger.Info("Watching for changes.", "files", len(watched))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Info("Change detected, re-resolving.", "file", event.Name, "op", event.Op.String())
			updated, err := a.resolveAll(ctx)
			if err != nil {
				logger.Error("Re-resolve failed.", "error", err)
				continue
			}
			track(updated)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error.", "error", err)
		}
	}
}
