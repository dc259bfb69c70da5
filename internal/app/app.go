package app

import (
	"io"
	"log/slog"

	"github.com/hyuni/xcodeproj/fsutil"
	"github.com/hyuni/xcodeproj/xcconfig"
)

// App encapsulates the tool's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	fs     fsutil.FileSystem
	loader *xcconfig.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Logs go to errW,
// resolved settings to outW. A nil filesystem selects the real one.
func NewApp(outW, errW io.Writer, cfg *Config, fs fsutil.FileSystem) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	if fs == nil {
		fs = fsutil.NewOS()
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		fs:     fs,
		loader: xcconfig.NewLoader(fs),
	}
}
