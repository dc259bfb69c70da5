package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyuni/xcodeproj/internal/testutil"
	"github.com/hyuni/xcodeproj/xcconfig"
)

func TestNewConfig(t *testing.T) {
	t.Run("requires a config path", func(t *testing.T) {
		_, err := NewConfig(Config{})
		assert.ErrorContains(t, err, "ConfigPath is a required")
	})

	t.Run("overwrite requires an output path", func(t *testing.T) {
		_, err := NewConfig(Config{ConfigPath: "a.xcconfig", Overwrite: true})
		assert.ErrorContains(t, err, "-overwrite is only meaningful")
	})

	t.Run("valid config passes through", func(t *testing.T) {
		cfg, err := NewConfig(Config{ConfigPath: "a.xcconfig"})
		require.NoError(t, err)
		assert.Equal(t, "a.xcconfig", cfg.ConfigPath)
	})
}

func runApp(t *testing.T, cfg Config, files map[string]string) (string, string, error) {
	t.Helper()

	fs := testutil.WriteFiles(t, files)
	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}

	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = "debug"
	}

	application := NewApp(out, logs, appConfig, fs)
	runErr := application.Run(context.Background())
	return out.String(), logs.String(), runErr
}

func TestRun_PrintsFlattenedSettings(t *testing.T) {
	out, _, err := runApp(t, Config{ConfigPath: "app.xcconfig"}, map[string]string{
		"app.xcconfig":  "#include \"base.xcconfig\"\nNAME = \"App\"\n",
		"base.xcconfig": "NAME = \"Base\"\nVERSION = 1.0\n",
	})

	require.NoError(t, err)
	assert.Equal(t, "NAME = \"App\"\nVERSION = 1.0\n", out)
}

func TestRun_MissingRoot(t *testing.T) {
	_, _, err := runApp(t, Config{ConfigPath: "missing.xcconfig"}, nil)

	var notFound *xcconfig.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRun_DroppedIncludeIsLogged(t *testing.T) {
	out, logs, err := runApp(t, Config{ConfigPath: "app.xcconfig"}, map[string]string{
		"app.xcconfig": "#include \"missing.xcconfig\"\nKEY = value\n",
	})

	require.NoError(t, err)
	assert.Equal(t, "KEY = value\n", out)
	assert.Contains(t, logs, "Include could not be resolved")
	assert.Contains(t, logs, "missing.xcconfig")
}

func TestRun_DirectoryTarget(t *testing.T) {
	out, _, err := runApp(t, Config{ConfigPath: "configs"}, map[string]string{
		"configs/a.xcconfig": "A = 1\n",
		"configs/b.xcconfig": "B = 2\n",
	})

	require.NoError(t, err)
	// Each file gets a header comment when more than one target resolves.
	assert.Contains(t, out, "// configs/a.xcconfig\nA = 1\n")
	assert.Contains(t, out, "// configs/b.xcconfig\nB = 2\n")
}

func TestRun_WriteBack(t *testing.T) {
	files := map[string]string{
		"app.xcconfig":  "#include \"base.xcconfig\"\nNAME = \"App\"\n",
		"base.xcconfig": "VERSION = 1.0\n",
	}
	fs := testutil.WriteFiles(t, files)
	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}

	appConfig, err := NewConfig(Config{
		ConfigPath: "app.xcconfig",
		OutputPath: "merged.xcconfig",
		LogLevel:   "info",
	})
	require.NoError(t, err)

	application := NewApp(out, logs, appConfig, fs)
	require.NoError(t, application.Run(context.Background()))

	text, err := fs.ReadFile("merged.xcconfig")
	require.NoError(t, err)
	assert.Equal(t, "\nNAME = \"App\"\nVERSION = 1.0\n\n", text)

	t.Run("second run without overwrite fails", func(t *testing.T) {
		err := application.Run(context.Background())
		var exists *xcconfig.AlreadyExistsError
		require.ErrorAs(t, err, &exists)
	})
}

func TestRun_WriteBackRejectedForMultipleTargets(t *testing.T) {
	_, _, err := runApp(t, Config{
		ConfigPath: "configs",
		OutputPath: "merged.xcconfig",
	}, map[string]string{
		"configs/a.xcconfig": "A = 1\n",
		"configs/b.xcconfig": "B = 2\n",
	})

	assert.ErrorContains(t, err, "-o requires resolving a single xcconfig file")
}
