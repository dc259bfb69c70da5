package xcconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInclude(t *testing.T) {
	t.Run("basic directive", func(t *testing.T) {
		assert.Equal(t, "base.xcconfig", parseInclude(`#include "base.xcconfig"`))
	})

	t.Run("relative and absolute paths are captured literally", func(t *testing.T) {
		assert.Equal(t, "../shared/base.xcconfig", parseInclude(`#include "../shared/base.xcconfig"`))
		assert.Equal(t, "/opt/configs/base.xcconfig", parseInclude(`#include "/opt/configs/base.xcconfig"`))
	})

	t.Run("token matches case-insensitively", func(t *testing.T) {
		assert.Equal(t, "base.xcconfig", parseInclude(`#INCLUDE "base.xcconfig"`))
		assert.Equal(t, "base.xcconfig", parseInclude(`#Include "base.xcconfig"`))
	})

	t.Run("suffix is case-sensitive", func(t *testing.T) {
		assert.Empty(t, parseInclude(`#include "base.XCCONFIG"`))
	})

	t.Run("directive anywhere on the line", func(t *testing.T) {
		assert.Equal(t, "base.xcconfig", parseInclude(`  #include "base.xcconfig" trailing junk`))
	})

	t.Run("first match wins", func(t *testing.T) {
		line := `#include "a.xcconfig" #include "b.xcconfig"`
		assert.Equal(t, "a.xcconfig", parseInclude(line))
	})

	t.Run("non-matches", func(t *testing.T) {
		assert.Empty(t, parseInclude(`#include "base.plist"`))
		assert.Empty(t, parseInclude(`#include base.xcconfig`))
		assert.Empty(t, parseInclude(`include "base.xcconfig"`))
		assert.Empty(t, parseInclude(``))
	})
}

func TestParseSetting(t *testing.T) {
	t.Run("basic assignment", func(t *testing.T) {
		key, value, ok := parseSetting(`SWIFT_VERSION = 5.0`)
		require.True(t, ok)
		assert.Equal(t, "SWIFT_VERSION", key)
		assert.Equal(t, "5.0", value)
	})

	t.Run("quoted value keeps its quotes", func(t *testing.T) {
		key, value, ok := parseSetting(`PRODUCT_NAME = "My App"`)
		require.True(t, ok)
		assert.Equal(t, "PRODUCT_NAME", key)
		assert.Equal(t, `"My App"`, value)
	})

	t.Run("value may contain equals signs", func(t *testing.T) {
		key, value, ok := parseSetting(`OTHER_SWIFT_FLAGS = -DFOO=1 -DBAR=2`)
		require.True(t, ok)
		assert.Equal(t, "OTHER_SWIFT_FLAGS", key)
		assert.Equal(t, "-DFOO=1 -DBAR=2", value)
	})

	t.Run("conditional key suffix", func(t *testing.T) {
		key, value, ok := parseSetting(`OTHER_LDFLAGS[sdk=iphoneos*] = -lz`)
		require.True(t, ok)
		assert.Equal(t, "OTHER_LDFLAGS[sdk=iphoneos*]", key)
		assert.Equal(t, "-lz", value)
	})

	t.Run("whitespace around separator is tolerated", func(t *testing.T) {
		key, value, ok := parseSetting(`  ENABLE_BITCODE=NO  `)
		require.True(t, ok)
		assert.Equal(t, "ENABLE_BITCODE", key)
		assert.Equal(t, "NO", value)
	})

	t.Run("non-matches", func(t *testing.T) {
		for _, line := range []string{
			`EMPTY_VALUE = `,
			`= value`,
			`// a comment`,
			`just some text`,
			``,
		} {
			_, _, ok := parseSetting(line)
			assert.False(t, ok, "line %q should not parse as a setting", line)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("mixed content", func(t *testing.T) {
		text := `// build configuration
#include "base.xcconfig"

SWIFT_VERSION = 5.0
#include "extra.xcconfig"
PRODUCT_NAME = "App"

garbage line that matches nothing
`
		includePaths, settings := parse(text)

		assert.Equal(t, []string{"base.xcconfig", "extra.xcconfig"}, includePaths)
		assert.Equal(t, map[string]string{
			"SWIFT_VERSION": "5.0",
			"PRODUCT_NAME":  `"App"`,
		}, settings)
	})

	t.Run("later duplicate key wins", func(t *testing.T) {
		_, settings := parse("KEY = first\nKEY = second\n")
		assert.Equal(t, map[string]string{"KEY": "second"}, settings)
	})

	t.Run("empty text", func(t *testing.T) {
		includePaths, settings := parse("")
		assert.Empty(t, includePaths)
		assert.Empty(t, settings)
	})
}
