package xcconfig

import (
	"regexp"
	"strings"
)

// The format has exactly two meaningful line shapes. A line matching neither
// is ignored, which is how blank lines, comments, and malformed text are
// tolerated; there is no dedicated comment syntax.
var (
	// The #include token is matched case-insensitively; the quoted path must
	// end in the .xcconfig suffix.
	includePattern = regexp.MustCompile(`(?i:#include)\s+"([^"]+\.xcconfig)"`)

	// A setting key may carry conditional suffixes such as [sdk=iphoneos*],
	// so the separator is the first = after the bracketed parts. The value
	// keeps its surrounding quotes, if any, and must be non-empty.
	settingPattern = regexp.MustCompile(`^\s*([A-Za-z0-9_]+(?:\[[^\]]+\])*)\s*=\s*(\S.*?)\s*$`)
)

// parseInclude returns the unquoted include path from a line, or "" when the
// line does not contain an include directive. Only the first match on a line
// counts.
func parseInclude(line string) string {
	match := includePattern.FindStringSubmatch(line)
	if match == nil {
		return ""
	}
	return match[1]
}

// parseSetting returns the key and raw value of a setting assignment line.
// ok is false for lines without the `key = value` shape.
func parseSetting(line string) (key, value string, ok bool) {
	match := settingPattern.FindStringSubmatch(line)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}

// parse splits raw file text into the include paths, in file order, and the
// file's own settings. When a key is assigned more than once the later
// assignment wins.
func parse(text string) (includePaths []string, settings map[string]string) {
	settings = make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		if path := parseInclude(line); path != "" {
			includePaths = append(includePaths, path)
			continue
		}
		if key, value, ok := parseSetting(line); ok {
			settings[key] = value
		}
	}
	return includePaths, settings
}
