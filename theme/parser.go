package theme

import (
	"strings"
)

const defaultAccent = "rgba(136,192,208,.85)"

// ParseThemeMetadata parses metadata from the first CSS comment block, e.g.
//
//	/*
//	 * Theme: jepsar
//	 * Display: Jepsar
//	 * Accent: #086CA2
//	 */
func ParseThemeMetadata(cssContent string) ThemeMetadata {
	meta := ThemeMetadata{Accent: defaultAccent}

	startIdx := strings.Index(cssContent, "/*")
	if startIdx == -1 {
		return meta
	}

	endIdx := strings.Index(cssContent[startIdx:], "*/")
	if endIdx == -1 {
		return meta
	}

	metadataBlock := cssContent[startIdx+2 : startIdx+endIdx]
	for _, line := range strings.Split(metadataBlock, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Theme":
			meta.Theme = value
		case "Display":
			meta.Display = value
		case "Accent":
			meta.Accent = value
		}
	}

	return meta
}

// displayName turns "primefaces-blue-sky" into "Blue Sky".
func displayName(library string) string {
	name := strings.TrimPrefix(library, "primefaces-")
	parts := strings.Split(name, "-")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
