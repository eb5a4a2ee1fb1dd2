package theme

// ThemeMetadata represents metadata parsed from the header comment of a theme.
type ThemeMetadata struct {
	Theme   string
	Display string
	Accent  string
}

// LibraryInfo contains the resources of one theme library.
type LibraryInfo struct {
	Name      string
	Meta      ThemeMetadata
	Resources map[string][]byte
}
