package resource

import "strings"

// noThemeResource replaces the theme with nothing but the appended stylesheet.
type noThemeResource struct {
	decorated
}

func (r *noThemeResource) Bytes() ([]byte, error) {
	var sb strings.Builder
	if err := r.appendCSS(&sb); err != nil {
		return nil, err
	}
	return r.encode(&sb)
}
