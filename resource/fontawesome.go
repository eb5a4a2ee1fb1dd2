package resource

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed fontawesome.css
var fontAwesomePatch string

var (
	iconBackgroundRe = regexp.MustCompile(`background-image:url\("[^"]*/ui-icons_[0-9a-f]{6}_[0-9]+x[0-9]+\.png[^"]+"\);`)
	iconPositionRe   = regexp.MustCompile(`.ui-icon-[^\{]+\{background-position:[^;]+;\}`)
)

// fontAwesomeResource strips jQuery UI icon sprites from a theme and appends
// a patch mapping the icons onto Font Awesome glyphs.
type fontAwesomeResource struct {
	decorated
}

func (r *fontAwesomeResource) Bytes() ([]byte, error) {
	css, err := r.readWrapped()
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(StripIcons(css))
	sb.WriteString(fontAwesomePatch)
	if err := r.appendCSS(&sb); err != nil {
		return nil, err
	}
	return r.encode(&sb)
}

// StripIcons removes icon sprite backgrounds and icon position rules.
func StripIcons(css string) string {
	css = iconBackgroundRe.ReplaceAllLiteralString(css, "")
	return iconPositionRe.ReplaceAllLiteralString(css, "")
}
