package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Separator delimits entries of a find or replace values string.
	Separator = ";"
	// MoveMarker starts a relative color entry such as "=-33".
	MoveMarker = "="
)

// ErrNoPreviousColor is returned when a move entry has no color before it.
var ErrNoPreviousColor = errors.New("no previous color was set")

// SplitValues splits a values string on Separator. Trailing empty entries are
// dropped, so "a;b;" yields two entries and ";" yields none. A string without
// a separator is returned as its only entry, even when empty.
func SplitValues(s string) []string {
	if !strings.Contains(s, Separator) {
		return []string{s}
	}
	values := strings.Split(s, Separator)
	for len(values) > 0 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}
	return values
}

// ResolveRelative replaces every move entry with the color obtained by moving
// the nearest preceding literal color. Resolved entries do not become the new
// base color. The input slice is not modified.
func ResolveRelative(values []string) ([]string, error) {
	out := make([]string, len(values))
	var (
		base    RGBColor
		hasBase bool
	)
	for i, v := range values {
		out[i] = v
		if c, ok := LookupColor(v); ok {
			base, hasBase = c, true
			continue
		}
		if !strings.HasPrefix(v, MoveMarker) {
			continue
		}
		if !hasBase {
			return nil, fmt.Errorf("entry %d %q: %w", i, v, ErrNoPreviousColor)
		}
		percentage, err := strconv.Atoi(strings.TrimPrefix(v, MoveMarker))
		if err != nil {
			return nil, fmt.Errorf("entry %d %q: %w", i, v, ErrInvalidPercentage)
		}
		moved, err := base.Move(percentage)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out[i] = moved.String()
	}
	return out, nil
}

// ParseValues splits a values string and resolves its relative colors.
func ParseValues(s string) ([]string, error) {
	return ResolveRelative(SplitValues(s))
}
