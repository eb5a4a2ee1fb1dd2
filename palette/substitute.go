package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSizeMismatch matches every *SizeMismatchError.
var ErrSizeMismatch = errors.New("find and replace list differ in length")

// SizeMismatchError reports find and replace lists of different lengths.
type SizeMismatchError struct {
	Resource string
	Find     int
	Replace  int
}

func (e *SizeMismatchError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("%v (%d != %d)", ErrSizeMismatch, e.Find, e.Replace)
	}
	return fmt.Sprintf("%v for resource %s (%d != %d)", ErrSizeMismatch, e.Resource, e.Find, e.Replace)
}

func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

func placeholder(i int) string {
	return Separator + strconv.Itoa(i) + Separator
}

// Substitute replaces every find[i] in css with replace[i]. Replacement goes
// through numbered placeholders first so that a replacement value never gets
// matched by a later find value. Empty find entries are ignored.
func Substitute(css string, find, replace []string) (string, error) {
	if len(find) != len(replace) {
		return "", &SizeMismatchError{Find: len(find), Replace: len(replace)}
	}
	for i, f := range find {
		if f == "" {
			continue
		}
		css = strings.ReplaceAll(css, f, placeholder(i))
	}
	for i, f := range find {
		if f == "" {
			continue
		}
		css = strings.ReplaceAll(css, placeholder(i), replace[i])
	}
	return css, nil
}

// Replacer holds resolved find and replace lists.
type Replacer struct {
	find    []string
	replace []string
}

// NewReplacer parses and resolves both values strings. Length mismatches are
// reported by Apply, where the resource is known.
func NewReplacer(find, replace string) (*Replacer, error) {
	f, err := ParseValues(find)
	if err != nil {
		return nil, fmt.Errorf("find values: %w", err)
	}
	r, err := ParseValues(replace)
	if err != nil {
		return nil, fmt.Errorf("replace values: %w", err)
	}
	return &Replacer{find: f, replace: r}, nil
}

// Find returns the resolved find list.
func (r *Replacer) Find() []string { return r.find }

// Apply substitutes css for the resource identified by url.
func (r *Replacer) Apply(url, css string) (string, error) {
	out, err := Substitute(css, r.find, r.replace)
	if err != nil {
		var sm *SizeMismatchError
		if errors.As(err, &sm) {
			sm.Resource = url
		}
		return "", err
	}
	return out, nil
}
