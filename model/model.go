package model

import "fmt"

// Variant selects how PrimeFaces themes are rewritten.
type Variant string

const (
	VariantPassthrough Variant = "passthrough"
	VariantFontAwesome Variant = "fontawesome"
	VariantReplace     Variant = "replace"
	VariantNoTheme     Variant = "notheme"
)

// Variants lists every known variant.
var Variants = []Variant{VariantPassthrough, VariantFontAwesome, VariantReplace, VariantNoTheme}

// ParseVariant returns the variant named s.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q", s)
}

// Library describes a theme library served by the theme store.
type Library struct {
	Name      string   `json:"name"`
	Display   string   `json:"display"`
	Accent    string   `json:"accent"`
	Resources []string `json:"resources"`
}
