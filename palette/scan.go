package palette

import (
	"bytes"
	"errors"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ColorUsage is a color found in a stylesheet with its number of occurrences.
type ColorUsage struct {
	Color RGBColor
	Count int
}

// ScanColors lists the 6-digit hash colors of a stylesheet in order of first
// appearance. Spellings that differ only in case are counted as one color.
func ScanColors(data []byte) ([]ColorUsage, error) {
	lexer := css.NewLexer(parse.NewInput(bytes.NewReader(data)))

	var usages []ColorUsage
	index := make(map[RGBColor]int)
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return usages, err
			}
			return usages, nil
		case css.HashToken:
			c, ok := LookupColor(string(text))
			if !ok {
				continue
			}
			if i, seen := index[c]; seen {
				usages[i].Count++
				continue
			}
			index[c] = len(usages)
			usages = append(usages, ColorUsage{Color: c, Count: 1})
		}
	}
}

// FindValues joins the scanned colors into a values string usable as a find
// configuration.
func FindValues(usages []ColorUsage) string {
	var b bytes.Buffer
	for i, u := range usages {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(u.Color.String())
	}
	return b.String()
}
