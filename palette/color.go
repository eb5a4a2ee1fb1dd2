package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidColor is returned for strings that are not 6-digit hex colors.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidPercentage is returned for moves outside [-99, 99].
	ErrInvalidPercentage = errors.New("percentage should be between -99 and 99")
)

// RGBColor is a 24-bit color that can be darkened or lightened by a percentage.
type RGBColor struct {
	R, G, B uint8
}

// ParseColor parses a hex color with or without the leading '#', for example
// "086ca2" or "#086CA2".
func ParseColor(s string) (RGBColor, error) {
	hex := strings.TrimPrefix(strings.ToUpper(s), "#")
	if len(hex) != 6 {
		return RGBColor{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return RGBColor{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGBColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// LookupColor reports whether s is a valid hex color and returns it.
func LookupColor(s string) (RGBColor, bool) {
	c, err := ParseColor(s)
	if err != nil {
		return RGBColor{}, false
	}
	return c, true
}

// Move returns a new color with every channel moved towards 255 (percentage > 0)
// or towards 0 (percentage < 0).
func (c RGBColor) Move(percentage int) (RGBColor, error) {
	if percentage < -99 || percentage > 99 {
		return RGBColor{}, fmt.Errorf("%w: %d", ErrInvalidPercentage, percentage)
	}
	return RGBColor{
		R: moveChannel(c.R, percentage),
		G: moveChannel(c.G, percentage),
		B: moveChannel(c.B, percentage),
	}, nil
}

// moveChannel shifts a channel by a percentage of the distance to its bound,
// so moveChannel(100, -50) is 50 and moveChannel(155, 50) is 205.
func moveChannel(channel uint8, percentage int) uint8 {
	if percentage == 0 {
		return channel
	}
	v := int(channel)
	diff := 255 - v
	if percentage < 0 {
		diff = v
	}
	return uint8(v + diff*percentage/100)
}

// String returns the color as an upper case "#RRGGBB" string.
func (c RGBColor) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
