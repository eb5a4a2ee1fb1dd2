package resource

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Charset converts between CSS text and bytes in a response character encoding.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the default response charset.
var UTF8 = MustCharset("utf-8")

// LookupCharset finds an encoding by its WHATWG label, e.g. "UTF-8" or "windows-1252".
func LookupCharset(label string) (Charset, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return Charset{}, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return Charset{name: name, enc: enc}, nil
}

// MustCharset is like LookupCharset but panics on unknown labels.
func MustCharset(label string) Charset {
	cs, err := LookupCharset(label)
	if err != nil {
		panic(err)
	}
	return cs
}

// Name returns the canonical name of the charset.
func (c Charset) Name() string {
	return c.name
}

// Encode converts text into the charset. Characters the charset cannot
// represent are written as '?'.
func (c Charset) Encode(s string) ([]byte, error) {
	b, err := c.enc.NewEncoder().String(s)
	if err == nil {
		return []byte(b), nil
	}
	b, err = c.enc.NewEncoder().String(c.substituteUnsupported(s))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.name, err)
	}
	return []byte(b), nil
}

// substituteUnsupported replaces every rune with no mapping in the charset by
// '?'. Runes are checked one at a time and the result is encoded in one pass,
// so stateful encodings still see the whole text.
func (c Charset) substituteUnsupported(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if _, err := c.enc.NewEncoder().String(string(r)); err != nil {
			sb.WriteByte('?')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Decode converts bytes in the charset into text.
func (c Charset) Decode(b []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", c.name, err)
	}
	return string(out), nil
}
