// Package resource wraps theme stylesheets on their way from the theme store
// to the browser. A chain of Resolvers decides for every requested resource
// whether it is served as is or through one of the rewriting decorators.
package resource

import (
	"errors"
	"strings"
)

const (
	// ThemeName is the resource name of a PrimeFaces theme.
	ThemeName = "theme.css"
	// ThemeLibraryPrefix starts the library name of every PrimeFaces theme.
	ThemeLibraryPrefix = "primefaces-"
)

// ErrNotFound is returned by resolvers for unknown resources.
var ErrNotFound = errors.New("resource not found")

// Resource is a named piece of content in a library.
type Resource interface {
	Name() string
	Library() string
	// URL identifies the resource as requested by the browser.
	URL() string
	ContentType() string
	// Bytes returns the content encoded in the response charset.
	Bytes() ([]byte, error)
}

// Resolver creates resources by name and library.
type Resolver interface {
	CreateResource(name, library string) (Resource, error)
}

// IsPrimeFacesTheme reports whether name and library denote a PrimeFaces theme.
func IsPrimeFacesTheme(name, library string) bool {
	return name == ThemeName && strings.HasPrefix(library, ThemeLibraryPrefix)
}
