package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// ErrOutsideRoot is returned for locations that escape the web root.
var ErrOutsideRoot = errors.New("location outside web root")

// Store reads files from the web root, e.g. stylesheets appended to themes.
type Store struct {
	baseDir string
	fsys    fs.FS
}

// New creates a new Store rooted at the given directory.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, fsys: os.DirFS(baseDir)}
}

// NewFS creates a Store on top of an existing filesystem.
func NewFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// BaseDir returns the web root directory, empty for filesystem backed stores.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// ReadFile reads the file at a web root relative location such as
// "/resources/css/extra.css".
func (s *Store) ReadFile(location string) ([]byte, error) {
	name, err := clean(location)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	return data, nil
}

// Exists reports whether a regular file exists at location.
func (s *Store) Exists(location string) bool {
	name, err := clean(location)
	if err != nil {
		return false
	}
	fi, err := fs.Stat(s.fsys, name)
	return err == nil && fi.Mode().IsRegular()
}

func clean(location string) (string, error) {
	loc := strings.ReplaceAll(location, "\\", "/")
	if strings.Contains("/"+loc+"/", "/../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, location)
	}
	name := strings.TrimPrefix(path.Clean("/"+loc), "/")
	if name == "" || !fs.ValidPath(name) {
		return "", fmt.Errorf("invalid location %q", location)
	}
	return name, nil
}
