package resource

import (
	"fmt"
	"io/fs"
	"sync/atomic"
	"testing/fstest"
)

type memResource struct {
	name, library string
	content       []byte
	reads         *atomic.Int32
}

func (r *memResource) Name() string        { return r.name }
func (r *memResource) Library() string     { return r.library }
func (r *memResource) ContentType() string { return "text/css" }
func (r *memResource) URL() string {
	return "/javax.faces.resource/" + r.name + "?ln=" + r.library
}

func (r *memResource) Bytes() ([]byte, error) {
	r.reads.Add(1)
	return r.content, nil
}

// memResolver serves resources from a map keyed by "library/name".
type memResolver struct {
	files map[string]string
	reads atomic.Int32
}

func (m *memResolver) CreateResource(name, library string) (Resource, error) {
	content, ok := m.files[library+"/"+name]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", library, name, ErrNotFound)
	}
	return &memResource{name: name, library: library, content: []byte(content), reads: &m.reads}, nil
}

type fsFiles struct {
	fsys fs.FS
}

func (f fsFiles) ReadFile(location string) ([]byte, error) {
	return fs.ReadFile(f.fsys, location)
}

func newFiles(files map[string]string) FileReader {
	m := fstest.MapFS{}
	for name, data := range files {
		m[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsFiles{fsys: m}
}
