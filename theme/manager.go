package theme

import (
	"fmt"
	"io/fs"
	"mime"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"themeplane/model"
	"themeplane/resource"
)

// ResourcePath is the URL path prefix resources are served under.
const ResourcePath = "/javax.faces.resource/"

// Manager holds theme libraries and is the innermost resolver of a chain.
type Manager struct {
	librariesMap  map[string]*LibraryInfo
	librariesList []string
	log           *zap.Logger
}

// NewManager creates a new theme manager and loads every library found in
// dir of fsys. Each subdirectory is a library; its files are the resources.
func NewManager(fsys fs.FS, dir string, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		librariesMap: make(map[string]*LibraryInfo),
		log:          log.Named("theme"),
	}

	if err := m.loadLibraries(fsys, dir); err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}

	return m, nil
}

func (m *Manager) loadLibraries(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read themes directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		library := entry.Name()
		info := &LibraryInfo{
			Name:      library,
			Resources: make(map[string][]byte),
		}

		err := fs.WalkDir(fsys, path.Join(dir, library), func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				m.log.Warn("Unable to read theme resource", zap.String("path", p), zap.Error(err))
				return nil
			}
			name := strings.TrimPrefix(p, path.Join(dir, library)+"/")
			info.Resources[name] = data
			return nil
		})
		if err != nil {
			return fmt.Errorf("read library %s: %w", library, err)
		}

		if len(info.Resources) == 0 {
			m.log.Warn("No resources found in theme library", zap.String("library", library))
			continue
		}

		if css, ok := info.Resources[resource.ThemeName]; ok {
			info.Meta = ParseThemeMetadata(string(css))
		} else {
			info.Meta = ThemeMetadata{Accent: defaultAccent}
		}
		if info.Meta.Display == "" {
			info.Meta.Display = displayName(library)
		}

		m.librariesMap[library] = info
		m.librariesList = append(m.librariesList, library)
	}

	sort.Strings(m.librariesList)

	m.log.Info("Loaded theme libraries", zap.Int("count", len(m.librariesList)))
	for _, name := range m.librariesList {
		m.log.Debug("Theme library",
			zap.String("library", name),
			zap.Int("resources", len(m.librariesMap[name].Resources)),
			zap.Bool("theme", resource.IsPrimeFacesTheme(resource.ThemeName, name)))
	}

	return nil
}

// GetLibrary returns a library by name, or nil if not found.
func (m *Manager) GetLibrary(name string) *LibraryInfo {
	return m.librariesMap[name]
}

// ListLibraries returns the sorted names of all libraries.
func (m *Manager) ListLibraries() []string {
	return m.librariesList
}

// Libraries describes every library.
func (m *Manager) Libraries() []model.Library {
	out := make([]model.Library, 0, len(m.librariesList))
	for _, name := range m.librariesList {
		info := m.librariesMap[name]
		resources := make([]string, 0, len(info.Resources))
		for r := range info.Resources {
			resources = append(resources, r)
		}
		sort.Strings(resources)
		out = append(out, model.Library{
			Name:      name,
			Display:   info.Meta.Display,
			Accent:    info.Meta.Accent,
			Resources: resources,
		})
	}
	return out
}

// ResourceURL returns the URL a resource is requested with.
func ResourceURL(name, library string) string {
	if library == "" {
		return ResourcePath + name
	}
	return ResourcePath + name + "?ln=" + library
}

// CreateResource implements resource.Resolver.
func (m *Manager) CreateResource(name, library string) (resource.Resource, error) {
	info, ok := m.librariesMap[library]
	if !ok {
		return nil, fmt.Errorf("library %q: %w", library, resource.ErrNotFound)
	}
	data, ok := info.Resources[name]
	if !ok {
		return nil, fmt.Errorf("%s in library %q: %w", name, library, resource.ErrNotFound)
	}
	return &fileResource{name: name, library: library, data: data}, nil
}

// fileResource is a resource loaded from the themes filesystem.
type fileResource struct {
	name    string
	library string
	data    []byte
}

func (r *fileResource) Name() string    { return r.name }
func (r *fileResource) Library() string { return r.library }
func (r *fileResource) URL() string     { return ResourceURL(r.name, r.library) }

func (r *fileResource) ContentType() string {
	if ct := mime.TypeByExtension(path.Ext(r.name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func (r *fileResource) Bytes() ([]byte, error) {
	return r.data, nil
}
