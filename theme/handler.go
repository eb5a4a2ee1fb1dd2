package theme

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"themeplane/resource"
)

// Handler handles theme-related HTTP requests.
type Handler struct {
	manager  *Manager
	resolver resource.Resolver
	charset  resource.Charset
	log      *zap.Logger
}

// NewHandler creates a new theme handler serving resources through resolver.
func NewHandler(manager *Manager, resolver resource.Resolver, charset resource.Charset, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		manager:  manager,
		resolver: resolver,
		charset:  charset,
		log:      log.Named("http"),
	}
}

// Register adds the theme routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+ResourcePath+"{name...}", h.HandleResource)
	mux.HandleFunc("GET /api/libraries", h.HandleLibraries)
}

// HandleResource serves a resource of the library given by the "ln" query
// parameter, rewritten by the resolver chain.
func (h *Handler) HandleResource(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		name = strings.TrimPrefix(r.URL.Path, ResourcePath)
	}
	library := r.URL.Query().Get("ln")

	res, err := h.resolver.CreateResource(name, library)
	if err != nil {
		h.fail(w, name, library, err)
		return
	}
	data, err := res.Bytes()
	if err != nil {
		h.fail(w, name, library, err)
		return
	}

	contentType := res.ContentType()
	if strings.HasPrefix(contentType, "text/css") {
		contentType = "text/css; charset=" + h.charset.Name()
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(data)
}

func (h *Handler) fail(w http.ResponseWriter, name, library string, err error) {
	if errors.Is(err, resource.ErrNotFound) {
		http.Error(w, "resource not found", http.StatusNotFound)
		return
	}
	h.log.Error("Unable to serve resource", zap.String("name", name), zap.String("library", library), zap.Error(err))
	http.Error(w, "failed to render resource", http.StatusInternalServerError)
}

// HandleLibraries returns the available theme libraries.
func (h *Handler) HandleLibraries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(h.manager.Libraries()); err != nil {
		h.log.Warn("Unable to encode libraries", zap.Error(err))
	}
}
