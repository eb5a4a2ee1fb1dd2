package theme

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeplane/model"
	"themeplane/resource"
)

const jepsarCSS = `/*
 * Theme: jepsar
 * Display: Jepsar
 * Accent: #086CA2
 */
.ui-widget{color:#086CA2}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"themes/primefaces-jepsar/theme.css":         {Data: []byte(jepsarCSS)},
		"themes/primefaces-jepsar/images/icons.png":  {Data: []byte{0x89, 'P', 'N', 'G'}},
		"themes/primefaces-blue-sky/theme.css":       {Data: []byte(".ui-widget{color:#000000}")},
		"themes/empty/.keep/dir/placeholder.txt.bak": {Data: nil},
		"themes/README.md":                           {Data: []byte("not a library")},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(testFS(), "themes", nil)
	require.NoError(t, err)
	return m
}

func TestParseThemeMetadata(t *testing.T) {
	meta := ParseThemeMetadata(jepsarCSS)
	assert.Equal(t, "jepsar", meta.Theme)
	assert.Equal(t, "Jepsar", meta.Display)
	assert.Equal(t, "#086CA2", meta.Accent)

	meta = ParseThemeMetadata(".a{}")
	assert.Equal(t, ThemeMetadata{Accent: defaultAccent}, meta)

	meta = ParseThemeMetadata("/* unterminated")
	assert.Equal(t, defaultAccent, meta.Accent)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Blue Sky", displayName("primefaces-blue-sky"))
	assert.Equal(t, "Other", displayName("other"))
}

func TestManager_Load(t *testing.T) {
	m := newTestManager(t)
	assert.Equal(t, []string{"empty", "primefaces-blue-sky", "primefaces-jepsar"}, m.ListLibraries())

	lib := m.GetLibrary("primefaces-jepsar")
	require.NotNil(t, lib)
	assert.Equal(t, "Jepsar", lib.Meta.Display)
	assert.Contains(t, lib.Resources, "images/icons.png")
	assert.Nil(t, m.GetLibrary("missing"))

	libs := m.Libraries()
	require.Len(t, libs, 3)
	assert.Equal(t, model.Library{
		Name:      "primefaces-blue-sky",
		Display:   "Blue Sky",
		Accent:    defaultAccent,
		Resources: []string{"theme.css"},
	}, libs[1])
}

func TestManager_MissingDir(t *testing.T) {
	_, err := NewManager(fstest.MapFS{}, "themes", nil)
	assert.Error(t, err)
}

func TestManager_CreateResource(t *testing.T) {
	m := newTestManager(t)

	res, err := m.CreateResource("theme.css", "primefaces-jepsar")
	require.NoError(t, err)
	assert.Equal(t, "theme.css", res.Name())
	assert.Equal(t, "primefaces-jepsar", res.Library())
	assert.Equal(t, "/javax.faces.resource/theme.css?ln=primefaces-jepsar", res.URL())
	assert.Contains(t, res.ContentType(), "text/css")
	data, err := res.Bytes()
	require.NoError(t, err)
	assert.Equal(t, jepsarCSS, string(data))

	_, err = m.CreateResource("missing.css", "primefaces-jepsar")
	assert.ErrorIs(t, err, resource.ErrNotFound)
	_, err = m.CreateResource("theme.css", "missing")
	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func serve(t *testing.T, variant model.Variant, params resource.MapParams, target string) *httptest.ResponseRecorder {
	t.Helper()
	m := newTestManager(t)
	resolver, err := resource.NewResolver(variant, m, &resource.Env{Params: params})
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewHandler(m, resolver, resource.UTF8, nil).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleResource_Passthrough(t *testing.T) {
	rec := serve(t, model.VariantPassthrough, nil, "/javax.faces.resource/theme.css?ln=primefaces-jepsar")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, jepsarCSS, rec.Body.String())
}

func TestHandleResource_Replace(t *testing.T) {
	params := resource.MapParams{
		resource.ParamFindValues:    "#086CA2",
		resource.ParamReplaceValues: "#123456",
	}
	rec := serve(t, model.VariantReplace, params, "/javax.faces.resource/theme.css?ln=primefaces-jepsar")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".ui-widget{color:#123456}")
	assert.NotContains(t, rec.Body.String(), "#086CA2")
}

func TestHandleResource_NestedName(t *testing.T) {
	rec := serve(t, model.VariantNoTheme, nil, "/javax.faces.resource/images/icons.png?ln=primefaces-jepsar")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestHandleResource_NotFound(t *testing.T) {
	rec := serve(t, model.VariantFontAwesome, nil, "/javax.faces.resource/theme.css?ln=missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleResource_ConfigurationError(t *testing.T) {
	rec := serve(t, model.VariantReplace, nil, "/javax.faces.resource/theme.css?ln=primefaces-jepsar")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleLibraries(t *testing.T) {
	rec := serve(t, model.VariantPassthrough, nil, "/api/libraries")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var libs []model.Library
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &libs))
	require.Len(t, libs, 3)
	assert.Equal(t, "primefaces-jepsar", libs[2].Name)
	assert.Equal(t, "#086CA2", libs[2].Accent)
}
