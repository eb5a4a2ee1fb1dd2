package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"themeplane/model"
	"themeplane/resource"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.DataDir = dir
	cfg.Variant = model.VariantFontAwesome
	cfg.WebRoot = "/srv/www"
	cfg.Params[resource.ParamAppendCSSFile] = "/css/extra.css"

	require.NoError(t, Save(cfg))
	_, err := os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_UnknownField(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("bogus: 1\n"), 0o644))
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	data := "variant: notheme\nparams:\n  theme.APPEND_CSS_FILE: /extra.css\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, model.VariantNoTheme, cfg.Variant)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "UTF-8", cfg.Charset)
	assert.Equal(t, "normal", cfg.Logging.Level)
	assert.Equal(t, "/extra.css", cfg.Params[resource.ParamAppendCSSFile])
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("THEMEPLANE_VARIANT", "replace")
	t.Setenv("THEMEPLANE_LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("THEMEPLANE_REPLACE_VALUES", "#000000")
	t.Setenv("THEMEPLANE_FIND_VALUES", "#FFFFFF")
	t.Setenv("THEMEPLANE_LOG_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, model.VariantReplace, cfg.Variant)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "#000000", cfg.Params[resource.ParamReplaceValues])
	assert.Equal(t, "#FFFFFF", cfg.Params[resource.ParamFindValues])
	_, ok := cfg.Params[resource.ParamAppendCSSFile]
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Variant = "bogus"
	cfg.Charset = "no-such-charset"
	cfg.ListenAddr = "nope"
	cfg.Logging.Level = "loud"
	cfg.Params = map[string]string{resource.ParamAppendCSSFile: "/x.css"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 5)
}

func TestValidate_ReplaceNeedsValues(t *testing.T) {
	cfg := Default()
	delete(cfg.Params, resource.ParamReplaceValues)
	assert.ErrorIs(t, cfg.Validate(), ErrNoReplacements)

	cfg.Variant = model.VariantFontAwesome
	assert.NoError(t, cfg.Validate())
}

func TestLoggingConfig_Prepare(t *testing.T) {
	for _, level := range []string{"none", "normal", "debug"} {
		log, err := LoggingConfig{Level: level}.Prepare()
		require.NoError(t, err)
		require.NotNil(t, log)
	}
	log, _ := LoggingConfig{Level: "debug"}.Prepare()
	assert.True(t, log.Core().Enabled(-1))
	log, _ = LoggingConfig{Level: "normal"}.Prepare()
	assert.False(t, log.Core().Enabled(-1))
}
