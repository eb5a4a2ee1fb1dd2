package config

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"themeplane/model"
	"themeplane/resource"
)

// FileName is the name of the configuration file in the data directory.
const FileName = "themeplane.yaml"

// ErrNoReplacements is reported when the replace variant has nothing to replace with.
var ErrNoReplacements = resource.ErrNoReplacements

type Config struct {
	DataDir    string            `yaml:"data_dir" env:"THEMEPLANE_DATA_DIR"`
	ListenAddr string            `yaml:"listen_addr" env:"THEMEPLANE_LISTEN_ADDR"`
	Variant    model.Variant     `yaml:"variant" env:"THEMEPLANE_VARIANT"`
	Charset    string            `yaml:"charset" env:"THEMEPLANE_CHARSET"`
	WebRoot    string            `yaml:"web_root,omitempty" env:"THEMEPLANE_WEB_ROOT"`
	ThemesDir  string            `yaml:"themes_dir,omitempty" env:"THEMEPLANE_THEMES_DIR"`
	Params     map[string]string `yaml:"params,omitempty"`
	Logging    LoggingConfig     `yaml:"logging"`
}

// paramsEnv maps environment variables onto initialization parameters.
type paramsEnv struct {
	FindValues    *string `env:"THEMEPLANE_FIND_VALUES"`
	ReplaceValues *string `env:"THEMEPLANE_REPLACE_VALUES"`
	AppendCSSFile *string `env:"THEMEPLANE_APPEND_CSS_FILE"`
}

func Default() Config {
	return Config{
		DataDir:    ".",
		ListenAddr: ":8080",
		Variant:    model.VariantReplace,
		Charset:    "UTF-8",
		Params: map[string]string{
			resource.ParamReplaceValues: "#086CA2;=67;=33;=-33;=-67;" +
				"#B90091;=67;=33;=-33;=-67;" +
				"#FF8B00;=67;=33;=-33;=-67;" +
				"#F4F4F4;unset;" +
				"@import url(https://fonts.googleapis.com/css?family=Titillium+Web:400,700,400italic);" +
				"'Titillium Web',sans-serif",
		},
		Logging: LoggingConfig{Level: "normal"},
	}
}

// Load reads the configuration file from dataDir, falling back to defaults
// when it does not exist, and applies environment overrides.
func Load(dataDir string) (Config, error) {
	cfgPath := filepath.Join(dataDir, FileName)

	cfg := Default()
	data, err := os.ReadFile(cfgPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		cfg = Config{}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", cfgPath, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	def := Default()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = def.ListenAddr
	}
	if cfg.Variant == "" {
		cfg.Variant = def.Variant
	}
	if cfg.Charset == "" {
		cfg.Charset = def.Charset
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Params == nil {
		cfg.Params = make(map[string]string)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	var p paramsEnv
	if err := env.Parse(&p); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	set := func(name string, v *string) {
		if v == nil {
			return
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]string)
		}
		cfg.Params[name] = *v
	}
	set(resource.ParamFindValues, p.FindValues)
	set(resource.ParamReplaceValues, p.ReplaceValues)
	set(resource.ParamAppendCSSFile, p.AppendCSSFile)
	return nil
}

// Validate reports every problem of the configuration at once.
func (cfg Config) Validate() error {
	var errs error
	if _, err := model.ParseVariant(string(cfg.Variant)); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := resource.LookupCharset(cfg.Charset); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, _, err := net.SplitHostPort(cfg.ListenAddr); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("listen address: %w", err))
	}
	if cfg.Variant == model.VariantReplace {
		if _, ok := cfg.Params[resource.ParamReplaceValues]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: set %s", ErrNoReplacements, resource.ParamReplaceValues))
		}
	}
	if _, ok := cfg.Params[resource.ParamAppendCSSFile]; ok && cfg.WebRoot == "" {
		errs = multierr.Append(errs, fmt.Errorf("%s requires web_root", resource.ParamAppendCSSFile))
	}
	switch cfg.Logging.Level {
	case "none", "normal", "debug":
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown logging level %q", cfg.Logging.Level))
	}
	return errs
}

func Save(cfg Config) error {
	cfgPath := filepath.Join(cfg.DataDir, FileName)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp := cfgPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, cfgPath)
}
