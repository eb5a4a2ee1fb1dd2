package resource

import (
	"go.uber.org/zap"
)

// Initialization parameter names.
const (
	ParamFindValues    = "theme.FIND_VALUES"
	ParamReplaceValues = "theme.REPLACE_VALUES"
	ParamAppendCSSFile = "theme.APPEND_CSS_FILE"
)

// Params gives access to initialization parameters of the host.
type Params interface {
	InitParameter(name string) (string, bool)
}

// MapParams is a Params backed by a map.
type MapParams map[string]string

func (p MapParams) InitParameter(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// FileReader reads files below the web root.
type FileReader interface {
	ReadFile(location string) ([]byte, error)
}

// Env is shared by the resolvers of one chain and the resources they create.
type Env struct {
	Params  Params
	Charset Charset
	Files   FileReader
	Cache   *Cache
	Log     *zap.Logger
}

func (e *Env) param(name string) (string, bool) {
	if e.Params == nil {
		return "", false
	}
	return e.Params.InitParameter(name)
}

// withDefaults returns a copy of e with every unset field filled in. A nil
// env is treated as an empty one.
func (e *Env) withDefaults() *Env {
	if e == nil {
		e = &Env{}
	}
	out := *e
	if out.Params == nil {
		out.Params = MapParams{}
	}
	if out.Charset.enc == nil {
		out.Charset = UTF8
	}
	if out.Cache == nil {
		out.Cache = NewCache()
	}
	if out.Log == nil {
		out.Log = zap.NewNop()
	}
	out.Log = out.Log.Named("resource")
	return &out
}
