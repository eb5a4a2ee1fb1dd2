package resource

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"themeplane/palette"
)

// ErrNoReplacements is returned when the replace variant has no replacement values.
var ErrNoReplacements = errors.New("no replacements were set")

// replaceResource substitutes palette values in a theme. The substituted text
// is cached per URL; the appended stylesheet is not.
type replaceResource struct {
	decorated
	findValues    string
	replaceValues string
}

func newReplaceResource(wrapped Resource, env *Env) (*replaceResource, error) {
	find, ok := env.param(ParamFindValues)
	if !ok {
		find = palette.DefaultFindValues
	}
	replace, ok := env.param(ParamReplaceValues)
	if !ok {
		return nil, fmt.Errorf("%w using parameter %s", ErrNoReplacements, ParamReplaceValues)
	}
	return &replaceResource{
		decorated:     newDecorated(wrapped, env),
		findValues:    find,
		replaceValues: replace,
	}, nil
}

func (r *replaceResource) Bytes() ([]byte, error) {
	css, err := r.env.Cache.Get(r.URL(), r.substitute)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(css)
	if err := r.appendCSS(&sb); err != nil {
		return nil, err
	}
	return r.encode(&sb)
}

func (r *replaceResource) substitute() (string, error) {
	css, err := r.readWrapped()
	if err != nil {
		return "", err
	}
	replacer, err := palette.NewReplacer(r.findValues, r.replaceValues)
	if err != nil {
		return "", fmt.Errorf("resource %s: %w", r.URL(), err)
	}
	r.env.Log.Debug("Substituting palette",
		zap.String("url", r.URL()),
		zap.Int("values", len(replacer.Find())),
		zap.Int("bytes", len(css)))
	return replacer.Apply(r.URL(), css)
}
