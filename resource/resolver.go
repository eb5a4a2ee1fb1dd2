package resource

import (
	"fmt"

	"themeplane/model"
)

type decorateFunc func(wrapped Resource, env *Env) (Resource, error)

// themeResolver decorates PrimeFaces themes created by the wrapped resolver
// and passes every other resource through.
type themeResolver struct {
	wrapped  Resolver
	env      *Env
	decorate decorateFunc
}

func (h *themeResolver) CreateResource(name, library string) (Resource, error) {
	res, err := h.wrapped.CreateResource(name, library)
	if err != nil {
		return nil, err
	}
	if !IsPrimeFacesTheme(name, library) {
		return res, nil
	}
	return h.decorate(res, h.env)
}

// NewFontAwesomeResolver replaces jQuery UI theme icons with Font Awesome.
func NewFontAwesomeResolver(wrapped Resolver, env *Env) Resolver {
	return &themeResolver{wrapped: wrapped, env: env.withDefaults(), decorate: func(res Resource, env *Env) (Resource, error) {
		return &fontAwesomeResource{decorated: newDecorated(res, env)}, nil
	}}
}

// NewReplaceResolver substitutes the theme palette with configured values.
// Creating a theme resource fails with ErrNoReplacements when no replacement
// values are configured.
func NewReplaceResolver(wrapped Resolver, env *Env) Resolver {
	return &themeResolver{wrapped: wrapped, env: env.withDefaults(), decorate: func(res Resource, env *Env) (Resource, error) {
		r, err := newReplaceResource(res, env)
		if err != nil {
			return nil, err
		}
		return r, nil
	}}
}

// NewNoThemeResolver serves an empty theme.
func NewNoThemeResolver(wrapped Resolver, env *Env) Resolver {
	return &themeResolver{wrapped: wrapped, env: env.withDefaults(), decorate: func(res Resource, env *Env) (Resource, error) {
		return &noThemeResource{decorated: newDecorated(res, env)}, nil
	}}
}

// NewResolver wraps a resolver according to variant.
func NewResolver(variant model.Variant, wrapped Resolver, env *Env) (Resolver, error) {
	switch variant {
	case model.VariantPassthrough:
		return wrapped, nil
	case model.VariantFontAwesome:
		return NewFontAwesomeResolver(wrapped, env), nil
	case model.VariantReplace:
		return NewReplaceResolver(wrapped, env), nil
	case model.VariantNoTheme:
		return NewNoThemeResolver(wrapped, env), nil
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}
