package resource

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// decorated forwards everything to the wrapped resource. Rewriting resources
// embed it and override Bytes.
type decorated struct {
	Resource
	env        *Env
	appendFile string
}

func newDecorated(wrapped Resource, env *Env) decorated {
	appendFile, _ := env.param(ParamAppendCSSFile)
	return decorated{Resource: wrapped, env: env, appendFile: appendFile}
}

// readWrapped returns the content of the wrapped resource as text.
func (d *decorated) readWrapped() (string, error) {
	b, err := d.Resource.Bytes()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", d.URL(), err)
	}
	return d.env.Charset.Decode(b)
}

// appendCSS appends the configured extra stylesheet, if any.
func (d *decorated) appendCSS(sb *strings.Builder) error {
	if d.appendFile == "" {
		return nil
	}
	if d.env.Files == nil {
		return errors.New("append css file configured without a web root")
	}
	b, err := d.env.Files.ReadFile(d.appendFile)
	if err != nil {
		return fmt.Errorf("append css file %s: %w", d.appendFile, err)
	}
	d.env.Log.Debug("Appending CSS", zap.String("url", d.URL()), zap.String("file", d.appendFile), zap.Int("bytes", len(b)))
	sb.Write(b)
	return nil
}

func (d *decorated) encode(sb *strings.Builder) ([]byte, error) {
	return d.env.Charset.Encode(sb.String())
}
