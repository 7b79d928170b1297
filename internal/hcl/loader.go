package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/tcgprice/internal/config"
	"github.com/vk/tcgprice/internal/ctxlog"
)

// hclProfile is the top-level structure of a profile file for decoding.
// Attributes are kept as expressions so they can be evaluated and converted
// one by one with precise diagnostics.
type hclProfile struct {
	File       hcl.Expression `hcl:"file,optional"`
	PriceFloor hcl.Expression `hcl:"price_floor,optional"`
	LogLevel   hcl.Expression `hcl:"log_level,optional"`
	LogFormat  hcl.Expression `hcl:"log_format,optional"`
}

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	env map[string]string
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a loader that exposes the process environment to
// profile expressions.
func NewLoader() *Loader {
	return NewLoaderWithEnv(environ())
}

// NewLoaderWithEnv creates a loader with an explicit environment.
func NewLoaderWithEnv(env map[string]string) *Loader {
	return &Loader{env: env}
}

// Load parses the profile at path. A relative `file` attribute is resolved
// against the directory of the profile.
func (l *Loader) Load(ctx context.Context, path string) (*config.Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading profile.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, diags)
	}

	var parsed hclProfile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, diags)
	}

	evalCtx := newEvalContext(l.env)
	p := &config.Profile{Source: path}

	var err error
	if p.File, err = evalString(parsed.File, evalCtx); err != nil {
		return nil, fmt.Errorf("profile %s: file: %w", path, err)
	}
	if p.File != "" && !filepath.IsAbs(p.File) {
		p.File = filepath.Join(filepath.Dir(path), p.File)
	}
	if p.PriceFloor, err = evalNumber(parsed.PriceFloor, evalCtx); err != nil {
		return nil, fmt.Errorf("profile %s: price_floor: %w", path, err)
	}
	if p.LogLevel, err = evalString(parsed.LogLevel, evalCtx); err != nil {
		return nil, fmt.Errorf("profile %s: log_level: %w", path, err)
	}
	if p.LogFormat, err = evalString(parsed.LogFormat, evalCtx); err != nil {
		return nil, fmt.Errorf("profile %s: log_format: %w", path, err)
	}

	logger.Debug("Profile loaded.", "file", p.File, "has_price_floor", p.PriceFloor != nil)
	return p, nil
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}
