package parser

import (
	"path/filepath"
	"strings"

	"github.com/cmmoran/prismaconvert/pkg/render"
)

// Options control parsing and rendering.
//
// Input        – path to the Prisma 1 datamodel, relative to the working directory
// Output       – output file; empty or "-" writes to stdout
// Format       – prisma (default), yaml or go
// Package      – package clause for the go format
// Strict       – reject malformed @default/@relation arguments and repeated directives
// Pluralize    – go format only: emit a plural slice type per model
// ExcludeTypes – names of types and enums to skip (case‑insensitive)
// TypeMappings – extra source→target type renames, applied over ID→String
type Options struct {
	Input        string            `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty" mapstructure:"input,omitempty"`
	Output       string            `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty" mapstructure:"output,omitempty"`
	Format       string            `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty" mapstructure:"format,omitempty"`
	Package      string            `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty" mapstructure:"package,omitempty"`
	Strict       bool              `json:"strict,omitempty" yaml:"strict,omitempty" toml:"strict,omitempty" mapstructure:"strict,omitempty"`
	Pluralize    bool              `json:"pluralize,omitempty" yaml:"pluralize,omitempty" toml:"pluralize,omitempty" mapstructure:"pluralize,omitempty"`
	ExcludeTypes []string          `json:"exclude_types,omitempty" yaml:"exclude_types,omitempty" toml:"exclude_types,omitempty" mapstructure:"exclude_types,omitempty"`
	TypeMappings map[string]string `json:"type_mappings,omitempty" yaml:"type_mappings,omitempty" toml:"type_mappings,omitempty" mapstructure:"type_mappings,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		Output:  "-",
		Format:  string(render.FormatPrisma),
		Package: "model",
	}
}

// Normalize fills defaults and canonicalizes names. It returns an error only
// for an unknown format.
func (o *Options) Normalize() error {
	f, err := render.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	o.Format = string(f)

	if len(o.Output) == 0 {
		o.Output = "-"
	}
	if o.Output != "-" {
		o.Output = filepath.Clean(o.Output)
	}
	if len(o.Package) == 0 {
		o.Package = "model"
	}

	excluded := make([]string, 0, len(o.ExcludeTypes))
	for _, t := range o.ExcludeTypes {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			excluded = append(excluded, t)
		}
	}
	o.ExcludeTypes = excluded

	return nil
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInput(p string) Option   { return func(o *Options) { o.Input = p } }
func WithOutput(p string) Option  { return func(o *Options) { o.Output = p } }
func WithFormat(f string) Option  { return func(o *Options) { o.Format = f } }
func WithPackage(p string) Option { return func(o *Options) { o.Package = p } }
func WithStrict() Option          { return func(o *Options) { o.Strict = true } }
func WithPluralize() Option       { return func(o *Options) { o.Pluralize = true } }
func WithExcludeTypes(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			o.ExcludeTypes = append(o.ExcludeTypes, strings.TrimSpace(n))
		}
	}
}
func WithTypeMapping(from, to string) Option {
	return func(o *Options) {
		if o.TypeMappings == nil {
			o.TypeMappings = make(map[string]string)
		}
		o.TypeMappings[from] = to
	}
}
