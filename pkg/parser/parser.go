package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/graphql-go/graphql/language/ast"
	gqlparser "github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"

	"github.com/cmmoran/prismaconvert/internal/model"
	core "github.com/cmmoran/prismaconvert/internal/parser"
	"github.com/cmmoran/prismaconvert/pkg/render"
)

var (
	ErrNoInput            = errors.New("no input datamodel")
	ErrMalformedDirective = core.ErrMalformedDirective
	ErrDuplicateDirective = core.ErrDuplicateDirective
)

// Parser holds state/results of a parse run.
type Parser struct {
	Opts Options

	Models model.Models
	Enums  model.Enums

	conv *core.Converter
}

// New executes the parser with opts.
func New(opts ...Option) (*Parser, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) (*Parser, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	p := &Parser{
		Opts:   *opts,
		Models: make(model.Models, 0),
		Enums:  make(model.Enums, 0),
		conv: &core.Converter{
			Types:  core.NewTypeMap(opts.TypeMappings),
			Strict: opts.Strict,
			Logger: slog.Default(),
		},
	}

	return p, nil
}

// ParseFile reads and parses Opts.Input when path is empty.
func (p *Parser) ParseFile(path string) error {
	if path == "" {
		path = p.Opts.Input
	}
	if path == "" {
		return ErrNoInput
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read datamodel: %w", err)
	}
	slog.Debug("read datamodel", "path", path, "bytes", len(src))

	return p.parse(src, path)
}

// Parse parses a datamodel held in memory.
func (p *Parser) Parse(src []byte) error {
	return p.parse(src, "datamodel.graphql")
}

func (p *Parser) parse(src []byte, name string) error {
	doc, err := gqlparser.Parse(gqlparser.ParseParams{
		Source: &source.Source{Body: src, Name: name},
		Options: gqlparser.ParseOptions{
			NoSource: true,
		},
	})
	if err != nil {
		return fmt.Errorf("parse datamodel %s: %w", name, err)
	}

	return p.ParseDocument(doc)
}

// ParseDocument extracts models and enums from an already parsed document.
func (p *Parser) ParseDocument(doc *ast.Document) error {
	if doc == nil {
		return ErrNoInput
	}
	res, err := p.conv.Extract(doc.Definitions)
	if err != nil {
		return err
	}
	p.Models, p.Enums = omitExcluded(res.Models, res.Enums, &p.Opts)

	slog.Debug("extracted datamodel", "models", len(p.Models), "enums", len(p.Enums))

	return nil
}

// Render writes the extracted records in Opts.Format.
func (p *Parser) Render() ([]byte, error) {
	f, err := render.ParseFormat(p.Opts.Format)
	if err != nil {
		return nil, err
	}

	switch f {
	case render.FormatYAML:
		return render.YAML(p.Models, p.Enums)
	case render.FormatGo:
		out, err := render.GoStructs(p.Models, p.Enums, render.GoOptions{
			Package:   p.Opts.Package,
			Pluralize: p.Opts.Pluralize,
		})
		return []byte(out), err
	default:
		out, err := render.Datamodel(p.Models, p.Enums)
		return []byte(out), err
	}
}

// ConvertDocument converts a parsed Prisma 1 datamodel to a Prisma 2 schema
// with default options.
func ConvertDocument(doc *ast.Document) (string, error) {
	p, err := New()
	if err != nil {
		return "", err
	}
	if err = p.ParseDocument(doc); err != nil {
		return "", err
	}
	return render.Datamodel(p.Models, p.Enums)
}
