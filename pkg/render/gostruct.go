package render

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/jinzhu/inflection"
	"github.com/kenshaw/snaker"

	"github.com/cmmoran/prismaconvert/internal/model"
)

// GoOptions controls Go struct generation.
type GoOptions struct {
	// Package is the package clause of the generated file, "model" if empty.
	Package string
	// Pluralize also emits a slice type such as `type Users []*User` per model.
	Pluralize bool
}

type goGen struct {
	opts   GoOptions
	models map[string]bool
	enums  map[string]bool
}

// GoStructs renders models as Go structs and enums as string constants.
func GoStructs(models []*model.Model, enums []*model.Enum, opts GoOptions) (string, error) {
	if opts.Package == "" {
		opts.Package = "model"
	}
	g := &goGen{
		opts:   opts,
		models: make(map[string]bool, len(models)),
		enums:  make(map[string]bool, len(enums)),
	}
	for _, m := range models {
		g.models[m.Name] = true
	}
	for _, e := range enums {
		g.enums[e.Name] = true
	}

	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by prismaconvert. DO NOT EDIT.")

	for _, e := range enums {
		g.genEnum(f, e)
	}
	for _, m := range models {
		g.genModel(f, m)
	}

	buf := new(bytes.Buffer)
	if err := f.Render(buf); err != nil {
		return "", fmt.Errorf("render go structs: %w", err)
	}
	return buf.String(), nil
}

func (g *goGen) genEnum(f *jen.File, e *model.Enum) {
	f.Line().Commentf("%s is generated from enum %s.", e.Name, e.Name)
	f.Type().Id(e.Name).String()

	if len(e.Members) == 0 {
		return
	}
	f.Const().DefsFunc(func(grp *jen.Group) {
		for _, m := range e.Members {
			grp.Id(fmt.Sprintf("%s_%s", e.Name, m.Name)).Id(e.Name).Op("=").Lit(m.Name)
		}
	})
}

func (g *goGen) genModel(f *jen.File, m *model.Model) {
	if m.IsRelationTable {
		f.Line().Commentf("%s is a relation table.", m.Name)
	} else {
		f.Line().Commentf("%s is generated from model %s.", m.Name, m.Name)
	}
	f.Type().Id(m.Name).StructFunc(func(grp *jen.Group) {
		for _, fld := range m.Fields {
			grp.Id(snaker.ForceCamelIdentifier(fld.Name)).Add(g.fieldType(fld)).Tag(map[string]string{"json": fld.Name})
		}
	})

	if !g.opts.Pluralize {
		return
	}
	plural := inflection.Plural(m.Name)
	if plural == m.Name || g.models[plural] || g.enums[plural] {
		return
	}
	f.Line().Type().Id(plural).Index().Op("*").Id(m.Name)
}

// fieldType builds the Go type for a field. References to other models are
// always pointers so mutually related models stay valid Go.
func (g *goGen) fieldType(fld *model.Field) *jen.Statement {
	s := &jen.Statement{}
	if fld.List {
		s.Index()
	}
	if g.models[fld.Type] || fld.Optional {
		s.Op("*")
	}
	return s.Add(g.baseType(fld.Type))
}

func (g *goGen) baseType(name string) *jen.Statement {
	switch name {
	case "String", "ID":
		return jen.String()
	case "Int":
		return jen.Int()
	case "Float":
		return jen.Float64()
	case "Boolean":
		return jen.Bool()
	case "DateTime":
		return jen.Qual("time", "Time")
	case "Json":
		return jen.Qual("encoding/json", "RawMessage")
	default:
		return jen.Id(name)
	}
}
