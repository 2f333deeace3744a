package render

import (
	"fmt"

	"github.com/cbroglie/mustache"

	"github.com/cmmoran/prismaconvert/internal/model"
)

// datamodelTemplate is the fixed Prisma 2 layout. Default values and
// relation names are emitted unescaped.
const datamodelTemplate = `
datasource pg {
  provider = "postgres"
  url = env("POSTGRESQL_URL")
}

generator photon {
  provider = "prisma-client-js"
}

{{#Models}}
model {{Name}} {
  {{#Fields}}
  {{Name}} {{Type}}{{#Optional}}?{{/Optional}}{{#List}}[]{{/List}} {{#ID}}@id @default(cuid()){{/ID}} {{#Unique}}@unique{{/Unique}} {{#CreatedAt}}@default(now()){{/CreatedAt}} {{#UpdatedAt}}@updatedAt{{/UpdatedAt}} {{#HasDefault}}@default("{{{DefaultValue}}}"){{/HasDefault}} {{#HasRelation}}@relation(name: "{{{RelationName}}}"){{/HasRelation}}
  {{/Fields}}
}

{{/Models}}


{{#Enums}}
enum {{Name}} {
  {{#Members}}
  {{Name}}
  {{/Members}}
}

{{/Enums}}
`

var compiledDatamodel *mustache.Template

func init() {
	var err error
	if compiledDatamodel, err = mustache.ParseString(datamodelTemplate); err != nil {
		panic("render: datamodel template: " + err.Error())
	}
}

type datamodelContext struct {
	Models []modelView
	Enums  []*model.Enum
}

type modelView struct {
	Name   string
	Fields []fieldView
}

// fieldView flattens the optional records into presence flags. A pointer to
// a zero-value struct is an empty section, so @default("") and a bare
// @relation would otherwise vanish.
type fieldView struct {
	Name         string
	Type         string
	Optional     bool
	List         bool
	ID           bool
	Unique       bool
	CreatedAt    bool
	UpdatedAt    bool
	HasDefault   bool
	DefaultValue string
	HasRelation  bool
	RelationName string
}

func newFieldView(f *model.Field) fieldView {
	v := fieldView{
		Name:      f.Name,
		Type:      f.Type,
		Optional:  f.Optional,
		List:      f.List,
		ID:        f.ID,
		Unique:    f.Unique,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.Default != nil {
		v.HasDefault = true
		v.DefaultValue = f.Default.Value
	}
	if f.Relation != nil {
		v.HasRelation = true
		// an unnamed relation takes the field name
		v.RelationName = f.Relation.Name
		if v.RelationName == "" {
			v.RelationName = f.Name
		}
	}
	return v
}

// Datamodel renders models and enums as a Prisma 2 schema.
func Datamodel(models []*model.Model, enums []*model.Enum) (string, error) {
	ctx := datamodelContext{
		Models: make([]modelView, 0, len(models)),
		Enums:  enums,
	}
	for _, m := range models {
		mv := modelView{Name: m.Name, Fields: make([]fieldView, 0, len(m.Fields))}
		for _, f := range m.Fields {
			mv.Fields = append(mv.Fields, newFieldView(f))
		}
		ctx.Models = append(ctx.Models, mv)
	}

	out, err := compiledDatamodel.Render(ctx)
	if err != nil {
		return "", fmt.Errorf("render datamodel: %w", err)
	}
	return out, nil
}
