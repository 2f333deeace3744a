package parser

import (
	"github.com/graphql-go/graphql/language/ast"

	"github.com/cmmoran/prismaconvert/internal/model"
)

// Result holds the records extracted from one document, in source order.
type Result struct {
	Models model.Models
	Enums  model.Enums
}

// Extract walks defs once. Object types become models, enum types become
// enums, every other definition is dropped.
func (c *Converter) Extract(defs []ast.Node) (*Result, error) {
	res := &Result{
		Models: make(model.Models, 0),
		Enums:  make(model.Enums, 0),
	}
	for _, def := range defs {
		switch Classify(def) {
		case KindObjectType:
			od, ok := def.(*ast.ObjectDefinition)
			if !ok {
				continue
			}
			m, err := c.ConvertModel(od)
			if err != nil {
				return nil, err
			}
			res.Models = append(res.Models, m)
		case KindEnumType:
			ed, ok := def.(*ast.EnumDefinition)
			if !ok {
				continue
			}
			res.Enums = append(res.Enums, c.ConvertEnum(ed))
		default:
			if def != nil {
				c.logger().Debug("skipping definition", "kind", def.GetKind())
			}
		}
	}
	return res, nil
}
