package parser

import (
	"strconv"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/iancoleman/orderedmap"
)

const (
	DirectiveID            = "id"
	DirectiveUnique        = "unique"
	DirectiveScalarList    = "scalarList"
	DirectiveCreatedAt     = "createdAt"
	DirectiveUpdatedAt     = "updatedAt"
	DirectiveDefault       = "default"
	DirectiveRelation      = "relation"
	DirectiveRelationTable = "relationTable"
)

// Arguments maps argument name to its literal value, in declaration order.
type Arguments = *orderedmap.OrderedMap

// Directives maps directive name to its Arguments. A directive attached
// without arguments is present with a nil value.
type Directives struct {
	m *orderedmap.OrderedMap
	// repeated holds names seen more than once.
	repeated []string
}

// FieldDirectives reduces the directives attached to a node. A repeated
// directive keeps its first position but takes the later arguments.
func FieldDirectives(directives []*ast.Directive) *Directives {
	d := &Directives{m: orderedmap.New()}
	for _, dir := range directives {
		if dir == nil || dir.Name == nil {
			continue
		}
		name := dir.Name.Value
		if _, seen := d.m.Get(name); seen {
			d.repeated = append(d.repeated, name)
		}

		var args Arguments
		if len(dir.Arguments) > 0 {
			args = orderedmap.New()
			for _, arg := range dir.Arguments {
				if arg == nil || arg.Name == nil {
					continue
				}
				args.Set(arg.Name.Value, arg.Value)
			}
		}
		d.m.Set(name, args)
	}
	return d
}

// Has reports whether the named directive is attached.
func (d *Directives) Has(name string) bool {
	if d == nil {
		return false
	}
	_, ok := d.m.Get(name)
	return ok
}

// Args returns the arguments of the named directive. ok is false when the
// directive is absent; args is nil when it was attached without arguments.
func (d *Directives) Args(name string) (args Arguments, ok bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.m.Get(name)
	if !ok {
		return nil, false
	}
	args, _ = v.(Arguments)
	return args, true
}

// Names lists attached directive names in declaration order.
func (d *Directives) Names() []string {
	if d == nil {
		return nil
	}
	return d.m.Keys()
}

// Repeated lists directive names that were attached more than once.
func (d *Directives) Repeated() []string {
	if d == nil {
		return nil
	}
	return d.repeated
}

// includeDirective reports whether name is among directives.
func includeDirective(directives []*ast.Directive, name string) bool {
	for _, dir := range directives {
		if dir != nil && dir.Name != nil && dir.Name.Value == name {
			return true
		}
	}
	return false
}

// argString looks up a single argument and renders it as a string. scalar is
// false when the value is not an int, float, string, boolean or enum literal.
func argString(args Arguments, name string) (value string, present, scalar bool) {
	if args == nil {
		return "", false, false
	}
	raw, ok := args.Get(name)
	if !ok {
		return "", false, false
	}
	v, _ := raw.(ast.Value)
	value, scalar = literalString(v)
	return value, true, scalar
}

// literalString renders a literal value node. Lists, objects and variables
// render as "".
func literalString(v ast.Value) (string, bool) {
	switch vv := v.(type) {
	case *ast.StringValue:
		return vv.Value, true
	case *ast.IntValue:
		return vv.Value, true
	case *ast.FloatValue:
		return vv.Value, true
	case *ast.EnumValue:
		return vv.Value, true
	case *ast.BooleanValue:
		return strconv.FormatBool(vv.Value), true
	default:
		return "", false
	}
}
