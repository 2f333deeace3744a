package parser

import (
	"fmt"
	"log/slog"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/kinds"

	"github.com/cmmoran/prismaconvert/internal/model"
)

type Kind int

const (
	KindOther Kind = iota
	KindObjectType
	KindEnumType
)

func (k Kind) String() string {
	switch k {
	case KindObjectType:
		return "ObjectType"
	case KindEnumType:
		return "EnumType"
	default:
		return "Other"
	}
}

// Classify dispatches on the definition's kind tag.
func Classify(node ast.Node) Kind {
	if node == nil {
		return KindOther
	}
	switch node.GetKind() {
	case kinds.ObjectDefinition:
		return KindObjectType
	case kinds.EnumDefinition:
		return KindEnumType
	default:
		return KindOther
	}
}

// Converter maps source definitions to target records.
//
// Strict makes malformed @default/@relation arguments and repeated
// directives an error instead of passing them through.
type Converter struct {
	Types  TypeMap
	Strict bool
	Logger *slog.Logger
}

// NewConverter returns a lenient converter using the built-in type table.
func NewConverter() *Converter {
	return &Converter{
		Types:  NewTypeMap(nil),
		Logger: slog.Default(),
	}
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *Converter) convertType(name string) string {
	if c.Types == nil {
		return ConvertType(name)
	}
	return c.Types.ConvertType(name)
}

// ConvertModel maps an object type definition. A type without fields yields
// an empty, non-nil field list.
func (c *Converter) ConvertModel(def *ast.ObjectDefinition) (*model.Model, error) {
	m := &model.Model{
		Name:            nameOf(def.Name),
		Fields:          make([]*model.Field, 0, len(def.Fields)),
		IsRelationTable: includeDirective(def.Directives, DirectiveRelationTable),
	}
	for _, fd := range def.Fields {
		if fd == nil {
			continue
		}
		f, err := c.ConvertField(fd)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", m.Name, err)
		}
		m.Fields = append(m.Fields, f)
	}
	return m, nil
}

// ConvertField maps a single field definition.
func (c *Converter) ConvertField(def *ast.FieldDefinition) (*model.Field, error) {
	name := nameOf(def.Name)
	dirs := FieldDirectives(def.Directives)

	var typeName string
	if named := NamedType(def.Type); named != nil {
		typeName = c.convertType(nameOf(named.Name))
	}

	f := &model.Field{
		Name:       name,
		Type:       typeName,
		Optional:   IsOptional(def.Type),
		List:       IsList(def.Type),
		ID:         dirs.Has(DirectiveID),
		Unique:     dirs.Has(DirectiveUnique),
		ScalarList: dirs.Has(DirectiveScalarList),
		CreatedAt:  dirs.Has(DirectiveCreatedAt),
		UpdatedAt:  dirs.Has(DirectiveUpdatedAt),
	}

	if c.Strict {
		if rep := dirs.Repeated(); len(rep) > 0 {
			return nil, fmt.Errorf("field %s: @%s: %w", name, rep[0], ErrDuplicateDirective)
		}
	} else if rep := dirs.Repeated(); len(rep) > 0 {
		c.logger().Debug("repeated directive, last one wins", "field", name, "directives", rep)
	}

	var err error
	if f.Default, err = c.convertDefault(dirs); err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}
	if f.Relation, err = c.convertRelation(dirs); err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}

	return f, nil
}

// convertDefault is present only when @default carries a value argument.
func (c *Converter) convertDefault(dirs *Directives) (*model.Default, error) {
	args, ok := dirs.Args(DirectiveDefault)
	if !ok {
		return nil, nil
	}
	value, present, scalar := argString(args, "value")
	if !present {
		if c.Strict {
			return nil, fmt.Errorf("@%s without value argument: %w", DirectiveDefault, ErrMalformedDirective)
		}
		return nil, nil
	}
	if !scalar && c.Strict {
		return nil, fmt.Errorf("@%s(value:) is not a scalar literal: %w", DirectiveDefault, ErrMalformedDirective)
	}
	return &model.Default{Value: value}, nil
}

// convertRelation is present whenever @relation is attached, arguments or not.
func (c *Converter) convertRelation(dirs *Directives) (*model.Relation, error) {
	args, ok := dirs.Args(DirectiveRelation)
	if !ok {
		return nil, nil
	}
	rel := &model.Relation{}

	for _, key := range []string{"name", "link", "onDelete"} {
		value, present, scalar := argString(args, key)
		if !present {
			continue
		}
		if !scalar && c.Strict {
			return nil, fmt.Errorf("@%s(%s:) is not a scalar literal: %w", DirectiveRelation, key, ErrMalformedDirective)
		}
		switch key {
		case "name":
			rel.Name = value
		case "link":
			rel.Link = model.Link(value)
			if c.Strict && !rel.Link.Valid() {
				return nil, fmt.Errorf("@%s(link: %s): %w", DirectiveRelation, value, ErrMalformedDirective)
			}
		case "onDelete":
			rel.OnDelete = model.OnDelete(value)
			if c.Strict && !rel.OnDelete.Valid() {
				return nil, fmt.Errorf("@%s(onDelete: %s): %w", DirectiveRelation, value, ErrMalformedDirective)
			}
		}
	}
	return rel, nil
}

// ConvertEnum maps an enum definition and its values verbatim.
func (c *Converter) ConvertEnum(def *ast.EnumDefinition) *model.Enum {
	e := &model.Enum{
		Name:    nameOf(def.Name),
		Members: make([]*model.EnumMember, 0, len(def.Values)),
	}
	for _, v := range def.Values {
		if v == nil {
			continue
		}
		e.Members = append(e.Members, &model.EnumMember{Name: nameOf(v.Name)})
	}
	return e
}

func nameOf(n *ast.Name) string {
	if n == nil {
		return ""
	}
	return n.Value
}
