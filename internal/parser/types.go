package parser

import (
	"github.com/graphql-go/graphql/language/ast"
)

// builtinTypeMappings renames source scalars that have no target equivalent.
var builtinTypeMappings = map[string]string{
	"ID": "String",
}

// TypeMap remaps source type names to target type names. Names without an
// entry pass through unchanged.
type TypeMap map[string]string

// NewTypeMap returns the built-in mappings overlaid with extra.
func NewTypeMap(extra map[string]string) TypeMap {
	tm := make(TypeMap, len(builtinTypeMappings)+len(extra))
	for k, v := range builtinTypeMappings {
		tm[k] = v
	}
	for k, v := range extra {
		tm[k] = v
	}
	return tm
}

// ConvertType remaps a single type name.
func (tm TypeMap) ConvertType(name string) string {
	if mapped, ok := tm[name]; ok {
		return mapped
	}
	return name
}

// ConvertType remaps name with the built-in table only.
func ConvertType(name string) string {
	if mapped, ok := builtinTypeMappings[name]; ok {
		return mapped
	}
	return name
}

// IsList reports whether t is a list, looking through non-null wrappers.
func IsList(t ast.Type) bool {
	switch tt := t.(type) {
	case *ast.List:
		return true
	case *ast.NonNull:
		return IsList(tt.Type)
	default:
		return false
	}
}

// IsNonNull only inspects the outermost node: [T!] is nullable.
func IsNonNull(t ast.Type) bool {
	_, ok := t.(*ast.NonNull)
	return ok
}

// IsOptional is true for a nullable, non-list type.
func IsOptional(t ast.Type) bool {
	return !IsNonNull(t) && !IsList(t)
}

// NamedType unwraps list and non-null wrappers down to the referenced type.
func NamedType(t ast.Type) *ast.Named {
	switch tt := t.(type) {
	case *ast.Named:
		return tt
	case *ast.List:
		return NamedType(tt.Type)
	case *ast.NonNull:
		return NamedType(tt.Type)
	default:
		return nil
	}
}
