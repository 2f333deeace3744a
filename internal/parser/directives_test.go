package parser

import (
	"testing"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldDirectives(t *testing.T, sdl string) *Directives {
	t.Helper()
	defs := parseDefs(t, sdl)
	require.Len(t, defs, 1)
	od, ok := defs[0].(*ast.ObjectDefinition)
	require.True(t, ok)
	require.NotEmpty(t, od.Fields)
	return FieldDirectives(od.Fields[0].Directives)
}

func TestFieldDirectives(t *testing.T) {
	d := fieldDirectives(t, `type T { a: String @unique @default(value: "x", other: 2) @relation(name: "R") }`)

	assert.Equal(t, []string{"unique", "default", "relation"}, d.Names())
	assert.Empty(t, d.Repeated())

	args, ok := d.Args("unique")
	assert.True(t, ok, "attached without arguments")
	assert.Nil(t, args)

	args, ok = d.Args("id")
	assert.False(t, ok, "absent")
	assert.Nil(t, args)

	args, ok = d.Args("default")
	require.True(t, ok)
	require.NotNil(t, args)
	assert.Equal(t, []string{"value", "other"}, args.Keys())

	value, present, scalar := argString(args, "other")
	assert.Equal(t, "2", value)
	assert.True(t, present)
	assert.True(t, scalar)

	_, present, _ = argString(args, "missing")
	assert.False(t, present)
}

func TestFieldDirectivesRepeated(t *testing.T) {
	d := fieldDirectives(t, `type T { a: String @default(value: "a") @unique @default(value: "b") }`)

	assert.Equal(t, []string{"default", "unique"}, d.Names(), "first position is kept")
	assert.Equal(t, []string{"default"}, d.Repeated())

	args, ok := d.Args("default")
	require.True(t, ok)
	value, _, _ := argString(args, "value")
	assert.Equal(t, "b", value)
}

func TestNilDirectives(t *testing.T) {
	var d *Directives
	assert.False(t, d.Has("id"))
	assert.Nil(t, d.Names())
	_, ok := d.Args("id")
	assert.False(t, ok)
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		name   string
		value  ast.Value
		want   string
		scalar bool
	}{
		{name: "string", value: &ast.StringValue{Value: "hi"}, want: "hi", scalar: true},
		{name: "int", value: &ast.IntValue{Value: "42"}, want: "42", scalar: true},
		{name: "float", value: &ast.FloatValue{Value: "4.2"}, want: "4.2", scalar: true},
		{name: "enum", value: &ast.EnumValue{Value: "CASCADE"}, want: "CASCADE", scalar: true},
		{name: "bool", value: &ast.BooleanValue{Value: false}, want: "false", scalar: true},
		{name: "variable", value: &ast.Variable{Name: &ast.Name{Value: "v"}}},
		{name: "list", value: &ast.ListValue{Values: []ast.Value{&ast.StringValue{Value: "a"}}}},
		{name: "object", value: &ast.ObjectValue{}},
		{name: "nil", value: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, scalar := literalString(tt.value)
			assert.Equal(t, tt.scalar, scalar)
			assert.Equal(t, tt.want, got)
		})
	}
}
