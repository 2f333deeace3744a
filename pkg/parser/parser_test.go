package parser_test

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	gqlparser "github.com/graphql-go/graphql/language/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/cmmoran/prismaconvert/pkg/parser"
)

const fixture = "testdata/datamodel.graphql"

func normalize(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			out = append(out, strings.Join(fields, " "))
		}
	}
	return out
}

func TestParse(ttt *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		models   []string
		enums    []string
		contains []string
		wantErr  bool
	}{
		{
			name:     "parse with defaults",
			opts:     []Option{WithInput(fixture)},
			models:   []string{"User", "Post"},
			enums:    []string{"Role"},
			contains: []string{
				"model User {",
				`posts Post[] @relation(name: "UserPosts")`,
			},
		},
		{
			name:   "parse with excludetypes",
			opts:   []Option{WithInput(fixture), WithExcludeTypes(" post ", "ROLE")},
			models: []string{"User"},
			enums:  []string{},
		},
		{
			name:     "parse with typemapping",
			opts:     []Option{WithInput(fixture), WithTypeMapping("DateTime", "Timestamp")},
			models:   []string{"User", "Post"},
			enums:    []string{"Role"},
			contains: []string{"createdAt Timestamp @default(now())"},
		},
		{
			name:     "parse with format=yaml",
			opts:     []Option{WithInput(fixture), WithFormat("yaml")},
			models:   []string{"User", "Post"},
			enums:    []string{"Role"},
			contains: []string{"- name: User", "link: INLINE"},
		},
		{
			name:     "parse with format=go",
			opts:     []Option{WithInput(fixture), WithFormat("go"), WithPackage("db"), WithPluralize()},
			models:   []string{"User", "Post"},
			enums:    []string{"Role"},
			contains: []string{"package db", "type Users []*User"},
		},
		{
			name:    "parse with strict",
			opts:    []Option{WithInput(fixture), WithStrict()},
			models:  []string{"User", "Post"},
			enums:   []string{"Role"},
			wantErr: false,
		},
		{
			name:    "parse missing file",
			opts:    []Option{WithInput("testdata/missing.graphql")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o := NewOptions()
			for _, fn := range tt.opts {
				fn(o)
			}
			jsbyt, _ := json.MarshalIndent(o, "", "  ")
			t.Logf("Options: %v", string(jsbyt))

			got, err := New(tt.opts...)
			require.NoError(t, err)

			err = got.ParseFile("")
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			var models, enums []string
			for _, m := range got.Models {
				models = append(models, m.Name)
			}
			enums = []string{}
			for _, e := range got.Enums {
				enums = append(enums, e.Name)
			}
			assert.Equal(t, tt.models, models)
			assert.Equal(t, tt.enums, enums)

			out, err := got.Render()
			require.NoError(t, err)
			lines := normalize(string(out))
			for _, c := range tt.contains {
				assert.Contains(t, lines, c)
			}
		})
	}
}

func TestRenderMatchesExpectation(t *testing.T) {
	p, err := New(WithInput(fixture))
	require.NoError(t, err)
	require.NoError(t, p.ParseFile(""))

	out, err := p.Render()
	require.NoError(t, err)

	expectedBytes, err := os.ReadFile("testdata/datamodel.prisma")
	require.NoError(t, err)

	diff := cmp.Diff(normalize(string(expectedBytes)), normalize(string(out)))
	require.Emptyf(t, diff, "Render() got=%s, diff = %s", out, diff)
}

func TestRenderIsStable(t *testing.T) {
	src, err := os.ReadFile(fixture)
	require.NoError(t, err)

	render := func() []byte {
		p, err := New()
		require.NoError(t, err)
		require.NoError(t, p.Parse(src))
		out, err := p.Render()
		require.NoError(t, err)
		return out
	}
	assert.Equal(t, render(), render())
}

func TestConvertDocument(t *testing.T) {
	doc, err := gqlparser.Parse(gqlparser.ParseParams{
		Source: `type User implements Node @relationTable { id: ID! @id, email: String @unique }
scalar DateTime
enum Role { ADMIN USER }`,
	})
	require.NoError(t, err)

	out, err := ConvertDocument(doc)
	require.NoError(t, err)

	lines := normalize(out)
	assert.Contains(t, lines, "model User {")
	assert.Contains(t, lines, "id String @id @default(cuid())")
	assert.Contains(t, lines, "email String? @unique")
	assert.Contains(t, lines, "enum Role {")
	assert.NotContains(t, strings.Join(lines, "\n"), "DateTime")

	again, err := ConvertDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRenderKeepsBareDirectives(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	require.NoError(t, p.Parse([]byte(`
type Post {
  author: User! @relation(link: INLINE)
  owner: User @relation
  note: String @default(value: "")
  tags: String @default(value: ["a", "b"])
}
`)))
	out, err := p.Render()
	require.NoError(t, err)

	lines := normalize(string(out))
	assert.Contains(t, lines, `author User @relation(name: "author")`)
	assert.Contains(t, lines, `owner User? @relation(name: "owner")`)
	assert.Contains(t, lines, `note String? @default("")`)
	assert.Contains(t, lines, `tags String? @default("")`)
}

func TestParseErrors(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	assert.ErrorIs(t, p.ParseFile(""), ErrNoInput)
	assert.ErrorIs(t, p.ParseDocument(nil), ErrNoInput)

	err = p.Parse([]byte(`type User { id: ID! `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse datamodel")
}

func TestStrictRejectsMalformed(t *testing.T) {
	src := []byte(`type Post { author: User @relation(name: "A", link: SIDEWAYS) }`)

	lenient, err := New()
	require.NoError(t, err)
	require.NoError(t, lenient.Parse(src))
	assert.Equal(t, "SIDEWAYS", string(lenient.Models[0].Fields[0].Relation.Link))

	strict, err := New(WithStrict())
	require.NoError(t, err)
	assert.ErrorIs(t, strict.Parse(src), ErrMalformedDirective)
}

func TestUnknownFormat(t *testing.T) {
	_, err := New(WithFormat("xml"))
	require.Error(t, err)
}
