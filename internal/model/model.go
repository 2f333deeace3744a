package model

// Link is the storage strategy named by @relation(link: ...).
type Link string

const (
	LinkInline Link = "INLINE"
	LinkTable  Link = "TABLE"
)

// Valid reports whether l is one of the known link strategies.
func (l Link) Valid() bool {
	return l == LinkInline || l == LinkTable
}

// OnDelete is the referential action named by @relation(onDelete: ...).
type OnDelete string

const (
	OnDeleteSetNull OnDelete = "SET_NULL"
	OnDeleteCascade OnDelete = "CASCADE"
)

// Valid reports whether o is one of the known referential actions.
func (o OnDelete) Valid() bool {
	return o == OnDeleteSetNull || o == OnDeleteCascade
}

type Default struct {
	Value string `json:"value" yaml:"value" mapstructure:"value"`
}

type Relation struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name,omitempty"`
	Link     Link     `json:"link,omitempty" yaml:"link,omitempty" mapstructure:"link,omitempty"`
	OnDelete OnDelete `json:"onDelete,omitempty" yaml:"onDelete,omitempty" mapstructure:"onDelete,omitempty"`
}

// Field is a single model field in target form. Optional and List are never
// both set.
type Field struct {
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	Type string `json:"type" yaml:"type" mapstructure:"type"`

	// Modifiers ------------------------------------------------------------
	Optional bool `json:"optional" yaml:"optional" mapstructure:"optional"`
	List     bool `json:"list" yaml:"list" mapstructure:"list"`

	// Directives -----------------------------------------------------------
	ID         bool      `json:"id" yaml:"id" mapstructure:"id"`
	Unique     bool      `json:"unique" yaml:"unique" mapstructure:"unique"`
	ScalarList bool      `json:"scalarList" yaml:"scalarList" mapstructure:"scalarList"` // @scalarList(strategy: RELATION)
	CreatedAt  bool      `json:"createdAt" yaml:"createdAt" mapstructure:"createdAt"`
	UpdatedAt  bool      `json:"updatedAt" yaml:"updatedAt" mapstructure:"updatedAt"`
	Default    *Default  `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default,omitempty"`
	Relation   *Relation `json:"relation,omitempty" yaml:"relation,omitempty" mapstructure:"relation,omitempty"`
}

type Model struct {
	Name            string   `json:"name" yaml:"name" mapstructure:"name"`
	Fields          []*Field `json:"fields" yaml:"fields" mapstructure:"fields"`
	IsRelationTable bool     `json:"isRelationTable" yaml:"isRelationTable" mapstructure:"isRelationTable"`
}

type EnumMember struct {
	Name string `json:"name" yaml:"name" mapstructure:"name"`
}

type Enum struct {
	Name    string        `json:"name" yaml:"name" mapstructure:"name"`
	Members []*EnumMember `json:"members" yaml:"members" mapstructure:"members"`
}

type Models []*Model

func (x Models) Find(name string) *Model {
	for _, m := range x {
		if m.Name == name {
			return m
		}
	}
	return nil
}

type Enums []*Enum

func (x Enums) Find(name string) *Enum {
	for _, e := range x {
		if e.Name == name {
			return e
		}
	}
	return nil
}
