// Package ir normalizes a PostgreSQL catalog into a uniform, comparable
// object tree: a Database of Schemas, each holding maps of Relations,
// Enums, Domains, Composites, Extensions, Functions, and Triggers.
// Relations further hold Columns, Constraints, and Indexes.
//
// Every node's map key is its fully-qualified name joined with '.', with no
// quoting applied to the key itself; identifier quoting is re-applied only
// when rendering output (see QualifiedName). Trees are built once by an
// Inspector and are never mutated afterward.
package ir

import "fmt"

// Database is the root of the object tree.
type Database struct {
	Schemas map[string]*Schema
}

// Schema is a PostgreSQL namespace.
type Schema struct {
	Name    string
	Comment *string

	Relations  map[string]*Relation
	Enums      map[string]*Enum
	Domains    map[string]*Domain
	Composites map[string]*Composite
	Extensions map[string]*Extension
	Functions  map[string]*Function
	Triggers   map[string]*Trigger
}

// Equal compares payload only: own scalar fields, never children.
func (s *Schema) Equal(o *Schema) bool {
	return s.Name == o.Name && strPtrEqual(s.Comment, o.Comment)
}

// RelationKind classifies a Relation the way the differ needs to: only
// ordinary tables recurse into column/constraint/index diffs, and only
// tables and views synthesize create statements.
type RelationKind string

const (
	RelationKindTable            RelationKind = "table"
	RelationKindView             RelationKind = "view"
	RelationKindMaterializedView RelationKind = "materialized_view"
	RelationKindOther            RelationKind = "other"
)

// Persistence is encoded directly in the create statement.
type Persistence string

const (
	PersistencePermanent Persistence = "permanent"
	PersistenceUnlogged  Persistence = "unlogged"
	PersistenceTemporary Persistence = "temporary"
)

// Relation is a table, view, materialized view, or anything else pg_class
// reports (sequences and the like normalize to RelationKindOther and are
// never created or recreated by the emitter).
type Relation struct {
	Schema      string
	Name        string
	Kind        RelationKind
	Persistence Persistence
	Comment     *string
	Definition  *string // view/materialized-view body; nil for tables

	Columns     map[string]*Column
	Constraints map[string]*Constraint
	Indexes     map[string]*Index
}

// Key is the relation's fully-qualified name, unquoted.
func (r *Relation) Key() string { return r.Schema + "." + r.Name }

// QualifiedName is the quoted "schema"."name" form used in DDL.
func (r *Relation) QualifiedName() string { return QualifiedName(r.Schema, r.Name) }

func (r *Relation) Equal(o *Relation) bool {
	return r.Kind == o.Kind &&
		r.Name == o.Name &&
		strPtrEqual(r.Comment, o.Comment) &&
		strPtrEqual(r.Definition, o.Definition)
}

// Column is a table column. Type is the rendered type expression as it
// appears in DDL, never a catalog oid.
type Column struct {
	Schema   string
	Relation string
	Name     string
	Type     string
	Default  *string
	NotNull  bool
	IsPK     bool
	Comment  *string
}

func (c *Column) Key() string { return c.Schema + "." + c.Relation + "." + c.Name }

func (c *Column) Equal(o *Column) bool {
	return c.Name == o.Name &&
		c.Type == o.Type &&
		strPtrEqual(c.Default, o.Default) &&
		c.NotNull == o.NotNull &&
		c.IsPK == o.IsPK &&
		strPtrEqual(c.Comment, o.Comment)
}

// ParentKind names the object kind a Constraint hangs off of, since
// `ALTER <kind> <name> ...` syntax needs both the kind and the name.
type ParentKind string

const (
	ParentKindTable  ParentKind = "table"
	ParentKindDomain ParentKind = "domain"
)

// Constraint is shared by relations and domains.
type Constraint struct {
	ParentKind          ParentKind
	ParentQualifiedName string // already-quoted "schema"."parent"
	ParentKey           string // unquoted schema.parent, for map keys
	Name                string
	Definition          string
}

func (c *Constraint) Key() string { return c.ParentKey + "." + c.Name }

func (c *Constraint) Equal(o *Constraint) bool {
	return c.ParentKind == o.ParentKind &&
		c.ParentQualifiedName == o.ParentQualifiedName &&
		c.Name == o.Name &&
		c.Definition == o.Definition
}

// Index belongs to a relation.
type Index struct {
	Schema     string
	Relation   string
	Name       string
	Definition string
}

func (i *Index) Key() string { return i.Schema + "." + i.Relation + "." + i.Name }

func (i *Index) Equal(o *Index) bool {
	return i.Name == o.Name && i.Definition == o.Definition
}

// Enum is a CREATE TYPE ... AS ENUM. Elements preserves catalog order
// (needed to place new values with BEFORE/AFTER); equality is set
// equality, since reordering an unchanged element set is a no-op.
type Enum struct {
	Schema   string
	Name     string
	Elements []string
	Comment  *string
}

func (e *Enum) Key() string { return e.Schema + "." + e.Name }

func (e *Enum) Equal(o *Enum) bool {
	if !strPtrEqual(e.Comment, o.Comment) {
		return false
	}
	return sameElementSet(e.Elements, o.Elements)
}

func sameElementSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, x := range a {
		seen[x]++
	}
	for _, x := range b {
		seen[x]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}

// Domain is a CREATE DOMAIN ... AS <type>.
type Domain struct {
	Schema  string
	Name    string
	Type    string
	Default *string
	NotNull bool
	Comment *string

	Constraints map[string]*Constraint
}

func (d *Domain) Key() string { return d.Schema + "." + d.Name }

func (d *Domain) Equal(o *Domain) bool {
	return d.Type == o.Type &&
		strPtrEqual(d.Default, o.Default) &&
		d.NotNull == o.NotNull &&
		strPtrEqual(d.Comment, o.Comment)
}

// CompositeField is one member of a composite type.
type CompositeField struct {
	Name string
	Type string
}

// Composite is a CREATE TYPE ... AS (...).
type Composite struct {
	Schema  string
	Name    string
	Fields  []CompositeField
	Comment *string
}

func (c *Composite) Key() string { return c.Schema + "." + c.Name }

func (c *Composite) Equal(o *Composite) bool {
	if !strPtrEqual(c.Comment, o.Comment) || len(c.Fields) != len(o.Fields) {
		return false
	}
	for i := range c.Fields {
		if c.Fields[i] != o.Fields[i] {
			return false
		}
	}
	return true
}

// Extension is a CREATE EXTENSION.
type Extension struct {
	Schema      string
	Name        string
	Version     string
	Description string
}

func (e *Extension) Key() string { return e.Schema + "." + e.Name }

func (e *Extension) Equal(o *Extension) bool {
	return e.Name == o.Name && e.Version == o.Version && e.Description == o.Description
}

// Function is a stored procedure-like object with a scalar return type.
type Function struct {
	Schema     string
	Name       string
	Language   string
	Definition string
	Arguments  []string // rendered argument type list, identity only
	ReturnType string
	Comment    *string
}

func (f *Function) Key() string { return f.Schema + "." + f.Name }

func (f *Function) Equal(o *Function) bool {
	if f.Name != o.Name || f.Language != o.Language || f.Definition != o.Definition ||
		f.ReturnType != o.ReturnType || len(f.Arguments) != len(o.Arguments) {
		return false
	}
	for i := range f.Arguments {
		if f.Arguments[i] != o.Arguments[i] {
			return false
		}
	}
	return true
}

// Trigger carries its full payload as identity/equality content: no
// sub-field is excluded, since any change requires a full replace.
type Trigger struct {
	Schema      string
	Table       string
	Name        string
	Timing      string // before, after, instead of
	Event       string // insert or update or delete, rendered
	Orientation string // row, statement
	Action      string // execute function ...
}

func (t *Trigger) Key() string { return t.Schema + "." + t.Table + "." + t.Name }

func (t *Trigger) Equal(o *Trigger) bool {
	return t.Timing == o.Timing && t.Event == o.Event && t.Table == o.Table &&
		t.Orientation == o.Orientation && t.Action == o.Action
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// String renders a node's key for debugging/logging, never for DDL.
func (s *Schema) String() string { return fmt.Sprintf("schema %q", s.Name) }
