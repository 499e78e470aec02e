// Package catalog is the read-only source the Inspector builds trees from:
// it returns raw descriptions of schemas, relations, columns, indexes,
// constraints, enums, domains, composites, extensions, functions, and
// triggers. Nothing in this package knows about the ir tree shape or about
// diffing; it only knows how to ask PostgreSQL what exists.
package catalog

import "context"

// SchemaRaw describes one row of pg_namespace.
type SchemaRaw struct {
	Name    string
	Comment *string
}

// RelationRaw describes one row of pg_class joined to its definition.
type RelationRaw struct {
	OID         uint32
	Schema      string
	Name        string
	Kind        string // "table", "view", "materialized_view", "other"
	Persistence string // "permanent", "unlogged", "temporary"
	Comment     *string
	Definition  *string
}

// ColumnRaw describes one row of pg_attribute joined to pg_attrdef.
type ColumnRaw struct {
	Name     string
	Type     string
	Default  *string
	NotNull  bool
	IsPK     bool
	Comment  *string
	Position int
}

// ConstraintRaw describes one row of pg_constraint.
type ConstraintRaw struct {
	Name       string
	Definition string
}

// IndexRaw describes one row of pg_index joined to pg_class.
type IndexRaw struct {
	Name       string
	Definition string
}

// EnumRaw describes a pg_type/pg_enum pair.
type EnumRaw struct {
	Schema   string
	Name     string
	Elements []string
	Comment  *string
}

// DomainRaw describes a pg_type row of typtype 'd'.
type DomainRaw struct {
	OID     uint32
	Schema  string
	Name    string
	Type    string
	Default *string
	NotNull bool
	Comment *string
}

// CompositeRaw describes a pg_type row of typtype 'c'.
type CompositeRaw struct {
	Schema  string
	Name    string
	Fields  []CompositeFieldRaw
	Comment *string
}

// CompositeFieldRaw is one attribute of a composite type.
type CompositeFieldRaw struct {
	Name string
	Type string
}

// ExtensionRaw describes a pg_extension row.
type ExtensionRaw struct {
	Schema      string
	Name        string
	Version     string
	Description string
}

// FunctionRaw describes a pg_proc row.
type FunctionRaw struct {
	Schema     string
	Name       string
	Language   string
	Definition string
	Arguments  []string
	ReturnType string
	Comment    *string
}

// TriggerRaw describes a pg_trigger row.
type TriggerRaw struct {
	Schema      string
	Table       string
	Name        string
	Timing      string
	Event       string
	Orientation string
	Action      string
}

// Probe is the catalog introspection contract the Inspector consumes. Every
// method takes the already-open connection context; implementations are
// free to issue as many queries as they need to assemble one raw slice.
type Probe interface {
	Database(ctx context.Context) ([]SchemaRaw, error)
	Schema(ctx context.Context, schema string) ([]RelationRaw, error)
	Relation(ctx context.Context, schema, relation string) ([]ColumnRaw, error)
	Constraints(ctx context.Context, parentKind string, oid uint32) ([]ConstraintRaw, error)
	Indexes(ctx context.Context, relation RelationRaw) ([]IndexRaw, error)
	Enums(ctx context.Context, schema string) ([]EnumRaw, error)
	Domains(ctx context.Context, schema string) ([]DomainRaw, error)
	Composites(ctx context.Context, schema string) ([]CompositeRaw, error)
	Extensions(ctx context.Context, schema string) ([]ExtensionRaw, error)
	Functions(ctx context.Context, schema string) ([]FunctionRaw, error)
	Triggers(ctx context.Context, schema string) ([]TriggerRaw, error)
}
