// Package catalogtest is an in-memory catalog.Probe built from Go struct
// literals, so ir and diff tests exercise the Inspector and the Differ
// without a live database.
package catalogtest

import (
	"context"
	"fmt"

	"github.com/pgdiff/pgdiff/internal/catalog"
)

// Fake is a catalog.Probe backed entirely by in-memory slices, keyed by
// schema name (columns by "schema.relation", constraints by parent kind and
// OID, indexes by relation OID). Field names carry a "ByX" or "Rows" suffix
// because the Probe interface already claims the bare noun as a method name
// (Schema, Constraints, ...).
type Fake struct {
	SchemaRows       []catalog.SchemaRaw
	RelationsBySchema map[string][]catalog.RelationRaw
	ColumnsByRelation map[string][]catalog.ColumnRaw // key: "schema.relation"
	ConstraintsByKey  map[string][]catalog.ConstraintRaw
	IndexesByOID      map[uint32][]catalog.IndexRaw
	EnumsBySchema     map[string][]catalog.EnumRaw
	DomainsBySchema   map[string][]catalog.DomainRaw
	CompositesBySchema map[string][]catalog.CompositeRaw
	ExtensionsBySchema map[string][]catalog.ExtensionRaw
	FunctionsBySchema  map[string][]catalog.FunctionRaw
	TriggersBySchema   map[string][]catalog.TriggerRaw
}

var _ catalog.Probe = (*Fake)(nil)

// New returns an empty Fake ready to be populated by its exported fields.
func New() *Fake {
	return &Fake{
		RelationsBySchema:  map[string][]catalog.RelationRaw{},
		ColumnsByRelation:  map[string][]catalog.ColumnRaw{},
		ConstraintsByKey:   map[string][]catalog.ConstraintRaw{},
		IndexesByOID:       map[uint32][]catalog.IndexRaw{},
		EnumsBySchema:      map[string][]catalog.EnumRaw{},
		DomainsBySchema:    map[string][]catalog.DomainRaw{},
		CompositesBySchema: map[string][]catalog.CompositeRaw{},
		ExtensionsBySchema: map[string][]catalog.ExtensionRaw{},
		FunctionsBySchema:  map[string][]catalog.FunctionRaw{},
		TriggersBySchema:   map[string][]catalog.TriggerRaw{},
	}
}

func (f *Fake) Database(ctx context.Context) ([]catalog.SchemaRaw, error) {
	return f.SchemaRows, nil
}

func (f *Fake) Schema(ctx context.Context, schema string) ([]catalog.RelationRaw, error) {
	return f.RelationsBySchema[schema], nil
}

func (f *Fake) Relation(ctx context.Context, schema, relation string) ([]catalog.ColumnRaw, error) {
	return f.ColumnsByRelation[schema+"."+relation], nil
}

func (f *Fake) Constraints(ctx context.Context, parentKind string, oid uint32) ([]catalog.ConstraintRaw, error) {
	return f.ConstraintsByKey[key(parentKind, oid)], nil
}

func (f *Fake) Indexes(ctx context.Context, relation catalog.RelationRaw) ([]catalog.IndexRaw, error) {
	return f.IndexesByOID[relation.OID], nil
}

func (f *Fake) Enums(ctx context.Context, schema string) ([]catalog.EnumRaw, error) {
	return f.EnumsBySchema[schema], nil
}

func (f *Fake) Domains(ctx context.Context, schema string) ([]catalog.DomainRaw, error) {
	return f.DomainsBySchema[schema], nil
}

func (f *Fake) Composites(ctx context.Context, schema string) ([]catalog.CompositeRaw, error) {
	return f.CompositesBySchema[schema], nil
}

func (f *Fake) Extensions(ctx context.Context, schema string) ([]catalog.ExtensionRaw, error) {
	return f.ExtensionsBySchema[schema], nil
}

func (f *Fake) Functions(ctx context.Context, schema string) ([]catalog.FunctionRaw, error) {
	return f.FunctionsBySchema[schema], nil
}

func (f *Fake) Triggers(ctx context.Context, schema string) ([]catalog.TriggerRaw, error) {
	return f.TriggersBySchema[schema], nil
}

// AddConstraints registers constraints for a table/domain oid, matched by
// parent kind and the same OID used on the corresponding Relation/Domain.
func (f *Fake) AddConstraints(parentKind string, oid uint32, cs []catalog.ConstraintRaw) {
	f.ConstraintsByKey[key(parentKind, oid)] = cs
}

func key(parentKind string, oid uint32) string {
	return fmt.Sprintf("%s:%d", parentKind, oid)
}
