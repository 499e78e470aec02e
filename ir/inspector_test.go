package ir_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pgdiff/pgdiff/internal/catalog"
	"github.com/pgdiff/pgdiff/internal/catalog/catalogtest"
	"github.com/pgdiff/pgdiff/ir"
)

func TestInspectBuildsTree(t *testing.T) {
	fake := catalogtest.New()
	fake.SchemaRows = []catalog.SchemaRaw{{Name: "public"}}
	fake.RelationsBySchema["public"] = []catalog.RelationRaw{
		{OID: 100, Schema: "public", Name: "t", Kind: "table", Persistence: "permanent"},
	}
	fake.ColumnsByRelation["public.t"] = []catalog.ColumnRaw{
		{Name: "a", Type: "integer", NotNull: true, IsPK: true},
		{Name: "b", Type: "text"},
	}
	fake.AddConstraints("table", 100, []catalog.ConstraintRaw{
		{Name: "t_pkey", Definition: "PRIMARY KEY (a)"},
	})
	fake.IndexesByOID[100] = []catalog.IndexRaw{
		{Name: "t_pkey", Definition: `create unique index t_pkey on public.t (a)`},
	}

	db, err := ir.NewInspector(fake).Inspect(context.Background())
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	schema, ok := db.Schemas["public"]
	if !ok {
		t.Fatal("expected schema public in tree")
	}
	rel, ok := schema.Relations["public.t"]
	if !ok {
		t.Fatal("expected relation public.t in tree")
	}
	if len(rel.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(rel.Columns))
	}
	if len(rel.Constraints) != 1 {
		t.Fatalf("expected 1 constraint, got %d", len(rel.Constraints))
	}
	if len(rel.Indexes) != 1 {
		t.Fatalf("expected 1 index, got %d", len(rel.Indexes))
	}
}

func TestInspectIsDeterministic(t *testing.T) {
	fake := catalogtest.New()
	fake.SchemaRows = []catalog.SchemaRaw{{Name: "public"}}
	fake.RelationsBySchema["public"] = []catalog.RelationRaw{
		{OID: 1, Schema: "public", Name: "t", Kind: "table"},
	}

	db1, err := ir.NewInspector(fake).Inspect(context.Background())
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	db2, err := ir.NewInspector(fake).Inspect(context.Background())
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if diff := cmp.Diff(db1, db2); diff != "" {
		t.Errorf("repeated inspections of an unchanged database must yield equal trees (-first +second):\n%s", diff)
	}
}

func TestInspectSkipsDetailForNonTableRelations(t *testing.T) {
	fake := catalogtest.New()
	fake.SchemaRows = []catalog.SchemaRaw{{Name: "public"}}
	definition := "select 1"
	fake.RelationsBySchema["public"] = []catalog.RelationRaw{
		{OID: 5, Schema: "public", Name: "v", Kind: "view", Definition: &definition},
	}
	// Intentionally leave ColumnsByRelation empty for "public.v": a view must
	// never be queried for column detail.

	db, err := ir.NewInspector(fake).Inspect(context.Background())
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	v := db.Schemas["public"].Relations["public.v"]
	if len(v.Columns) != 0 {
		t.Errorf("expected no columns recorded for a view, got %d", len(v.Columns))
	}
}

