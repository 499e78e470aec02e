package ir_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pgdiff/pgdiff/internal/catalog"
	"github.com/pgdiff/pgdiff/ir"
)

// TestInspectAgainstRealPostgres exercises the Inspector against an actual
// PostgreSQL server, rather than catalogtest's in-memory fake, so the SQL in
// internal/catalog.PG is checked against the catalog it was written for.
func TestInspectAgainstRealPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:17",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("starting postgres container: %v", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminating container: %v", err)
		}
	}()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	const ddl = `
create table public.widgets (
  id integer primary key,
  name text not null,
  created_at timestamptz
);
comment on table public.widgets is 'a gadget';
create type public.mood as enum ('sad', 'ok', 'happy');
`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		t.Fatalf("seeding schema: %v", err)
	}

	probe := catalog.NewPG(db)
	got, err := ir.NewInspector(probe).Inspect(ctx)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	schema, ok := got.Schemas["public"]
	if !ok {
		t.Fatal("expected public schema in inspected tree")
	}
	rel, ok := schema.Relations["public.widgets"]
	if !ok {
		t.Fatal("expected public.widgets relation")
	}
	if rel.Comment == nil || *rel.Comment != "a gadget" {
		t.Errorf("expected table comment 'a gadget', got %v", rel.Comment)
	}
	if _, ok := rel.Columns["public.widgets.name"]; !ok {
		t.Error("expected column public.widgets.name")
	}
	if _, ok := schema.Enums["public.mood"]; !ok {
		t.Error("expected enum public.mood")
	}
}
