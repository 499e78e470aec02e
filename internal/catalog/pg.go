package catalog

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pgdiff/pgdiff/internal/logger"
)

// PG is the concrete Probe backed by a live PostgreSQL connection, querying
// pg_catalog directly rather than through information_schema so that the
// Inspector gets rendered type expressions and definitions verbatim.
type PG struct {
	db *sql.DB
}

var _ Probe = (*PG)(nil)

// NewPG wraps an already-connected database handle (see Connect) as a Probe.
func NewPG(db *sql.DB) *PG {
	return &PG{db: db}
}

const schemasQuery = `
select n.nspname, obj_description(n.oid, 'pg_namespace')
from pg_namespace n
where n.nspname not in ('pg_catalog', 'information_schema', 'pg_toast')
  and n.nspname not like 'pg_temp_%'
  and n.nspname not like 'pg_toast_temp_%'
order by n.nspname`

func (p *PG) Database(ctx context.Context) ([]SchemaRaw, error) {
	logger.Get().Debug("catalog: querying schemas")
	rows, err := p.db.QueryContext(ctx, schemasQuery)
	if err != nil {
		return nil, wrap("database", err)
	}
	defer rows.Close()

	var out []SchemaRaw
	for rows.Next() {
		var s SchemaRaw
		if err := rows.Scan(&s.Name, &s.Comment); err != nil {
			return nil, wrap("database: scan", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("database: rows", err)
	}
	return out, nil
}

const relationsQuery = `
select c.oid, c.relname,
  case c.relkind
    when 'r' then 'table'
    when 'v' then 'view'
    when 'm' then 'materialized_view'
    else 'other'
  end,
  case c.relpersistence
    when 'u' then 'unlogged'
    when 't' then 'temporary'
    else 'permanent'
  end,
  obj_description(c.oid, 'pg_class'),
  case when c.relkind in ('v', 'm') then pg_get_viewdef(c.oid, true) end
from pg_class c
join pg_namespace n on n.oid = c.relnamespace
where n.nspname = $1
  and c.relkind in ('r', 'v', 'm')
order by c.relname`

func (p *PG) Schema(ctx context.Context, schema string) ([]RelationRaw, error) {
	logger.Get().Debug("catalog: querying relations", "schema", schema)
	rows, err := p.db.QueryContext(ctx, relationsQuery, schema)
	if err != nil {
		return nil, wrap("schema", err)
	}
	defer rows.Close()

	var out []RelationRaw
	for rows.Next() {
		r := RelationRaw{Schema: schema}
		if err := rows.Scan(&r.OID, &r.Name, &r.Kind, &r.Persistence, &r.Comment, &r.Definition); err != nil {
			return nil, wrap("schema: scan", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("schema: rows", err)
	}
	return out, nil
}

const columnsQuery = `
select a.attname,
  format_type(a.atttypid, a.atttypmod),
  pg_get_expr(ad.adbin, ad.adrelid),
  a.attnotnull,
  coalesce(pk.is_pk, false),
  col_description(a.attrelid, a.attnum),
  a.attnum
from pg_attribute a
join pg_class c on c.oid = a.attrelid
join pg_namespace n on n.oid = c.relnamespace
left join pg_attrdef ad on ad.adrelid = a.attrelid and ad.adnum = a.attnum
left join lateral (
  select true as is_pk
  from pg_index i
  where i.indrelid = a.attrelid and i.indisprimary and a.attnum = any(i.indkey)
) pk on true
where n.nspname = $1 and c.relname = $2
  and a.attnum > 0 and not a.attisdropped
order by a.attnum`

func (p *PG) Relation(ctx context.Context, schema, relation string) ([]ColumnRaw, error) {
	logger.Get().Debug("catalog: querying columns", "schema", schema, "relation", relation)
	rows, err := p.db.QueryContext(ctx, columnsQuery, schema, relation)
	if err != nil {
		return nil, wrap("relation", err)
	}
	defer rows.Close()

	var out []ColumnRaw
	for rows.Next() {
		var c ColumnRaw
		if err := rows.Scan(&c.Name, &c.Type, &c.Default, &c.NotNull, &c.IsPK, &c.Comment, &c.Position); err != nil {
			return nil, wrap("relation: scan", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("relation: rows", err)
	}
	return out, nil
}

const tableConstraintsQuery = `
select conname, pg_get_constraintdef(oid)
from pg_constraint
where conrelid = $1
order by conname`

const domainConstraintsQuery = `
select conname, pg_get_constraintdef(oid)
from pg_constraint
where contypid = $1
order by conname`

func (p *PG) Constraints(ctx context.Context, parentKind string, oid uint32) ([]ConstraintRaw, error) {
	logger.Get().Debug("catalog: querying constraints", "parent_kind", parentKind, "oid", oid)

	query := tableConstraintsQuery
	if parentKind == "domain" {
		query = domainConstraintsQuery
	}

	rows, err := p.db.QueryContext(ctx, query, oid)
	if err != nil {
		return nil, wrap("constraints", err)
	}
	defer rows.Close()

	var out []ConstraintRaw
	for rows.Next() {
		var c ConstraintRaw
		if err := rows.Scan(&c.Name, &c.Definition); err != nil {
			return nil, wrap("constraints: scan", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("constraints: rows", err)
	}
	return out, nil
}

const indexesQuery = `
select c.relname, pg_get_indexdef(i.indexrelid)
from pg_index i
join pg_class c on c.oid = i.indexrelid
where i.indrelid = $1
order by c.relname`

func (p *PG) Indexes(ctx context.Context, relation RelationRaw) ([]IndexRaw, error) {
	logger.Get().Debug("catalog: querying indexes", "relation", relation.Name)
	rows, err := p.db.QueryContext(ctx, indexesQuery, relation.OID)
	if err != nil {
		return nil, wrap("indexes", err)
	}
	defer rows.Close()

	var out []IndexRaw
	for rows.Next() {
		var idx IndexRaw
		if err := rows.Scan(&idx.Name, &idx.Definition); err != nil {
			return nil, wrap("indexes: scan", err)
		}
		out = append(out, idx)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("indexes: rows", err)
	}
	return out, nil
}

const enumsQuery = `
select t.typname, e.enumlabel, obj_description(t.oid, 'pg_type')
from pg_type t
join pg_namespace n on n.oid = t.typnamespace
join pg_enum e on e.enumtypid = t.oid
where n.nspname = $1 and t.typtype = 'e'
order by t.typname, e.enumsortorder`

func (p *PG) Enums(ctx context.Context, schema string) ([]EnumRaw, error) {
	logger.Get().Debug("catalog: querying enums", "schema", schema)
	rows, err := p.db.QueryContext(ctx, enumsQuery, schema)
	if err != nil {
		return nil, wrap("enums", err)
	}
	defer rows.Close()

	byName := map[string]*EnumRaw{}
	var order []string
	for rows.Next() {
		var name, label string
		var comment *string
		if err := rows.Scan(&name, &label, &comment); err != nil {
			return nil, wrap("enums: scan", err)
		}
		e, ok := byName[name]
		if !ok {
			e = &EnumRaw{Schema: schema, Name: name, Comment: comment}
			byName[name] = e
			order = append(order, name)
		}
		e.Elements = append(e.Elements, label)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("enums: rows", err)
	}

	out := make([]EnumRaw, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out, nil
}

const domainsQuery = `
select t.oid, t.typname, format_type(t.typbasetype, t.typtypmod),
  t.typdefault, t.typnotnull, obj_description(t.oid, 'pg_type')
from pg_type t
join pg_namespace n on n.oid = t.typnamespace
where n.nspname = $1 and t.typtype = 'd'
order by t.typname`

func (p *PG) Domains(ctx context.Context, schema string) ([]DomainRaw, error) {
	logger.Get().Debug("catalog: querying domains", "schema", schema)
	rows, err := p.db.QueryContext(ctx, domainsQuery, schema)
	if err != nil {
		return nil, wrap("domains", err)
	}
	defer rows.Close()

	var out []DomainRaw
	for rows.Next() {
		d := DomainRaw{Schema: schema}
		if err := rows.Scan(&d.OID, &d.Name, &d.Type, &d.Default, &d.NotNull, &d.Comment); err != nil {
			return nil, wrap("domains: scan", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("domains: rows", err)
	}
	return out, nil
}

const compositesQuery = `
select t.typname, obj_description(t.oid, 'pg_type'), a.attname, format_type(a.atttypid, a.atttypmod)
from pg_type t
join pg_namespace n on n.oid = t.typnamespace
join pg_class c on c.oid = t.typrelid
join pg_attribute a on a.attrelid = c.oid
where n.nspname = $1 and t.typtype = 'c'
  and a.attnum > 0 and not a.attisdropped
order by t.typname, a.attnum`

func (p *PG) Composites(ctx context.Context, schema string) ([]CompositeRaw, error) {
	logger.Get().Debug("catalog: querying composites", "schema", schema)
	rows, err := p.db.QueryContext(ctx, compositesQuery, schema)
	if err != nil {
		return nil, wrap("composites", err)
	}
	defer rows.Close()

	byName := map[string]*CompositeRaw{}
	var order []string
	for rows.Next() {
		var name, fieldName, fieldType string
		var comment *string
		if err := rows.Scan(&name, &comment, &fieldName, &fieldType); err != nil {
			return nil, wrap("composites: scan", err)
		}
		c, ok := byName[name]
		if !ok {
			c = &CompositeRaw{Schema: schema, Name: name, Comment: comment}
			byName[name] = c
			order = append(order, name)
		}
		c.Fields = append(c.Fields, CompositeFieldRaw{Name: fieldName, Type: fieldType})
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("composites: rows", err)
	}

	out := make([]CompositeRaw, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out, nil
}

const extensionsQuery = `
select e.extname, e.extversion, coalesce(c.description, '')
from pg_extension e
join pg_namespace n on n.oid = e.extnamespace
left join pg_description c on c.objoid = e.oid
where n.nspname = $1
order by e.extname`

func (p *PG) Extensions(ctx context.Context, schema string) ([]ExtensionRaw, error) {
	logger.Get().Debug("catalog: querying extensions", "schema", schema)
	rows, err := p.db.QueryContext(ctx, extensionsQuery, schema)
	if err != nil {
		return nil, wrap("extensions", err)
	}
	defer rows.Close()

	var out []ExtensionRaw
	for rows.Next() {
		e := ExtensionRaw{Schema: schema}
		if err := rows.Scan(&e.Name, &e.Version, &e.Description); err != nil {
			return nil, wrap("extensions: scan", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("extensions: rows", err)
	}
	return out, nil
}

const functionsQuery = `
select p.proname, l.lanname, pg_get_functiondef(p.oid),
  pg_get_function_result(p.oid), obj_description(p.oid, 'pg_proc')
from pg_proc p
join pg_namespace n on n.oid = p.pronamespace
join pg_language l on l.oid = p.prolang
where n.nspname = $1 and p.prokind = 'f'
order by p.proname`

func (p *PG) Functions(ctx context.Context, schema string) ([]FunctionRaw, error) {
	logger.Get().Debug("catalog: querying functions", "schema", schema)
	rows, err := p.db.QueryContext(ctx, functionsQuery, schema)
	if err != nil {
		return nil, wrap("functions", err)
	}
	defer rows.Close()

	var out []FunctionRaw
	for rows.Next() {
		f := FunctionRaw{Schema: schema}
		if err := rows.Scan(&f.Name, &f.Language, &f.Definition, &f.ReturnType, &f.Comment); err != nil {
			return nil, wrap("functions: scan", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("functions: rows", err)
	}
	return out, nil
}

const triggersQuery = `
select c.relname, t.tgname, t.tgtype,
  p.proname || '(' || coalesce(pg_get_function_arguments(p.oid), '') || ')'
from pg_trigger t
join pg_class c on c.oid = t.tgrelid
join pg_namespace n on n.oid = c.relnamespace
join pg_proc p on p.oid = t.tgfoid
where n.nspname = $1 and not t.tgisinternal
order by c.relname, t.tgname`

// Bit positions within pg_trigger.tgtype, per PostgreSQL's trigger.h.
const (
	triggerTypeRow      = 1 << 0
	triggerTypeBefore   = 1 << 1
	triggerTypeInsert   = 1 << 2
	triggerTypeDelete   = 1 << 3
	triggerTypeUpdate   = 1 << 4
	triggerTypeTruncate = 1 << 5
	triggerTypeInstead  = 1 << 6
)

func (p *PG) Triggers(ctx context.Context, schema string) ([]TriggerRaw, error) {
	logger.Get().Debug("catalog: querying triggers", "schema", schema)
	rows, err := p.db.QueryContext(ctx, triggersQuery, schema)
	if err != nil {
		return nil, wrap("triggers", err)
	}
	defer rows.Close()

	var out []TriggerRaw
	for rows.Next() {
		var table, name, funcCall string
		var tgtype int
		if err := rows.Scan(&table, &name, &tgtype, &funcCall); err != nil {
			return nil, wrap("triggers: scan", err)
		}
		out = append(out, TriggerRaw{
			Schema:      schema,
			Table:       table,
			Name:        name,
			Timing:      triggerTiming(tgtype),
			Event:       triggerEvent(tgtype),
			Orientation: triggerOrientation(tgtype),
			Action:      "execute function " + funcCall,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("triggers: rows", err)
	}
	return out, nil
}

func triggerTiming(tgtype int) string {
	switch {
	case tgtype&triggerTypeInstead != 0:
		return "instead of"
	case tgtype&triggerTypeBefore != 0:
		return "before"
	default:
		return "after"
	}
}

func triggerOrientation(tgtype int) string {
	if tgtype&triggerTypeRow != 0 {
		return "row"
	}
	return "statement"
}

func triggerEvent(tgtype int) string {
	var events []string
	if tgtype&triggerTypeInsert != 0 {
		events = append(events, "insert")
	}
	if tgtype&triggerTypeUpdate != 0 {
		events = append(events, "update")
	}
	if tgtype&triggerTypeDelete != 0 {
		events = append(events, "delete")
	}
	if tgtype&triggerTypeTruncate != 0 {
		events = append(events, "truncate")
	}
	return strings.Join(events, " or ")
}
