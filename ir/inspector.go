package ir

import (
	"context"

	"github.com/pgdiff/pgdiff/internal/catalog"
	"github.com/pgdiff/pgdiff/internal/logger"
)

// Inspector builds a frozen Database tree from a catalog.Probe. Every
// inspection is a single top-down walk: query the catalog for the direct
// children of the current node, wrap each child in its tree-level type
// (cloning in whatever parent identity the child needs to render a
// qualified name later), and insert it into the parent's map under its
// canonical key.
type Inspector struct {
	probe catalog.Probe
}

// NewInspector wraps a catalog.Probe for tree construction.
func NewInspector(probe catalog.Probe) *Inspector {
	return &Inspector{probe: probe}
}

// Inspect builds the complete Database tree. Repeated inspections of an
// unchanged database yield equal trees, since every map is populated from
// the probe in a single pass and never mutated afterward.
func (in *Inspector) Inspect(ctx context.Context) (*Database, error) {
	log := logger.Get()

	rawSchemas, err := in.probe.Database(ctx)
	if err != nil {
		return nil, err
	}

	db := &Database{Schemas: make(map[string]*Schema, len(rawSchemas))}
	for _, rs := range rawSchemas {
		log.Debug("inspecting schema", "schema", rs.Name)
		schema, err := in.inspectSchema(ctx, rs)
		if err != nil {
			return nil, err
		}
		db.Schemas[schema.Name] = schema
	}
	return db, nil
}

func (in *Inspector) inspectSchema(ctx context.Context, rs catalog.SchemaRaw) (*Schema, error) {
	schema := &Schema{
		Name:       rs.Name,
		Comment:    rs.Comment,
		Relations:  map[string]*Relation{},
		Enums:      map[string]*Enum{},
		Domains:    map[string]*Domain{},
		Composites: map[string]*Composite{},
		Extensions: map[string]*Extension{},
		Functions:  map[string]*Function{},
		Triggers:   map[string]*Trigger{},
	}

	rawRelations, err := in.probe.Schema(ctx, rs.Name)
	if err != nil {
		return nil, err
	}
	for _, rr := range rawRelations {
		rel, err := in.inspectRelation(ctx, rr)
		if err != nil {
			return nil, err
		}
		schema.Relations[rel.Key()] = rel
	}

	rawEnums, err := in.probe.Enums(ctx, rs.Name)
	if err != nil {
		return nil, err
	}
	for _, re := range rawEnums {
		e := &Enum{Schema: re.Schema, Name: re.Name, Elements: re.Elements, Comment: re.Comment}
		schema.Enums[e.Key()] = e
	}

	rawDomains, err := in.probe.Domains(ctx, rs.Name)
	if err != nil {
		return nil, err
	}
	for _, rd := range rawDomains {
		dom, err := in.inspectDomain(ctx, rd)
		if err != nil {
			return nil, err
		}
		schema.Domains[dom.Key()] = dom
	}

	rawComposites, err := in.probe.Composites(ctx, rs.Name)
	if err != nil {
		return nil, err
	}
	for _, rc := range rawComposites {
		c := &Composite{Schema: rc.Schema, Name: rc.Name, Comment: rc.Comment}
		for _, f := range rc.Fields {
			c.Fields = append(c.Fields, CompositeField{Name: f.Name, Type: f.Type})
		}
		schema.Composites[c.Key()] = c
	}

	rawExtensions, err := in.probe.Extensions(ctx, rs.Name)
	if err != nil {
		return nil, err
	}
	for _, rx := range rawExtensions {
		x := &Extension{Schema: rx.Schema, Name: rx.Name, Version: rx.Version, Description: rx.Description}
		schema.Extensions[x.Key()] = x
	}

	rawFunctions, err := in.probe.Functions(ctx, rs.Name)
	if err != nil {
		return nil, err
	}
	for _, rf := range rawFunctions {
		fn := &Function{
			Schema:     rf.Schema,
			Name:       rf.Name,
			Language:   rf.Language,
			Definition: rf.Definition,
			Arguments:  rf.Arguments,
			ReturnType: rf.ReturnType,
			Comment:    rf.Comment,
		}
		schema.Functions[fn.Key()] = fn
	}

	rawTriggers, err := in.probe.Triggers(ctx, rs.Name)
	if err != nil {
		return nil, err
	}
	for _, rt := range rawTriggers {
		t := &Trigger{
			Schema:      rt.Schema,
			Table:       rt.Table,
			Name:        rt.Name,
			Timing:      rt.Timing,
			Event:       rt.Event,
			Orientation: rt.Orientation,
			Action:      rt.Action,
		}
		schema.Triggers[t.Key()] = t
	}

	return schema, nil
}

func (in *Inspector) inspectRelation(ctx context.Context, rr catalog.RelationRaw) (*Relation, error) {
	rel := &Relation{
		Schema:      rr.Schema,
		Name:        rr.Name,
		Kind:        RelationKind(rr.Kind),
		Persistence: Persistence(rr.Persistence),
		Comment:     rr.Comment,
		Definition:  rr.Definition,
		Columns:     map[string]*Column{},
		Constraints: map[string]*Constraint{},
		Indexes:     map[string]*Index{},
	}

	if rel.Kind != RelationKindTable {
		// Only ordinary tables carry column/constraint/index detail; the
		// differ treats any other kind's relation diff as a leaf.
		return rel, nil
	}

	rawColumns, err := in.probe.Relation(ctx, rr.Schema, rr.Name)
	if err != nil {
		return nil, err
	}
	for _, rc := range rawColumns {
		col := &Column{
			Schema:   rr.Schema,
			Relation: rr.Name,
			Name:     rc.Name,
			Type:     rc.Type,
			Default:  rc.Default,
			NotNull:  rc.NotNull,
			IsPK:     rc.IsPK,
			Comment:  rc.Comment,
		}
		rel.Columns[col.Key()] = col
	}

	rawConstraints, err := in.probe.Constraints(ctx, string(ParentKindTable), rr.OID)
	if err != nil {
		return nil, err
	}
	qname := rel.QualifiedName()
	for _, rcon := range rawConstraints {
		con := &Constraint{
			ParentKind:          ParentKindTable,
			ParentQualifiedName: qname,
			ParentKey:           rel.Key(),
			Name:                rcon.Name,
			Definition:          rcon.Definition,
		}
		rel.Constraints[con.Key()] = con
	}

	rawIndexes, err := in.probe.Indexes(ctx, rr)
	if err != nil {
		return nil, err
	}
	for _, ri := range rawIndexes {
		idx := &Index{
			Schema:     rr.Schema,
			Relation:   rr.Name,
			Name:       ri.Name,
			Definition: ri.Definition,
		}
		rel.Indexes[idx.Key()] = idx
	}

	return rel, nil
}

func (in *Inspector) inspectDomain(ctx context.Context, rd catalog.DomainRaw) (*Domain, error) {
	dom := &Domain{
		Schema:      rd.Schema,
		Name:        rd.Name,
		Type:        rd.Type,
		Default:     rd.Default,
		NotNull:     rd.NotNull,
		Comment:     rd.Comment,
		Constraints: map[string]*Constraint{},
	}

	rawConstraints, err := in.probe.Constraints(ctx, string(ParentKindDomain), rd.OID)
	if err != nil {
		return nil, err
	}
	qname := QualifiedName(dom.Schema, dom.Name)
	for _, rcon := range rawConstraints {
		con := &Constraint{
			ParentKind:          ParentKindDomain,
			ParentQualifiedName: qname,
			ParentKey:           dom.Key(),
			Name:                rcon.Name,
			Definition:          rcon.Definition,
		}
		dom.Constraints[con.Key()] = con
	}

	return dom, nil
}
