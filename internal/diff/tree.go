package diff

import "github.com/pgdiff/pgdiff/ir"

// Tree is the root DiffTree: the bag of Schema payload changes, plus one
// SchemaChildren entry per schema key present in both the old and new
// databases, in new-map key order.
type Tree struct {
	Schemas  Bag[*ir.Schema]
	Children []SchemaChildren
}

// SchemaChildren holds one schema's seven child-kind diffs, in the fixed
// section order: relation, enum, domain, composite, extension, function,
// trigger.
type SchemaChildren struct {
	Relations        Bag[*ir.Relation]
	RelationChildren []RelationChildren

	Enums Bag[*ir.Enum]

	Domains        Bag[*ir.Domain]
	DomainChildren []DomainChildren

	Composites Bag[*ir.Composite]
	Extensions Bag[*ir.Extension]
	Functions  Bag[*ir.Function]
	Triggers   Bag[*ir.Trigger]
}

// RelationChildren holds one relation's column/constraint/index diffs. It
// is the zero value (all bags empty) for any relation whose new kind is not
// an ordinary table, per spec: "only ordinary-tables recurse into
// column/constraint/index diffs; otherwise the relation diff is a leaf."
type RelationChildren struct {
	Columns     Bag[*ir.Column]
	Constraints Bag[*ir.Constraint]
	Indexes     Bag[*ir.Index]
}

// DomainChildren holds one domain's constraint diff.
type DomainChildren struct {
	Constraints Bag[*ir.Constraint]
}

// Diff builds a Tree from two Database trees. Neither input is mutated.
func Diff(oldDB, newDB *ir.Database) *Tree {
	schemas, children := PairMaps(oldDB.Schemas, newDB.Schemas, diffSchemaChildren)
	return &Tree{Schemas: schemas, Children: children}
}

func diffSchemaChildren(o, n *ir.Schema) SchemaChildren {
	relations, relChildren := PairMaps(o.Relations, n.Relations, diffRelationChildren)
	domains, domChildren := PairMaps(o.Domains, n.Domains, diffDomainChildren)
	enums, _ := PairMaps(o.Enums, n.Enums, func(_, _ *ir.Enum) struct{} { return struct{}{} })
	composites, _ := PairMaps(o.Composites, n.Composites, func(_, _ *ir.Composite) struct{} { return struct{}{} })
	extensions, _ := PairMaps(o.Extensions, n.Extensions, func(_, _ *ir.Extension) struct{} { return struct{}{} })
	functions, _ := PairMaps(o.Functions, n.Functions, func(_, _ *ir.Function) struct{} { return struct{}{} })
	triggers, _ := PairMaps(o.Triggers, n.Triggers, func(_, _ *ir.Trigger) struct{} { return struct{}{} })

	return SchemaChildren{
		Relations:        relations,
		RelationChildren: relChildren,
		Enums:            enums,
		Domains:          domains,
		DomainChildren:   domChildren,
		Composites:       composites,
		Extensions:       extensions,
		Functions:        functions,
		Triggers:         triggers,
	}
}

func diffRelationChildren(o, n *ir.Relation) RelationChildren {
	if n.Kind != ir.RelationKindTable {
		return RelationChildren{}
	}
	columns, _ := PairMaps(o.Columns, n.Columns, func(_, _ *ir.Column) struct{} { return struct{}{} })
	constraints, _ := PairMaps(o.Constraints, n.Constraints, func(_, _ *ir.Constraint) struct{} { return struct{}{} })
	indexes, _ := PairMaps(o.Indexes, n.Indexes, func(_, _ *ir.Index) struct{} { return struct{}{} })
	return RelationChildren{Columns: columns, Constraints: constraints, Indexes: indexes}
}

func diffDomainChildren(o, n *ir.Domain) DomainChildren {
	constraints, _ := PairMaps(o.Constraints, n.Constraints, func(_, _ *ir.Constraint) struct{} { return struct{}{} })
	return DomainChildren{Constraints: constraints}
}
