package diff

import (
	"strings"

	"github.com/pgdiff/pgdiff/ir"
)

// relationKindWord renders the keyword PostgreSQL's DDL expects after
// "create"/"drop" for each relation kind. RelationKindOther never reaches
// create (inspectRelation never populates its detail, and relationAdded below
// skips it outright); it falls back to "table" here only so that a drop of
// a since-removed non-table relation still produces syntactically valid
// DDL rather than an empty keyword.
func relationKindWord(k ir.RelationKind) string {
	switch k {
	case ir.RelationKindView:
		return "view"
	case ir.RelationKindMaterializedView:
		return "materialized view"
	default:
		return "table"
	}
}

func persistenceWord(p ir.Persistence) string {
	switch p {
	case ir.PersistenceUnlogged:
		return "unlogged "
	case ir.PersistenceTemporary:
		return "temporary "
	default:
		return ""
	}
}

func relationAdded(n *ir.Relation) string {
	switch n.Kind {
	case ir.RelationKindTable:
		return createTableStatement(n) + commentDiff("table", n.QualifiedName(), nil, n.Comment)
	case ir.RelationKindView, ir.RelationKindMaterializedView:
		if n.Definition == nil {
			return ""
		}
		return "create " + relationKindWord(n.Kind) + " " + n.QualifiedName() + " as " + *n.Definition + ";\n"
	default:
		return ""
	}
}

func createTableStatement(n *ir.Relation) string {
	var b strings.Builder
	b.WriteString("create ")
	b.WriteString(persistenceWord(n.Persistence))
	b.WriteString("table ")
	b.WriteString(n.QualifiedName())
	b.WriteString("(")
	for i, k := range sortedKeys(n.Columns) {
		if i > 0 {
			b.WriteString(", ")
		}
		col := n.Columns[k]
		b.WriteString(quote(col.Name))
		b.WriteString(" ")
		b.WriteString(col.Type)
		if col.IsPK {
			b.WriteString(" primary key")
		}
	}
	b.WriteString(");\n")
	return b.String()
}

func relationRemoved(o *ir.Relation) string {
	return "drop " + relationKindWord(o.Kind) + " " + o.QualifiedName() + ";\n"
}

// relationUpdated replaces a plain view whose definition changed (drop then
// recreate); a materialized view changing definition is deliberately left
// alone here. Relation.Equal compares a materialized view's Definition just
// like a view's, so a definition change does reach this function, but only
// a plain view is rewritten on that difference; a materialized view gets
// the comment diff alone.
func relationUpdated(o, n *ir.Relation) string {
	var b strings.Builder
	if o.Kind == ir.RelationKindView && n.Kind == ir.RelationKindView &&
		!strPtrEqual(o.Definition, n.Definition) && n.Definition != nil {
		b.WriteString("drop view " + o.QualifiedName() + ";\n")
		b.WriteString("create view " + n.QualifiedName() + " as " + *n.Definition + ";\n")
	}
	b.WriteString(commentDiff("table", n.QualifiedName(), o.Comment, n.Comment))
	return b.String()
}
