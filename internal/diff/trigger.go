package diff

import "github.com/pgdiff/pgdiff/ir"

func triggerCreateStatement(t *ir.Trigger) string {
	qname := ir.QualifiedName(t.Schema, t.Table)
	return "create or replace trigger " + quote(t.Name) + " " + t.Timing + " " + t.Event +
		" on " + qname + " for each " + t.Orientation + " " + t.Action + ";\n"
}

func triggerAdded(n *ir.Trigger) string { return triggerCreateStatement(n) }

func triggerRemoved(o *ir.Trigger) string {
	return "drop trigger " + quote(o.Name) + " on " + ir.QualifiedName(o.Schema, o.Table) + ";\n"
}

// triggerUpdated reuses the same create-or-replace statement as add, since
// the statement is idempotent regardless of whether the trigger previously
// existed under different timing/event/action.
func triggerUpdated(_, n *ir.Trigger) string { return triggerCreateStatement(n) }
