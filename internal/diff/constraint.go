package diff

import "github.com/pgdiff/pgdiff/ir"

func constraintAdded(n *ir.Constraint) string {
	return "alter " + string(n.ParentKind) + " " + n.ParentQualifiedName +
		" add constraint " + quote(n.Name) + " " + n.Definition + ";\n"
}

func constraintRemoved(o *ir.Constraint) string {
	return "alter " + string(o.ParentKind) + " " + o.ParentQualifiedName +
		" drop constraint " + quote(o.Name) + ";\n"
}

// constraintUpdated has no in-place alter: drop then recreate.
func constraintUpdated(o, n *ir.Constraint) string {
	return constraintRemoved(o) + constraintAdded(n)
}
