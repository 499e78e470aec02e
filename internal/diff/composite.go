package diff

import (
	"strings"

	"github.com/pgdiff/pgdiff/ir"
)

func compositeCreateStatement(n *ir.Composite) string {
	qname := ir.QualifiedName(n.Schema, n.Name)
	var b strings.Builder
	b.WriteString("create type " + qname + " as (\n")
	for i, f := range n.Fields {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("  " + quote(f.Name) + " " + f.Type)
	}
	b.WriteString("\n);\n")
	return b.String()
}

func compositeAdded(n *ir.Composite) string {
	return compositeCreateStatement(n)
}

func compositeRemoved(o *ir.Composite) string {
	return "drop type " + ir.QualifiedName(o.Schema, o.Name) + ";\n"
}

// compositeUpdated has no in-place alter syntax: every change is a full
// drop-then-recreate.
func compositeUpdated(o, n *ir.Composite) string {
	return compositeRemoved(o) + compositeCreateStatement(n)
}
