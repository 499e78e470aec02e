package diff

import (
	"strings"

	"github.com/pgdiff/pgdiff/ir"
)

func domainAdded(n *ir.Domain) string {
	qname := ir.QualifiedName(n.Schema, n.Name)
	var b strings.Builder
	b.WriteString("create domain " + qname + " as " + n.Type)
	for _, k := range sortedKeys(n.Constraints) {
		c := n.Constraints[k]
		b.WriteString(" constraint " + quote(c.Name) + " " + c.Definition)
	}
	b.WriteString(";\n")
	return b.String()
}

func domainRemoved(o *ir.Domain) string {
	return "drop domain " + ir.QualifiedName(o.Schema, o.Name) + ";\n"
}

// domainUpdated follows the order given for this kind: not-null first, then
// default, using the same set/drop rules as a Column's default fragment.
func domainUpdated(o, n *ir.Domain) string {
	qname := ir.QualifiedName(o.Schema, o.Name)
	var out string

	if o.NotNull != n.NotNull {
		if n.NotNull {
			out += "alter domain " + qname + " set not null;\n"
		} else {
			out += "alter domain " + qname + " drop not null;\n"
		}
	}

	switch {
	case n.Default != nil:
		out += "alter domain " + qname + " set default " + *n.Default + ";\n"
	case o.Default != nil:
		out += "alter domain " + qname + " drop default;\n"
	}

	return out
}
