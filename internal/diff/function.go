package diff

import (
	"strings"

	"github.com/pgdiff/pgdiff/ir"
)

func functionQualifiedName(schema, name string, args []string) string {
	return ir.QualifiedName(schema, name) + "(" + strings.Join(args, ", ") + ")"
}

func functionAdded(n *ir.Function) string {
	def := strings.TrimRight(n.Definition, "\n")
	def = strings.TrimSuffix(def, ";")
	return def + ";\n"
}

func functionRemoved(o *ir.Function) string {
	return "drop function " + functionQualifiedName(o.Schema, o.Name, o.Arguments) + ";\n"
}

// functionUpdated has no in-place alter for a changed definition: drop then
// recreate from the new definition verbatim.
func functionUpdated(o, n *ir.Function) string {
	return functionRemoved(o) + functionAdded(n)
}
