package diff

import "github.com/pgdiff/pgdiff/ir"

func indexAdded(n *ir.Index) string {
	return n.Definition + ";\n"
}

// indexRemoved drops by bare name, unqualified by schema. This preserves a
// known correctness gap (an index in another schema sharing the name would
// collide) rather than silently fixing behavior this system's contract
// depends on.
func indexRemoved(o *ir.Index) string {
	return "drop index " + quote(o.Name) + ";\n"
}

func indexUpdated(o, n *ir.Index) string {
	return indexRemoved(o) + indexAdded(n)
}
