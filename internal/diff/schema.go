package diff

import "github.com/pgdiff/pgdiff/ir"

func schemaAdded(s *ir.Schema) string {
	out := "create schema " + s.Name + ";\n"
	out += commentDiff("schema", s.Name, nil, s.Comment)
	return out
}

func schemaRemoved(s *ir.Schema) string {
	return "drop schema " + s.Name + ";\n"
}

// schemaUpdated is reachable only through a comment change: Schema carries
// no other scalar field, so Equal only ever differs on Comment.
func schemaUpdated(o, n *ir.Schema) string {
	return commentDiff("schema", n.Name, o.Comment, n.Comment)
}
