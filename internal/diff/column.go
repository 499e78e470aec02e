package diff

import "github.com/pgdiff/pgdiff/ir"

func columnParent(c *ir.Column) string { return ir.QualifiedName(c.Schema, c.Relation) }

func columnCommentQName(c *ir.Column) string { return columnParent(c) + "." + quote(c.Name) }

func columnAdded(n *ir.Column) string {
	out := "alter table " + columnParent(n) + " add column " + quote(n.Name) + " " + n.Type + ";\n"
	out += commentDiff("column", columnCommentQName(n), nil, n.Comment)
	return out
}

func columnRemoved(o *ir.Column) string {
	return "alter table " + columnParent(o) + " drop column " + quote(o.Name) + ";\n"
}

// columnUpdated emits up to four fragments in the fixed order this system
// requires: default, comment, not-null, type.
func columnUpdated(o, n *ir.Column) string {
	var out string

	switch {
	case n.Default != nil:
		out += "alter table " + columnParent(o) + " alter column " + quote(o.Name) + " set default " + *n.Default + ";\n"
	case o.Default != nil:
		out += "alter table " + columnParent(o) + " alter column " + quote(o.Name) + " drop default;\n"
	}

	out += commentDiff("column", columnCommentQName(n), o.Comment, n.Comment)

	if o.NotNull != n.NotNull {
		if n.NotNull {
			out += "alter table " + columnParent(o) + " alter column " + quote(o.Name) + " set not null;\n"
		} else {
			out += "alter table " + columnParent(o) + " alter column " + quote(o.Name) + " drop not null;\n"
		}
	}

	if o.Type != n.Type {
		out += "alter table " + columnParent(o) + " alter column " + quote(o.Name) + " type " + n.Type +
			" using " + quote(o.Name) + "::" + n.Type + ";\n"
	}

	return out
}
