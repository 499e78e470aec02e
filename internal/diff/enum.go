package diff

import (
	"strings"

	"github.com/pgdiff/pgdiff/ir"
)

func enumAdded(n *ir.Enum) string {
	qname := ir.QualifiedName(n.Schema, n.Name)
	labels := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		labels[i] = "'" + e + "'"
	}
	return "create type " + qname + " as enum(" + strings.Join(labels, ", ") + ");\n"
}

func enumRemoved(o *ir.Enum) string {
	return "drop type " + ir.QualifiedName(o.Schema, o.Name) + ";\n"
}

// enumUpdated bypasses normal ALTER/DROP syntax for removed labels — Postgres
// has no "drop enum label", so a removed element is deleted directly out of
// pg_enum. This orphans any row still carrying that label; it matches this
// system's documented, deliberately dangerous contract rather than an
// omission.
func enumUpdated(o, n *ir.Enum) string {
	var b strings.Builder

	oldSet := make(map[string]bool, len(o.Elements))
	for _, e := range o.Elements {
		oldSet[e] = true
	}
	newSet := make(map[string]bool, len(n.Elements))
	for _, e := range n.Elements {
		newSet[e] = true
	}

	for _, e := range o.Elements {
		if !newSet[e] {
			b.WriteString(deleteEnumLabelStatement(o.Schema, o.Name, e))
		}
	}

	for i, e := range n.Elements {
		if oldSet[e] {
			continue
		}
		b.WriteString(addEnumValueStatement(n.Schema, n.Name, n.Elements, i, e))
	}

	return b.String()
}

func deleteEnumLabelStatement(schema, name, label string) string {
	return "delete from pg_enum using pg_type, pg_namespace" +
		" where pg_enum.enumtypid = pg_type.oid" +
		" and pg_type.typnamespace = pg_namespace.oid" +
		" and pg_namespace.nspname = '" + schema + "'" +
		" and pg_type.typname = '" + name + "'" +
		" and pg_enum.enumlabel = '" + label + "';\n"
}

// addEnumValueStatement places a new element relative to its neighbor in
// the new element list: after its predecessor if it has one, else before
// its successor, else as a bare append.
func addEnumValueStatement(schema, name string, elements []string, i int, value string) string {
	qname := ir.QualifiedName(schema, name)
	stmt := "alter type " + qname + " add value '" + value + "'"
	switch {
	case i > 0:
		stmt += " after '" + elements[i-1] + "'"
	case i < len(elements)-1:
		stmt += " before '" + elements[i+1] + "'"
	}
	return stmt + ";\n"
}
