package diff

import (
	"io"
	"strings"
)

// SQL renders the complete migration script: "begin;\n\n", the emission of
// the root schema diff, then "commit;\n".
func (t *Tree) SQL() (string, error) {
	var b strings.Builder
	if err := t.Write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write streams the script to w, surfacing the first writer failure as a
// *FormatError. Body construction itself never fails — it only manipulates
// strings in memory — but the final handoff to w is written against the
// io.StringWriter interface so a sink that can refuse bytes is handled
// uniformly, per this system's error taxonomy.
func (t *Tree) Write(w io.StringWriter) error {
	if err := writeString(w, "begin;\n\n"); err != nil {
		return err
	}
	if err := writeString(w, renderSchemaSection(t)); err != nil {
		return err
	}
	return writeString(w, "commit;\n")
}

func writeString(w io.StringWriter, s string) error {
	if s == "" {
		return nil
	}
	if _, err := w.WriteString(s); err != nil {
		return &FormatError{Op: "write", Err: err}
	}
	return nil
}

// section wraps a non-empty body in the three-line banner required of every
// non-empty leaf or container diff, with a trailing blank line after. An
// empty body (nothing added, removed, updated, or nested) renders nothing
// at all — not even the banner.
func section(kind, body string) string {
	if body == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("--\n-- ")
	b.WriteString(kind)
	b.WriteString("\n--\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

// commentDiff is the shared §4.4 helper: compares an old and new optional
// comment and renders the single statement needed, or nothing.
func commentDiff(kind, qname string, old, new *string) string {
	switch {
	case strPtrEqual(old, new):
		return ""
	case new != nil:
		return "comment on " + kind + " " + qname + " is '" + *new + "';\n"
	default:
		return "comment on " + kind + " " + qname + " is null;\n"
	}
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
