package ir

// QualifiedName returns "schema"."name". Both parts are always quoted: the
// testable contract for this system's output is that every rendered object
// reference is double-quoted regardless of whether the identifier would
// fold safely unquoted, so the script never depends on an implicit
// search_path or on casing rules.
func QualifiedName(schema, name string) string {
	return `"` + schema + `"."` + name + `"`
}
