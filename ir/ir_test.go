package ir

import "testing"

func strp(s string) *string { return &s }

func TestSchemaEqual(t *testing.T) {
	a := &Schema{Name: "public", Comment: strp("hi")}
	b := &Schema{Name: "public", Comment: strp("hi")}
	c := &Schema{Name: "public", Comment: strp("bye")}

	if !a.Equal(b) {
		t.Error("expected equal schemas to compare equal")
	}
	if a.Equal(c) {
		t.Error("expected differing comments to compare unequal")
	}
}

func TestRelationEqualIgnoresChildren(t *testing.T) {
	a := &Relation{
		Name: "t", Kind: RelationKindTable,
		Columns: map[string]*Column{"public.t.a": {Name: "a", Type: "int"}},
	}
	b := &Relation{
		Name: "t", Kind: RelationKindTable,
		Columns: map[string]*Column{"public.t.a": {Name: "a", Type: "text"}},
	}

	if !a.Equal(b) {
		t.Error("Relation.Equal must ignore Columns, differing only in children")
	}
}

func TestEnumEqualIsSetEqual(t *testing.T) {
	a := &Enum{Schema: "public", Name: "mood", Elements: []string{"sad", "ok", "happy"}}
	b := &Enum{Schema: "public", Name: "mood", Elements: []string{"happy", "sad", "ok"}}
	c := &Enum{Schema: "public", Name: "mood", Elements: []string{"sad", "ok"}}

	if !a.Equal(b) {
		t.Error("reordering an unchanged element set must compare equal")
	}
	if a.Equal(c) {
		t.Error("a removed element must compare unequal")
	}
}

func TestCompositeEqualIsOrderSensitive(t *testing.T) {
	a := &Composite{Schema: "public", Name: "point", Fields: []CompositeField{
		{Name: "x", Type: "int"}, {Name: "y", Type: "int"},
	}}
	b := &Composite{Schema: "public", Name: "point", Fields: []CompositeField{
		{Name: "y", Type: "int"}, {Name: "x", Type: "int"},
	}}

	if a.Equal(b) {
		t.Error("reordering composite fields must compare unequal, unlike an enum's element set")
	}
}

func TestFunctionEqualComparesArgumentsInOrder(t *testing.T) {
	a := &Function{Name: "f", Arguments: []string{"int", "text"}}
	b := &Function{Name: "f", Arguments: []string{"text", "int"}}

	if a.Equal(b) {
		t.Error("argument order is identity, not a set")
	}
}

func TestQualifiedNameAlwaysQuotes(t *testing.T) {
	got := QualifiedName("public", "t")
	want := `"public"."t"`
	if got != want {
		t.Errorf("QualifiedName(%q, %q) = %q, want %q", "public", "t", got, want)
	}
}
