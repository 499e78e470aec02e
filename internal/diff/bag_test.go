package diff

import "testing"

type fakeEntity struct {
	id  string
	val int
}

func (f fakeEntity) Equal(o fakeEntity) bool { return f.val == o.val }

func TestPairMapsAddedRemovedUpdated(t *testing.T) {
	old := map[string]fakeEntity{
		"a": {id: "a", val: 1},
		"b": {id: "b", val: 2},
	}
	new := map[string]fakeEntity{
		"b": {id: "b", val: 20},
		"c": {id: "c", val: 3},
	}

	bag, children := PairMaps(old, new, func(o, n fakeEntity) string { return o.id + n.id })

	if len(bag.Added) != 1 || bag.Added[0].id != "c" {
		t.Errorf("expected added=[c], got %+v", bag.Added)
	}
	if len(bag.Removed) != 1 || bag.Removed[0].id != "a" {
		t.Errorf("expected removed=[a], got %+v", bag.Removed)
	}
	if len(bag.Updated) != 1 || bag.Updated[0].Old.id != "b" || bag.Updated[0].New.id != "b" {
		t.Errorf("expected updated=[(b,b)], got %+v", bag.Updated)
	}
	// recurse is called for every key present in both maps, i.e. just "b".
	if len(children) != 1 || children[0] != "bb" {
		t.Errorf("expected one child \"bb\", got %+v", children)
	}
}

func TestPairMapsUnchangedProducesNoUpdate(t *testing.T) {
	m := map[string]fakeEntity{"a": {id: "a", val: 1}}
	bag, children := PairMaps(m, m, func(o, n fakeEntity) struct{} { return struct{}{} })

	if !bag.Empty() {
		t.Errorf("expected an empty bag for an unchanged map, got %+v", bag)
	}
	if len(children) != 1 {
		t.Errorf("expected one child recursion even with no change, got %d", len(children))
	}
}

func TestPairMapsBothEmpty(t *testing.T) {
	bag, children := PairMaps(map[string]fakeEntity{}, map[string]fakeEntity{}, func(o, n fakeEntity) struct{} { return struct{}{} })
	if !bag.Empty() || len(children) != 0 {
		t.Errorf("expected nothing from two empty maps, got bag=%+v children=%+v", bag, children)
	}
}
