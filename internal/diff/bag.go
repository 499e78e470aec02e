// Package diff performs a parallel pre-order walk of two ir.Database trees
// and renders the symmetric difference as an ordered sequence of DDL
// statements wrapped in a single transaction.
//
// The generic mechanism is a single pairing primitive, Bag/PairMaps,
// parameterized over a payload type and a child-diff type — the Go
// equivalent of the distilled source's Stack trait plus per-entity macro
// expansion, and of the Rust original's identically-shaped (if confusingly
// named) generated structs.
package diff

import "sort"

// equatable is satisfied by any ir payload type P whose equality compares
// only its own scalar fields, never its children.
type equatable[P any] interface {
	Equal(P) bool
}

// Pair holds an old/new payload for an updated entry.
type Pair[P any] struct {
	Old P
	New P
}

// Bag is the added/removed/updated accumulator for one container level —
// this system's name for the source's "Stack".
type Bag[P any] struct {
	Added   []P
	Removed []P
	Updated []Pair[P]
}

// Empty reports whether this bag's own level has nothing to emit. It does
// not consider children: a bag can be Empty while its children are not, in
// which case this level's banner is omitted but each non-empty child
// section still renders (see render.go).
func (b Bag[P]) Empty() bool {
	return len(b.Added) == 0 && len(b.Removed) == 0 && len(b.Updated) == 0
}

// PairMaps is spec's pair_maps(old, new, recurse) primitive: it walks the
// new map first (driving added/updated/children emission in new-map key
// order), then walks the old map once more to pick up removed keys. For
// every key present in both maps — whether the pair is updated or equal —
// recurse is called to produce that key's child-diff.
func PairMaps[P equatable[P], C any](oldM, newM map[string]P, recurse func(o, n P) C) (Bag[P], []C) {
	var bag Bag[P]
	var children []C

	for _, k := range sortedKeys(newM) {
		n := newM[k]
		if o, ok := oldM[k]; ok {
			if !o.Equal(n) {
				bag.Updated = append(bag.Updated, Pair[P]{Old: o, New: n})
			}
			children = append(children, recurse(o, n))
		} else {
			bag.Added = append(bag.Added, n)
		}
	}

	for _, k := range sortedKeys(oldM) {
		if _, ok := newM[k]; !ok {
			bag.Removed = append(bag.Removed, oldM[k])
		}
	}

	return bag, children
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
