// Package forktable implements the hierarchical symbol table as a
// persistent-style layered map that supports local insert,
// local-only iteration, chain-aware lookup, and per-layer "whiteout" of an
// inherited key.
//
// Decaf needs this instead of a plain nested-scope map because class
// inheritance (C6) re-parents a class's table onto its base class's table
// after both have already been populated — an ordinary map-of-maps can't
// express "this table used to have no parent, now it has one" without
// copying every entry.
package forktable

// Table is a scoped map from K to V. The zero value is not usable; use New.
type Table[K comparable, V any] struct {
	parent    *Table[K, V]
	back      map[K]V
	whiteouts map[K]struct{}
}

// New creates a root table with no parent.
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		back:      make(map[K]V),
		whiteouts: make(map[K]struct{}),
	}
}

// Fork creates a child table: an empty back-map and whiteout set chained to
// t as parent.
func (t *Table[K, V]) Fork() *Table[K, V] {
	return &Table[K, V]{
		parent:    t,
		back:      make(map[K]V),
		whiteouts: make(map[K]struct{}),
	}
}

// Parent returns the table's current parent, or nil at the root.
func (t *Table[K, V]) Parent() *Table[K, V] {
	return t.parent
}

// Reparent mutates t's parent pointer in place. Used by C6 to splice a
// class's table onto its base class's table after both already exist.
func (t *Table[K, V]) Reparent(newParent *Table[K, V]) {
	t.parent = newParent
}

// Put inserts k=v locally, un-hiding k if it was previously whited out.
// Returns the prior local value, if any.
func (t *Table[K, V]) Put(k K, v V) (V, bool) {
	prior, had := t.back[k]
	delete(t.whiteouts, k)
	t.back[k] = v
	return prior, had
}

// Remove deletes k. If k was only local, it is simply forgotten. If k is
// only visible through the parent chain, it is whited out locally so
// get/chainContains stop seeing it through this table, without mutating
// the parent. Returns the prior locally-visible value, if any.
func (t *Table[K, V]) Remove(k K) (V, bool) {
	if v, ok := t.back[k]; ok {
		delete(t.back, k)
		return v, true
	}
	if t.chainContainsBeyondLocal(k) {
		t.whiteouts[k] = struct{}{}
	}
	var zero V
	return zero, false
}

// Contains reports whether k is present in this table's own back-map,
// ignoring parents and whiteouts ("local contains").
func (t *Table[K, V]) Contains(k K) bool {
	_, ok := t.back[k]
	return ok
}

// ChainContains reports whether k is visible through the fork-table chain:
// present locally, or (not whited-out here AND visible in the parent).
func (t *Table[K, V]) ChainContains(k K) bool {
	if _, ok := t.back[k]; ok {
		return true
	}
	if _, white := t.whiteouts[k]; white {
		return false
	}
	if t.parent == nil {
		return false
	}
	return t.parent.ChainContains(k)
}

func (t *Table[K, V]) chainContainsBeyondLocal(k K) bool {
	if _, white := t.whiteouts[k]; white {
		return false
	}
	if t.parent == nil {
		return false
	}
	return t.parent.ChainContains(k)
}

// Get resolves k through the chain, honoring local shadowing and
// whiteouts.
func (t *Table[K, V]) Get(k K) (V, bool) {
	if v, ok := t.back[k]; ok {
		return v, true
	}
	if _, white := t.whiteouts[k]; white {
		var zero V
		return zero, false
	}
	if t.parent == nil {
		var zero V
		return zero, false
	}
	return t.parent.Get(k)
}

// Entry pairs a key with its locally-inserted value, for Local iteration.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Local returns only this table's own entries ("local-only
// iteration"): neither parent entries nor whiteouts are included.
func (t *Table[K, V]) Local() []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(t.back))
	for k, v := range t.back {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}
