package domain

import "github.com/sayotte/glcplan/internal/state"

// Index is the set of live domains, keyed by integer coordinate
// (spec.md §3). Iteration order over domains never matters to the
// search (each expansion re-discovers its own touched set from scratch), so
// per spec.md §9's explicit allowance, Index is a plain hash map rather than
// an ordered tree.
type Index struct {
	byKey map[string]*Domain
}

// NewIndex returns an empty partition index.
func NewIndex() *Index {
	return &Index{byKey: make(map[string]*Domain)}
}

// FindOrInsert returns the existing domain at coord, or creates, stores, and
// returns a fresh one.
func (idx *Index) FindOrInsert(coord state.Coordinate) *Domain {
	key := coord.Key()
	if d, ok := idx.byKey[key]; ok {
		return d
	}
	d := New(coord)
	idx.byKey[key] = d
	return d
}

// Delete removes d from the index.
func (idx *Index) Delete(d *Domain) {
	delete(idx.byKey, d.Coordinate.Key())
}

// Len reports the number of live domains.
func (idx *Index) Len() int {
	return len(idx.byKey)
}
