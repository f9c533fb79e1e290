// Package subtree enumerates the descendants of a taxon, either as a
// lazy pre-order sequence or as an eager nested tree for structural
// export.
package subtree

import (
	"fmt"
	"iter"

	"github.com/gnames/gntaxa/pkg/taxa"
)

// Iter returns a restartable, lazy depth-first pre-order traversal of
// the subtree rooted at id. The sequence starts with id's own taxon
// and visits every descendant exactly once, children in ascending
// identifier order. Stale identifiers are resolved first; deleted and
// unknown ones are an error.
func Iter(st taxa.Store, id taxa.TaxID) (iter.Seq[taxa.Taxon], error) {
	root, status := st.ResolveStale(id)
	switch status {
	case taxa.Deleted:
		return nil, fmt.Errorf("subtree of %d: %w", id, taxa.ErrDeleted)
	case taxa.NotFound:
		return nil, fmt.Errorf("subtree of %d: %w", id, taxa.ErrNotFound)
	}

	seq := func(yield func(taxa.Taxon) bool) {
		stack := []taxa.TaxID{root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			t, err := st.Lookup(cur)
			if err != nil {
				// children of a known taxon are always known; a broken
				// store is the only way here
				return
			}
			if !yield(t) {
				return
			}
			// push in reverse so the smallest child is visited first
			ch := st.Children(cur)
			for i := len(ch) - 1; i >= 0; i-- {
				stack = append(stack, ch[i])
			}
		}
	}
	return seq, nil
}

// Taxa collects the full subtree of id into a slice, pre-order.
func Taxa(st taxa.Store, id taxa.TaxID) ([]taxa.Taxon, error) {
	seq, err := Iter(st, id)
	if err != nil {
		return nil, err
	}
	var res []taxa.Taxon
	for t := range seq {
		res = append(res, t)
	}
	return res, nil
}
