// Package lineage resolves ancestor chains of taxa and projects them
// into formatted lineage strings.
package lineage

import (
	"fmt"

	"github.com/gnames/gntaxa/pkg/taxa"
)

// Path is an ordered ancestor chain, root first, queried taxon last.
type Path []taxa.Taxon

// Names returns the scientific names of the path, root first.
func (p Path) Names() []string {
	res := make([]string, len(p))
	for i, t := range p {
		res[i] = t.Name
	}
	return res
}

// TaxIDs returns the identifiers of the path, root first.
func (p Path) TaxIDs() []taxa.TaxID {
	res := make([]taxa.TaxID, len(p))
	for i, t := range p {
		res[i] = t.ID
	}
	return res
}

// Resolve walks parent links from id up to the root and returns the
// chain in root-to-taxon order. Stale identifiers are resolved first:
// merged ids yield the lineage of their successor, deleted ids yield
// taxa.ErrDeleted, unknown ids taxa.ErrNotFound. A root-only query
// returns a single-element path.
func Resolve(st taxa.Store, id taxa.TaxID) (Path, error) {
	cur, status := st.ResolveStale(id)
	switch status {
	case taxa.Deleted:
		return nil, fmt.Errorf("lineage of %d: %w", id, taxa.ErrDeleted)
	case taxa.NotFound:
		return nil, fmt.Errorf("lineage of %d: %w", id, taxa.ErrNotFound)
	}

	// The store guarantees an acyclic hierarchy; the bound guards
	// against a broken Store implementation.
	var rev Path
	for range st.Len() {
		t, err := st.Lookup(cur)
		if err != nil {
			return nil, fmt.Errorf("lineage of %d: %w", id, err)
		}
		rev = append(rev, t)
		if t.ParentID == t.ID {
			break
		}
		cur = t.ParentID
	}

	res := make(Path, len(rev))
	for i, t := range rev {
		res[len(rev)-1-i] = t
	}
	return res, nil
}
