// Package taxatest provides a small in-memory Store implementation
// for tests of the pure query packages. It mirrors the behavior of
// the dump-backed store without any file I/O.
package taxatest

import (
	"sort"
	"strings"

	"github.com/gnames/gntaxa/pkg/ranks"
	"github.com/gnames/gntaxa/pkg/taxa"
	"github.com/gnames/gnuuid"
)

// Store is a hand-assembled taxa.Store. The zero value is not usable;
// construct it with New.
type Store struct {
	byID     map[taxa.TaxID]taxa.Taxon
	children map[taxa.TaxID][]taxa.TaxID
	names    map[taxa.TaxID][]taxa.NameRecord
	byName   map[string][]taxa.TaxID
	merged   map[taxa.TaxID]taxa.TaxID
	deleted  map[taxa.TaxID]struct{}
	root     taxa.TaxID
	order    *ranks.Order
}

// New builds a store from taxon records. The root is the taxon whose
// parent is itself. Scientific name records are derived from the
// taxon names.
func New(tt []taxa.Taxon) *Store {
	st := &Store{
		byID:     make(map[taxa.TaxID]taxa.Taxon),
		children: make(map[taxa.TaxID][]taxa.TaxID),
		names:    make(map[taxa.TaxID][]taxa.NameRecord),
		byName:   make(map[string][]taxa.TaxID),
		merged:   make(map[taxa.TaxID]taxa.TaxID),
		deleted:  make(map[taxa.TaxID]struct{}),
		order:    ranks.New(),
	}
	for _, t := range tt {
		st.byID[t.ID] = t
		if t.ParentID == t.ID {
			st.root = t.ID
		} else {
			st.children[t.ParentID] = append(st.children[t.ParentID], t.ID)
		}
		st.AddName(t.ID, t.Name, "scientific name")
	}
	for _, ch := range st.children {
		sort.Slice(ch, func(i, j int) bool { return ch[i] < ch[j] })
	}
	return st
}

// AddName attaches an extra name record (e.g. a synonym) to a taxon.
func (st *Store) AddName(id taxa.TaxID, name, class string) {
	st.names[id] = append(st.names[id], taxa.NameRecord{
		TaxonID: id,
		Name:    name,
		Class:   class,
		UUID:    gnuuid.New(name).String(),
	})
	key := strings.ToLower(name)
	st.byName[key] = append(st.byName[key], id)
}

// AddMerged records an identifier redirection.
func (st *Store) AddMerged(old, target taxa.TaxID) {
	st.merged[old] = target
}

// AddDeleted records an identifier tombstone.
func (st *Store) AddDeleted(id taxa.TaxID) {
	st.deleted[id] = struct{}{}
}

func (st *Store) Lookup(id taxa.TaxID) (taxa.Taxon, error) {
	t, ok := st.byID[id]
	if !ok {
		return taxa.Taxon{}, taxa.ErrNotFound
	}
	return t, nil
}

func (st *Store) LookupByName(name string, sciNameOnly bool) []taxa.Taxon {
	var res []taxa.Taxon
	for _, id := range st.byName[strings.ToLower(name)] {
		if sciNameOnly && !st.isScientific(id, name) {
			continue
		}
		if t, ok := st.byID[id]; ok {
			res = append(res, t)
		}
	}
	return res
}

func (st *Store) isScientific(id taxa.TaxID, name string) bool {
	for _, n := range st.names[id] {
		if n.IsScientific() && strings.EqualFold(n.Name, name) {
			return true
		}
	}
	return false
}

func (st *Store) Names(id taxa.TaxID) []taxa.NameRecord {
	return st.names[id]
}

func (st *Store) ResolveStale(id taxa.TaxID) (taxa.TaxID, taxa.Status) {
	if _, ok := st.byID[id]; ok {
		return id, taxa.Found
	}
	if target, ok := st.merged[id]; ok {
		for {
			next, ok := st.merged[target]
			if !ok {
				break
			}
			target = next
		}
		return target, taxa.Merged
	}
	if _, ok := st.deleted[id]; ok {
		return id, taxa.Deleted
	}
	return id, taxa.NotFound
}

func (st *Store) Children(id taxa.TaxID) []taxa.TaxID {
	return st.children[id]
}

func (st *Store) Root() taxa.TaxID { return st.root }

func (st *Store) RankOrder() *ranks.Order { return st.order }

func (st *Store) Len() int { return len(st.byID) }
