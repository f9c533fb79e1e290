// Package iotaxdump loads an NCBI-style taxonomy dump into an
// immutable in-memory store implementing taxa.Store.
package iotaxdump

import (
	"sort"
	"strings"

	"github.com/gnames/gnparser"
	"github.com/gnames/gntaxa/pkg/ranks"
	"github.com/gnames/gntaxa/pkg/taxa"
)

// nameRef ties an index key to a taxon together with the name class
// the key came from.
type nameRef struct {
	id  taxa.TaxID
	sci bool
}

// store is the dump-backed taxa.Store. After Load returns it is never
// mutated; the parser pool channel is the only coordination point and
// exists solely because gnparser instances are not safe for
// concurrent use.
type store struct {
	byID         map[taxa.TaxID]taxa.Taxon
	children     map[taxa.TaxID][]taxa.TaxID
	namesByTaxon map[taxa.TaxID][]taxa.NameRecord
	byName       map[string][]nameRef
	byCanonical  map[string][]nameRef
	merged       map[taxa.TaxID]taxa.TaxID
	deleted      map[taxa.TaxID]struct{}
	root         taxa.TaxID
	order        *ranks.Order
	parsers      chan gnparser.GNparser
}

var _ taxa.Store = (*store)(nil)

func (s *store) Lookup(id taxa.TaxID) (taxa.Taxon, error) {
	t, ok := s.byID[id]
	if !ok {
		return taxa.Taxon{}, taxa.ErrNotFound
	}
	return t, nil
}

// LookupByName matches name case-insensitively against the name
// index. When the verbatim string finds nothing, the query is parsed
// with gnparser and its canonical simple form is matched against the
// canonical index, so author/year decorations do not break lookups.
func (s *store) LookupByName(name string, sciNameOnly bool) []taxa.Taxon {
	key := strings.ToLower(strings.TrimSpace(name))
	refs := s.byName[key]
	if len(refs) == 0 {
		if canonical := s.canonicalForm(name); canonical != "" && canonical != key {
			refs = s.byCanonical[canonical]
		}
	}

	var res []taxa.Taxon
	seen := make(map[taxa.TaxID]struct{}, len(refs))
	for _, ref := range refs {
		if sciNameOnly && !ref.sci {
			continue
		}
		if _, ok := seen[ref.id]; ok {
			continue
		}
		if t, ok := s.byID[ref.id]; ok {
			seen[ref.id] = struct{}{}
			res = append(res, t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// canonicalForm parses a name string and returns its lowercased
// canonical simple form, or empty when the string does not parse.
// Parsers are pooled: gnparser instances are not concurrency-safe.
func (s *store) canonicalForm(name string) string {
	parser := <-s.parsers
	parsed := parser.ParseName(name)
	s.parsers <- parser

	if !parsed.Parsed {
		return ""
	}
	return strings.ToLower(parsed.Canonical.Simple)
}

func (s *store) Names(id taxa.TaxID) []taxa.NameRecord {
	return s.namesByTaxon[id]
}

// ResolveStale maps retired identifiers to current ones. Merge
// records are followed transitively; the hop bound makes resolution
// total even over malformed merge chains.
func (s *store) ResolveStale(id taxa.TaxID) (taxa.TaxID, taxa.Status) {
	if _, ok := s.byID[id]; ok {
		return id, taxa.Found
	}
	cur := id
	for range len(s.merged) + 1 {
		next, ok := s.merged[cur]
		if !ok {
			break
		}
		cur = next
		if _, ok := s.byID[cur]; ok {
			return cur, taxa.Merged
		}
	}
	if _, ok := s.deleted[cur]; ok {
		return id, taxa.Deleted
	}
	return id, taxa.NotFound
}

func (s *store) Children(id taxa.TaxID) []taxa.TaxID {
	return s.children[id]
}

func (s *store) Root() taxa.TaxID { return s.root }

func (s *store) RankOrder() *ranks.Order { return s.order }

func (s *store) Len() int { return len(s.byID) }
