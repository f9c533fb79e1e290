// Package taxa provides the core types of the taxonomy query engine:
// taxon records, name records, stale-identifier resolution statuses,
// and the Store interface implemented by the dump loader.
//
// A Store is immutable after construction and safe for concurrent
// reads without locking. All query packages (lineage, subtree,
// rankfilter, lca) operate on a Store as a pure function of its data.
package taxa

import (
	"errors"
	"fmt"

	"github.com/gnames/gntaxa/pkg/ranks"
)

// TaxID is a stable taxon identifier assigned by the upstream
// taxonomy database (NCBI-style unsigned integer).
type TaxID uint32

// Taxon is a single node of the taxonomic hierarchy. The root node
// is its own parent.
type Taxon struct {
	// ID is the unique taxon identifier.
	ID TaxID `json:"taxID"`
	// ParentID points to the parent taxon. For the root ParentID == ID.
	ParentID TaxID `json:"parentTaxID"`
	// Rank is the taxonomic rank ("species", "genus", "no rank", ...).
	Rank string `json:"rank"`
	// Name is the scientific name of the taxon.
	Name string `json:"name"`
}

// String renders the taxon the way `taxonkit list` labels nodes.
func (t Taxon) String() string {
	return fmt.Sprintf("%d [%s] %s", t.ID, t.Rank, t.Name)
}

// NameRecord is one name string attached to a taxon with its class
// ("scientific name", "synonym", etc.) and a deterministic UUID v5 of
// the name string for interoperability with other gnames projects.
type NameRecord struct {
	TaxonID TaxID  `json:"taxID"`
	Name    string `json:"name"`
	Class   string `json:"class"`
	UUID    string `json:"nameUUID"`
}

// IsScientific reports whether the record carries the accepted
// scientific name rather than a synonym or other name class.
func (n NameRecord) IsScientific() bool {
	return n.Class == "scientific name"
}

// Status describes the outcome of stale-identifier resolution.
type Status int

const (
	// Found means the identifier is current.
	Found Status = iota
	// Merged means the identifier was retired and redirected to a
	// successor taxon.
	Merged
	// Deleted means the identifier was retired without a successor.
	Deleted
	// NotFound means the identifier is unknown to the store.
	NotFound
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Merged:
		return "merged"
	case Deleted:
		return "deleted"
	case NotFound:
		return "not found"
	}
	return "unknown"
}

var (
	// ErrNotFound is returned on lookup of an unknown identifier.
	ErrNotFound = errors.New("taxon not found")
	// ErrDeleted is returned when an identifier resolves to a
	// tombstone in the deletion records.
	ErrDeleted = errors.New("taxon deleted")
)

// Store is the read-only query surface over a loaded taxonomy. The
// dump loader returns a fully built Store; afterwards all methods are
// pure and safe for unsynchronized concurrent use.
type Store interface {
	// Lookup returns the taxon for id, or ErrNotFound. Lookup does not
	// consult merge/deletion records; use ResolveStale first when the
	// identifier may be stale.
	Lookup(id TaxID) (Taxon, error)

	// LookupByName returns all taxa matching name, case-insensitively.
	// With sciNameOnly only accepted scientific names match; otherwise
	// synonyms and other name classes match too. An empty result is
	// not an error, and multiple matches are returned as-is: ambiguity
	// is the caller's to resolve.
	LookupByName(name string, sciNameOnly bool) []Taxon

	// Names returns all name records attached to id, scientific name
	// first. Unknown identifiers yield an empty slice.
	Names(id TaxID) []NameRecord

	// ResolveStale maps a possibly retired identifier to its current
	// one. Found and Merged return a usable identifier; Deleted and
	// NotFound return the input unchanged.
	ResolveStale(id TaxID) (TaxID, Status)

	// Children returns the direct children of id in ascending
	// identifier order. The root is not its own child.
	Children(id TaxID) []TaxID

	// Root returns the identifier of the hierarchy root.
	Root() TaxID

	// RankOrder returns the canonical rank ordering fixed at load time.
	RankOrder() *ranks.Order

	// Len returns the number of taxa in the store.
	Len() int
}
