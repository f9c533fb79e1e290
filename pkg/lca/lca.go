// Package lca computes lowest common ancestors over sets of taxon
// identifiers.
package lca

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gntaxa/pkg/lineage"
	"github.com/gnames/gntaxa/pkg/taxa"
	"golang.org/x/sync/errgroup"
)

// ErrNoCommonAncestor is returned when, after stale resolution, no
// identifier of a set belongs to the hierarchy.
var ErrNoCommonAncestor = errors.New("no common ancestor")

// LCA returns the deepest taxon common to the lineages of all ids.
// Merged identifiers are resolved to their successors first; deleted
// and unknown ones are excluded from the computation. A singleton set
// yields its own (resolved) identifier. When every identifier drops
// out the result is ErrNoCommonAncestor - never a silently
// substituted default.
func LCA(st taxa.Store, ids []taxa.TaxID) (taxa.TaxID, error) {
	var paths []lineage.Path
	for _, id := range ids {
		path, err := lineage.Resolve(st, id)
		if err != nil {
			if errors.Is(err, taxa.ErrDeleted) || errors.Is(err, taxa.ErrNotFound) {
				continue
			}
			return 0, err
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("lca of %v: %w", ids, ErrNoCommonAncestor)
	}

	// All paths start at the root, so the LCA is the last position at
	// which every path carries the same identifier.
	depth := len(paths[0])
	for _, p := range paths[1:] {
		if len(p) < depth {
			depth = len(p)
		}
	}
	res := paths[0][0].ID
	for i := range depth {
		id := paths[0][i].ID
		for _, p := range paths[1:] {
			if p[i].ID != id {
				return res, nil
			}
		}
		res = id
	}
	return res, nil
}

// Result is the outcome of one set in a multi-set computation.
type Result struct {
	// Query is the input set as submitted.
	Query []taxa.TaxID `json:"query"`
	// ID is the lowest common ancestor of the set.
	ID taxa.TaxID `json:"lca"`
	// Err reports a per-set failure; other sets are unaffected.
	Err error `json:"-"`
}

// LCAMulti applies LCA to each set independently, preserving input
// order. Per-set failures are recorded on the Result, not returned.
func LCAMulti(st taxa.Store, sets [][]taxa.TaxID) []Result {
	res := make([]Result, len(sets))
	for i, set := range sets {
		res[i] = one(st, set)
	}
	return res
}

// LCAMultiBatch is LCAMulti with errgroup fan-out. Each set is
// independent work over the immutable store; jobs bounds parallelism
// (0 means runtime.NumCPU()). Input order is preserved.
func LCAMultiBatch(
	ctx context.Context,
	st taxa.Store,
	sets [][]taxa.TaxID,
	jobs int,
) ([]Result, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	res := make([]Result, len(sets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, set := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res[i] = one(st, set)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func one(st taxa.Store, set []taxa.TaxID) Result {
	id, err := LCA(st, set)
	return Result{Query: set, ID: id, Err: err}
}
