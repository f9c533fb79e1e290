package lineage

import (
	"context"
	"runtime"

	"github.com/gnames/gntaxa/pkg/taxa"
	"golang.org/x/sync/errgroup"
)

// Status codes follow the `taxonkit lineage` convention: -1 for an
// unknown identifier, 0 for a deleted one, the successor identifier
// for a merged one, and the queried identifier itself when current.
const (
	CodeNotFound int64 = -1
	CodeDeleted  int64 = 0
)

// Result is the outcome of resolving one identifier in a batch.
type Result struct {
	// Query is the identifier as submitted.
	Query taxa.TaxID `json:"query"`
	// Code is the taxonkit-style status code for the query.
	Code int64 `json:"code"`
	// Path is the resolved ancestor chain; nil for deleted or unknown
	// identifiers.
	Path Path `json:"lineage,omitempty"`
}

// Code computes the taxonkit-style status code for one identifier.
func Code(st taxa.Store, id taxa.TaxID) int64 {
	resolved, status := st.ResolveStale(id)
	switch status {
	case taxa.NotFound:
		return CodeNotFound
	case taxa.Deleted:
		return CodeDeleted
	default:
		return int64(resolved)
	}
}

// ResolveBatch resolves lineages for many identifiers concurrently.
// Each identifier is independent work over the immutable store; jobs
// bounds the number of parallel workers (0 means runtime.NumCPU()).
// Results preserve input order, one per query. Per-identifier
// failures are encoded in Result.Code, never returned as errors; the
// returned error is the context's, when cancelled.
func ResolveBatch(
	ctx context.Context,
	st taxa.Store,
	ids []taxa.TaxID,
	jobs int,
) ([]Result, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	res := make([]Result, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := Result{Query: id, Code: Code(st, id)}
			if r.Code > 0 {
				path, err := Resolve(st, id)
				if err != nil {
					return err
				}
				r.Path = path
			}
			res[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
