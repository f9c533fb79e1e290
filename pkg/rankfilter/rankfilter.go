// Package rankfilter selects taxa by their position in the canonical
// rank order.
package rankfilter

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/gntaxa/pkg/ranks"
	"github.com/gnames/gntaxa/pkg/taxa"
)

// ErrUnknownRank is returned when a threshold rank does not
// participate in the canonical rank order.
var ErrUnknownRank = errors.New("unknown rank")

// Options describe the rank predicate. EqualTo and the
// HigherThan/LowerThan pair are mutually exclusive in intent: when
// EqualTo is set the range bounds are ignored entirely. This is
// explicit policy, not silent combination; a debug log line records
// the discarded bounds.
type Options struct {
	// EqualTo keeps only taxa of exactly this rank.
	EqualTo string
	// HigherThan keeps taxa with a rank strictly higher (more
	// inclusive) than this threshold.
	HigherThan string
	// LowerThan keeps taxa with a rank strictly lower (less inclusive)
	// than this threshold. Combined with HigherThan both bounds apply.
	LowerThan string
	// DiscardNoRank drops "no rank" taxa, which otherwise pass range
	// predicates.
	DiscardNoRank bool
	// DiscardUnknown drops taxa whose rank is absent from the
	// canonical order, which otherwise pass range predicates.
	DiscardUnknown bool
}

// Filter returns the identifiers from ids whose taxa satisfy the rank
// predicate, preserving input order. Stale identifiers are resolved
// first; deleted and unknown identifiers are dropped silently, as are
// duplicates produced by merge redirection. Filtering is idempotent:
// re-filtering a result with the same options returns the same set.
func Filter(
	st taxa.Store,
	ids []taxa.TaxID,
	opt Options,
) ([]taxa.TaxID, error) {
	ord := st.RankOrder()
	if err := validate(ord, opt); err != nil {
		return nil, err
	}
	if opt.EqualTo != "" && (opt.HigherThan != "" || opt.LowerThan != "") {
		slog.Debug("equal-to filter set, ignoring range bounds",
			"equalTo", opt.EqualTo,
			"higherThan", opt.HigherThan,
			"lowerThan", opt.LowerThan,
		)
	}

	var res []taxa.TaxID
	seen := make(map[taxa.TaxID]struct{}, len(ids))
	for _, id := range ids {
		cur, status := st.ResolveStale(id)
		if status == taxa.Deleted || status == taxa.NotFound {
			continue
		}
		if _, ok := seen[cur]; ok {
			continue
		}
		t, err := st.Lookup(cur)
		if err != nil {
			continue
		}
		if matches(ord, t.Rank, opt) {
			seen[cur] = struct{}{}
			res = append(res, cur)
		}
	}
	return res, nil
}

func validate(ord *ranks.Order, opt Options) error {
	for _, rank := range []string{opt.EqualTo, opt.HigherThan, opt.LowerThan} {
		if rank == "" {
			continue
		}
		if rank != ranks.NoRank && !ord.Known(rank) {
			return fmt.Errorf("%w: %q", ErrUnknownRank, rank)
		}
	}
	return nil
}

func matches(ord *ranks.Order, rank string, opt Options) bool {
	if opt.EqualTo != "" {
		return strings.EqualFold(rank, opt.EqualTo)
	}

	unranked := strings.EqualFold(rank, ranks.NoRank)
	if unranked {
		return !opt.DiscardNoRank
	}
	if !ord.Known(rank) {
		return !opt.DiscardUnknown
	}

	if opt.HigherThan != "" && !ord.Higher(rank, opt.HigherThan) {
		return false
	}
	if opt.LowerThan != "" && !ord.Lower(rank, opt.LowerThan) {
		return false
	}
	return true
}
