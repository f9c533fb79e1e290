package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/gnames/gntaxa/internal/iotaxdump"
	"github.com/gnames/gntaxa/pkg/taxa"
)

// loadStore reads the taxonomy dump into memory. Every query
// subcommand goes through it.
func loadStore(ctx context.Context) (taxa.Store, error) {
	return iotaxdump.Load(ctx, cfg)
}

// parseTaxIDs converts command arguments to taxon identifiers.
// Arguments may carry several comma-separated identifiers each.
func parseTaxIDs(args []string) ([]taxa.TaxID, error) {
	var res []taxa.TaxID
	for _, arg := range args {
		for tok := range strings.SplitSeq(arg, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			id, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				return nil, err
			}
			res = append(res, taxa.TaxID(id))
		}
	}
	return res, nil
}

// parseTaxIDSets converts command arguments to taxon identifier sets,
// one set per argument, identifiers within a set separated by commas.
func parseTaxIDSets(args []string) ([][]taxa.TaxID, error) {
	res := make([][]taxa.TaxID, 0, len(args))
	for _, arg := range args {
		set, err := parseTaxIDs([]string{arg})
		if err != nil {
			return nil, err
		}
		if len(set) == 0 {
			continue
		}
		res = append(res, set)
	}
	return res, nil
}
