package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/lca"
	"github.com/spf13/cobra"
)

var lcaCmd = &cobra.Command{
	Use:   "lca taxids...",
	Short: "Compute lowest common ancestors of taxon sets",
	Long: `Compute the lowest common ancestor of each set of taxon
identifiers. Each argument is one set, identifiers within a set
separated by commas.

Merged identifiers are redirected to their successors before the
computation; deleted and unknown identifiers are dropped from their
set. A set with no resolvable identifiers reports an error row.`,
	Example: `  gntaxa lca 239934,239935,349741
  gntaxa lca 54736,562 9606,9592`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLCA,
}

func runLCA(cmd *cobra.Command, args []string) error {
	sets, err := parseTaxIDSets(args)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	outFmt, err := outputFormat(cmd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	st, err := loadStore(cmd.Context())
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	results, err := lca.LCAMultiBatch(cmd.Context(), st, sets, cfg.JobsNumber)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	header := []string{"query", "lca", "error"}
	rows := make([][]string, len(results))
	for i, res := range results {
		rows[i] = lcaRow(res)
	}

	return writeTable(os.Stdout, outFmt, header, rows)
}

func lcaRow(res lca.Result) []string {
	strs := make([]string, len(res.Query))
	for i, id := range res.Query {
		strs[i] = strconv.FormatUint(uint64(id), 10)
	}
	row := []string{strings.Join(strs, ","), "", ""}
	if res.Err != nil {
		row[2] = res.Err.Error()
		return row
	}
	row[1] = strconv.FormatUint(uint64(res.ID), 10)
	return row
}

func init() {
	rootCmd.AddCommand(lcaCmd)
}
