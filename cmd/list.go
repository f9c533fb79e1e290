package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/subtree"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list taxid...",
	Short: "Enumerate the subtree below each taxon",
	Long: `Enumerate every taxon in the subtree rooted at each given
identifier, the root included, in depth-first pre-order.

With --raw the subtrees print as one nested JSON object keyed by
"taxid [rank] name" labels, the shape taxonkit list --json produces.`,
	Example: `  gntaxa list 9605
  gntaxa list --raw 9605 9606
  gntaxa list -o csv 561`,
	Args: cobra.MinimumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ids, err := parseTaxIDs(args)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
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

	if raw {
		nodes := make([]*subtree.Node, 0, len(ids))
		for _, id := range ids {
			node, err := subtree.Tree(st, id)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			nodes = append(nodes, node)
		}
		out, err := subtree.MarshalForest(nodes)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	header := []string{"query", "taxid", "rank", "name"}
	var rows [][]string
	for _, id := range ids {
		seq, err := subtree.Iter(st, id)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		query := strconv.FormatUint(uint64(id), 10)
		for taxon := range seq {
			rows = append(rows, []string{
				query,
				strconv.FormatUint(uint64(taxon.ID), 10),
				taxon.Rank,
				taxon.Name,
			})
		}
	}

	return writeTable(os.Stdout, outFmt, header, rows)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("raw", false,
		"print subtrees as one nested JSON object")
}
