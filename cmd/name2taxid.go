package cmd

import (
	"os"
	"strconv"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

var name2taxidCmd = &cobra.Command{
	Use:   "name2taxid name...",
	Short: "Find taxon identifiers for names",
	Long: `Find the taxon identifiers that carry each given name. The
match is case-insensitive and covers every name class: scientific
names, synonyms, common names and the rest of names.dmp.

An ambiguous name yields one row per match; a name nobody carries
yields a single row with empty taxid and rank. Names with authorship
are matched by their canonical form, so 'Homo sapiens Linnaeus, 1758'
finds the same taxon as 'Homo sapiens'.`,
	Example: `  gntaxa name2taxid 'Homo sapiens'
  gntaxa name2taxid --sci-name 'Drosophila' 'Bacillus'
  gntaxa name2taxid -o json 'Escherichia coli'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runName2TaxID,
}

func runName2TaxID(cmd *cobra.Command, args []string) error {
	sciOnly, err := cmd.Flags().GetBool("sci-name")
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

	header := []string{"name", "taxid", "rank"}
	var rows [][]string
	for _, name := range args {
		matches := st.LookupByName(name, sciOnly)
		if len(matches) == 0 {
			rows = append(rows, []string{name, "", ""})
			continue
		}
		for _, taxon := range matches {
			rows = append(rows, []string{
				name,
				strconv.FormatUint(uint64(taxon.ID), 10),
				taxon.Rank,
			})
		}
	}

	return writeTable(os.Stdout, outFmt, header, rows)
}

func init() {
	rootCmd.AddCommand(name2taxidCmd)
	name2taxidCmd.Flags().Bool("sci-name", false,
		"match scientific names only, skipping synonyms and common names")
}
