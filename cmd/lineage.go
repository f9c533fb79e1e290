package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/lineage"
	"github.com/spf13/cobra"
)

var lineageCmd = &cobra.Command{
	Use:   "lineage taxid...",
	Short: "Resolve ancestor chains for taxon identifiers",
	Long: `Resolve the full ancestor chain of each taxon identifier and
render it with a reformat template.

Each row carries a status code: -1 for an unknown identifier, 0 for a
deleted one, the successor identifier for a merged one, and the
identifier itself when it is current.

The template uses placeholders like {k} for kingdom, {p} for phylum,
{f} for family, {g} for genus and {s} for species:

  gntaxa lineage -f '{f};{g};{s}' 562 9606`,
	Example: `  gntaxa lineage 562
  gntaxa lineage --format '{k};{p};{c};{o};{f};{g};{s}' 562,9606
  gntaxa lineage -o json 54736`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLineage,
}

func runLineage(cmd *cobra.Command, args []string) error {
	ids, err := parseTaxIDs(args)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	spec, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if spec == "" {
		spec = cfg.Lineage.Format
	}
	format, err := lineage.NewFormat(spec)
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

	results, err := lineage.ResolveBatch(
		cmd.Context(), st, ids, cfg.JobsNumber,
	)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	header := []string{
		"taxid", "code", "lineage", "lineage_taxids",
		"rank", "full_lineage", "full_lineage_taxids",
	}
	rows := make([][]string, len(results))
	for i, res := range results {
		rows[i] = lineageRow(format, res)
	}

	return writeTable(os.Stdout, outFmt, header, rows)
}

func lineageRow(format *lineage.Format, res lineage.Result) []string {
	row := []string{
		strconv.FormatUint(uint64(res.Query), 10),
		strconv.FormatInt(res.Code, 10),
		"", "", "", "", "",
	}
	if len(res.Path) == 0 {
		return row
	}

	row[2] = format.Render(res.Path)
	row[3] = format.RenderTaxIDs(res.Path)
	row[4] = res.Path[len(res.Path)-1].Rank
	row[5] = strings.Join(res.Path.Names(), ";")

	ids := res.Path.TaxIDs()
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.FormatUint(uint64(id), 10)
	}
	row[6] = strings.Join(strs, ";")
	return row
}

func init() {
	rootCmd.AddCommand(lineageCmd)
	lineageCmd.Flags().StringP("format", "f", "",
		"reformat template, e.g. '{k};{p};{c};{o};{f};{g};{s}'")
}
