package cmd

import (
	"os"
	"strconv"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/rankfilter"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter taxid...",
	Short: "Keep taxa that satisfy a rank predicate",
	Long: `Keep the taxon identifiers whose rank satisfies the given
predicate. --equal-to matches a rank exactly and, when set, wins over
the range bounds. --higher-than and --lower-than are strict and
compare on the canonical rank order, where kingdom is higher than
family and family is higher than species.

Taxa with rank "no rank" pass range predicates unless
--discard-noranks is set; so do taxa with ranks absent from the
canonical order unless --discard-unknown is set.`,
	Example: `  gntaxa filter --equal-to family 1,2,543,562
  gntaxa filter --higher-than genus 543,562,590
  gntaxa filter --lower-than family --discard-noranks 562,1382510`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	ids, err := parseTaxIDs(args)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	opt, err := filterOptions(cmd)
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

	kept, err := rankfilter.Filter(st, ids, opt)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	header := []string{"taxid", "rank", "name"}
	rows := make([][]string, len(kept))
	for i, id := range kept {
		taxon, err := st.Lookup(id)
		if err != nil {
			return err
		}
		rows[i] = []string{
			strconv.FormatUint(uint64(id), 10),
			taxon.Rank,
			taxon.Name,
		}
	}

	return writeTable(os.Stdout, outFmt, header, rows)
}

func filterOptions(cmd *cobra.Command) (rankfilter.Options, error) {
	var opt rankfilter.Options
	var err error
	flags := cmd.Flags()

	if opt.EqualTo, err = flags.GetString("equal-to"); err != nil {
		return opt, err
	}
	if opt.HigherThan, err = flags.GetString("higher-than"); err != nil {
		return opt, err
	}
	if opt.LowerThan, err = flags.GetString("lower-than"); err != nil {
		return opt, err
	}
	if opt.DiscardNoRank, err = flags.GetBool("discard-noranks"); err != nil {
		return opt, err
	}
	if opt.DiscardUnknown, err = flags.GetBool("discard-unknown"); err != nil {
		return opt, err
	}
	return opt, nil
}

func init() {
	rootCmd.AddCommand(filterCmd)
	flags := filterCmd.Flags()
	flags.String("equal-to", "", "keep taxa with exactly this rank")
	flags.String("higher-than", "",
		"keep taxa with a rank strictly higher than this")
	flags.String("lower-than", "",
		"keep taxa with a rank strictly lower than this")
	flags.Bool("discard-noranks", false, `drop taxa with rank "no rank"`)
	flags.Bool("discard-unknown", false,
		"drop taxa with ranks absent from the canonical order")
}
