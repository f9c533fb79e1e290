package cmd

import (
	"fmt"

	"github.com/gnames/gntaxa/pkg/config"
	"github.com/spf13/cobra"
)

// flagOptions translates persistent flags into config options. Flags
// win over the config file and environment variables.
func flagOptions(cmd *cobra.Command) ([]config.Option, error) {
	var res []config.Option
	flags := cmd.Flags()

	dataDir, err := flags.GetString("data-dir")
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		res = append(res, config.OptDataDir(dataDir))
	}

	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return nil, err
	}
	if jobs > 0 {
		res = append(res, config.OptJobsNumber(jobs))
	}

	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, err
	}
	res = append(res, config.OptWithProgress(!quiet))

	return res, nil
}

// outputFormat reads the --output flag and validates it.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", err
	}
	switch format {
	case "tsv", "csv", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q, use tsv, csv or json",
			format)
	}
}
