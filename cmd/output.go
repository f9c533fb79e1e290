package cmd

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gnames/gnfmt"
)

// writeTable renders query results as tsv, csv or json records.
func writeTable(
	w io.Writer,
	format string,
	header []string,
	rows [][]string,
) error {
	switch format {
	case "json":
		return writeJSON(w, header, rows)
	case "csv":
		return writeDelimited(w, ',', header, rows)
	default:
		return writeDelimited(w, '\t', header, rows)
	}
}

func writeDelimited(
	w io.Writer,
	comma rune,
	header []string,
	rows [][]string,
) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, header []string, rows [][]string) error {
	records := make([]map[string]string, len(rows))
	for i, row := range rows {
		rec := make(map[string]string, len(header))
		for j, field := range header {
			rec[field] = row[j]
		}
		records[i] = rec
	}
	enc := gnfmt.GNjson{Pretty: true}
	out, err := enc.Encode(records)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
