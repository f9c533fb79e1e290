package iotaxdump

import (
	"strconv"
	"strings"

	"github.com/gnames/gntaxa/pkg/taxa"
)

// Dump flat files delimit fields with "\t|\t" and terminate records
// with "\t|". Some third-party dumps drop the tabs and use bare
// pipes; both flavors are accepted.
func splitFields(line string) []string {
	line = strings.TrimSuffix(line, "\t|")
	line = strings.TrimSuffix(line, "|")
	var parts []string
	if strings.Contains(line, "\t|\t") {
		parts = strings.Split(line, "\t|\t")
	} else {
		parts = strings.Split(line, "|")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseTaxID(s string) (taxa.TaxID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return taxa.TaxID(v), nil
}
