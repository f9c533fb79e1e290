package cmd

import (
	"bytes"
	"testing"

	"github.com/gnames/gntaxa/pkg/lca"
	"github.com/gnames/gntaxa/pkg/lineage"
	"github.com/gnames/gntaxa/pkg/taxa"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaxIDs(t *testing.T) {
	tests := []struct {
		msg     string
		args    []string
		want    []taxa.TaxID
		wantErr bool
	}{
		{"single", []string{"562"}, []taxa.TaxID{562}, false},
		{"several args", []string{"562", "9606"},
			[]taxa.TaxID{562, 9606}, false},
		{"comma separated", []string{"562,9606,543"},
			[]taxa.TaxID{562, 9606, 543}, false},
		{"mixed", []string{"562,9606", "543"},
			[]taxa.TaxID{562, 9606, 543}, false},
		{"spaces around commas", []string{"562, 9606"},
			[]taxa.TaxID{562, 9606}, false},
		{"empty tokens skipped", []string{"562,,9606,"},
			[]taxa.TaxID{562, 9606}, false},
		{"not a number", []string{"frog"}, nil, true},
		{"negative", []string{"-5"}, nil, true},
	}

	for _, tt := range tests {
		ids, err := parseTaxIDs(tt.args)
		if tt.wantErr {
			assert.Error(t, err, tt.msg)
			continue
		}
		require.NoError(t, err, tt.msg)
		assert.Equal(t, tt.want, ids, tt.msg)
	}
}

func TestParseTaxIDSets(t *testing.T) {
	sets, err := parseTaxIDSets([]string{"562,9606", "543"})
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, []taxa.TaxID{562, 9606}, sets[0])
	assert.Equal(t, []taxa.TaxID{543}, sets[1])

	_, err = parseTaxIDSets([]string{"562,frog"})
	assert.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	header := []string{"taxid", "rank"}
	rows := [][]string{{"562", "species"}, {"543", "family"}}

	var buf bytes.Buffer
	err := writeTable(&buf, "tsv", header, rows)
	require.NoError(t, err)
	assert.Equal(t,
		"taxid\trank\n562\tspecies\n543\tfamily\n", buf.String())

	buf.Reset()
	err = writeTable(&buf, "csv", header, rows)
	require.NoError(t, err)
	assert.Equal(t,
		"taxid,rank\n562,species\n543,family\n", buf.String())

	buf.Reset()
	err = writeTable(&buf, "json", header, rows)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"taxid": "562"`)
	assert.Contains(t, buf.String(), `"rank": "family"`)
}

func TestLineageRow(t *testing.T) {
	format, err := lineage.NewFormat("{f};{g};{s}")
	require.NoError(t, err)

	path := lineage.Path{
		{ID: 1, ParentID: 1, Rank: "no rank", Name: "root"},
		{ID: 543, ParentID: 1, Rank: "family", Name: "Enterobacteriaceae"},
		{ID: 562, ParentID: 543, Rank: "species", Name: "Escherichia coli"},
	}
	row := lineageRow(format, lineage.Result{Query: 562, Code: 562, Path: path})
	assert.Equal(t, []string{
		"562", "562",
		"Enterobacteriaceae;;Escherichia coli",
		"543;;562",
		"species",
		"root;Enterobacteriaceae;Escherichia coli",
		"1;543;562",
	}, row)

	row = lineageRow(format, lineage.Result{Query: 999, Code: -1})
	assert.Equal(t, []string{"999", "-1", "", "", "", "", ""}, row)
}

func TestLCARow(t *testing.T) {
	row := lcaRow(lca.Result{Query: []taxa.TaxID{562, 54736}, ID: 543})
	assert.Equal(t, []string{"562,54736", "543", ""}, row)

	row = lcaRow(lca.Result{
		Query: []taxa.TaxID{999},
		Err:   lca.ErrNoCommonAncestor,
	})
	assert.Equal(t, "999", row[0])
	assert.Empty(t, row[1])
	assert.NotEmpty(t, row[2])
}

func TestOutputFormat(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("output", "o", "tsv", "")

	format, err := outputFormat(cmd)
	require.NoError(t, err)
	assert.Equal(t, "tsv", format)

	err = cmd.Flags().Set("output", "json")
	require.NoError(t, err)
	format, err = outputFormat(cmd)
	require.NoError(t, err)
	assert.Equal(t, "json", format)

	err = cmd.Flags().Set("output", "xml")
	require.NoError(t, err)
	_, err = outputFormat(cmd)
	assert.Error(t, err)
}
