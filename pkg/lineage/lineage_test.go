package lineage_test

import (
	"context"
	"testing"

	"github.com/gnames/gntaxa/pkg/lineage"
	"github.com/gnames/gntaxa/pkg/taxa"
	"github.com/gnames/gntaxa/pkg/taxa/taxatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore builds the hierarchy from the NCBI taxdump excerpt used
// across the query package tests:
//
//	1 root (no rank)
//	└── 2 Bacteria (domain)
//	    └── 543 Enterobacteriaceae (family)
//	        ├── 590 Salmonella (genus)
//	        │   └── 54736 Salmonella bongori (species)
//	        └── 561 Escherichia (genus)
//	            └── 562 Escherichia coli (species)
func testStore() *taxatest.Store {
	st := taxatest.New([]taxa.Taxon{
		{ID: 1, ParentID: 1, Rank: "no rank", Name: "root"},
		{ID: 2, ParentID: 1, Rank: "domain", Name: "Bacteria"},
		{ID: 543, ParentID: 2, Rank: "family", Name: "Enterobacteriaceae"},
		{ID: 590, ParentID: 543, Rank: "genus", Name: "Salmonella"},
		{ID: 54736, ParentID: 590, Rank: "species", Name: "Salmonella bongori"},
		{ID: 561, ParentID: 543, Rank: "genus", Name: "Escherichia"},
		{ID: 562, ParentID: 561, Rank: "species", Name: "Escherichia coli"},
	})
	st.AddMerged(666, 562)
	st.AddDeleted(999)
	return st
}

func TestResolve(t *testing.T) {
	st := testStore()

	path, err := lineage.Resolve(st, 54736)
	require.NoError(t, err)
	assert.Equal(t,
		[]taxa.TaxID{1, 2, 543, 590, 54736}, path.TaxIDs())
	assert.Equal(t,
		[]string{"root", "Bacteria", "Enterobacteriaceae",
			"Salmonella", "Salmonella bongori"},
		path.Names())

	// last element of the path is the queried taxon itself
	want, err := st.Lookup(54736)
	require.NoError(t, err)
	assert.Equal(t, want, path[len(path)-1])
}

func TestResolveRootOnly(t *testing.T) {
	st := testStore()
	path, err := lineage.Resolve(st, 1)
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, taxa.TaxID(1), path[0].ID)
}

func TestResolveStaleIDs(t *testing.T) {
	st := testStore()

	path, err := lineage.Resolve(st, 666)
	require.NoError(t, err)
	assert.Equal(t, taxa.TaxID(562), path[len(path)-1].ID,
		"merged id resolves to its successor's lineage")

	_, err = lineage.Resolve(st, 999)
	assert.ErrorIs(t, err, taxa.ErrDeleted)

	_, err = lineage.Resolve(st, 123456)
	assert.ErrorIs(t, err, taxa.ErrNotFound)
}

func TestFormatRender(t *testing.T) {
	st := testStore()
	path, err := lineage.Resolve(st, 54736)
	require.NoError(t, err)

	tests := []struct {
		msg, spec, name, ids string
	}{
		{
			msg:  "standard seven ranks",
			spec: lineage.DefaultFormat,
			name: "Bacteria;;;;Enterobacteriaceae;Salmonella;Salmonella bongori",
			ids:  "2;;;;543;590;54736",
		},
		{
			msg:  "family genus species",
			spec: "{f};{g};{s}",
			name: "Enterobacteriaceae;Salmonella;Salmonella bongori",
			ids:  "543;590;54736",
		},
		{
			msg:  "absent rank renders empty",
			spec: "{K}|{f}",
			name: "|Enterobacteriaceae",
			ids:  "|543",
		},
	}

	for _, v := range tests {
		f, err := lineage.NewFormat(v.spec)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.name, f.Render(path), v.msg)
		assert.Equal(t, v.ids, f.RenderTaxIDs(path), v.msg)
	}
}

func TestFormatErrors(t *testing.T) {
	_, err := lineage.NewFormat("{x}")
	assert.Error(t, err)
	_, err = lineage.NewFormat("{s")
	assert.Error(t, err)
}

func TestResolveBatch(t *testing.T) {
	st := testStore()
	ids := []taxa.TaxID{54736, 999, 123456, 666, 1}

	res, err := lineage.ResolveBatch(context.Background(), st, ids, 4)
	require.NoError(t, err)
	require.Len(t, res, len(ids))

	// input order preserved
	for i, id := range ids {
		assert.Equal(t, id, res[i].Query)
	}

	assert.Equal(t, int64(54736), res[0].Code)
	assert.Equal(t, lineage.CodeDeleted, res[1].Code)
	assert.Nil(t, res[1].Path)
	assert.Equal(t, lineage.CodeNotFound, res[2].Code)
	assert.Equal(t, int64(562), res[3].Code, "merged id reports successor")
	assert.Equal(t, int64(1), res[4].Code)
	assert.Len(t, res[4].Path, 1)
}
