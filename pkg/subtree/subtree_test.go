package subtree_test

import (
	"encoding/json"
	"testing"

	"github.com/gnames/gntaxa/pkg/subtree"
	"github.com/gnames/gntaxa/pkg/taxa"
	"github.com/gnames/gntaxa/pkg/taxa/taxatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *taxatest.Store {
	st := taxatest.New([]taxa.Taxon{
		{ID: 1, ParentID: 1, Rank: "no rank", Name: "root"},
		{ID: 9604, ParentID: 1, Rank: "family", Name: "Hominidae"},
		{ID: 9605, ParentID: 9604, Rank: "genus", Name: "Homo"},
		{ID: 9606, ParentID: 9605, Rank: "species", Name: "Homo sapiens"},
		{ID: 63221, ParentID: 9606, Rank: "subspecies",
			Name: "Homo sapiens neanderthalensis"},
		{ID: 1425170, ParentID: 9605, Rank: "species",
			Name: "Homo heidelbergensis"},
		{ID: 9592, ParentID: 9604, Rank: "genus", Name: "Gorilla"},
	})
	st.AddMerged(741158, 9606)
	st.AddDeleted(999)
	return st
}

func TestIterPreOrder(t *testing.T) {
	st := testStore()
	tt, err := subtree.Taxa(st, 9605)
	require.NoError(t, err)

	var ids []taxa.TaxID
	for _, v := range tt {
		ids = append(ids, v.ID)
	}
	assert.Equal(t,
		[]taxa.TaxID{9605, 9606, 63221, 1425170}, ids,
		"pre-order, children in ascending id order")
}

func TestIterCoversEveryTaxonOnce(t *testing.T) {
	st := testStore()
	seq, err := subtree.Iter(st, st.Root())
	require.NoError(t, err)

	seen := make(map[taxa.TaxID]int)
	for v := range seq {
		seen[v.ID]++
	}
	assert.Len(t, seen, st.Len(), "no omissions")
	for id, n := range seen {
		assert.Equal(t, 1, n, "taxon %d visited once", id)
	}
}

func TestIterRestartable(t *testing.T) {
	st := testStore()
	seq, err := subtree.Iter(st, 9604)
	require.NoError(t, err)

	var first, second []taxa.TaxID
	for v := range seq {
		first = append(first, v.ID)
		if len(first) == 2 {
			break
		}
	}
	for v := range seq {
		second = append(second, v.ID)
	}
	assert.Equal(t, []taxa.TaxID{9604, 9592}, first)
	assert.Len(t, second, 6, "second pass starts over")
	assert.Equal(t, first, second[:2])
}

func TestIterStaleIDs(t *testing.T) {
	st := testStore()

	tt, err := subtree.Taxa(st, 741158)
	require.NoError(t, err)
	assert.Equal(t, taxa.TaxID(9606), tt[0].ID,
		"merged id enumerates the successor's subtree")

	_, err = subtree.Iter(st, 999)
	assert.ErrorIs(t, err, taxa.ErrDeleted)
	_, err = subtree.Iter(st, 123456)
	assert.ErrorIs(t, err, taxa.ErrNotFound)
}

func TestTree(t *testing.T) {
	st := testStore()
	n, err := subtree.Tree(st, 9605)
	require.NoError(t, err)

	assert.Equal(t, "9605 [genus] Homo", n.Label())
	assert.Equal(t, 4, n.Count())
	require.Len(t, n.Children, 2)
	assert.Equal(t, taxa.TaxID(9606), n.Children[0].Taxon.ID)
}

func TestTreeJSON(t *testing.T) {
	st := testStore()
	n, err := subtree.Tree(st, 9605)
	require.NoError(t, err)

	data, err := json.Marshal(n)
	require.NoError(t, err)
	want := `{"9605 [genus] Homo":` +
		`{"9606 [species] Homo sapiens":` +
		`{"63221 [subspecies] Homo sapiens neanderthalensis":{}},` +
		`"1425170 [species] Homo heidelbergensis":{}}}`
	assert.Equal(t, want, string(data))
}

func TestMarshalForest(t *testing.T) {
	st := testStore()
	homo, err := subtree.Tree(st, 9606)
	require.NoError(t, err)
	gorilla, err := subtree.Tree(st, 9592)
	require.NoError(t, err)

	data, err := subtree.MarshalForest([]*subtree.Node{homo, gorilla})
	require.NoError(t, err)
	want := `{"9606 [species] Homo sapiens":` +
		`{"63221 [subspecies] Homo sapiens neanderthalensis":{}},` +
		`"9592 [genus] Gorilla":{}}`
	assert.Equal(t, want, string(data))
}
