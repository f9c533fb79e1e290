package ranks_test

import (
	"testing"

	"github.com/gnames/gntaxa/pkg/ranks"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalOrder(t *testing.T) {
	ord := ranks.New()

	tests := []struct {
		msg    string
		a, b   string
		higher bool
		lower  bool
	}{
		{"family above genus", "family", "genus", true, false},
		{"genus below family", "genus", "family", false, true},
		{"species below family", "species", "family", false, true},
		{"same rank", "genus", "genus", false, false},
		{"shared level", "domain", "superkingdom", false, false},
		{"case insensitive", "Family", "GENUS", true, false},
		{"no rank incomparable", ranks.NoRank, "genus", false, false},
		{"unknown incomparable", "clade", "genus", false, false},
	}

	for _, v := range tests {
		assert.Equal(t, v.higher, ord.Higher(v.a, v.b), v.msg)
		assert.Equal(t, v.lower, ord.Lower(v.a, v.b), v.msg)
	}
}

func TestKnown(t *testing.T) {
	ord := ranks.New()
	assert.True(t, ord.Known("species"))
	assert.True(t, ord.Known("Varietas"))
	assert.False(t, ord.Known(ranks.NoRank))
	assert.False(t, ord.Known("clade"))
}

func TestNewFromList(t *testing.T) {
	ord := ranks.NewFromList([]string{
		"# comment",
		"kingdom",
		"",
		"phylum,division",
		"genus",
	})

	cmp, ok := ord.Compare("phylum", "division")
	assert.True(t, ok)
	assert.Zero(t, cmp)
	assert.True(t, ord.Higher("kingdom", "genus"))
	assert.False(t, ord.Known("family"))
}
