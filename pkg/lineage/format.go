package lineage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/gntaxa/pkg/taxa"
)

// DefaultFormat projects the seven "standard" ranks the same way
// `taxonkit reformat` does by default.
const DefaultFormat = "{k};{p};{c};{o};{f};{g};{s}"

// placeholders maps format letters to canonical rank names. Letters
// follow taxonkit reformat conventions.
var placeholders = map[byte][]string{
	'd': {"domain", "superkingdom"},
	'k': {"superkingdom", "domain", "kingdom"},
	'K': {"kingdom"},
	'p': {"phylum"},
	'c': {"class"},
	'o': {"order"},
	'f': {"family"},
	'g': {"genus"},
	's': {"species"},
	'S': {"subspecies"},
	't': {"strain"},
}

type segment struct {
	literal string
	ranks   []string // nil for a literal segment
}

// Format is a parsed lineage format specification such as
// "{f};{g};{s}". Ranks absent from a path render as empty strings, so
// the output always has a fixed shape for a fixed spec.
type Format struct {
	spec     string
	segments []segment
}

// NewFormat parses a format specification. Unknown placeholders are
// an error.
func NewFormat(spec string) (*Format, error) {
	res := &Format{spec: spec}
	var lit strings.Builder
	for i := 0; i < len(spec); i++ {
		if spec[i] != '{' {
			lit.WriteByte(spec[i])
			continue
		}
		if i+2 >= len(spec) || spec[i+2] != '}' {
			return nil, fmt.Errorf("malformed placeholder in format %q", spec)
		}
		rr, ok := placeholders[spec[i+1]]
		if !ok {
			return nil, fmt.Errorf("unknown placeholder {%c} in format %q", spec[i+1], spec)
		}
		if lit.Len() > 0 {
			res.segments = append(res.segments, segment{literal: lit.String()})
			lit.Reset()
		}
		res.segments = append(res.segments, segment{ranks: rr})
		i += 2
	}
	if lit.Len() > 0 {
		res.segments = append(res.segments, segment{literal: lit.String()})
	}
	return res, nil
}

// String returns the original specification.
func (f *Format) String() string { return f.spec }

// Render projects a path into the format, substituting each
// placeholder with the name of the deepest path element matching one
// of the placeholder's ranks, or an empty string when absent.
func (f *Format) Render(p Path) string {
	return f.render(p, func(t taxa.Taxon) string { return t.Name })
}

// RenderTaxIDs is Render with taxon identifiers instead of names.
func (f *Format) RenderTaxIDs(p Path) string {
	return f.render(p, func(t taxa.Taxon) string {
		return strconv.FormatUint(uint64(t.ID), 10)
	})
}

func (f *Format) render(p Path, val func(taxa.Taxon) string) string {
	var b strings.Builder
	for _, seg := range f.segments {
		if seg.ranks == nil {
			b.WriteString(seg.literal)
			continue
		}
		if t, ok := deepestByRank(p, seg.ranks); ok {
			b.WriteString(val(t))
		}
	}
	return b.String()
}

func deepestByRank(p Path, rr []string) (taxa.Taxon, bool) {
	for _, rank := range rr {
		for i := len(p) - 1; i >= 0; i-- {
			if strings.EqualFold(p[i].Rank, rank) {
				return p[i], true
			}
		}
	}
	return taxa.Taxon{}, false
}
