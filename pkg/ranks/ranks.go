// Package ranks models the canonical ordering of taxonomic ranks.
//
// The ordering is a total preorder from the most inclusive rank
// (domain/superkingdom) down to the least inclusive (isolate). It is
// built once at store load time and never mutated, so Order values
// are safe for concurrent use.
package ranks

import (
	_ "embed"
	"strings"
)

//go:embed ranks.txt
var rankData string

// NoRank is the rank string NCBI assigns to unranked nodes.
const NoRank = "no rank"

// Order is a fixed total preorder over rank names. Ranks on the same
// line of the source list share a position (e.g. "domain" and
// "superkingdom" are interchangeable levels).
type Order struct {
	pos map[string]int
}

// New returns the canonical rank order shipped with the package.
func New() *Order {
	return NewFromList(strings.Split(strings.TrimSpace(rankData), "\n"))
}

// NewFromList builds an Order from lines of rank names ordered from
// the highest (most inclusive) to the lowest rank. Names sharing a
// line, separated by commas, share a position. Empty lines and lines
// starting with '#' are skipped.
func NewFromList(lines []string) *Order {
	pos := make(map[string]int, len(lines))
	level := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, name := range strings.Split(line, ",") {
			name = normalize(name)
			if name == "" {
				continue
			}
			pos[name] = level
		}
		level++
	}
	return &Order{pos: pos}
}

// Known reports whether rank participates in the ordering. NoRank and
// dump-specific ranks absent from the canonical list are unknown and
// incomparable.
func (o *Order) Known(rank string) bool {
	_, ok := o.pos[normalize(rank)]
	return ok
}

// Compare orders two ranks. It returns a negative value when a is
// higher (closer to the root) than b, zero when they share a level,
// and a positive value when a is lower. The second return value is
// false when either rank is unknown, in which case the comparison is
// meaningless.
func (o *Order) Compare(a, b string) (int, bool) {
	pa, oka := o.pos[normalize(a)]
	pb, okb := o.pos[normalize(b)]
	if !oka || !okb {
		return 0, false
	}
	return pa - pb, true
}

// Higher reports whether rank a is strictly higher than b. Unknown
// ranks are never higher than anything.
func (o *Order) Higher(a, b string) bool {
	cmp, ok := o.Compare(a, b)
	return ok && cmp < 0
}

// Lower reports whether rank a is strictly lower than b. Unknown
// ranks are never lower than anything.
func (o *Order) Lower(a, b string) bool {
	cmp, ok := o.Compare(a, b)
	return ok && cmp > 0
}

func normalize(rank string) string {
	return strings.ToLower(strings.TrimSpace(rank))
}
