package subtree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gnames/gntaxa/pkg/taxa"
)

// Node is one taxon of an eagerly built subtree. Children are ordered
// by ascending identifier, matching Iter's traversal order.
type Node struct {
	Taxon    taxa.Taxon
	Children []*Node
}

// Tree builds the whole subtree of id as a nested structure. It is
// the eager counterpart of Iter, intended for structural export
// rather than streaming consumption.
func Tree(st taxa.Store, id taxa.TaxID) (*Node, error) {
	root, status := st.ResolveStale(id)
	switch status {
	case taxa.Deleted:
		return nil, fmt.Errorf("subtree of %d: %w", id, taxa.ErrDeleted)
	case taxa.NotFound:
		return nil, fmt.Errorf("subtree of %d: %w", id, taxa.ErrNotFound)
	}
	return build(st, root)
}

func build(st taxa.Store, id taxa.TaxID) (*Node, error) {
	t, err := st.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("subtree of %d: %w", id, err)
	}
	n := &Node{Taxon: t}
	for _, ch := range st.Children(id) {
		child, err := build(st, ch)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// Label renders the node key used in the nested JSON export:
// "taxid [rank] name".
func (n *Node) Label() string {
	return n.Taxon.String()
}

// Count returns the number of taxa in the subtree, the node itself
// included.
func (n *Node) Count() int {
	res := 1
	for _, ch := range n.Children {
		res += ch.Count()
	}
	return res
}

// MarshalJSON renders the subtree as a nested name-keyed object,
// the shape produced by `taxonkit list --json`:
//
//	{"9605 [genus] Homo": {"9606 [species] Homo sapiens": {}}}
//
// Children keep their deterministic order, so the output is stable
// for a fixed store snapshot.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := n.writeEntry(&buf); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (n *Node) writeEntry(buf *bytes.Buffer) error {
	key, err := json.Marshal(n.Label())
	if err != nil {
		return err
	}
	buf.Write(key)
	buf.WriteString(":{")
	for i, ch := range n.Children {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := ch.writeEntry(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// MarshalForest renders several subtrees as one nested name-keyed
// object, the shape `taxonkit list --json` uses for multiple query
// identifiers.
func MarshalForest(nodes []*Node) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := n.writeEntry(&buf); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
