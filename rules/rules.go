/*
Package rules extracts productions from normalized trees.

Every internal node of a tree yields one production: its label is the
left-hand side, the labels of its children make up the right-hand side.
Pre-terminals yield lexical productions, with a single terminal on the
right-hand side. Symbols are represented by their IDs from a frozen
symbol indexer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/treegram"
	"github.com/npillmayer/treegram/symbols"
	"github.com/npillmayer/treegram/tree"
	"github.com/pkg/errors"
)

// tracer traces with key 'treegram.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("treegram.grammar")
}

// Production is an instance of a grammar rule, with symbols given as IDs.
// For lexical productions, Children holds exactly one terminal ID, otherwise
// Children holds non-terminal IDs.
type Production struct {
	Parent   int
	Children []int
	Lexical  bool
}

// Extract returns one production for every internal node of t, in pre-order.
// The indexer has to be frozen.
//
// An error wrapping treegram.ErrUnknownSymbol is returned for symbols not known
// to the indexer, which signals that t differs from the trees of the first pass.
// Nodes mixing leafs with other children result in treegram.ErrMalformedTree.
func Extract(t *tree.Node, idx *symbols.Indexer) ([]Production, error) {
	var prods []Production
	var err error
	t.Walk(func(n *tree.Node) bool {
		if err != nil || n.IsLeaf() {
			return false
		}
		var p Production
		if p, err = production(n, idx); err == nil {
			prods = append(prods, p)
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("extracted %d productions", len(prods))
	return prods, nil
}

func production(n *tree.Node, idx *symbols.Indexer) (Production, error) {
	parent, err := idx.Lookup(n.Label, treegram.NonTerminal)
	if err != nil {
		return Production{}, err
	}
	p := Production{Parent: parent, Children: make([]int, len(n.Children))}
	if n.IsPreterminal() {
		p.Lexical = true
		p.Children[0], err = idx.Lookup(n.Children[0].Terminal, treegram.Terminal)
		return p, err
	}
	for i, ch := range n.Children {
		if ch.IsLeaf() {
			return Production{}, errors.Wrapf(treegram.ErrMalformedTree,
				"node %q mixes word %q with other children", n.Label, ch.Terminal)
		}
		if p.Children[i], err = idx.Lookup(ch.Label, treegram.NonTerminal); err != nil {
			return Production{}, err
		}
	}
	return p, nil
}

// Format returns a production in readable form, e.g. "NP -> DT NN".
func (p Production) Format(idx *symbols.Indexer) string {
	var b strings.Builder
	b.WriteString(idx.Name(p.Parent, treegram.NonTerminal))
	b.WriteString(" ->")
	kind := treegram.NonTerminal
	if p.Lexical {
		kind = treegram.Terminal
	}
	for _, ch := range p.Children {
		b.WriteByte(' ')
		b.WriteString(idx.Name(ch, kind))
	}
	return b.String()
}
