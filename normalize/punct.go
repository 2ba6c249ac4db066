package normalize

import (
	"github.com/npillmayer/treegram"
	"github.com/npillmayer/treegram/tree"
	"github.com/pkg/errors"
)

// removePunctuation repeatedly deletes sub-trees without words of a kept tag.
// Every round deletes pre-terminals with a tag which is not kept, and
// constituents which have lost all of their children in an earlier round.
// Deeply nested punctuation-only constituents therefore need one round per level;
// the number of rounds is bounded by the configuration.
func (nz *Normalizer) removePunctuation(t *tree.Node) error {
	for round := 0; !nz.punctuationFree(t); round++ {
		if round == nz.conf.MaxPunctuationRounds {
			return errors.Wrapf(treegram.ErrPunctuationConvergence, "still not clean after %d rounds", round)
		}
		nz.prunePunctuation(t)
		tracer().Debugf("punctuation round %d: %s", round+1, t)
	}
	if len(t.Children) == 0 {
		return errors.Wrap(treegram.ErrMalformedTree, "no words left after punctuation removal")
	}
	return nil
}

// punctuationFree is true if every word has a kept tag and there are no
// constituents without children (except for the root).
func (nz *Normalizer) punctuationFree(t *tree.Node) bool {
	for _, tw := range t.POS() {
		if !nz.keep(tw.Tag) {
			return false
		}
	}
	clean := true
	t.Walk(func(n *tree.Node) bool {
		if n != t && !n.IsLeaf() && len(n.Children) == 0 {
			clean = false
		}
		return clean
	})
	return clean
}

// prunePunctuation does one round of removal, top-down. The surviving children
// of a node are collected first and then replace the node's children.
func (nz *Normalizer) prunePunctuation(n *tree.Node) {
	survivors := make([]*tree.Node, 0, len(n.Children))
	for _, ch := range n.Children {
		if !ch.IsLeaf() && (len(ch.Children) == 0 || ch.IsPreterminal() && !nz.keep(ch.Label)) {
			continue
		}
		survivors = append(survivors, ch)
	}
	n.Children = survivors
	for _, ch := range n.Children {
		if !ch.IsLeaf() {
			nz.prunePunctuation(ch)
		}
	}
}

func (nz *Normalizer) keep(tag string) bool {
	_, ok := nz.kept[tag]
	return ok
}
