package normalize

import (
	"strings"

	"github.com/npillmayer/treegram/tree"
)

// Binarize rewrites every production with more than two children into a
// right-branching cascade of binary productions. Intermediate nodes are
// labeled with the original parent label plus FactorSuffix, retaining no
// sibling context (horizontal Markov order 0):
//
//    (NP a b c d)  ⇒  (NP a (NP|<> b (NP|<> c d)))
//
// Unary productions are left untouched.
func Binarize(t *tree.Node) {
	for _, ch := range t.Children {
		if !ch.IsLeaf() {
			Binarize(ch)
		}
	}
	k := len(t.Children)
	if k <= 2 {
		return
	}
	children := t.Children
	label := t.Label + FactorSuffix
	cur := t
	for i := 0; i < k-2; i++ {
		next := tree.NewNode(label)
		cur.Children = []*tree.Node{children[i], next}
		cur = next
	}
	cur.Children = []*tree.Node{children[k-2], children[k-1]}
}

// CollapseUnary merges chains of internal nodes with exactly one child into
// a single node, joining their labels with ChainSeparator. Pre-terminals are
// collapsed into their unary ancestors as well:
//
//    (A (B (C word)))  ⇒  (A+B+C word)
//
// If collapseRoot is false, the root node does not take part in a chain.
func CollapseUnary(t *tree.Node, collapseRoot bool) {
	if collapseRoot {
		collapseChains(t)
		return
	}
	for _, ch := range t.Children {
		if !ch.IsLeaf() {
			collapseChains(ch)
		}
	}
}

func collapseChains(n *tree.Node) {
	for len(n.Children) == 1 && !n.Children[0].IsLeaf() {
		ch := n.Children[0]
		n.Label = n.Label + ChainSeparator + ch.Label
		n.Children = ch.Children
	}
	for _, ch := range n.Children {
		if !ch.IsLeaf() {
			collapseChains(ch)
		}
	}
}

// ReduceLabels cuts labels of more than two chain segments down to the first
// and the last segment:
//
//    A+B+C  ⇒  A+C
//
// The chain length of every internal node is recorded in stats (which may be nil)
// before reduction.
func ReduceLabels(t *tree.Node, stats *Stats) {
	t.Walk(func(n *tree.Node) bool {
		if n.IsLeaf() {
			return false
		}
		segments := strings.Split(n.Label, ChainSeparator)
		stats.recordChain(len(segments) - 1)
		if len(segments) > 2 {
			n.Label = segments[0] + ChainSeparator + segments[len(segments)-1]
		}
		return true
	})
}
