package tree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/treegram"
	"github.com/pkg/errors"
)

// Node is a node of a constituency tree. A node is either a leaf, carrying a
// terminal, or an internal node, carrying a label and at least one child.
//
// Children are owned exclusively by their parent.
type Node struct {
	Label    string  // non-terminal label, empty for leafs and unlabeled roots
	Children []*Node // ordered children, empty for leafs
	Terminal string  // terminal symbol, valid for leafs only
	leaf     bool
}

// NewLeaf creates a leaf node for a terminal symbol.
func NewLeaf(word string) *Node {
	return &Node{Terminal: word, leaf: true}
}

// NewNode creates an internal node.
func NewNode(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// NewPreterminal creates an internal node with a single leaf child:
//
//    NewPreterminal("NN", "cat")   // (NN cat)
//
func NewPreterminal(tag, word string) *Node {
	return NewNode(tag, NewLeaf(word))
}

// IsLeaf returns true if n carries a terminal.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// IsPreterminal returns true if n is an internal node with a leaf as its only child.
func (n *Node) IsPreterminal() bool {
	return !n.leaf && len(n.Children) == 1 && n.Children[0].leaf
}

// Height returns the height of a (sub-)tree. Leafs have height 1, pre-terminals
// have height 2.
func (n *Node) Height() int {
	if n.leaf {
		return 1
	}
	h := 0
	for _, ch := range n.Children {
		if chh := ch.Height(); chh > h {
			h = chh
		}
	}
	return h + 1
}

// Walk visits n and its descendents in pre-order. If visit returns false for
// a node, the children of that node will not be visited.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, ch := range n.Children {
		ch.Walk(visit)
	}
}

// Subtrees returns all internal nodes of a tree in pre-order, n included.
func (n *Node) Subtrees() []*Node {
	var st []*Node
	n.Walk(func(node *Node) bool {
		if !node.leaf {
			st = append(st, node)
		}
		return true
	})
	return st
}

// Leaves returns the terminals of a tree from left to right.
func (n *Node) Leaves() []string {
	var words []string
	n.Walk(func(node *Node) bool {
		if node.leaf {
			words = append(words, node.Terminal)
		}
		return true
	})
	return words
}

// TaggedWord is a terminal together with the label of its parent node.
type TaggedWord struct {
	Word, Tag string
}

// POS returns the terminals of a tree from left to right, together with their
// part-of-speech tags (i.e., the label of the parent node).
func (n *Node) POS() []TaggedWord {
	var pos []TaggedWord
	var collect func(*Node)
	collect = func(node *Node) {
		for _, ch := range node.Children {
			if ch.leaf {
				pos = append(pos, TaggedWord{Word: ch.Terminal, Tag: node.Label})
			} else {
				collect(ch)
			}
		}
	}
	collect(n)
	return pos
}

// Copy creates a deep copy of a tree.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Label: n.Label, Terminal: n.Terminal, leaf: n.leaf}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Copy()
		}
	}
	return c
}

// Equal returns true if two trees are structurally identical, including
// labels and terminals.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.leaf != other.leaf || n.Label != other.Label || n.Terminal != other.Terminal ||
		len(n.Children) != len(other.Children) {
		return false
	}
	for i, ch := range n.Children {
		if !ch.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Validate checks the shape invariant for every node of a tree: a node is either
// a leaf without children, or an internal node with at least one child.
// Returns an error wrapping treegram.ErrMalformedTree otherwise.
func (n *Node) Validate() error {
	var err error
	n.Walk(func(node *Node) bool {
		if err != nil {
			return false
		}
		if node.leaf && len(node.Children) > 0 {
			err = errors.Wrapf(treegram.ErrMalformedTree, "leaf %q has children", node.Terminal)
		} else if !node.leaf && len(node.Children) == 0 {
			err = errors.Wrapf(treegram.ErrMalformedTree, "node %q has no children", node.Label)
		}
		return err == nil
	})
	if err != nil {
		tracer().Debugf("invalid tree: %v", err)
	}
	return err
}

// String returns a tree in single-line bracket notation.
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	if n.leaf {
		b.WriteString(n.Terminal)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Label)
	for _, ch := range n.Children {
		b.WriteByte(' ')
		ch.format(b)
	}
	b.WriteByte(')')
}

// GoString is a debugging helper.
func (n *Node) GoString() string {
	if n.leaf {
		return fmt.Sprintf("<leaf %q>", n.Terminal)
	}
	return fmt.Sprintf("<node %q |%d|>", n.Label, len(n.Children))
}
