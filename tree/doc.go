/*
Package tree implements the data model for constituency trees.

Trees consist of nodes which are either leafs, carrying a terminal symbol
(a word), or internal nodes, carrying a non-terminal label and an ordered list
of children. An internal node whose only child is a leaf is called a
pre-terminal; its label is the part-of-speech tag of the word.

    (S (NP (DT The) (NN cat)) (VP (VBZ sat)))

Trees are usually created by a reader for bracket notation (see sub-package
ptb) and are then mutated in place by package normalize. A tree is owned
by exactly one client at a time; nodes are never shared between trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treegram.tree'.
func tracer() tracing.Trace {
	return tracing.Select("treegram.tree")
}
