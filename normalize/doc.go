/*
Package normalize rewrites constituency trees into a canonical form suitable
for grammar extraction.

Treebanks differ in their annotation conventions. Before counting productions,
every tree is subjected to a fixed sequence of rewriting steps, each of which
may be switched on or off by configuration:

    0. labeling of unlabeled roots, removal of sub-labels (NP-SBJ-1 ⇒ NP)
    1. removal of punctuation
    2. collapsing of numbers into a placeholder token
    3. lower-casing of words
    4. binarization (Chomsky normal form, horizontal Markov order 0)
    5. collapsing of unary chains (A → B → word ⇒ A+B → word)
    6. reduction of chain labels to at most two segments (always applied)

The order is significant: removing punctuation changes the arity of nodes,
therefore binarization has to follow it, and unary chains are collapsed only
after binarization is done.

Normalization is deterministic: the same tree and the same configuration
always result in structurally identical trees. This is a pre-requisite for
the two-pass grammar training in package trainer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package normalize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treegram.normalize'.
func tracer() tracing.Trace {
	return tracing.Select("treegram.normalize")
}
