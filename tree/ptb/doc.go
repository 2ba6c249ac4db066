/*
Package ptb reads constituency trees in bracket notation, as used by the
Penn Treebank and by the SPMRL shared task data.

    ( (S (NP-SBJ (DT The) (NN cat)) (VP (VBD sat)) (. .)) )

A file is a sequence of trees. An opening parenthesis directly followed by
another opening parenthesis starts a node without a label; PTB files use this
for the root of each sentence. Tokenizing is done by a lexmachine DFA.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptb

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treegram.tree'.
func tracer() tracing.Trace {
	return tracing.Select("treegram.tree")
}
