/*
Command treegram extracts a probabilistic context-free grammar from a treebank.

Usage:

    treegram -corpus ptb -root /data/wsj -workers 8 -dump wsj.pcfg

treegram locates the training files of a corpus, normalizes every tree and
counts the productions of the normalized trees. It prints a summary of the
resulting grammar and optionally writes all rules with their counts and
probabilities to a file.

The normalization steps default to the settings appropriate for the corpus
format; flags -cnf, -unary, -number, -lower, -punct and -sublabel override
single steps. Corpus format and root may as well be set with environment
variables TREEGRAM_CORPUS and TREEGRAM_ROOT, which will be read from a file
".env" in the current directory, if present.

With flag -repl treegram starts an interactive sandbox. Trees in bracket
notation entered on a line by themselves are normalized and displayed,
together with the productions they contribute.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treegram.corpus'
func tracer() tracing.Trace {
	return tracing.Select("treegram.corpus")
}
