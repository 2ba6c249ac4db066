/*
Package symbols implements the symbol indexer for grammar training.

Terminals (words) and non-terminals (constituent labels) are collected from
normalized trees during a first pass over a corpus. After all trees have
been observed, the indexer is frozen and every symbol receives a dense
integer ID, separately for terminals and non-terminals:

    idx := symbols.NewIndexer()
    for _, t := range trees {
        idx.Observe(t)          // pass 1
    }
    idx.Build()                 // Open → Frozen, irreversible
    id, err := idx.Lookup("NP", treegram.NonTerminal)

Dense IDs allow array-backed counters during rule counting. Lookups are only
valid after freezing, observing is only valid before. Lookup of a symbol which
has not been observed is an error: it hints at trees which differ between the
two passes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symbols

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treegram.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("treegram.grammar")
}
