/*
Package pcfg builds probabilistic context-free grammars from production counts.

A Builder accumulates productions extracted from normalized trees (see package
rules). Once all trees have been processed, the builder is finalized into an
immutable Grammar, where every rule carries its relative frequency among all
rules with the same left-hand side:

    P(A → β) = count(A → β) / Σ count(A → γ)

No smoothing or discounting is applied.

Grammars may be written in a simple textual format, one rule per line:

    NP -> DT NN    1234    0.0912
    DT -> the      5678    0.4701

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treegram.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("treegram.grammar")
}
