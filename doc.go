/*
Package treegram extracts probabilistic context-free grammars from treebanks.

Treegram reads hand-annotated constituency trees, normalizes them and counts
the productions they contain. Package structure is as follows:

■ tree: Package tree implements the constituency tree data model, together with
a reader for bracket notation (sub-package ptb).

■ normalize: Package normalize rewrites trees into a canonical form
(punctuation removal, binarization, unary-chain collapsing and the like).

■ symbols, rules, pcfg: Indexing of terminals and non-terminals, extraction of
productions and estimation of rule probabilities.

■ treebank, trainer: Corpus access and the two-pass training driver.

The base package contains error kinds which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treegram
