/*
Package treebank locates and reads treebank corpora.

Two corpus layouts are supported. The Penn Treebank (Wall Street Journal part)
is organized in numbered sections, each a directory of ".mrg" files:

    <root>/00/wsj_0001.mrg
    ...
    <root>/24/wsj_2499.mrg

By convention sections 02–21 are used for training, section 22 for development
and section 23 for testing. SPMRL treebanks keep their files (".ptb") in
directories "train" (or "train5k" for the small training sets), "dev" and "test".

Corpus files are read by a Source. FileSource reads files with the bracket
notation reader of package ptb and caches parsed forests.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treebank

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treegram.corpus'.
func tracer() tracing.Trace {
	return tracing.Select("treegram.corpus")
}
