package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/treegram"
	"github.com/npillmayer/treegram/tree"
	"github.com/pkg/errors"
)

// Normalizer applies the normalization steps selected by a configuration to
// trees. A Normalizer holds no state besides its configuration and may be used
// concurrently.
type Normalizer struct {
	conf    Config
	kept    map[string]struct{}
	numeral *regexp.Regexp
}

// Numerals are digits, optionally followed by a single group of ',' or '.'
// plus digits: "42", "3.14", "1,234".
var numeralPattern = regexp.MustCompile(`^\p{Nd}+(?:[,.]\p{Nd}*)?$`)

// New creates a normalizer for a configuration.
func New(conf Config) *Normalizer {
	nz := &Normalizer{
		conf:    conf,
		kept:    make(map[string]struct{}, len(conf.KeptTags)),
		numeral: numeralPattern,
	}
	for _, tag := range conf.KeptTags {
		nz.kept[tag] = struct{}{}
	}
	if nz.conf.MaxPunctuationRounds <= 0 {
		nz.conf.MaxPunctuationRounds = 10
	}
	return nz
}

// Config returns the configuration of a normalizer.
func (nz *Normalizer) Config() Config {
	return nz.conf
}

// Normalize rewrites a tree in place and returns it. If stats is non-nil,
// diagnostics are recorded into it.
//
// Normalize will return an error wrapping treegram.ErrMalformedTree for trees
// violating the shape invariant (or trees without any word left after punctuation
// removal), and treegram.ErrPunctuationConvergence if punctuation removal did not
// terminate. In case of an error the tree is left in an undefined state and must
// not be used for grammar extraction.
func (nz *Normalizer) Normalize(t *tree.Node, stats *Stats) (*tree.Node, error) {
	if t == nil {
		return nil, errors.Wrap(treegram.ErrMalformedTree, "tree is nil")
	}
	if err := t.Validate(); err != nil {
		return nil, nz.fail(err, t)
	}
	if t.Label == "" && nz.conf.RootLabel != "" {
		t.Label = nz.conf.RootLabel
	}
	if nz.conf.RemoveSublabel {
		RemoveSublabels(t)
	}
	if nz.conf.RemovePunctuation {
		if err := nz.removePunctuation(t); err != nil {
			return nil, nz.fail(err, t)
		}
	}
	if nz.conf.CollapseNumber || nz.conf.LowercaseWord {
		nz.rewriteWords(t)
	}
	if nz.conf.ReadAsCNF {
		Binarize(t)
	}
	if nz.conf.CollapseUnary {
		CollapseUnary(t, nz.conf.CollapseRoot)
	}
	ReduceLabels(t, stats)
	if stats != nil {
		stats.Trees++
	}
	tracer().Debugf("normalized tree: %s", t)
	return t, nil
}

func (nz *Normalizer) fail(err error, t *tree.Node) error {
	if gconf.GetBool("panic-on-normalization-failure") {
		panic(fmt.Sprintf(`Normalization of tree failed: %v

    %s

Configuration flag panic-on-normalization-failure is set to true. It is aimed
at helping to debug treebank input. If this is not what you want, please unset it.
`, err, t))
	}
	return err
}

// rewriteWords collapses numerals and lower-cases words of pre-terminals.
func (nz *Normalizer) rewriteWords(t *tree.Node) {
	t.Walk(func(n *tree.Node) bool {
		if !n.IsPreterminal() {
			return true
		}
		leaf := n.Children[0]
		if nz.conf.CollapseNumber && nz.isNumeral(n.Label, leaf.Terminal) {
			leaf.Terminal = CollapsedNumber
		}
		if nz.conf.LowercaseWord {
			leaf.Terminal = strings.ToLower(strings.TrimSpace(leaf.Terminal))
		}
		return false
	})
}

func (nz *Normalizer) isNumeral(tag, word string) bool {
	if nz.conf.NumeralTag != "" && tag != nz.conf.NumeralTag {
		return false
	}
	return nz.numeral.MatchString(word)
}

// RemoveSublabels strips function tags and co-indices from the labels of a tree:
//
//    NP-SBJ-1  ⇒  NP
//    NP=2      ⇒  NP
//
// Labels starting with '-' (-NONE-, -LRB-) are left untouched.
func RemoveSublabels(t *tree.Node) {
	t.Walk(func(n *tree.Node) bool {
		if n.IsLeaf() || strings.HasPrefix(n.Label, "-") {
			return true
		}
		if i := strings.IndexAny(n.Label, "-="); i > 0 {
			n.Label = n.Label[:i]
		}
		return true
	})
}
