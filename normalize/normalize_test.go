package normalize

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treegram"
	"github.com/npillmayer/treegram/tree"
	"github.com/npillmayer/treegram/tree/ptb"
)

func parse(t *testing.T, input string) *tree.Node {
	tr, err := ptb.Parse(input)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", input, err)
	}
	return tr
}

func normalizeString(t *testing.T, conf Config, input string) (*tree.Node, error) {
	return New(conf).Normalize(parse(t, input), NewStats())
}

func TestNumberCollapsing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.normalize")
	defer teardown()
	//
	conf := DefaultConfig()
	conf.CollapseNumber = true
	for input, expected := range map[string]string{
		"(CD 3.14)":              "(CD -num-)",
		"(CD 42)":                "(CD -num-)",
		"(CD 1,234)":             "(CD -num-)",
		"(CD abc)":               "(CD abc)",
		"(CD 1,234,567)":         "(CD 1,234,567)",
		"(NN 42)":                "(NN 42)",
		"(NP (CD 7) (NNS Cats))": "(NP (CD -num-) (NNS Cats))",
	} {
		tr, err := normalizeString(t, conf, input)
		if err != nil {
			t.Fatal(err)
		}
		if tr.String() != expected {
			t.Errorf("expected %s to become %s, is %s", input, expected, tr)
		}
	}
	conf.NumeralTag = "" // SPMRL style: any tag
	tr, _ := normalizeString(t, conf, "(NN 42)")
	if tr.String() != "(NN -num-)" {
		t.Errorf("expected numeral with any tag to be collapsed, is %s", tr)
	}
}

func TestLowercase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.normalize")
	defer teardown()
	//
	conf := DefaultConfig()
	conf.LowercaseWord = true
	tr, err := normalizeString(t, conf, "(S (NP (DT The) (NNP PARIS)) (VP (CD 12)))")
	if err != nil {
		t.Fatal(err)
	}
	if tr.String() != "(S (NP (DT the) (NNP paris)) (VP (CD 12)))" {
		t.Errorf("unexpected lower-cased tree: %s", tr)
	}
}

func TestUnaryCollapsing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.normalize")
	defer teardown()
	//
	tr := parse(t, "(A (B (C word)))")
	CollapseUnary(tr, true)
	if tr.String() != "(A+B+C word)" {
		t.Errorf("expected chain to collapse to (A+B+C word), is %s", tr)
	}
	stats := NewStats()
	ReduceLabels(tr, stats)
	if tr.String() != "(A+C word)" {
		t.Errorf("expected label reduction to yield (A+C word), is %s", tr)
	}
	if stats.ChainLengths[2] != 1 {
		t.Errorf("expected one chain of length 2 in histogram, have %s", stats)
	}
	//
	conf := DefaultConfig()
	conf.CollapseUnary = true
	tr, err := normalizeString(t, conf, "(ROOT (A (B (C word))))")
	if err != nil {
		t.Fatal(err)
	}
	if tr.String() != "(ROOT (A+C word))" {
		t.Errorf("expected root to stay out of chain, tree is %s", tr)
	}
	conf.CollapseRoot = true
	tr, _ = normalizeString(t, conf, "(A (B (C word)))")
	if tr.String() != "(A+C word)" {
		t.Errorf("expected collapsed root chain (A+C word), is %s", tr)
	}
}

func TestLabelReductionIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.normalize")
	defer teardown()
	//
	for _, input := range []string{
		"(A+B+C+D (X+Y w) (Z v))",
		"(S (NP+NN cat) (VP+VBD+X+Y sat))",
		"(A (B c))",
	} {
		once := parse(t, input)
		ReduceLabels(once, nil)
		twice := once.Copy()
		ReduceLabels(twice, nil)
		if !once.Equal(twice) {
			t.Errorf("label reduction not idempotent: %s vs %s", once, twice)
		}
	}
}

func TestBinarize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.normalize")
	defer teardown()
	//
	tr := parse(t, "(NP (DT a) (JJ b) (JJ c) (NN d))")
	Binarize(tr)
	if tr.String() != "(NP (DT a) (NP|<> (JJ b) (NP|<> (JJ c) (NN d))))" {
		t.Errorf("unexpected binarization: %s", tr)
	}
	tr = parse(t, "(S (NP (DT a) (JJ b) (NN c)) (VP (VB d) (NP (NN e)) (PP (IN f) (NN g)) (ADVP (RB h))) (. .))")
	before := map[*tree.Node]int{}
	tr.Walk(func(n *tree.Node) bool {
		before[n] = len(n.Children)
		return true
	})
	Binarize(tr)
	tr.Walk(func(n *tree.Node) bool {
		if n.IsLeaf() {
			return false
		}
		if k, ok := before[n]; ok && k <= 2 {
			if len(n.Children) != k {
				t.Errorf("node %s untouched by binarization changed its arity", n.Label)
			}
		} else if len(n.Children) != 2 {
			t.Errorf("binarized node %s has %d children", n.Label, len(n.Children))
		}
		return true
	})
}

func TestPunctuationRemoval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.normalize")
	defer teardown()
	//
	conf := DefaultConfig()
	conf.RemovePunctuation = true
	tr, err := normalizeString(t, conf,
		"( (S (NP (DT The) (NN cat)) (, ,) (VP (VBD sat) (PRN (-LRB- -LRB-) (: ;))) (. .)))")
	if err != nil {
		t.Fatal(err)
	}
	if tr.String() != "(ROOT (S (NP (DT The) (NN cat)) (VP (VBD sat))))" {
		t.Errorf("unexpected tree after punctuation removal: %s", tr)
	}
	tr, err = normalizeString(t, conf, "(S (NP (-NONE- *T*-1)) (VP (VBD sat) (NP ($ $) (CD 5))))")
	if err != nil {
		t.Fatal(err)
	}
	if tr.String() != "(S (VP (VBD sat) (NP ($ $) (CD 5))))" {
		t.Errorf("expected traces to be removed and currency to be kept: %s", tr)
	}
}

// nestedPunctuation creates a tree with a chain of depth constituents
// dominating nothing but a full stop. Removing it takes depth+1 rounds.
func nestedPunctuation(depth int) *tree.Node {
	chain := tree.NewPreterminal(".", ".")
	for i := 0; i < depth; i++ {
		chain = tree.NewNode("X", chain)
	}
	return tree.NewNode("S", tree.NewNode("NP", tree.NewPreterminal("NN", "cat")), chain)
}

func TestPunctuationBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.normalize")
	defer teardown()
	//
	conf := DefaultConfig()
	conf.RemovePunctuation = true
	nz := New(conf)
	tr, err := nz.Normalize(nestedPunctuation(9), nil) // 10 rounds
	if err != nil {
		t.Fatalf("expected 10 rounds to succeed, have %v", err)
	}
	if tr.String() != "(S (NP (NN cat)))" {
		t.Errorf("unexpected tree after 10 rounds: %s", tr)
	}
	_, err = nz.Normalize(nestedPunctuation(10), nil) // 11 rounds
	if !errors.Is(err, treegram.ErrPunctuationConvergence) {
		t.Errorf("expected 11 rounds to fail with convergence error, have %v", err)
	}
	_, err = nz.Normalize(parse(t, "(. .)"), nil)
	if !errors.Is(err, treegram.ErrPunctuationConvergence) {
		t.Errorf("expected punctuation root to fail with convergence error, have %v", err)
	}
	_, err = nz.Normalize(parse(t, "( (. .) (, ,))"), nil)
	if !errors.Is(err, treegram.ErrMalformedTree) {
		t.Errorf("expected tree without words to be malformed, have %v", err)
	}
}

func TestRemoveSublabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.normalize")
	defer teardown()
	//
	conf := DefaultConfig()
	conf.RemoveSublabel = true
	tr, err := normalizeString(t, conf, "(S (NP-SBJ-1 (PRP He)) (VP (VBD ran) (NP=2 (-NONE- *T*))))")
	if err != nil {
		t.Fatal(err)
	}
	if tr.String() != "(S (NP (PRP He)) (VP (VBD ran) (NP (-NONE- *T*))))" {
		t.Errorf("unexpected labels: %s", tr)
	}
}

func TestPTBPipeline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.normalize")
	defer teardown()
	//
	input := "( (S (NP-SBJ (DT The) (JJ Big) (NN cat)) (VP (VBD sat) (NP (CD 3.5) (NNS Mats))) (. .)))"
	nz := New(PTBConfig())
	t1, err := nz.Normalize(parse(t, input), NewStats())
	if err != nil {
		t.Fatal(err)
	}
	t2, _ := nz.Normalize(parse(t, input), NewStats())
	if !t1.Equal(t2) {
		t.Errorf("normalization is not deterministic: %s vs %s", t1, t2)
	}
	expected := "(ROOT (S (NP-SBJ (DT the) (NP-SBJ|<> (JJ big) (NN cat))) (VP (VBD sat) (NP (CD -num-) (NNS mats)))))"
	if t1.String() != expected {
		t.Errorf("expected\n%s, have\n%s", expected, t1)
	}
}

func TestMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.normalize")
	defer teardown()
	//
	tr := tree.NewNode("S", tree.NewNode("NP"))
	if _, err := New(DefaultConfig()).Normalize(tr, nil); !errors.Is(err, treegram.ErrMalformedTree) {
		t.Errorf("expected malformed tree error, have %v", err)
	}
}
