package rules

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treegram"
	"github.com/npillmayer/treegram/symbols"
	"github.com/npillmayer/treegram/tree"
	"github.com/npillmayer/treegram/tree/ptb"
)

func indexed(t *testing.T, trees ...*tree.Node) *symbols.Indexer {
	idx := symbols.NewIndexer()
	for _, tr := range trees {
		if err := idx.Observe(tr); err != nil {
			t.Fatal(err)
		}
	}
	if err := idx.Build(); err != nil {
		t.Fatal(err)
	}
	return idx
}

func TestExtract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	tr, err := ptb.Parse("(S (NP (DT The) (NN cat)) (VP (VBZ sat)))")
	if err != nil {
		t.Fatal(err)
	}
	idx := indexed(t, tr)
	prods, err := Extract(tr, idx)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{ // pre-order
		"S -> NP VP",
		"NP -> DT NN",
		"DT -> The",
		"NN -> cat",
		"VP -> VBZ",
		"VBZ -> sat",
	}
	if len(prods) != len(expected) {
		t.Fatalf("expected %d productions, have %d", len(expected), len(prods))
	}
	for i, p := range prods {
		if s := p.Format(idx); s != expected[i] {
			t.Errorf("expected production #%d to be %q, is %q", i, expected[i], s)
		}
	}
	if !prods[2].Lexical || prods[4].Lexical {
		t.Errorf("lexical flag set incorrectly")
	}
}

func TestVocabularyClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	tr, _ := ptb.Parse("(S (NP (DT a) (JJ big) (NN dog)) (VP (VBD barked) (ADVP (RB loudly))))")
	idx := indexed(t, tr)
	prods, _ := Extract(tr, idx)
	nN, nT := idx.Size(treegram.NonTerminal), idx.Size(treegram.Terminal)
	for _, p := range prods {
		if p.Parent < 0 || p.Parent >= nN {
			t.Errorf("parent ID %d out of range", p.Parent)
		}
		limit := nN
		if p.Lexical {
			limit = nT
		}
		for _, ch := range p.Children {
			if ch < 0 || ch >= limit {
				t.Errorf("child ID %d out of range", ch)
			}
		}
	}
}

func TestUnknownSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	tr, _ := ptb.Parse("(S (NP (DT The) (NN cat)) (VP (VBZ sat)))")
	idx := indexed(t, tr)
	other, _ := ptb.Parse("(S (NP (DT The) (NN dog)) (VP (VBZ sat)))")
	if _, err := Extract(other, idx); !errors.Is(err, treegram.ErrUnknownSymbol) {
		t.Errorf("expected unknown symbol error, have %v", err)
	}
	unfrozen := symbols.NewIndexer()
	unfrozen.Observe(tr)
	if _, err := Extract(tr, unfrozen); !errors.Is(err, treegram.ErrIndexerState) {
		t.Errorf("expected indexer state error, have %v", err)
	}
}

func TestMixedChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	tr := tree.NewNode("S", tree.NewPreterminal("NN", "cat"), tree.NewLeaf("sat"))
	idx := indexed(t, tr)
	if _, err := Extract(tr, idx); !errors.Is(err, treegram.ErrMalformedTree) {
		t.Errorf("expected malformed tree error, have %v", err)
	}
}
