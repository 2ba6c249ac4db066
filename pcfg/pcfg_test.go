package pcfg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treegram"
	"github.com/npillmayer/treegram/rules"
	"github.com/npillmayer/treegram/symbols"
	"github.com/npillmayer/treegram/tree"
	"github.com/npillmayer/treegram/tree/ptb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = []string{
	"(S (NP (DT the) (NN cat)) (VP (VBZ sat)))",
	"(S (NP (DT the) (NN dog)) (VP (VBZ sat) (NP (DT a) (NN mat))))",
}

func parseAll(t *testing.T, input []string) []*tree.Node {
	trees := make([]*tree.Node, len(input))
	for i, s := range input {
		tr, err := ptb.Parse(s)
		require.NoError(t, err)
		trees[i] = tr
	}
	return trees
}

func index(t *testing.T, trees []*tree.Node) *symbols.Indexer {
	idx := symbols.NewIndexer()
	for _, tr := range trees {
		require.NoError(t, idx.Observe(tr))
	}
	require.NoError(t, idx.Build())
	return idx
}

func accumulate(t *testing.T, b *Builder, idx *symbols.Indexer, trees []*tree.Node) {
	for _, tr := range trees {
		prods, err := rules.Extract(tr, idx)
		require.NoError(t, err)
		require.NoError(t, b.Accumulate(prods))
	}
}

func train(t *testing.T, input []string) *Grammar {
	trees := parseAll(t, input)
	idx := index(t, trees)
	b, err := NewBuilder(idx)
	require.NoError(t, err)
	accumulate(t, b, idx, trees)
	g, err := b.Finalize()
	require.NoError(t, err)
	return g
}

func TestSingleTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	g := train(t, corpus[:1])
	g.Dump()
	assert.Equal(t, 6, g.Size())
	g.Each(func(r *Rule) {
		assert.Equal(t, 1.0, r.Prob, r.Format(g.Symbols()))
	})
	p, err := g.ProbabilityOf("NP", "DT", "NN")
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)
	p, err = g.ProbabilityOf("VBZ", "sat")
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)
}

func TestRelativeFrequencies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	g := train(t, corpus)
	assert.Equal(t, 10, g.Size())
	expected := map[string]float64{
		"S -> NP VP":   1.0,
		"NP -> DT NN":  1.0,
		"VP -> VBZ":    0.5,
		"VP -> VBZ NP": 0.5,
		"DT -> the":    2.0 / 3.0,
		"DT -> a":      1.0 / 3.0,
		"NN -> cat":    1.0 / 3.0,
		"VBZ -> sat":   1.0,
	}
	found := 0
	g.Each(func(r *Rule) {
		if p, ok := expected[r.Format(g.Symbols())]; ok {
			assert.InDelta(t, p, r.Prob, 1e-12, r.Format(g.Symbols()))
			found++
		}
	})
	assert.Equal(t, len(expected), found)
	p, err := g.ProbabilityOf("VP", "NP")
	require.NoError(t, err)
	assert.Equal(t, 0.0, p, "unobserved rule should have probability 0")
}

func TestProbabilitiesSumToOne(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	g := train(t, append(corpus,
		"(S (NP (PRP it)) (VP (VBD rained) (ADVP (RB hard))))",
		"(S (NP (DT a) (JJ big) (NN dog)) (VP (VBD barked)))",
	))
	n := g.Symbols().Size(treegram.NonTerminal)
	for lhs := 0; lhs < n; lhs++ {
		rs := g.Rules(lhs)
		if len(rs) == 0 {
			continue
		}
		sum := 0.0
		for _, r := range rs {
			sum += r.Prob
		}
		assert.InDelta(t, 1.0, sum, 1e-9, g.Symbols().Name(lhs, treegram.NonTerminal))
	}
}

func TestMergeBuilders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	trees := parseAll(t, corpus)
	idx := index(t, trees)
	b1, _ := NewBuilder(idx)
	b2, _ := NewBuilder(idx)
	accumulate(t, b1, idx, trees[:1])
	accumulate(t, b2, idx, trees[1:])
	require.NoError(t, b1.Merge(b2))
	assert.Equal(t, 10, b1.Summary(nil).Rules)
	merged, err := b1.Finalize()
	require.NoError(t, err)
	fp1, err := merged.Fingerprint()
	require.NoError(t, err)
	fp2, err := train(t, corpus).Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fp2, fp1)
	fp3, _ := train(t, corpus[:1]).Fingerprint()
	assert.NotEqual(t, fp1, fp3)
}

func TestBuilderState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	trees := parseAll(t, corpus)
	open := symbols.NewIndexer()
	_, err := NewBuilder(open)
	assert.True(t, errors.Is(err, treegram.ErrIndexerState))
	idx := index(t, trees)
	b, _ := NewBuilder(idx)
	accumulate(t, b, idx, trees)
	_, err = b.Finalize()
	require.NoError(t, err)
	_, err = b.Finalize()
	assert.True(t, errors.Is(err, treegram.ErrIndexerState), "finalize twice")
	err = b.Accumulate([]rules.Production{{Parent: 0, Children: []int{0}}})
	assert.True(t, errors.Is(err, treegram.ErrIndexerState), "accumulate after finalize")
}

func TestUnknownIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	idx := index(t, parseAll(t, corpus))
	b, _ := NewBuilder(idx)
	err := b.Accumulate([]rules.Production{{Parent: 99, Children: []int{0}}})
	assert.True(t, errors.Is(err, treegram.ErrUnknownSymbol))
	err = b.Accumulate([]rules.Production{{Parent: 0, Children: []int{999}, Lexical: true}})
	assert.True(t, errors.Is(err, treegram.ErrUnknownSymbol))
}

func TestWriteAndSummary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.grammar")
	defer teardown()
	//
	g := train(t, corpus)
	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines, "VP -> VBZ\t1\t0.5")
	assert.Contains(t, lines, "DT -> the\t2\t0.666667")
	s := g.Summary(map[int]int64{0: 12, 1: 3})
	assert.Equal(t, 6, s.LexicalRules)
	assert.Equal(t, 6, s.NonTerminals)
	assert.Equal(t, 6, s.Terminals)
	report := s.String()
	assert.Contains(t, report, "rules:         10 (6 lexical)")
	assert.Contains(t, report, "   1: 3")
}
