package pcfg

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/treegram"
	"github.com/npillmayer/treegram/rules"
	"github.com/npillmayer/treegram/sparse"
	"github.com/npillmayer/treegram/symbols"
	"github.com/pkg/errors"
)

// Builder counts productions. Lexical productions are counted in a sparse
// matrix (pre-terminal × word), all other productions in one ordered map per
// left-hand side, keyed by right-hand side.
//
// A Builder is not safe for concurrent use. Parallel clients create one builder
// per worker and merge them before finalizing.
type Builder struct {
	idx       *symbols.Indexer
	lexicon   *sparse.CountMatrix
	phrasal   []*treemap.Map // LHS ID ↦ (RHS ↦ int64)
	finalized bool
}

// NewBuilder creates a builder for symbols of a frozen indexer.
func NewBuilder(idx *symbols.Indexer) (*Builder, error) {
	if idx == nil || idx.State() != symbols.Frozen {
		return nil, errors.Wrap(treegram.ErrIndexerState, "grammar builder needs a frozen indexer")
	}
	nN, nT := idx.Size(treegram.NonTerminal), idx.Size(treegram.Terminal)
	return &Builder{
		idx:     idx,
		lexicon: sparse.NewCountMatrix(nN, nT),
		phrasal: make([]*treemap.Map, nN),
	}, nil
}

// rhsComparator orders right-hand sides lexicographically by symbol ID.
func rhsComparator(a, b interface{}) int {
	x, y := a.([]int), b.([]int)
	for i := 0; i < len(x) && i < len(y); i++ {
		if c := utils.IntComparator(x[i], y[i]); c != 0 {
			return c
		}
	}
	return utils.IntComparator(len(x), len(y))
}

// Accumulate counts productions. It is an error to call Accumulate after Finalize.
func (b *Builder) Accumulate(prods []rules.Production) error {
	if b.finalized {
		return errors.Wrap(treegram.ErrIndexerState, "cannot accumulate productions, grammar is finalized")
	}
	for _, p := range prods {
		if err := b.add(p.Parent, p.Children, p.Lexical, 1); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) add(lhs int, rhs []int, lexical bool, n int64) error {
	if lhs < 0 || lhs >= len(b.phrasal) {
		return errors.Wrapf(treegram.ErrUnknownSymbol, "non-terminal ID %d out of range", lhs)
	}
	if lexical {
		if len(rhs) != 1 || rhs[0] < 0 || rhs[0] >= b.lexicon.N() {
			return errors.Wrapf(treegram.ErrUnknownSymbol, "invalid lexical right-hand side %v", rhs)
		}
		b.lexicon.Add(lhs, rhs[0], n)
		return nil
	}
	for _, ch := range rhs {
		if ch < 0 || ch >= len(b.phrasal) {
			return errors.Wrapf(treegram.ErrUnknownSymbol, "non-terminal ID %d out of range", ch)
		}
	}
	m := b.phrasal[lhs]
	if m == nil {
		m = treemap.NewWith(rhsComparator)
		b.phrasal[lhs] = m
	}
	if cnt, found := m.Get(rhs); found {
		m.Put(rhs, cnt.(int64)+n)
	} else {
		m.Put(rhs, n)
	}
	return nil
}

// Merge adds all the counts of other to b. Both builders must have been created
// for the same indexer.
func (b *Builder) Merge(other *Builder) error {
	if b.finalized || other.finalized {
		return errors.Wrap(treegram.ErrIndexerState, "cannot merge finalized grammar builders")
	}
	if b.idx != other.idx {
		return errors.Wrap(treegram.ErrIndexerState, "cannot merge grammar builders of different indexers")
	}
	b.lexicon.Merge(other.lexicon)
	for lhs, m := range other.phrasal {
		if m == nil {
			continue
		}
		it := m.Iterator()
		for it.Next() {
			if err := b.add(lhs, it.Key().([]int), false, it.Value().(int64)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Finalize computes rule probabilities and returns the grammar. After Finalize
// the builder cannot be used any more; calling Finalize twice is an error.
func (b *Builder) Finalize() (*Grammar, error) {
	if b.finalized {
		return nil, errors.Wrap(treegram.ErrIndexerState, "grammar is already finalized")
	}
	b.finalized = true
	g := &Grammar{
		idx:   b.idx,
		rules: make([][]*Rule, len(b.phrasal)),
	}
	for lhs := range b.phrasal {
		total := b.lexicon.RowSum(lhs)
		if m := b.phrasal[lhs]; m != nil {
			for _, v := range m.Values() {
				total += v.(int64)
			}
		}
		if total == 0 {
			continue
		}
		g.rules[lhs] = b.rulesFor(lhs, total)
		g.size += len(g.rules[lhs])
	}
	tracer().Infof("grammar finalized with %d rules", g.size)
	return g, nil
}

func (b *Builder) rulesFor(lhs int, total int64) []*Rule {
	var rs []*Rule
	if m := b.phrasal[lhs]; m != nil {
		it := m.Iterator()
		for it.Next() {
			cnt := it.Value().(int64)
			rs = append(rs, &Rule{
				LHS:   lhs,
				RHS:   it.Key().([]int),
				Count: cnt,
				Prob:  float64(cnt) / float64(total),
			})
		}
	}
	b.lexicon.EachInRow(lhs, func(word int, cnt int64) {
		rs = append(rs, &Rule{
			LHS:     lhs,
			RHS:     []int{word},
			Lexical: true,
			Count:   cnt,
			Prob:    float64(cnt) / float64(total),
		})
	})
	return rs
}

// Summary reports statistics about the rules counted so far. Chain lengths are
// taken from normalization statistics, if given.
func (b *Builder) Summary(chains map[int]int64) Summary {
	s := Summary{
		NonTerminals: b.idx.Size(treegram.NonTerminal),
		Terminals:    b.idx.Size(treegram.Terminal),
		LexicalRules: b.lexicon.ValueCount(),
		ChainLengths: chains,
	}
	s.Rules = s.LexicalRules
	for _, m := range b.phrasal {
		if m != nil {
			s.Rules += m.Size()
		}
	}
	return s
}
