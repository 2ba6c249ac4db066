package pcfg

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/treegram"
	"github.com/npillmayer/treegram/symbols"
	"github.com/pkg/errors"
)

// Rule is a weighted production of a grammar. For lexical rules RHS holds a
// single terminal ID, otherwise RHS holds non-terminal IDs.
type Rule struct {
	LHS     int
	RHS     []int
	Lexical bool
	Count   int64   // number of occurrences in the training corpus
	Prob    float64 // relative frequency among rules with the same LHS
}

// Format returns a rule in the form "NP -> DT NN".
func (r *Rule) Format(idx *symbols.Indexer) string {
	var b strings.Builder
	b.WriteString(idx.Name(r.LHS, treegram.NonTerminal))
	b.WriteString(" ->")
	kind := treegram.NonTerminal
	if r.Lexical {
		kind = treegram.Terminal
	}
	for _, id := range r.RHS {
		b.WriteByte(' ')
		b.WriteString(idx.Name(id, kind))
	}
	return b.String()
}

func (r *Rule) sameRHS(rhs []int) bool {
	if len(r.RHS) != len(rhs) {
		return false
	}
	for i := range rhs {
		if r.RHS[i] != rhs[i] {
			return false
		}
	}
	return true
}

// Grammar is an immutable probabilistic context-free grammar. It is safe for
// concurrent readers.
//
// Rules are grouped by left-hand side. Within a group, non-lexical rules come
// first, ordered by right-hand side, followed by lexical rules ordered by
// terminal ID.
type Grammar struct {
	idx   *symbols.Indexer
	rules [][]*Rule // LHS ID ↦ rules
	size  int
}

// Symbols returns the symbol indexer the grammar's IDs refer to.
func (g *Grammar) Symbols() *symbols.Indexer {
	return g.idx
}

// Size returns the number of distinct rules.
func (g *Grammar) Size() int {
	return g.size
}

// Rules returns all rules with left-hand side lhs. Clients must not modify the
// result.
func (g *Grammar) Rules(lhs int) []*Rule {
	if lhs < 0 || lhs >= len(g.rules) {
		return nil
	}
	return g.rules[lhs]
}

// Each calls f for every rule of the grammar, ordered by LHS ID.
func (g *Grammar) Each(f func(*Rule)) {
	for _, rs := range g.rules {
		for _, r := range rs {
			f(r)
		}
	}
}

// Rule finds a rule of the grammar. If no such rule has been observed, Rule
// returns nil.
func (g *Grammar) Rule(lhs int, rhs []int, lexical bool) *Rule {
	for _, r := range g.Rules(lhs) {
		if r.Lexical == lexical && r.sameRHS(rhs) {
			return r
		}
	}
	return nil
}

// Probability returns the probability of a rule, or 0 for rules never observed.
func (g *Grammar) Probability(lhs int, rhs []int, lexical bool) float64 {
	if r := g.Rule(lhs, rhs, lexical); r != nil {
		return r.Prob
	}
	return 0
}

// ProbabilityOf is like Probability, but looks up the rule by symbol names.
// An RHS of exactly one terminal denotes a lexical rule.
func (g *Grammar) ProbabilityOf(lhs string, rhs ...string) (float64, error) {
	l, err := g.idx.Lookup(lhs, treegram.NonTerminal)
	if err != nil {
		return 0, err
	}
	ids := make([]int, len(rhs))
	lexical := false
	for i, name := range rhs {
		if ids[i], err = g.idx.Lookup(name, treegram.NonTerminal); err != nil {
			if len(rhs) != 1 {
				return 0, err
			}
			if ids[i], err = g.idx.Lookup(name, treegram.Terminal); err != nil {
				return 0, err
			}
			lexical = true
		}
	}
	return g.Probability(l, ids, lexical), nil
}

// Dump traces all rules of the grammar at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar with %d rules -------------------------", g.size)
	g.Each(func(r *Rule) {
		tracer().Debugf("%s  [%d, %.4f]", r.Format(g.idx), r.Count, r.Prob)
	})
	tracer().Debugf("-----------------------------------------------------")
}

// WriteTo writes the grammar in text format, one rule per line with its count
// and probability separated by tabs.
func (g *Grammar) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	var err error
	g.Each(func(r *Rule) {
		if err != nil {
			return
		}
		var n int
		n, err = fmt.Fprintf(bw, "%s\t%d\t%.6g\n", r.Format(g.idx), r.Count, r.Prob)
		written += int64(n)
	})
	if err == nil {
		err = bw.Flush()
	}
	return written, errors.Wrap(err, "writing grammar")
}

type fingerprintRule struct {
	LHS   string
	RHS   []string
	Count int64
}

// Fingerprint returns a hash over all rules and their counts. Grammars trained
// on the same corpus with the same settings have the same fingerprint,
// independent of the number of workers used.
func (g *Grammar) Fingerprint() (string, error) {
	var frs []fingerprintRule
	g.Each(func(r *Rule) {
		kind := treegram.NonTerminal
		if r.Lexical {
			kind = treegram.Terminal
		}
		rhs := make([]string, len(r.RHS))
		for i, id := range r.RHS {
			rhs[i] = g.idx.Name(id, kind)
		}
		frs = append(frs, fingerprintRule{
			LHS:   g.idx.Name(r.LHS, treegram.NonTerminal),
			RHS:   rhs,
			Count: r.Count,
		})
	})
	h, err := structhash.Hash(frs, 1)
	return h, errors.Wrap(err, "grammar fingerprint")
}

// Summary reports statistics about the grammar. Chain lengths are taken from
// normalization statistics, if given.
func (g *Grammar) Summary(chains map[int]int64) Summary {
	s := Summary{
		NonTerminals: g.idx.Size(treegram.NonTerminal),
		Terminals:    g.idx.Size(treegram.Terminal),
		Rules:        g.size,
		ChainLengths: chains,
	}
	g.Each(func(r *Rule) {
		if r.Lexical {
			s.LexicalRules++
		}
	})
	return s
}
