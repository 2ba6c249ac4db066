package pcfg

import (
	"fmt"
	"sort"
	"strings"
)

// Summary holds statistics about a grammar and the corpus it was trained on.
type Summary struct {
	NonTerminals int
	Terminals    int
	Rules        int
	LexicalRules int
	ChainLengths map[int]int64 // unary chain length ↦ number of nodes
}

// String formats a human readable report.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "non-terminals: %d\n", s.NonTerminals)
	fmt.Fprintf(&b, "terminals:     %d\n", s.Terminals)
	fmt.Fprintf(&b, "rules:         %d (%d lexical)\n", s.Rules, s.LexicalRules)
	if len(s.ChainLengths) > 0 {
		b.WriteString("unary chain lengths:\n")
		lengths := make([]int, 0, len(s.ChainLengths))
		for l := range s.ChainLengths {
			lengths = append(lengths, l)
		}
		sort.Ints(lengths)
		for _, l := range lengths {
			fmt.Fprintf(&b, "  %2d: %d\n", l, s.ChainLengths[l])
		}
	}
	return b.String()
}
