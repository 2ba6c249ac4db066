package normalize

import (
	"fmt"
	"sort"
	"strings"
)

// Stats collects diagnostics during normalization of a corpus. The main
// item is a histogram of chain lengths observed during label reduction: for
// every internal node, the number of unary links which have been merged into
// its label (0 for a plain label, 1 for "A+B", etc.), recorded before the
// label is cut down to two segments.
//
// Stats is not safe for concurrent use. Parallel clients use one Stats per
// worker and merge them.
type Stats struct {
	Trees        int64         // number of normalized trees
	ChainLengths map[int]int64 // chain length ↦ number of nodes
}

// NewStats creates an empty statistics accumulator.
func NewStats() *Stats {
	return &Stats{ChainLengths: make(map[int]int64)}
}

func (s *Stats) recordChain(links int) {
	if s == nil {
		return
	}
	if s.ChainLengths == nil {
		s.ChainLengths = make(map[int]int64)
	}
	s.ChainLengths[links]++
}

// Merge adds the counts of other to s.
func (s *Stats) Merge(other *Stats) {
	if other == nil {
		return
	}
	s.Trees += other.Trees
	for l, cnt := range other.ChainLengths {
		s.recordChainN(l, cnt)
	}
}

func (s *Stats) recordChainN(links int, n int64) {
	if s.ChainLengths == nil {
		s.ChainLengths = make(map[int]int64)
	}
	s.ChainLengths[links] += n
}

// Lengths returns the chain lengths observed, in ascending order.
func (s *Stats) Lengths() []int {
	lengths := make([]int, 0, len(s.ChainLengths))
	for l := range s.ChainLengths {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

// String returns the histogram as {0: 123, 1: 45, …}.
func (s *Stats) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, l := range s.Lengths() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %d", l, s.ChainLengths[l])
	}
	b.WriteString("}")
	return b.String()
}
