package treegram

import "errors"

// --- Error kinds -----------------------------------------------------------

// Error kinds shared by all packages of treegram. None of them are meant to be
// recovered from silently; packages wrap them with the context necessary to
// locate the offending input (file ID, tree number, symbol). Clients check for
// a kind with errors.Is.
var (
	// ErrMalformedTree is returned if a tree violates the shape invariant: every
	// node is either a leaf (terminal, no children) or internal (children, no terminal).
	ErrMalformedTree = errors.New("malformed tree")

	// ErrPunctuationConvergence is returned if punctuation removal does not
	// reach a fixpoint within the configured number of rounds.
	ErrPunctuationConvergence = errors.New("punctuation removal does not converge")

	// ErrUnknownSymbol is returned by frozen symbol tables for symbols which
	// have not been observed before freezing.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrIndexerState is returned if an operation is called in the wrong
	// phase, e.g. observing symbols after the symbol table has been frozen.
	ErrIndexerState = errors.New("operation not valid in current state")
)

// --- Symbol kinds ----------------------------------------------------------

// SymbolKind is a category type for grammar symbols. Terminals and
// non-terminals live in disjoint ID spaces.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	NonTerminal SymbolKind = iota
	Terminal
)

func (k SymbolKind) String() string {
	switch k {
	case NonTerminal:
		return "non-terminal"
	case Terminal:
		return "terminal"
	}
	return "<unknown symbol kind>"
}
