package symbols

import (
	"fmt"
	"sort"

	"github.com/npillmayer/treegram"
)

// --- Symbols ---------------------------------------------------------------

// Symbol is an entry of a symbol table. Symbols carry an ID, which is
// undefined (-1) until the indexer is frozen.
type Symbol struct {
	name string
	ID   int
	Kind treegram.SymbolKind
}

// NewSymbol creates a new symbol without an ID.
func NewSymbol(nm string, kind treegram.SymbolKind) *Symbol {
	return &Symbol{name: nm, ID: -1, Kind: kind}
}

// Name gets the symbol's name.
func (s *Symbol) Name() string {
	return s.name
}

// String is a debug Stringer for symbols.
func (s *Symbol) String() string {
	return fmt.Sprintf("<%s '%s'[%d]>", s.Kind, s.name, s.ID)
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store symbols of one kind (map-like semantics).
type SymbolTable struct {
	Table map[string]*Symbol
	kind  treegram.SymbolKind
}

// NewSymbolTable creates an empty symbol table for symbols of a given kind.
func NewSymbolTable(kind treegram.SymbolKind) *SymbolTable {
	return &SymbolTable{
		Table: make(map[string]*Symbol),
		kind:  kind,
	}
}

// ResolveSymbol checks for a symbol in the symbol table.
// Returns a symbol or nil.
func (t *SymbolTable) ResolveSymbol(name string) *Symbol {
	return t.Table[name]
}

// ResolveOrDefineSymbol finds a symbol in the table, inserts a new one if not found.
// Returns the symbol and a flag, signalling wether the symbol has already been present.
func (t *SymbolTable) ResolveOrDefineSymbol(name string) (*Symbol, bool) {
	if sym := t.ResolveSymbol(name); sym != nil {
		return sym, true
	}
	sym := NewSymbol(name, t.kind)
	t.Table[name] = sym
	return sym, false
}

// Size counts the symbols in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Names returns the names of all symbols, sorted.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.Table))
	for nm := range t.Table {
		names = append(names, nm)
	}
	sort.Strings(names)
	return names
}

// Each iterates over each symbol in the table, executing a mapper function.
// Iteration order is undefined.
func (t *SymbolTable) Each(mapper func(string, *Symbol)) {
	for k, v := range t.Table {
		mapper(k, v)
	}
}

// number assigns IDs 0…n-1 to the symbols, in lexicographic order of their names.
// Returns a slice for mapping IDs back to names.
func (t *SymbolTable) number() []string {
	names := t.Names()
	for id, nm := range names {
		t.Table[nm].ID = id
	}
	return names
}
