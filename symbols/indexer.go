package symbols

import (
	"sync"

	"github.com/npillmayer/treegram"
	"github.com/npillmayer/treegram/tree"
	"github.com/pkg/errors"
)

// State is the state of an indexer.
type State int8

// An indexer starts in state Open and changes to Frozen with Build().
const (
	Open State = iota
	Frozen
)

func (st State) String() string {
	if st == Frozen {
		return "frozen"
	}
	return "open"
}

// Indexer assigns integer IDs to terminals and non-terminals. It is safe for
// concurrent use; observations are serialized by a single writer lock.
type Indexer struct {
	mu     sync.RWMutex
	state  State
	tables [2]*SymbolTable // indexed by treegram.SymbolKind
	names  [2][]string     // ID ↦ name, valid when frozen
}

// NewIndexer creates an open indexer without any symbols.
func NewIndexer() *Indexer {
	return &Indexer{
		tables: [2]*SymbolTable{
			treegram.NonTerminal: NewSymbolTable(treegram.NonTerminal),
			treegram.Terminal:    NewSymbolTable(treegram.Terminal),
		},
	}
}

// State returns the current state of the indexer.
func (idx *Indexer) State() State {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.state
}

// Observe registers every label and every terminal of a (normalized) tree.
// Returns an error wrapping treegram.ErrIndexerState if the indexer is frozen.
func (idx *Indexer) Observe(t *tree.Node) error {
	var labels, words []string
	t.Walk(func(n *tree.Node) bool {
		if n.IsLeaf() {
			words = append(words, n.Terminal)
		} else {
			labels = append(labels, n.Label)
		}
		return true
	})
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.state != Open {
		return errors.Wrap(treegram.ErrIndexerState, "cannot observe tree, indexer is frozen")
	}
	for _, l := range labels {
		idx.tables[treegram.NonTerminal].ResolveOrDefineSymbol(l)
	}
	for _, w := range words {
		idx.tables[treegram.Terminal].ResolveOrDefineSymbol(w)
	}
	return nil
}

// ObserveSymbol registers a single symbol.
func (idx *Indexer) ObserveSymbol(name string, kind treegram.SymbolKind) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.state != Open {
		return errors.Wrapf(treegram.ErrIndexerState, "cannot observe %s %q, indexer is frozen", kind, name)
	}
	idx.tables[kind].ResolveOrDefineSymbol(name)
	return nil
}

// Merge registers all the symbols of other. This is intended for clients which
// collect vocabularies in parallel, one indexer per worker, and unite them
// before freezing. Both indexers have to be open.
func (idx *Indexer) Merge(other *Indexer) error {
	if other == idx {
		return nil
	}
	other.mu.RLock()
	defer other.mu.RUnlock()
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.state != Open || other.state != Open {
		return errors.Wrap(treegram.ErrIndexerState, "cannot merge frozen indexers")
	}
	for kind, tab := range other.tables {
		for nm := range tab.Table {
			idx.tables[kind].ResolveOrDefineSymbol(nm)
		}
	}
	return nil
}

// Build freezes the indexer. Every non-terminal receives an ID in
// [0…Size(NonTerminal)), every terminal receives an ID in [0…Size(Terminal)).
// IDs are assigned in lexicographic order of symbol names, therefore they do not
// depend on the order of observation.
func (idx *Indexer) Build() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.state != Open {
		return errors.Wrap(treegram.ErrIndexerState, "indexer has already been built")
	}
	for kind, tab := range idx.tables {
		idx.names[kind] = tab.number()
	}
	idx.state = Frozen
	tracer().Infof("indexer frozen: %d non-terminals, %d terminals",
		len(idx.names[treegram.NonTerminal]), len(idx.names[treegram.Terminal]))
	return nil
}

// Lookup returns the ID of a symbol. It returns an error wrapping
// treegram.ErrUnknownSymbol if the symbol has not been observed, and
// treegram.ErrIndexerState if the indexer is not frozen yet.
func (idx *Indexer) Lookup(name string, kind treegram.SymbolKind) (int, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if idx.state != Frozen {
		return -1, errors.Wrapf(treegram.ErrIndexerState, "lookup of %q before indexer is built", name)
	}
	sym := idx.tables[kind].ResolveSymbol(name)
	if sym == nil {
		return -1, errors.Wrapf(treegram.ErrUnknownSymbol, "%s %q", kind, name)
	}
	return sym.ID, nil
}

// Name returns the name of a symbol with a given ID. IDs out of range result in
// an empty string. Name is only valid for frozen indexers.
func (idx *Indexer) Name(id int, kind treegram.SymbolKind) string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	names := idx.names[kind]
	if id < 0 || id >= len(names) {
		return ""
	}
	return names[id]
}

// Size returns the number of distinct symbols of a kind.
func (idx *Indexer) Size(kind treegram.SymbolKind) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tables[kind].Size()
}
