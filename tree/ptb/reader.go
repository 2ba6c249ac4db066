package ptb

import (
	"io"
	"sync"

	"github.com/npillmayer/treegram"
	"github.com/npillmayer/treegram/tree"
	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
)

// Reader reads trees in bracket notation. A Reader may be used concurrently
// by multiple goroutines.
type Reader struct {
	lexer *lexmachine.Lexer
}

// NewReader creates a reader for bracket notation. It will return an error if
// compiling the tokenizer failed.
func NewReader() (*Reader, error) {
	lexer, err := newLexer()
	if err != nil {
		return nil, err
	}
	return &Reader{lexer: lexer}, nil
}

var defaultReader struct {
	once   sync.Once
	reader *Reader
	err    error
}

func reader() (*Reader, error) {
	defaultReader.once.Do(func() {
		defaultReader.reader, defaultReader.err = NewReader()
	})
	return defaultReader.reader, defaultReader.err
}

// Parse reads a single tree from a string.
//
//    t, err := ptb.Parse("(S (NP (DT The) (NN cat)) (VP (VBZ sat)))")
//
func Parse(input string) (*tree.Node, error) {
	r, err := reader()
	if err != nil {
		return nil, err
	}
	forest, err := r.ReadString(input)
	if err != nil {
		return nil, err
	}
	if len(forest) != 1 {
		return nil, errors.Wrapf(treegram.ErrMalformedTree, "expected 1 tree, found %d", len(forest))
	}
	return forest[0], nil
}

// ReadAll reads all trees from an input stream.
func (r *Reader) ReadAll(in io.Reader) ([]*tree.Node, error) {
	input, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read trees")
	}
	return r.read(input)
}

// ReadString reads all trees from a string.
func (r *Reader) ReadString(input string) ([]*tree.Node, error) {
	return r.read([]byte(input))
}

func (r *Reader) read(input []byte) ([]*tree.Node, error) {
	s, err := r.lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	sc := scanner{s: s}
	var forest []*tree.Node
	var stack []*tree.Node // open nodes
	expectLabel := false   // true directly after '('
	for {
		tok, ok, err := sc.next()
		if err != nil {
			return nil, errors.Wrapf(treegram.ErrMalformedTree, "scanner error: %v", err)
		}
		if !ok {
			break
		}
		switch tok.typ {
		case LParen:
			node := tree.NewNode("")
			if len(stack) > 0 {
				tos := stack[len(stack)-1]
				tos.Children = append(tos.Children, node)
			}
			stack = append(stack, node)
			expectLabel = true
			continue
		case RParen:
			if len(stack) == 0 {
				return nil, syntaxError(tok, "unbalanced ')'")
			}
			node := stack[len(stack)-1]
			if len(node.Children) == 0 {
				return nil, syntaxError(tok, "node without children")
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				forest = append(forest, node)
			}
		case Atom:
			if len(stack) == 0 {
				return nil, syntaxError(tok, "word outside of tree")
			}
			tos := stack[len(stack)-1]
			if expectLabel {
				tos.Label = tok.lexeme
			} else {
				tos.Children = append(tos.Children, tree.NewLeaf(tok.lexeme))
			}
		}
		expectLabel = false
	}
	if len(stack) > 0 {
		return nil, errors.Wrapf(treegram.ErrMalformedTree, "unexpected end of input, %d node(s) open", len(stack))
	}
	tracer().Debugf("read %d trees", len(forest))
	return forest, nil
}

func syntaxError(tok token, msg string) error {
	return errors.Wrapf(treegram.ErrMalformedTree, "%d:%d: %s", tok.line, tok.col, msg)
}
