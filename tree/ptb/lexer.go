package ptb

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of bracket notation.
const (
	LParen int = iota + 1
	RParen
	Atom
)

// token is what the scanner hands to the reader.
type token struct {
	typ    int
	lexeme string
	line   int
	col    int
}

// newLexer creates and compiles the DFA for bracket notation. Atoms are
// everything between parentheses and whitespace.
func newLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`\(`), makeToken(LParen))
	lexer.Add([]byte(`\)`), makeToken(RParen))
	lexer.Add([]byte("[^() \t\n\r]+"), makeToken(Atom))
	lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

// skip is a lexmachine action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a lexmachine action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// scanner iterates over the tokens of one input.
type scanner struct {
	s *lexmachine.Scanner
}

// next returns the next token. At the end of input, ok is false.
func (sc scanner) next() (tok token, ok bool, err error) {
	t, err, eof := sc.s.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			sc.s.TC = ui.FailTC // skip the offending input for subsequent calls
		}
		return token{}, false, err
	}
	if eof {
		return token{}, false, nil
	}
	lt := t.(*lexmachine.Token)
	return token{
		typ:    lt.Type,
		lexeme: string(lt.Lexeme),
		line:   lt.StartLine,
		col:    lt.StartColumn,
	}, true, nil
}
