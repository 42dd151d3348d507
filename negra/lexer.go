package negra

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// fieldToken is the token type of NeGra fields.
const fieldToken = 1

var fieldLexer struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

// lexer returns the compiled field lexer. The DFA is compiled on first use
// and shared between readers.
func lexer() (*lexmachine.Lexer, error) {
	fieldLexer.once.Do(func() {
		lm := lexmachine.NewLexer()
		lm.Add([]byte(`%%[^\n]*`), skip)
		lm.Add([]byte(`[^\t\r\n ]+`), makeToken(fieldToken))
		lm.Add([]byte(`( |\t|\r)+`), skip)
		if err := lm.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			fieldLexer.err = errors.Wrap(err, "cannot compile NeGra field lexer")
			return
		}
		fieldLexer.lexer = lm
	})
	return fieldLexer.lexer, fieldLexer.err
}

// splitFields splits a line into its fields, dropping comments.
func splitFields(lm *lexmachine.Lexer, line []byte) ([]string, error) {
	scanner, err := lm.Scanner(line)
	if err != nil {
		return nil, err
	}
	var fields []string
	tok, err, eof := scanner.Next()
	for !eof {
		if err != nil {
			tracer().Errorf("lexer error: %v", err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				scanner.TC = ui.FailTC
			}
		} else if token, ok := tok.(*lexmachine.Token); ok && token.Type == fieldToken {
			fields = append(fields, token.Value.(string))
		}
		tok, err, eof = scanner.Next()
	}
	return fields, nil
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
