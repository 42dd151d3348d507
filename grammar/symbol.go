package grammar

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lcfrs"
)

// SymbolKind is a category type for symbols within predicate arguments.
type SymbolKind uint8

// Symbols are either terminal positions (before contraction), variables
// (after contraction) or words (arguments of terminal rules).
const (
	PositionSymbol SymbolKind = iota
	VariableSymbol
	WordSymbol
)

// Symbol is a typed token of a predicate argument.
type Symbol struct {
	Kind SymbolKind
	N    uint64 // terminal position or variable number
	Word string // only for WordSymbol
}

// Pos creates a symbol for terminal position p.
func Pos(p uint64) Symbol {
	return Symbol{Kind: PositionSymbol, N: p}
}

// Var creates variable number n.
func Var(n uint64) Symbol {
	return Symbol{Kind: VariableSymbol, N: n}
}

// Word creates a symbol for a word of the input.
func Word(w string) Symbol {
	return Symbol{Kind: WordSymbol, Word: w}
}

// IsVariable is true for variables.
func (s Symbol) IsVariable() bool {
	return s.Kind == VariableSymbol
}

func (s Symbol) String() string {
	switch s.Kind {
	case PositionSymbol:
		return fmt.Sprintf("Y_%d", s.N)
	case VariableSymbol:
		return fmt.Sprintf("X_%d", s.N)
	}
	return s.Word
}

// --- Arguments -------------------------------------------------------------

// Argument is an argument of a predicate, i.e. a sequence of symbols.
type Argument []Symbol

// ArgumentsOf decomposes a span into arguments, one per contiguous
// component, each holding a position symbol for every position of the component.
func ArgumentsOf(span lcfrs.Span) []Argument {
	comps := span.Components()
	args := make([]Argument, len(comps))
	for i, c := range comps {
		arg := make(Argument, 0, c.Len())
		for _, p := range c.Positions() {
			arg = append(arg, Pos(p))
		}
		args[i] = arg
	}
	return args
}

// IsContracted is true if an argument consists of variables only.
func (a Argument) IsContracted() bool {
	for _, s := range a {
		if !s.IsVariable() {
			return false
		}
	}
	return true
}

// index finds the first occurence of run within a, comparing whole symbols.
// Returns -1 if run does not occur.
func (a Argument) index(run Argument) int {
	if len(run) == 0 || len(run) > len(a) {
		return -1
	}
	for k := 0; k+len(run) <= len(a); k++ {
		if a[k] != run[0] {
			continue
		}
		match := true
		for j := 1; j < len(run); j++ {
			if a[k+j] != run[j] {
				match = false
				break
			}
		}
		if match {
			return k
		}
	}
	return -1
}

// replace returns a copy of a with the n symbols starting at k replaced by s.
func (a Argument) replace(k, n int, s Symbol) Argument {
	r := make(Argument, 0, len(a)-n+1)
	r = append(r, a[:k]...)
	r = append(r, s)
	return append(r, a[k+n:]...)
}

func (a Argument) String() string {
	var b strings.Builder
	for _, s := range a {
		b.WriteString(s.String())
	}
	return b.String()
}
