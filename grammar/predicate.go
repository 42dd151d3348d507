package grammar

import (
	"strings"
)

// Predicate is a named list of arguments, e.g. VP(X_0,X_1).
type Predicate struct {
	Name string
	Args []Argument
}

// FanOut is the number of arguments of a predicate.
func (p Predicate) FanOut() int {
	return len(p.Args)
}

// substitute replaces the first occurrence of run within one of p's
// arguments by symbol s. It returns false if run does not occur in any argument.
func (p *Predicate) substitute(run Argument, s Symbol) bool {
	for i, arg := range p.Args {
		if k := arg.index(run); k >= 0 {
			p.Args[i] = arg.replace(k, len(run), s)
			return true
		}
	}
	return false
}

func (p Predicate) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteByte('(')
	for i, arg := range p.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}
