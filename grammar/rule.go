package grammar

import (
	"strings"

	"github.com/npillmayer/lcfrs"
	"github.com/pkg/errors"
)

// Epsilon is the right-hand side of terminal rules.
const Epsilon = "eps"

// Arrow separates left-hand side and right-hand side in canonical rule text.
const Arrow = "->"

// ErrContraction flags a right-hand-side argument which has no matching run
// of positions on the left-hand side, or left-hand-side positions not covered
// by any daughter.
var ErrContraction = errors.New("contraction failed")

// Rule is an LCFRS rule. Terminal rules have no right-hand-side predicates.
type Rule struct {
	LHS  Predicate
	RHS  []Predicate
	form string
}

// Daughter describes a daughter of a node for rule construction.
type Daughter struct {
	Label string
	Span  lcfrs.Span
}

// TerminalRule creates a rule for a leaf: its label with the word as single
// argument, rewriting to Epsilon.
//
//    NN(Haus)->eps
//
func TerminalRule(label, word string) *Rule {
	r := &Rule{
		LHS: Predicate{Name: label, Args: []Argument{{Word(word)}}},
	}
	r.form = r.render()
	return r
}

// NewRule creates the rule for an internal node with a given span, rewriting
// to predicates for the daughters, in order. The spans of the daughters have
// to partition the span of the node.
//
// Position arguments are contracted to variables: every right-hand-side
// argument is replaced by a fresh variable, which is substituted for the
// matching run of positions on the left-hand side. NewRule returns
// ErrContraction if this is not possible.
func NewRule(label string, span lcfrs.Span, daughters ...Daughter) (*Rule, error) {
	if len(daughters) == 0 {
		return nil, errors.Wrapf(ErrContraction, "rule for %s%s without daughters", label, span)
	}
	r := &Rule{
		LHS: Predicate{Name: label, Args: ArgumentsOf(span)},
		RHS: make([]Predicate, len(daughters)),
	}
	for i, d := range daughters {
		r.RHS[i] = Predicate{Name: d.Label, Args: ArgumentsOf(d.Span)}
	}
	tracer().Debugf("contracting %s", r.render())
	if err := r.contract(); err != nil {
		return nil, err
	}
	r.form = r.render()
	return r, nil
}

// contract introduces one variable per right-hand-side argument.
func (r *Rule) contract() error {
	var count uint64
	for i := range r.RHS {
		pred := &r.RHS[i]
		for j, arg := range pred.Args {
			v := Var(count)
			if !r.LHS.substitute(arg, v) {
				return errors.Wrapf(ErrContraction, "argument %s of %s not found in %s", arg, pred.Name, r.LHS)
			}
			pred.Args[j] = Argument{v}
			count++
		}
	}
	for _, arg := range r.LHS.Args {
		if !arg.IsContracted() {
			return errors.Wrapf(ErrContraction, "positions %s of %s not covered by daughters", arg, r.LHS.Name)
		}
	}
	return nil
}

func (r *Rule) render() string {
	var b strings.Builder
	b.WriteString(r.LHS.String())
	b.WriteString(Arrow)
	if r.IsTerminal() {
		b.WriteString(Epsilon)
		return b.String()
	}
	for _, p := range r.RHS {
		b.WriteString(p.String())
	}
	return b.String()
}

// IsTerminal is true for rules rewriting to Epsilon.
func (r *Rule) IsTerminal() bool {
	return len(r.RHS) == 0
}

// FanOut is the number of left-hand-side arguments.
func (r *Rule) FanOut() int {
	return r.LHS.FanOut()
}

// Rank is the number of right-hand-side predicates.
func (r *Rule) Rank() int {
	return len(r.RHS)
}

// String returns the canonical text of a rule. Rules with identical canonical
// text are duplicates.
func (r *Rule) String() string {
	return r.form
}
