package induce

import (
	"github.com/npillmayer/lcfrs/grammar"
	"github.com/npillmayer/lcfrs/tree"
	"github.com/pkg/errors"
)

// RulesFor induces the rules of a single tree, given by its records.
func RulesFor(records []tree.Record, opts ...tree.Option) ([]*grammar.Rule, error) {
	t, err := tree.Build(records, opts...)
	if err != nil {
		return nil, err
	}
	return RulesForTree(t)
}

// RulesForTree induces the rules of a tree: first a terminal rule for every
// leaf in sentence order, then a rule for every internal node, in the order
// in which spans have been resolved. Spans are propagated if this has not
// happened yet.
func RulesForTree(t *tree.Tree) ([]*grammar.Rule, error) {
	if err := t.Propagate(); err != nil {
		return nil, err
	}
	rules := make([]*grammar.Rule, 0, t.Size())
	for _, leaf := range t.Leaves() {
		rules = append(rules, grammar.TerminalRule(leaf.Label, leaf.ID))
	}
	for _, n := range t.Resolved() {
		daughters := make([]grammar.Daughter, len(n.Daughters))
		for i, d := range n.Daughters {
			daughters[i] = grammar.Daughter{Label: d.Label, Span: d.Span}
		}
		r, err := grammar.NewRule(n.Label, n.Span, daughters...)
		if err != nil {
			return nil, errors.Wrapf(err, "node %s", n)
		}
		rules = append(rules, r)
	}
	return rules, nil
}
