package tree

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// DaughterOrder is a policy for the order of a node's daughters, and therefore
// for the order of right-hand-side predicates of the induced rules.
type DaughterOrder int

const (
	// OrderByPosition orders daughters by the leftmost position they dominate.
	OrderByPosition DaughterOrder = iota
	// OrderAsDeclared keeps leaf daughters first, in sentence order, followed by
	// internal daughters in the order their records appear in the sentence.
	OrderAsDeclared
)

func (o DaughterOrder) String() string {
	switch o {
	case OrderByPosition:
		return "position"
	case OrderAsDeclared:
		return "declared"
	}
	return "unknown"
}

// ParseDaughterOrder reads a daughter order from its name ("position" or "declared").
func ParseDaughterOrder(s string) (DaughterOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "position", "":
		return OrderByPosition, nil
	case "declared":
		return OrderAsDeclared, nil
	}
	return OrderByPosition, errors.Errorf("unknown daughter order %q", s)
}

// orderDaughters applies the tree's daughter order. Daughters are linked in
// declaration order by Build, so nothing is left to do for OrderAsDeclared.
func (t *Tree) orderDaughters() {
	if t.order != OrderByPosition {
		return
	}
	for _, n := range t.nodes {
		d := n.Daughters
		sort.SliceStable(d, func(i, j int) bool {
			mi, _ := d[i].Span.Min()
			mj, _ := d[j].Span.Min()
			return mi < mj
		})
	}
}
