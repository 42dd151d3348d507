package tree

import (
	"strings"

	"github.com/pkg/errors"
)

// Propagate computes the span of every internal node, bottom-up.
//
// Spans are resolved by repeated scans over the nodes still unresolved: a
// node is resolved as soon as all of its daughters carry a span. A node with
// a single daughter shares the daughter's span, otherwise its span is the
// sorted union of the daughters' spans. If a scan makes no progress,
// Propagate fails with ErrUnresolvableTree; this happens for internal nodes
// which dominate no terminal at all.
//
// After propagation daughters are ordered according to the tree's DaughterOrder.
// Calling Propagate more than once is harmless.
func (t *Tree) Propagate() error {
	if t.propagated {
		return nil
	}
	pending := make([]*Node, len(t.nodes))
	copy(pending, t.nodes)
	t.resolved = make([]*Node, 0, len(t.nodes))
	round := 0
	for len(pending) > 0 {
		round++
		rest := make([]*Node, 0, len(pending))
		for _, n := range pending {
			if n.daughtersResolved() {
				n.resolveSpan()
				t.resolved = append(t.resolved, n)
				continue
			}
			rest = append(rest, n)
		}
		if len(rest) == len(pending) {
			t.resolved = nil
			return errors.Wrapf(ErrUnresolvableTree, "no span for node(s) %s", nodeIDs(rest))
		}
		pending = rest
	}
	tracer().Debugf("spans resolved in %d round(s)", round)
	t.orderDaughters()
	t.propagated = true
	return nil
}

func nodeIDs(nodes []*Node) string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = "#" + n.ID
	}
	return strings.Join(ids, ", ")
}
