package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/lcfrs"
	"github.com/pkg/errors"
)

// RootSentinel is the mother id of nodes attached to the virtual root.
const RootSentinel = "0"

// InternalMarker prefixes the id of internal node records.
const InternalMarker = '#'

// Record is a raw node record of a treebank sentence.
//
//    ID     = "Haus" or "#502"   // word of a leaf, or marked id of an internal node
//    Label  = "NN"               // syntactic category
//    Mother = "502"              // id of the mother, without marker; "0" for the root
//
type Record struct {
	ID     string
	Label  string
	Mother string
}

// IsInternal is true for records of internal nodes.
func (r Record) IsInternal() bool {
	return len(r.ID) > 0 && r.ID[0] == InternalMarker
}

func (r Record) String() string {
	return fmt.Sprintf("[%s %s ↑%s]", r.ID, r.Label, r.Mother)
}

// --- Nodes -----------------------------------------------------------------

// Node is a node of a tree. Leaf nodes are identified by their word, internal
// nodes by their id (without marker).
type Node struct {
	ID        string     // node id, or the word for leaves
	Label     string     // syntactic category
	Mother    string     // id of the mother node, RootSentinel for roots
	Span      lcfrs.Span // terminal positions dominated by this node
	Daughters []*Node    // daughters, in the order given by the tree's DaughterOrder
	leaf      bool
}

// IsLeaf is true for terminal nodes.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// IsRoot is true if n is attached to the virtual root.
func (n *Node) IsRoot() bool {
	return n.Mother == RootSentinel
}

// Position returns the terminal position of a leaf.
// For internal nodes the flag is false.
func (n *Node) Position() (uint64, bool) {
	if !n.leaf || len(n.Span) != 1 {
		return 0, false
	}
	return n.Span[0], true
}

func (n *Node) String() string {
	if n.leaf {
		return fmt.Sprintf("%s(%s)%s", n.Label, n.ID, n.Span)
	}
	return fmt.Sprintf("%s#%s%s", n.Label, n.ID, n.Span)
}

// resolved is true if the span of n has been computed.
func (n *Node) resolved() bool {
	return !n.Span.IsEmpty()
}

// daughtersResolved is true if n has daughters and all of them carry a span.
func (n *Node) daughtersResolved() bool {
	if len(n.Daughters) == 0 {
		return false
	}
	for _, d := range n.Daughters {
		if !d.resolved() {
			return false
		}
	}
	return true
}

// resolveSpan sets the span of n from the spans of its daughters.
func (n *Node) resolveSpan() {
	if len(n.Daughters) == 1 {
		n.Span = n.Daughters[0].Span
		return
	}
	spans := make([]lcfrs.Span, len(n.Daughters))
	for i, d := range n.Daughters {
		spans[i] = d.Span
	}
	n.Span = lcfrs.Span(nil).Union(spans...)
}

// --- Trees -----------------------------------------------------------------

// Tree is a tree built from the records of a sentence. The tree owns all of
// its nodes; daughters are referenced by their mothers.
type Tree struct {
	internal   map[string]*Node // internal nodes by id
	nodes      []*Node          // internal nodes in declaration order
	leaves     []*Node          // leaves in sentence order
	resolved   []*Node          // internal nodes in order of span resolution
	order      DaughterOrder
	propagated bool
}

// Option configures a tree.
type Option func(*Tree)

// WithDaughterOrder sets the policy for ordering the daughters of a node.
func WithDaughterOrder(order DaughterOrder) Option {
	return func(t *Tree) {
		t.order = order
	}
}

// Build links the records of a sentence to a tree. Leaves receive their
// terminal position as span; spans of internal nodes are computed by
// Propagate.
//
// Leaves are appended to their mother's daughters before any internal node is.
// Build returns ErrMalformedRecord for incomplete records, ErrMalformedTree
// for duplicate ids or unknown mothers, and ErrCyclicMotherhood if following
// the mother links of a node does not end at the root.
func Build(records []Record, opts ...Option) (*Tree, error) {
	t := &Tree{
		internal: make(map[string]*Node),
		nodes:    make([]*Node, 0, len(records)/2),
		leaves:   make([]*Node, 0, len(records)),
	}
	for _, opt := range opts {
		opt(t)
	}
	for i, rec := range records {
		if rec.ID == "" || rec.Label == "" || rec.Mother == "" {
			return nil, errors.Wrapf(ErrMalformedRecord, "record #%d %s is incomplete", i, rec)
		}
		if !rec.IsInternal() {
			t.leaves = append(t.leaves, &Node{ID: rec.ID, Label: rec.Label, Mother: rec.Mother, leaf: true})
			continue
		}
		id := rec.ID[1:]
		if id == "" {
			return nil, errors.Wrapf(ErrMalformedRecord, "record #%d %s has an empty node id", i, rec)
		}
		if id == RootSentinel {
			return nil, errors.Wrapf(ErrMalformedTree, "node id %q is reserved for the root", id)
		}
		if _, dup := t.internal[id]; dup {
			return nil, errors.Wrapf(ErrMalformedTree, "duplicate node id #%s", id)
		}
		n := &Node{ID: id, Label: rec.Label, Mother: rec.Mother}
		t.internal[id] = n
		t.nodes = append(t.nodes, n)
	}
	for pos, leaf := range t.leaves {
		leaf.Span = lcfrs.Span{uint64(pos)}
		if err := t.link(leaf); err != nil {
			return nil, err
		}
	}
	for _, n := range t.nodes {
		if err := t.link(n); err != nil {
			return nil, err
		}
	}
	if err := t.checkMotherhood(); err != nil {
		return nil, err
	}
	tracer().Debugf("built tree with %d leaves and %d internal nodes", len(t.leaves), len(t.nodes))
	return t, nil
}

// link appends n to the daughters of its mother.
func (t *Tree) link(n *Node) error {
	if n.IsRoot() {
		return nil
	}
	mother, ok := t.internal[n.Mother]
	if !ok {
		return errors.Wrapf(ErrMalformedTree, "mother #%s of node %s does not exist", n.Mother, n)
	}
	mother.Daughters = append(mother.Daughters, n)
	return nil
}

// checkMotherhood follows the mother links of every internal node up to the root.
// Nodes known to reach the root are not followed twice.
func (t *Tree) checkMotherhood() error {
	var grounded nodeset
	for _, n := range t.nodes {
		var path nodeset
		for m := n; m != nil && !grounded.contains(m); m = t.internal[m.Mother] {
			if path.contains(m) {
				return errors.Wrapf(ErrCyclicMotherhood, "node #%s dominates itself", m.ID)
			}
			path = path.add(m)
		}
		for m := range path {
			grounded = grounded.add(m)
		}
	}
	return nil
}

// Leaves returns the leaves of a tree in sentence order.
func (t *Tree) Leaves() []*Node {
	return t.leaves
}

// Nodes returns the internal nodes of a tree in declaration order.
func (t *Tree) Nodes() []*Node {
	return t.nodes
}

// Resolved returns the internal nodes in the order their spans have been
// computed, i.e., every node after all of its internal daughters.
// Resolved is empty before Propagate succeeded.
func (t *Tree) Resolved() []*Node {
	return t.resolved
}

// Node finds an internal node by id (without marker).
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.internal[id]
	return n, ok
}

// Size returns the number of nodes, leaves included.
func (t *Tree) Size() int {
	return len(t.leaves) + len(t.nodes)
}

// Order returns the daughter order policy of a tree.
func (t *Tree) Order() DaughterOrder {
	return t.order
}

// Roots returns all nodes attached to the virtual root. Roots are sorted by
// their leftmost position once spans have been propagated.
func (t *Tree) Roots() []*Node {
	var roots []*Node
	for _, n := range t.leaves {
		if n.IsRoot() {
			roots = append(roots, n)
		}
	}
	for _, n := range t.nodes {
		if n.IsRoot() {
			roots = append(roots, n)
		}
	}
	if t.propagated {
		sort.SliceStable(roots, func(i, j int) bool {
			return roots[i].Span[0] < roots[j].Span[0]
		})
	}
	return roots
}

// Sentence returns the words of the tree, separated by blanks.
func (t *Tree) Sentence() string {
	words := make([]string, len(t.leaves))
	for i, l := range t.leaves {
		words[i] = l.ID
	}
	return strings.Join(words, " ")
}

// Dump is a debugging helper.
func (t *Tree) Dump() {
	tracer().Debugf("--- tree: %s", t.Sentence())
	for _, n := range t.nodes {
		tracer().Debugf("    %s → %v", n, n.Daughters)
	}
	tracer().Debugf("------------------------------")
}
