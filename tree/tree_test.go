package tree

import (
	"testing"

	"github.com/npillmayer/lcfrs"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
)

// Die Katze schläft
func flatTree() []Record {
	return []Record{
		{"Die", "ART", "500"},
		{"Katze", "NN", "500"},
		{"schläft", "VVFIN", "500"},
		{"#500", "S", "0"},
	}
}

// a b c, with VP dominating a and c:
//
//        S
//      /   \
//    VP     |
//   /  \    |
//  a    c   b
//
func discontinuousTree() []Record {
	return []Record{
		{"a", "A", "500"},
		{"b", "B", "501"},
		{"c", "C", "500"},
		{"#500", "VP", "501"},
		{"#501", "S", "0"},
	}
}

// Hat er gestern das Haus gekauft ?
// with the punctuation attached to the virtual root.
func deeperTree() []Record {
	return []Record{
		{"Hat", "VAFIN", "503"},
		{"er", "PPER", "503"},
		{"gestern", "ADV", "502"},
		{"das", "ART", "500"},
		{"Haus", "NN", "500"},
		{"gekauft", "VVPP", "502"},
		{"?", "$.", "0"},
		{"#500", "NP", "502"},
		{"#502", "VP", "503"},
		{"#503", "S", "0"},
	}
}

func leafSpan(n *Node) lcfrs.Span {
	if n.IsLeaf() {
		return n.Span
	}
	var s lcfrs.Span
	for _, d := range n.Daughters {
		s = s.Union(leafSpan(d))
	}
	return s
}

func buildAndPropagate(t *testing.T, records []Record, opts ...Option) *Tree {
	tree, err := Build(records, opts...)
	if err != nil {
		t.Fatalf("unexpected error building tree: %v", err)
	}
	if err = tree.Propagate(); err != nil {
		t.Fatalf("unexpected error propagating spans: %v", err)
	}
	return tree
}

// --- the Tests -------------------------------------------------------------

func TestBuildLinksDaughters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.tree")
	defer teardown()
	//
	tree, err := Build(flatTree())
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Leaves()) != 3 || len(tree.Nodes()) != 1 {
		t.Fatalf("expected 3 leaves and 1 internal node, have %d and %d",
			len(tree.Leaves()), len(tree.Nodes()))
	}
	s, ok := tree.Node("500")
	if !ok {
		t.Fatalf("expected to find node #500")
	}
	if len(s.Daughters) != 3 {
		t.Errorf("expected S to have 3 daughters, has %d", len(s.Daughters))
	}
	for i, leaf := range tree.Leaves() {
		if p, ok := leaf.Position(); !ok || p != uint64(i) {
			t.Errorf("expected leaf %q at position %d, is at %d", leaf.ID, i, p)
		}
	}
	if tree.Sentence() != "Die Katze schläft" {
		t.Errorf("unexpected sentence %q", tree.Sentence())
	}
}

func TestPropagateSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.tree")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelDebug)
	for _, records := range [][]Record{flatTree(), discontinuousTree(), deeperTree()} {
		tree := buildAndPropagate(t, records)
		tree.Dump()
		for _, n := range tree.Nodes() {
			if !n.Span.Equals(leafSpan(n)) {
				t.Errorf("span of %s differs from union of its leaves %s", n, leafSpan(n))
			}
		}
		var all lcfrs.Span
		for _, leaf := range tree.Leaves() {
			all = all.Union(leaf.Span)
		}
		if len(all) != len(tree.Leaves()) || all[len(all)-1] != uint64(len(all)-1) {
			t.Errorf("expected leaf spans to be {0…%d}, are %s", len(tree.Leaves())-1, all)
		}
	}
}

func TestDiscontinuousSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.tree")
	defer teardown()
	//
	tree := buildAndPropagate(t, discontinuousTree())
	vp, _ := tree.Node("500")
	if !vp.Span.Equals(lcfrs.Span{0, 2}) {
		t.Errorf("expected VP to span {0,2}, spans %s", vp.Span)
	}
	if vp.Span.FanOut() != 2 {
		t.Errorf("expected VP to have fan-out 2, has %d", vp.Span.FanOut())
	}
	s, _ := tree.Node("501")
	if !s.Span.Equals(lcfrs.Span{0, 1, 2}) {
		t.Errorf("expected S to span {0,1,2}, spans %s", s.Span)
	}
	if len(tree.Resolved()) != 2 || tree.Resolved()[0] != vp {
		t.Errorf("expected VP to be resolved before S")
	}
}

func TestDaughterOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.tree")
	defer teardown()
	//
	tree := buildAndPropagate(t, discontinuousTree(), WithDaughterOrder(OrderByPosition))
	s, _ := tree.Node("501")
	if s.Daughters[0].Label != "VP" || s.Daughters[1].Label != "B" {
		t.Errorf("expected daughters of S ordered by position to be [VP B], are %v", s.Daughters)
	}
	tree = buildAndPropagate(t, discontinuousTree(), WithDaughterOrder(OrderAsDeclared))
	s, _ = tree.Node("501")
	if s.Daughters[0].Label != "B" || s.Daughters[1].Label != "VP" {
		t.Errorf("expected declared daughters of S to be [B VP], are %v", s.Daughters)
	}
}

func TestParseDaughterOrder(t *testing.T) {
	if o, err := ParseDaughterOrder("Declared"); err != nil || o != OrderAsDeclared {
		t.Errorf("expected 'Declared' to parse as declared order, is %v / %v", o, err)
	}
	if o, err := ParseDaughterOrder(""); err != nil || o != OrderByPosition {
		t.Errorf("expected empty order to default to position, is %v / %v", o, err)
	}
	if _, err := ParseDaughterOrder("random"); err == nil {
		t.Errorf("expected error for unknown daughter order")
	}
}

func TestRootAttachedLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.tree")
	defer teardown()
	//
	tree := buildAndPropagate(t, deeperTree())
	roots := tree.Roots()
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, have %d", len(roots))
	}
	if roots[0].Label != "S" || roots[1].Label != "$." {
		t.Errorf("expected roots [S $.], have %v", roots)
	}
	s, _ := tree.Node("503")
	if !s.Span.Equals(lcfrs.Span{0, 1, 2, 3, 4, 5}) {
		t.Errorf("expected S to span {0…5}, spans %s", s.Span)
	}
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.tree")
	defer teardown()
	//
	tree := buildAndPropagate(t, deeperTree())
	var labels []string
	var depths []int
	err := tree.Walk(func(n *Node, depth int) error {
		labels = append(labels, n.Label)
		depths = append(depths, depth)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"S", "VAFIN", "PPER", "VP", "ADV", "NP", "ART", "NN", "VVPP", "$."}
	if len(labels) != len(expected) {
		t.Fatalf("expected %d nodes visited, have %d: %v", len(expected), len(labels), labels)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("expected node #%d visited to be %s, is %s", i, expected[i], labels[i])
		}
	}
	if depths[6] != 3 {
		t.Errorf("expected ART at depth 3, is at %d", depths[6])
	}
	stop := errors.New("stop")
	if err := tree.Walk(func(*Node, int) error { return stop }); err != stop {
		t.Errorf("expected walk to return visitor error, returned %v", err)
	}
}

func TestBuildErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.tree")
	defer teardown()
	//
	var inputs = [][]Record{
		{{"a", "A", "500"}, {"#500", "S", "0"}, {"#500", "S", "0"}},
		{{"a", "A", "501"}, {"#500", "S", "0"}},
		{{"a", "A", "500"}, {"#500", "S", "777"}},
		{{"a", "", "500"}, {"#500", "S", "0"}},
		{{"a", "A", "500"}, {"#", "S", "0"}},
		{{"a", "A", "500"}, {"#500", "X", "501"}, {"#501", "Y", "500"}},
		{{"a", "A", "500"}, {"#500", "X", "500"}},
	}
	var expected = []error{
		ErrMalformedTree,
		ErrMalformedTree,
		ErrMalformedTree,
		ErrMalformedRecord,
		ErrMalformedRecord,
		ErrCyclicMotherhood,
		ErrCyclicMotherhood,
	}
	for i, records := range inputs {
		_, err := Build(records)
		if !errors.Is(err, expected[i]) {
			t.Errorf("input #%d: expected error %v, got %v", i, expected[i], err)
		}
	}
}

func TestUnresolvableTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.tree")
	defer teardown()
	//
	records := []Record{
		{"a", "A", "501"},
		{"#500", "EMPTY", "501"},
		{"#501", "S", "0"},
	}
	tree, err := Build(records)
	if err != nil {
		t.Fatal(err)
	}
	err = tree.Propagate()
	if !errors.Is(err, ErrUnresolvableTree) {
		t.Errorf("expected unresolvable tree, got %v", err)
	}
	if len(tree.Resolved()) != 0 {
		t.Errorf("expected no resolved nodes after failure")
	}
}
