package induce

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/lcfrs/grammar"
	"github.com/npillmayer/lcfrs/negra"
	"github.com/npillmayer/lcfrs/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
)

const discontinuous = `#BOS 1
a	a	A	--	HD	500
b	b	B	--	HD	501
c	c	C	--	HD	500
#500	--	VP	--	OC	501
#501	--	S	--	--	0
#EOS 1
`

const flat = `#BOS 2
Die	die	ART	--	NK	500
Katze	Katze	NN	--	NK	500
schläft	schlafen	VVFIN	--	HD	500
#500	--	S	--	--	0
#EOS 2
`

const broken = `#BOS 3
x	x	X	--	HD	777
#500	--	S	--	--	0
#EOS 3
`

func reader(t *testing.T, corpus string) *negra.Reader {
	r, err := negra.NewReader(strings.NewReader(corpus))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRulesForFlatTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.induce")
	defer teardown()
	//
	records := []tree.Record{
		{ID: "Die", Label: "ART", Mother: "500"},
		{ID: "Katze", Label: "NN", Mother: "500"},
		{ID: "schläft", Label: "VVFIN", Mother: "500"},
		{ID: "#500", Label: "S", Mother: "0"},
	}
	rules, err := RulesFor(records)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"ART(Die)->eps",
		"NN(Katze)->eps",
		"VVFIN(schläft)->eps",
		"S(X_0X_1X_2)->ART(X_0)NN(X_1)VVFIN(X_2)",
	}
	if len(rules) != len(expected) {
		t.Fatalf("expected %d rules, have %d", len(expected), len(rules))
	}
	for i, r := range rules {
		if r.String() != expected[i] {
			t.Errorf("expected rule #%d to be %s, is %s", i, expected[i], r)
		}
	}
}

func TestRulesForDaughterOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.induce")
	defer teardown()
	//
	records := []tree.Record{
		{ID: "a", Label: "A", Mother: "500"},
		{ID: "b", Label: "B", Mother: "501"},
		{ID: "c", Label: "C", Mother: "500"},
		{ID: "#500", Label: "VP", Mother: "501"},
		{ID: "#501", Label: "S", Mother: "0"},
	}
	rules, err := RulesFor(records)
	if err != nil {
		t.Fatal(err)
	}
	if rules[4].String() != "S(X_0X_2X_1)->VP(X_0,X_1)B(X_2)" {
		t.Errorf("unexpected rule %s", rules[4])
	}
	rules, err = RulesFor(records, tree.WithDaughterOrder(tree.OrderAsDeclared))
	if err != nil {
		t.Fatal(err)
	}
	if rules[4].String() != "S(X_1X_0X_2)->B(X_0)VP(X_1,X_2)" {
		t.Errorf("unexpected rule in declared order %s", rules[4])
	}
}

func TestRunSkipsBrokenTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.induce")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelInfo)
	var skipped []Skip
	ind := New(grammar.NewStore(), OnSkip(func(s Skip) { skipped = append(skipped, s) }))
	report, err := ind.Run(context.Background(), reader(t, discontinuous+broken+flat))
	if err != nil {
		t.Fatal(err)
	}
	if report.Read != 3 || report.Induced != 2 || len(report.Skipped) != 1 {
		t.Errorf("unexpected report %+v", report)
	}
	if len(skipped) != 1 || skipped[0].Sentence != "3" {
		t.Errorf("expected sentence #3 to be skipped, have %v", skipped)
	}
	if !errors.Is(report.Skipped[0].Err, tree.ErrMalformedTree) {
		t.Errorf("expected malformed tree, got %v", report.Skipped[0].Err)
	}
	// 3 + 2 rules from the discontinuous tree, 3 + 1 from the flat one
	if ind.Grammar().Size() != 9 || report.Added != 9 || report.Grammar.Rules != 9 {
		t.Errorf("expected 9 rules, have %d", ind.Grammar().Size())
	}
	if report.Grammar.MaxFanOut != 2 {
		t.Errorf("expected max fan-out 2, is %d", report.Grammar.MaxFanOut)
	}
	if report.Fingerprint == "" {
		t.Errorf("expected report to carry a fingerprint")
	}
}

func TestStrictRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.induce")
	defer teardown()
	//
	ind := New(grammar.NewStore(), Strict(true))
	report, err := ind.Run(context.Background(), reader(t, discontinuous+broken+flat))
	if !errors.Is(err, tree.ErrMalformedTree) {
		t.Errorf("expected strict run to fail with malformed tree, got %v", err)
	}
	if report.Induced != 1 || ind.Grammar().Size() != 5 {
		t.Errorf("expected only the first tree to be induced, have %d trees and %d rules",
			report.Induced, ind.Grammar().Size())
	}
}

func TestRunIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.induce")
	defer teardown()
	//
	ind := New(grammar.NewStore())
	if _, err := ind.Run(context.Background(), reader(t, discontinuous+flat)); err != nil {
		t.Fatal(err)
	}
	report, err := ind.Run(context.Background(), reader(t, flat+discontinuous))
	if err != nil {
		t.Fatal(err)
	}
	if report.Added != 0 || ind.Grammar().Size() != 9 {
		t.Errorf("expected second run to add no rules, added %d", report.Added)
	}
}

// corpus generates n sentences, alternating between flat and discontinuous
// trees over varying words.
func corpus(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		w := fmt.Sprintf("w%d", i%17)
		if i%2 == 0 {
			fmt.Fprintf(&b, "#BOS %d\n%s\t-\tA\t-\t-\t500\nb\t-\tB\t-\t-\t501\nc\t-\tC\t-\t-\t500\n", i, w)
			fmt.Fprintf(&b, "#500\t-\tVP\t-\t-\t501\n#501\t-\tS\t-\t-\t0\n#EOS %d\n", i)
		} else {
			fmt.Fprintf(&b, "#BOS %d\n%s\t-\tN\t-\t-\t500\n#500\t-\tNP\t-\t-\t0\n#EOS %d\n", i, w, i)
		}
	}
	return b.String()
}

func TestParallelRunMatchesSequential(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcfrs.induce")
	defer teardown()
	//
	input := corpus(1000) + broken
	seq := New(grammar.NewStore())
	r1, err := seq.Run(context.Background(), reader(t, input))
	if err != nil {
		t.Fatal(err)
	}
	var notified []int
	var complete bool
	par := New(grammar.NewStore(), WithWorkers(4), WithProgress(250, func(n int, done bool) {
		if done {
			complete = true
			return
		}
		notified = append(notified, n)
	}))
	r2, err := par.Run(context.Background(), reader(t, input))
	if err != nil {
		t.Fatal(err)
	}
	if r1.Fingerprint != r2.Fingerprint || r1.Read != 1001 || r2.Read != 1001 {
		t.Errorf("expected identical grammars, have %d and %d rules",
			r1.Grammar.Rules, r2.Grammar.Rules)
	}
	if len(r2.Skipped) != 1 {
		t.Errorf("expected one skipped tree in parallel run, have %d", len(r2.Skipped))
	}
	s1, s2 := seq.Grammar().Rules(), par.Grammar().Rules()
	for i := range s1 {
		if s1[i].String() != s2[i].String() {
			t.Errorf("expected identical first-seen order, differs at rule #%d", i)
			break
		}
	}
	if len(notified) != 4 || notified[3] != 1000 || !complete {
		t.Errorf("unexpected progress notifications %v (complete=%v)", notified, complete)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ind := New(grammar.NewStore())
	if _, err := ind.Run(ctx, reader(t, flat)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancelled run, got %v", err)
	}
}
