package induce

import (
	"context"
	"fmt"
	"io"

	"github.com/npillmayer/lcfrs/grammar"
	"github.com/npillmayer/lcfrs/negra"
	"github.com/npillmayer/lcfrs/tree"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultProgressInterval is the number of trees between progress notifications.
const DefaultProgressInterval = 100

// Source delivers the sentences of a corpus. Next returns io.EOF after the
// last sentence. *negra.Reader is a Source.
type Source interface {
	Next() (*negra.Sentence, error)
}

var _ Source = (*negra.Reader)(nil)

// Notifier receives progress notifications: the number of trees processed so
// far, and whether induction is complete.
type Notifier func(trees int, complete bool)

// Inducer induces rules from the sentences of a corpus into a grammar store.
type Inducer struct {
	store   *grammar.Store
	order   tree.DaughterOrder
	strict  bool
	workers int
	every   int
	notify  Notifier
	onSkip  func(Skip)
}

// Option configures an inducer.
type Option func(*Inducer)

// WithDaughterOrder sets the daughter order for rule construction.
func WithDaughterOrder(order tree.DaughterOrder) Option {
	return func(ind *Inducer) {
		ind.order = order
	}
}

// Strict makes a run abort at the first tree which cannot be induced.
func Strict(strict bool) Option {
	return func(ind *Inducer) {
		ind.strict = strict
	}
}

// WithWorkers sets the number of goroutines inducing rules concurrently.
// n ≤ 1 selects sequential processing.
func WithWorkers(n int) Option {
	return func(ind *Inducer) {
		ind.workers = n
	}
}

// WithProgress installs a notifier, called every n trees and once at the end
// of a run.
func WithProgress(n int, notify Notifier) Option {
	return func(ind *Inducer) {
		if n > 0 {
			ind.every = n
		}
		ind.notify = notify
	}
}

// OnSkip installs a callback for trees which are skipped.
func OnSkip(f func(Skip)) Option {
	return func(ind *Inducer) {
		ind.onSkip = f
	}
}

// New creates an inducer merging rules into store.
func New(store *grammar.Store, opts ...Option) *Inducer {
	ind := &Inducer{
		store: store,
		every: DefaultProgressInterval,
	}
	for _, opt := range opts {
		opt(ind)
	}
	return ind
}

// Grammar returns the grammar store of an inducer.
func (ind *Inducer) Grammar() *grammar.Store {
	return ind.store
}

// Skip records a tree which has been skipped.
type Skip struct {
	Sentence string // sentence number
	Line     int    // line of the sentence in the corpus
	Err      error
}

func (s Skip) String() string {
	return fmt.Sprintf("sentence #%s (line %d): %v", s.Sentence, s.Line, s.Err)
}

// Induce induces the rules of a single sentence and merges them into the
// grammar store. It returns the number of new rules.
func (ind *Inducer) Induce(s *negra.Sentence) (int, error) {
	rules, err := ind.rules(s)
	if err != nil {
		return 0, err
	}
	return ind.store.Merge(rules), nil
}

func (ind *Inducer) rules(s *negra.Sentence) ([]*grammar.Rule, error) {
	t, err := s.Tree(tree.WithDaughterOrder(ind.order))
	if err != nil {
		return nil, errors.Wrapf(err, "sentence #%s", s.Number)
	}
	rules, err := RulesForTree(t)
	if err != nil {
		return nil, errors.Wrapf(err, "sentence #%s", s.Number)
	}
	return rules, nil
}

// Run induces rules for all sentences of a source. Trees which cannot be
// induced are skipped and listed in the report; a strict inducer stops at the
// first one and returns its error. Run stops if ctx is cancelled.
func (ind *Inducer) Run(ctx context.Context, src Source) (*Report, error) {
	r := &run{Inducer: ind, report: &Report{}}
	before := ind.store.Size()
	var err error
	if ind.workers > 1 {
		err = r.parallel(ctx, src)
	} else {
		err = r.sequential(ctx, src)
	}
	r.report.Added = ind.store.Size() - before
	if err != nil {
		return r.report, err
	}
	if ind.notify != nil {
		ind.notify(r.report.Read, true)
	}
	tracer().Infof("induction complete: %d trees, %d skipped, %d rules",
		r.report.Read, len(r.report.Skipped), ind.store.Size())
	if err = r.report.summarize(ind.store); err != nil {
		return r.report, err
	}
	return r.report, nil
}

// run holds the state of a single corpus run.
type run struct {
	*Inducer
	report *Report
}

func (r *run) sequential(ctx context.Context, src Source) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		rules, err := r.rules(s)
		if err = r.merge(s, rules, err); err != nil {
			return err
		}
	}
}

// result is the outcome of inducing a single sentence.
type result struct {
	sentence *negra.Sentence
	rules    []*grammar.Rule
	err      error
}

// batchSize is the number of trees per worker and batch.
const batchSize = 64

func (r *run) parallel(ctx context.Context, src Source) error {
	batch := make([]result, 0, batchSize*r.workers)
	for {
		batch = batch[:0]
		var eof bool
		for len(batch) < cap(batch) {
			s, err := src.Next()
			if err == io.EOF {
				eof = true
				break
			}
			if err != nil {
				return err
			}
			batch = append(batch, result{sentence: s})
		}
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.workers)
		for i := range batch {
			res := &batch[i]
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				res.rules, res.err = r.rules(res.sentence)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		tracer().Debugf("merging batch of %d trees", len(batch))
		for _, res := range batch {
			if err := r.merge(res.sentence, res.rules, res.err); err != nil {
				return err
			}
		}
		if eof {
			return nil
		}
	}
}

// merge adds the rules of a sentence to the store, or records the sentence
// as skipped. It returns an error only if the run has to stop.
func (r *run) merge(s *negra.Sentence, rules []*grammar.Rule, err error) error {
	r.report.Read++
	if err != nil {
		skip := Skip{Sentence: s.Number, Line: s.Line, Err: err}
		tracer().Errorf("skipping %s", skip)
		if r.strict {
			return err
		}
		r.report.Skipped = append(r.report.Skipped, skip)
		if r.onSkip != nil {
			r.onSkip(skip)
		}
	} else {
		r.store.Merge(rules)
		r.report.Induced++
	}
	if r.report.Read%r.every == 0 {
		tracer().Infof("%d trees complete", r.report.Read)
		if r.notify != nil {
			r.notify(r.report.Read, false)
		}
	}
	return nil
}
