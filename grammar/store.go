package grammar

import (
	"bufio"
	"io"
	"sync"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
)

// Store is a grammar, i.e. a set of rules keyed by their canonical text.
// A rule is added only if no rule with identical text is already present.
// Rules are retained in the order they have first been seen.
//
// A store may be shared between goroutines.
type Store struct {
	mu    sync.Mutex
	rules *linkedhashmap.Map // canonical text → *Rule
}

// NewStore creates an empty grammar store.
func NewStore() *Store {
	return &Store{rules: linkedhashmap.New()}
}

// Add adds a rule to the store, if its canonical text is not yet present.
// Returns true if the rule has been added.
func (s *Store) Add(r *Rule) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(r)
}

func (s *Store) add(r *Rule) bool {
	if r == nil {
		return false
	}
	if _, found := s.rules.Get(r.String()); found {
		return false
	}
	s.rules.Put(r.String(), r)
	tracer().Debugf("new rule %s", r)
	return true
}

// Merge adds a list of rules, in order, under a single lock.
// Returns the number of rules added.
func (s *Store) Merge(rules []*Rule) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range rules {
		if s.add(r) {
			n++
		}
	}
	return n
}

// Contains checks for a rule by its canonical text.
func (s *Store) Contains(form string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, found := s.rules.Get(form)
	return found
}

// Size returns the number of rules.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rules.Size()
}

// Rules returns all rules in the order they have first been added.
func (s *Store) Rules() []*Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.rules.Values()
	rules := make([]*Rule, len(values))
	for i, v := range values {
		rules[i] = v.(*Rule)
	}
	return rules
}

// Sorted returns the canonical texts of all rules, sorted lexicographically.
func (s *Store) Sorted() []string {
	s.mu.Lock()
	set := treeset.NewWith(utils.StringComparator, s.rules.Keys()...)
	s.mu.Unlock()
	forms := make([]string, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		forms = append(forms, it.Value().(string))
	}
	return forms
}

// WriteTo writes the sorted rules to w, one rule per line.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, form := range s.Sorted() {
		m, err := bw.WriteString(form + "\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Stats summarizes a grammar.
type Stats struct {
	Rules       int // number of rules
	Terminal    int // rules rewriting to Epsilon
	Nonterminal int // rules with right-hand-side predicates
	MaxFanOut   int // maximum number of left-hand-side arguments
	MaxRank     int // maximum number of right-hand-side predicates
}

// Stats computes summary figures for the rules of a store.
func (s *Store) Stats() Stats {
	var st Stats
	for _, r := range s.Rules() {
		st.Rules++
		if r.IsTerminal() {
			st.Terminal++
		} else {
			st.Nonterminal++
		}
		if r.FanOut() > st.MaxFanOut {
			st.MaxFanOut = r.FanOut()
		}
		if r.Rank() > st.MaxRank {
			st.MaxRank = r.Rank()
		}
	}
	return st
}

// Fingerprint is a digest of the set of rules in a store. It does not depend
// on the order in which rules have been added.
func (s *Store) Fingerprint() (string, error) {
	digest := struct {
		Rules []string
	}{
		Rules: s.Sorted(),
	}
	h, err := structhash.Hash(digest, 1)
	if err != nil {
		return "", errors.Wrap(err, "cannot hash grammar")
	}
	return h, nil
}
