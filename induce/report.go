package induce

import (
	"fmt"
	"io"

	"github.com/npillmayer/lcfrs/grammar"
)

// Report summarizes a corpus run.
type Report struct {
	Read        int    // sentences read
	Induced     int    // trees contributing rules
	Skipped     []Skip // trees which could not be induced
	Added       int    // rules new to the grammar store
	Grammar     grammar.Stats
	Fingerprint string // digest of the resulting grammar
}

func (rep *Report) summarize(store *grammar.Store) error {
	rep.Grammar = store.Stats()
	fp, err := store.Fingerprint()
	if err != nil {
		return err
	}
	rep.Fingerprint = fp
	return nil
}

// Print writes a human readable summary of a report.
func (rep *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "trees read:       %d\n", rep.Read)
	fmt.Fprintf(w, "trees induced:    %d\n", rep.Induced)
	fmt.Fprintf(w, "trees skipped:    %d\n", len(rep.Skipped))
	for _, s := range rep.Skipped {
		fmt.Fprintf(w, "    %s\n", s)
	}
	fmt.Fprintf(w, "rules:            %d (%d new)\n", rep.Grammar.Rules, rep.Added)
	fmt.Fprintf(w, "    terminal:     %d\n", rep.Grammar.Terminal)
	fmt.Fprintf(w, "    nonterminal:  %d\n", rep.Grammar.Nonterminal)
	fmt.Fprintf(w, "max fan-out:      %d\n", rep.Grammar.MaxFanOut)
	fmt.Fprintf(w, "max rank:         %d\n", rep.Grammar.MaxRank)
	fmt.Fprintf(w, "fingerprint:      %s\n", rep.Fingerprint)
}
