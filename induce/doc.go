/*
Package induce drives grammar induction over a corpus.

For every sentence of a corpus, the tree is built and spans are propagated.
Every leaf contributes a terminal rule, every internal node a rule rewriting
to its daughters. Rules are merged into a grammar store, which discards
duplicates.

	ind := induce.New(grammar.NewStore(), induce.WithWorkers(4))
	report, err := ind.Run(ctx, reader)

Trees failing to build are skipped and listed in the run report, unless
the inducer is strict. With more than one worker, trees are processed in
batches: rules are induced concurrently and merged in corpus order after each
batch, making the resulting store independent of the number of workers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package induce

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lcfrs.induce'.
func tracer() tracing.Trace {
	return tracing.Select("lcfrs.induce")
}
