/*
Package grammar implements LCFRS predicates and rules, and a store for
collecting rules induced from a corpus.

Rules are read off tree nodes. The left-hand side of a rule is a predicate
named after the node's label, with one argument per contiguous component of
the node's span. The right-hand side holds one predicate per daughter,
again with one argument per component of the daughter's span:

    S(Y_0Y_1Y_2) → VP(Y_0,Y_2) B(Y_1)

Arguments are sequences of typed symbols, not strings. Contraction walks
the right-hand-side arguments in order, allocates a fresh variable for each
of them and substitutes it for the matching run of position symbols on the
left-hand side:

    S(X_0X_2X_1) → VP(X_0,X_1) B(X_2)

After contraction every argument consists of variables only, and the rule
is rendered to its canonical text, which identifies it:

    S(X_0X_2X_1)->VP(X_0,X_1)B(X_2)
    NN(Haus)->eps

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lcfrs.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lcfrs.grammar")
}
