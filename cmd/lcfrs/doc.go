/*
Command lcfrs induces LCFRS grammars from treebanks in NeGra export format.

	lcfrs induce [-o rules.txt] [--order position|declared] [--workers n] corpus.export...
	lcfrs repl [--init file]
	lcfrs version

Sub-command induce reads all corpora given as arguments, merges the rules
of every tree into one grammar, and writes the grammar's rules in
lexicographic order, one per line. Sub-command repl starts an interactive
sandbox: NeGra sentences pasted into it are drawn as trees and their rules
are printed.

Settings are read from lcfrs.yaml (if present, or from the file given by
--config), from environment variables prefixed with LCFRS_, and from the
command line, with later sources taking precedence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lcfrs.cli'.
func tracer() tracing.Trace {
	return tracing.Select("lcfrs.cli")
}
