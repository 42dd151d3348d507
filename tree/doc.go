/*
Package tree links the flat node records of a treebank sentence to a tree
and computes the span of every node.

A sentence arrives as an ordered list of records. Leaf records carry the word
they stand for; internal records carry an identifier prefixed by the reserved
marker '#'. Every record names its mother, with "0" denoting the virtual root.
The order of leaf records is authoritative: it defines the terminal positions
0…n-1.

Spans are computed bottom-up. Since mother links give no guarantee about tree
depth or well-formedness, span propagation runs as a worklist over unresolved
nodes rather than as a recursive post-order walk. A worklist round without
progress reveals a node which can never be resolved.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lcfrs.tree'.
func tracer() tracing.Trace {
	return tracing.Select("lcfrs.tree")
}
