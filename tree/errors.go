package tree

import "github.com/pkg/errors"

// Error kinds for tree construction. All of them are local to a single tree:
// a tree failing with one of them contributes no rules.
var (
	// ErrMalformedRecord flags a record which cannot be split into id, label and mother.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMalformedTree flags a mother id which does not resolve to a node of the tree.
	ErrMalformedTree = errors.New("malformed tree")
	// ErrCyclicMotherhood flags mother links which do not terminate at the root.
	ErrCyclicMotherhood = errors.New("cyclic motherhood")
	// ErrUnresolvableTree flags a tree for which span propagation cannot reach a fixpoint.
	ErrUnresolvableTree = errors.New("unresolvable tree")
)
