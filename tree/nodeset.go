package tree

type nodeset map[*Node]struct{}

var exists = struct{}{}

func (set nodeset) add(n *Node) nodeset {
	if set == nil {
		set = nodeset{}
	}
	set[n] = exists
	return set
}

func (set nodeset) contains(n *Node) bool {
	if set == nil || n == nil {
		return false
	}
	_, ok := set[n]
	return ok
}
