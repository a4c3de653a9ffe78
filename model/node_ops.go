package model

// Resolve resolves pos against n.
func (n Node) Resolve(pos int) (ResolvedPos, error) {
	return Resolve(n, pos)
}

// Slice produces a Slice covering [from, to) of n.
func (n Node) Slice(from, to int, includeParents bool) (Slice, error) {
	return SliceRange(n, from, to, includeParents)
}

// Replace returns a copy of n with [from, to) replaced by slice.
func (n Node) Replace(from, to int, slice Slice) (Node, error) {
	return Replace(n, from, to, slice)
}
