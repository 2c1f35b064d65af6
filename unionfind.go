package agglo

// UnionFind is a disjoint-set forest over linkage node IDs. It holds
// 2*n - 1 slots: leaves 0..n-1 and one slot per merge, numbered from n,
// so a linkage matrix can be replayed without renumbering.
type UnionFind struct {
	parent []int
	size   []int
	// nextLabel is the ID for the next merged node, starting at n.
	nextLabel int
}

// NewUnionFind creates a UnionFind for n leaves.
func NewUnionFind(n int) *UnionFind {
	total := max(2*n-1, 1)
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // root
	}
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	return &UnionFind{
		parent:    parent,
		size:      size,
		nextLabel: n,
	}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Size returns the number of leaves in the set containing x.
func (uf *UnionFind) Size(x int) int { return uf.size[uf.Find(x)] }

// Link merges the sets containing x and y under a fresh node, the next
// merged ID, and returns that ID. It returns -1 if x and y are already in
// the same set or no merged IDs are left.
func (uf *UnionFind) Link(x, y int) int {
	rootX, rootY := uf.Find(x), uf.Find(y)
	if rootX == rootY || uf.nextLabel >= len(uf.parent) {
		return -1
	}
	id := uf.nextLabel
	uf.parent[rootX] = id
	uf.parent[rootY] = id
	uf.size[id] = uf.size[rootX] + uf.size[rootY]
	uf.nextLabel++
	return id
}

// Next returns the ID the next Link will assign.
func (uf *UnionFind) Next() int { return uf.nextLabel }
