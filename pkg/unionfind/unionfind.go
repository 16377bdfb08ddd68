// Package unionfind implements a disjoint-set forest over a fixed integer
// domain, with iterative path compression.
package unionfind

// Forest partitions the domain [0, n) into equivalence classes. The zero
// value is not usable; construct with New.
type Forest struct {
	parent []int
}

// New returns a Forest of n singleton classes.
func New(n int) *Forest {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &Forest{parent: parent}
}

// Size returns the domain size the Forest was created with.
func (f *Forest) Size() int {
	return len(f.parent)
}

// Find returns the canonical representative of x's class. Every node on
// the path from x to the root is relinked directly to the root.
func (f *Forest) Find(x int) int {
	r := x
	for f.parent[r] != r {
		r = f.parent[r]
	}
	for i := x; f.parent[i] != r; {
		next := f.parent[i]
		f.parent[i] = r
		i = next
	}
	return r
}

// Join merges x's class into y's. The second argument's root becomes the
// root of the merged class.
func (f *Forest) Join(x, y int) {
	f.parent[f.Find(x)] = f.Find(y)
}

// Same reports whether x and y are in the same class.
func (f *Forest) Same(x, y int) bool {
	return f.Find(x) == f.Find(y)
}
