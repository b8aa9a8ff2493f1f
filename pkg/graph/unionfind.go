package graph

// DisjointSet implements a union-find over airport codes with path
// compression and union by rank. It is scoped to a single computation.
type DisjointSet struct {
	parent map[string]string
	rank   map[string]int
	count  int
}

// NewDisjointSet creates a DisjointSet where every element is its own set.
func NewDisjointSet(elements []string) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[string]string, len(elements)),
		rank:   make(map[string]int, len(elements)),
	}
	for _, e := range elements {
		if _, ok := ds.parent[e]; ok {
			continue
		}
		ds.parent[e] = e
		ds.count++
	}
	return ds
}

// Find returns the representative of the set containing x. Every node on
// the walked path is re-pointed directly at the root. Unknown elements are
// their own representative.
func (ds *DisjointSet) Find(x string) string {
	root := x
	for {
		p, ok := ds.parent[root]
		if !ok || p == root {
			break
		}
		root = p
	}
	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets containing x and y. Returns false if already same set
// or if either element is unknown.
func (ds *DisjointSet) Union(x, y string) bool {
	if _, ok := ds.parent[x]; !ok {
		return false
	}
	if _, ok := ds.parent[y]; !ok {
		return false
	}
	rx := ds.Find(x)
	ry := ds.Find(y)
	if rx == ry {
		return false
	}

	// Union by rank; on a tie y's root goes under x's.
	if ds.rank[rx] < ds.rank[ry] {
		rx, ry = ry, rx
	}
	ds.parent[ry] = rx
	if ds.rank[rx] == ds.rank[ry] {
		ds.rank[rx]++
	}
	ds.count--
	return true
}

// Connected reports whether x and y share a representative.
func (ds *DisjointSet) Connected(x, y string) bool {
	return ds.Find(x) == ds.Find(y)
}

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int { return ds.count }
