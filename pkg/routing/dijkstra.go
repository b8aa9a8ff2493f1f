package routing

import (
	"math"

	"airgraph/pkg/graph"
)

// MinHeap is a concrete-typed min-heap for the Dijkstra priority queue.
// Avoids interface boxing overhead of container/heap. Entries with equal
// distance pop in ascending code order.
type MinHeap struct {
	items []PQItem
}

// PQItem is a priority queue entry.
type PQItem struct {
	Node string
	Dist float64
}

func (a PQItem) less(b PQItem) bool {
	if a.Dist != b.Dist {
		return a.Dist < b.Dist
	}
	return a.Node < b.Node
}

func (h *MinHeap) Len() int { return len(h.items) }

func (h *MinHeap) Push(node string, dist float64) {
	h.items = append(h.items, PQItem{node, dist})
	h.siftUp(len(h.items) - 1)
}

func (h *MinHeap) Pop() PQItem {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *MinHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.items[i].less(h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *MinHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.items[left].less(h.items[smallest]) {
			smallest = left
		}
		if right < n && h.items[right].less(h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

// Tree is the result of a single-source search.
type Tree struct {
	Source string
	Dist   map[string]float64 // every vertex; +Inf when unreachable
	Prev   map[string]string  // predecessor on a shortest path; absent for Source and unreachable vertices
}

// Reachable reports whether code was reached from the source.
func (t *Tree) Reachable(code string) bool {
	d, ok := t.Dist[code]
	return ok && !math.IsInf(d, 1)
}

// PathTo walks predecessors back from code to the source and returns the
// codes in travel order, or nil when code is unreachable.
func (t *Tree) PathTo(code string) []string {
	if !t.Reachable(code) {
		return nil
	}
	var path []string
	for node := code; ; {
		path = append(path, node)
		pred, ok := t.Prev[node]
		if !ok {
			break
		}
		node = pred
	}
	// Reverse to get source → code.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// dijkstra settles vertices from source in order of distance. When target
// is non-empty the search stops as soon as target is settled. Entries that
// are already settled or stale are skipped when popped.
func dijkstra(g *graph.Graph, source, target string) *Tree {
	t := &Tree{
		Source: source,
		Dist:   make(map[string]float64, g.VertexCount()),
		Prev:   make(map[string]string),
	}
	for _, c := range g.Codes() {
		t.Dist[c] = math.Inf(1)
	}
	t.Dist[source] = 0

	settled := make(map[string]struct{}, g.VertexCount())
	var pq MinHeap
	pq.Push(source, 0)

	for pq.Len() > 0 {
		item := pq.Pop()
		u := item.Node
		if _, done := settled[u]; done || item.Dist > t.Dist[u] {
			continue // stale entry
		}
		settled[u] = struct{}{}

		if u == target {
			break
		}

		for _, nb := range g.Neighbors(u) {
			if _, done := settled[nb.Code]; done {
				continue
			}
			alt := item.Dist + nb.Weight
			if alt < t.Dist[nb.Code] {
				t.Dist[nb.Code] = alt
				t.Prev[nb.Code] = u
				pq.Push(nb.Code, alt)
			}
		}
	}

	return t
}
