package bmssp

import "fmt"

// heapItem is one (vertex, distance) pair stored in the heap array.
type heapItem struct {
	v    int
	dist float64
}

// MinHeap is an addressable binary min-heap over (vertex, distance) pairs.
//
// Unlike the lazy queue in package dijkstra, which tolerates duplicate
// entries, MinHeap keeps at most one entry per vertex and supports true
// DecreaseKey through a vertex→slot index. The base case of the recursive
// solver uses it to settle vertices in non-decreasing distance order.
//
// Ties between equal distances are broken by heap structure: deterministic
// for a given operation sequence, but otherwise unspecified. Callers must
// only rely on extraction order being non-decreasing in distance.
//
// DecreaseKey on an absent vertex, or with a distance that is not strictly
// smaller than the current key, panics: by contract that is a programming
// error in the caller, not a runtime condition to recover from.
type MinHeap struct {
	items []heapItem
	pos   map[int]int // vertex → index in items
}

// NewMinHeap returns an empty heap with capacity for hint items.
func NewMinHeap(hint int) *MinHeap {
	if hint < 0 {
		hint = 0
	}

	return &MinHeap{
		items: make([]heapItem, 0, hint),
		pos:   make(map[int]int, hint),
	}
}

// Len returns the number of contained vertices.
func (h *MinHeap) Len() int { return len(h.items) }

// Contains reports whether v is currently in the heap.
func (h *MinHeap) Contains(v int) bool {
	_, ok := h.pos[v]

	return ok
}

// Insert adds vertex v with the given distance.
// Inserting a vertex that is already contained panics; callers decide
// between Insert and DecreaseKey via Contains.
func (h *MinHeap) Insert(v int, dist float64) {
	if _, ok := h.pos[v]; ok {
		panic(fmt.Sprintf("bmssp: heap insert of contained vertex %d", v))
	}

	h.items = append(h.items, heapItem{v: v, dist: dist})
	h.pos[v] = len(h.items) - 1
	h.siftUp(len(h.items) - 1)
}

// ExtractMin removes and returns a vertex with the smallest distance.
// ok is false when the heap is empty.
func (h *MinHeap) ExtractMin() (v int, dist float64, ok bool) {
	if len(h.items) == 0 {
		return 0, 0, false
	}

	top := h.items[0]
	last := len(h.items) - 1
	h.swap(0, last)
	h.items = h.items[:last]
	delete(h.pos, top.v)
	if last > 0 {
		h.siftDown(0)
	}

	return top.v, top.dist, true
}

// DecreaseKey lowers the distance of a contained vertex.
// Panics if v is absent or dist is not strictly smaller than the current key.
func (h *MinHeap) DecreaseKey(v int, dist float64) {
	i, ok := h.pos[v]
	if !ok {
		panic(fmt.Sprintf("bmssp: decrease-key on absent vertex %d", v))
	}
	if dist >= h.items[i].dist {
		panic(fmt.Sprintf("bmssp: decrease-key on vertex %d from %g to %g is not a decrease", v, h.items[i].dist, dist))
	}

	h.items[i].dist = dist
	h.siftUp(i)
}

func (h *MinHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].v] = i
	h.pos[h.items[j].v] = j
}

func (h *MinHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].dist <= h.items[i].dist {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *MinHeap) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.items[left].dist < h.items[smallest].dist {
			smallest = left
		}
		if right < n && h.items[right].dist < h.items[smallest].dist {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
