package datastructure

import (
	"errors"
)

var ErrEmptyHeap = errors.New("heap is empty")

type PriorityQueueNode[T any] struct {
	rank float64
	tie  float64 // second key, compared only when ranks are equal
	item T
}

func (p PriorityQueueNode[T]) GetItem() T {
	return p.item
}

func (p PriorityQueueNode[T]) GetRank() float64 {
	return p.rank
}

func (p PriorityQueueNode[T]) GetTie() float64 {
	return p.tie
}

func NewPriorityQueueNode[T any](rank float64, item T) PriorityQueueNode[T] {
	return PriorityQueueNode[T]{rank: rank, item: item}
}

func NewPriorityQueueNodeWithTie[T any](rank, tie float64, item T) PriorityQueueNode[T] {
	return PriorityQueueNode[T]{rank: rank, tie: tie, item: item}
}

func (p PriorityQueueNode[T]) less(o PriorityQueueNode[T]) bool {
	if p.rank != o.rank {
		return p.rank < o.rank
	}
	return p.tie < o.tie
}

// MinHeap d-ary heap priorityqueue. there is no decrease-key: callers push a new node and
// skip the stale one when it is extracted.
type MinHeap[T any] struct {
	heap []PriorityQueueNode[T]
	d    int
}

func NewBinaryHeap[T any]() *MinHeap[T] {
	return NewdAryHeap[T](2)
}

func NewFourAryHeap[T any]() *MinHeap[T] {
	return NewdAryHeap[T](4)
}

func NewdAryHeap[T any](d int) *MinHeap[T] {
	if d < 2 {
		d = 2
	}
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		d:    d,
	}
}

func (h *MinHeap[T]) Preallocate(maxSearchSize int) {
	h.heap = make([]PriorityQueueNode[T], 0, maxSearchSize)
}

func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / h.d
}

// heapifyUp swap index with its parent while it is smaller. O(log_d N).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].less(h.heap[h.parent(index)]) {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown swap index with its smallest child while that child is smaller. O(d log_d N).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		leftMostChild := index*h.d + 1
		if leftMostChild >= len(h.heap) {
			return
		}

		sentinel := leftMostChild + h.d
		if sentinel > len(h.heap) {
			sentinel = len(h.heap)
		}

		smallest := leftMostChild
		for i := leftMostChild + 1; i < sentinel; i++ {
			if h.heap[i].less(h.heap[smallest]) {
				smallest = i
			}
		}

		if !h.heap[smallest].less(h.heap[index]) {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) Clear() {
	h.heap = h.heap[:0]
}

// GetMin peeks the root.
func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return PriorityQueueNode[T]{}, ErrEmptyHeap
	}
	return h.heap[0], nil
}

func (h *MinHeap[T]) Insert(node PriorityQueueNode[T]) {
	h.heap = append(h.heap, node)
	h.heapifyUp(len(h.heap) - 1)
}

// ExtractMin pops the root. O(d log_d N)
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return PriorityQueueNode[T]{}, ErrEmptyHeap
	}
	root := h.heap[0]
	last := len(h.heap) - 1
	h.swap(0, last)

	var zero PriorityQueueNode[T]
	h.heap[last] = zero
	h.heap = h.heap[:last]
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}

	return root, nil
}
