package datastructure

import (
	"golang.org/x/exp/constraints"
)

// noCopy makes go vet (copylocks) report an OrderedMap passed by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type treeNode[K any, V any] struct {
	key   K
	val   V
	left  *treeNode[K, V]
	right *treeNode[K, V]
}

/*
OrderedMap. unbalanced binary search tree keyed by a three-way comparator.
associate & find are O(depth). there is no rebalancing: the maps built from a map file are small,
for bigger inputs swap the tree for a balanced one behind the same methods.

all operations are iterative, so a degenerate (list shaped) tree can't blow the goroutine stack.
*/
type OrderedMap[K any, V any] struct {
	noCopy noCopy

	root *treeNode[K, V]
	size int
	cmp  func(a, b K) int
}

func NewOrderedMap[K any, V any](cmp func(a, b K) int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{cmp: cmp}
}

func NewOrderedMapOf[K constraints.Ordered, V any]() *OrderedMap[K, V] {
	return NewOrderedMap[K, V](func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

func (m *OrderedMap[K, V]) Size() int {
	return m.size
}

// Clear drops every entry. the nodes are unreachable after the root is dropped, no per node walk needed.
func (m *OrderedMap[K, V]) Clear() {
	m.root = nil
	m.size = 0
}

// Associate inserts key or overwrites its value.
func (m *OrderedMap[K, V]) Associate(key K, val V) {
	link := &m.root
	for *link != nil {
		c := m.cmp(key, (*link).key)
		switch {
		case c == 0:
			(*link).val = val
			return
		case c < 0:
			link = &(*link).left
		default:
			link = &(*link).right
		}
	}
	*link = &treeNode[K, V]{key: key, val: val}
	m.size++
}

// Find returns a pointer to the stored value, or nil if key is absent.
// the pointer stays valid until Clear.
func (m *OrderedMap[K, V]) Find(key K) *V {
	cur := m.root
	for cur != nil {
		c := m.cmp(key, cur.key)
		switch {
		case c == 0:
			return &cur.val
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

func (m *OrderedMap[K, V]) Contains(key K) bool {
	return m.Find(key) != nil
}

// ForEach visits entries in key order until handle returns false.
func (m *OrderedMap[K, V]) ForEach(handle func(key K, val *V) bool) {
	stack := make([]*treeNode[K, V], 0, 32)
	cur := m.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !handle(cur.key, &cur.val) {
			return
		}
		cur = cur.right
	}
}

// Depth is the height of the tree (0 when empty).
func (m *OrderedMap[K, V]) Depth() int {
	if m.root == nil {
		return 0
	}
	type item struct {
		node  *treeNode[K, V]
		depth int
	}
	maxDepth := 0
	stack := []item{{m.root, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth > maxDepth {
			maxDepth = it.depth
		}
		if it.node.left != nil {
			stack = append(stack, item{it.node.left, it.depth + 1})
		}
		if it.node.right != nil {
			stack = append(stack, item{it.node.right, it.depth + 1})
		}
	}
	return maxDepth
}
