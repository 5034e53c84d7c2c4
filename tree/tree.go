// Package tree provides an immutable tree, a cursor-based builder that can
// stamp out many structurally independent trees via copy-on-write, and the
// construction of dependency trees from flat record lists.
//
// Nodes live in an arena and refer to each other by index, so publishing a
// tree and copying it are both cheap slice operations and no node owns a
// pointer back into mutable structure.
package tree

import "errors"

// ErrTree reports a structural error: cursor misuse on a builder, or a record
// list that does not form a single-rooted tree.
var ErrTree = errors.New("tree error")

type node[T any] struct {
	data     T
	parent   int // index into the arena, -1 at the root
	children []int
}

type arena[T any] struct {
	nodes []node[T]

	// published is set once a Tree handle refers to this arena; the next
	// builder mutation must copy first.
	published bool
}

func (a *arena[T]) clone() *arena[T] {
	nodes := make([]node[T], len(a.nodes))
	copy(nodes, a.nodes)
	for i := range nodes {
		nodes[i].children = append([]int(nil), nodes[i].children...)
	}
	return &arena[T]{nodes: nodes}
}

// Tree is a read-only handle on one node. The zero value is not a valid
// tree; obtain one from Builder.Build or by navigating another handle.
// Handles are immutable and safe to share between goroutines.
type Tree[T any] struct {
	a   *arena[T]
	idx int
}

// Data returns the value stored on this node.
func (t Tree[T]) Data() T { return t.a.nodes[t.idx].data }

// Parent returns the parent handle, or false at the root.
func (t Tree[T]) Parent() (Tree[T], bool) {
	p := t.a.nodes[t.idx].parent
	if p < 0 {
		return Tree[T]{}, false
	}
	return Tree[T]{a: t.a, idx: p}, true
}

// Len returns the number of direct children.
func (t Tree[T]) Len() int { return len(t.a.nodes[t.idx].children) }

// Child returns the i-th child. It panics when i is out of range, like a
// slice index.
func (t Tree[T]) Child(i int) Tree[T] {
	return Tree[T]{a: t.a, idx: t.a.nodes[t.idx].children[i]}
}

// Children returns handles on the direct children in order.
func (t Tree[T]) Children() []Tree[T] {
	idxs := t.a.nodes[t.idx].children
	out := make([]Tree[T], len(idxs))
	for i, ci := range idxs {
		out[i] = Tree[T]{a: t.a, idx: ci}
	}
	return out
}

// Walk visits the subtree rooted here depth-first, pre-order.
func (t Tree[T]) Walk(visit func(Tree[T])) {
	visit(t)
	for _, c := range t.Children() {
		c.Walk(visit)
	}
}

// Size returns the number of nodes in the subtree rooted here.
func (t Tree[T]) Size() int {
	n := 0
	t.Walk(func(Tree[T]) { n++ })
	return n
}
