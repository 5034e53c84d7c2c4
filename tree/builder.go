package tree

import "fmt"

// Builder constructs trees through an internal cursor. One builder can
// produce a sequence of trees that are variations of one another: Build
// publishes the current structure, and the next mutation copies it, so every
// handle Build has returned stays exactly as it was.
//
// A builder is single-owner; concurrent use is not supported.
type Builder[T any] struct {
	a   *arena[T]
	cur int
}

// NewBuilder returns an empty builder. CreateRoot must be called before any
// other operation.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// CreateRoot starts a fresh tree holding data, discarding any structure the
// builder held, and places the cursor on the root.
func (b *Builder[T]) CreateRoot(data T) {
	b.a = &arena[T]{nodes: []node[T]{{data: data, parent: -1}}}
	b.cur = 0
}

// MoveToParent moves the cursor up one level. It fails at the root.
func (b *Builder[T]) MoveToParent() error {
	if err := b.initialized(); err != nil {
		return err
	}
	p := b.a.nodes[b.cur].parent
	if p < 0 {
		return fmt.Errorf("%w: already at root, cannot move to parent", ErrTree)
	}
	b.cur = p
	return nil
}

// MoveToChild moves the cursor to the i-th child of the cursor node.
func (b *Builder[T]) MoveToChild(i int) error {
	if err := b.initialized(); err != nil {
		return err
	}
	children := b.a.nodes[b.cur].children
	if i < 0 || i >= len(children) {
		return fmt.Errorf("%w: child %d out of range, node has %d children",
			ErrTree, i, len(children))
	}
	b.cur = children[i]
	return nil
}

// MoveToRoot moves the cursor back to the root.
func (b *Builder[T]) MoveToRoot() error {
	if err := b.initialized(); err != nil {
		return err
	}
	b.cur = 0
	return nil
}

// SetData replaces the value on the cursor node.
func (b *Builder[T]) SetData(data T) error {
	if err := b.initialized(); err != nil {
		return err
	}
	b.own()
	b.a.nodes[b.cur].data = data
	return nil
}

// AddChild appends a child holding data to the cursor node. With move set,
// the cursor descends into the new child.
func (b *Builder[T]) AddChild(data T, move bool) error {
	if err := b.initialized(); err != nil {
		return err
	}
	b.own()
	idx := len(b.a.nodes)
	b.a.nodes = append(b.a.nodes, node[T]{data: data, parent: b.cur})
	b.a.nodes[b.cur].children = append(b.a.nodes[b.cur].children, idx)
	if move {
		b.cur = idx
	}
	return nil
}

// RemoveChild detaches the i-th child subtree of the cursor node. The
// detached nodes stay in the arena but are unreachable from any handle.
func (b *Builder[T]) RemoveChild(i int) error {
	if err := b.initialized(); err != nil {
		return err
	}
	children := b.a.nodes[b.cur].children
	if i < 0 || i >= len(children) {
		return fmt.Errorf("%w: child %d out of range, node has %d children",
			ErrTree, i, len(children))
	}
	b.own()
	cs := b.a.nodes[b.cur].children
	b.a.nodes[b.cur].children = append(cs[:i:i], cs[i+1:]...)
	return nil
}

// Build publishes the current structure as an immutable handle on the root.
// The builder keeps its cursor position and may continue mutating; the first
// mutation after Build works on a copy.
func (b *Builder[T]) Build() (Tree[T], error) {
	if err := b.initialized(); err != nil {
		return Tree[T]{}, err
	}
	b.a.published = true
	return Tree[T]{a: b.a, idx: 0}, nil
}

// own gives the builder a private arena to mutate. Node indices are stable
// across the copy, so the cursor carries over unchanged.
func (b *Builder[T]) own() {
	if b.a.published {
		b.a = b.a.clone()
	}
}

func (b *Builder[T]) initialized() error {
	if b.a == nil {
		return fmt.Errorf("%w: builder has no root yet", ErrTree)
	}
	return nil
}
