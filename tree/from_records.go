package tree

import "fmt"

// FromRecords builds a dependency tree from a flat, order-independent record
// list. Each record names its parent by id through head; the single record
// whose head equals rootID becomes the root. Records matching skip (may be
// nil) do not participate in the tree at all. Children attach depth-first,
// pre-order, in record order.
//
// Errors wrap ErrTree: zero root candidates, more than one, or records whose
// head id is not reachable from the root.
func FromRecords[T any, I comparable](
	records []T,
	rootID I,
	id func(T) I,
	head func(T) I,
	skip func(T) bool,
) (Tree[T], error) {
	children := map[I][]T{}
	total := 0
	for _, rec := range records {
		if skip != nil && skip(rec) {
			continue
		}
		h := head(rec)
		children[h] = append(children[h], rec)
		total++
	}

	roots := children[rootID]
	switch {
	case len(roots) == 0:
		return Tree[T]{}, fmt.Errorf("%w: no root token", ErrTree)
	case len(roots) > 1:
		return Tree[T]{}, fmt.Errorf("%w: more than one root token", ErrTree)
	}

	b := NewBuilder[T]()
	b.CreateRoot(roots[0])
	attached := 1
	if err := attachChildren(b, roots[0], id, children, &attached); err != nil {
		return Tree[T]{}, err
	}
	if attached != total {
		return Tree[T]{}, fmt.Errorf("%w: %d records unreachable from the root",
			ErrTree, total-attached)
	}
	return b.Build()
}

func attachChildren[T any, I comparable](
	b *Builder[T],
	rec T,
	id func(T) I,
	children map[I][]T,
	attached *int,
) error {
	for _, child := range children[id(rec)] {
		if err := b.AddChild(child, true); err != nil {
			return err
		}
		*attached++
		if err := attachChildren(b, child, id, children, attached); err != nil {
			return err
		}
		if err := b.MoveToParent(); err != nil {
			return err
		}
	}
	return nil
}
