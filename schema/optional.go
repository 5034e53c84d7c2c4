package schema

// Optional holds a value of type V or marks it absent. The zero value is
// absent.
type Optional[V any] struct {
	val     V
	present bool
}

// Some wraps a present value.
func Some[V any](v V) Optional[V] {
	return Optional[V]{val: v, present: true}
}

// None is the absent value.
func None[V any]() Optional[V] {
	return Optional[V]{}
}

// Present reports whether a value is held.
func (o Optional[V]) Present() bool { return o.present }

// Get returns the held value and whether one is present.
func (o Optional[V]) Get() (V, bool) { return o.val, o.present }

// Or returns the held value, or def when absent.
func (o Optional[V]) Or(def V) V {
	if o.present {
		return o.val
	}
	return def
}

// Set is a deduplicated collection of values. Iteration order is undefined;
// serialization order comes from the UniqueArray ordering function.
type Set[V comparable] map[V]struct{}

// NewSet builds a set from the given values.
func NewSet[V comparable](vs ...V) Set[V] {
	s := make(Set[V], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v.
func (s Set[V]) Add(v V) { s[v] = struct{}{} }

// Has reports membership of v.
func (s Set[V]) Has(v V) bool {
	_, ok := s[v]
	return ok
}

// Values returns the members in map order.
func (s Set[V]) Values() []V {
	vs := make([]V, 0, len(s))
	for v := range s {
		vs = append(vs, v)
	}
	return vs
}
