package ir

import "github.com/conllab/go-conllu/schema"

// Meta is an insertion-ordered map of metadata keys to optional values.
// A singleton comment is a key with an absent value. Keys are unique;
// re-setting a key updates its value in place without moving it.
type Meta struct {
	keys   []string
	values map[string]schema.Optional[string]
}

// Set inserts or updates key.
func (m *Meta) Set(key string, value schema.Optional[string]) {
	if m.values == nil {
		m.values = map[string]schema.Optional[string]{}
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether the key is declared.
func (m *Meta) Get(key string) (schema.Optional[string], bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is declared, with or without a value.
func (m *Meta) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key, preserving the order of the remaining keys.
func (m *Meta) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of declared keys.
func (m *Meta) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The slice is shared; callers
// must not modify it.
func (m *Meta) Keys() []string { return m.keys }
