package ident

// Map is an insertion-ordered, case-insensitive string-keyed map. It backs
// Record attribute storage: ClassAd attribute names are compared under
// ASCII case folding, but definition order must survive for stream-form
// and record-form parses to agree.
type Map[V any] struct {
	entries map[string]entry[V]
	order   []string // folded keys, in first-insertion order
}

type entry[V any] struct {
	originalKey string
	value       V
}

// NewMap creates an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{entries: make(map[string]entry[V])}
}

// NewMapWithCapacity creates an empty Map with room for n entries without
// reallocation.
func NewMapWithCapacity[V any](n int) *Map[V] {
	return &Map[V]{
		entries: make(map[string]entry[V], n),
		order:   make([]string, 0, n),
	}
}

// Set stores value under name, folding name for lookup but remembering the
// casing it was most recently set with. Setting an existing key under new
// casing updates the remembered original casing but not its position in
// definition order.
func (m *Map[V]) Set(name string, value V) {
	key := Normalize(name)
	if _, ok := m.entries[key]; !ok {
		m.order = append(m.order, key)
	}
	m.entries[key] = entry[V]{originalKey: name, value: value}
}

// SetIfAbsent stores value under name only if name is not already present,
// returning true if the value was stored.
func (m *Map[V]) SetIfAbsent(name string, value V) bool {
	key := Normalize(name)
	if _, ok := m.entries[key]; ok {
		return false
	}
	m.order = append(m.order, key)
	m.entries[key] = entry[V]{originalKey: name, value: value}
	return true
}

// Get returns the value stored under name (any casing) and whether it was
// present.
func (m *Map[V]) Get(name string) (V, bool) {
	e, ok := m.entries[Normalize(name)]
	return e.value, ok
}

// GetOriginalKey returns the casing name was most recently set with, or ""
// if absent.
func (m *Map[V]) GetOriginalKey(name string) string {
	e, ok := m.entries[Normalize(name)]
	if !ok {
		return ""
	}
	return e.originalKey
}

// Has reports whether name is present, under any casing.
func (m *Map[V]) Has(name string) bool {
	_, ok := m.entries[Normalize(name)]
	return ok
}

// Delete removes name, returning whether it was present.
func (m *Map[V]) Delete(name string) bool {
	key := Normalize(name)
	if _, ok := m.entries[key]; !ok {
		return false
	}
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// Keys returns the original-cased keys, in definition order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, len(m.order))
	for _, k := range m.order {
		keys = append(keys, m.entries[k].originalKey)
	}
	return keys
}

// Range calls fn for each entry in definition order, stopping early if fn
// returns false.
func (m *Map[V]) Range(fn func(key string, value V) bool) {
	for _, k := range m.order {
		e := m.entries[k]
		if !fn(e.originalKey, e.value) {
			return
		}
	}
}
