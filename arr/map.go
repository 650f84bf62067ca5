package arr

import (
	"iter"
	"slices"
)

// Map is an insertion-ordered map from normalized keys to arbitrary values.
// It is the Go counterpart of a PHP array: a single type that behaves as a
// list when its keys are 0 … Len()-1 and as a dictionary otherwise.
//
// Keys passed to any method are run through [NormalizeKey], so Store(1, v),
// Store("1", v) and Store(int64(1), v) address the same entry.
//
// The zero value is an empty map ready to use. A Map is not safe for
// concurrent mutation.
type Map struct {
	keys []any
	vals map[any]any
	next int
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{vals: make(map[any]any)}
}

// ListOf returns a Map holding values under the keys 0 … len(values)-1.
func ListOf(values ...any) *Map {
	m := &Map{
		keys: make([]any, len(values)),
		vals: make(map[any]any, len(values)),
		next: len(values),
	}
	for i, v := range values {
		m.keys[i] = i
		m.vals[i] = v
	}
	return m
}

// MapOf builds a Map from alternating key/value arguments:
//
//	MapOf("name", "Alice", "age", 30)
//
// A trailing key without a value is stored with a nil value.
func MapOf(kv ...any) *Map {
	m := NewMap()
	for i := 0; i < len(kv); i += 2 {
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		m.Store(kv[i], v)
	}
	return m
}

// Len returns the number of entries. A nil *Map has length 0.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *Map) Keys() []any {
	if m == nil {
		return []any{}
	}
	return slices.Clone(m.keys)
}

// Values returns the values in key order.
func (m *Map) Values() []any {
	out := make([]any, m.Len())
	for i := range out {
		out[i] = m.vals[m.keys[i]]
	}
	return out
}

// Lookup returns the value stored under key and whether it was present.
// It implements [Accessor].
func (m *Map) Lookup(key any) (any, bool) {
	if m == nil || m.vals == nil {
		return nil, false
	}
	v, ok := m.vals[NormalizeKey(key)]
	return v, ok
}

// Store sets the value under key. A new key is appended at the end; an
// existing key keeps its position. It implements [Mutator].
func (m *Map) Store(key, value any) {
	if m.vals == nil {
		m.vals = make(map[any]any)
	}
	k := NormalizeKey(key)
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
		if i, isInt := k.(int); isInt && i >= m.next {
			m.next = i + 1
		}
	}
	m.vals[k] = value
}

// Append stores value under the next free integer key (one past the largest
// integer key ever stored) and returns that key.
func (m *Map) Append(value any) int {
	k := m.next
	m.Store(k, value)
	return k
}

// Prepend inserts value at the front under key 0. Integer keys are then
// renumbered 0, 1, 2, … in order; string keys are untouched.
func (m *Map) Prepend(value any) {
	if m.vals == nil {
		m.vals = make(map[any]any)
	}
	// placeholder key that cannot collide with a normalized key
	type front struct{}
	m.keys = slices.Insert(m.keys, 0, any(front{}))
	m.vals[front{}] = value
	m.renumber()
}

// Delete removes key and reports whether it was present. The next free
// integer key is not lowered.
func (m *Map) Delete(key any) bool {
	if m == nil || m.vals == nil {
		return false
	}
	k := NormalizeKey(key)
	if _, ok := m.vals[k]; !ok {
		return false
	}
	delete(m.vals, k)
	m.keys = slices.DeleteFunc(m.keys, func(x any) bool { return x == k })
	return true
}

// PopBack removes and returns the last entry.
func (m *Map) PopBack() (key, value any, ok bool) {
	if m.Len() == 0 {
		return nil, nil, false
	}
	key = m.keys[len(m.keys)-1]
	value = m.vals[key]
	m.keys = m.keys[:len(m.keys)-1]
	delete(m.vals, key)
	if i, isInt := key.(int); isInt && i == m.next-1 {
		m.next = i
	}
	return key, value, true
}

// PopFront removes and returns the first entry. Remaining integer keys are
// renumbered 0, 1, 2, … in order.
func (m *Map) PopFront() (key, value any, ok bool) {
	if m.Len() == 0 {
		return nil, nil, false
	}
	key = m.keys[0]
	value = m.vals[key]
	m.keys = slices.Delete(m.keys, 0, 1)
	delete(m.vals, key)
	m.renumber()
	return key, value, true
}

// Clear removes every entry and resets the next free integer key.
func (m *Map) Clear() {
	m.keys = nil
	m.vals = make(map[any]any)
	m.next = 0
}

// Clone returns a shallow copy: values are shared, the key order and index
// are not.
func (m *Map) Clone() *Map {
	if m == nil {
		return NewMap()
	}
	out := &Map{
		keys: slices.Clone(m.keys),
		vals: make(map[any]any, len(m.vals)),
		next: m.next,
	}
	for k, v := range m.vals {
		out.vals[k] = v
	}
	return out
}

// At returns the entry at position i (0-based, in insertion order).
func (m *Map) At(i int) (key, value any, ok bool) {
	if i < 0 || i >= m.Len() {
		return nil, nil, false
	}
	key = m.keys[i]
	return key, m.vals[key], true
}

// IndexOf returns the position of key, or -1.
func (m *Map) IndexOf(key any) int {
	if m == nil {
		return -1
	}
	k := NormalizeKey(key)
	if _, ok := m.vals[k]; !ok {
		return -1
	}
	return slices.Index(m.keys, k)
}

// Entries iterates over the entries in order. It implements [Iterable].
func (m *Map) Entries() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for i := 0; i < m.Len(); i++ {
			k := m.keys[i]
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// IsList reports whether the keys are exactly 0 … Len()-1 in order.
func (m *Map) IsList() bool {
	for i := 0; i < m.Len(); i++ {
		if k, ok := m.keys[i].(int); !ok || k != i {
			return false
		}
	}
	return true
}

func (m *Map) renumber() {
	vals := make(map[any]any, len(m.keys))
	n := 0
	for i, k := range m.keys {
		v := m.vals[k]
		if _, isString := k.(string); !isString {
			k = n
			n++
			m.keys[i] = k
		}
		vals[k] = v
	}
	m.vals = vals
	m.next = n
}

// Merge concatenates the entries of every map into a new Map with PHP
// array_merge semantics: integer keys are renumbered sequentially across the
// combined sequence, string keys are kept and a later duplicate overwrites
// the earlier value in place.
func Merge(maps ...*Map) *Map {
	out := NewMap()
	for _, m := range maps {
		for k, v := range m.Entries() {
			if _, isString := k.(string); isString {
				out.Store(k, v)
			} else {
				out.Append(v)
			}
		}
	}
	return out
}

// Only returns a new Map with just the given top-level keys, in m's order.
func Only(m *Map, keys ...any) *Map {
	keep := make(map[any]struct{}, len(keys))
	for _, k := range keys {
		keep[NormalizeKey(k)] = struct{}{}
	}
	out := NewMap()
	for k, v := range m.Entries() {
		if _, ok := keep[k]; ok {
			out.Store(k, v)
		}
	}
	return out
}

// Except returns a shallow copy of m without the given top-level keys.
func Except(m *Map, keys ...any) *Map {
	out := m.Clone()
	for _, k := range keys {
		out.Delete(k)
	}
	return out
}
