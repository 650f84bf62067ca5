package arr

import (
	"iter"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
// These functions read, write and test values in arbitrarily nested
// containers using dot-separated key paths, mirroring Laravel's data_get /
// data_set and Arr::has / Arr::forget / Arr::dot.
//
// A key is resolved literal-first: if it exists verbatim as a top-level key
// it wins, even when it contains dots. Only otherwise is a string key split
// on "." and walked segment by segment. Non-string keys are always literal.
//
//	m := MapOf("user", MapOf("name", "Alice"), "v1.2", "literal")
//
//	Get(m, "user.name")  → "Alice"
//	Get(m, "v1.2")       → "literal"
//	Set(m, "user.age", 30)
//	Has(m, "user.age")   → true
//	Forget(m, "user.age")
// ─────────────────────────────────────────────────────────────────────────────

// Accessor is implemented by containers that can look up a value by key.
// *Map implements it, as does collections.Collection.
type Accessor interface {
	Lookup(key any) (any, bool)
}

// Mutator is an Accessor whose entries can be written in place.
type Mutator interface {
	Accessor
	Store(key, value any)
}

// Get retrieves a value from container using a literal or dot-notation key.
// Returns def[0] (or nil) when the key does not resolve. Get never fails:
// a missing segment or a scalar in the middle of the path simply yields the
// default.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
//	Get(list, "0.name")                // name of the first element
func Get(container, key any, def ...any) any {
	if v, ok := resolve(container, key); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether key resolves in container. A key whose value is nil
// still counts as present.
func Has(container, key any) bool {
	_, ok := resolve(container, key)
	return ok
}

// HasAll reports whether every key resolves in container.
func HasAll(container any, keys ...any) bool {
	for _, key := range keys {
		if !Has(container, key) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one key resolves in container.
func HasAny(container any, keys ...any) bool {
	for _, key := range keys {
		if Has(container, key) {
			return true
		}
	}
	return false
}

// Set writes value into container at the dot-notation key, creating
// intermediate maps as needed. An intermediate value that cannot hold keys is
// replaced with a fresh *Map, discarding what was there.
//
// Only container itself is modified in place; container must be a [Mutator]
// or a map[string]any. Every nested container on the path is copied into a
// fresh *Map before the write descends into it, so nested values shared with
// other containers are never changed. Writing into a bare []any only succeeds
// for an index that already exists.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(container, key, value any) {
	path, ok := key.(string)
	if !ok {
		store(container, key, value)
		return
	}
	assign(container, strings.Split(path, "."), value, make(map[*Map]bool))
}

// assign stores value at segments below container. Intermediate containers
// are replaced by copies unless they are listed in owned; the copies are
// added to owned so later writes can reuse them.
func assign(container any, segments []string, value any, owned map[*Map]bool) {
	current := container
	for _, seg := range segments[:len(segments)-1] {
		next, _ := lookup(current, seg)
		m, isMap := next.(*Map)
		if !isMap || !owned[m] {
			m = detach(next)
			owned[m] = true
			store(current, seg, m)
		}
		current = m
	}
	store(current, segments[len(segments)-1], value)
}

// detach returns a fresh *Map holding the entries of v, or an empty one when
// v is not array-like.
func detach(v any) *Map {
	if m, ok := v.(*Map); ok {
		return m.Clone()
	}
	if m, ok := ToMap(v); ok {
		return m
	}
	return NewMap()
}

// Forget removes key from container, literal-first and then by dot path.
// Missing keys are ignored. Like [Set], a path removal copies the nested
// containers it passes through instead of modifying them. Intermediate
// containers are not cleaned up.
func Forget(container, key any) {
	if _, ok := lookup(container, key); ok {
		remove(container, key)
		return
	}
	path, ok := key.(string)
	if !ok || !strings.Contains(path, ".") {
		return
	}
	if _, ok := resolve(container, path); !ok {
		return
	}
	segments := strings.Split(path, ".")
	parent := container
	for _, seg := range segments[:len(segments)-1] {
		next, _ := lookup(parent, seg)
		m := detach(next)
		store(parent, seg, m)
		parent = m
	}
	remove(parent, segments[len(segments)-1])
}

// Dot flattens a nested array-like value into a single-level *Map whose keys
// are dot paths to the leaves. Empty nested containers are kept as leaves.
//
//	Dot(MapOf("a", MapOf("b", 1), "c", []any{2, 3}))
//	// → {"a.b": 1, "c.0": 2, "c.1": 3}
func Dot(container any) *Map {
	out := NewMap()
	dotFlatten("", container, out)
	return out
}

func dotFlatten(prefix string, container any, out *Map) {
	seq, ok := Entries(container)
	if !ok {
		return
	}
	for k, v := range seq {
		key := KeyString(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := Entries(v); ok && !isEmptySeq(nested) {
			dotFlatten(key, v, out)
		} else {
			out.Store(key, v)
		}
	}
}

// Undot expands a flat dot-notation container into a nested *Map.
//
//	Undot(MapOf("a.b", 1, "a.c", 2))
//	// → {"a": {"b": 1, "c": 2}}
func Undot(container any) *Map {
	out := NewMap()
	seq, ok := Entries(container)
	if !ok {
		return out
	}
	owned := make(map[*Map]bool)
	for k, v := range seq {
		assign(out, strings.Split(KeyString(k), "."), v, owned)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────────────────────────────────────

func resolve(container, key any) (any, bool) {
	if v, ok := lookup(container, key); ok {
		return v, true
	}
	path, ok := key.(string)
	if !ok || !strings.Contains(path, ".") {
		return nil, false
	}
	current := container
	for _, seg := range strings.Split(path, ".") {
		v, found := lookup(current, seg)
		if !found {
			return nil, false
		}
		current = v
	}
	return current, true
}

// lookup performs a single-level, literal lookup.
func lookup(container, key any) (any, bool) {
	switch c := container.(type) {
	case nil:
		return nil, false
	case Accessor:
		if isNilPointer(container) {
			return nil, false
		}
		return c.Lookup(key)
	case map[string]any:
		v, ok := c[KeyString(key)]
		return v, ok
	case []any:
		i, ok := NormalizeKey(key).(int)
		if !ok || i >= len(c) {
			return nil, false
		}
		return c[i], true
	}
	if m, ok := ToMap(container); ok {
		return m.Lookup(key)
	}
	return nil, false
}

func store(container, key, value any) {
	switch c := container.(type) {
	case Mutator:
		c.Store(key, value)
	case map[string]any:
		c[KeyString(key)] = value
	case []any:
		if i, ok := NormalizeKey(key).(int); ok && i < len(c) {
			c[i] = value
		}
	}
}

func remove(container, key any) {
	switch c := container.(type) {
	case interface{ Delete(key any) bool }:
		c.Delete(key)
	case map[string]any:
		delete(c, KeyString(key))
	}
}

func isEmptySeq(seq iter.Seq2[any, any]) bool {
	for range seq {
		return false
	}
	return true
}
