package collections

import (
	"github.com/hasbyte1/go-collections/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Package-level constructors
// ─────────────────────────────────────────────────────────────────────────────

// Combine creates a collection whose keys come from keys and whose values
// come from values, pairing them by position. Both arguments accept
// anything [From] accepts. Returns an [ErrInvalidArgument] error wrapping
// [arr.ErrMismatchedLengths] when the lengths differ.
//
//	c, _ := collections.Combine([]string{"name", "age"}, []any{"Alice", 30})
//	c.Get("age") // 30
func Combine(keys, values any, opts ...Option) (*Collection, error) {
	m, err := arr.Combine(From(keys).ToSlice(), From(values).ToSlice())
	if err != nil {
		return nil, &Error{Op: "Combine", Kind: ErrInvalidArgument, Cause: err}
	}
	return &Collection{items: m, cfg: newConfig(opts)}, nil
}

// Times creates a 0-indexed collection by calling fn(i) for i in 1 … n.
// A non-positive n yields an empty collection.
func Times(n int, fn func(i int) any, opts ...Option) *Collection {
	values := make([]any, max(n, 0))
	for i := range values {
		values[i] = fn(i + 1)
	}
	return &Collection{items: arr.ListOf(values...), cfg: newConfig(opts)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Argument adapters
// ─────────────────────────────────────────────────────────────────────────────

// retriever turns a "value retriever" argument into a function of
// (value, key). Accepted forms:
//
//	nil                        the item itself
//	func(any) any              called with the item
//	func(value, key any) any   called with the item and its key
//	anything else              a literal key or dot path resolved with arr.Get
//
// A path applied to a scalar item yields nil.
func retriever(fnOrKey any) func(value, key any) any {
	switch f := fnOrKey.(type) {
	case nil:
		return func(v, _ any) any { return v }
	case func(any) any:
		return func(v, _ any) any { return f(v) }
	case func(any, any) any:
		return f
	}
	return func(v, _ any) any { return arr.Get(v, fnOrKey) }
}

// optional returns args[0], or nil.
func optional(args []any) any {
	if len(args) > 0 {
		return args[0]
	}
	return nil
}

// predicate reports whether v is a callback accepted where a value or a
// predicate may be given, and adapts it to func(value, key) bool.
func predicate(v any) (func(value, key any) bool, bool) {
	switch f := v.(type) {
	case func(any, any) bool:
		return f, true
	case func(any) bool:
		return func(v, _ any) bool { return f(v) }, true
	}
	return nil, false
}

// mapOf returns the items of v as a map without copying when v is already
// a collection or a map.
func mapOf(v any) *arr.Map {
	switch x := v.(type) {
	case *Collection:
		if x == nil {
			return nil
		}
		return x.items
	case *arr.Map:
		return x
	}
	return From(v).items
}
