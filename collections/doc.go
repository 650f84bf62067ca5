// Package collections provides a fluent, chainable Collection type over an
// ordered, keyed container of arbitrary values, inspired by Laravel's
// Illuminate/Collections.
//
// # Overview
//
// A [Collection] wraps an [arr.Map]: keys are non-negative ints or strings,
// insertion order is kept, and values may be anything, including nested
// collections, maps and slices.
//
//	total := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(v, _ any) bool { return v.(int)%2 == 0 }).
//	    Sum() // → 12
//
// Callbacks receive (value, key). Operations that accept a "retriever"
// (SortBy, GroupBy, KeyBy, CountBy, Sum, Avg, Min, Max, Unique) take nil for
// the item itself, a func(any) any, a func(value, key any) any, or a key or
// dot path resolved against each item:
//
//	orders.SortBy("customer.name")
//	orders.Sum(func(o any) any { return o.(Order).Total })
//
// # Mutating and pure operations
//
// Two contracts are deliberately kept apart:
//
//   - Mutating, chainable: Push, Prepend, Pop, Shift, Clear, Set and Forget
//     change the receiver itself and return it (Pop and Shift return the
//     removed value).
//   - Pure: every other method returns a new Collection owning its own map;
//     the receiver is left as it was. All returns a shallow copy, never the
//     live map.
//
// Items are not deep-cloned: a nested *arr.Map or *Collection value is
// shared between a collection and the collections derived from it. Set and
// Forget never write through that sharing; they replace every nested
// container on their path with a private copy first.
//
// # Nested access
//
// Get, Set and Has accept a literal key or a dot path. A key present
// verbatim at the top level wins over path traversal:
//
//	c := collections.Empty().Set("user.address.city", "Oslo")
//	c.Get("user.address.city")   // "Oslo"
//	c.Get("user.zip", "n/a")     // "n/a"
//
// # Absence and errors
//
// Absence is never an error. First, Last, Pop, Shift, Find, Search,
// IndexOf, Min, Max and Avg return a comma-ok pair; Get returns its default.
// Errors are reserved for invalid arguments (Chunk, Nth, Combine), failed
// encoding (ToJSON, ToYAML, Implode) and unknown macros, and are [*Error]
// values wrapping [ErrInvalidArgument], [ErrSerialization] or
// [ErrMacroNotFound].
//
// # Options
//
// [From], [Empty], [FromJSON] and friends accept options that travel with
// every derived collection: [WithRand] makes Shuffle reproducible,
// [WithLogger] routes Log records, [WithWriter] redirects Dump.
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Collection.Macro]:
//
//	collections.RegisterMacro("evens", func(c *collections.Collection, _ ...any) any {
//	    return c.Filter(func(v, _ any) bool { return v.(int)%2 == 0 })
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Macro("evens")
//
// # Concurrency
//
// A Collection is not safe for concurrent mutation; callers serialize Push,
// Pop, Set and friends. Concurrent reads of a collection nobody mutates are
// safe. The macro registry is safe for concurrent use.
package collections
