package collections

import (
	"iter"

	"github.com/hasbyte1/go-collections/arr"
)

// Enumerable is the read-and-derive surface of [Collection].
//
// Accept Enumerable in your own functions so that callers can pass a
// *Collection or a type of their own without depending on the concrete
// type. It embeds [arr.Iterable], so any Enumerable can also be handed to
// [From], [arr.Get] and the arr codecs.
type Enumerable interface {
	arr.Iterable

	// All returns a shallow copy of the items.
	All() *arr.Map

	// Count returns the number of items.
	Count() int

	// Filter returns a new collection with the entries for which fn
	// returns true.
	Filter(fn func(value, key any) bool) *Collection

	// First returns the first item and whether the collection is non-empty.
	First() (any, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// Last returns the last item and whether the collection is non-empty.
	Last() (any, bool)

	// ToSlice returns the values in order.
	ToSlice() []any
}

// ValuesOf returns an iterator over the values of e in order.
func ValuesOf(e Enumerable) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range e.Entries() {
			if !yield(v) {
				return
			}
		}
	}
}
