package arr

import (
	"math/rand/v2"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element matching fn.
// Returns the zero value and false when no element matches.
func First[T any](items []T, fn func(T) bool) (T, bool) {
	if i := Search(items, fn); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	return slices.IndexFunc(items, fn)
}

// Every reports whether fn holds for all elements. It is true for an empty
// slice.
func Every[T any](items []T, fn func(T) bool) bool {
	return !slices.ContainsFunc(items, func(item T) bool { return !fn(item) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// MapSlice applies fn(item, index) to each element and returns a new slice.
func MapSlice[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reduce folds items left to right into a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// UniqueBy keeps the first element for every distinct key extracted by fn.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size. The last group may
// contain fewer than size elements. A size <= 0 yields no groups.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for chunk := range slices.Chunk(items, size) {
		chunks = append(chunks, slices.Clone(chunk))
	}
	return chunks
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	out := slices.Clone(items)
	slices.Reverse(out)
	return out
}

// Partition splits items into those satisfying fn and those that do not,
// preserving relative order in both.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Combine creates parallel key/value pairs from equal-length slices.
// Returns [ErrMismatchedLengths] if the lengths differ.
func Combine[K, V any](keys []K, values []V) (*Map, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := NewMap()
	for i, k := range keys {
		out.Store(k, values[i])
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a stably sorted copy of items ordered by cmp, which returns a
// negative number when a < b, zero when equal and a positive number when a > b.
func Sort[T any](items []T, cmp func(a, b T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, cmp)
	return out
}

// Shuffle returns a randomly shuffled copy of items. When r is nil the
// package-level generator of math/rand/v2 is used.
func Shuffle[T any](items []T, r *rand.Rand) []T {
	out := slices.Clone(items)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if r != nil {
		r.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds the numbers extracted by fn (see [ToFloat]); anything else counts
// as 0. Integers are added exactly in an int64 and converted once at the
// end, so an integer total is exact up to 2^53 and correctly rounded above
// it. Floats, and integers that would overflow the int64, are added in
// float64.
func Sum[T any](items []T, fn func(T) any) float64 {
	var ints int64
	var floats float64
	for _, item := range items {
		v := fn(item)
		if i, ok := toInt64(v); ok {
			if s := ints + i; (s > ints) == (i > 0) {
				ints = s
				continue
			}
		}
		f, _ := ToFloat(v)
		floats += f
	}
	return float64(ints) + floats
}

// MinFunc returns the first smallest element according to cmp.
// Returns the zero value and false if items is empty.
func MinFunc[T any](items []T, cmp func(a, b T) int) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return slices.MinFunc(items, cmp), true
}

// MaxFunc returns the first largest element according to cmp.
// Returns the zero value and false if items is empty.
func MaxFunc[T any](items []T, cmp func(a, b T) int) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return slices.MaxFunc(items, cmp), true
}
