package collections

import (
	"reflect"

	"github.com/hasbyte1/go-collections/arr"
)

// Every method in this file is pure: the receiver is left untouched and the
// result is a new Collection carrying the receiver's options.

// ─────────────────────────────────────────────────────────────────────────────
// Mapping & filtering
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a collection with the same keys and the values produced by
// fn(value, key).
func (c *Collection) Map(fn func(value, key any) any) *Collection {
	m := arr.NewMap()
	for k, v := range c.items.Entries() {
		m.Store(k, fn(v, k))
	}
	return c.derive(m)
}

// Filter keeps the entries for which fn(value, key) returns true. A nil fn
// keeps truthy values (see [arr.Truthy]). Surviving entries keep their keys;
// nothing is re-indexed.
func (c *Collection) Filter(fn func(value, key any) bool) *Collection {
	if fn == nil {
		fn = func(v, _ any) bool { return arr.Truthy(v) }
	}
	kept := arr.Filter(c.entries(), func(e entry, _ int) bool { return fn(e.value, e.key) })
	return c.fromEntries(kept)
}

// Reject is the complement of Filter: it drops the entries for which fn
// returns true. A nil fn drops truthy values.
func (c *Collection) Reject(fn func(value, key any) bool) *Collection {
	if fn == nil {
		fn = func(v, _ any) bool { return arr.Truthy(v) }
	}
	return c.Filter(func(v, k any) bool { return !fn(v, k) })
}

// Reduce folds the entries left to right: each call receives the previous
// result, the value and its key. The final result is returned as is.
//
//	total := c.Reduce(func(carry, v, _ any) any { return carry.(int) + v.(int) }, 0)
func (c *Collection) Reduce(fn func(carry, value, key any) any, initial any) any {
	return arr.Reduce(c.entries(), func(carry any, e entry, _ int) any {
		return fn(carry, e.value, e.key)
	}, initial)
}

// Pluck resolves path against every item (see [arr.Get]) and returns the
// results as a 0-indexed collection. Scalar items yield nil. When keyPath is
// given, the result is instead keyed by the value it resolves to.
//
//	users.Pluck("address.city")
//	users.Pluck("name", "id") // {id: name, …}
func (c *Collection) Pluck(path any, keyPath ...any) *Collection {
	if len(keyPath) == 0 {
		return c.list(arr.MapSlice(c.ToSlice(), func(v any, _ int) any { return arr.Get(v, path) }))
	}
	m := arr.NewMap()
	for _, v := range c.items.Entries() {
		m.Store(arr.Get(v, keyPath[0]), arr.Get(v, path))
	}
	return c.derive(m)
}

// Flatten merges nested array-likes into a single 0-indexed level. With no
// depth, or a depth below 1, nesting is flattened completely; depth 1
// flattens exactly one level. Scalars pass through unchanged.
func (c *Collection) Flatten(depth ...int) *Collection {
	d := 0
	if len(depth) > 0 && depth[0] >= 1 {
		d = depth[0]
	}
	return c.list(flattenInto(nil, c, d, map[ref]bool{}))
}

func flattenInto(out []any, v any, depth int, seen map[ref]bool) []any {
	if ptr, ok := reference(v); ok {
		seen[ptr] = true
		defer delete(seen, ptr)
	}
	seq, _ := arr.Entries(v)
	for _, item := range seq {
		ptr, tracked := reference(item)
		switch {
		case !arr.IsArrayLike(item), tracked && seen[ptr]:
			out = append(out, item)
		case depth == 1:
			nested, _ := arr.ToMap(item)
			out = append(out, nested.Values()...)
		default:
			out = flattenInto(out, item, depth-1, seen)
		}
	}
	return out
}

// ref identifies a container that can contain itself. Slices are told apart
// by length as well, since a slice and its reslices share an address.
type ref struct {
	ptr uintptr
	n   int
}

// reference returns the identity of pointer, map and non-empty slice values,
// the only containers that can contain themselves.
func reference(v any) (ref, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		return ref{ptr: rv.Pointer()}, !rv.IsNil()
	case reflect.Slice:
		return ref{ptr: rv.Pointer(), n: rv.Len()}, rv.Len() > 0
	}
	return ref{}, false
}

// Unique removes later duplicates using strict structural equality (see
// [arr.Equal]) and re-indexes the result 0 … n-1. With a retriever argument
// (see [Collection.SortBy]) items are compared by the retrieved value.
//
//	collections.New(5, 3, 3, 1).Unique()   // [5, 3, 1]
//	collections.New(1, "1", 1.0).Unique()  // [1, "1", 1.0]
func (c *Collection) Unique(fnOrKey ...any) *Collection {
	get := retriever(optional(fnOrKey))
	kept := arr.UniqueBy(c.entries(), func(e entry) arr.Digest {
		return arr.Fingerprint(get(e.value, e.key))
	})
	return c.list(arr.MapSlice(kept, func(e entry, _ int) any { return e.value }))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Reverse reverses the order of the entries. Keys stay with their values.
func (c *Collection) Reverse() *Collection {
	return c.fromEntries(arr.Reverse(c.entries()))
}

// Sort stably sorts the entries by value, using the natural order of
// [arr.Compare] or cmp[0] when given. Keys stay with their values.
func (c *Collection) Sort(cmp ...func(a, b any) int) *Collection {
	compare := arr.Compare
	if len(cmp) > 0 && cmp[0] != nil {
		compare = cmp[0]
	}
	return c.fromEntries(arr.Sort(c.entries(), func(a, b entry) int {
		return compare(a.value, b.value)
	}))
}

// SortBy stably sorts the entries in ascending natural order of the value
// retrieved from each item. fnOrKey may be nil (the item itself), a
// func(any) any, a func(value, key any) any, or a key or dot path. Items
// that do not resolve sort first, as nil. Keys stay with their values.
//
//	users.SortBy("age")
//	users.SortBy(func(u any) any { return len(u.(string)) })
func (c *Collection) SortBy(fnOrKey any) *Collection {
	return c.sortBy(fnOrKey, 1)
}

// SortByDesc is SortBy in descending order. Items that compare equal keep
// their relative order.
func (c *Collection) SortByDesc(fnOrKey any) *Collection {
	return c.sortBy(fnOrKey, -1)
}

func (c *Collection) sortBy(fnOrKey any, dir int) *Collection {
	type ranked struct {
		entry
		rank any
	}
	get := retriever(fnOrKey)
	items := arr.MapSlice(c.entries(), func(e entry, _ int) ranked {
		return ranked{e, get(e.value, e.key)}
	})
	sorted := arr.Sort(items, func(a, b ranked) int {
		return dir * arr.Compare(a.rank, b.rank)
	})
	return c.fromEntries(arr.MapSlice(sorted, func(r ranked, _ int) entry { return r.entry }))
}

// Shuffle returns the values in random order, re-indexed 0 … n-1. The
// order is reproducible only when the collection was built with a seeded
// [WithRand] source.
func (c *Collection) Shuffle() *Collection {
	return c.list(arr.Shuffle(c.ToSlice(), c.cfg.randOrNil()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & partitioning
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy buckets the items by the value retrieved with fnOrKey (see
// [Collection.SortBy]). The result is keyed by the normalized group value
// (see [arr.NormalizeKey]; unresolved items group under "") and each value
// is a []any of the group's items in their original order.
func (c *Collection) GroupBy(fnOrKey any) *Collection {
	get := retriever(fnOrKey)
	groups := arr.NewMap()
	for k, v := range c.items.Entries() {
		g := get(v, k)
		cur, _ := groups.Lookup(g)
		bucket, _ := cur.([]any)
		groups.Store(g, append(bucket, v))
	}
	return c.derive(groups)
}

// KeyBy re-keys the items by the value retrieved with fnOrKey. When two
// items produce the same key the later one wins.
func (c *Collection) KeyBy(fnOrKey any) *Collection {
	get := retriever(fnOrKey)
	m := arr.NewMap()
	for k, v := range c.items.Entries() {
		m.Store(get(v, k), v)
	}
	return c.derive(m)
}

// Partition splits the entries into those for which fn returns true and
// the rest. The result is a 0-indexed collection of exactly two
// collections, [pass, fail], each keeping the original keys and order.
func (c *Collection) Partition(fn func(value, key any) bool) *Collection {
	pass, fail := arr.Partition(c.entries(), func(e entry) bool { return fn(e.value, e.key) })
	return c.list([]any{c.fromEntries(pass), c.fromEntries(fail)})
}

// Chunk splits the values into consecutive groups of at most size items.
// The result is a 0-indexed collection of 0-indexed collections. Returns an
// [ErrInvalidArgument] error when size is below 1.
//
//	collections.New(10, 20, 30).Chunk(2) // [[10, 20], [30]]
func (c *Collection) Chunk(size int) (*Collection, error) {
	if size < 1 {
		return nil, invalidArgument("Chunk", "size must be at least 1, got %d", size)
	}
	chunks := arr.MapSlice(arr.Chunk(c.ToSlice(), size), func(chunk []any, _ int) any {
		return c.list(chunk)
	})
	return c.list(chunks), nil
}

// Nth keeps every step-th entry, starting at position offset (0 when
// omitted). Keys are retained. Returns an [ErrInvalidArgument] error when
// step is below 1.
//
//	collections.New(1, 2, 3, 4, 5).Nth(2) // {0: 1, 2: 3, 4: 5}
func (c *Collection) Nth(step int, offset ...int) (*Collection, error) {
	if step < 1 {
		return nil, invalidArgument("Nth", "step must be at least 1, got %d", step)
	}
	off := 0
	if len(offset) > 0 {
		off = offset[0]
	}
	kept := arr.Filter(c.entries(), func(_ entry, i int) bool {
		return i >= off && (i-off)%step == 0
	})
	return c.fromEntries(kept), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Zip pairs each value, by position, with the value at the same position
// in other (anything [From] accepts). Each pair is a 2-item collection;
// positions missing from other pair with nil.
//
//	collections.New("a", "b").Zip([]any{1}) // [["a", 1], ["b", nil]]
func (c *Collection) Zip(other any) *Collection {
	theirs := mapOf(other).Values()
	pairs := arr.MapSlice(c.ToSlice(), func(v any, i int) any {
		var o any
		if i < len(theirs) {
			o = theirs[i]
		}
		return c.list([]any{v, o})
	})
	return c.list(pairs)
}

// Merge appends the entries of other (anything [From] accepts). Integer
// keys are renumbered across the combined sequence; string keys are kept
// and a later duplicate overwrites the earlier value in place.
func (c *Collection) Merge(other any) *Collection {
	return c.derive(arr.Merge(c.items, mapOf(other)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Only returns the entries whose keys are listed, in c's order.
func (c *Collection) Only(keys ...any) *Collection {
	return c.derive(arr.Only(c.items, keys...))
}

// Except returns the entries whose keys are not listed.
func (c *Collection) Except(keys ...any) *Collection {
	return c.derive(arr.Except(c.items, keys...))
}

// Take returns at most n entries from the start, or from the end when n is
// negative. Keys are retained.
func (c *Collection) Take(n int) *Collection {
	if n < 0 {
		return c.Slice(n)
	}
	return c.Slice(0, n)
}

// Skip returns the entries after the first n. Keys are retained.
func (c *Collection) Skip(n int) *Collection {
	return c.Slice(max(n, 0))
}

// Slice returns the entries starting at position offset, at most length[0]
// of them when given. A negative offset counts from the end. Keys are
// retained.
func (c *Collection) Slice(offset int, length ...int) *Collection {
	es := c.entries()
	start := offset
	if start < 0 {
		start = max(len(es)+start, 0)
	}
	start = min(start, len(es))
	end := len(es)
	if len(length) > 0 && length[0] >= 0 {
		end = min(start+length[0], len(es))
	}
	return c.fromEntries(es[start:end])
}

// Dot flattens nested items into a single level keyed by dot paths.
func (c *Collection) Dot() *Collection {
	return c.derive(arr.Dot(c.items))
}

// Undot expands dot-path keys into nested maps.
func (c *Collection) Undot() *Collection {
	return c.derive(arr.Undot(c.items))
}
