package collections

import (
	"github.com/hasbyte1/go-collections/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Search & testing
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether any item loosely equals valueOrPredicate (see
// [arr.LooseEqual]), or, when valueOrPredicate is a func(any) bool or
// func(value, key any) bool, whether it returns true for any entry.
//
//	collections.New(1, 2, 3).Contains("2")                            // true
//	collections.New(1, 2, 3).Contains(func(v any) bool { return v == 3 }) // true
func (c *Collection) Contains(valueOrPredicate any) bool {
	if fn, ok := predicate(valueOrPredicate); ok {
		return c.Some(fn)
	}
	return c.Some(func(v, _ any) bool { return arr.LooseEqual(v, valueOrPredicate) })
}

// ContainsStrict reports whether any item strictly equals value (see
// [arr.Equal]).
func (c *Collection) ContainsStrict(value any) bool {
	return c.Some(func(v, _ any) bool { return arr.Equal(v, value) })
}

// Every reports whether fn returns true for every entry. It is true for an
// empty collection.
func (c *Collection) Every(fn func(value, key any) bool) bool {
	return arr.Every(c.entries(), func(e entry) bool { return fn(e.value, e.key) })
}

// Some reports whether fn returns true for at least one entry. It is false
// for an empty collection.
func (c *Collection) Some(fn func(value, key any) bool) bool {
	_, ok := c.find(fn)
	return ok
}

// Find returns the first item for which fn returns true.
func (c *Collection) Find(fn func(value, key any) bool) (any, bool) {
	e, ok := c.find(fn)
	return e.value, ok
}

func (c *Collection) find(fn func(value, key any) bool) (entry, bool) {
	return arr.First(c.entries(), func(e entry) bool { return fn(e.value, e.key) })
}

// Search returns the key of the first item equal to valueOrPredicate, or of
// the first entry a predicate accepts. Equality is strict ([arr.Equal]) by
// default; pass false to compare loosely ([arr.LooseEqual]).
//
//	collections.New("a", "b").Search("b")         // 1, true
//	collections.New(1, 2).Search("2")             // nil, false
//	collections.New(1, 2).Search("2", false)      // 1, true
func (c *Collection) Search(valueOrPredicate any, strict ...bool) (any, bool) {
	e, ok := c.find(c.matcher(valueOrPredicate, strict))
	return e.key, ok
}

// IndexOf is like Search but returns the zero-based position of the match
// instead of its key.
func (c *Collection) IndexOf(value any, strict ...bool) (int, bool) {
	match := c.matcher(value, strict)
	i := arr.Search(c.entries(), func(e entry) bool { return match(e.value, e.key) })
	return i, i >= 0
}

func (c *Collection) matcher(valueOrPredicate any, strict []bool) func(value, key any) bool {
	if fn, ok := predicate(valueOrPredicate); ok {
		return fn
	}
	equal := arr.Equal
	if len(strict) > 0 && !strict[0] {
		equal = arr.LooseEqual
	}
	return func(v, _ any) bool { return equal(v, valueOrPredicate) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
//
// Sum, Avg, Min, Max and CountBy take an optional retriever: nil or omitted
// for the item itself, a func(any) any, a func(value, key any) any, or a key
// or dot path resolved against each item.
// ─────────────────────────────────────────────────────────────────────────────

// CountBy counts the items per retrieved value. The result maps each
// distinct value (normalized as a key, see [arr.NormalizeKey]) to its count,
// in order of first appearance.
//
//	collections.New("a", "b", "a").CountBy() // {"a": 2, "b": 1}
func (c *Collection) CountBy(fnOrKey ...any) *Collection {
	get := retriever(optional(fnOrKey))
	counts := arr.NewMap()
	for k, v := range c.items.Entries() {
		g := get(v, k)
		n, _ := counts.Lookup(g)
		cur, _ := n.(int)
		counts.Store(g, cur+1)
	}
	return c.derive(counts)
}

// Sum adds up the retrieved values. Only Go numeric kinds and json.Number
// contribute; every other value, numeric strings included, counts as 0.
// Integers are summed exactly (see [arr.Sum]); the float64 result is exact
// for integer totals up to 2^53.
//
//	collections.New(1, 2, 3).Sum()       // 6
//	orders.Sum("total")
func (c *Collection) Sum(fnOrKey ...any) float64 {
	get := retriever(optional(fnOrKey))
	return arr.Sum(c.entries(), func(e entry) any { return get(e.value, e.key) })
}

// Avg returns Sum divided by Count. Non-numeric values count as 0 but are
// still part of the denominator. It reports false for an empty collection.
func (c *Collection) Avg(fnOrKey ...any) (float64, bool) {
	if c.IsEmpty() {
		return 0, false
	}
	return c.Sum(fnOrKey...) / float64(c.Count()), true
}

// Min returns the smallest retrieved value in natural order (see
// [arr.Compare]). Values that resolve to nil are ignored. It reports false
// when nothing remains.
func (c *Collection) Min(fnOrKey ...any) (any, bool) {
	return arr.MinFunc(c.resolved(fnOrKey), arr.Compare)
}

// Max returns the largest retrieved value in natural order. Values that
// resolve to nil are ignored. It reports false when nothing remains.
func (c *Collection) Max(fnOrKey ...any) (any, bool) {
	return arr.MaxFunc(c.resolved(fnOrKey), arr.Compare)
}

func (c *Collection) resolved(fnOrKey []any) []any {
	get := retriever(optional(fnOrKey))
	out := make([]any, 0, c.Count())
	for k, v := range c.items.Entries() {
		if r := get(v, k); r != nil {
			out = append(out, r)
		}
	}
	return out
}
