package collections

import (
	"iter"

	"github.com/davecgh/go-spew/spew"

	"github.com/hasbyte1/go-collections/arr"
)

// Collection is a chainable wrapper around an ordered, keyed container of
// arbitrary values. Keys are non-negative ints or strings (see
// [arr.NormalizeKey]); values are unconstrained and may themselves be
// collections, maps, slices or scalars.
//
// Two contracts coexist, and every method documents which one it follows:
//
//   - Mutating, chainable: [Collection.Push], [Collection.Prepend],
//     [Collection.Pop], [Collection.Shift], [Collection.Clear],
//     [Collection.Set] and [Collection.Forget] change the receiver and
//     return it (or the removed value).
//   - Pure: every other method leaves the receiver untouched and returns a
//     new Collection that owns its own map.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)
//	c := collections.From(map[string]any{"a": 1})
//	c := collections.Empty(collections.WithLogger(logger))
//
// A Collection is not safe for concurrent mutation. Concurrent reads of a
// collection that nobody mutates are safe.
type Collection struct {
	items *arr.Map
	cfg   *config
}

var (
	_ arr.Mutator  = (*Collection)(nil)
	_ arr.Iterable = (*Collection)(nil)
	_ Enumerable   = (*Collection)(nil)
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection holding values under the keys 0 … len(values)-1.
func New(values ...any) *Collection {
	return &Collection{items: arr.ListOf(values...), cfg: defaultConfig}
}

// From creates a Collection from src, which may be:
//
//   - nil: an empty collection;
//   - a *Collection: a shallow copy, inheriting its options unless opts are given;
//   - a *arr.Map, []any, map[string]any or any other slice, array or map
//     (Go maps are read in sorted key order);
//   - any other value: a one-item collection.
//
// Items are not deep-cloned.
func From(src any, opts ...Option) *Collection {
	cfg := newConfig(opts)
	switch s := src.(type) {
	case nil:
		return &Collection{items: arr.NewMap(), cfg: cfg}
	case *Collection:
		if len(opts) == 0 {
			cfg = s.cfg
		}
		return &Collection{items: s.items.Clone(), cfg: cfg}
	case *arr.Map:
		return &Collection{items: s.Clone(), cfg: cfg}
	}
	if m, ok := arr.ToMap(src); ok {
		return &Collection{items: m, cfg: cfg}
	}
	return &Collection{items: arr.ListOf(src), cfg: cfg}
}

// Empty creates an empty Collection.
func Empty(opts ...Option) *Collection {
	return &Collection{items: arr.NewMap(), cfg: newConfig(opts)}
}

// derive wraps m in a new Collection sharing c's options.
func (c *Collection) derive(m *arr.Map) *Collection {
	return &Collection{items: m, cfg: c.cfg}
}

func (c *Collection) list(values []any) *Collection {
	return c.derive(arr.ListOf(values...))
}

// backing returns the owned map, allocating it for a zero Collection.
func (c *Collection) backing() *arr.Map {
	if c.items == nil {
		c.items = arr.NewMap()
	}
	return c.items
}

// entry is one key/value pair of a collection, used by the operations that
// reorder or split entries while keeping their keys.
type entry struct {
	key, value any
}

func (c *Collection) entries() []entry {
	out := make([]entry, 0, c.Count())
	for k, v := range c.items.Entries() {
		out = append(out, entry{k, v})
	}
	return out
}

func (c *Collection) fromEntries(es []entry) *Collection {
	m := arr.NewMap()
	for _, e := range es {
		m.Store(e.key, e.value)
	}
	return c.derive(m)
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection
// ─────────────────────────────────────────────────────────────────────────────

// All returns a shallow copy of the underlying map. Mutating the result
// never affects c.
func (c *Collection) All() *arr.Map {
	return c.items.Clone()
}

// ToArray returns a copy of the items in which nested collections and
// *arr.Map values are converted, recursively, into fresh *arr.Map values.
func (c *Collection) ToArray() *arr.Map {
	return toArray(c.items, map[*arr.Map]bool{})
}

func toArray(m *arr.Map, seen map[*arr.Map]bool) *arr.Map {
	out := arr.NewMap()
	seen[m] = true
	defer delete(seen, m)
	for k, v := range m.Entries() {
		switch x := v.(type) {
		case *Collection:
			if x.items != nil && !seen[x.items] {
				v = toArray(x.items, seen)
			}
		case *arr.Map:
			if x != nil && !seen[x] {
				v = toArray(x, seen)
			}
		}
		out.Store(k, v)
	}
	return out
}

// ToSlice returns the values in order as a plain slice.
func (c *Collection) ToSlice() []any {
	return c.items.Values()
}

// Keys returns a new 0-indexed collection of c's keys.
func (c *Collection) Keys() *Collection {
	return c.list(c.items.Keys())
}

// Values returns a new collection of c's values re-indexed 0 … n-1.
func (c *Collection) Values() *Collection {
	return c.list(c.items.Values())
}

// Count returns the number of items.
func (c *Collection) Count() int { return c.items.Len() }

// IsEmpty reports whether the collection contains no items.
func (c *Collection) IsEmpty() bool { return c.Count() == 0 }

// IsNotEmpty reports whether the collection contains at least one item.
func (c *Collection) IsNotEmpty() bool { return c.Count() > 0 }

// First returns the first item in order. It reports false when the
// collection is empty.
func (c *Collection) First() (any, bool) {
	_, v, ok := c.items.At(0)
	return v, ok
}

// FirstOrFail returns the first item satisfying fn, or [ErrNoMatchingItems].
func (c *Collection) FirstOrFail(fn func(value, key any) bool) (any, error) {
	if v, ok := c.Find(fn); ok {
		return v, nil
	}
	return nil, &Error{Op: "FirstOrFail", Kind: ErrNoMatchingItems}
}

// Last returns the last item in order. It reports false when the collection
// is empty.
func (c *Collection) Last() (any, bool) {
	_, v, ok := c.items.At(c.Count() - 1)
	return v, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Nested access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value at key, which is a literal key or a dot path (see
// [arr.Get]). It returns def[0], or nil, when the key does not resolve.
//
//	c.Get("user.address.city")
//	c.Get("user.zip", "n/a")
func (c *Collection) Get(key any, def ...any) any {
	return arr.Get(c.items, key, def...)
}

// Has reports whether key resolves, using the same rules as Get. A present
// nil value counts.
func (c *Collection) Has(key any) bool {
	return arr.Has(c.items, key)
}

// Set writes value at key, creating intermediate maps along a dot path and
// overwriting scalars that stand in the way. Mutating; returns c.
//
// Nested containers on the path are copied into fresh *arr.Map values
// before the write, so maps, slices and collections shared with the caller
// or with derived collections are left as they were.
//
//	collections.Empty().Set("a.b.c", 5).Get("a.b.c") // 5
func (c *Collection) Set(key, value any) *Collection {
	arr.Set(c.backing(), key, value)
	return c
}

// Lookup returns the value stored under the literal key. It implements
// [arr.Accessor], which lets dot paths descend into nested collections.
func (c *Collection) Lookup(key any) (any, bool) {
	return c.items.Lookup(key)
}

// Store sets the value under the literal key. It implements [arr.Mutator].
func (c *Collection) Store(key, value any) {
	c.backing().Store(key, value)
}

// Entries iterates over the items in order. It implements [arr.Iterable].
func (c *Collection) Entries() iter.Seq2[any, any] {
	return c.items.Entries()
}

// ─────────────────────────────────────────────────────────────────────────────
// Stack / queue mutation
// ─────────────────────────────────────────────────────────────────────────────

// Push appends values under the next free integer keys. Mutating; returns c.
func (c *Collection) Push(values ...any) *Collection {
	m := c.backing()
	for _, v := range values {
		m.Append(v)
	}
	return c
}

// Prepend inserts value at the front under key 0 and renumbers the integer
// keys that follow; string keys are unaffected. Mutating; returns c.
func (c *Collection) Prepend(value any) *Collection {
	c.backing().Prepend(value)
	return c
}

// Pop removes and returns the last item. It reports false when the
// collection is empty. Mutating.
func (c *Collection) Pop() (any, bool) {
	_, v, ok := c.items.PopBack()
	return v, ok
}

// Shift removes and returns the first item, renumbering the remaining
// integer keys down from 0. It reports false when the collection is empty.
// Mutating.
func (c *Collection) Shift() (any, bool) {
	_, v, ok := c.items.PopFront()
	return v, ok
}

// Clear removes every item. Mutating; returns c.
func (c *Collection) Clear() *Collection {
	c.backing().Clear()
	return c
}

// Forget removes each key, literal-first and then by dot path. Missing keys
// are ignored. Nested containers on a path are copied as in Set. Mutating;
// returns c.
func (c *Collection) Forget(keys ...any) *Collection {
	m := c.backing()
	for _, k := range keys {
		arr.Forget(m, k)
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & debugging
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every item in order, stopping early when fn
// returns false. Returns c.
func (c *Collection) Each(fn func(value, key any) bool) *Collection {
	for k, v := range c.items.Entries() {
		if !fn(v, k) {
			break
		}
	}
	return c
}

// Tap calls fn(c) for side effects and returns c unchanged.
func (c *Collection) Tap(fn func(*Collection)) *Collection {
	fn(c)
	return c
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                32,
}

// Dump writes a go-spew rendering of the items, keyed as in c, to the
// configured writer ([WithWriter], default os.Stdout) and returns c.
func (c *Collection) Dump() *Collection {
	dumper.Fdump(c.cfg.writerOrDefault(), dumpView(c.items, map[*arr.Map]bool{}))
	return c
}

// dumpView converts m into a Go map keyed by the collection keys so spew
// prints entries rather than the internals of *arr.Map. A map already being
// rendered is left as is.
func dumpView(m *arr.Map, seen map[*arr.Map]bool) map[any]any {
	seen[m] = true
	defer delete(seen, m)
	out := make(map[any]any, m.Len())
	for k, v := range m.Entries() {
		switch x := v.(type) {
		case *Collection:
			if x.items != nil && !seen[x.items] {
				v = dumpView(x.items, seen)
			}
		case *arr.Map:
			if x != nil && !seen[x] {
				v = dumpView(x, seen)
			}
		}
		out[k] = v
	}
	return out
}

// Log emits a debug record through the configured logger ([WithLogger],
// default slog.Default()) carrying the item count and keys, plus any extra
// attributes, and returns c.
//
//	c.Filter(nil).Log("after filter", "stage", 2).Count()
func (c *Collection) Log(msg string, args ...any) *Collection {
	attrs := append([]any{"count", c.Count(), "keys", c.items.Keys()}, args...)
	c.cfg.loggerOrDefault().Debug(msg, attrs...)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection) When(condition bool, fn func(*Collection) *Collection) *Collection {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection) Unless(condition bool, fn func(*Collection) *Collection) *Collection {
	return c.When(!condition, fn)
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection) WhenEmpty(fn func(*Collection) *Collection) *Collection {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(c) if c is not empty; otherwise returns c.
func (c *Collection) WhenNotEmpty(fn func(*Collection) *Collection) *Collection {
	return c.When(c.IsNotEmpty(), fn)
}
