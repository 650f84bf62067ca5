package collections_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections/arr"
	"github.com/hasbyte1/go-collections/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Search & testing
// ─────────────────────────────────────────────────────────────────────────────

func TestContains(t *testing.T) {
	c := collections.New(1, 2, 3)
	assert.True(t, c.Contains(2))
	assert.True(t, c.Contains("2"), "loose comparison")
	assert.False(t, c.Contains(9))
	assert.True(t, c.Contains(func(v any) bool { return v == 3 }))
	assert.True(t, c.Contains(func(_, k any) bool { return k == 0 }))

	assert.True(t, c.ContainsStrict(2))
	assert.False(t, c.ContainsStrict("2"))
	assert.True(t, collections.New([]any{1, 2}).ContainsStrict(arr.ListOf(1, 2)))
}

func TestEmptyCollectionQuantifiers(t *testing.T) {
	c := collections.Empty()
	never := func(_, _ any) bool { return false }
	assert.True(t, c.Every(never))
	assert.False(t, c.Some(func(_, _ any) bool { return true }))
	assert.False(t, c.Contains(nil))

	_, ok := c.Avg()
	assert.False(t, ok)
	_, ok = c.Min()
	assert.False(t, ok)
	_, ok = c.Max()
	assert.False(t, ok)
}

func TestEverySome(t *testing.T) {
	c := collections.New(2, 4, 5)
	assert.False(t, c.Every(isEven))
	assert.True(t, c.Some(isEven))
	assert.True(t, c.Take(2).Every(isEven))
}

func TestFind(t *testing.T) {
	v, ok := users().Find(func(u, _ any) bool { return arr.Get(u, "team") == "dev" })
	require.True(t, ok)
	assert.Equal(t, "alice", arr.Get(v, "name"))

	_, ok = users().Find(func(u, _ any) bool { return arr.Get(u, "team") == "qa" })
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	k, ok := collections.New("a", "b").Search("b")
	assert.True(t, ok)
	assert.Equal(t, 1, k)

	_, ok = collections.New(1, 2).Search("2")
	assert.False(t, ok, "strict by default")

	k, ok = collections.New(1, 2).Search("2", false)
	assert.True(t, ok)
	assert.Equal(t, 1, k)

	k, ok = collections.From(map[string]any{"x": 1, "y": 8}).Search(func(v any) bool { return v.(int) > 5 })
	assert.True(t, ok)
	assert.Equal(t, "y", k)
}

func TestIndexOf(t *testing.T) {
	c := collections.New(1, 2, 3, 4).Filter(isEven)
	i, ok := c.IndexOf(4)
	assert.True(t, ok)
	assert.Equal(t, 1, i, "position, not key")

	i, ok = c.IndexOf(7)
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

func TestCountBy(t *testing.T) {
	got := collections.New("a", "b", "a").CountBy()
	assert.Equal(t, []any{"a", "b"}, keys(got))
	assert.Equal(t, []any{2, 1}, got.ToSlice())

	byTeam := users().CountBy("team")
	assert.Equal(t, 2, byTeam.Get("ops"))
	assert.Equal(t, 1, byTeam.Get("dev"))
}

func TestSumAvg(t *testing.T) {
	c := collections.New(1, 2, 3)
	assert.Equal(t, 6.0, c.Sum())
	avg, ok := c.Avg()
	assert.True(t, ok)
	assert.Equal(t, 2.0, avg)

	mixed := collections.New(1, "2", nil)
	assert.Equal(t, 1.0, mixed.Sum())
	avg, ok = mixed.Avg()
	assert.True(t, ok)
	assert.InDelta(t, 1.0/3, avg, 1e-12)

	assert.Equal(t, 0.0, collections.Empty().Sum())
	assert.Equal(t, float64(1<<53+2), collections.New(1<<53, 1, 1).Sum(), "integers are summed exactly")
	assert.Equal(t, 50.0, users().Sum("age"))
	assert.Equal(t, 3.0, users().Sum(func(_, k any) any { return k }))
}

func TestMinMax(t *testing.T) {
	c := collections.New(3, 1.5, 7, nil)
	lo, ok := c.Min()
	assert.True(t, ok)
	assert.Equal(t, 1.5, lo)
	hi, ok := c.Max()
	assert.True(t, ok)
	assert.Equal(t, 7, hi)

	youngest, ok := users().Min("age")
	assert.True(t, ok)
	assert.Equal(t, 20, youngest)

	longest, ok := collections.New("go", "rust", "c").Max(func(v any) any { return len(v.(string)) })
	assert.True(t, ok)
	assert.Equal(t, 4, longest)

	_, ok = collections.New(nil, nil).Max()
	assert.False(t, ok)
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestCombine(t *testing.T) {
	c, err := collections.Combine([]string{"name", "age"}, []any{"Alice", 30})
	require.NoError(t, err)
	assert.Equal(t, []any{"name", "age"}, keys(c))
	assert.Equal(t, 30, c.Get("age"))

	_, err = collections.Combine([]any{"a"}, []any{1, 2})
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	assert.ErrorIs(t, err, arr.ErrMismatchedLengths)
}

func TestTimes(t *testing.T) {
	c := collections.Times(3, func(i int) any { return i * i })
	assert.Equal(t, []any{1, 4, 9}, c.ToSlice())
	assert.True(t, collections.Times(0, func(i int) any { return i }).IsEmpty())
	assert.True(t, collections.Times(-2, func(i int) any { return i }).IsEmpty())
}

func TestValuesOf(t *testing.T) {
	var e collections.Enumerable = collections.New(1, 2, 3).Filter(func(v, _ any) bool { return v != 2 })
	assert.Equal(t, []any{1, 3}, slices.Collect(collections.ValuesOf(e)))

	var got []any
	for v := range collections.ValuesOf(e) {
		got = append(got, v)
		break
	}
	assert.Equal(t, []any{1}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Macros
// ─────────────────────────────────────────────────────────────────────────────

func TestMacro(t *testing.T) {
	t.Cleanup(collections.FlushMacros)

	collections.RegisterMacro("above", func(c *collections.Collection, args ...any) any {
		limit := args[0].(int)
		return c.Filter(func(v, _ any) bool { return v.(int) > limit })
	})
	assert.True(t, collections.HasMacro("above"))

	res, err := collections.New(1, 5, 9).Macro("above", 4)
	require.NoError(t, err)
	above, ok := res.(*collections.Collection)
	require.True(t, ok)
	assert.Equal(t, []any{5, 9}, above.ToSlice())
	assert.Equal(t, []any{1, 2}, keys(above))
}

func TestMacroNotFound(t *testing.T) {
	t.Cleanup(collections.FlushMacros)

	_, err := collections.New(1).Macro("missing")
	assert.ErrorIs(t, err, collections.ErrMacroNotFound)

	var cerr *collections.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "Macro", cerr.Op)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestFlushMacros(t *testing.T) {
	collections.RegisterMacro("noop", func(c *collections.Collection, _ ...any) any { return c })
	collections.FlushMacros()
	assert.False(t, collections.HasMacro("noop"))
}
