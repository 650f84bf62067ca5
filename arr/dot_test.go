package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections/arr"
)

func makeNested() *arr.Map {
	return arr.MapOf(
		"user", arr.MapOf(
			"name", "Alice",
			"address", arr.MapOf(
				"city", "London",
				"country", "UK",
			),
		),
		"score", 42,
	)
}

func TestGet(t *testing.T) {
	m := makeNested()
	assert.Equal(t, "Alice", arr.Get(m, "user.name"))
	assert.Equal(t, "London", arr.Get(m, "user.address.city"))
	assert.Equal(t, 42, arr.Get(m, "score"))
	assert.Nil(t, arr.Get(m, "missing"))
	assert.Equal(t, "default", arr.Get(m, "missing", "default"))
	assert.Equal(t, "default", arr.Get(m, "user.name.deep", "default"), "scalar mid-path yields default")
}

func TestGetLiteralKeyWins(t *testing.T) {
	m := arr.MapOf(
		"a.b", "literal",
		"a", arr.MapOf("b", "nested"),
	)
	assert.Equal(t, "literal", arr.Get(m, "a.b"))

	arr.Forget(m, "a.b")
	assert.Equal(t, "nested", arr.Get(m, "a.b"))
}

func TestGetNonStringKeyIsLiteral(t *testing.T) {
	m := arr.ListOf("zero", "one")
	assert.Equal(t, "one", arr.Get(m, 1))
	assert.Nil(t, arr.Get(m, 5))
}

func TestGetThroughPlainGoValues(t *testing.T) {
	data := map[string]any{
		"items": []any{
			map[string]any{"name": "first"},
			map[string]any{"name": "second"},
		},
	}
	assert.Equal(t, "second", arr.Get(data, "items.1.name"))
	assert.Nil(t, arr.Get(data, "items.7.name"))
	assert.Equal(t, 3, arr.Get([]int{1, 2, 3}, 2))
}

func TestGetScalarContainer(t *testing.T) {
	assert.Equal(t, "d", arr.Get(42, "a", "d"))
	assert.Equal(t, "d", arr.Get(nil, "a", "d"))
	assert.False(t, arr.Has("text", "0"))
}

func TestSet(t *testing.T) {
	m := arr.NewMap()
	arr.Set(m, "a.b.c", 42)
	assert.Equal(t, 42, arr.Get(m, "a.b.c"))

	nested, ok := arr.Get(m, "a.b").(*arr.Map)
	require.True(t, ok, "intermediate should be a *Map")
	assert.Equal(t, 1, nested.Len())
}

func TestSetOverwritesExisting(t *testing.T) {
	m := makeNested()
	arr.Set(m, "user.name", "Bob")
	assert.Equal(t, "Bob", arr.Get(m, "user.name"))
}

func TestSetReplacesScalarIntermediate(t *testing.T) {
	m := arr.MapOf("a", "scalar")
	arr.Set(m, "a.b", 1)
	assert.Equal(t, 1, arr.Get(m, "a.b"))
	_, isMap := arr.Get(m, "a").(*arr.Map)
	assert.True(t, isMap)
}

func TestSetIntoSliceIntermediate(t *testing.T) {
	m := arr.MapOf("list", []any{"x", "y"})
	arr.Set(m, "list.1", "z")
	assert.Equal(t, "z", arr.Get(m, "list.1"))
	assert.Equal(t, "x", arr.Get(m, "list.0"))
}

func TestSetPlainMap(t *testing.T) {
	m := map[string]any{}
	arr.Set(m, "config.debug", true)
	assert.Equal(t, true, arr.Get(m, "config.debug"))
}

func TestSetNonStringKey(t *testing.T) {
	m := arr.NewMap()
	arr.Set(m, 3, "three")
	assert.Equal(t, []any{3}, m.Keys())
}

func TestHas(t *testing.T) {
	m := makeNested()
	assert.True(t, arr.Has(m, "user.name"))
	assert.True(t, arr.Has(m, "user.address.city"))
	assert.False(t, arr.Has(m, "user.missing"))
	assert.False(t, arr.Has(m, "user.name.deep"))
}

func TestHasExplicitNil(t *testing.T) {
	m := arr.NewMap()
	arr.Set(m, "a.b", nil)
	assert.True(t, arr.Has(m, "a.b"))
	assert.Nil(t, arr.Get(m, "a.b", "sentinel"))
}

func TestHasAll(t *testing.T) {
	m := makeNested()
	assert.True(t, arr.HasAll(m, "user.name", "score"))
	assert.False(t, arr.HasAll(m, "user.name", "missing"))
}

func TestHasAny(t *testing.T) {
	m := makeNested()
	assert.True(t, arr.HasAny(m, "missing", "score"))
	assert.False(t, arr.HasAny(m, "x", "y"))
}

func TestForget(t *testing.T) {
	m := makeNested()
	arr.Forget(m, "user.address.city")
	assert.False(t, arr.Has(m, "user.address.city"))
	assert.True(t, arr.Has(m, "user.address.country"))

	arr.Forget(m, "nope.nothing")
	assert.True(t, arr.Has(m, "score"))
}

func TestForgetTopLevel(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2}
	arr.Forget(m, "a")
	assert.False(t, arr.Has(m, "a"))
	assert.True(t, arr.Has(m, "b"))
}

func TestDot(t *testing.T) {
	flat := arr.Dot(makeNested())
	assert.Equal(t, []any{"user.name", "user.address.city", "user.address.country", "score"}, flat.Keys())
	assert.Equal(t, "London", arr.Get(flat, "user.address.city"))

	withList := arr.Dot(arr.MapOf("c", []any{2, 3}, "empty", arr.NewMap()))
	assert.Equal(t, 3, arr.Get(withList, "c.1"))
	assert.True(t, arr.Has(withList, "empty"))
}

func TestUndot(t *testing.T) {
	nested := arr.Undot(arr.MapOf("a.b", 1, "a.c", 2, "d", 3))
	assert.Equal(t, 1, arr.Get(nested, "a.b"))
	assert.Equal(t, 2, arr.Get(nested, "a.c"))
	assert.Equal(t, 3, arr.Get(nested, "d"))
	assert.Equal(t, []any{"a", "d"}, nested.Keys())
}

func TestSetCopiesNestedContainers(t *testing.T) {
	shared := arr.MapOf("b", 1)
	plain := map[string]any{"b": 1}
	list := []any{"x", "y"}
	m := arr.MapOf("shared", shared, "plain", plain, "list", list)

	arr.Set(m, "shared.b", 2)
	arr.Set(m, "plain.b", 2)
	arr.Set(m, "list.0", "z")

	assert.Equal(t, 2, arr.Get(m, "shared.b"))
	assert.Equal(t, 2, arr.Get(m, "plain.b"))
	assert.Equal(t, "z", arr.Get(m, "list.0"))
	assert.Equal(t, 1, arr.Get(shared, "b"))
	assert.Equal(t, map[string]any{"b": 1}, plain)
	assert.Equal(t, []any{"x", "y"}, list)
}

func TestSetRepeatedWritesKeepOriginalIntact(t *testing.T) {
	shared := arr.MapOf("keep", true)
	m := arr.MapOf("a", shared)
	arr.Set(m, "a.b", 1)
	copied := arr.Get(m, "a")
	arr.Set(m, "a.c", 2)

	assert.Equal(t, []any{"keep", "b", "c"}, arr.Get(m, "a").(*arr.Map).Keys())
	assert.Equal(t, 1, shared.Len())
	assert.NotSame(t, shared, copied)
}

func TestForgetCopiesNestedContainers(t *testing.T) {
	shared := arr.MapOf("b", 1, "c", 2)
	m := arr.MapOf("a", shared)
	other := arr.MapOf("a", shared)

	arr.Forget(m, "a.b")
	assert.False(t, arr.Has(m, "a.b"))
	assert.True(t, arr.Has(m, "a.c"))
	assert.True(t, arr.Has(other, "a.b"))
	assert.Equal(t, 2, shared.Len())
}

func TestDotUndotNonContainers(t *testing.T) {
	var nilMap *arr.Map
	for _, v := range []any{nil, 42, "text", nilMap} {
		assert.Equal(t, 0, arr.Dot(v).Len(), "Dot(%#v)", v)
		assert.Equal(t, 0, arr.Undot(v).Len(), "Undot(%#v)", v)
	}
}

func TestUndotDoesNotWriteIntoValues(t *testing.T) {
	shared := arr.MapOf("x", 1)
	out := arr.Undot(arr.MapOf("a", shared, "a.y", 2))
	assert.Equal(t, 2, arr.Get(out, "a.y"))
	assert.Equal(t, 1, arr.Get(out, "a.x"))
	assert.Equal(t, 1, shared.Len())
}
