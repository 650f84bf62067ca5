package arr_test

import (
	"encoding/json"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-collections/arr"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same ints", 1, 1, true},
		{"int kinds", 1, int64(1), true},
		{"int vs float", 1, 1.0, false},
		{"int vs string", 1, "1", false},
		{"nil", nil, nil, true},
		{"nil vs empty string", nil, "", false},
		{"negative zero", 0.0, math.Copysign(0, -1), true},
		{"json number", json.Number("3"), 3, true},
		{"slice vs list map", []any{1, 2}, arr.ListOf(1, 2), true},
		{"list order matters", []any{1, 2}, []any{2, 1}, false},
		{"object order ignored", arr.MapOf("a", 1, "b", 2), arr.MapOf("b", 2, "a", 1), true},
		{"go map vs map", map[string]any{"a": 1}, arr.MapOf("a", 1), true},
		{"nested", arr.MapOf("a", []any{1, arr.MapOf("b", true)}), map[string]any{"a": []any{1, map[string]any{"b": true}}}, true},
		{"nested differs", arr.MapOf("a", []any{1}), arr.MapOf("a", []any{1.0}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, arr.Equal(tt.a, tt.b))
		})
	}
}

func TestEqualCycleTerminates(t *testing.T) {
	m := arr.NewMap()
	m.Store("self", m)
	assert.True(t, arr.Equal(m, m))
}

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"int vs float", 1, 1.0, true},
		{"int vs numeric string", 1, "1", true},
		{"numeric strings", "1", "01", true},
		{"strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"nil vs empty", nil, "", true},
		{"nil vs false", nil, false, true},
		{"nil vs zero", nil, 0, false},
		{"bool vs truthy", true, "yes", true},
		{"arrays", []any{1, "2"}, arr.ListOf("1", 2.0), true},
		{"arrays differ", []any{1}, []any{1, 2}, false},
		{"array vs scalar", []any{1}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, arr.LooseEqual(tt.a, tt.b))
		})
	}
}

func TestCompare(t *testing.T) {
	values := []any{"b", 3, nil, 1.5, true, []any{1}, "a", false, 2}
	slices.SortStableFunc(values, arr.Compare)
	assert.Equal(t, []any{nil, false, true, 1.5, 2, 3, "a", "b", []any{1}}, values)

	assert.Equal(t, 0, arr.Compare(2, 2.0))
	assert.Equal(t, -1, arr.Compare([]any{1}, []any{0, 0}), "shorter array sorts first")
	assert.Equal(t, 1, arr.Compare([]any{1, 3}, []any{1, 2}))
}

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, 0, 0.0, "", "0", []any{}, arr.NewMap(), map[string]any{}}
	for _, v := range falsy {
		assert.False(t, arr.Truthy(v), "%#v should be falsy", v)
	}
	truthy := []any{true, 1, -1, 0.1, "a", "false", []any{0}, arr.ListOf(nil), struct{}{}}
	for _, v := range truthy {
		assert.True(t, arr.Truthy(v), "%#v should be truthy", v)
	}
}

func TestToFloat(t *testing.T) {
	for _, v := range []any{3, int8(3), uint16(3), 3.0, float32(3), json.Number("3")} {
		f, ok := arr.ToFloat(v)
		assert.True(t, ok, "%T", v)
		assert.Equal(t, 3.0, f)
	}
	for _, v := range []any{"3", true, nil, []any{3}} {
		_, ok := arr.ToFloat(v)
		assert.False(t, ok, "%#v", v)
	}
}

func TestFingerprintDistinguishesShapes(t *testing.T) {
	seen := map[arr.Digest]any{}
	for _, v := range []any{1, 1.0, "1", true, nil, []any{1}, arr.MapOf("0", "1")} {
		d := arr.Fingerprint(v)
		prev, dup := seen[d]
		assert.False(t, dup, "%#v collides with %#v", v, prev)
		seen[d] = v
	}
}

func TestEntriesSortsGoMaps(t *testing.T) {
	seq, ok := arr.Entries(map[string]any{"b": 2, "a": 1, "c": 3})
	assert.True(t, ok)
	var keys []any
	for k := range seq {
		keys = append(keys, k)
	}
	assert.Equal(t, []any{"a", "b", "c"}, keys)

	_, ok = arr.Entries([]byte("raw"))
	assert.False(t, ok)
}
