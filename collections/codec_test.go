package collections_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collections/arr"
	"github.com/hasbyte1/go-collections/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

func TestToJSON(t *testing.T) {
	tests := []struct {
		name string
		c    *collections.Collection
		want string
	}{
		{"empty", collections.Empty(), `[]`},
		{"list", collections.New(1, "a", nil), `[1,"a",null]`},
		{"object", collections.From(map[string]any{"b": 1, "a": 2}), `{"a":2,"b":1}`},
		{"gapped keys", collections.New(1, 2, 3).Filter(func(v, _ any) bool { return v != 2 }), `{"0":1,"2":3}`},
		{"nested", collections.New(collections.New(true), map[string]any{"k": 1.5}), `[[true],{"k":1.5}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.c.ToJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestToJSONErrors(t *testing.T) {
	self := collections.New(1)
	self.Push(self)
	_, err := self.ToJSON()
	assert.ErrorIs(t, err, collections.ErrSerialization)
	assert.ErrorIs(t, err, arr.ErrCycle)

	_, err = collections.New(math.NaN()).ToJSON()
	assert.ErrorIs(t, err, collections.ErrSerialization)
	assert.ErrorIs(t, err, arr.ErrUnsupportedValue)
}

func TestFromJSON(t *testing.T) {
	c, err := collections.FromJSON([]byte(`{"b":1,"a":[1,2],"0":"zero"}`))
	require.NoError(t, err)
	assert.Equal(t, []any{"b", "a", 0}, keys(c))
	assert.Equal(t, 2, c.Get("a.1"))
	assert.Equal(t, "zero", c.Get(0))

	scalar, err := collections.FromJSON([]byte(`42`))
	require.NoError(t, err)
	assert.Equal(t, []any{42}, scalar.ToSlice())

	_, err = collections.FromJSON([]byte(`[1,`))
	assert.ErrorIs(t, err, collections.ErrSerialization)
}

func TestJSONRoundTrip(t *testing.T) {
	for _, c := range []*collections.Collection{
		collections.New(1, "two", nil, true, 2.5),
		collections.New(1.0, 2.0, float32(3), -0.5),
		collections.From(map[string]any{"n": 1, "f": 1.0, "big": 1e21}),
		collections.Empty().Set("a.b", []any{1, map[string]any{"c": "d"}}).Set("z", false),
	} {
		out, err := c.ToJSON()
		require.NoError(t, err)
		back, err := collections.FromJSON(out)
		require.NoError(t, err)
		assert.True(t, arr.Equal(c.ToArray(), back.ToArray()), "round trip of %s", out)
	}
}

func TestToJSONKeepsFloatsFloats(t *testing.T) {
	out, err := collections.New(1, 1.0, 2.5).ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `[1,1.0,2.5]`, string(out))

	back, err := collections.FromJSON(out)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 1.0, 2.5}, back.ToSlice())
}

func TestEncodingJSONInterop(t *testing.T) {
	type payload struct {
		Items *collections.Collection `json:"items"`
	}
	out, err := json.Marshal(payload{Items: collections.New(1, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[1,2]}`, string(out))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"items":{"x":1,"y":[2]}}`), &p))
	require.NotNil(t, p.Items)
	assert.Equal(t, []any{"x", "y"}, keys(p.Items))
	assert.Equal(t, 2, p.Items.Get("y.0"))
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

func TestYAMLRoundTrip(t *testing.T) {
	c := collections.From(arr.MapOf("name", "svc", "ports", []any{80, 443}, "tls", true))
	out, err := c.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: svc")

	back, err := collections.FromYAML(out)
	require.NoError(t, err)
	assert.Equal(t, []any{"name", "ports", "tls"}, keys(back))
	assert.Equal(t, 443, back.Get("ports.1"))
	assert.True(t, arr.Equal(c.ToArray(), back.ToArray()))
}

func TestYAMLKeepsFloatsFloats(t *testing.T) {
	c := collections.New(1, 1.0, 2.5)
	out, err := c.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "1.0")

	back, err := collections.FromYAML(out)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 1.0, 2.5}, back.ToSlice())
}

func TestFromYAMLEmpty(t *testing.T) {
	c, err := collections.FromYAML(nil)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestYAMLInterop(t *testing.T) {
	type config struct {
		Hosts *collections.Collection `yaml:"hosts"`
	}
	out, err := yaml.Marshal(config{Hosts: collections.New("a", "b")})
	require.NoError(t, err)

	var cfg config
	require.NoError(t, yaml.Unmarshal(out, &cfg))
	require.NotNil(t, cfg.Hosts)
	assert.Equal(t, []any{"a", "b"}, cfg.Hosts.ToSlice())
}

func TestToYAMLCycle(t *testing.T) {
	self := collections.New(1)
	self.Push(self)
	_, err := self.ToYAML()
	assert.ErrorIs(t, err, collections.ErrSerialization)
	assert.ErrorIs(t, err, arr.ErrCycle)
}

// ─────────────────────────────────────────────────────────────────────────────
// Strings
// ─────────────────────────────────────────────────────────────────────────────

func TestString(t *testing.T) {
	assert.Equal(t, `{"a":1}`, collections.From(map[string]any{"a": 1}).String())

	self := collections.New(1)
	self.Push(self)
	assert.NotEmpty(t, self.String())

	s := make([]any, 2)
	s[1] = s
	assert.NotEmpty(t, collections.New(s).String())
}

func TestImplode(t *testing.T) {
	got, err := collections.New(1, []any{2, 3}, true, nil, 1.5, "x").Implode(",")
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,1,,1.5,x", got)

	got, err = collections.Empty().Implode(",")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	self := collections.New(1)
	self.Push(self)
	_, err = self.Implode(",")
	assert.ErrorIs(t, err, collections.ErrSerialization)
	assert.ErrorIs(t, err, arr.ErrCycle)
}

func TestImplodeSelfContainingSlice(t *testing.T) {
	s := make([]any, 2)
	s[1] = s
	_, err := collections.New(s).Implode(",")
	assert.ErrorIs(t, err, collections.ErrSerialization)
	assert.ErrorIs(t, err, arr.ErrCycle)

	got, err := collections.New([]any{1, 2}, []any{1, 2}).Implode(",")
	require.NoError(t, err)
	assert.Equal(t, "1,2,1,2", got, "a repeated value is not a cycle")
}
