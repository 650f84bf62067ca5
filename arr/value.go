package arr

import (
	"cmp"
	"encoding/json"
	"fmt"
	"iter"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Shape
//
// Values are treated as one of three shapes:
//
//	Scalar    nil, bool, numbers, strings and anything not listed below
//	Sequence  []any, other slices and arrays, a list-shaped *Map
//	Mapping   *Map, map[string]any, other maps, any Iterable
//
// Sequences and mappings are both "array-like": they can be iterated, and
// path lookups descend into them.
// ─────────────────────────────────────────────────────────────────────────────

// Iterable is implemented by containers whose entries can be walked in order.
type Iterable interface {
	Entries() iter.Seq2[any, any]
}

// Entries returns an ordered iterator over v when v is array-like.
// Go maps are walked in sorted key order so results are deterministic.
// []byte is treated as a scalar.
func Entries(v any) (iter.Seq2[any, any], bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case Iterable:
		if isNilPointer(v) {
			return nil, false
		}
		return x.Entries(), true
	case []any:
		return func(yield func(any, any) bool) {
			for i, item := range x {
				if !yield(i, item) {
					return
				}
			}
		}, true
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return func(yield func(any, any) bool) {
			for _, k := range keys {
				if !yield(NormalizeKey(k), x[k]) {
					return
				}
			}
		}, true
	case []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any, any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(i, rv.Index(i).Interface()) {
					return
				}
			}
		}, true
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return Compare(a.Interface(), b.Interface())
		})
		return func(yield func(any, any) bool) {
			for _, k := range keys {
				if !yield(NormalizeKey(k.Interface()), rv.MapIndex(k).Interface()) {
					return
				}
			}
		}, true
	}
	return nil, false
}

// IsArrayLike reports whether v is a sequence or mapping.
func IsArrayLike(v any) bool {
	_, ok := Entries(v)
	return ok
}

// ToMap copies any array-like value into a new *Map, normalizing its keys.
// Scalars yield nil and false.
func ToMap(v any) (*Map, bool) {
	seq, ok := Entries(v)
	if !ok {
		return nil, false
	}
	m := NewMap()
	for k, item := range seq {
		m.Store(k, item)
	}
	return m, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Truthiness & numbers
// ─────────────────────────────────────────────────────────────────────────────

// Truthy reports whether v counts as true: nil, false, numeric zero, "" and
// "0" and empty array-likes are false; everything else is true.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != "" && x != "0"
	}
	if f, ok := ToFloat(v); ok {
		return f != 0
	}
	if seq, ok := Entries(v); ok {
		for range seq {
			return true
		}
		return false
	}
	return !isNilPointer(v)
}

// ToFloat converts Go numeric kinds and json.Number to float64. Every other
// value, including numeric strings and bools, reports false.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case nil, bool, string:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// numberClass reports whether v is an integer (1), a float (2) or not a
// number (0). json.Number counts as an integer when it parses as one.
func numberClass(v any) int {
	if n, ok := v.(json.Number); ok {
		if _, err := n.Int64(); err == nil {
			return 1
		}
		if _, err := n.Float64(); err == nil {
			return 2
		}
		return 0
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 1
	case reflect.Float32, reflect.Float64:
		return 2
	}
	return 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports strict structural equality: both values have the same shape,
// integers and floats are distinct, and array-likes hold the same keys with
// strictly equal values. Key order does not matter.
//
//	Equal(1, 1)                                   // true
//	Equal(1, 1.0)                                 // false
//	Equal([]any{1, 2}, ListOf(1, 2))              // true
//	Equal(MapOf("a", 1, "b", 2), MapOf("b", 2, "a", 1)) // true
func Equal(a, b any) bool {
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		return ok && sa == sb
	}
	return Fingerprint(a) == Fingerprint(b)
}

// LooseEqual reports equality with numeric coercion:
//
//   - numbers compare by value regardless of Go kind;
//   - a number equals a string that parses as the same number;
//   - a bool equals any value of the same truthiness;
//   - nil equals nil, "", false and empty array-likes;
//   - array-likes are equal when they hold the same keys with loosely equal values;
//   - everything else falls back to [Equal].
func LooseEqual(a, b any) bool {
	if a == nil || b == nil {
		return isBlank(a) && isBlank(b)
	}
	_, ab := a.(bool)
	_, bb := b.(bool)
	if ab || bb {
		return Truthy(a) == Truthy(b)
	}

	fa, aNum := looseNumber(a)
	fb, bNum := looseNumber(b)
	if aNum && bNum {
		return fa == fb
	}

	ma, aArr := ToMap(a)
	mb, bArr := ToMap(b)
	if aArr || bArr {
		if !aArr || !bArr || ma.Len() != mb.Len() {
			return false
		}
		for k, va := range ma.Entries() {
			vb, ok := mb.Lookup(k)
			if !ok || !LooseEqual(va, vb) {
				return false
			}
		}
		return true
	}

	sa, aStr := a.(string)
	sb, bStr := b.(string)
	if aStr && bStr {
		return sa == sb
	}
	return Equal(a, b)
}

func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	}
	if seq, ok := Entries(v); ok {
		for range seq {
			return false
		}
		return true
	}
	return false
}

// looseNumber converts numbers and numeric strings to float64.
func looseNumber(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return ToFloat(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Compare returns the natural ordering of a and b (-1, 0 or +1).
//
// Values are ranked by shape first: nil < bool < number < string <
// array-like < anything else. Within a rank, bools order false < true,
// numbers compare numerically across Go kinds, strings compare bytewise,
// array-likes compare by length and then element by element, and other
// values compare by their fmt representation.
func Compare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNil:
		return 0
	case rankBool:
		x, y := a.(bool), b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case rankNumber:
		return compareNumbers(a, b)
	case rankString:
		return strings.Compare(a.(string), b.(string))
	case rankArray:
		va, _ := ToMap(a)
		vb, _ := ToMap(b)
		if c := cmp.Compare(va.Len(), vb.Len()); c != 0 {
			return c
		}
		x, y := va.Values(), vb.Values()
		for i := range x {
			if c := Compare(x[i], y[i]); c != 0 {
				return c
			}
		}
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankArray
	rankOther
)

func rank(v any) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case string:
		return rankString
	}
	if numberClass(v) != 0 {
		return rankNumber
	}
	if IsArrayLike(v) {
		return rankArray
	}
	if isNilPointer(v) {
		return rankNil
	}
	return rankOther
}

func compareNumbers(a, b any) int {
	if ia, ok := toInt64(a); ok {
		if ib, ok := toInt64(b); ok {
			return cmp.Compare(ia, ib)
		}
	}
	fa, _ := ToFloat(a)
	fb, _ := ToFloat(b)
	return cmp.Compare(fa, fb)
}

func toInt64(v any) (int64, bool) {
	if n, ok := v.(json.Number); ok {
		i, err := n.Int64()
		return i, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	}
	return 0, false
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
