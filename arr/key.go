package arr

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// NormalizeKey converts key into the canonical form stored by [Map]: either a
// non-negative int or a string.
//
// The rules mirror PHP array-key coercion so that integer-like strings and
// integers address the same entry:
//
//	NormalizeKey(3)      // 3
//	NormalizeKey("3")    // 3
//	NormalizeKey("03")   // "03"
//	NormalizeKey(-1)     // "-1"
//	NormalizeKey(true)   // 1
//	NormalizeKey(nil)    // ""
//	NormalizeKey(2.9)    // 2
func NormalizeKey(key any) any {
	switch k := key.(type) {
	case int:
		if k < 0 {
			return strconv.Itoa(k)
		}
		return k
	case string:
		if n, ok := canonicalIndex(k); ok {
			return n
		}
		return k
	case nil:
		return ""
	case bool:
		if k {
			return 1
		}
		return 0
	case json.Number:
		if n, err := k.Int64(); err == nil {
			return NormalizeKey(n)
		}
		return NormalizeKey(string(k))
	case float32:
		return floatKey(float64(k))
	case float64:
		return floatKey(k)
	case fmt.Stringer:
		return NormalizeKey(k.String())
	}

	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 || n > math.MaxInt {
			return strconv.FormatInt(n, 10)
		}
		return int(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return strconv.FormatUint(u, 10)
		}
		return int(u)
	case reflect.String:
		return NormalizeKey(rv.String())
	}
	return fmt.Sprint(key)
}

// KeyString returns the string form of a normalized key, as used for JSON
// object members and dot paths.
func KeyString(key any) string {
	switch k := NormalizeKey(key).(type) {
	case int:
		return strconv.Itoa(k)
	case string:
		return k
	}
	return fmt.Sprint(key)
}

func floatKey(f float64) any {
	t := math.Trunc(f)
	if math.IsNaN(f) || math.IsInf(f, 0) || t < 0 || t >= float64(math.MaxInt) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return int(t)
}

// canonicalIndex reports whether s is the decimal form of a non-negative int
// without sign or leading zeros.
func canonicalIndex(s string) (int, bool) {
	if s == "" || len(s) > 19 {
		return 0, false
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
