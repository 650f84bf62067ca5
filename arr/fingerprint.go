package arr

import (
	"encoding/json"
	"fmt"
	"hash"
	"iter"
	"math"
	"reflect"
	"slices"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Digest is the fixed-size identity of a value produced by [Fingerprint].
type Digest [blake2b.Size256]byte

// Fingerprint returns a BLAKE2b-256 digest of v's canonical encoding. Two
// values have the same fingerprint exactly when [Equal] reports them equal,
// which makes the digest usable as a map key for values that Go cannot hash
// directly (slices, maps, *Map).
//
// The canonical encoding tags every value with its shape, so 1, 1.0 and "1"
// differ, and it writes array-like entries sorted by key, so key order does
// not matter. Self-referencing containers are encoded with a back-reference
// marker instead of recursing forever.
func Fingerprint(v any) Digest {
	h, _ := blake2b.New256(nil)
	e := &fingerprinter{h: h, seen: make(map[uintptr]bool)}
	e.write(v)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

type fingerprinter struct {
	h    hash.Hash
	seen map[uintptr]bool
}

func (e *fingerprinter) tag(t byte, body string) {
	e.h.Write([]byte{t})
	e.h.Write([]byte(strconv.Itoa(len(body))))
	e.h.Write([]byte{':'})
	e.h.Write([]byte(body))
}

func (e *fingerprinter) write(v any) {
	switch x := v.(type) {
	case nil:
		e.tag('n', "")
		return
	case bool:
		e.tag('b', strconv.FormatBool(x))
		return
	case string:
		e.tag('s', x)
		return
	case json.Number:
		if i, err := x.Int64(); err == nil {
			e.tag('i', strconv.FormatInt(i, 10))
			return
		}
		if f, err := x.Float64(); err == nil {
			e.float(f)
			return
		}
		e.tag('s', string(x))
		return
	}

	switch numberClass(v) {
	case 1:
		if i, ok := toInt64(v); ok {
			e.tag('i', strconv.FormatInt(i, 10))
		} else {
			e.tag('i', strconv.FormatUint(reflect.ValueOf(v).Uint(), 10))
		}
		return
	case 2:
		f, _ := ToFloat(v)
		e.float(f)
		return
	}

	if seq, ok := Entries(v); ok {
		ptr, tracked := identity(v)
		if tracked {
			if e.seen[ptr] {
				e.tag('r', "")
				return
			}
			e.seen[ptr] = true
			defer delete(e.seen, ptr)
		}
		e.entries(seq)
		return
	}

	if isNilPointer(v) {
		e.tag('n', "")
		return
	}
	e.tag('o', fmt.Sprintf("%T:%#v", v, v))
}

func (e *fingerprinter) float(f float64) {
	if f == 0 {
		f = 0 // folds -0 into +0
	}
	if math.IsNaN(f) {
		e.tag('f', "NaN")
		return
	}
	e.tag('f', strconv.FormatFloat(f, 'g', -1, 64))
}

func (e *fingerprinter) entries(seq iter.Seq2[any, any]) {
	type entry struct {
		key string
		val any
	}
	var list []entry
	for k, item := range seq {
		var key string
		switch nk := NormalizeKey(k).(type) {
		case int:
			key = "i" + strconv.Itoa(nk)
		default:
			key = "s" + KeyString(nk)
		}
		list = append(list, entry{key, item})
	}
	slices.SortFunc(list, func(a, b entry) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		}
		return 0
	})

	e.h.Write([]byte{'['})
	e.h.Write([]byte(strconv.Itoa(len(list))))
	for _, it := range list {
		e.tag('k', it.key)
		e.write(it.val)
	}
	e.h.Write([]byte{']'})
}

// identity returns a pointer-sized identity for reference-like containers so
// cycles can be detected.
func identity(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		return rv.Pointer(), !rv.IsNil()
	case reflect.Slice:
		return rv.Pointer(), rv.Len() > 0
	}
	return 0, false
}
