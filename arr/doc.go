// Package arr provides the value layer underneath the collections package:
// an insertion-ordered map, dot-notation access into nested structures, and
// the equality, ordering and encoding rules shared by every collection
// operation. It is inspired by Laravel's Arr facade and data_get / data_set.
//
// # Ordered map
//
// [Map] is a PHP-style array: an ordered association from keys (non-negative
// ints or strings, see [NormalizeKey]) to arbitrary values. It acts as a list
// when its keys are 0 … n-1 and as a dictionary otherwise:
//
//	m := arr.MapOf("name", "Alice", "tags", arr.ListOf("admin", "ops"))
//	m.Append("extra")          // stored under key 0
//	m.IsList()                 // false
//
// # Dot-notation access
//
// [Get], [Set], [Has] and [Forget] address nested values with dot paths.
// Resolution is literal-first: an exact top-level key wins over path
// traversal, so keys that contain dots stay reachable:
//
//	arr.Get(m, "tags.0")               // → "admin"
//	arr.Set(m, "address.city", "Oslo") // creates the intermediate map
//	arr.Has(m, "address.zip")          // → false
//
// Traversal works through *Map, map[string]any, []any, any other slice or
// map, and any type implementing [Accessor]. Scalars end the walk and yield
// the default.
//
// # Value semantics
//
//   - [Equal]: strict structural equality (1 ≠ 1.0 ≠ "1"), backed by a
//     BLAKE2b [Fingerprint] that also serves as a hash key for compound values.
//   - [LooseEqual]: equality with numeric coercion (1 == 1.0 == "1").
//   - [Compare]: a total natural order across heterogeneous values; nil sorts first.
//   - [Truthy] and [ToFloat]: the truthiness and numeric views used by filters
//     and aggregates.
//
// # Encoding
//
// [EncodeJSON]/[DecodeJSON] and [EncodeYAML]/[DecodeYAML] keep member order
// and map list-shaped containers to arrays/sequences and everything else to
// objects/mappings. Self-referencing values fail with [ErrCycle].
//
// # Slice helpers
//
// A handful of generic helpers over plain []T ([Chunk], [Partition], [Sort],
// [Shuffle], [UniqueBy], …) round out the package.
package arr
