// Package remap turns flat dot-path inputs into a nested tree.
//
// # Path Syntax
//
// Input paths support:
//   - Plain keys: "name"
//   - Nested keys: "server.port"
//   - Wildcard arrays: "items.*.name", where each element of an array value
//     is assigned to "name" inside the object at the same index of "items"
//
// Wildcard entries sharing a prefix merge by index, so
//
//	items.*.name = ["a", "b"]
//	items.*.port = [1, 2, 3]
//
// produces
//
//	{"items": [{"name": "a", "port": 1}, {"name": "b", "port": 2}, {"port": 3}]}
//
// A path with more than one wildcard, a wildcard at either end, an empty
// prefix or suffix around the wildcard, or a "__proto__" segment is rejected
// with a warning.
//
// # Pipeline
//
// Run cases every input path, merges the inputs with Map and then applies
// Trim, which optionally renames nested keys (deep casing) and prunes the tree
// to a maximum object depth. Array indices never count towards that depth.
package remap
