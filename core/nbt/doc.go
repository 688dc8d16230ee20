// Package nbt decodes and encodes the named binary tag format used by the game
// to serialize inventories and single item stacks.
//
// The decoder produces a generic tree: compounds become Compound (map[string]any),
// lists become List, and scalar tags map onto fixed-size Go numeric types.
// No schema is applied here; feature/item projects the tree into item records.
//
// # Limits
//
// Nesting is limited to 512 levels and any length prefix to 16M entries.
// Arrays grow only as their bytes arrive, so a large claimed length on a short
// stream fails with ErrMalformed instead of being allocated up front. Callers
// decoding untrusted input should still bound the stream itself.
//
// # Strings
//
// Strings use Java's modified UTF-8 on the wire. Decode converts them to
// UTF-8 and Encode writes them back in the same form.
//
// # Usage
//
//	name, root, err := nbt.Decode(r)
//	slots := root.List("i")
package nbt
