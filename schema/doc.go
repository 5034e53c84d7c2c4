// Package schema describes how the columns of a token line map to and from
// in-memory values, and compiles such descriptions into specialized
// parse/serialize routines.
//
// # Overview
//
// A column's conversion is described by a Codec, a decode/encode pair over a
// concrete value type. Codecs compose structurally: a Nullable wraps an inner
// codec, an Array splits on a delimiter and applies its element codec to each
// piece, a Mapping applies a key codec and a value codec to each pair, and so
// on. Via is the escape hatch for arbitrary conversions.
//
// A record schema is an ordered list of fields, each binding one codec to an
// accessor pair on the record type. Compiling the schema resolves every
// field's codec into a single line-level routine, so parsing a corpus pays no
// per-field dispatch cost. Compilation happens once per Schema and the result
// is cached on the Schema itself, guarded for concurrent use.
//
// # Value shapes
//
//   - Optional[V] for values with an empty marker (Nullable)
//   - []V for delimited sequences (Array, FixedArray)
//   - Set[V] for deduplicated sequences (UniqueArray)
//   - map[K]V for key/value pairs (Mapping)
//
// # Errors
//
// Decode-side failures wrap ErrParse, encode-side failures wrap ErrFormat,
// and schema-definition mistakes (two variadic fields, duplicate names) wrap
// ErrSchema and surface when the schema is constructed, not when a line is
// parsed.
package schema
