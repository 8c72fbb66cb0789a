// Package codegen emits Go source for validated bairiak models.
//
// For every enum E the generated file declares the flag type E (one
// constant per flag, ordinal equal to bit index) and the packed type
// EBairiak backed by uint8, uint16, uint32, uint64 or bairiak.Uint128.
// EBairiak has constructors (NewEBairiak, EBairiakFromSet, EBairiakFromRaw),
// the queries IsTrue and IsFalse, and Raw for storage. Values are
// comparable with ==.
//
// Output is formatted with golang.org/x/tools/imports and depends only on
// the model and the options, so regenerating an unchanged spec never
// changes the file.
package codegen
