// Package ir holds the in-memory model of a bairiak spec and the derived
// bit layouts.
//
// This package contains type definitions, canonical JSON and content hashing
// only. Every other internal package imports ir; ir imports nothing internal.
//
// Key constraints:
//   - Variant order is significant: Variants[i] owns bit i of the packed value
//   - A Model is built once by a spec adapter and never mutated afterwards
//   - Layout IDs and fingerprints are derived from canonical JSON, never from
//     Go's map iteration order
//   - All JSON tags use snake_case
package ir
