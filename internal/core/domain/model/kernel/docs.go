// Package kernel provides core domain primitives shared across the order
// lifecycle model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
