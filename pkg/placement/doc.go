// Package placement derives where a pictograph glyph sits on screen:
// its pixel offset, its rotation angle, and whether it is mirrored.
//
// Nothing here is stored data. Every result is computed from the
// motion descriptor and pictograph context through a fixed rule
// system: hand-authored lookup tables with documented precedence,
// letter-specific overrides, and a small group action that rotates a
// base offset into one of four grid quadrants.
//
// # Guarantees
//
// All functions are pure and total over well-typed inputs. A table
// miss never panics: location resolution returns a tagged Resolution
// so callers can tell a confident answer from a fallback, rotation
// misses resolve to 0 degrees, and out-of-range quadrant indices
// resolve to a zero offset. Tables are built at package init and never
// mutated, so concurrent use needs no locking.
package placement
