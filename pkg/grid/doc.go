// Package grid defines the fixed geometry vocabulary shared by the
// placement engine: the 8 compass locations, grid modes, unit
// separation directions, and a small 2D point type.
//
// Everything in this package is constant data and pure functions. All
// lookup tables are built once at package initialization and never
// mutated, so concurrent reads are always safe.
package grid
