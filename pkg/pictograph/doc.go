// Package pictograph defines the data model the placement engine
// consumes: motions, symbolic letters, and the pictograph value that
// binds two colored motions together.
//
// A pictograph is a pure value. Nothing in this package mutates it
// after construction, and the engine in pkg/placement only ever reads
// from it.
package pictograph
