// Package sequence loads pictograph sequences from manifest files.
//
// A sequence manifest names a word and lists one beat per letter. Each
// beat carries the two motion descriptors the placement engine needs.
// Manifests are authored in TOML or JSON; the loader validates every
// field and converts the raw text into pictograph values.
package sequence
