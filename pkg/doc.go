// Package pkg provides the core libraries for pictoplace.
//
// # Overview
//
// Pictoplace derives the on-screen placement of pictograph glyphs from
// abstract motion descriptors. The pkg directory is organized into:
//
//  1. [grid], [pictograph] - Domain vocabulary (locations, modes, motions, letters)
//  2. [placement] - The derivation engine (location, rotation, mirror, quadrants)
//  3. [adjust], [sequence] - Placement data loading and sequence manifests
//  4. [pipeline] - Orchestration (load → derive → encode)
//  5. [cache], [httputil], [server] - Infrastructure (memoization, HTTP, API)
//
// # Quick Start
//
// Derive a placement for one motion:
//
//	import (
//	    "github.com/pictoplace/pictoplace/pkg/grid"
//	    "github.com/pictoplace/pictoplace/pkg/pictograph"
//	    "github.com/pictoplace/pictoplace/pkg/placement"
//	)
//
//	ctx := placement.ContextFor(picto)
//	result := placement.Place(&picto.Primary, ctx, grid.Point{X: 10, Y: 5}, placement.RotationOptions{})
//	// result.Offset, result.Rotation, result.Mirrored
//
// Run the full pipeline over a sequence manifest:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{Manifest: "sequence.toml"})
//
// [grid]: https://pkg.go.dev/github.com/pictoplace/pictoplace/pkg/grid
// [pictograph]: https://pkg.go.dev/github.com/pictoplace/pictoplace/pkg/pictograph
// [placement]: https://pkg.go.dev/github.com/pictoplace/pictoplace/pkg/placement
// [adjust]: https://pkg.go.dev/github.com/pictoplace/pictoplace/pkg/adjust
// [sequence]: https://pkg.go.dev/github.com/pictoplace/pictoplace/pkg/sequence
// [pipeline]: https://pkg.go.dev/github.com/pictoplace/pictoplace/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/pictoplace/pictoplace/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/pictoplace/pictoplace/pkg/httputil
// [server]: https://pkg.go.dev/github.com/pictoplace/pictoplace/pkg/server
package pkg
