// Package engine owns the frame cadence and the rotation state shared
// between the input reader and the renderer.
//
// Two units of execution exist at runtime: the input.Reader goroutine
// (blocking-read driven) and [Loop.Run] (ticker driven). The only shared
// mutable state between them is [Orientation], two independently guarded
// scalars; see its doc for the interleaving this permits.
package engine
