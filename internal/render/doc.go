// Package render maps 3D points onto a terminal character grid.
//
// It contains the two purely geometric stages of the frame pipeline:
//
//   - [Projector]: perspective projection to clamped screen coordinates
//   - [Framebuffer]: a per-frame character grid with Bresenham line
//     rasterization
//
// Both are deterministic and free of I/O; the engine package owns timing
// and output.
package render
