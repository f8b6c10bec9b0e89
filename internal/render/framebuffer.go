package render

import "strings"

const blank = ' '

// Framebuffer is a Height x Width character grid. Cells start blank and are
// overwritten with the marker glyph by Set and DrawLine. A buffer is built
// fresh for every frame and discarded after it is flushed.
type Framebuffer struct {
	Width, Height int
	Mark          byte
	rows          [][]byte
}

func NewFramebuffer(w, h int, mark byte) *Framebuffer {
	fb := &Framebuffer{Width: w, Height: h, Mark: mark, rows: make([][]byte, h)}
	for i := range fb.rows {
		fb.rows[i] = make([]byte, w)
		for j := range fb.rows[i] {
			fb.rows[i][j] = blank
		}
	}
	return fb
}

// Set plots the marker at (x, y). Out-of-bounds writes are dropped here
// rather than assumed away by clamped input.
func (fb *Framebuffer) Set(x, y int) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.rows[y][x] = fb.Mark
}

// Clear resets every cell to blank.
func (fb *Framebuffer) Clear() {
	for i := range fb.rows {
		for j := range fb.rows[i] {
			fb.rows[i][j] = blank
		}
	}
}

// Row returns the backing bytes of row y.
func (fb *Framebuffer) Row(y int) []byte { return fb.rows[y] }

// DrawLine rasterizes a segment using Bresenham's algorithm: absolute
// deltas, per-axis step signs, and a doubled error term decide which axes
// advance each step. The loop exits when the current point reaches the
// endpoint, which is always reachable from integer start coordinates.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		fb.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (fb *Framebuffer) String() string {
	var b strings.Builder
	for _, row := range fb.rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
