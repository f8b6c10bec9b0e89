package engine

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/san-kum/spincube/internal/input"
	"github.com/san-kum/spincube/internal/render"
)

const (
	clearScreen = "\x1b[2J\x1b[1;1H"
	instruction = "Use arrow keys to rotate. Ctrl+C to exit."
)

// Loop is the frame orchestrator: it drains pending input deltas into the
// shared orientation, recomputes the projected cube, rasterizes the edges,
// and flushes the frame to the sink at a fixed cadence.
type Loop struct {
	renderer *Renderer
	orient   *Orientation
	queue    *input.Queue
	sink     io.Writer
	interval time.Duration
}

func NewLoop(r *Renderer, o *Orientation, q *input.Queue, sink io.Writer, interval time.Duration) *Loop {
	return &Loop{renderer: r, orient: o, queue: q, sink: sink, interval: interval}
}

// Run renders frames until the context is canceled. There is no other exit:
// the loop is meant to run for the process lifetime.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		l.Tick()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Tick performs one frame: drain input, read angles, render, emit.
func (l *Loop) Tick() {
	l.drainInput()
	x, y := l.orient.Angles()
	l.writeFrame(l.renderer.Frame(x, y))
}

// drainInput applies all currently pending deltas in arrival order. This is
// the only place the render side mutates the shared orientation.
func (l *Loop) drainInput() {
	for _, d := range l.queue.Drain() {
		l.orient.Apply(d)
	}
}

// writeFrame emits clear+home, the full grid row by row, and the static
// instruction line as a single write. Rows end in CRLF because the sink is
// a terminal in raw mode.
func (l *Loop) writeFrame(fb *render.Framebuffer) {
	var b strings.Builder
	b.WriteString(clearScreen)
	for y := 0; y < fb.Height; y++ {
		b.Write(fb.Row(y))
		b.WriteString("\r\n")
	}
	b.WriteString(instruction)
	b.WriteString("\r\n")
	io.WriteString(l.sink, b.String())
}
