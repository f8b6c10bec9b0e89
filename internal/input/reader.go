package input

import (
	"context"
	"errors"
	"io"
)

// Arrow key escape sequences: ESC [ code.
const (
	esc     = 0x1b
	bracket = '['

	codeUp    = 'A'
	codeDown  = 'B'
	codeRight = 'C'
	codeLeft  = 'D'
)

// DefaultStep is the rotation delta applied per arrow key press, in radians.
const DefaultStep = 0.1

// Reader decodes raw terminal bytes into rotation deltas and pushes them
// onto a queue. It recognizes only the 3-byte arrow sequences; everything
// else is silently discarded.
type Reader struct {
	src   io.Reader
	queue *Queue
	step  float64
}

func NewReader(src io.Reader, q *Queue, step float64) *Reader {
	if step == 0 {
		step = DefaultStep
	}
	return &Reader{src: src, queue: q, step: step}
}

// Run loops a blocking 3-byte read until the source is exhausted or the
// context is canceled. Read errors skip the iteration; the next read is the
// retry. Intended to run as a goroutine for the process lifetime.
func (r *Reader) Run(ctx context.Context) {
	buf := make([]byte, 3)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := r.src.Read(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			continue
		}
		if d, ok := r.decode(buf[:n]); ok {
			r.queue.Push(d)
		}
	}
}

func (r *Reader) decode(b []byte) (Delta, bool) {
	if len(b) != 3 || b[0] != esc || b[1] != bracket {
		return Delta{}, false
	}
	switch b[2] {
	case codeUp:
		return Delta{X: r.step}, true
	case codeDown:
		return Delta{X: -r.step}, true
	case codeRight:
		return Delta{Y: r.step}, true
	case codeLeft:
		return Delta{Y: -r.step}, true
	}
	return Delta{}, false
}
