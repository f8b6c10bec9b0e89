package engine

import (
	"sync"

	"github.com/san-kum/spincube/internal/input"
)

// Orientation holds the accumulated rotation angles shared between the
// input reader and the render loop. Each scalar is guarded by its own
// mutex, held only for the single read or add; the (x, y) pair is
// deliberately not atomic as a unit, so a frame may observe an x update
// before the matching y lands. Angles grow without bound and wrap only
// through trigonometric periodicity.
type Orientation struct {
	muX, muY sync.Mutex
	x, y     float64
}

func (o *Orientation) AddX(dx float64) {
	o.muX.Lock()
	o.x += dx
	o.muX.Unlock()
}

func (o *Orientation) AddY(dy float64) {
	o.muY.Lock()
	o.y += dy
	o.muY.Unlock()
}

// Apply accumulates one delta, each axis under its own lock.
func (o *Orientation) Apply(d input.Delta) {
	o.AddX(d.X)
	o.AddY(d.Y)
}

// Angles reads the current pair, one lock at a time.
func (o *Orientation) Angles() (x, y float64) {
	o.muX.Lock()
	x = o.x
	o.muX.Unlock()
	o.muY.Lock()
	y = o.y
	o.muY.Unlock()
	return x, y
}
