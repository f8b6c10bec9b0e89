// Package term toggles the controlling terminal between raw and canonical
// input mode. Everything here is best-effort: failures are swallowed so a
// missing or non-interactive terminal never prevents rendering.
package term

import (
	"os"

	xterm "golang.org/x/term"
)

// RawMode remembers the terminal state saved when raw mode was entered.
type RawMode struct {
	fd    int
	saved *xterm.State
}

// Enter switches stdin to raw, no-echo mode if it is an interactive
// terminal. On any failure the returned RawMode is a no-op.
func Enter() *RawMode {
	fd := int(os.Stdin.Fd())
	if !xterm.IsTerminal(fd) {
		return &RawMode{fd: fd}
	}
	saved, err := xterm.MakeRaw(fd)
	if err != nil {
		return &RawMode{fd: fd}
	}
	return &RawMode{fd: fd, saved: saved}
}

// Restore returns the terminal to the mode saved by Enter.
func (r *RawMode) Restore() {
	if r.saved != nil {
		_ = xterm.Restore(r.fd, r.saved)
	}
}
