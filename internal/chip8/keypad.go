package chip8

import (
	"fmt"
	"strings"
)

// KeyState is the three-valued state of a single keypad slot. Released is a
// one-frame edge state: it exists purely so FX0A can observe a genuine
// press-then-release even if both happened inside a single frame, a case a
// plain Pressed/Unpressed model loses entirely.
type KeyState uint8

const (
	Unpressed KeyState = iota
	Pressed
	Released
)

func (s KeyState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "unpressed"
	}
}

// KeyEdge is a caller-supplied transition for a single key, used to build a
// KeypadUpdate.
type KeyEdge uint8

const (
	// KeyPress marks a key as newly/still pressed.
	KeyPress KeyEdge = iota
	// KeyRelease marks a key as released this frame.
	KeyRelease
)

// KeypadUpdate is a host-supplied mapping from key index (0x0..0xF) to the
// edge observed for it. Keys absent from the map are left unchanged.
type KeypadUpdate map[uint8]KeyEdge

// Keypad is the 16-key CHIP-8 hex keypad.
type Keypad struct {
	states [16]KeyState
}

// IsPressed reports whether the key is currently held down.
func (k Keypad) IsPressed(key uint8) bool {
	return k.states[key&0xF] == Pressed
}

// JustReleased returns the lowest-indexed key that transitioned
// Pressed->Released during the most recently latched frame, and whether any
// key qualified. This is the signal FX0A blocks on.
func (k Keypad) JustReleased() (uint8, bool) {
	for i, s := range k.states {
		if s == Released {
			return uint8(i), true
		}
	}
	return 0, false
}

// withEdges applies a KeypadUpdate on top of k, returning the result. Keys
// not present in update retain their existing state.
func (k Keypad) withEdges(update KeypadUpdate) Keypad {
	out := k
	for key, edge := range update {
		idx := key & 0xF
		switch edge {
		case KeyPress:
			out.states[idx] = Pressed
		case KeyRelease:
			out.states[idx] = Released
		}
	}
	return out
}

// decayed returns k with every Released slot transitioned to Unpressed,
// ready to receive the next frame's edges. Pressed slots persist.
func (k Keypad) decayed() Keypad {
	out := k
	for i, s := range out.states {
		if s == Released {
			out.states[i] = Unpressed
		}
	}
	return out
}

// String lists the keys currently held down.
func (k Keypad) String() string {
	var held []string
	for i, s := range k.states {
		if s == Pressed {
			held = append(held, fmt.Sprintf("%X", i))
		}
	}
	return strings.Join(held, " ")
}
