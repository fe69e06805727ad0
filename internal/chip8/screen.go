package chip8

import "strings"

// Screen dimensions, fixed for the base CHIP-8 spec.
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Screen is the 64x32 monochrome bitplane, addressed [y][x] with (0,0) at
// top-left.
type Screen struct {
	pixels [ScreenHeight][ScreenWidth]bool
}

// Clear blanks every pixel. It does not touch VF; only the Draw instruction
// handler writes the collision flag.
func (s *Screen) Clear() {
	s.pixels = [ScreenHeight][ScreenWidth]bool{}
}

// Lit reports whether the pixel at (x, y) is on.
func (s *Screen) Lit(x, y int) bool {
	return s.pixels[y][x]
}

// Draw XORs an 8-pixel-wide, len(sprite)-row sprite onto the screen at
// (x, y), mod the screen dimensions. Rows/columns that would land outside
// the screen are clipped, not wrapped: spec.md is explicit that sprites
// never wrap at the right/bottom edge. Returns whether any previously-lit
// pixel was turned off (the collision flag destined for VF).
func (s *Screen) Draw(x, y uint8, sprite []byte) bool {
	originX := int(x) % ScreenWidth
	originY := int(y) % ScreenHeight
	collision := false

	for row, spriteRow := range sprite {
		screenY := originY + row
		if screenY >= ScreenHeight {
			break
		}
		for col := 0; col < 8; col++ {
			screenX := originX + col
			if screenX >= ScreenWidth {
				break
			}
			srcBit := spriteRow&(0x80>>uint(col)) != 0
			if !srcBit {
				continue
			}
			if s.pixels[screenY][screenX] {
				collision = true
			}
			s.pixels[screenY][screenX] = !s.pixels[screenY][screenX]
		}
	}

	return collision
}

// Snapshot returns a copy of the pixel grid, safe for a host to hold onto
// across frames — the Executor never mutates a value returned from here.
func (s *Screen) Snapshot() [ScreenHeight][ScreenWidth]bool {
	return s.pixels
}

// String renders the screen as ASCII art, bordered the way a terminal
// debugger would draw it.
func (s *Screen) String() string {
	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(strings.Repeat("-", ScreenWidth))
	b.WriteString("\\\n")
	for _, row := range s.pixels {
		b.WriteByte('|')
		for _, lit := range row {
			if lit {
				b.WriteByte('X')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteByte('\\')
	b.WriteString(strings.Repeat("-", ScreenWidth))
	b.WriteByte('/')
	return b.String()
}
