package chip8

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

// framebufferPalette is the two-color palette a CHIP-8 display renders
// with. The teacher's window code picked its border color from this same
// colornames package; here it supplies the on/off pixel colors for a
// pure-data snapshot instead of a live window.
var framebufferPalette = color.Palette{colornames.Black, colornames.White}

const (
	paletteOff = 0
	paletteOn  = 1
)

// ToImage renders a Present() snapshot as a two-color image.Image. This is
// presentation of an already-computed bitmap, not the host window/blitter
// spec.md excludes: no event loop, no device I/O, just a pure conversion a
// caller can hand to any Go image encoder.
func ToImage(frame [ScreenHeight][ScreenWidth]bool) image.Image {
	img := image.NewPaletted(image.Rect(0, 0, ScreenWidth, ScreenHeight), framebufferPalette)
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if frame[y][x] {
				img.SetColorIndex(x, y, paletteOn)
			} else {
				img.SetColorIndex(x, y, paletteOff)
			}
		}
	}
	return img
}
