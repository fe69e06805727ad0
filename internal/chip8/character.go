package chip8

// fontBase is where the built-in hex-digit font is installed. spec.md
// leaves this to the implementer, within the reserved 0x000..0x200 region;
// 0x050 is the conventional choice (also crab8's FIRST_CHAR_ADDRESS).
const fontBase = 0x050

// charSpriteWidth is the size in bytes of a single font glyph.
const charSpriteWidth = 5

// FontBase exposes the font's install address, per spec.md §9's
// "implementations should expose font_base."
func FontBase() Address {
	return Address(fontBase)
}

// fontData is the built-in 16-glyph hex font, 5 bytes each, one bit per
// pixel column across an 8-pixel-wide row (the low nibble of each byte is
// unused). Values match the widely-used de facto standard CHIP-8 font.
var fontData = [16 * charSpriteWidth]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// SpriteAddress returns where the 5-byte glyph for a hex digit (0x0..0xF)
// lives in memory: FX29's job is to compute exactly this.
func SpriteAddress(digit byte) Address {
	return Address(fontBase).WrappingAdd(uint16(digit&0x0F) * charSpriteWidth)
}
