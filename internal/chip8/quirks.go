package chip8

// Quirks selects between mutually incompatible historical behaviors of
// real CHIP-8 hardware variants. The zero value turns every toggle off; the
// "CHIP-8" entry in Presets, not the zero value, is the original COSMAC VIP
// configuration.
type Quirks struct {
	// VFReset clears VF after AND/OR/XOR (8XY1/8XY2/8XY3).
	VFReset bool

	// Shift makes 8XY6/8XYE shift Vx in place, ignoring Vy. When false
	// (the original behavior), Vy is shifted into Vx.
	Shift bool

	// MemoryIncrementByX leaves I at I+x after FX55/FX65, instead of the
	// original I+x+1.
	MemoryIncrementByX bool

	// DisplayWait stalls DXYN until the next frame boundary, matching
	// hardware that could only draw once per vertical blank.
	DisplayWait bool

	// Jump is reserved for the BNNN variant some interpreters use
	// (jump to NNN + Vx instead of NNN + V0). Off by default.
	Jump bool

	// Wrap is reserved for sprite coordinate wrapping behavior some
	// interpreters use instead of clipping. Off by default; this core
	// always clips per spec.md §4.4.
	Wrap bool
}

// Logic is an alias for VFReset, matching the chip-8-database's naming.
func (q Quirks) Logic() bool { return q.VFReset }

// VBlank is an alias for DisplayWait, matching the chip-8-database's naming.
func (q Quirks) VBlank() bool { return q.DisplayWait }

// Presets are convenience Quirks records for a handful of well-known
// historical platforms. This is a small, hardcoded table, not a general
// quirks database (mapping the full chip-8-database platform ID set to
// Quirks is explicitly out of scope per spec.md §9) — it only exists so a
// host doesn't have to hand-assemble the common cases.
var Presets = map[string]Quirks{
	"CHIP-8": {
		VFReset:     true,
		Shift:       false,
		DisplayWait: true,
	},
	"CHIP-48": {
		VFReset:     false,
		Shift:       true,
		DisplayWait: false,
	},
	"SCHIP": {
		VFReset:            false,
		Shift:              true,
		MemoryIncrementByX: true,
		DisplayWait:        false,
	},
}
