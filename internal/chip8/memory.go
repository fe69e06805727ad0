package chip8

import (
	"fmt"
	"strings"
)

// memorySize is the full 4 KiB address space.
const memorySize = 0x1000

// Memory is the CHIP-8's flat 4096-byte address space.
type Memory struct {
	bytes [memorySize]byte
}

// NewMemory returns a reset Memory: the reserved ranges (0x000..0x200 and
// 0xE90..0xFFF) are filled with 0xFF for visualization, the program area is
// zeroed, and the font ROM is installed at FontBase.
func NewMemory() Memory {
	var m Memory
	for addr := 0; addr < startingAddress; addr++ {
		m.bytes[addr] = 0xFF
	}
	for addr := 0xE90; addr <= 0xFFF; addr++ {
		m.bytes[addr] = 0xFF
	}
	m.installFont()
	return m
}

// Get reads a single byte, wrapping the address modulo the address space.
func (m *Memory) Get(addr Address) byte {
	return m.bytes[uint16(addr)%memorySize]
}

// Set writes a single byte, wrapping the address modulo the address space.
func (m *Memory) Set(addr Address, value byte) {
	m.bytes[uint16(addr)%memorySize] = value
}

// GetRange reads the half-open range [start, end). Per spec.md §9, ranges
// that would cross the 0xFFF boundary are rejected rather than silently
// wrapped: no correct CHIP-8 program relies on a wrapping read, and
// wrapping would hide bugs instead of surfacing them.
func (m *Memory) GetRange(start, end Address) ([]byte, error) {
	if end < start {
		return nil, fmt.Errorf("%w: end %s precedes start %s", ErrAddressOutOfRange, end, start)
	}
	if uint16(end) > memorySize {
		return nil, fmt.Errorf("%w: range [%s, %s) crosses 0xFFF", ErrAddressOutOfRange, start, end)
	}
	out := make([]byte, end-start)
	copy(out, m.bytes[uint16(start):uint16(end)])
	return out, nil
}

// SetRange writes data starting at start. Bytes that would land past 0xFFF
// are silently dropped, matching spec.md §4.1.
func (m *Memory) SetRange(start Address, data []byte) {
	for i, b := range data {
		addr := uint16(start) + uint16(i)
		if addr >= memorySize {
			return
		}
		m.bytes[addr] = b
	}
}

// GetInstruction fetches the big-endian 16-bit word at addr and decodes it.
// The fetch itself wraps at the end of memory; decoding never fails (unknown
// patterns decode to NoOp).
func (m *Memory) GetInstruction(addr Address) Instruction {
	hi := m.Get(addr)
	lo := m.Get(addr.WrappingAdd(1))
	word := uint16(hi)<<8 | uint16(lo)
	return Decode(word)
}

func (m *Memory) installFont() {
	m.SetRange(Address(fontBase), fontData[:])
}

// String renders a 16-column, address-prefixed hex dump, the way a debugger
// would print raw memory.
func (m *Memory) String() string {
	const chunkSize = 16
	var b strings.Builder
	b.WriteString("       00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F\n")
	for row := 0; row < memorySize; row += chunkSize {
		fmt.Fprintf(&b, "%#05X:", row)
		for col := 0; col < chunkSize; col++ {
			fmt.Fprintf(&b, " %02X", m.bytes[row+col])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
