package chip8

import "fmt"

// addressMask keeps every Address within the CHIP-8's 12-bit address space.
const addressMask = 0x0FFF

// startingAddress is where CHIP-8 programs are loaded; everything below it
// is reserved for the interpreter (font data, in our case).
const startingAddress = 0x200

// Address is a 12-bit program address. All arithmetic on it wraps modulo
// 2^12 so the hot dispatch path never has to branch on overflow.
type Address uint16

// NewAddress masks a raw 16-bit word down to 12 bits.
func NewAddress(word uint16) Address {
	return Address(word & addressMask)
}

// StartingAddress is the reset-state program counter.
func StartingAddress() Address {
	return Address(startingAddress)
}

// StrictAddress constructs an Address, failing if word doesn't fit in 12 bits.
// Internal arithmetic always wraps and never needs this; it exists for the
// one boundary spec.md calls out: "constructing an Address above 0xFFF is
// an error."
func StrictAddress(word uint16) (Address, error) {
	if word > addressMask {
		return 0, fmt.Errorf("%w: %#04x", ErrAddressOutOfRange, word)
	}
	return Address(word), nil
}

// NextInstruction advances by one instruction (2 bytes), wrapping at 12 bits.
func (a Address) NextInstruction() Address {
	return a.WrappingAdd(2)
}

// WrappingAdd adds n to a, wrapping modulo 2^12.
func (a Address) WrappingAdd(n uint16) Address {
	return Address((uint16(a) + n) & addressMask)
}

// WrappingSub subtracts n from a, wrapping modulo 2^12.
func (a Address) WrappingSub(n uint16) Address {
	return Address((uint16(a) - n) & addressMask)
}

// Uint16 returns the raw 12-bit value.
func (a Address) Uint16() uint16 {
	return uint16(a)
}

func (a Address) String() string {
	return fmt.Sprintf("%#05X", uint16(a))
}
