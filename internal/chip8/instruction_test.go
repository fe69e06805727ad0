package chip8

import "testing"

func TestDecodeTable(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		want Instruction
	}{
		{"ClearScreen", 0x00E0, Instruction{Kind: ClearScreen, Raw: 0x00E0}},
		{"Return", 0x00EE, Instruction{Kind: Return, Raw: 0x00EE}},
		{"unknown 0x0xxx", 0x0123, Instruction{Kind: NoOp, Raw: 0x0123}},
		{"Jump", 0x1234, Instruction{Kind: Jump, NNN: Address(0x234), Raw: 0x1234}},
		{"Call", 0x2345, Instruction{Kind: Call, NNN: Address(0x345), Raw: 0x2345}},
		{"IfNot", 0x3A12, Instruction{Kind: IfNot, X: VA, NN: 0x12, Raw: 0x3A12}},
		{"If", 0x4B34, Instruction{Kind: If, X: VB, NN: 0x34, Raw: 0x4B34}},
		{"IfNotRegisters", 0x5120, Instruction{Kind: IfNotRegisters, X: V1, Y: V2, Raw: 0x5120}},
		{"IfNotRegisters non-zero low nibble is NoOp", 0x5121, Instruction{Kind: NoOp, Raw: 0x5121}},
		{"Store", 0x6A42, Instruction{Kind: Store, X: VA, NN: 0x42, Raw: 0x6A42}},
		{"Add", 0x7A01, Instruction{Kind: Add, X: VA, NN: 0x01, Raw: 0x7A01}},
		{"Copy", 0x8120, Instruction{Kind: Copy, X: V1, Y: V2, Raw: 0x8120}},
		{"Or", 0x8121, Instruction{Kind: Or, X: V1, Y: V2, Raw: 0x8121}},
		{"And", 0x8122, Instruction{Kind: And, X: V1, Y: V2, Raw: 0x8122}},
		{"Xor", 0x8123, Instruction{Kind: Xor, X: V1, Y: V2, Raw: 0x8123}},
		{"AddRegister", 0x8124, Instruction{Kind: AddRegister, X: V1, Y: V2, Raw: 0x8124}},
		{"SubRegister", 0x8125, Instruction{Kind: SubRegister, X: V1, Y: V2, Raw: 0x8125}},
		{"ShiftRight", 0x8126, Instruction{Kind: ShiftRight, X: V1, Y: V2, Raw: 0x8126}},
		{"SubFromRegister", 0x8127, Instruction{Kind: SubFromRegister, X: V1, Y: V2, Raw: 0x8127}},
		{"ShiftLeft", 0x812E, Instruction{Kind: ShiftLeft, X: V1, Y: V2, Raw: 0x812E}},
		{"0x8 unknown low nibble is NoOp", 0x8128, Instruction{Kind: NoOp, Raw: 0x8128}},
		{"IfRegisters", 0x9120, Instruction{Kind: IfRegisters, X: V1, Y: V2, Raw: 0x9120}},
		{"IfRegisters non-zero low nibble is NoOp", 0x9121, Instruction{Kind: NoOp, Raw: 0x9121}},
		{"StoreAddress", 0xA123, Instruction{Kind: StoreAddress, NNN: Address(0x123), Raw: 0xA123}},
		{"JumpOffset", 0xB123, Instruction{Kind: JumpOffset, NNN: Address(0x123), Raw: 0xB123}},
		{"Rand", 0xC1FF, Instruction{Kind: Rand, X: V1, NN: 0xFF, Raw: 0xC1FF}},
		{"Draw", 0xD125, Instruction{Kind: Draw, X: V1, Y: V2, N: 0x5, Raw: 0xD125}},
		{"IfNotPressed", 0xE19E, Instruction{Kind: IfNotPressed, X: V1, Raw: 0xE19E}},
		{"IfPressed", 0xE1A1, Instruction{Kind: IfPressed, X: V1, Raw: 0xE1A1}},
		{"0xE unknown is NoOp", 0xE100, Instruction{Kind: NoOp, Raw: 0xE100}},
		{"ReadDelay", 0xF107, Instruction{Kind: ReadDelay, X: V1, Raw: 0xF107}},
		{"ReadInput", 0xF10A, Instruction{Kind: ReadInput, X: V1, Raw: 0xF10A}},
		{"SetDelay", 0xF115, Instruction{Kind: SetDelay, X: V1, Raw: 0xF115}},
		{"SetSound", 0xF118, Instruction{Kind: SetSound, X: V1, Raw: 0xF118}},
		{"AddAddress", 0xF11E, Instruction{Kind: AddAddress, X: V1, Raw: 0xF11E}},
		{"LoadSprite", 0xF129, Instruction{Kind: LoadSprite, X: V1, Raw: 0xF129}},
		{"WriteDecimal", 0xF133, Instruction{Kind: WriteDecimal, X: V1, Raw: 0xF133}},
		{"Write", 0xF155, Instruction{Kind: Write, X: V1, Raw: 0xF155}},
		{"Read", 0xF165, Instruction{Kind: Read, X: V1, Raw: 0xF165}},
		{"0xF unknown is NoOp", 0xF199, Instruction{Kind: NoOp, Raw: 0xF199}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.word)
			if got != tt.want {
				t.Errorf("Decode(%#04X) = %+v, want %+v", tt.word, got, tt.want)
			}
		})
	}
}

func TestInstructionString(t *testing.T) {
	instr := Decode(0x00E0)
	if got, want := instr.String(), "ClearScreen(0X00E0)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
