package chip8

import "testing"

func TestNewAddressMasksTo12Bits(t *testing.T) {
	got := NewAddress(0xFFFF)
	if got != Address(0x0FFF) {
		t.Errorf("NewAddress(0xFFFF) = %s, want 0x0FFF", got)
	}
}

func TestStartingAddress(t *testing.T) {
	if StartingAddress() != Address(0x200) {
		t.Errorf("StartingAddress() = %s, want 0x200", StartingAddress())
	}
}

func TestStrictAddress(t *testing.T) {
	tests := []struct {
		name    string
		word    uint16
		want    Address
		wantErr bool
	}{
		{"zero", 0x0000, Address(0x0000), false},
		{"max in range", 0x0FFF, Address(0x0FFF), false},
		{"one over", 0x1000, 0, true},
		{"well over", 0xFFFF, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StrictAddress(tt.word)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("StrictAddress(%#04x) = %s, nil, want error", tt.word, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("StrictAddress(%#04x) unexpected error: %v", tt.word, err)
			}
			if got != tt.want {
				t.Errorf("StrictAddress(%#04x) = %s, want %s", tt.word, got, tt.want)
			}
		})
	}
}

func TestAddressWrappingAdd(t *testing.T) {
	a := Address(0x0FFE)
	if got := a.WrappingAdd(4); got != Address(0x0002) {
		t.Errorf("0x0FFE.WrappingAdd(4) = %s, want 0x0002", got)
	}
}

func TestAddressWrappingSub(t *testing.T) {
	a := Address(0x0001)
	if got := a.WrappingSub(2); got != Address(0x0FFF) {
		t.Errorf("0x0001.WrappingSub(2) = %s, want 0x0FFF", got)
	}
}

func TestAddressNextInstruction(t *testing.T) {
	a := Address(0x0200)
	if got := a.NextInstruction(); got != Address(0x0202) {
		t.Errorf("NextInstruction() = %s, want 0x0202", got)
	}
}
