package chip8

import (
	"strings"
	"testing"
)

func TestMaxCyclesStopCondition(t *testing.T) {
	e := NewExecutor()
	// An infinite loop: Jump to self would halt cooperatively, so instead
	// bounce between two addresses forever.
	rom := []byte{0x12, 0x02, 0x12, 0x00}
	if err := e.Load(rom); err != nil {
		t.Fatalf("Load: %v", err)
	}
	RunToCompletion(e, MaxCycles(5))
	if e.CycleCount() <= 5 {
		t.Errorf("CycleCount() = %d, want > 5 (MaxCycles stops once exceeded)", e.CycleCount())
	}
}

func TestProgramCounterStopCondition(t *testing.T) {
	e := NewExecutor()
	rom := []byte{0x12, 0x02, 0x00, 0x00, 0x12, 0x04}
	if err := e.Load(rom); err != nil {
		t.Fatalf("Load: %v", err)
	}
	RunToCompletion(e, ProgramCounter(Address(0x204)), MaxCycles(1000))
	if e.ProgramCounter() != Address(0x204) {
		t.Errorf("ProgramCounter() = %s, want 0x204", e.ProgramCounter())
	}
}

func TestPromptForInputStopCondition(t *testing.T) {
	e := NewExecutor()
	rom := []byte{0x00, 0xE0, 0xF0, 0x0A} // ClearScreen, then a blocking FX0A
	if err := e.Load(rom); err != nil {
		t.Fatalf("Load: %v", err)
	}
	RunToCompletion(e, PromptForInput(), MaxCycles(1000))
	if e.NextInstruction().Kind != ReadInput {
		t.Errorf("expected to stop right before a ReadInput, next is %s", e.NextInstruction().Kind)
	}
}

func TestDumpRegistersFormat(t *testing.T) {
	e := NewExecutor()
	got := e.DumpRegisters()
	if !strings.HasPrefix(got, "0-F:") {
		t.Fatalf("DumpRegisters() = %q, want it to start with \"0-F:\"", got)
	}
	for _, want := range []string{"D: 00", "S: 00", "CS: 00", "I: 0000", "PC: 0200"} {
		if !strings.Contains(got, want) {
			t.Errorf("DumpRegisters() = %q, want it to contain %q", got, want)
		}
	}
}

func TestDebugDumpIncludesKeyState(t *testing.T) {
	e := NewExecutor()
	got := e.DebugDump()
	if !strings.Contains(got, "registers:") {
		t.Errorf("DebugDump() missing registers section: %q", got)
	}
	if !strings.Contains(got, "keys held:") {
		t.Errorf("DebugDump() missing keypad section: %q", got)
	}
}
