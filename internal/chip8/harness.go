package chip8

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// StopCondition is a predicate the Harness checks before running each
// frame. spec.md §4.9 names four variants; Go has no enum-with-payload, so
// each is a small closure constructor instead.
type StopCondition func(e *Executor) bool

// MaxCycles stops once more than n instructions have executed in total.
func MaxCycles(n uint64) StopCondition {
	return func(e *Executor) bool { return e.CycleCount() > n }
}

// MaxFrames stops once more than n frames have been stepped.
func MaxFrames(n uint64) StopCondition {
	return func(e *Executor) bool { return e.FrameCount() > n }
}

// ProgramCounter is met when PC equals addr. RunToCompletion checks it only
// between frames, so a PC that passes through addr mid-frame does not stop
// the run.
func ProgramCounter(addr Address) StopCondition {
	return func(e *Executor) bool { return e.ProgramCounter() == addr }
}

// PromptForInput stops just before a ReadInput (FX0A) instruction would
// execute, the natural place for an interactive host to pause and collect
// a keypress.
func PromptForInput() StopCondition {
	return func(e *Executor) bool { return e.NextInstruction().Kind == ReadInput }
}

// RunToCompletion steps frames (with no keypad input) until the Executor
// halts on its own or any condition is met.
func RunToCompletion(e *Executor, conditions ...StopCondition) {
	for {
		if e.Stopped() {
			return
		}
		for _, cond := range conditions {
			if cond(e) {
				return
			}
		}
		e.StepFrame(nil)
	}
}

// DumpRegisters produces the deterministic, upper-case-hex snapshot used as
// the oracle for conformance tests: all 16 registers, the two timers, the
// call-stack depth, I with the 4 bytes starting at I, and PC with the 4
// bytes starting at PC.
func (e *Executor) DumpRegisters() string {
	var b strings.Builder

	b.WriteString("0-F:")
	for _, v := range e.registers.GetRange(VF) {
		fmt.Fprintf(&b, " %02X", v)
	}

	delay, sound := e.ReadTimers()
	fmt.Fprintf(&b, " D: %02X S: %02X CS: %02X", delay, sound, e.stack.Len())

	i := e.indexRegister
	fmt.Fprintf(&b, " I: %04X (%02X %02X %02X %02X)", i,
		e.memory.Get(Address(i)), e.memory.Get(Address(i+1)),
		e.memory.Get(Address(i+2)), e.memory.Get(Address(i+3)))

	pc := e.programCounter.Uint16()
	fmt.Fprintf(&b, " PC: %04X (%02X %02X %02X %02X)", pc,
		e.memory.Get(e.programCounter), e.memory.Get(e.programCounter.WrappingAdd(1)),
		e.memory.Get(e.programCounter.WrappingAdd(2)), e.memory.Get(e.programCounter.WrappingAdd(3)))

	return b.String()
}

// DebugDump is a verbose, unstable-format state dump for interactive
// debugging — distinct from DumpRegisters, which must stay fixed for
// conformance tests to treat as an oracle.
func (e *Executor) DebugDump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cycle=%d frame=%d pc=%s i=%#06X stopped=%v\n",
		e.cycleCount, e.frameCount, e.programCounter, e.indexRegister, e.stopped)
	fmt.Fprintf(&b, "registers: %s\n", e.registers.String())
	fmt.Fprintf(&b, "stack (top first): %s\n", e.stack.String())
	fmt.Fprintf(&b, "keys held: %s\n", e.keypad.String())
	fmt.Fprintf(&b, "quirks: %s\n", spew.Sdump(e.quirks))
	fmt.Fprintf(&b, "%s\n", e.screen.String())
	return b.String()
}
