package chip8

import (
	"math/rand"
	"time"
)

// defaultInstructionsPerFrame matches spec.md's default cadence: 10
// instructions executed per 60 Hz frame (~600 instructions/sec).
const defaultInstructionsPerFrame = 10

// Executor owns the full VM state and runs the fetch-decode-execute loop
// described in spec.md §4.8. It is single-threaded and cooperative: no
// operation suspends except the PC rewinds of a blocked FX0A and of a Draw
// stalled by the DisplayWait quirk, which advance no wall-clock time.
type Executor struct {
	memory         Memory
	registers      Registers
	stack          Stack
	indexRegister  uint16
	programCounter Address

	delay Timer
	sound Timer

	keypad       Keypad
	pendingEdges KeypadUpdate

	screen Screen

	quirks                 Quirks
	instructionsPerFrame   int
	frameBoundaryCrossed   bool
	suppressCycleIncrement bool

	stopped   bool
	stopError error

	cycleCount uint64
	frameCount uint64

	rng *rand.Rand
}

// NewExecutor returns a freshly reset Executor, ready to Load a ROM.
func NewExecutor() *Executor {
	e := &Executor{
		instructionsPerFrame: defaultInstructionsPerFrame,
		rng:                  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.reset()
	return e
}

// Seed makes CXNN's output deterministic, the injectable-PRNG hook spec.md
// §9 calls for. Load does not reseed, so calling this before or after
// loading a ROM gives the same sequence.
func (e *Executor) Seed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// SetQuirks installs a new Quirks configuration.
func (e *Executor) SetQuirks(q Quirks) {
	e.quirks = q
}

// Quirks returns the currently configured Quirks.
func (e *Executor) Quirks() Quirks {
	return e.quirks
}

// SetInstructionsPerFrame changes how many instructions StepFrame executes
// before ticking timers. Must be positive; zero or negative values are
// ignored.
func (e *Executor) SetInstructionsPerFrame(n int) {
	if n > 0 {
		e.instructionsPerFrame = n
	}
}

func (e *Executor) reset() {
	e.memory = NewMemory()
	e.registers = Registers{}
	e.stack = Stack{}
	e.indexRegister = 0
	e.programCounter = StartingAddress()
	e.delay = Timer{}
	e.sound = Timer{}
	e.keypad = Keypad{}
	e.pendingEdges = nil
	e.screen = Screen{}
	e.frameBoundaryCrossed = false
	e.stopped = false
	e.stopError = nil
	e.cycleCount = 0
	e.frameCount = 0
}

// Load resets the VM and copies rom into memory starting at 0x200. A ROM
// that would not fit in the 0x200..0xFFF program area (0xE00 bytes) is
// rejected: the VM is left freshly reset rather than partially loaded.
func (e *Executor) Load(rom []byte) error {
	e.reset()
	if len(rom) > memorySize-startingAddress {
		return ErrROMTooLarge
	}
	e.memory.SetRange(StartingAddress(), rom)
	return nil
}

// Stopped reports whether the Executor has halted, either cooperatively
// (a jump-to-self) or fatally (a call-stack overflow).
func (e *Executor) Stopped() bool {
	return e.stopped
}

// StopError returns the fatal error that stopped the Executor, if any.
// A cooperative halt-on-self stop leaves this nil.
func (e *Executor) StopError() error {
	return e.stopError
}

// CycleCount is the total number of instructions executed so far (FX0A's
// blocking rewind does not net-advance this).
func (e *Executor) CycleCount() uint64 {
	return e.cycleCount
}

// FrameCount is the total number of frames stepped so far.
func (e *Executor) FrameCount() uint64 {
	return e.frameCount
}

// ProgramCounter returns the current PC.
func (e *Executor) ProgramCounter() Address {
	return e.programCounter
}

// IndexRegister returns the current 16-bit value of I. Per spec.md §3,
// values above 0xFFF are legal and wrap only when used to address Memory.
func (e *Executor) IndexRegister() uint16 {
	return e.indexRegister
}

// Registers exposes the register file for read access (dumps, tests).
func (e *Executor) Registers() *Registers {
	return &e.registers
}

// Memory exposes the address space for read access (dumps, tests).
func (e *Executor) Memory() *Memory {
	return &e.memory
}

// Stack exposes the call stack for read access (dumps, tests).
func (e *Executor) Stack() *Stack {
	return &e.stack
}

// Keypad exposes the latched input state for read access.
func (e *Executor) Keypad() Keypad {
	return e.keypad
}

// UpdateInput queues key edges to be applied at the next frame boundary.
// A host may call this any number of times before the next StepFrame; the
// edges accumulate (later calls for the same key override earlier ones).
func (e *Executor) UpdateInput(update KeypadUpdate) {
	if len(update) == 0 {
		return
	}
	if e.pendingEdges == nil {
		e.pendingEdges = make(KeypadUpdate, len(update))
	}
	for key, edge := range update {
		e.pendingEdges[key] = edge
	}
}

// ReadTimers returns the current (delay, sound) counts. A non-zero sound
// value denotes the buzzer being active.
func (e *Executor) ReadTimers() (delay, sound byte) {
	return e.delay.Get(), e.sound.Get()
}

// Present returns a snapshot of the 64x32 display. The returned value is a
// copy; the host may hold onto it indefinitely without it changing under
// it.
func (e *Executor) Present() [ScreenHeight][ScreenWidth]bool {
	return e.screen.Snapshot()
}

// latchInput commits any pending key edges, rolling Released slots back to
// Unpressed so the next round of edges starts clean. Runs exactly once per
// frame, before the frame's first instruction.
func (e *Executor) latchInput() {
	base := e.keypad.decayed()
	e.keypad = base.withEdges(e.pendingEdges)
	e.pendingEdges = nil
}

// StepFrame latches update (merged with anything already queued via
// UpdateInput), executes instructionsPerFrame instructions, then ticks the
// delay and sound timers exactly once. It stops early if the Executor
// becomes Stopped mid-frame.
func (e *Executor) StepFrame(update KeypadUpdate) {
	e.UpdateInput(update)
	e.latchInput()

	for i := 0; i < e.instructionsPerFrame; i++ {
		if e.stopped {
			break
		}
		e.StepInstruction()
	}

	e.frameCount++
	e.delay.Tick()
	e.sound.Tick()

	if e.quirks.DisplayWait {
		e.frameBoundaryCrossed = false
	}
}

// StepInstruction performs exactly one fetch-decode-execute cycle: it does
// not touch the timers or the input latch. cycleCount is incremented unless
// the instruction was a blocked ReadInput, which leaves it net unchanged.
func (e *Executor) StepInstruction() {
	if e.stopped {
		return
	}

	instr := e.memory.GetInstruction(e.programCounter)
	e.programCounter = e.programCounter.NextInstruction()

	e.suppressCycleIncrement = false
	e.exec(instr)

	if !e.suppressCycleIncrement {
		e.cycleCount++
	}
}

// NextInstruction returns the instruction that would execute if
// StepInstruction were called right now, without mutating any state. The
// Harness's PromptForInput stop condition relies on this.
func (e *Executor) NextInstruction() Instruction {
	return e.memory.GetInstruction(e.programCounter)
}

func (e *Executor) haltOnSelfJump(instructionAddr, target Address) {
	if target == instructionAddr {
		e.stopped = true
	}
}

func (e *Executor) exec(instr Instruction) {
	instructionAddr := e.programCounter.WrappingSub(2)

	switch instr.Kind {
	case NoOp:
		// Unknown bit pattern: deliberately a no-effect step.

	case ClearScreen:
		e.screen.Clear()

	case Return:
		addr, err := e.stack.Pop()
		if err != nil {
			// Undefined on real hardware; we adopt "return to address 0"
			// rather than treat this as fatal.
			e.programCounter = Address(0)
			return
		}
		e.programCounter = addr

	case Jump:
		e.programCounter = instr.NNN
		e.haltOnSelfJump(instructionAddr, instr.NNN)

	case Call:
		if err := e.stack.Push(e.programCounter); err != nil {
			e.stopped = true
			e.stopError = err
			return
		}
		e.programCounter = instr.NNN
		e.haltOnSelfJump(instructionAddr, instr.NNN)

	case IfNot:
		if e.registers.Get(instr.X) == instr.NN {
			e.programCounter = e.programCounter.NextInstruction()
		}

	case If:
		if e.registers.Get(instr.X) != instr.NN {
			e.programCounter = e.programCounter.NextInstruction()
		}

	case IfNotRegisters:
		if e.registers.Get(instr.X) == e.registers.Get(instr.Y) {
			e.programCounter = e.programCounter.NextInstruction()
		}

	case Store:
		e.registers.Set(instr.X, instr.NN)

	case Add:
		e.registers.Set(instr.X, e.registers.Get(instr.X)+instr.NN)

	case Copy:
		e.registers.Set(instr.X, e.registers.Get(instr.Y))

	case Or:
		e.registers.Set(instr.X, e.registers.Get(instr.X)|e.registers.Get(instr.Y))
		if e.quirks.VFReset {
			e.registers.Set(VF, 0)
		}

	case And:
		e.registers.Set(instr.X, e.registers.Get(instr.X)&e.registers.Get(instr.Y))
		if e.quirks.VFReset {
			e.registers.Set(VF, 0)
		}

	case Xor:
		e.registers.Set(instr.X, e.registers.Get(instr.X)^e.registers.Get(instr.Y))
		if e.quirks.VFReset {
			e.registers.Set(VF, 0)
		}

	case AddRegister:
		vx, vy := e.registers.Get(instr.X), e.registers.Get(instr.Y)
		sum := uint16(vx) + uint16(vy)
		e.registers.Set(instr.X, byte(sum))
		if sum > 0xFF {
			e.registers.Set(VF, 1)
		} else {
			e.registers.Set(VF, 0)
		}

	case SubRegister:
		vx, vy := e.registers.Get(instr.X), e.registers.Get(instr.Y)
		e.registers.Set(instr.X, vx-vy)
		if vx >= vy {
			e.registers.Set(VF, 1)
		} else {
			e.registers.Set(VF, 0)
		}

	case ShiftRight:
		src := e.registers.Get(instr.Y)
		if e.quirks.Shift {
			src = e.registers.Get(instr.X)
		}
		e.registers.Set(instr.X, src>>1)
		e.registers.Set(VF, src&0x1)

	case SubFromRegister:
		vx, vy := e.registers.Get(instr.X), e.registers.Get(instr.Y)
		e.registers.Set(instr.X, vy-vx)
		if vy >= vx {
			e.registers.Set(VF, 1)
		} else {
			e.registers.Set(VF, 0)
		}

	case ShiftLeft:
		src := e.registers.Get(instr.Y)
		if e.quirks.Shift {
			src = e.registers.Get(instr.X)
		}
		e.registers.Set(instr.X, src<<1)
		e.registers.Set(VF, (src>>7)&0x1)

	case IfRegisters:
		if e.registers.Get(instr.X) != e.registers.Get(instr.Y) {
			e.programCounter = e.programCounter.NextInstruction()
		}

	case StoreAddress:
		e.indexRegister = instr.NNN.Uint16()

	case JumpOffset:
		target := instr.NNN.WrappingAdd(uint16(e.registers.Get(V0)))
		e.programCounter = target
		e.haltOnSelfJump(instructionAddr, target)

	case Rand:
		e.registers.Set(instr.X, byte(e.rng.Intn(256))&instr.NN)

	case Draw:
		e.execDraw(instr)

	case IfNotPressed:
		if e.keypad.IsPressed(e.registers.Get(instr.X)) {
			e.programCounter = e.programCounter.NextInstruction()
		}

	case IfPressed:
		if !e.keypad.IsPressed(e.registers.Get(instr.X)) {
			e.programCounter = e.programCounter.NextInstruction()
		}

	case ReadDelay:
		e.registers.Set(instr.X, e.delay.Get())

	case ReadInput:
		if key, ok := e.keypad.JustReleased(); ok {
			e.registers.Set(instr.X, key)
		} else {
			e.programCounter = e.programCounter.WrappingSub(2)
			e.suppressCycleIncrement = true
		}

	case SetDelay:
		e.delay.Set(e.registers.Get(instr.X))

	case SetSound:
		e.sound.Set(e.registers.Get(instr.X))

	case AddAddress:
		e.indexRegister += uint16(e.registers.Get(instr.X))

	case LoadSprite:
		e.indexRegister = SpriteAddress(e.registers.Get(instr.X)).Uint16()

	case WriteDecimal:
		v := e.registers.Get(instr.X)
		e.memory.Set(Address(e.indexRegister), v/100)
		e.memory.Set(Address(e.indexRegister+1), (v/10)%10)
		e.memory.Set(Address(e.indexRegister+2), v%10)

	case Write:
		for r := 0; r <= int(instr.X); r++ {
			e.memory.Set(Address(e.indexRegister+uint16(r)), e.registers.Get(Register(r)))
		}
		e.advanceIndexAfterBulkTransfer(instr.X)

	case Read:
		for r := 0; r <= int(instr.X); r++ {
			e.registers.Set(Register(r), e.memory.Get(Address(e.indexRegister+uint16(r))))
		}
		e.advanceIndexAfterBulkTransfer(instr.X)
	}
}

func (e *Executor) advanceIndexAfterBulkTransfer(last Register) {
	if e.quirks.MemoryIncrementByX {
		e.indexRegister += uint16(last)
	} else {
		e.indexRegister += uint16(last) + 1
	}
}

func (e *Executor) execDraw(instr Instruction) {
	if e.quirks.DisplayWait && e.frameBoundaryCrossed {
		// Already drew once this frame; stall by re-fetching this same
		// instruction next cycle.
		e.programCounter = e.programCounter.WrappingSub(2)
		return
	}

	sprite := make([]byte, instr.N)
	for row := range sprite {
		sprite[row] = e.memory.Get(Address(e.indexRegister + uint16(row)))
	}

	collision := e.screen.Draw(e.registers.Get(instr.X), e.registers.Get(instr.Y), sprite)
	if collision {
		e.registers.Set(VF, 1)
	} else {
		e.registers.Set(VF, 0)
	}

	e.frameBoundaryCrossed = true
}
