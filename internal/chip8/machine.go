package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// StepOutcome describes the effects of a single Step call.
type StepOutcome struct {
	Redraw  bool // the display buffer was written
	Tone    bool // the sound timer requests a tone
	Waiting bool // the key wait instruction is pending, the program counter was not advanced
	Skipped bool // an unknown opcode was skipped
}

// State is a read-only snapshot of the machine registers.
type State struct {
	Registers RegisterFile
	Stack     []uint16 // return addresses, oldest first
	Timers    Timers
	Keys      Keypad
}

// Machine is a CHIP-8 virtual machine. All state is owned by the machine and
// mutated by Step only, the host accesses it through snapshots.
type Machine struct {
	logger *log.Logger
	config Config
	random RandomSource

	memory  Memory
	regs    RegisterFile
	stack   Stack
	timers  Timers
	keypad  Keypad
	display Display
	redraw  bool

	reported set.Set[uint16] // unknown opcodes that were logged already
}

// New returns a new machine that is reset and ready to load a program.
func New(logger *log.Logger, config Config) *Machine {
	m := &Machine{
		logger: logger,
		config: config,
		random: config.Random,
	}
	if m.random == nil {
		m.random = NewRandomSource(0)
	}
	m.Reset()
	return m
}

// Reset clears memory, registers, stack, timers, keys and display, installs
// the font and sets the program counter to ProgramStart.
func (m *Machine) Reset() {
	m.memory = Memory{}
	copy(m.memory[FontAddress:], fontSet[:])
	m.regs = RegisterFile{PC: ProgramStart}
	m.stack = Stack{}
	m.timers = Timers{}
	m.keypad = Keypad{}
	m.display.clear()
	m.redraw = true
	m.reported = set.New[uint16]()
}

// LoadProgram copies the program into memory starting at ProgramStart.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes",
			ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(m.memory[ProgramStart:], program)
	return nil
}

// Step executes the instruction at the program counter. A failed step
// returns an *ExecError and leaves the machine state unchanged.
func (m *Machine) Step() (StepOutcome, error) {
	pc := m.regs.PC
	w, err := m.memory.word(pc)
	if err != nil {
		return StepOutcome{}, &ExecError{Address: pc, Err: err}
	}

	c := cycle{
		pc:   pc,
		op:   opcode(w),
		next: pc + opcodeSize,
	}

	f, ok := decode(w)
	if !ok {
		return m.unknownOpcode(&c)
	}

	if m.config.Trace {
		m.logger.Debug("Executing",
			log.Hex("address", pc),
			log.Hex("opcode", w),
			log.String("instruction", Mnemonic(w)))
	}

	if err := f.exec(m, &c); err != nil {
		return StepOutcome{}, &ExecError{Address: pc, Opcode: w, Err: err}
	}

	m.regs.PC = c.next
	c.outcome.Tone = m.timers.ToneActive()
	return c.outcome, nil
}

func (m *Machine) unknownOpcode(c *cycle) (StepOutcome, error) {
	w := uint16(c.op)
	if m.config.UnknownOpcode == HaltUnknown {
		return StepOutcome{}, &ExecError{Address: c.pc, Opcode: w, Err: ErrUnknownOpcode}
	}

	if !m.reported.Contains(w) {
		m.reported.Add(w)
		m.logger.Warn("Skipping unknown opcode",
			log.Hex("address", c.pc),
			log.Hex("opcode", w))
	}

	m.regs.PC = c.next
	return StepOutcome{
		Skipped: true,
		Tone:    m.timers.ToneActive(),
	}, nil
}

// TickTimers decrements the delay and sound timers, it should be called at
// TimerFrequency. It returns true exactly once when the sound timer reaches
// zero, signaling the host to stop the tone.
func (m *Machine) TickTimers() bool {
	return m.timers.Tick()
}

// SetKey sets the pressed state of a keypad key 0x0-0xF.
func (m *Machine) SetKey(key int, pressed bool) error {
	return m.keypad.Set(key, pressed)
}

// Display returns a snapshot of the display.
func (m *Machine) Display() Frame {
	return m.display.Frame()
}

// Redraw returns whether the display changed since the last ClearRedraw.
func (m *Machine) Redraw() bool {
	return m.redraw
}

// ClearRedraw acknowledges that the host consumed the current frame.
func (m *Machine) ClearRedraw() {
	m.redraw = false
}

// ToneActive returns whether the sound timer requests a tone.
func (m *Machine) ToneActive() bool {
	return m.timers.ToneActive()
}

// ReadMemory returns the byte at the given memory address.
func (m *Machine) ReadMemory(address uint16) (byte, error) {
	return m.memory.Read(address)
}

// State returns a snapshot of the registers, stack, timers and keys.
func (m *Machine) State() State {
	stack := make([]uint16, m.stack.Depth())
	copy(stack, m.stack.slots[:m.stack.Depth()])
	return State{
		Registers: m.regs,
		Stack:     stack,
		Timers:    m.timers,
		Keys:      m.keypad,
	}
}
