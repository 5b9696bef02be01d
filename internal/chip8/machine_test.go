package chip8

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fixedRandom returns the same byte for every random instruction.
type fixedRandom byte

func (f fixedRandom) RandomByte() byte { return byte(f) }

func newTestMachine(t *testing.T, config Config, program ...uint16) *Machine {
	t.Helper()

	if config.Random == nil {
		config.Random = fixedRandom(0xFF)
	}
	m := New(log.NewTestLogger(t), config)
	assert.NoError(t, m.LoadProgram(words(program...)))
	return m
}

// words converts opcodes to their big-endian memory representation.
func words(opcodes ...uint16) []byte {
	data := make([]byte, 0, len(opcodes)*opcodeSize)
	for _, op := range opcodes {
		data = append(data, byte(op>>8), byte(op))
	}
	return data
}

func writeWords(t *testing.T, m *Machine, address uint16, opcodes ...uint16) {
	t.Helper()

	for i, b := range words(opcodes...) {
		assert.NoError(t, m.memory.Write(address+uint16(i), b))
	}
}

func step(t *testing.T, m *Machine) StepOutcome {
	t.Helper()

	outcome, err := m.Step()
	assert.NoError(t, err)
	return outcome
}

func TestNew(t *testing.T) {
	m := New(log.NewTestLogger(t), Config{})

	assert.NotNil(t, m.random)
	assert.Equal(t, uint16(ProgramStart), m.regs.PC)
	assert.True(t, m.Redraw())

	for i, b := range fontSet {
		value, err := m.ReadMemory(FontAddress + uint16(i))
		assert.NoError(t, err)
		assert.Equal(t, b, value)
	}
}

func TestReset(t *testing.T) {
	m := newTestMachine(t, Config{}, 0x6A12, 0xA300, 0x2206)
	step(t, m)
	step(t, m)
	step(t, m)
	m.timers = Timers{Delay: 5, Sound: 7}
	assert.NoError(t, m.SetKey(3, true))
	m.display.drawSprite(0, 0, []byte{0xFF}, false)
	m.ClearRedraw()

	m.Reset()

	state := m.State()
	assert.Equal(t, RegisterFile{PC: ProgramStart}, state.Registers)
	assert.Empty(t, state.Stack)
	assert.Equal(t, Timers{}, state.Timers)
	assert.Equal(t, Keypad{}, state.Keys)
	assert.True(t, m.Redraw())
	if diff := cmp.Diff(Frame{}, m.Display()); diff != "" {
		t.Errorf("display not cleared: (-want, +got)\n%s", diff)
	}

	value, err := m.ReadMemory(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), value)
	value, err = m.ReadMemory(FontAddress)
	assert.NoError(t, err)
	assert.Equal(t, fontSet[0], value)
}

func TestLoadProgram(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"single opcode", 2, false},
		{"maximum size", MaxProgramSize, false},
		{"one byte too large", MaxProgramSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(log.NewTestLogger(t), Config{})
			program := make([]byte, tt.size)
			for i := range program {
				program[i] = 0xAA
			}

			err := m.LoadProgram(program)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrProgramTooLarge))
				value, err := m.ReadMemory(ProgramStart)
				assert.NoError(t, err)
				assert.Equal(t, byte(0), value)
				return
			}

			assert.NoError(t, err)
			if tt.size > 0 {
				value, err := m.ReadMemory(uint16(ProgramStart + tt.size - 1))
				assert.NoError(t, err)
				assert.Equal(t, byte(0xAA), value)
			}
		})
	}
}

func TestAddByte(t *testing.T) {
	tests := []struct {
		name  string
		value byte
		nn    uint16
		want  byte
	}{
		{"simple", 0x01, 0x02, 0x03},
		{"wraparound", 0xFF, 0x02, 0x01},
		{"add zero", 0x80, 0x00, 0x80},
		{"wrap to zero", 0xFF, 0x01, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, Config{}, 0x7300|tt.nn)
			m.regs.V[3] = tt.value
			m.regs.V[FlagRegister] = 0x42

			step(t, m)
			assert.Equal(t, tt.want, m.regs.V[3])
			assert.Equal(t, byte(0x42), m.regs.V[FlagRegister])
			assert.Equal(t, uint16(0x202), m.regs.PC)
		})
	}
}

func TestALU(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		quirks Quirks
		vx, vy byte
		want   byte
		flag   byte
	}{
		{"ld", 0x8120, Quirks{}, 0x11, 0x22, 0x22, 0x77},
		{"or", 0x8121, Quirks{}, 0x0F, 0xF0, 0xFF, 0x77},
		{"and", 0x8122, Quirks{}, 0x3C, 0x0F, 0x0C, 0x77},
		{"xor", 0x8123, Quirks{}, 0xFF, 0x0F, 0xF0, 0x77},
		{"or resets vf", 0x8121, Quirks{LogicResetsVF: true}, 0x0F, 0xF0, 0xFF, 0},
		{"and resets vf", 0x8122, Quirks{LogicResetsVF: true}, 0x3C, 0x0F, 0x0C, 0},
		{"xor resets vf", 0x8123, Quirks{LogicResetsVF: true}, 0xFF, 0x0F, 0xF0, 0},
		{"add with carry", 0x8124, Quirks{}, 0xFF, 0x01, 0x00, 1},
		{"add without carry", 0x8124, Quirks{}, 0x01, 0x01, 0x02, 0},
		{"add to maximum", 0x8124, Quirks{}, 0xFE, 0x01, 0xFF, 0},
		{"sub without borrow", 0x8125, Quirks{}, 0x05, 0x03, 0x02, 0},
		{"sub equal", 0x8125, Quirks{}, 0x05, 0x05, 0x00, 0},
		{"sub with borrow", 0x8125, Quirks{}, 0x03, 0x05, 0xFE, 1},
		{"sub not borrow quirk", 0x8125, Quirks{NotBorrowFlag: true}, 0x05, 0x03, 0x02, 1},
		{"sub borrow with not borrow quirk", 0x8125, Quirks{NotBorrowFlag: true}, 0x03, 0x05, 0xFE, 0},
		{"subn without borrow", 0x8127, Quirks{}, 0x03, 0x05, 0x02, 0},
		{"subn with borrow", 0x8127, Quirks{}, 0x05, 0x03, 0xFE, 1},
		{"subn not borrow quirk", 0x8127, Quirks{NotBorrowFlag: true}, 0x03, 0x05, 0x02, 1},
		{"shr vx", 0x8126, Quirks{}, 0x05, 0x80, 0x02, 1},
		{"shr vx even", 0x8126, Quirks{}, 0x04, 0x81, 0x02, 0},
		{"shr vy quirk", 0x8126, Quirks{ShiftUsesVY: true}, 0x05, 0x80, 0x40, 0},
		{"shl vx", 0x812E, Quirks{}, 0x81, 0x01, 0x02, 1},
		{"shl vx no carry", 0x812E, Quirks{}, 0x41, 0x80, 0x82, 0},
		{"shl vy quirk", 0x812E, Quirks{ShiftUsesVY: true}, 0x01, 0x80, 0x00, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, Config{Quirks: tt.quirks}, tt.opcode)
			m.regs.V[1] = tt.vx
			m.regs.V[2] = tt.vy
			m.regs.V[FlagRegister] = 0x77

			step(t, m)
			assert.Equal(t, tt.want, m.regs.V[1])
			assert.Equal(t, tt.flag, m.regs.V[FlagRegister])
			assert.Equal(t, tt.vy, m.regs.V[2])
			assert.Equal(t, uint16(0x202), m.regs.PC)
		})
	}
}

func TestFlagRegisterAsTarget(t *testing.T) {
	// the flag is written after the result, so it wins for VF targets
	m := newTestMachine(t, Config{}, 0x8F14)
	m.regs.V[FlagRegister] = 0xFF
	m.regs.V[1] = 0x01

	step(t, m)
	assert.Equal(t, byte(1), m.regs.V[FlagRegister])
}

func TestSkips(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		vx, vy byte
		key    int // -1 for no key
		wantPC uint16
	}{
		{"se byte equal", 0x3142, 0x42, 0, -1, 0x204},
		{"se byte differ", 0x3142, 0x41, 0, -1, 0x202},
		{"sne byte differ", 0x4142, 0x41, 0, -1, 0x204},
		{"sne byte equal", 0x4142, 0x42, 0, -1, 0x202},
		{"se register equal", 0x5120, 0x10, 0x10, -1, 0x204},
		{"se register differ", 0x5120, 0x10, 0x11, -1, 0x202},
		{"sne register differ", 0x9120, 0x10, 0x11, -1, 0x204},
		{"sne register equal", 0x9120, 0x10, 0x10, -1, 0x202},
		{"skp pressed", 0xE19E, 0x0A, 0, 0x0A, 0x204},
		{"skp not pressed", 0xE19E, 0x0A, 0, 0x0B, 0x202},
		{"sknp not pressed", 0xE1A1, 0x0A, 0, -1, 0x204},
		{"sknp pressed", 0xE1A1, 0x0A, 0, 0x0A, 0x202},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, Config{}, tt.opcode)
			m.regs.V[1] = tt.vx
			m.regs.V[2] = tt.vy
			if tt.key >= 0 {
				assert.NoError(t, m.SetKey(tt.key, true))
			}

			step(t, m)
			assert.Equal(t, tt.wantPC, m.regs.PC)
		})
	}
}

func TestJumps(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		quirks Quirks
		wantPC uint16
	}{
		{"jp", 0x1ABC, Quirks{}, 0xABC},
		{"jp v0", 0xB300, Quirks{}, 0x310},
		{"jp vx quirk", 0xB300, Quirks{JumpUsesVX: true}, 0x320},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, Config{Quirks: tt.quirks}, tt.opcode)
			m.regs.V[0] = 0x10
			m.regs.V[3] = 0x20

			step(t, m)
			assert.Equal(t, tt.wantPC, m.regs.PC)
		})
	}
}

func TestCallReturn(t *testing.T) {
	for _, depth := range []int{1, 2, 8, StackDepth} {
		m := newTestMachine(t, Config{}, 0x2300, 0x1202)

		// subroutine k at 0x300+4k calls subroutine k+1 and returns
		for k := 0; k < depth-1; k++ {
			address := uint16(0x300 + 4*k)
			writeWords(t, m, address, 0x2000|(address+4), 0x00EE)
		}
		writeWords(t, m, uint16(0x300+4*(depth-1)), 0x00EE)

		for i := 0; i < depth; i++ {
			step(t, m)
		}
		assert.Equal(t, depth, len(m.State().Stack))
		assert.Equal(t, uint16(0x202), m.State().Stack[0])

		for i := 0; i < depth; i++ {
			step(t, m)
		}
		assert.Equal(t, uint16(0x202), m.regs.PC)
		assert.Empty(t, m.State().Stack)
	}
}

func TestStackOverflow(t *testing.T) {
	m := newTestMachine(t, Config{})
	// a chain of calls where each one calls the next instruction
	for k := 0; k <= StackDepth; k++ {
		address := uint16(ProgramStart + 2*k)
		writeWords(t, m, address, 0x2000|(address+2))
	}

	for i := 0; i < StackDepth; i++ {
		step(t, m)
	}
	before := m.State()

	_, err := m.Step()
	assert.True(t, errors.Is(err, ErrStackOverflow))

	var execErr *ExecError
	assert.True(t, errors.As(err, &execErr))
	assert.Equal(t, uint16(ProgramStart+2*StackDepth), execErr.Address)
	assert.Equal(t, uint16(0x2000|(ProgramStart+2*StackDepth+2)), execErr.Opcode)
	assert.Equal(t, before, m.State())
}

func TestStackUnderflow(t *testing.T) {
	m := newTestMachine(t, Config{}, 0x00EE)

	_, err := m.Step()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, uint16(ProgramStart), m.regs.PC)
}

func TestLoadIndex(t *testing.T) {
	m := newTestMachine(t, Config{}, 0xA123, 0xF31E, 0xF429)
	m.regs.V[3] = 0x10
	m.regs.V[4] = 0x1B // only the low nibble selects the glyph

	step(t, m)
	assert.Equal(t, uint16(0x123), m.regs.I)
	step(t, m)
	assert.Equal(t, uint16(0x133), m.regs.I)
	step(t, m)
	assert.Equal(t, uint16(FontAddress+0xB*glyphSize), m.regs.I)
}

func TestRandom(t *testing.T) {
	m := newTestMachine(t, Config{Random: fixedRandom(0xAB)}, 0xC50F, 0xC6F0)

	step(t, m)
	step(t, m)
	assert.Equal(t, byte(0x0B), m.regs.V[5])
	assert.Equal(t, byte(0xA0), m.regs.V[6])
}

func TestRandomSourceSeeded(t *testing.T) {
	a := NewRandomSource(1234)
	b := NewRandomSource(1234)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.RandomByte(), b.RandomByte())
	}
}

func TestDraw(t *testing.T) {
	// draw the glyph for 0 twice at the same position
	m := newTestMachine(t, Config{}, 0xF029, 0xD125, 0xD125)
	m.regs.V[0] = 0
	m.regs.V[1] = 10
	m.regs.V[2] = 5
	m.ClearRedraw()

	step(t, m)
	outcome := step(t, m)
	assert.True(t, outcome.Redraw)
	assert.True(t, m.Redraw())
	assert.Equal(t, byte(0), m.regs.V[FlagRegister])

	frame := m.Display()
	assert.True(t, frame.Pixel(10, 5))
	assert.True(t, frame.Pixel(13, 5))
	assert.False(t, frame.Pixel(14, 5))
	assert.True(t, frame.Pixel(10, 6))
	assert.False(t, frame.Pixel(11, 6))
	assert.True(t, frame.Pixel(13, 9))

	m.ClearRedraw()
	outcome = step(t, m)
	assert.True(t, outcome.Redraw)
	assert.Equal(t, byte(1), m.regs.V[FlagRegister])
	if diff := cmp.Diff(Frame{}, m.Display()); diff != "" {
		t.Errorf("double draw did not restore display: (-want, +got)\n%s", diff)
	}
}

func TestDrawEdges(t *testing.T) {
	tests := []struct {
		name   string
		quirks Quirks
		x, y   byte
		set    [][2]int
		notSet [][2]int
	}{
		{
			name:   "clipped at right and bottom edge",
			x:      62,
			y:      31,
			set:    [][2]int{{62, 31}, {63, 31}},
			notSet: [][2]int{{0, 31}, {62, 0}, {0, 0}},
		},
		{
			name:   "wrapped at right and bottom edge",
			quirks: Quirks{WrapSprites: true},
			x:      62,
			y:      31,
			set:    [][2]int{{62, 31}, {63, 31}, {0, 31}, {5, 31}, {62, 0}, {0, 0}},
			notSet: [][2]int{{6, 31}, {61, 31}},
		},
		{
			name:   "start position wraps",
			x:      64 + 2,
			y:      32 + 3,
			set:    [][2]int{{2, 3}, {9, 3}, {2, 4}},
			notSet: [][2]int{{10, 3}, {1, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, Config{Quirks: tt.quirks}, 0xA300, 0xD012)
			writeWords(t, m, 0x300, 0xFFFF)
			m.regs.V[0] = tt.x
			m.regs.V[1] = tt.y

			step(t, m)
			step(t, m)

			frame := m.Display()
			for _, p := range tt.set {
				assert.True(t, frame.Pixel(p[0], p[1]), "pixel %v should be set", p)
			}
			for _, p := range tt.notSet {
				assert.False(t, frame.Pixel(p[0], p[1]), "pixel %v should not be set", p)
			}
		})
	}
}

func TestClearScreen(t *testing.T) {
	m := newTestMachine(t, Config{}, 0x00E0)
	m.display.drawSprite(0, 0, []byte{0xFF, 0xFF}, false)
	m.ClearRedraw()

	outcome := step(t, m)
	assert.True(t, outcome.Redraw)
	assert.True(t, m.Redraw())
	if diff := cmp.Diff(Frame{}, m.Display()); diff != "" {
		t.Errorf("display not cleared: (-want, +got)\n%s", diff)
	}
	assert.Equal(t, uint16(0x202), m.regs.PC)
}

func TestDisplaySnapshot(t *testing.T) {
	m := newTestMachine(t, Config{})
	frame := m.Display()
	frame[0] = 1

	current := m.Display()
	assert.False(t, current.Pixel(0, 0))
}

func TestTimers(t *testing.T) {
	m := newTestMachine(t, Config{}, 0x6003, 0xF015, 0xF018, 0xF107, 0x1208)

	for i := 0; i < 4; i++ {
		step(t, m)
	}
	assert.Equal(t, byte(3), m.regs.V[1])
	assert.True(t, m.ToneActive())

	// steps between ticks do not change the timers
	for i := 0; i < 50; i++ {
		outcome := step(t, m)
		assert.True(t, outcome.Tone)
	}
	assert.Equal(t, Timers{Delay: 3, Sound: 3}, m.State().Timers)

	assert.False(t, m.TickTimers())
	assert.False(t, m.TickTimers())
	assert.Equal(t, Timers{Delay: 1, Sound: 1}, m.State().Timers)
	assert.True(t, m.TickTimers())
	assert.False(t, m.ToneActive())

	for i := 0; i < 3; i++ {
		assert.False(t, m.TickTimers())
	}
	assert.Equal(t, Timers{}, m.State().Timers)

	outcome := step(t, m)
	assert.False(t, outcome.Tone)
}

func TestKeyWait(t *testing.T) {
	m := newTestMachine(t, Config{}, 0xF50A)
	m.regs.V[5] = 0x33

	for i := 0; i < 3; i++ {
		outcome := step(t, m)
		assert.True(t, outcome.Waiting)
		assert.Equal(t, uint16(ProgramStart), m.regs.PC)
		assert.Equal(t, byte(0x33), m.regs.V[5])
	}

	assert.NoError(t, m.SetKey(0xB, true))
	outcome := step(t, m)
	assert.False(t, outcome.Waiting)
	assert.Equal(t, byte(0xB), m.regs.V[5])
	assert.Equal(t, uint16(ProgramStart+2), m.regs.PC)
}

func TestBCD(t *testing.T) {
	tests := []struct {
		value byte
		want  [3]byte
	}{
		{157, [3]byte{1, 5, 7}},
		{0, [3]byte{0, 0, 0}},
		{255, [3]byte{2, 5, 5}},
		{42, [3]byte{0, 4, 2}},
	}

	for _, tt := range tests {
		m := newTestMachine(t, Config{}, 0xA400, 0xF733)
		m.regs.V[7] = tt.value

		step(t, m)
		step(t, m)

		var got [3]byte
		copy(got[:], m.memory[0x400:0x403])
		assert.Equal(t, tt.want, got)
		assert.Equal(t, uint16(0x400), m.regs.I)
	}
}

func TestStoreLoadRegisters(t *testing.T) {
	tests := []struct {
		name   string
		quirks Quirks
		wantI  uint16
	}{
		{"index increments", Quirks{}, 0x404},
		{"index unchanged quirk", Quirks{NoIndexIncrement: true}, 0x400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, Config{Quirks: tt.quirks}, 0xA400, 0xF355)
			m.regs.V = [16]byte{1, 2, 3, 4, 5}

			step(t, m)
			step(t, m)
			assert.Equal(t, []byte{1, 2, 3, 4, 0}, m.memory[0x400:0x405])
			assert.Equal(t, tt.wantI, m.regs.I)

			writeWords(t, m, m.regs.PC, 0xA500, 0xF265)
			writeWords(t, m, 0x500, 0x0A0B, 0x0C0D)
			step(t, m)
			step(t, m)
			assert.Equal(t, [16]byte{0x0A, 0x0B, 0x0C, 4, 5}, m.regs.V)
		})
	}
}

func TestAddressOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		index  uint16
	}{
		{"bcd beyond memory", 0xF033, 0xFFE},
		{"store beyond memory", 0xF155, 0xFFF},
		{"load beyond memory", 0xF165, 0xFFF},
		{"draw beyond memory", 0xD002, 0xFFF},
		{"corrupted index", 0xF065, 0x1000},
		{"index add overflow", 0xF01E, 0xFFF0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, Config{}, tt.opcode)
			m.regs.I = tt.index
			m.regs.V[0] = 0xFF
			before := m.State()
			beforeMemory := m.memory

			_, err := m.Step()
			assert.True(t, errors.Is(err, ErrAddressOutOfRange))
			assert.Equal(t, before, m.State())
			assert.True(t, beforeMemory == m.memory)
		})
	}
}

func TestIndexAddDoesNotWrap(t *testing.T) {
	m := newTestMachine(t, Config{},
		0xF01E, // add I, V0
		0xF065, // ld V0, [I]
	)
	m.regs.I = 0xFFF0
	m.regs.V[0] = 0x20

	_, err := m.Step()
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
	assert.Equal(t, uint16(0xFFF0), m.regs.I)
	assert.Equal(t, uint16(ProgramStart), m.regs.PC)

	t.Run("beyond memory within 16 bits", func(t *testing.T) {
		m := newTestMachine(t, Config{},
			0xF01E, // add I, V0
			0xF065, // ld V0, [I]
		)
		m.regs.I = 0xFFF
		m.regs.V[0] = 0xFF

		step(t, m)
		assert.Equal(t, uint16(0x10FE), m.regs.I)

		_, err := m.Step()
		assert.True(t, errors.Is(err, ErrAddressOutOfRange))
		assert.Equal(t, byte(0xFF), m.regs.V[0])
	})
}

func TestFetchOutOfRange(t *testing.T) {
	m := newTestMachine(t, Config{}, 0x1FFF)
	step(t, m)

	_, err := m.Step()
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	var execErr *ExecError
	assert.True(t, errors.As(err, &execErr))
	assert.Equal(t, uint16(0xFFF), execErr.Address)
}

func TestUnknownOpcode(t *testing.T) {
	unknown := []uint16{0x0123, 0x5121, 0x8128, 0x9121, 0xE1FF, 0xF1FF}

	t.Run("skip", func(t *testing.T) {
		m := newTestMachine(t, Config{UnknownOpcode: SkipUnknown}, unknown...)
		for i := range unknown {
			outcome := step(t, m)
			assert.True(t, outcome.Skipped)
			assert.Equal(t, uint16(ProgramStart+2*(i+1)), m.regs.PC)
		}
	})

	t.Run("halt", func(t *testing.T) {
		for _, op := range unknown {
			m := newTestMachine(t, Config{UnknownOpcode: HaltUnknown}, op)

			_, err := m.Step()
			assert.True(t, errors.Is(err, ErrUnknownOpcode))
			assert.Equal(t, uint16(ProgramStart), m.regs.PC)

			var execErr *ExecError
			assert.True(t, errors.As(err, &execErr))
			assert.Equal(t, op, execErr.Opcode)
		}
	})
}

func TestTrace(t *testing.T) {
	m := newTestMachine(t, Config{Trace: true}, 0x6A12)
	step(t, m)
	assert.Equal(t, byte(0x12), m.regs.V[0xA])
}

func TestSetKey(t *testing.T) {
	m := newTestMachine(t, Config{})

	assert.NoError(t, m.SetKey(0, true))
	assert.NoError(t, m.SetKey(15, true))
	assert.True(t, errors.Is(m.SetKey(16, true), ErrKeyOutOfRange))
	assert.True(t, errors.Is(m.SetKey(-1, true), ErrKeyOutOfRange))

	keys := m.State().Keys
	assert.True(t, keys[0])
	assert.True(t, keys[15])

	assert.NoError(t, m.SetKey(0, false))
	assert.False(t, m.State().Keys[0])
}
