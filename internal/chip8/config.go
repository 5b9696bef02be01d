package chip8

// UnknownOpcodePolicy defines how the machine handles opcodes that do not
// match any instruction.
type UnknownOpcodePolicy int

const (
	// SkipUnknown logs the opcode and continues with the next instruction.
	SkipUnknown UnknownOpcodePolicy = iota
	// HaltUnknown returns an ErrUnknownOpcode error from Step.
	HaltUnknown
)

// Quirks selects between behaviors of historic interpreters.
type Quirks struct {
	ShiftUsesVY      bool // 8XY6/8XYE shift VY into VX instead of shifting VX in place
	NoIndexIncrement bool // FX55/FX65 leave I unchanged
	JumpUsesVX       bool // BXNN jumps to XNN+VX instead of NNN+V0
	LogicResetsVF    bool // 8XY1/8XY2/8XY3 clear VF
	NotBorrowFlag    bool // 8XY5/8XY7 set VF when no borrow occurs
	WrapSprites      bool // sprite pixels beyond an edge wrap around instead of being clipped
}

// Config defines the behavior of a machine.
type Config struct {
	Quirks        Quirks
	UnknownOpcode UnknownOpcodePolicy

	// Random is the source for CXNN, a time seeded source is used if nil.
	Random RandomSource

	// Trace logs every executed instruction on debug level.
	Trace bool
}
