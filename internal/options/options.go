// Package options contains the program options.
package options

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"program file to run"`
}

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input program file"`
	Output string `flag:"o" usage:"file to write the final display to in headless mode (default: stdout)"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend string `flag:"f" usage:"frontend: window, terminal, headless" default:"window"`
	Cycles   int    `flag:"cycles" usage:"instructions per 60 Hz frame" default:"10"`
	Frames   int    `flag:"frames" usage:"frames to run in headless mode, 0 runs until interrupted"`
	Scale    int    `flag:"scale" usage:"window pixel scale" default:"10"`
	Watch    bool   `flag:"watch" usage:"reload the program when the file changes"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// MachineFlags contains options that control the instruction semantics.
type MachineFlags struct {
	Seed             int64 `flag:"seed" usage:"random number generator seed, 0 uses the current time"`
	HaltUnknown      bool  `flag:"halt-unknown" usage:"stop on unknown opcodes instead of skipping them"`
	ShiftUsesVY      bool  `flag:"quirk-shift-vy" usage:"shift instructions read VY instead of VX"`
	NoIndexIncrement bool  `flag:"quirk-no-index-increment" usage:"register store and load leave I unchanged"`
	JumpUsesVX       bool  `flag:"quirk-jump-vx" usage:"BNNN jumps to XNN plus VX"`
	LogicResetsVF    bool  `flag:"quirk-vf-reset" usage:"logic instructions clear VF"`
	NotBorrowFlag    bool  `flag:"quirk-not-borrow" usage:"subtraction sets VF when no borrow occurs"`
	WrapSprites      bool  `flag:"quirk-wrap" usage:"sprites wrap around the display edges instead of clipping"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	MachineFlags
}
