// Package chip8 implements a CHIP-8 virtual machine.
//
// # Machine Overview
//
// CHIP-8 is an interpreted programming language developed in the 1970s for simple games
// on early microcomputers. Programs are raw streams of 2 byte big-endian opcodes that are
// executed by a small virtual machine with the following state:
//   - 4KB of memory (0x000-MaxAddress)
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag register
//   - a 16-bit index register I and a program counter
//   - a 16 level call stack
//   - delay and sound timers that count down at 60 Hz
//   - a 16 key hexadecimal keypad
//   - a 64x32 monochrome display
//
// # Memory Layout
//
//   - 0x000-0x1FF: Interpreter area, the font table is installed at FontAddress (0x050)
//   - ProgramStart-MaxAddress: Program and work RAM (MaxProgramSize bytes)
//
// # Execution Model
//
// The host drives the machine from a single goroutine:
//
//	m := chip8.New(logger, chip8.Config{})
//	if err := m.LoadProgram(program); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for running {
//		m.TickTimers() // at 60 Hz
//		for range cyclesPerFrame {
//			outcome, err := m.Step()
//			...
//		}
//		if m.Redraw() {
//			render(m.Display())
//			m.ClearRedraw()
//		}
//	}
//
// Step never blocks. The key wait instruction (FX0A) returns with Waiting set in the
// outcome and the program counter unchanged until a key is pressed.
//
// # Quirks
//
// Historic interpreters disagree on a few instructions. The Quirks configuration selects
// the behavior, all quirks are disabled by default which selects:
//   - 8XY6/8XYE shift VX in place
//   - FX55/FX65 increment I by X+1
//   - BNNN jumps to NNN+V0
//   - 8XY1/8XY2/8XY3 leave VF untouched
//   - 8XY5/8XY7 set VF to 1 when the subtraction borrows
//   - sprites are clipped at the display edges
//
// Machine is not safe for concurrent use.
package chip8
