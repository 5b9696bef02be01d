// Package runner drives a CHIP-8 machine in frames of the timer frequency.
package runner

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// DefaultCyclesPerFrame is the number of instructions executed per frame,
// resulting in 600 instructions per second at 60 frames per second.
const DefaultCyclesPerFrame = 10

// Result describes the events of a single frame.
type Result struct {
	Redraw    bool // the display changed and should be rendered
	ToneStart bool // the sound timer started requesting a tone
	ToneStop  bool // the tone should be stopped
	Waiting   bool // the program waits for a key press
}

// Runner executes frames of a machine. All machine access happens on the
// goroutine calling the Runner methods, only Reload may be called
// concurrently.
type Runner struct {
	logger         *log.Logger
	machine        *chip8.Machine
	cyclesPerFrame int

	reload chan []byte // program to load at the start of the next frame
	tone   bool

	frames uint64
	steps  uint64
}

// New returns a new runner for the machine.
func New(logger *log.Logger, machine *chip8.Machine, cyclesPerFrame int) *Runner {
	if cyclesPerFrame <= 0 {
		cyclesPerFrame = DefaultCyclesPerFrame
	}
	return &Runner{
		logger:         logger,
		machine:        machine,
		cyclesPerFrame: cyclesPerFrame,
		reload:         make(chan []byte, 1),
	}
}

// Load resets the machine and loads the program. A program that does not
// fit into memory is rejected before the running program is touched.
func (r *Runner) Load(program []byte) error {
	if len(program) > chip8.MaxProgramSize {
		return fmt.Errorf("loading program: %w: %d bytes exceed the maximum of %d bytes",
			chip8.ErrProgramTooLarge, len(program), chip8.MaxProgramSize)
	}
	r.machine.Reset()
	if err := r.machine.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	r.logger.Debug("Program loaded", log.Int("size", len(program)))
	return nil
}

// Reload queues a program that replaces the running program at the start of
// the next frame. A previously queued program that was not loaded yet is
// replaced. It is safe to call from any goroutine.
func (r *Runner) Reload(program []byte) {
	for {
		select {
		case r.reload <- program:
			return
		default:
			select {
			case <-r.reload:
			default:
			}
		}
	}
}

// Frame advances the machine by one timer tick and executes the configured
// number of instructions. Execution stops at the first failing instruction.
func (r *Runner) Frame() (Result, error) {
	var result Result

	select {
	case program := <-r.reload:
		if err := r.Load(program); err != nil {
			return result, err
		}
		r.logger.Info("Program reloaded", log.Int("size", len(program)))
	default:
	}

	toneStopped := r.machine.TickTimers()

	for i := 0; i < r.cyclesPerFrame; i++ {
		outcome, err := r.machine.Step()
		if err != nil {
			return result, fmt.Errorf("executing frame %d: %w", r.frames, err)
		}
		r.steps++

		if outcome.Waiting {
			result.Waiting = true
			break
		}
	}
	r.frames++

	tone := r.machine.ToneActive()
	result.ToneStart = tone && !r.tone
	result.ToneStop = !tone && (r.tone || toneStopped)
	r.tone = tone
	result.Redraw = r.machine.Redraw()
	return result, nil
}

// ConsumeFrame returns a snapshot of the display and acknowledges the redraw.
func (r *Runner) ConsumeFrame() chip8.Frame {
	frame := r.machine.Display()
	r.machine.ClearRedraw()
	return frame
}

// SetKey updates the pressed state of a keypad key.
func (r *Runner) SetKey(key int, pressed bool) {
	if err := r.machine.SetKey(key, pressed); err != nil {
		r.logger.Error("Setting key failed", log.Int("key", key), log.Err(err))
	}
}

// State returns a snapshot of the machine registers.
func (r *Runner) State() chip8.State {
	return r.machine.State()
}

// Frames returns the number of executed frames.
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Steps returns the number of executed instructions.
func (r *Runner) Steps() uint64 {
	return r.steps
}
