// Package headless implements a frontend without window or terminal output,
// used for batch execution and automated runs.
package headless

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Headless runs a machine for a number of frames. With a frame limit the
// frames are executed as fast as possible, without a limit they are paced
// at the timer frequency until the context is canceled.
type Headless struct {
	logger *log.Logger
	frames int
	output io.Writer // receives the final display, can be nil
}

// New returns a new headless frontend.
func New(logger *log.Logger, frames int, output io.Writer) *Headless {
	return &Headless{
		logger: logger,
		frames: frames,
		output: output,
	}
}

// Run executes the frames and writes the final display to the output.
func (h *Headless) Run(ctx context.Context, r *runner.Runner) error {
	var tick <-chan time.Time
	if h.frames == 0 {
		ticker := time.NewTicker(time.Second / chip8.TimerFrequency)
		defer ticker.Stop()
		tick = ticker.C
	}

	var frame chip8.Frame
	for i := 0; h.frames == 0 || i < h.frames; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return h.finish(r, frame)
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		result, err := r.Frame()
		if err != nil {
			return err
		}
		if result.Redraw {
			frame = r.ConsumeFrame()
		}
		if result.ToneStart {
			h.logger.Debug("Tone started", log.Int("frame", i))
		}
	}
	return h.finish(r, frame)
}

func (h *Headless) finish(r *runner.Runner, frame chip8.Frame) error {
	h.logger.Info("Emulation finished",
		log.String("frames", fmt.Sprint(r.Frames())),
		log.String("instructions", fmt.Sprint(r.Steps())))

	if h.output == nil {
		return nil
	}
	if _, err := io.WriteString(h.output, Render(frame)); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}

// Render returns a text representation of the frame using '#' for set
// pixels and '.' for cleared ones.
func Render(frame chip8.Frame) string {
	var sb strings.Builder
	sb.Grow((chip8.Width + 1) * chip8.Height)
	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			if frame.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
