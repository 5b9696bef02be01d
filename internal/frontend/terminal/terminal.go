// Package terminal implements a frontend that renders the display into a
// terminal using half block characters, two display rows per text line.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// keyHold is the number of frames a key stays pressed after a terminal key
// event, terminals do not report key releases.
const keyHold = 6

const (
	upperHalf = '▀'
	lowerHalf = '▄'
	fullBlock = '█'
)

// Terminal renders the machine display using tcell.
type Terminal struct {
	logger *log.Logger
	screen tcell.Screen

	held [chip8.KeyCount]int // remaining frames of pressed keys
}

// New returns a new terminal frontend. If screen is nil the terminal of the
// process is used.
func New(logger *log.Logger, screen tcell.Screen) *Terminal {
	return &Terminal{
		logger: logger,
		screen: screen,
	}
}

// Run initializes the screen and executes frames at the timer frequency
// until the user presses escape or the context is canceled.
func (t *Terminal) Run(ctx context.Context, r *runner.Runner) error {
	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating terminal screen: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer t.screen.Fini()

	t.screen.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
	t.screen.HideCursor()
	t.screen.Clear()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / chip8.TimerFrequency)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if t.handleEvent(ev, r) {
				return nil
			}

		case <-ticker.C:
			if err := t.frame(r); err != nil {
				return err
			}
		}
	}
}

// handleEvent processes a terminal event and returns whether the user
// requested to quit.
func (t *Terminal) handleEvent(ev tcell.Event, r *runner.Runner) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			key, ok := frontend.KeyForRune(ev.Rune())
			if !ok {
				return false
			}
			if t.held[key] == 0 {
				r.SetKey(key, true)
			}
			t.held[key] = keyHold
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) frame(r *runner.Runner) error {
	result, err := r.Frame()
	if err != nil {
		return err
	}

	t.releaseKeys(r)

	if result.ToneStart {
		if err := t.screen.Beep(); err != nil {
			t.logger.Debug("Terminal beep failed", log.Err(err))
		}
	}
	if result.Redraw {
		frame := r.ConsumeFrame()
		t.draw(&frame)
	}
	return nil
}

func (t *Terminal) releaseKeys(r *runner.Runner) {
	for key, frames := range t.held {
		if frames == 0 {
			continue
		}
		t.held[key]--
		if t.held[key] == 0 {
			r.SetKey(key, false)
		}
	}
}

// draw renders the frame, every text cell covers two vertical pixels.
func (t *Terminal) draw(frame *chip8.Frame) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for y := 0; y < chip8.Height; y += 2 {
		for x := 0; x < chip8.Width; x++ {
			t.screen.SetContent(x, y/2, cell(frame.Pixel(x, y), frame.Pixel(x, y+1)), nil, style)
		}
	}
	t.screen.Show()
}

func cell(upper, lower bool) rune {
	switch {
	case upper && lower:
		return fullBlock
	case upper:
		return upperHalf
	case lower:
		return lowerHalf
	default:
		return ' '
	}
}
