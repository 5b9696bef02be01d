// Package window implements a frontend that renders the display into a
// desktop window.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

const title = "retrochip8"

var (
	foreground = color.White
	background = color.Black
)

// keys maps the keypad keys 0x0-0xF to keyboard keys, using the left block
// of a QWERTY keyboard.
var keys = [chip8.KeyCount]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.Key1,
	0x2: ebiten.Key2,
	0x3: ebiten.Key3,
	0x4: ebiten.KeyQ,
	0x5: ebiten.KeyW,
	0x6: ebiten.KeyE,
	0x7: ebiten.KeyA,
	0x8: ebiten.KeyS,
	0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ,
	0xB: ebiten.KeyC,
	0xC: ebiten.Key4,
	0xD: ebiten.KeyR,
	0xE: ebiten.KeyF,
	0xF: ebiten.KeyV,
}

// Window renders the machine display using ebiten. The game loop runs at
// the timer frequency and executes one runner frame per update.
type Window struct {
	logger *log.Logger
	scale  int

	ctx    context.Context
	runner *runner.Runner
	err    error

	pressed [chip8.KeyCount]bool
	frame   chip8.Frame
	tone    bool
}

// New returns a new window frontend with the given pixel scale.
func New(logger *log.Logger, scale int) *Window {
	if scale <= 0 {
		scale = 10
	}
	return &Window{
		logger: logger,
		scale:  scale,
	}
}

// Run opens the window and blocks until it is closed, the context is
// canceled or the machine fails.
func (w *Window) Run(ctx context.Context, r *runner.Runner) error {
	w.ctx = ctx
	w.runner = r

	ebiten.SetWindowSize(chip8.Width*w.scale, chip8.Height*w.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(chip8.TimerFrequency)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	if w.err != nil {
		return w.err
	}
	return ctx.Err()
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for key, ebitenKey := range keys {
		pressed := ebiten.IsKeyPressed(ebitenKey)
		if pressed != w.pressed[key] {
			w.pressed[key] = pressed
			w.runner.SetKey(key, pressed)
		}
	}

	result, err := w.runner.Frame()
	if err != nil {
		w.err = err
		return ebiten.Termination
	}

	if result.ToneStart || result.ToneStop {
		w.tone = result.ToneStart
		if w.tone {
			ebiten.SetWindowTitle(title + " ♪")
		} else {
			ebiten.SetWindowTitle(title)
		}
	}
	if result.Redraw {
		w.frame = w.runner.ConsumeFrame()
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			if w.frame.Pixel(x, y) {
				screen.Set(x, y, foreground)
			}
		}
	}
}

// Layout implements ebiten.Game, the screen has the native display size and
// is scaled by ebiten to the window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return chip8.Width, chip8.Height
}
