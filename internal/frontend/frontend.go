// Package frontend defines the host side collaborators that render the
// display of a machine and feed it with key events.
package frontend

import (
	"context"
	"unicode"

	"github.com/retroenv/retrochip8/internal/runner"
)

// Supported frontend names.
const (
	Window   = "window"
	Terminal = "terminal"
	Headless = "headless"
)

// Names contains all supported frontend names.
var Names = []string{Window, Terminal, Headless}

// Frontend drives a runner until the context is canceled, the user quits or
// the machine fails.
type Frontend interface {
	Run(ctx context.Context, r *runner.Runner) error
}

// Layout maps the keys of a QWERTY keyboard to the hexadecimal keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var Layout = map[rune]int{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyForRune returns the keypad key for a keyboard character.
func KeyForRune(r rune) (int, bool) {
	key, ok := Layout[unicode.ToLower(r)]
	return key, ok
}
