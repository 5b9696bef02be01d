// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
)

// ParseFlags parses the command line flags of the process and returns the
// program options.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)
	readMachineFlags(flags, &opts.MachineFlags)

	err := flags.Parse(arguments)
	if err != nil {
		usageErr := &UsageError{flags: flags}
		if !errors.Is(err, flag.ErrHelp) {
			usageErr.msg = err.Error()
		}
		return opts, usageErr
	}
	args := flags.Args()
	if len(args) == 0 && opts.Input == "" {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if opts.Trace {
		opts.Debug = true
	}

	if opts.Cycles <= 0 {
		return fmt.Errorf("invalid instructions per frame: %d", opts.Cycles)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count: %d", opts.Frames)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid window scale: %d", opts.Scale)
	}

	for _, valid := range frontend.Names {
		if opts.Frontend == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
		opts.Frontend, strings.Join(frontend.Names, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input program file")
	flags.StringVar(&opts.Output, "o", "", "name of the file to write the final display to in headless mode, printed on console if no name given")
	flags.StringVar(&opts.Frontend, "f", frontend.Window, "frontend to use (window/terminal/headless)")
	flags.IntVar(&opts.Cycles, "cycles", runner.DefaultCyclesPerFrame, "instructions to execute per 60 Hz frame")
	flags.IntVar(&opts.Frames, "frames", 0, "frames to run in headless mode, 0 runs until interrupted")
	flags.IntVar(&opts.Scale, "scale", 10, "pixel scale of the window")
	flags.BoolVar(&opts.Watch, "watch", false, "reload the program when the file changes")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readMachineFlags(flags *flag.FlagSet, opts *options.MachineFlags) {
	flags.Int64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses the current time")
	flags.BoolVar(&opts.HaltUnknown, "halt-unknown", false, "stop on unknown opcodes instead of skipping them")
	flags.BoolVar(&opts.ShiftUsesVY, "quirk-shift-vy", false, "shift instructions read VY instead of VX")
	flags.BoolVar(&opts.NoIndexIncrement, "quirk-no-index-increment", false, "register store and load instructions leave I unchanged")
	flags.BoolVar(&opts.JumpUsesVX, "quirk-jump-vx", false, "BNNN jumps to XNN plus VX")
	flags.BoolVar(&opts.LogicResetsVF, "quirk-vf-reset", false, "logic instructions clear VF")
	flags.BoolVar(&opts.NotBorrowFlag, "quirk-not-borrow", false, "subtraction sets VF when no borrow occurs")
	flags.BoolVar(&opts.WrapSprites, "quirk-wrap", false, "sprites wrap around the display edges instead of clipping")
}
