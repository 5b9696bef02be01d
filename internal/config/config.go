// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateMachineConfig maps the program options to a machine configuration.
func CreateMachineConfig(opts options.Program) chip8.Config {
	cfg := chip8.Config{
		Quirks: chip8.Quirks{
			ShiftUsesVY:      opts.ShiftUsesVY,
			NoIndexIncrement: opts.NoIndexIncrement,
			JumpUsesVX:       opts.JumpUsesVX,
			LogicResetsVF:    opts.LogicResetsVF,
			NotBorrowFlag:    opts.NotBorrowFlag,
			WrapSprites:      opts.WrapSprites,
		},
		Random: chip8.NewRandomSource(opts.Seed),
		Trace:  opts.Trace,
	}
	if opts.HaltUnknown {
		cfg.UnknownOpcode = chip8.HaltUnknown
	}
	return cfg
}

// CreateMachine creates a machine configured by the program options.
func CreateMachine(logger *log.Logger, opts options.Program) *chip8.Machine {
	return chip8.New(logger, CreateMachineConfig(opts))
}
