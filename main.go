// Package main implements the main entry point for a CHIP-8 virtual machine
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			pipeline.PrintBanner(logger, opts, version, commit, date)
			if usageErr.Error() != "" {
				logger.Error(usageErr.Error())
			}
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	pipeline.PrintBanner(logger, opts, version, commit, date)

	fe, closer, err := newFrontend(logger, opts)
	if err != nil {
		logger.Fatal(err.Error())
	}
	defer func() {
		if err := closer(); err != nil {
			logger.Error("Closing output failed", log.Err(err))
		}
	}()

	p := pipeline.New(logger)
	if err := p.Execute(ctx, opts, fe); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
	}
}

// newFrontend creates the frontend selected by the options. The returned
// function releases resources of the frontend.
func newFrontend(logger *log.Logger, opts options.Program) (frontend.Frontend, func() error, error) {
	noop := func() error { return nil }

	switch opts.Frontend {
	case frontend.Window:
		return window.New(logger, opts.Scale), noop, nil

	case frontend.Terminal:
		return terminal.New(logger, nil), noop, nil

	case frontend.Headless:
		writer, err := pipeline.CreateWriter(opts)
		if err != nil {
			return nil, nil, err
		}
		return headless.New(logger, opts.Frames, writer), writer.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}
