// Package pipeline orchestrates loading a program and running it in a
// frontend.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/watcher"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the program file and runs it in the frontend until the
// frontend returns. If requested, the program file is watched and reloaded
// on changes.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, fe frontend.Frontend) error {
	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	r, err := p.createRunner(program, opts)
	if err != nil {
		return err
	}

	if !opts.Watch {
		return p.run(ctx, r, opts, fe)
	}

	w, err := watcher.New(p.logger, opts.Input, r)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = w.Run(ctx)
	}()

	err = p.run(ctx, r, opts, fe)
	cancel()
	wg.Wait()
	return err
}

// ExecuteWithProgram runs an already loaded program in the frontend.
// This is useful for testing and programmatic usage where the program is
// already in memory.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, program []byte, opts options.Program, fe frontend.Frontend) error {
	r, err := p.createRunner(program, opts)
	if err != nil {
		return err
	}
	return p.run(ctx, r, opts, fe)
}

func (p *Pipeline) createRunner(program []byte, opts options.Program) (*runner.Runner, error) {
	machine := config.CreateMachine(p.logger, opts)
	r := runner.New(p.logger, machine, opts.Cycles)
	if err := r.Load(program); err != nil {
		return nil, err
	}
	p.printInfo(opts, len(program))
	return r, nil
}

func (p *Pipeline) run(ctx context.Context, r *runner.Runner, opts options.Program, fe frontend.Frontend) error {
	if err := fe.Run(ctx, r); err != nil {
		return fmt.Errorf("running %s frontend: %w", opts.Frontend, err)
	}
	return nil
}

// printInfo prints information about the program being run.
func (p *Pipeline) printInfo(opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.String("frontend", opts.Frontend),
		log.Int("cycles", opts.Cycles),
	)
}

// CreateWriter returns the writer for the final display output, the console
// is used if no output file is set. The returned writer must be closed.
func CreateWriter(opts options.Program) (io.WriteCloser, error) {
	if opts.Output == "" {
		return &nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// nopCloser wraps an io.Writer to add a no-op Close method.
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
