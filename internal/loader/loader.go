// Package loader handles program file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Loader handles loading program files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the program file at the given path. Files that do not fit into
// the program area of the machine memory are rejected.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	program, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading program %s: %w", path, err)
	}
	return program, nil
}

// LoadFromReader reads a raw program image from the reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized programs without
	// reading the whole input
	data, err := io.ReadAll(io.LimitReader(reader, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if len(data) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("program exceeds %d bytes: %w", chip8.MaxProgramSize, chip8.ErrProgramTooLarge)
	}
	return data, nil
}
