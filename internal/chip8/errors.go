package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrProgramTooLarge is returned when a program exceeds MaxProgramSize.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrUnknownOpcode is returned for opcodes that match no instruction
	// when the machine is configured to halt on them.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrStackOverflow is returned when a call exceeds StackDepth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned by a return with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrAddressOutOfRange is returned for memory accesses beyond MaxAddress.
	ErrAddressOutOfRange = errors.New("address out of range")
	// ErrKeyOutOfRange is returned when setting a key outside of 0x0-0xF.
	ErrKeyOutOfRange = errors.New("key out of range")
)

// ExecError describes a failed instruction cycle. The machine state is left
// unchanged by the failed cycle.
type ExecError struct {
	Address uint16 // program counter of the instruction
	Opcode  uint16 // 0 if the opcode could not be fetched
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("executing opcode %04X at address %03X: %v", e.Opcode, e.Address, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
