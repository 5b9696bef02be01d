package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// opcode is a fetched 16-bit instruction word.
type opcode uint16

// x extracts the X register nibble.
func (o opcode) x() int { return int(o&0x0F00) >> 8 }

// y extracts the Y register nibble.
func (o opcode) y() int { return int(o&0x00F0) >> 4 }

func (o opcode) n() int      { return int(o & 0x000F) }
func (o opcode) nn() byte    { return byte(o) }
func (o opcode) nnn() uint16 { return uint16(o) & 0x0FFF }

// operands defines how the parameters of an instruction form are printed.
type operands int

const (
	noOperands operands = iota
	operandAddr
	operandV0Addr
	operandVxByte
	operandVxVy
	operandVx
	operandIAddr
	operandDraw
	operandVxDT
	operandDTVx
	operandSTVx
	operandVxK
	operandIVx
	operandFVx
	operandBVx
	operandMemVx
	operandVxMem
)

// handler executes a decoded instruction form.
type handler func(m *Machine, c *cycle) error

// binding connects an instruction form of the instruction set to its
// handler and operand format.
type binding struct {
	operands operands
	exec     handler
}

// bindings maps the opcode value of every supported instruction form.
var bindings = map[uint16]binding{
	0x00E0: {noOperands, execCls},
	0x00EE: {noOperands, execRet},
	0x1000: {operandAddr, execJp},
	0x2000: {operandAddr, execCall},
	0x3000: {operandVxByte, execSeVxByte},
	0x4000: {operandVxByte, execSneVxByte},
	0x5000: {operandVxVy, execSeVxVy},
	0x6000: {operandVxByte, execLdVxByte},
	0x7000: {operandVxByte, execAddVxByte},
	0x8000: {operandVxVy, execLdVxVy},
	0x8001: {operandVxVy, execOr},
	0x8002: {operandVxVy, execAnd},
	0x8003: {operandVxVy, execXor},
	0x8004: {operandVxVy, execAddVxVy},
	0x8005: {operandVxVy, execSub},
	0x8006: {operandVx, execShr},
	0x8007: {operandVxVy, execSubn},
	0x800E: {operandVx, execShl},
	0x9000: {operandVxVy, execSneVxVy},
	0xA000: {operandIAddr, execLdIAddr},
	0xB000: {operandV0Addr, execJpV0},
	0xC000: {operandVxByte, execRnd},
	0xD000: {operandDraw, execDrw},
	0xE09E: {operandVx, execSkp},
	0xE0A1: {operandVx, execSknp},
	0xF007: {operandVxDT, execLdVxDT},
	0xF00A: {operandVxK, execLdVxK},
	0xF015: {operandDTVx, execLdDTVx},
	0xF018: {operandSTVx, execLdSTVx},
	0xF01E: {operandIVx, execAddIVx},
	0xF029: {operandFVx, execLdFVx},
	0xF033: {operandBVx, execLdBVx},
	0xF055: {operandMemVx, execLdMemVx},
	0xF065: {operandVxMem, execLdVxMem},
}

// form is one entry of the decode table. An opcode w matches the form
// if w&mask == value.
type form struct {
	mask  uint16
	value uint16
	ins   *chip8cpu.Instruction
	binding
}

// decodeTable groups the forms by the first opcode nibble.
var decodeTable = buildDecodeTable()

// buildDecodeTable walks the opcodes of the instruction set and keeps every
// form that has a binding. Forms without a binding, like the machine code
// call 0NNN, decode as unknown opcodes.
func buildDecodeTable() [16][]*form {
	var table [16][]*form
	for nibble := 0; nibble < len(table); nibble++ {
		for _, op := range chip8cpu.Opcodes[nibble] {
			b, ok := bindings[op.Info.Value]
			if !ok || op.Instruction == nil {
				continue
			}
			table[nibble] = append(table[nibble], &form{
				mask:    op.Info.Mask,
				value:   op.Info.Value,
				ins:     op.Instruction,
				binding: b,
			})
		}
	}
	return table
}

// decode returns the instruction form matching the opcode.
func decode(w uint16) (*form, bool) {
	for _, f := range decodeTable[w>>12] {
		if w&f.mask == f.value {
			return f, true
		}
	}
	return nil, false
}

// Mnemonic returns the assembly representation of an opcode, for example
// "drw V1, V2, $5". Unknown opcodes are returned as data word.
func Mnemonic(w uint16) string {
	f, ok := decode(w)
	if !ok {
		return fmt.Sprintf(".word $%04X", w)
	}

	name := f.ins.Name
	if params := formatOperands(f.operands, opcode(w)); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// formatOperands formats the parameters of an instruction.
func formatOperands(kind operands, op opcode) string {
	switch kind {
	case operandAddr:
		return fmt.Sprintf("$%03X", op.nnn())
	case operandV0Addr:
		return fmt.Sprintf("V0, $%03X", op.nnn())
	case operandVxByte:
		return fmt.Sprintf("V%X, $%02X", op.x(), op.nn())
	case operandVxVy:
		return fmt.Sprintf("V%X, V%X", op.x(), op.y())
	case operandVx:
		return fmt.Sprintf("V%X", op.x())
	case operandIAddr:
		return fmt.Sprintf("I, $%03X", op.nnn())
	case operandDraw:
		return fmt.Sprintf("V%X, V%X, $%X", op.x(), op.y(), op.n())
	case operandVxDT:
		return fmt.Sprintf("V%X, DT", op.x())
	case operandDTVx:
		return fmt.Sprintf("DT, V%X", op.x())
	case operandSTVx:
		return fmt.Sprintf("ST, V%X", op.x())
	case operandVxK:
		return fmt.Sprintf("V%X, K", op.x())
	case operandIVx:
		return fmt.Sprintf("I, V%X", op.x())
	case operandFVx:
		return fmt.Sprintf("F, V%X", op.x())
	case operandBVx:
		return fmt.Sprintf("B, V%X", op.x())
	case operandMemVx:
		return fmt.Sprintf("[I], V%X", op.x())
	case operandVxMem:
		return fmt.Sprintf("V%X, [I]", op.x())
	default:
		return ""
	}
}
