package chip8

// FlagRegister is the index of VF, the register that instructions overload
// as carry, borrow, shifted out bit or sprite collision flag.
const FlagRegister = 0xF

// RegisterFile contains the CPU registers of the machine.
type RegisterFile struct {
	V  [16]byte // general purpose registers V0-VF
	I  uint16   // index register
	PC uint16   // program counter
}

// setFlag writes the flag register. It has to be called after the result
// register was written so that the flag wins for instructions targeting VF.
func (r *RegisterFile) setFlag(set bool) {
	if set {
		r.V[FlagRegister] = 1
	} else {
		r.V[FlagRegister] = 0
	}
}
