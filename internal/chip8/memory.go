package chip8

// Addresses below ProgramStart hold the font, programs fill the rest.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where CHIP-8 programs are loaded
	// and begin execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart
)

// Memory is the 4KB byte addressable memory of the machine.
type Memory [MemorySize]byte

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if address > MaxAddress {
		return 0, ErrAddressOutOfRange
	}
	return m[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if address > MaxAddress {
		return ErrAddressOutOfRange
	}
	m[address] = value
	return nil
}

// span returns the memory slice of length bytes starting at address.
// The returned slice aliases the memory.
func (m *Memory) span(address uint16, length int) ([]byte, error) {
	end := int(address) + length
	if end > MemorySize {
		return nil, ErrAddressOutOfRange
	}
	return m[address:end], nil
}

// word reads the big-endian opcode stored at address.
func (m *Memory) word(address uint16) (uint16, error) {
	b, err := m.span(address, opcodeSize)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}
