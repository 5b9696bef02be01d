package chip8

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Stack is the return address stack of the machine.
type Stack struct {
	slots [StackDepth]uint16
	sp    int // number of used slots
}

// Push stores a return address, it fails if all slots are used.
func (s *Stack) Push(address uint16) error {
	if s.sp >= StackDepth {
		return ErrStackOverflow
	}
	s.slots[s.sp] = address
	s.sp++
	return nil
}

// Pop removes and returns the last pushed return address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	address := s.slots[s.sp]
	s.slots[s.sp] = 0
	return address, nil
}

// Depth returns the number of return addresses on the stack.
func (s *Stack) Depth() int {
	return s.sp
}
