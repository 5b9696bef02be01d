package chip8

// cycle holds the transient state of a single instruction cycle. Handlers
// set next to change the program counter, it is only written back to the
// machine if the handler succeeds.
type cycle struct {
	pc      uint16
	op      opcode
	next    uint16
	outcome StepOutcome
}

// skip advances over the following instruction.
func (c *cycle) skip() {
	c.next += opcodeSize
}

func execCls(m *Machine, c *cycle) error {
	m.display.clear()
	m.markRedraw(c)
	return nil
}

func execRet(m *Machine, c *cycle) error {
	address, err := m.stack.Pop()
	if err != nil {
		return err
	}
	c.next = address
	return nil
}

func execJp(_ *Machine, c *cycle) error {
	c.next = c.op.nnn()
	return nil
}

// execCall pushes the address of the instruction following the call.
func execCall(m *Machine, c *cycle) error {
	if err := m.stack.Push(c.next); err != nil {
		return err
	}
	c.next = c.op.nnn()
	return nil
}

func execSeVxByte(m *Machine, c *cycle) error {
	if m.regs.V[c.op.x()] == c.op.nn() {
		c.skip()
	}
	return nil
}

func execSneVxByte(m *Machine, c *cycle) error {
	if m.regs.V[c.op.x()] != c.op.nn() {
		c.skip()
	}
	return nil
}

func execSeVxVy(m *Machine, c *cycle) error {
	if m.regs.V[c.op.x()] == m.regs.V[c.op.y()] {
		c.skip()
	}
	return nil
}

func execSneVxVy(m *Machine, c *cycle) error {
	if m.regs.V[c.op.x()] != m.regs.V[c.op.y()] {
		c.skip()
	}
	return nil
}

func execLdVxByte(m *Machine, c *cycle) error {
	m.regs.V[c.op.x()] = c.op.nn()
	return nil
}

// execAddVxByte adds without touching VF, the result wraps around.
func execAddVxByte(m *Machine, c *cycle) error {
	m.regs.V[c.op.x()] += c.op.nn()
	return nil
}

func execLdVxVy(m *Machine, c *cycle) error {
	m.regs.V[c.op.x()] = m.regs.V[c.op.y()]
	return nil
}

func execOr(m *Machine, c *cycle) error {
	m.regs.V[c.op.x()] |= m.regs.V[c.op.y()]
	m.logicFlag()
	return nil
}

func execAnd(m *Machine, c *cycle) error {
	m.regs.V[c.op.x()] &= m.regs.V[c.op.y()]
	m.logicFlag()
	return nil
}

func execXor(m *Machine, c *cycle) error {
	m.regs.V[c.op.x()] ^= m.regs.V[c.op.y()]
	m.logicFlag()
	return nil
}

// execAddVxVy sets VF to the carry.
func execAddVxVy(m *Machine, c *cycle) error {
	vx, vy := m.regs.V[c.op.x()], m.regs.V[c.op.y()]
	sum := uint16(vx) + uint16(vy)
	m.regs.V[c.op.x()] = byte(sum)
	m.regs.setFlag(sum > 0xFF)
	return nil
}

// execSub computes VX = VX - VY and sets VF to the borrow.
func execSub(m *Machine, c *cycle) error {
	vx, vy := m.regs.V[c.op.x()], m.regs.V[c.op.y()]
	m.regs.V[c.op.x()] = vx - vy
	m.borrowFlag(vy > vx)
	return nil
}

// execSubn computes VX = VY - VX and sets VF to the borrow.
func execSubn(m *Machine, c *cycle) error {
	vx, vy := m.regs.V[c.op.x()], m.regs.V[c.op.y()]
	m.regs.V[c.op.x()] = vy - vx
	m.borrowFlag(vx > vy)
	return nil
}

// execShr sets VF to the shifted out bit.
func execShr(m *Machine, c *cycle) error {
	src := m.shiftSource(c.op)
	m.regs.V[c.op.x()] = src >> 1
	m.regs.setFlag(src&0x01 != 0)
	return nil
}

// execShl sets VF to the shifted out bit.
func execShl(m *Machine, c *cycle) error {
	src := m.shiftSource(c.op)
	m.regs.V[c.op.x()] = src << 1
	m.regs.setFlag(src&0x80 != 0)
	return nil
}

func execLdIAddr(m *Machine, c *cycle) error {
	m.regs.I = c.op.nnn()
	return nil
}

func execJpV0(m *Machine, c *cycle) error {
	register := 0
	if m.config.Quirks.JumpUsesVX {
		register = c.op.x()
	}
	c.next = c.op.nnn() + uint16(m.regs.V[register])
	return nil
}

func execRnd(m *Machine, c *cycle) error {
	m.regs.V[c.op.x()] = m.random.RandomByte() & c.op.nn()
	return nil
}

// execDrw sets VF to 1 if any set pixel was cleared by the sprite.
func execDrw(m *Machine, c *cycle) error {
	rows, err := m.memory.span(m.regs.I, c.op.n())
	if err != nil {
		return err
	}

	collision := m.display.drawSprite(m.regs.V[c.op.x()], m.regs.V[c.op.y()], rows, m.config.Quirks.WrapSprites)
	m.regs.setFlag(collision)
	m.markRedraw(c)
	return nil
}

func execSkp(m *Machine, c *cycle) error {
	if m.keypad.Pressed(m.regs.V[c.op.x()]) {
		c.skip()
	}
	return nil
}

func execSknp(m *Machine, c *cycle) error {
	if !m.keypad.Pressed(m.regs.V[c.op.x()]) {
		c.skip()
	}
	return nil
}

func execLdVxDT(m *Machine, c *cycle) error {
	m.regs.V[c.op.x()] = m.timers.Delay
	return nil
}

// execLdVxK waits for a key press by repeating itself until a key is down.
func execLdVxK(m *Machine, c *cycle) error {
	key, ok := m.keypad.firstPressed()
	if !ok {
		c.next = c.pc
		c.outcome.Waiting = true
		return nil
	}
	m.regs.V[c.op.x()] = key
	return nil
}

func execLdDTVx(m *Machine, c *cycle) error {
	m.timers.Delay = m.regs.V[c.op.x()]
	return nil
}

func execLdSTVx(m *Machine, c *cycle) error {
	m.timers.Sound = m.regs.V[c.op.x()]
	return nil
}

// execAddIVx fails instead of wrapping the index past 16 bits.
func execAddIVx(m *Machine, c *cycle) error {
	index := int(m.regs.I) + int(m.regs.V[c.op.x()])
	if index > 0xFFFF {
		return ErrAddressOutOfRange
	}
	m.regs.I = uint16(index)
	return nil
}

func execLdFVx(m *Machine, c *cycle) error {
	m.regs.I = glyphAddress(m.regs.V[c.op.x()])
	return nil
}

// execLdBVx stores the binary-coded decimal digits of VX at I, I+1 and I+2.
func execLdBVx(m *Machine, c *cycle) error {
	digits, err := m.memory.span(m.regs.I, 3)
	if err != nil {
		return err
	}
	value := m.regs.V[c.op.x()]
	digits[0] = value / 100
	digits[1] = value / 10 % 10
	digits[2] = value % 10
	return nil
}

func execLdMemVx(m *Machine, c *cycle) error {
	count := c.op.x() + 1
	dst, err := m.memory.span(m.regs.I, count)
	if err != nil {
		return err
	}
	copy(dst, m.regs.V[:count])
	m.advanceIndex(count)
	return nil
}

func execLdVxMem(m *Machine, c *cycle) error {
	count := c.op.x() + 1
	src, err := m.memory.span(m.regs.I, count)
	if err != nil {
		return err
	}
	copy(m.regs.V[:count], src)
	m.advanceIndex(count)
	return nil
}

func (m *Machine) markRedraw(c *cycle) {
	m.redraw = true
	c.outcome.Redraw = true
}

func (m *Machine) logicFlag() {
	if m.config.Quirks.LogicResetsVF {
		m.regs.V[FlagRegister] = 0
	}
}

func (m *Machine) borrowFlag(borrow bool) {
	if m.config.Quirks.NotBorrowFlag {
		borrow = !borrow
	}
	m.regs.setFlag(borrow)
}

func (m *Machine) shiftSource(op opcode) byte {
	if m.config.Quirks.ShiftUsesVY {
		return m.regs.V[op.y()]
	}
	return m.regs.V[op.x()]
}

// advanceIndex moves I past a register transfer. The range was checked by
// span, so I+count never exceeds MemorySize.
func (m *Machine) advanceIndex(count int) {
	if !m.config.Quirks.NoIndexIncrement {
		m.regs.I += uint16(count)
	}
}
