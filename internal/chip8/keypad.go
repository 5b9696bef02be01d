package chip8

// KeyCount is the number of keys of the hexadecimal keypad.
const KeyCount = 16

// Keypad contains the pressed state of the 16 keys 0x0-0xF.
type Keypad [KeyCount]bool

// Set updates the state of a key.
func (k *Keypad) Set(key int, pressed bool) error {
	if key < 0 || key >= KeyCount {
		return ErrKeyOutOfRange
	}
	k[key] = pressed
	return nil
}

// Pressed returns whether the key is currently held down.
// Only the low nibble of the key is used, matching the keypad wiring.
func (k *Keypad) Pressed(key byte) bool {
	return k[key&0x0F]
}

// firstPressed returns the lowest pressed key.
func (k *Keypad) firstPressed() (byte, bool) {
	for i, pressed := range k {
		if pressed {
			return byte(i), true
		}
	}
	return 0, false
}
