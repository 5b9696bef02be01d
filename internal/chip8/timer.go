package chip8

// TimerFrequency is the rate in Hz at which the host is expected to call
// Machine.TickTimers.
const TimerFrequency = 60

// Timers contains the delay and sound countdown timers.
type Timers struct {
	Delay byte
	Sound byte
}

// Tick decrements both non zero timers by one. It returns true if the sound
// timer reached zero with this tick, which signals the host to stop the tone.
func (t *Timers) Tick() bool {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound == 0 {
		return false
	}
	t.Sound--
	return t.Sound == 0
}

// ToneActive returns whether the sound timer requests a tone.
func (t *Timers) ToneActive() bool {
	return t.Sound > 0
}
