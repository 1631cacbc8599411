package bus

// Button bit positions within the two joypad banks (D-pad and action).
const (
	ButtonRight  = 0
	ButtonLeft   = 1
	ButtonUp     = 2
	ButtonDown   = 3
	ButtonA      = 0
	ButtonB      = 1
	ButtonSelect = 2
	ButtonStart  = 3
)

// SetJoypadState is called by the host once per frame with the current
// button state, active-low (bit clear = pressed), as two low nibbles: dpad
// and action, with bit positions given by the Button* constants above. A
// newly pressed bit in whichever bank is currently selected raises the
// Joypad interrupt (IF bit 4), per the teacher's edge-detection approach.
func (b *Bus) SetJoypadState(dpad, action byte) {
	b.dpad, b.action = dpad, action
	b.updateJoypadIRQ()
}

// updateJoypadIRQ recomputes which buttons are visible in the currently
// selected bank(s) and raises the Joypad interrupt on any 1->0 transition
// since the last call. Both the host's SetJoypadState and the CPU's write to
// JOYP (which can change bank selection while a button is already held)
// share this single edge-detector, mirroring the teacher's approach.
func (b *Bus) updateJoypadIRQ() {
	cur := b.selectedBank()
	if b.joypLastBank&^cur != 0 {
		b.RequestInterrupt(4)
	}
	b.joypLastBank = cur
}

func (b *Bus) selectedBank() byte {
	bank := byte(0x0F)
	if b.joypSelect&0x10 == 0 {
		bank &= b.dpad
	}
	if b.joypSelect&0x20 == 0 {
		bank &= b.action
	}
	return bank
}

func (b *Bus) readJoypad() byte {
	return 0xC0 | b.joypSelect | b.selectedBank()
}

// writeSC completes an "instant" serial transfer when bit 7 is set: no
// second Game Boy is modeled, so the outgoing byte is written straight to
// the injected sink and the Serial interrupt fires immediately, with SC's
// start bit never observed set afterward.
func (b *Bus) writeSC(v byte) {
	b.sc = v & 0x7F
	if v&0x80 != 0 {
		if b.serialSink != nil {
			b.serialSink.Write([]byte{b.sb})
		}
		b.RequestInterrupt(3)
	}
}
