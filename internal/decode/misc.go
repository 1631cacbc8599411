package decode

// buildRotateShiftUnprefixed fills RLCA/RRCA/RLA/RRA, which are identical to
// their CB-prefixed RLC/RRC/RL/RR A counterparts except they always write Z=0
// (the prefixed forms write Z from the result).
func buildRotateShiftUnprefixed() {
	set(0x07, "RLCA", 1, func(m Machine) {
		a := m.A()
		carry := (a >> 7) & 1
		m.SetA((a << 1) | carry)
		m.SetZNHC(bp(false), bp(false), bp(false), bp(carry == 1))
	})
	set(0x0F, "RRCA", 1, func(m Machine) {
		a := m.A()
		carry := a & 1
		m.SetA((a >> 1) | (carry << 7))
		m.SetZNHC(bp(false), bp(false), bp(false), bp(carry == 1))
	})
	set(0x17, "RLA", 1, func(m Machine) {
		a := m.A()
		carryOut := (a >> 7) & 1
		carryIn := byte(0)
		if flagC(m) {
			carryIn = 1
		}
		m.SetA((a << 1) | carryIn)
		m.SetZNHC(bp(false), bp(false), bp(false), bp(carryOut == 1))
	})
	set(0x1F, "RRA", 1, func(m Machine) {
		a := m.A()
		carryOut := a & 1
		carryIn := byte(0)
		if flagC(m) {
			carryIn = 1
		}
		m.SetA((a >> 1) | (carryIn << 7))
		m.SetZNHC(bp(false), bp(false), bp(false), bp(carryOut == 1))
	})
}

func buildMiscGroup() {
	set(0x00, "NOP", 1, func(m Machine) {})

	set(0x76, "HALT", 1, func(m Machine) { m.SetHalted(true) })
	set(0x10, "STOP", 2, func(m Machine) {
		// Modeled as a no-op: correct STOP behavior needs timer/joypad
		// wake-up modeling this core does not implement (see DESIGN.md).
	})

	set(0xF3, "DI", 1, func(m Machine) { m.SetIME(false) })
	set(0xFB, "EI", 1, func(m Machine) { m.RequestEIDelay() })

	set(0xCB, "PREFIX CB", 1, func(m Machine) { m.SetPrefixed(true) })

	set(0x2F, "CPL", 1, func(m Machine) {
		m.SetA(^m.A())
		m.SetZNHC(nil, bp(true), bp(true), nil)
	})
	set(0x37, "SCF", 1, func(m Machine) {
		m.SetZNHC(nil, bp(false), bp(false), bp(true))
	})
	set(0x3F, "CCF", 1, func(m Machine) {
		m.SetZNHC(nil, bp(false), bp(false), bp(!flagC(m)))
	})

	set(0x27, "DAA", 1, func(m Machine) {
		a := m.A()
		cf := flagC(m)
		hf := m.F()&0x20 != 0
		nf := m.F()&0x40 != 0
		if !nf {
			if cf || a > 0x99 {
				a += 0x60
				cf = true
			}
			if hf || (a&0x0F) > 9 {
				a += 0x06
			}
		} else {
			if cf {
				a -= 0x60
			}
			if hf {
				a -= 0x06
			}
		}
		m.SetA(a)
		m.SetZNHC(bp(a == 0), nil, bp(false), bp(cf))
	})
}
