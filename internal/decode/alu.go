package decode

// buildALUGroup fills the 0x80-0xBF register/indirect-HL ALU block and the
// 0xC6-0xFE immediate-operand ALU row (ADD, ADC, SUB, SBC, AND, XOR, OR, CP).
func buildALUGroup() {
	type op struct {
		base byte
		name string
		fn   func(m Machine, a, b byte) (res byte, z, n, h, c bool)
	}
	ops := []op{
		{0x80, "ADD", func(m Machine, a, b byte) (byte, bool, bool, bool, bool) {
			r, h, c := add8(a, b)
			return r, r == 0, false, h, c
		}},
		{0x88, "ADC", func(m Machine, a, b byte) (byte, bool, bool, bool, bool) {
			r, h, c := adc8(a, b, flagC(m))
			return r, r == 0, false, h, c
		}},
		{0x90, "SUB", func(m Machine, a, b byte) (byte, bool, bool, bool, bool) {
			r, h, c := sub8(a, b)
			return r, r == 0, true, h, c
		}},
		{0x98, "SBC", func(m Machine, a, b byte) (byte, bool, bool, bool, bool) {
			r, h, c := sbc8(a, b, flagC(m))
			return r, r == 0, true, h, c
		}},
		{0xA0, "AND", func(m Machine, a, b byte) (byte, bool, bool, bool, bool) {
			r := a & b
			return r, r == 0, false, true, false
		}},
		{0xA8, "XOR", func(m Machine, a, b byte) (byte, bool, bool, bool, bool) {
			r := a ^ b
			return r, r == 0, false, false, false
		}},
		{0xB0, "OR", func(m Machine, a, b byte) (byte, bool, bool, bool, bool) {
			r := a | b
			return r, r == 0, false, false, false
		}},
		{0xB8, "CP", func(m Machine, a, b byte) (byte, bool, bool, bool, bool) {
			r, h, c := sub8(a, b)
			return a, r == 0, true, h, c
		}},
	}

	for _, o := range ops {
		o := o
		for s := byte(0); s < 8; s++ {
			s := s
			opcode := o.base + s
			size := 1
			exec := func(m Machine) {
				res, z, n, h, c := o.fn(m, m.A(), r8Get(m, s))
				if o.name != "CP" {
					m.SetA(res)
				}
				m.SetZNHC(bp(z), bp(n), bp(h), bp(c))
			}
			set(opcode, o.name+" A,"+r8Name[s], size, exec)
		}

		// Immediate-operand row: d8 forms live in 0xC6.. spaced by 8, one per group.
		immOp := byte(0xC6) + (o.base - 0x80)
		exec := func(m Machine) {
			res, z, n, h, c := o.fn(m, m.A(), m.Imm8())
			if o.name != "CP" {
				m.SetA(res)
			}
			m.SetZNHC(bp(z), bp(n), bp(h), bp(c))
		}
		set(immOp, o.name+" A,d8", 2, exec)
	}
}
