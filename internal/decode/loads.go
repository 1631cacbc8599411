package decode

// buildLoadGroup fills the 0x40-0x7F block: LD r,r' for every register pair
// (including the (HL) indirect forms), with 0x76 reserved for HALT.
func buildLoadGroup() {
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue // HALT, handled in buildMiscGroup
		}
		d := byte((op >> 3) & 7)
		s := byte(op & 7)
		size := 1
		mnemonic := "LD " + r8Name[d] + "," + r8Name[s]
		set(byte(op), mnemonic, size, func(m Machine) {
			r8Set(m, d, r8Get(m, s))
		})
	}
}

// buildLoadImmediateGroup fills LD r,d8 (0x06,0x0E,...,0x3E) and LD (HL),d8 (0x36).
func buildLoadImmediateGroup() {
	immOps := [8]byte{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E}
	for idx, op := range immOps {
		d := byte(idx)
		set(op, "LD "+r8Name[d]+",d8", 2, func(m Machine) {
			r8Set(m, d, m.Imm8())
		})
	}
}

// build16BitLoadGroup covers 16-bit immediate loads, indirect (BC)/(DE)/(HL+-)
// forms, LDH, LD (C),A / A,(C), LD (a16),A / A,(a16), LD (a16),SP, LD SP,HL,
// and LD HL,SP+e8.
func build16BitLoadGroup() {
	set(0x01, "LD BC,d16", 3, func(m Machine) { m.SetBC(m.Imm16()) })
	set(0x11, "LD DE,d16", 3, func(m Machine) { m.SetDE(m.Imm16()) })
	set(0x21, "LD HL,d16", 3, func(m Machine) { m.SetHL(m.Imm16()) })
	set(0x31, "LD SP,d16", 3, func(m Machine) { m.SetSP(m.Imm16()) })

	set(0x08, "LD (a16),SP", 3, func(m Machine) {
		addr := m.Imm16()
		sp := m.SP()
		m.Write(addr, byte(sp&0xFF))
		m.Write(addr+1, byte(sp>>8))
	})

	set(0x02, "LD (BC),A", 1, func(m Machine) { m.Write(m.BC(), m.A()) })
	set(0x12, "LD (DE),A", 1, func(m Machine) { m.Write(m.DE(), m.A()) })
	set(0x0A, "LD A,(BC)", 1, func(m Machine) { m.SetA(m.Read(m.BC())) })
	set(0x1A, "LD A,(DE)", 1, func(m Machine) { m.SetA(m.Read(m.DE())) })

	set(0x22, "LD (HL+),A", 1, func(m Machine) {
		hl := m.HL()
		m.Write(hl, m.A())
		m.SetHL(hl + 1)
	})
	set(0x2A, "LD A,(HL+)", 1, func(m Machine) {
		hl := m.HL()
		m.SetA(m.Read(hl))
		m.SetHL(hl + 1)
	})
	set(0x32, "LD (HL-),A", 1, func(m Machine) {
		hl := m.HL()
		m.Write(hl, m.A())
		m.SetHL(hl - 1)
	})
	set(0x3A, "LD A,(HL-)", 1, func(m Machine) {
		hl := m.HL()
		m.SetA(m.Read(hl))
		m.SetHL(hl - 1)
	})

	set(0xE0, "LDH (a8),A", 2, func(m Machine) { m.Write(0xFF00+uint16(m.Imm8()), m.A()) })
	set(0xF0, "LDH A,(a8)", 2, func(m Machine) { m.SetA(m.Read(0xFF00 + uint16(m.Imm8()))) })
	set(0xE2, "LD (C),A", 1, func(m Machine) { m.Write(0xFF00+uint16(r8Get(m, 1)), m.A()) })
	set(0xF2, "LD A,(C)", 1, func(m Machine) { m.SetA(m.Read(0xFF00 + uint16(r8Get(m, 1)))) })

	set(0xEA, "LD (a16),A", 3, func(m Machine) { m.Write(m.Imm16(), m.A()) })
	set(0xFA, "LD A,(a16)", 3, func(m Machine) { m.SetA(m.Read(m.Imm16())) })

	set(0xF9, "LD SP,HL", 1, func(m Machine) { m.SetSP(m.HL()) })

	set(0xF8, "LD HL,SP+e8", 2, func(m Machine) {
		off := int8(m.Imm8())
		sp := m.SP()
		h, c := signedOffsetFlags(sp, byte(off))
		m.SetHL(uint16(int32(sp) + int32(off)))
		m.SetZNHC(bp(false), bp(false), bp(h), bp(c))
	})
}
