package decode

// buildIncDecGroup fills 8-bit INC/DEC r8 (including (HL)), 16-bit INC/DEC
// register pairs (no flag writes), ADD HL,rr, and ADD SP,e8.
func buildIncDecGroup() {
	incOps := [8]byte{0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C}
	decOps := [8]byte{0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D}
	for idx := byte(0); idx < 8; idx++ {
		idx := idx
		set(incOps[idx], "INC "+r8Name[idx], 1, func(m Machine) {
			old := r8Get(m, idx)
			v := old + 1
			r8Set(m, idx, v)
			m.SetZNHC(bp(v == 0), bp(false), bp(old&0x0F == 0x0F), nil)
		})
		set(decOps[idx], "DEC "+r8Name[idx], 1, func(m Machine) {
			old := r8Get(m, idx)
			v := old - 1
			r8Set(m, idx, v)
			m.SetZNHC(bp(v == 0), bp(true), bp(old&0x0F == 0x00), nil)
		})
	}

	type pair struct {
		inc, dec byte
		get      func(m Machine) uint16
		setv     func(m Machine, v uint16)
		name     string
	}
	pairs := []pair{
		{0x03, 0x0B, func(m Machine) uint16 { return m.BC() }, func(m Machine, v uint16) { m.SetBC(v) }, "BC"},
		{0x13, 0x1B, func(m Machine) uint16 { return m.DE() }, func(m Machine, v uint16) { m.SetDE(v) }, "DE"},
		{0x23, 0x2B, func(m Machine) uint16 { return m.HL() }, func(m Machine, v uint16) { m.SetHL(v) }, "HL"},
		{0x33, 0x3B, func(m Machine) uint16 { return m.SP() }, func(m Machine, v uint16) { m.SetSP(v) }, "SP"},
	}
	for _, p := range pairs {
		p := p
		set(p.inc, "INC "+p.name, 1, func(m Machine) { p.setv(m, p.get(m)+1) })
		set(p.dec, "DEC "+p.name, 1, func(m Machine) { p.setv(m, p.get(m)-1) })
	}

	addHL := []struct {
		op   byte
		name string
		get  func(m Machine) uint16
	}{
		{0x09, "BC", func(m Machine) uint16 { return m.BC() }},
		{0x19, "DE", func(m Machine) uint16 { return m.DE() }},
		{0x29, "HL", func(m Machine) uint16 { return m.HL() }},
		{0x39, "SP", func(m Machine) uint16 { return m.SP() }},
	}
	for _, a := range addHL {
		a := a
		set(a.op, "ADD HL,"+a.name, 1, func(m Machine) {
			hl := m.HL()
			v := a.get(m)
			r := uint32(hl) + uint32(v)
			h := (hl&0x0FFF)+(v&0x0FFF) > 0x0FFF
			m.SetHL(uint16(r))
			m.SetZNHC(nil, bp(false), bp(h), bp(r > 0xFFFF))
		})
	}

	set(0xE8, "ADD SP,e8", 2, func(m Machine) {
		off := int8(m.Imm8())
		sp := m.SP()
		h, c := signedOffsetFlags(sp, byte(off))
		m.SetSP(uint16(int32(sp) + int32(off)))
		m.SetZNHC(bp(false), bp(false), bp(h), bp(c))
	})
}
