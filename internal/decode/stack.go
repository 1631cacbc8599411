package decode

func buildStackGroup() {
	pushOps := []struct {
		op   byte
		name string
		get  func(m Machine) uint16
	}{
		{0xC5, "BC", func(m Machine) uint16 { return m.BC() }},
		{0xD5, "DE", func(m Machine) uint16 { return m.DE() }},
		{0xE5, "HL", func(m Machine) uint16 { return m.HL() }},
		{0xF5, "AF", func(m Machine) uint16 { return m.AF() }},
	}
	for _, p := range pushOps {
		p := p
		set(p.op, "PUSH "+p.name, 1, func(m Machine) { m.Push16(p.get(m)) })
	}

	popOps := []struct {
		op   byte
		name string
		setv func(m Machine, v uint16)
	}{
		{0xC1, "BC", func(m Machine, v uint16) { m.SetBC(v) }},
		{0xD1, "DE", func(m Machine, v uint16) { m.SetDE(v) }},
		{0xE1, "HL", func(m Machine, v uint16) { m.SetHL(v) }},
		{0xF1, "AF", func(m Machine, v uint16) { m.SetAF(v) }},
	}
	for _, p := range popOps {
		p := p
		set(p.op, "POP "+p.name, 1, func(m Machine) { p.setv(m, m.Pop16()) })
	}
}
