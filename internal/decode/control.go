package decode

// cc indexes the four branch conditions NZ, Z, NC, C used by JR/JP/CALL/RET cc.
func ccTest(m Machine, cc byte) bool {
	switch cc {
	case 0: // NZ
		return !flagZ(m)
	case 1: // Z
		return flagZ(m)
	case 2: // NC
		return !flagC(m)
	case 3: // C
		return flagC(m)
	}
	return false
}

var ccName = [4]string{"NZ", "Z", "NC", "C"}

func buildControlFlowGroup() {
	set(0xC3, "JP a16", 3, func(m Machine) { m.SetPC(m.Imm16()) })
	set(0xE9, "JP HL", 1, func(m Machine) { m.SetPC(m.HL()) })
	set(0x18, "JR e8", 2, func(m Machine) {
		off := int8(m.Imm8())
		m.SetPC(uint16(int32(m.PC()) + int32(off)))
	})

	jpCC := [4]byte{0xC2, 0xCA, 0xD2, 0xDA}
	jrCC := [4]byte{0x20, 0x28, 0x30, 0x38}
	callCC := [4]byte{0xC4, 0xCC, 0xD4, 0xDC}
	retCC := [4]byte{0xC0, 0xC8, 0xD0, 0xD8}
	for i := byte(0); i < 4; i++ {
		i := i
		set(jpCC[i], "JP "+ccName[i]+",a16", 3, func(m Machine) {
			addr := m.Imm16()
			if ccTest(m, i) {
				m.SetPC(addr)
			}
		})
		set(jrCC[i], "JR "+ccName[i]+",e8", 2, func(m Machine) {
			off := int8(m.Imm8())
			if ccTest(m, i) {
				m.SetPC(uint16(int32(m.PC()) + int32(off)))
			}
		})
		set(callCC[i], "CALL "+ccName[i]+",a16", 3, func(m Machine) {
			addr := m.Imm16()
			if ccTest(m, i) {
				m.Push16(m.PC())
				m.SetPC(addr)
			}
		})
		set(retCC[i], "RET "+ccName[i], 1, func(m Machine) {
			if ccTest(m, i) {
				m.SetPC(m.Pop16())
			}
		})
	}

	set(0xCD, "CALL a16", 3, func(m Machine) {
		addr := m.Imm16()
		m.Push16(m.PC())
		m.SetPC(addr)
	})
	set(0xC9, "RET", 1, func(m Machine) { m.SetPC(m.Pop16()) })
	set(0xD9, "RETI", 1, func(m Machine) {
		m.SetPC(m.Pop16())
		m.SetIME(true)
	})

	rstOps := [8]byte{0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF}
	for i, op := range rstOps {
		target := uint16(i) * 8
		set(op, "RST", 1, func(m Machine) {
			m.Push16(m.PC())
			m.SetPC(target)
		})
	}
}
