package decode

// fakeMachine is a minimal, fully in-memory decode.Machine for exercising
// individual opcode executors without a real CPU/bus.
type fakeMachine struct {
	r8       [8]byte // indices 0-5,7 are registers; slot 6 holds F ((HL) goes through mem[hl])
	sp, pc   uint16
	mem      [0x10000]byte
	prefixed bool
	halted   bool
	ime      bool
	eiDelay  int
}

func (m *fakeMachine) GetR8(idx byte) byte  { return m.r8[idx] }
func (m *fakeMachine) SetR8(idx byte, v byte) { m.r8[idx] = v }

func (m *fakeMachine) A() byte     { return m.r8[7] }
func (m *fakeMachine) SetA(v byte) { m.r8[7] = v }
func (m *fakeMachine) F() byte     { return m.r8[6] & 0xF0 }
func (m *fakeMachine) SetF(v byte) { m.r8[6] = v & 0xF0 }

func (m *fakeMachine) BC() uint16     { return uint16(m.r8[0])<<8 | uint16(m.r8[1]) }
func (m *fakeMachine) SetBC(v uint16) { m.r8[0], m.r8[1] = byte(v>>8), byte(v) }
func (m *fakeMachine) DE() uint16     { return uint16(m.r8[2])<<8 | uint16(m.r8[3]) }
func (m *fakeMachine) SetDE(v uint16) { m.r8[2], m.r8[3] = byte(v>>8), byte(v) }
func (m *fakeMachine) HL() uint16     { return uint16(m.r8[4])<<8 | uint16(m.r8[5]) }
func (m *fakeMachine) SetHL(v uint16) { m.r8[4], m.r8[5] = byte(v>>8), byte(v) }
func (m *fakeMachine) AF() uint16     { return uint16(m.A())<<8 | uint16(m.F()) }
func (m *fakeMachine) SetAF(v uint16) { m.SetA(byte(v >> 8)); m.SetF(byte(v)) }

func (m *fakeMachine) SP() uint16     { return m.sp }
func (m *fakeMachine) SetSP(v uint16) { m.sp = v }
func (m *fakeMachine) PC() uint16     { return m.pc }
func (m *fakeMachine) SetPC(v uint16) { m.pc = v }

func (m *fakeMachine) Read(addr uint16) byte    { return m.mem[addr] }
func (m *fakeMachine) Write(addr uint16, v byte) { m.mem[addr] = v }

func (m *fakeMachine) Imm8() byte    { return m.mem[m.pc-1] }
func (m *fakeMachine) Imm16() uint16 { return uint16(m.mem[m.pc-1])<<8 | uint16(m.mem[m.pc-2]) }

func (m *fakeMachine) SetPrefixed(b bool) { m.prefixed = b }
func (m *fakeMachine) SetHalted(b bool)   { m.halted = b }

func (m *fakeMachine) SetZNHC(z, n, h, c *bool) {
	f := m.F()
	apply := func(f byte, bit uint, v *bool) byte {
		if v == nil {
			return f
		}
		if *v {
			return f | 1<<bit
		}
		return f &^ (1 << bit)
	}
	f = apply(f, 7, z)
	f = apply(f, 6, n)
	f = apply(f, 5, h)
	f = apply(f, 4, c)
	m.SetF(f)
}

func (m *fakeMachine) IME() bool      { return m.ime }
func (m *fakeMachine) SetIME(b bool)  { m.ime = b }
func (m *fakeMachine) RequestEIDelay() { m.eiDelay = 2 }

func (m *fakeMachine) Push16(v uint16) {
	m.sp--
	m.mem[m.sp] = byte(v >> 8)
	m.sp--
	m.mem[m.sp] = byte(v)
}

func (m *fakeMachine) Pop16() uint16 {
	lo := m.mem[m.sp]
	m.sp++
	hi := m.mem[m.sp]
	m.sp++
	return uint16(hi)<<8 | uint16(lo)
}

// step decodes and runs the instruction at m.pc, advancing pc per the
// pre-advance contract, and returns the mnemonic executed.
func step(m *fakeMachine) string {
	op := m.mem[m.pc]
	table := Base
	if m.prefixed {
		table = Prefixed
		m.prefixed = false
	}
	entry := table[op]
	if entry == nil {
		return ""
	}
	m.pc += uint16(entry.Size)
	entry.Exec(m)
	return entry.Mnemonic
}

var _ Machine = (*fakeMachine)(nil)
