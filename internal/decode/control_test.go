package decode

import "testing"

func TestJR_e8_NegativeOffset(t *testing.T) {
	m := &fakeMachine{}
	m.pc = 0x10
	m.mem[0x10] = 0x18 // JR e8
	m.mem[0x11] = 0xFE // -2
	step(m)

	if m.pc != 0x10 {
		t.Fatalf("PC = %#04x, want 0x10 (loop back to self)", m.pc)
	}
}

func TestJR_cc_NotTaken_OnlyAdvancesPC(t *testing.T) {
	m := &fakeMachine{}
	m.SetF(0x80) // Z set
	m.mem[0] = 0x20 // JR NZ,e8
	m.mem[1] = 0x05
	step(m)

	if m.pc != 2 {
		t.Fatalf("PC = %d, want 2 (not taken, only the instruction's own advance)", m.pc)
	}
}

func TestCALL_and_RET_RoundTrip(t *testing.T) {
	m := &fakeMachine{}
	m.sp = 0xFFFE
	m.mem[0] = 0xCD // CALL a16
	m.mem[1] = 0x00
	m.mem[2] = 0x20
	step(m)

	if m.pc != 0x2000 {
		t.Fatalf("PC = %#04x, want 0x2000", m.pc)
	}
	if m.sp != 0xFFFC {
		t.Fatalf("SP = %#04x, want 0xFFFC", m.sp)
	}

	m.mem[0x2000] = 0xC9 // RET
	step(m)
	if m.pc != 0x0003 {
		t.Fatalf("PC after RET = %#04x, want 0x0003", m.pc)
	}
	if m.sp != 0xFFFE {
		t.Fatalf("SP after RET = %#04x, want 0xFFFE", m.sp)
	}
}

func TestPUSH_POP_StackDiscipline(t *testing.T) {
	m := &fakeMachine{}
	m.sp = 0xFFFE
	m.SetBC(0x1234)
	m.mem[0] = 0xC5 // PUSH BC
	step(m)

	if m.sp != 0xFFFC {
		t.Fatalf("SP = %#04x, want 0xFFFC", m.sp)
	}
	if m.mem[0xFFFD] != 0x12 || m.mem[0xFFFC] != 0x34 {
		t.Fatalf("stack bytes = %02x,%02x, want 12,34", m.mem[0xFFFD], m.mem[0xFFFC])
	}

	m.SetBC(0x0000)
	m.mem[1] = 0xC1 // POP BC
	step(m)
	if m.BC() != 0x1234 {
		t.Fatalf("BC after POP = %#04x, want 0x1234", m.BC())
	}
	if m.sp != 0xFFFE {
		t.Fatalf("SP after POP = %#04x, want 0xFFFE", m.sp)
	}
}

func TestRST_JumpsToPageZeroTarget(t *testing.T) {
	m := &fakeMachine{}
	m.sp = 0xFFFE
	m.pc = 0x1000
	m.mem[0x1000] = 0xEF // RST 0x28
	step(m)

	if m.pc != 0x28 {
		t.Fatalf("PC = %#04x, want 0x0028", m.pc)
	}
	if m.Pop16() != 0x1001 {
		t.Fatalf("pushed return address should be 0x1001")
	}
}
