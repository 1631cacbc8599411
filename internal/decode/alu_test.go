package decode

import "testing"

func TestADD_A_r_SetsCarryAndHalfCarry(t *testing.T) {
	m := &fakeMachine{}
	m.SetA(0xFF)
	m.SetR8(0, 0x01) // B
	m.mem[0] = 0x80  // ADD A,B
	mnemonic := step(m)

	if mnemonic != "ADD A,B" {
		t.Fatalf("mnemonic = %q", mnemonic)
	}
	if m.A() != 0x00 {
		t.Fatalf("A = %#02x, want 0x00", m.A())
	}
	if m.F()&0x80 == 0 {
		t.Error("Z flag should be set")
	}
	if m.F()&0x10 == 0 {
		t.Error("C flag should be set")
	}
	if m.F()&0x20 == 0 {
		t.Error("H flag should be set")
	}
}

func TestSUB_A_d8_Immediate(t *testing.T) {
	m := &fakeMachine{}
	m.SetA(0x10)
	m.mem[0] = 0xD6 // SUB d8
	m.mem[1] = 0x01
	step(m)

	if m.A() != 0x0F {
		t.Fatalf("A = %#02x, want 0x0F", m.A())
	}
	if m.F()&0x40 == 0 {
		t.Error("N flag should be set after SUB")
	}
}

func TestCP_DoesNotModifyA(t *testing.T) {
	m := &fakeMachine{}
	m.SetA(0x05)
	m.SetR8(1, 0x05) // C
	m.mem[0] = 0xB9  // CP A,C
	step(m)

	if m.A() != 0x05 {
		t.Fatalf("CP must not alter A, got %#02x", m.A())
	}
	if m.F()&0x80 == 0 {
		t.Error("Z flag should be set when operands are equal")
	}
}

func TestXOR_A_A_ZeroesAAndSetsZ(t *testing.T) {
	m := &fakeMachine{}
	m.SetA(0x42)
	m.mem[0] = 0xAF // XOR A,A
	step(m)

	if m.A() != 0 {
		t.Fatalf("A = %#02x, want 0", m.A())
	}
	if m.F() != 0x80 {
		t.Fatalf("F = %#02x, want only Z set", m.F())
	}
}

func TestADC_IncludesCarryIn(t *testing.T) {
	m := &fakeMachine{}
	m.SetA(0x01)
	m.SetR8(0, 0x01)
	m.SetF(0x10) // C set
	m.mem[0] = 0x88 // ADC A,B
	step(m)

	if m.A() != 0x03 {
		t.Fatalf("A = %#02x, want 0x03 (1+1+carry)", m.A())
	}
}
