package machine

import "testing"

func TestNew_SkipBoot_SetsPostBootRegisters(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := New(Config{ROM: rom, SkipBoot: true})

	if m.CPU.PC() != 0x0100 {
		t.Fatalf("PC = %#04x, want 0x0100", m.CPU.PC())
	}
	if m.CPU.SP() != 0xFFFE {
		t.Fatalf("SP = %#04x, want 0xFFFE", m.CPU.SP())
	}
	if m.Bus.Read(0xFF40) != 0x91 {
		t.Fatalf("LCDC = %#02x, want 0x91", m.Bus.Read(0xFF40))
	}
}

func TestTick_AdvancesPCOnNOPStream(t *testing.T) {
	rom := make([]byte, 0x8000) // all zero bytes decode as NOP (0x00)
	m := New(Config{ROM: rom, SkipBoot: true})

	start := m.CPU.PC()
	m.Tick()
	if m.CPU.PC() != start+1 {
		t.Fatalf("PC = %#04x, want %#04x after one NOP tick", m.CPU.PC(), start+1)
	}
}

func TestRunFrame_AdvancesFrameCountByOne(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := New(Config{ROM: rom, SkipBoot: true})

	m.RunFrame()
	if m.FrameCount() != 1 {
		t.Fatalf("FrameCount = %d, want 1", m.FrameCount())
	}
}

func TestSaveLoadState_RoundTripsCPUAndBusState(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := New(Config{ROM: rom, SkipBoot: true})

	for i := 0; i < 1000; i++ {
		m.Tick()
	}
	m.Bus.Write(0xC000, 0x77) // distinguishable WRAM content

	blob := m.SaveState()

	m2 := New(Config{ROM: rom, SkipBoot: true})
	if err := m2.LoadState(blob); err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}

	if m2.CPU.PC() != m.CPU.PC() {
		t.Fatalf("PC after load = %#04x, want %#04x", m2.CPU.PC(), m.CPU.PC())
	}
	if m2.CPU.SP() != m.CPU.SP() {
		t.Fatalf("SP after load = %#04x, want %#04x", m2.CPU.SP(), m.CPU.SP())
	}
	if got := m2.Bus.Read(0xC000); got != 0x77 {
		t.Fatalf("WRAM after load = %#02x, want 0x77", got)
	}
}
