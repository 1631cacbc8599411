// Package machine aggregates the bus, CPU, PPU, and cartridge into the
// single owning object the spec's composite driver advances: one call to
// Tick is exactly bus.Step, cpu.Step, and four ppu.Step calls, serially,
// with no synchronization needed since sub-stepping never overlaps.
package machine

import (
	"io"

	"github.com/claude-sandbox/dotmatrix/internal/bus"
	"github.com/claude-sandbox/dotmatrix/internal/cart"
	"github.com/claude-sandbox/dotmatrix/internal/cpu"
	"github.com/claude-sandbox/dotmatrix/internal/ppu"
)

// Config configures a new Machine, mirroring the teacher's own Config shape
// for a cartridge image plus an optional boot ROM.
type Config struct {
	ROM      []byte
	BootROM  []byte
	Serial   io.Writer
	SkipBoot bool // when true and BootROM is empty, start at the post-boot register state directly
}

// Machine is the whole emulated console: cartridge, bus, CPU, PPU, wired
// together and advanced one composite tick at a time.
type Machine struct {
	Bus *bus.Bus
	CPU *cpu.CPU
	PPU *ppu.PPU
	Cart cart.Cartridge

	frameCount uint64
}

// New loads cfg.ROM into a flat ROM-only cartridge, wires bus/cpu/ppu
// together, and installs the boot ROM (or the post-boot register state if
// none was supplied and SkipBoot is set).
func New(cfg Config) *Machine {
	c := cart.NewCartridge(cfg.ROM)
	p := ppu.New()
	b := bus.New(c, p)
	if cfg.Serial != nil {
		b.SetSerialWriter(cfg.Serial)
	}

	cp := cpu.New(b)

	m := &Machine{Bus: b, CPU: cp, PPU: p, Cart: c}

	if len(cfg.BootROM) > 0 {
		b.SetBootROM(cfg.BootROM)
	} else if cfg.SkipBoot {
		m.skipBoot()
	}

	return m
}

// skipBoot sets the CPU and I/O registers to the documented post-boot-ROM
// state, for running ROMs with no boot image available.
func (m *Machine) skipBoot() {
	m.CPU.SetState(0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D, 0xFFFE, 0x0100)
	m.Bus.Write(0xFF50, 0x01)
	m.Bus.Write(0xFF40, 0x91)
	m.Bus.Write(0xFF47, 0xFC)
	m.Bus.Write(0xFF48, 0xFF)
	m.Bus.Write(0xFF49, 0xFF)
}

// Tick performs exactly one composite step: bus DMA/timer progress, one CPU
// instruction or interrupt dispatch, then four PPU dots. PPU interrupt
// requests are latched into IF as they're raised, observing the CPU's own
// writes from earlier in the same tick, per the spec's ordering rule.
func (m *Machine) Tick() {
	m.Bus.Step()
	m.CPU.Step()
	for i := 0; i < 4; i++ {
		vblank, stat := m.PPU.Step()
		if vblank {
			m.Bus.RequestInterrupt(0)
			m.frameCount++
		}
		if stat {
			m.Bus.RequestInterrupt(1)
		}
	}
}

// RunFrame ticks the machine until a full frame (one VBlank entry) has
// completed.
func (m *Machine) RunFrame() {
	target := m.frameCount + 1
	for m.frameCount < target {
		m.Tick()
	}
}

// FrameCount returns the number of frames (VBlank entries) completed so far.
func (m *Machine) FrameCount() uint64 { return m.frameCount }

// Framebuffer exposes the PPU's current 160x144 frame for the host to blit.
func (m *Machine) Framebuffer() *[ppu.ScreenWidth * ppu.ScreenHeight]byte {
	return m.PPU.Buffer()
}

// SetJoypadState forwards the host's per-frame button state to the bus.
func (m *Machine) SetJoypadState(dpad, action byte) {
	m.Bus.SetJoypadState(dpad, action)
}

// SaveState/LoadState compose the bus's own snapshot (which nests the PPU's
// and cartridge's); the CPU's register file is saved alongside it.
func (m *Machine) SaveState() []byte {
	return m.CPU.SaveState(m.Bus.SaveState())
}

func (m *Machine) LoadState(data []byte) error {
	busBlob, err := m.CPU.LoadState(data)
	if err != nil {
		return err
	}
	return m.Bus.LoadState(busBlob)
}
