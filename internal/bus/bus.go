// Package bus implements the 64 KiB LR35902 address space: WRAM/HRAM/echo
// RAM, the boot-ROM overlay, OAM DMA with full-bus conflict masking, the
// timer/divider, the serial shift register, and the joypad latch. PPU and
// cartridge register/memory ranges are dispatched to those owners.
package bus

import (
	"io"

	"github.com/claude-sandbox/dotmatrix/internal/cart"
	"github.com/claude-sandbox/dotmatrix/internal/ppu"
)

// dmaState models the OAM DMA engine's three fields as one tagged value:
// Inactive, or Active with the fields the spec names.
type dmaState struct {
	active            bool
	srcHigh           byte
	cyclesElapsed     byte
	lastTransferred   byte
}

// Bus owns every byte of address space outside the cartridge and PPU, and
// dispatches to both of those for their own ranges.
type Bus struct {
	wram [0x2000]byte // 0xC000-0xDFFF; 0xE000-0xFDFF echoes the low 0x1E00 of it
	hram [0x7F]byte   // 0xFF80-0xFFFE

	bootROM    [256]byte
	bootLoaded bool
	bootOff    byte // 0xFF50 latch; nonzero permanently disables the overlay

	cartridge cart.Cartridge
	ppu       *ppu.PPU

	dma dmaState

	ie byte // 0xFFFF
	ifr byte // 0xFF0F

	timer timerState

	sb, sc      byte
	serialSink  io.Writer

	dpad, action byte // host-facing button state, active-low, as SetJoypadState last wrote it
	joypSelect   byte // bits 4-5 of 0xFF00 as last written by the CPU
	joypLastBank byte // selectedBank() as of the last updateJoypadIRQ call, for edge detection
}

// New constructs a Bus with a cartridge already loaded and no boot ROM.
func New(cartridge cart.Cartridge, p *ppu.PPU) *Bus {
	b := &Bus{cartridge: cartridge, ppu: p}
	b.dpad, b.action = 0x0F, 0x0F
	b.joypSelect = 0x30
	b.joypLastBank = 0x0F
	return b
}

// SetBootROM installs a 256-byte boot image into the overlay slot, active
// until the first write to 0xFF50.
func (b *Bus) SetBootROM(rom []byte) {
	n := copy(b.bootROM[:], rom)
	b.bootLoaded = n > 0
}

// SetSerialWriter directs the byte written on a completed serial transfer
// to sink, the channel blargg-style test ROMs use to report pass/fail text.
func (b *Bus) SetSerialWriter(sink io.Writer) { b.serialSink = sink }

// IE/IF/SetIF implement the cpu.Bus contract.
func (b *Bus) IE() byte      { return b.ie }
func (b *Bus) IF() byte      { return b.ifr | 0xE0 }
func (b *Bus) SetIF(v byte)  { b.ifr = v & 0x1F }

// RequestInterrupt ORs bit into IF; used by the composite driver to deliver
// the PPU's VBlank/STAT requests and by the timer/serial/joypad sources.
func (b *Bus) RequestInterrupt(bit byte) { b.ifr |= 1 << bit }

func (b *Bus) bootActive() bool {
	return b.bootLoaded && b.bootOff == 0
}

// Read implements the spec's layered lookup: boot-ROM overlay, then the
// owning region, with the DMA conflict mask applied last so it is the
// visible behavior every other subsystem observes.
func (b *Bus) Read(addr uint16) byte {
	v := b.rawRead(addr)
	if b.dma.active && !(addr >= 0xFF80 && addr <= 0xFFFE) {
		return b.dma.lastTransferred
	}
	return v
}

func (b *Bus) rawRead(addr uint16) byte {
	if b.bootActive() && addr < 0x0100 {
		return b.bootROM[addr]
	}
	switch {
	case addr < 0x8000:
		return b.cartridge.Read(addr)
	case addr >= 0x8000 && addr <= 0x9FFF:
		return b.ppu.CPURead(addr)
	case addr >= 0xA000 && addr <= 0xBFFF:
		return b.cartridge.Read(addr)
	case addr >= 0xC000 && addr <= 0xDFFF:
		return b.wram[addr-0xC000]
	case addr >= 0xE000 && addr <= 0xFDFF:
		return b.wram[addr-0xE000]
	case addr >= 0xFE00 && addr <= 0xFE9F:
		return b.ppu.CPURead(addr)
	case addr >= 0xFEA0 && addr <= 0xFEFF:
		return 0xFF // unusable region
	case addr == 0xFF00:
		return b.readJoypad()
	case addr == 0xFF01:
		return b.sb
	case addr == 0xFF02:
		return b.sc | 0x7E
	case addr == 0xFF04, addr == 0xFF05, addr == 0xFF06, addr == 0xFF07:
		return b.timer.read(addr)
	case addr == 0xFF0F:
		return b.IF()
	case addr == 0xFF46:
		return b.dma.srcHigh
	case addr == 0xFF50:
		return b.bootOff
	case addr >= 0xFF40 && addr <= 0xFF4B:
		return b.ppu.CPURead(addr)
	case addr >= 0xFF80 && addr <= 0xFFFE:
		return b.hram[addr-0xFF80]
	case addr == 0xFFFF:
		return b.ie
	}
	return 0xFF
}

// Write implements the spec's DMA write mask, then dispatches to the owning
// region. A write to 0xFF46 itself is honored even while DMA is active
// (retriggering), since it lands in the trigger's own special case, not the
// generic masked path.
func (b *Bus) Write(addr uint16, v byte) {
	if addr == 0xFF46 {
		b.dma = dmaState{active: true, srcHigh: v}
		return
	}
	if b.dma.active && !(addr >= 0xFF80 && addr <= 0xFFFE) {
		return
	}

	switch {
	case addr < 0x8000:
		b.cartridge.Write(addr, v)
	case addr >= 0x8000 && addr <= 0x9FFF:
		b.ppu.CPUWrite(addr, v)
	case addr >= 0xA000 && addr <= 0xBFFF:
		b.cartridge.Write(addr, v)
	case addr >= 0xC000 && addr <= 0xDFFF:
		b.wram[addr-0xC000] = v
	case addr >= 0xE000 && addr <= 0xFDFF:
		b.wram[addr-0xE000] = v
	case addr >= 0xFE00 && addr <= 0xFE9F:
		b.ppu.CPUWrite(addr, v)
	case addr >= 0xFEA0 && addr <= 0xFEFF:
		// unusable; writes silently dropped
	case addr == 0xFF00:
		b.joypSelect = v & 0x30
		b.updateJoypadIRQ()
	case addr == 0xFF01:
		b.sb = v
	case addr == 0xFF02:
		b.writeSC(v)
	case addr == 0xFF04, addr == 0xFF05, addr == 0xFF06, addr == 0xFF07:
		b.timer.write(addr, v)
	case addr == 0xFF0F:
		b.ifr = v & 0x1F
	case addr == 0xFF50:
		if b.bootOff == 0 {
			b.bootOff = v
		}
	case addr >= 0xFF40 && addr <= 0xFF4B:
		b.ppu.CPUWrite(addr, v)
	case addr >= 0xFF80 && addr <= 0xFFFE:
		b.hram[addr-0xFF80] = v
	case addr == 0xFFFF:
		b.ie = v & 0x1F
	}
}

// ReadRange returns a fresh copy of count bytes starting at addr, read
// without DMA masking, for trusted non-CPU callers such as debug views.
// The PPU's own OAM scan and fetchers read OAM/VRAM directly, not through it.
func (b *Bus) ReadRange(addr uint16, count int) []byte {
	out := make([]byte, count)
	for i := 0; i < count; i++ {
		out[i] = b.rawRead(addr + uint16(i))
	}
	return out
}

// Step advances DMA by one byte (if active) and the timer/divider by one
// machine cycle, and raises the Timer interrupt if the timer block requests
// one this cycle. Called once per composite tick, in lockstep with one CPU
// instruction and four PPU dots.
func (b *Bus) Step() {
	if b.dma.active {
		n := b.dma.cyclesElapsed
		srcAddr := uint16(b.dma.srcHigh)<<8 | uint16(n)
		v := b.rawRead(srcAddr)
		b.ppu.WriteOAMByte(n, v)
		b.dma.lastTransferred = v
		b.dma.cyclesElapsed++
		if b.dma.cyclesElapsed > 159 {
			b.dma.active = false
		}
	}

	if b.timer.tick() {
		b.RequestInterrupt(2)
	}
}
