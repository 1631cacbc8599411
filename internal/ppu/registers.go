package ppu

import (
	"bytes"
	"encoding/gob"
)

// CPURead/CPUWrite are the bus-facing access points for VRAM (0x8000-0x9FFF),
// OAM (0xFE00-0xFE9F), and the LCD register block (0xFF40-0xFF4B). The bus
// dispatches to these by address range; everything else (fetchers reading
// vram/oam directly) bypasses them entirely.
func (p *PPU) CPURead(addr uint16) byte {
	switch {
	case addr >= 0x8000 && addr <= 0x9FFF:
		return p.vram[addr-0x8000]
	case addr >= 0xFE00 && addr <= 0xFE9F:
		return p.oam[addr-0xFE00]
	case addr == 0xFF40:
		return p.lcdc
	case addr == 0xFF41:
		return p.stat&^0x03 | p.mode | 0x80
	case addr == 0xFF42:
		return p.scy
	case addr == 0xFF43:
		return p.scx
	case addr == 0xFF44:
		return p.ly
	case addr == 0xFF45:
		return p.lyc
	case addr == 0xFF47:
		return p.bgp
	case addr == 0xFF48:
		return p.obp0
	case addr == 0xFF49:
		return p.obp1
	case addr == 0xFF4A:
		return p.wy
	case addr == 0xFF4B:
		return p.wx
	}
	return 0xFF
}

func (p *PPU) CPUWrite(addr uint16, v byte) {
	switch {
	case addr >= 0x8000 && addr <= 0x9FFF:
		p.vram[addr-0x8000] = v
	case addr >= 0xFE00 && addr <= 0xFE9F:
		p.oam[addr-0xFE00] = v
	case addr == 0xFF40:
		wasOn := p.lcdOn()
		p.lcdc = v
		if wasOn && !p.lcdOn() {
			p.ly, p.dot = 0, 0
			p.mode = ModeHBlank
		}
	case addr == 0xFF41:
		p.stat = (p.stat & 0x07) | (v & 0x78)
	case addr == 0xFF42:
		p.scy = v
	case addr == 0xFF43:
		p.scx = v
	case addr == 0xFF44:
		// Read-mostly: real hardware resets LY to 0 on write; this core
		// simply ignores the write rather than modelling the reset glitch.
	case addr == 0xFF45:
		p.lyc = v
	case addr == 0xFF47:
		p.bgp = v
	case addr == 0xFF48:
		p.obp0 = v
	case addr == 0xFF49:
		p.obp1 = v
	case addr == 0xFF4A:
		p.wy = v
	case addr == 0xFF4B:
		p.wx = v
	}
}

// WriteOAMByte is used by the bus's DMA engine, which copies directly into
// OAM one byte per machine cycle outside the normal CPUWrite path.
func (p *PPU) WriteOAMByte(offset byte, v byte) { p.oam[offset] = v }

// ppuState is the gob-serializable snapshot of the LCD registers and the
// VRAM/OAM backing memories. Pipeline position (dot, mode, FIFOs, fetchers,
// sprite buffer) is not saved: LoadState restarts the saved LY at dot 0 in
// OAM scan, wherever in the frame the snapshot was taken.
type ppuState struct {
	VRAM                                                   [0x2000]byte
	OAM                                                     [0xA0]byte
	LCDC, STAT, SCY, SCX, LY, LYC, WY, WX, BGP, OBP0, OBP1 byte
}

func (p *PPU) SaveState() []byte {
	s := ppuState{
		VRAM: p.vram, OAM: p.oam,
		LCDC: p.lcdc, STAT: p.stat, SCY: p.scy, SCX: p.scx,
		LY: p.ly, LYC: p.lyc, WY: p.wy, WX: p.wx,
		BGP: p.bgp, OBP0: p.obp0, OBP1: p.obp1,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil
	}
	return buf.Bytes()
}

func (p *PPU) LoadState(data []byte) error {
	var s ppuState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return err
	}
	p.vram, p.oam = s.VRAM, s.OAM
	p.lcdc, p.stat, p.scy, p.scx = s.LCDC, s.STAT, s.SCY, s.SCX
	p.ly, p.lyc, p.wy, p.wx = s.LY, s.LYC, s.WY, s.WX
	p.bgp, p.obp0, p.obp1 = s.BGP, s.OBP0, s.OBP1
	p.mode = ModeOAMScan
	p.dot = 0
	return nil
}
