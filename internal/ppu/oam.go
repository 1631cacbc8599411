package ppu

// spriteHeight reports 8 or 16 depending on LCDC bit 2.
func (p *PPU) spriteHeight() int {
	if p.lcdc&0x04 != 0 {
		return 16
	}
	return 8
}

// stepOAMScan inspects one of the 40 OAM entries every two dots, admitting
// up to 10 sprites visible on the current scanline, in OAM order. At dot 80
// it hands off to Drawing and primes the pixel pipeline for the new line.
func (p *PPU) stepOAMScan() {
	if p.dot == 0 {
		p.spriteBuffer = p.spriteBuffer[:0]
	}
	if p.dot%2 == 0 {
		idx := p.dot / 2
		if idx < 40 && len(p.spriteBuffer) < 10 {
			p.scanOne(idx)
		}
	}
	if p.dot == oamScanDots-1 {
		p.beginDrawing()
	}
}

func (p *PPU) scanOne(idx int) {
	base := idx * 4
	y := p.oam[base]
	x := p.oam[base+1]
	tile := p.oam[base+2]
	attr := p.oam[base+3]

	if x == 0 {
		return
	}
	top := int(y) - 16
	height := p.spriteHeight()
	ly := int(p.ly)
	if ly < top || ly >= top+height {
		return
	}
	p.spriteBuffer = append(p.spriteBuffer, Sprite{Y: y, X: x, Tile: tile, Attr: attr, oamIndex: idx})
}

// beginDrawing resets the per-scanline pixel-pipeline state that Drawing
// mode consumes: scroll discard, fetcher cursors, and both FIFOs.
func (p *PPU) beginDrawing() {
	p.mode = ModeDrawing
	p.currentX = 0
	p.discardCount = int(p.scx) % 8
	p.discarding = p.discardCount > 0
	p.windowTriggered = false
	p.bgFIFO.clear()
	p.spFIFO.clear()
	p.bg.reset(0)
	p.sp.reset(0)
}
