package ppu

// fetchState is the five-state pipeline shared by the background/window and
// sprite fetchers: each step (other than Push) takes two PPU dots, advanced
// one half-step per dot via the sub-tick counter.
type fetchState int

const (
	fetchTileNumber fetchState = iota
	fetchTileLow
	fetchTileHigh
	fetchPush
	fetchPaused
)

// bgFetcher fetches background or window tile rows into the background
// FIFO, eight pixels at a time, advancing fetcherX across the 32-tile-wide
// map with wraparound.
type bgFetcher struct {
	state    fetchState
	subTick  int
	fetcherX int

	tileNumber byte
	lowByte    byte
	highByte   byte
}

func (f *bgFetcher) reset(fetcherX int) {
	f.state = fetchTileNumber
	f.subTick = 0
	f.fetcherX = fetcherX
}

func (f *bgFetcher) pause()  { f.state = fetchPaused }
func (f *bgFetcher) resume() { f.state = fetchTileNumber; f.subTick = 0 }

// usingWindow reports whether this dot's background fetch should source
// from the window map rather than the background map, per the spec's
// trigger test evaluated once drawing begins covering this pixel column.
func (p *PPU) usingWindow() bool {
	return p.lcdc&0x20 != 0 && p.ly >= p.wy && p.currentX+7 >= int(p.wx)
}

// tickBackgroundFetcher advances the background/window fetcher one dot. It
// only pushes into bgFIFO when the FIFO is empty, per the spec's push rule.
func (p *PPU) tickBackgroundFetcher() {
	f := &p.bg
	if f.state == fetchPaused {
		return
	}

	switch f.state {
	case fetchTileNumber:
		f.subTick++
		if f.subTick >= 2 {
			f.subTick = 0
			f.tileNumber = p.fetchBGTileNumber(f.fetcherX)
			f.state = fetchTileLow
		}
	case fetchTileLow:
		f.subTick++
		if f.subTick >= 2 {
			f.subTick = 0
			f.state = fetchTileHigh
		}
	case fetchTileHigh:
		f.subTick++
		if f.subTick >= 2 {
			f.subTick = 0
			f.lowByte, f.highByte = p.tileRowBytes(f.tileNumber)
			f.state = fetchPush
		}
	case fetchPush:
		if p.bgFIFO.empty() {
			for i := 0; i < 8; i++ {
				bit := 7 - uint(i)
				lo := (f.lowByte >> bit) & 1
				hi := (f.highByte >> bit) & 1
				p.bgFIFO.push(Pixel{Colour: hi<<1 | lo})
			}
			f.fetcherX = (f.fetcherX + 1) % 32
			f.state = fetchTileNumber
		}
	}
}

// fetchBGTileNumber reads the background or window tile-map entry for the
// fetcher's current column, per the spec's map-selection and addressing math.
func (p *PPU) fetchBGTileNumber(fetcherX int) byte {
	window := p.usingWindow()

	var mapBase uint16
	var row, col int
	if window {
		if p.lcdc&0x40 != 0 {
			mapBase = 0x1C00
		} else {
			mapBase = 0x1800
		}
		row = (p.windowLineCounter / 8) * 32
		col = fetcherX & 0x1F
	} else {
		if p.lcdc&0x08 != 0 {
			mapBase = 0x1C00
		} else {
			mapBase = 0x1800
		}
		row = (int(p.ly+p.scy) & 0xFF / 8) * 32
		col = (fetcherX + int(p.scx)/8) & 0x1F
	}
	addr := mapBase + uint16(row) + uint16(col)
	return p.vram[addr&0x1FFF]
}

// tileRowBytes reads the low/high bitplane bytes for one background/window
// tile row, honouring LCDC bit 4's addressing mode and the window's own line
// counter vs. the background's scrolled LY.
func (p *PPU) tileRowBytes(tileNumber byte) (lo, hi byte) {
	fineY := p.currentFineY()
	addr := p.tileDataAddr(tileNumber, 8) + uint16(fineY)*2
	lo = p.vram[addr&0x1FFF]
	hi = p.vram[(addr+1)&0x1FFF]
	return
}

// currentFineY returns the in-tile row (0-7) for whichever source (window or
// background) is currently being fetched.
func (p *PPU) currentFineY() int {
	if p.usingWindow() {
		return p.windowLineCounter % 8
	}
	return int(p.ly+p.scy) % 8
}

// tileDataAddr resolves LCDC bit 4's two addressing modes: unsigned from
// 0x8000, or signed-indexed around 0x9000 when bit 4 is clear.
func (p *PPU) tileDataAddr(tileNumber byte, tileSize uint16) uint16 {
	if p.lcdc&0x10 != 0 {
		return uint16(tileNumber) * tileSize * 2
	}
	return uint16(0x1000 + int16(int8(tileNumber))*int16(tileSize)*2)
}

// spFetcher fetches one sprite's row into the sprite FIFO, always addressing
// tile data from 0x8000 regardless of LCDC bit 4.
type spFetcher struct {
	state   fetchState
	subTick int
	sprite  Sprite

	lowByte, highByte byte
}

func (f *spFetcher) reset(_ int) {
	f.state = fetchPaused
}

// beginSprite primes the sprite fetcher for a newly admitted sprite,
// pausing the background fetcher until the sprite's pixels are pushed.
func (p *PPU) beginSprite(s Sprite) {
	p.bg.pause()
	p.sp.sprite = s
	p.sp.state = fetchTileNumber
	p.sp.subTick = 0
}

func (p *PPU) tickSpriteFetcher() {
	f := &p.sp
	if f.state == fetchPaused {
		return
	}

	switch f.state {
	case fetchTileNumber, fetchTileLow:
		f.subTick++
		if f.subTick >= 2 {
			f.subTick = 0
			f.state++
		}
	case fetchTileHigh:
		f.subTick++
		if f.subTick >= 2 {
			f.subTick = 0
			f.lowByte, f.highByte = p.spriteTileRowBytes(f.sprite)
			f.state = fetchPush
		}
	case fetchPush:
		s := f.sprite
		n := int(s.X) - p.currentX
		if n > 8 {
			n = 8
		}
		room := spriteFIFOCapacity - p.spFIFO.len
		if n > room {
			n = room
		}
		flipX := s.Attr&0x20 != 0
		for i := 0; i < n; i++ {
			bit := uint(7 - i)
			if flipX {
				bit = uint(i)
			}
			lo := (f.lowByte >> bit) & 1
			hi := (f.highByte >> bit) & 1
			p.spFIFO.push(Pixel{
				Colour:   hi<<1 | lo,
				Priority: s.Attr&0x80 != 0,
				UseOBP1:  s.Attr&0x10 != 0,
			})
		}
		f.state = fetchPaused
		p.bg.resume()
	}
}

// spriteTileRowBytes reads a sprite's row, honouring the Y flip bit and 8x16
// tall-sprite tile-index LSB masking.
func (p *PPU) spriteTileRowBytes(s Sprite) (lo, hi byte) {
	height := p.spriteHeight()
	row := int(p.ly) - (int(s.Y) - 16)
	if s.Attr&0x40 != 0 {
		row = height - 1 - row
	}
	tile := s.Tile
	if height == 16 {
		tile &^= 0x01
	}
	addr := uint16(tile)*16 + uint16(row)*2
	lo = p.vram[addr&0x1FFF]
	hi = p.vram[(addr+1)&0x1FFF]
	return
}
