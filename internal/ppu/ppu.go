// Package ppu implements the dual-FIFO, dual-fetcher pixel pipeline: OAM
// scan, the per-dot scanline schedule, background/window/sprite fetching,
// pixel mixing, and the 160x144 grayscale framebuffer.
package ppu

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	dotsPerLine  = 456
	visibleLines = 144
	totalLines   = 154

	oamScanDots = 80
)

// Mode values match the hardware encoding stored in STAT bits 0-1.
const (
	ModeHBlank  = 0
	ModeVBlank  = 1
	ModeOAMScan = 2
	ModeDrawing = 3
)

// Sprite is one OAM entry, decoded lazily by the sprite fetcher.
type Sprite struct {
	Y, X, Tile, Attr byte
	oamIndex         int
}

// PPU owns VRAM, OAM, the LCD registers, the pixel pipeline, and the
// framebuffer. CPURead/CPUWrite are the only way the bus touches any of it;
// fetchers read vram/oam directly, bypassing any bus-level access control by
// construction (they are the trusted caller the bus's Read-range contract
// describes).
type PPU struct {
	vram [0x2000]byte
	oam  [0xA0]byte

	lcdc, stat, scy, scx, ly, lyc, wy, wx, bgp, obp0, obp1 byte

	dot  int
	mode byte

	spriteBuffer []Sprite
	currentX     int
	discardCount int
	discarding   bool

	windowLineCounter int
	windowTriggered   bool // window has started rendering somewhere on this line

	bg bgFetcher
	sp spFetcher

	bgFIFO pixelFIFO
	spFIFO pixelFIFO

	statLineWas bool // previous-dot value of the OR'd STAT interrupt condition, for edge detection

	frame [ScreenWidth * ScreenHeight]byte
}

// New returns a PPU with LY/STAT/mode at their post-power-on defaults.
func New() *PPU {
	p := &PPU{}
	p.mode = ModeOAMScan
	return p
}

// Buffer exposes the current frame for the host to blit. Pixels are 0-3
// (0=white .. 3=black) after palette application.
func (p *PPU) Buffer() *[ScreenWidth * ScreenHeight]byte { return &p.frame }

// lcdOn reports LCDC bit 7.
func (p *PPU) lcdOn() bool { return p.lcdc&0x80 != 0 }

// Step advances the pixel pipeline by one PPU dot (a quarter of a CPU
// M-cycle in the composite driver's lockstep). It returns whether a VBlank
// or LCD-STAT interrupt should be latched into IF this dot.
func (p *PPU) Step() (vblankIRQ, statIRQ bool) {
	if !p.lcdOn() {
		p.ly = 0
		p.dot = 0
		p.mode = ModeHBlank
		p.windowLineCounter = 0
		for i := range p.frame {
			p.frame[i] = 0
		}
		return false, false
	}

	switch p.mode {
	case ModeOAMScan:
		p.stepOAMScan()
	case ModeDrawing:
		p.stepDrawing()
	case ModeHBlank, ModeVBlank:
		// idle; dot advancement below drives the line/mode transition
	}

	p.dot++
	if p.dot >= dotsPerLine {
		p.dot = 0
		vblankIRQ = p.advanceLine()
	}

	statIRQ = p.evaluateStatIRQ()
	return vblankIRQ, statIRQ
}

// advanceLine increments LY (or wraps it), switching between OAMScan and
// VBlank at the visible/invisible boundary. Returns true exactly once, on
// the dot LY becomes 144 (the spec's single per-frame VBlank interrupt).
func (p *PPU) advanceLine() (vblankIRQ bool) {
	if p.windowTriggered {
		p.windowLineCounter++
	}
	p.ly++
	if p.ly == visibleLines {
		p.mode = ModeVBlank
		p.windowLineCounter = 0
		vblankIRQ = true
	} else if p.ly >= totalLines {
		p.ly = 0
		p.mode = ModeOAMScan
		p.spriteBuffer = p.spriteBuffer[:0]
	} else if p.ly < visibleLines {
		p.mode = ModeOAMScan
		p.spriteBuffer = p.spriteBuffer[:0]
	}
	return vblankIRQ
}

// evaluateStatIRQ implements the standard edge-triggered STAT line: the
// interrupt fires on the dot the OR of the enabled conditions (HBlank,
// VBlank, OAMScan, LYC-coincidence) transitions from false to true.
func (p *PPU) evaluateStatIRQ() bool {
	coincidence := p.ly == p.lyc
	if coincidence {
		p.stat |= 0x04
	} else {
		p.stat &^= 0x04
	}

	line := false
	if p.stat&0x08 != 0 && p.mode == ModeHBlank {
		line = true
	}
	if p.stat&0x10 != 0 && p.mode == ModeVBlank {
		line = true
	}
	if p.stat&0x20 != 0 && p.mode == ModeOAMScan {
		line = true
	}
	if p.stat&0x40 != 0 && coincidence {
		line = true
	}

	fire := line && !p.statLineWas
	p.statLineWas = line
	return fire
}
