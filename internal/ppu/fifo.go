package ppu

// Pixel is one fetched-and-decoded pixel awaiting mixing: a 2-bit colour
// index, the priority bit carried from a sprite's OAM attributes (ignored
// for background pixels), and which OBP register a sprite pixel selects.
type Pixel struct {
	Colour   byte
	Priority bool // sprite "behind background colours 1-3" bit
	UseOBP1  bool
}

// spriteFIFOCapacity is the spec's declared sprite-FIFO depth: a push must
// never grow spFIFO past this, even though the backing array below has
// headroom to spare.
const spriteFIFOCapacity = 8

// pixelFIFO is a fixed-capacity ring buffer; both the background and sprite
// fetchers push at most 8 pixels at a time and the mixer pops at most one
// per dot, so 16 slots is headroom enough without ever reallocating.
type pixelFIFO struct {
	buf  [16]Pixel
	head int
	len  int
}

func (f *pixelFIFO) clear() { f.head, f.len = 0, 0 }

func (f *pixelFIFO) push(p Pixel) {
	f.buf[(f.head+f.len)%len(f.buf)] = p
	f.len++
}

func (f *pixelFIFO) pop() Pixel {
	p := f.buf[f.head]
	f.head = (f.head + 1) % len(f.buf)
	f.len--
	return p
}

func (f *pixelFIFO) empty() bool { return f.len == 0 }
