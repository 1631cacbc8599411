package ppu

import "testing"

func writeSprite(p *PPU, idx int, y, x, tile, attr byte) {
	base := idx * 4
	p.oam[base] = y
	p.oam[base+1] = x
	p.oam[base+2] = tile
	p.oam[base+3] = attr
}

func TestScanOne_8x8_VisibleOnlyWithinOneRow(t *testing.T) {
	p := New()
	writeSprite(p, 0, 32, 8, 0x01, 0x00) // Y=32 -> screen top = 16, covers LY 16-23

	p.ly = 16
	p.scanOne(0)
	if len(p.spriteBuffer) != 1 {
		t.Fatalf("sprite should be visible at LY=16, got %d entries", len(p.spriteBuffer))
	}

	p.spriteBuffer = p.spriteBuffer[:0]
	p.ly = 24
	p.scanOne(0)
	if len(p.spriteBuffer) != 0 {
		t.Fatalf("sprite should not be visible at LY=24 (8-tall, one row past the bottom edge)")
	}
}

func TestScanOne_8x16_TallerVisibilityWindow(t *testing.T) {
	p := New()
	p.lcdc |= 0x04 // 8x16 sprite mode
	writeSprite(p, 0, 32, 8, 0x02, 0x00)

	p.ly = 31 // top=16, height=16 -> visible rows 16..31
	p.scanOne(0)
	if len(p.spriteBuffer) != 1 {
		t.Fatalf("8x16 sprite should still be visible at the last row (LY=31)")
	}

	p.spriteBuffer = p.spriteBuffer[:0]
	p.ly = 32
	p.scanOne(0)
	if len(p.spriteBuffer) != 0 {
		t.Fatal("8x16 sprite should not be visible one row past its bottom edge")
	}
}

func TestScanOne_XZero_NeverVisible(t *testing.T) {
	p := New()
	writeSprite(p, 0, 32, 0, 0x01, 0x00) // X=0 sprites are fully off-screen
	p.ly = 16
	p.scanOne(0)
	if len(p.spriteBuffer) != 0 {
		t.Fatal("a sprite with X=0 must never be admitted")
	}
}

func TestStepOAMScan_CapsAtTenSprites(t *testing.T) {
	p := New()
	for i := 0; i < 40; i++ {
		writeSprite(p, i, 32, 8, 0x01, 0x00) // all overlap LY=16
	}
	p.ly = 16
	p.dot = 0
	for d := 0; d < oamScanDots; d++ {
		p.dot = d
		p.stepOAMScan()
	}
	if len(p.spriteBuffer) != 10 {
		t.Fatalf("spriteBuffer has %d entries, want the 10-sprite-per-line cap", len(p.spriteBuffer))
	}
}
