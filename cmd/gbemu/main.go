// Command gbemu is the windowed host: it blits the PPU framebuffer each
// frame via ebiten, maps keys to the joypad byte, and offers a -headless
// mode for scripted conformance runs (N frames, checksum, optional PNG dump)
// with no window at all.
package main

import (
	"flag"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/claude-sandbox/dotmatrix/internal/machine"
	"github.com/claude-sandbox/dotmatrix/internal/ppu"
)

// shades maps the PPU's 2-bit shade (0 white .. 3 black) to an 8-bit gray
// level.
var shades = [4]color.Gray{
	{Y: 0xFF}, {Y: 0xAA}, {Y: 0x55}, {Y: 0x00},
}

func main() {
	romPath := flag.String("rom", "", "path to the ROM image")
	bootPath := flag.String("boot", "", "path to a boot ROM image (optional)")
	headless := flag.Bool("headless", false, "run N frames with no window, print a checksum, exit")
	frames := flag.Uint64("frames", 60, "frame count for -headless mode")
	pngOut := flag.String("png", "", "in -headless mode, dump the final frame to this PNG path")
	scale := flag.Int("scale", 3, "window scale factor")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("gbemu: -rom is required")
	}
	rom, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("gbemu: reading ROM: %v", err)
	}
	var boot []byte
	if *bootPath != "" {
		boot, err = os.ReadFile(*bootPath)
		if err != nil {
			log.Fatalf("gbemu: reading boot ROM: %v", err)
		}
	}

	m := machine.New(machine.Config{ROM: rom, BootROM: boot, SkipBoot: len(boot) == 0})

	if *headless {
		runHeadless(m, *frames, *pngOut)
		return
	}

	game := &Game{m: m, scale: *scale}
	ebiten.SetWindowSize(ppu.ScreenWidth*(*scale), ppu.ScreenHeight*(*scale))
	ebiten.SetWindowTitle("gbemu")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(m *machine.Machine, frames uint64, pngOut string) {
	for i := uint64(0); i < frames; i++ {
		m.RunFrame()
	}
	fb := m.Framebuffer()
	sum := crc32.ChecksumIEEE(fb[:])
	fmt.Printf("frames=%d crc32=%08x\n", frames, sum)

	if pngOut == "" {
		return
	}
	img := image.NewGray(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			img.SetGray(x, y, shades[fb[y*ppu.ScreenWidth+x]&0x03])
		}
	}
	f, err := os.Create(pngOut)
	if err != nil {
		log.Fatalf("gbemu: creating PNG: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("gbemu: encoding PNG: %v", err)
	}
}

// Game implements ebiten.Game, driving the machine one frame per Update and
// blitting its framebuffer in Draw.
type Game struct {
	m     *machine.Machine
	scale int
	img   *ebiten.Image
}

func (g *Game) Update() error {
	g.m.SetJoypadState(readDpad(), readActionButtons())
	g.m.RunFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(ppu.ScreenWidth, ppu.ScreenHeight)
	}
	fb := g.m.Framebuffer()
	pix := make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4)
	for i, c := range fb {
		gray := shades[c&0x03].Y
		pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = gray, gray, gray, 0xFF
	}
	g.img.WritePixels(pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d", g.m.FrameCount()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.ScreenWidth * g.scale, ppu.ScreenHeight * g.scale
}

// readDpad/readActionButtons pack the host keyboard state into the
// active-low nibbles the joypad register expects: bit clear means pressed.
func readDpad() byte {
	v := byte(0x0F)
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v &^= 1 << 0
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v &^= 1 << 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v &^= 1 << 2
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v &^= 1 << 3
	}
	return v
}

func readActionButtons() byte {
	v := byte(0x0F)
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		v &^= 1 << 0 // A
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		v &^= 1 << 1 // B
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftRight) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		v &^= 1 << 2 // Select
	}
	if ebiten.IsKeyPressed(ebiten.KeyEnter) {
		v &^= 1 << 3 // Start
	}
	return v
}
