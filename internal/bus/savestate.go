package bus

import (
	"bytes"
	"encoding/gob"
)

// busState is the gob-serializable snapshot of the Bus's own mutable state
// (the boot ROM image and the serial sink are not included); the PPU's and
// cartridge's own blobs are nested in verbatim, composing the three owners
// into one save file.
type busState struct {
	WRAM [0x2000]byte
	HRAM [0x7F]byte

	BootOff byte

	IE, IF byte

	DMAActive        bool
	DMASrcHigh       byte
	DMACycles        byte
	DMALastByte      byte

	TimerDiv           uint16
	TIMA, TMA, TAC     byte
	TimerReloadPending bool
	TimerReloadDelay   byte

	SB, SC       byte
	JoypSelect   byte
	Dpad         byte
	Action       byte
	JoypLastBank byte

	PPU  []byte
	Cart []byte
}

// SaveState serializes the bus plus its owned PPU and cartridge state into
// one opaque blob.
func (b *Bus) SaveState() []byte {
	s := busState{
		WRAM: b.wram, HRAM: b.hram,
		BootOff: b.bootOff,
		IE:      b.ie, IF: b.ifr,
		DMAActive: b.dma.active, DMASrcHigh: b.dma.srcHigh,
		DMACycles: b.dma.cyclesElapsed, DMALastByte: b.dma.lastTransferred,
		TimerDiv: b.timer.div, TIMA: b.timer.tima, TMA: b.timer.tma, TAC: b.timer.tac,
		TimerReloadPending: b.timer.reloadPending, TimerReloadDelay: b.timer.reloadDelay,
		SB: b.sb, SC: b.sc,
		JoypSelect: b.joypSelect, Dpad: b.dpad, Action: b.action,
		JoypLastBank: b.joypLastBank,
		PPU:  b.ppu.SaveState(),
		Cart: b.cartridge.SaveState(),
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil
	}
	return buf.Bytes()
}

// LoadState restores a blob produced by SaveState, including the nested PPU
// and cartridge state.
func (b *Bus) LoadState(data []byte) error {
	var s busState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return err
	}
	b.wram, b.hram = s.WRAM, s.HRAM
	b.bootOff = s.BootOff
	b.ie, b.ifr = s.IE, s.IF
	b.dma = dmaState{active: s.DMAActive, srcHigh: s.DMASrcHigh, cyclesElapsed: s.DMACycles, lastTransferred: s.DMALastByte}
	b.timer = timerState{div: s.TimerDiv, tima: s.TIMA, tma: s.TMA, tac: s.TAC,
		reloadPending: s.TimerReloadPending, reloadDelay: s.TimerReloadDelay}
	b.sb, b.sc = s.SB, s.SC
	b.joypSelect, b.dpad, b.action = s.JoypSelect, s.Dpad, s.Action
	b.joypLastBank = s.JoypLastBank
	if err := b.ppu.LoadState(s.PPU); err != nil {
		return err
	}
	b.cartridge.LoadState(s.Cart)
	return nil
}
