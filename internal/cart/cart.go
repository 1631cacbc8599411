package cart

import "log"

// Cartridge defines the minimal interface the Bus needs for ROM/RAM banking.
// Addresses are CPU addresses.
type Cartridge interface {
	// Read returns a byte for ROM (0x0000–0x7FFF) and external RAM (0xA000–0xBFFF).
	Read(addr uint16) byte
	// Write handles control writes (0x0000–0x7FFF) and external RAM writes (0xA000–0xBFFF).
	Write(addr uint16, value byte)
	// SaveState/LoadState serialize any internal state for save states.
	SaveState() []byte
	LoadState(data []byte)
}

// BatteryBacked is an optional interface for cartridges with external RAM to be
// persisted. No flat-ROM-only cartridge implements it today; the shape is kept
// so a future banked mapper can without changing the Bus/Machine contract.
type BatteryBacked interface {
	SaveRAM() []byte
	LoadRAM(data []byte)
}

// NewCartridge always constructs a flat ROM-only mapper: bank-switching
// cartridges (MBC1/MBC3/MBC5/...) are out of scope. The header is still parsed
// so an unsupported cartridge type is logged loudly instead of silently
// misbehaving under a banking scheme nothing here implements.
func NewCartridge(rom []byte) Cartridge {
	h, err := ParseHeader(rom)
	if err == nil && h.CartType != 0x00 {
		log.Printf("cart: header reports type %#02x (%s); only flat ROM-only is supported, running unbanked", h.CartType, h.CartTypeStr)
	}
	return NewROMOnly(rom)
}
