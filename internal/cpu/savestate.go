package cpu

import (
	"bytes"
	"encoding/gob"
)

// cpuState is the gob-serializable register file plus interrupt/prefix/halt
// state, with the nested bus blob carried alongside it so Machine.SaveState
// can hand back one opaque blob composing all three owners.
type cpuState struct {
	A, F, B, C, D, E, H, L byte
	SP, PC                 uint16
	IME                    bool
	EIDelay                int
	Prefixed               bool
	Halted                 bool
	Bus                    []byte
}

// SaveState composes the CPU's own register file with an already-serialized
// bus blob into one opaque snapshot.
func (c *CPU) SaveState(busBlob []byte) []byte {
	s := cpuState{
		A: c.a, F: c.f, B: c.b, C: c.c, D: c.d, E: c.e, H: c.h, L: c.l,
		SP: c.sp, PC: c.pc,
		IME: c.ime, EIDelay: c.eiDelay, Prefixed: c.prefixed, Halted: c.halted,
		Bus: busBlob,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil
	}
	return buf.Bytes()
}

// LoadState restores the CPU's own state from a blob produced by SaveState
// and returns the nested bus blob for the caller to restore separately.
func (c *CPU) LoadState(data []byte) ([]byte, error) {
	var s cpuState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return nil, err
	}
	c.a, c.f, c.b, c.c, c.d, c.e, c.h, c.l = s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L
	c.sp, c.pc = s.SP, s.PC
	c.ime, c.eiDelay, c.prefixed, c.halted = s.IME, s.EIDelay, s.Prefixed, s.Halted
	return s.Bus, nil
}
