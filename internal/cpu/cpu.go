// Package cpu implements the Sharp LR35902 register file, flag semantics,
// and fetch-decode-execute step, dispatching through internal/decode's
// opcode tables against a Bus for all memory traffic.
package cpu

import "github.com/claude-sandbox/dotmatrix/internal/decode"

// Bus is the memory-side contract the CPU needs. internal/bus.Bus implements it.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)

	// IE/IF expose the interrupt-enable and interrupt-flag registers directly,
	// since the CPU both reads them (dispatch test) and writes IF (ack).
	IE() byte
	IF() byte
	SetIF(v byte)
}

// Vector tables for the five interrupt sources, lowest bit first (priority order).
var interruptVectors = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

// Snapshot captures the fields a trace line needs, taken immediately before
// the executor for one non-prefix instruction runs.
type Snapshot struct {
	PC               uint16
	Opcode           byte
	Mnemonic         string
	A, F, B, C, D, E, H, L byte
	SP               uint16
}

// CPU holds the full register file and interrupt/prefix/halt state machine.
type CPU struct {
	a, f, b, c, d, e, h, l byte
	sp, pc                 uint16

	bus Bus

	ime         bool
	eiDelay     int // 0 = no pending enable; counts down to 1 then flips ime
	prefixed    bool
	halted      bool

	// imm8/imm16 cache the operand bytes fetched during the current step's
	// decode, so executors can read them via the pre-advance contract without
	// re-reading the bus (which would be harmless here but keeps the
	// Machine interface's Imm8/Imm16 cheap and side-effect-free).
	imm8  byte
	imm16 uint16

	// lastCycles is the diagnostic-only clock-cycle estimate for the most recently
	// executed instruction. Nothing in this package uses it for pacing; the
	// composite driver's dot clock is the sole timing authority.
	lastCycles int

	// TraceFunc, if set, is invoked once per non-prefix instruction with a
	// snapshot taken before the executor mutates state.
	TraceFunc func(Snapshot)
}

// New constructs a CPU wired to bus. Registers start zeroed; callers that
// skip the boot ROM should call SetState to the post-boot values themselves.
func New(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// SetState forces the full register file, used by callers that skip the boot
// ROM and start execution at the post-boot power-on values directly.
func (c *CPU) SetState(a, f, b, cc, d, e, h, l byte, sp, pc uint16) {
	c.a, c.f, c.b, c.c, c.d, c.e, c.h, c.l = a, f&0xF0, b, cc, d, e, h, l
	c.sp, c.pc = sp, pc
}

// Halted reports whether the CPU is currently stopped on a HALT instruction.
func (c *CPU) Halted() bool { return c.halted }

// LastCycles returns the diagnostic clock-cycle estimate for the last
// instruction executed (4, 8 or 12, keyed by instruction size), or the
// interrupt-dispatch cost (20) if the last step serviced an interrupt instead.
func (c *CPU) LastCycles() int { return c.lastCycles }

// Step runs one fetch-decode-execute cycle: service a pending interrupt if
// IME and an enabled+pending source exist, else decode and execute one
// instruction from PC. Ticks the deferred EI-enable counter last, per the
// spec's step-5 ordering.
func (c *CPU) Step() {
	if c.serviceInterrupt() {
		c.lastCycles = 20
		c.tickEIDelay()
		return
	}

	if c.halted {
		// A pending, even if currently masked by IME, interrupt wakes the CPU;
		// hardware detail beyond that (the HALT bug) is not modeled.
		if c.bus.IE()&c.bus.IF()&0x1F != 0 {
			c.halted = false
		} else {
			c.tickEIDelay()
			return
		}
	}

	table := decode.Base
	op := c.readFetch()
	if c.prefixed {
		table = decode.Prefixed
		c.prefixed = false
	}

	entry := table[op]
	if entry == nil {
		// Unassigned opcode: treat as a quiet halt signal, not a fault. PC is
		// left pointing at the offending byte so the driver can observe the
		// stall.
		c.tickEIDelay()
		return
	}

	var snap Snapshot
	tracing := c.TraceFunc != nil && entry != decode.Base[0xCB]
	if tracing {
		snap = Snapshot{PC: c.pc, Opcode: op, Mnemonic: entry.Mnemonic,
			A: c.a, F: c.f, B: c.b, C: c.c, D: c.d, E: c.e, H: c.h, L: c.l, SP: c.sp}
	}

	c.fetchOperands(entry.Size)
	c.pc += uint16(entry.Size)

	entry.Exec(c)
	c.lastCycles = cyclesFor(entry.Size)

	if tracing {
		c.TraceFunc(snap)
	}

	c.tickEIDelay()
}

// readFetch reads the opcode byte at PC without advancing it; PC advances
// uniformly by entry.Size once decode has determined the instruction's width.
func (c *CPU) readFetch() byte {
	return c.bus.Read(c.pc)
}

// fetchOperands reads size-1 immediate bytes starting at pc+1, caching them
// for Imm8/Imm16 to serve without re-touching the bus mid-executor.
func (c *CPU) fetchOperands(size int) {
	switch size {
	case 2:
		c.imm8 = c.bus.Read(c.pc + 1)
	case 3:
		lo := c.bus.Read(c.pc + 1)
		hi := c.bus.Read(c.pc + 2)
		c.imm16 = uint16(hi)<<8 | uint16(lo)
		c.imm8 = lo
	}
}

// cyclesFor is a rough, diagnostic-only clock-cycle estimate keyed by instruction
// size; real LR35902 timing varies with addressing mode and branch outcome,
// which this core does not model (see package doc).
func cyclesFor(size int) int {
	switch size {
	case 1:
		return 4
	case 2:
		return 8
	default:
		return 12
	}
}

// serviceInterrupt dispatches the highest-priority enabled+pending interrupt
// if IME is set, returning true if one was serviced.
func (c *CPU) serviceInterrupt() bool {
	if !c.ime {
		return false
	}
	pending := c.bus.IE() & c.bus.IF() & 0x1F
	if pending == 0 {
		return false
	}
	for bit := 0; bit < 5; bit++ {
		if pending&(1<<uint(bit)) == 0 {
			continue
		}
		c.ime = false
		c.bus.SetIF(c.bus.IF() &^ (1 << uint(bit)))
		c.Push16(c.pc)
		c.pc = interruptVectors[bit]
		c.halted = false
		return true
	}
	return false
}

// tickEIDelay advances the deferred IME-enable counter one tick per step,
// flipping IME on once the counter reaches zero. A fresh EI sets the counter
// to 2 so the instruction after the one following EI is the first to run
// with interrupts enabled, matching real hardware's one-instruction latency.
func (c *CPU) tickEIDelay() {
	if c.eiDelay == 0 {
		return
	}
	c.eiDelay--
	if c.eiDelay == 0 {
		c.ime = true
	}
}

// RequestEIDelay implements decode.Machine for the EI instruction.
func (c *CPU) RequestEIDelay() { c.eiDelay = 2 }
