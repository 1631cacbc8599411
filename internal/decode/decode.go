// Package decode builds the two 256-entry LR35902 opcode tables (unprefixed and
// CB-prefixed) as immutable data, once at package init. Each cell carries the
// instruction's mnemonic (for disassembly/trace), its size in bytes, and an
// executor closure. The tables are pure: decoding never touches CPU state.
package decode

// Executor runs one decoded instruction against the machine it is given.
// It reads any immediate operands relative to the already-advanced PC (the
// caller is required to add Size to PC before invoking Exec), per the
// pre-advance contract every executor depends on.
type Executor func(m Machine)

// Opcode describes one decoded instruction.
type Opcode struct {
	Mnemonic string
	Size     int
	Exec     Executor
}

// Machine is the minimal surface an executor needs. internal/cpu.CPU implements it.
type Machine interface {
	// 8-bit register access by index: 0=B 1=C 2=D 3=E 4=H 5=L 6=(HL) 7=A
	GetR8(idx byte) byte
	SetR8(idx byte, v byte)

	A() byte
	SetA(v byte)
	F() byte
	SetF(v byte)

	BC() uint16
	SetBC(v uint16)
	DE() uint16
	SetDE(v uint16)
	HL() uint16
	SetHL(v uint16)
	AF() uint16
	SetAF(v uint16)

	SP() uint16
	SetSP(v uint16)
	PC() uint16
	SetPC(v uint16)

	Read(addr uint16) byte
	Write(addr uint16, v byte)

	// Imm8/Imm16 read the already-fetched immediate operand(s) relative to the
	// current (post-advance) PC: Imm8 is at PC-1; Imm16 is lo=PC-2, hi=PC-1.
	Imm8() byte
	Imm16() uint16

	SetPrefixed(b bool)
	SetHalted(b bool)

	SetZNHC(z, n, h, c *bool)

	IME() bool
	SetIME(b bool)
	RequestEIDelay()

	Push16(v uint16)
	Pop16() uint16
}

// Base is the 256-entry unprefixed table. Unassigned slots are nil.
var Base [256]*Opcode

// Prefixed is the 256-entry CB-prefixed table. Every slot is assigned.
var Prefixed [256]*Opcode

// r8Name gives the conventional register-index name used for mnemonics.
var r8Name = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func init() {
	buildLoadGroup()
	buildLoadImmediateGroup()
	build16BitLoadGroup()
	buildALUGroup()
	buildIncDecGroup()
	buildRotateShiftUnprefixed()
	buildControlFlowGroup()
	buildMiscGroup()
	buildStackGroup()
	buildPrefixedTable()
}

func set(op byte, mnemonic string, size int, exec Executor) {
	Base[op] = &Opcode{Mnemonic: mnemonic, Size: size, Exec: exec}
}

func setCB(op byte, mnemonic string, exec Executor) {
	Prefixed[op] = &Opcode{Mnemonic: mnemonic, Size: 1, Exec: exec}
}
