package decode

// buildPrefixedTable fills the 256-entry CB-prefixed table: rotate/shift/swap
// on all eight r8 operands, then BIT/RES/SET for every (bit, r8) pair. Layout
// mirrors the hardware's own field decomposition: bits 7-6 select the group
// (00=rotate/shift/swap, 01=BIT, 10=RES, 11=SET), bits 5-3 select the bit
// index (or, in the rotate/shift group, the sub-operation), bits 2-0 select
// the r8 operand.
func buildPrefixedTable() {
	type shiftOp struct {
		name string
		fn   func(v byte, c bool) (res byte, carryOut bool)
	}
	shiftOps := [8]shiftOp{
		{"RLC", func(v byte, _ bool) (byte, bool) {
			carry := (v >> 7) & 1
			return (v << 1) | carry, carry == 1
		}},
		{"RRC", func(v byte, _ bool) (byte, bool) {
			carry := v & 1
			return (v >> 1) | (carry << 7), carry == 1
		}},
		{"RL", func(v byte, c bool) (byte, bool) {
			carryOut := (v >> 7) & 1
			in := byte(0)
			if c {
				in = 1
			}
			return (v << 1) | in, carryOut == 1
		}},
		{"RR", func(v byte, c bool) (byte, bool) {
			carryOut := v & 1
			in := byte(0)
			if c {
				in = 1
			}
			return (v >> 1) | (in << 7), carryOut == 1
		}},
		{"SLA", func(v byte, _ bool) (byte, bool) {
			carry := (v >> 7) & 1
			return v << 1, carry == 1
		}},
		{"SRA", func(v byte, _ bool) (byte, bool) {
			carry := v & 1
			return (v >> 1) | (v & 0x80), carry == 1
		}},
		{"SWAP", func(v byte, _ bool) (byte, bool) {
			return (v << 4) | (v >> 4), false
		}},
		{"SRL", func(v byte, _ bool) (byte, bool) {
			carry := v & 1
			return v >> 1, carry == 1
		}},
	}

	for grp := byte(0); grp < 8; grp++ {
		grp := grp
		op := shiftOps[grp]
		for s := byte(0); s < 8; s++ {
			s := s
			code := grp<<3 | s
			setCB(code, op.name+" "+r8Name[s], func(m Machine) {
				v := r8Get(m, s)
				res, carryOut := op.fn(v, flagC(m))
				r8Set(m, s, res)
				m.SetZNHC(bp(res == 0), bp(false), bp(false), bp(carryOut))
			})
		}
	}

	for bit := byte(0); bit < 8; bit++ {
		bit := bit
		for s := byte(0); s < 8; s++ {
			s := s
			code := 0x40 | bit<<3 | s
			setCB(code, "BIT "+itoa(bit)+","+r8Name[s], func(m Machine) {
				v := r8Get(m, s)
				set := v&(1<<bit) != 0
				m.SetZNHC(bp(!set), bp(false), bp(true), nil)
			})
		}
	}

	for bit := byte(0); bit < 8; bit++ {
		bit := bit
		for s := byte(0); s < 8; s++ {
			s := s
			code := 0x80 | bit<<3 | s
			setCB(code, "RES "+itoa(bit)+","+r8Name[s], func(m Machine) {
				v := r8Get(m, s)
				r8Set(m, s, v&^(1<<bit))
			})
		}
	}

	for bit := byte(0); bit < 8; bit++ {
		bit := bit
		for s := byte(0); s < 8; s++ {
			s := s
			code := 0xC0 | bit<<3 | s
			setCB(code, "SET "+itoa(bit)+","+r8Name[s], func(m Machine) {
				v := r8Get(m, s)
				r8Set(m, s, v|(1<<bit))
			})
		}
	}
}

func itoa(b byte) string {
	return string(rune('0' + b))
}
