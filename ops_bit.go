package z80

// registerBitOps registers the CB-prefixed rotate/shift/BIT/RES/SET table
// and the four unprefixed accumulator rotate instructions RLCA/RRCA/RLA/RRA.
//
// Under an active DD/FD prefix (DDCB/FDCB), every CB-table entry's operand
// is forced to (IX+d)/(IY+d) regardless of its register field; a register
// field other than (HL)'s also receives an undocumented copy of the result,
// a quirk of the real hardware's internal bus timing that every one of the
// eight encodings for a given operation otherwise shares.
func registerBitOps() {
	for opcode := 0; opcode < 256; opcode++ {
		op := uint8(opcode)
		class := op >> 6
		sub := (op >> 3) & 7
		reg := op & 7
		switch class {
		case 0:
			registerShift(op, sub, reg)
		case 1:
			registerBit(op, sub, reg)
		case 2:
			registerResSet(op, sub, reg, false)
		case 3:
			registerResSet(op, sub, reg, true)
		}
	}

	registerOp(&baseTable, 0x07, func(c *CPU) int {
		carry := c.regs.A&0x80 != 0
		c.regs.A = c.regs.A<<1 | boolBit(carry)
		c.setRotateAccumFlags(carry)
		return 4
	})
	registerOp(&baseTable, 0x0F, func(c *CPU) int {
		carry := c.regs.A&0x01 != 0
		c.regs.A = c.regs.A>>1 | boolBit(carry)<<7
		c.setRotateAccumFlags(carry)
		return 4
	})
	registerOp(&baseTable, 0x17, func(c *CPU) int {
		carryIn := boolBit(c.regs.F&FlagC != 0)
		carryOut := c.regs.A&0x80 != 0
		c.regs.A = c.regs.A<<1 | carryIn
		c.setRotateAccumFlags(carryOut)
		return 4
	})
	registerOp(&baseTable, 0x1F, func(c *CPU) int {
		carryIn := boolBit(c.regs.F&FlagC != 0)
		carryOut := c.regs.A&0x01 != 0
		c.regs.A = c.regs.A>>1 | carryIn<<7
		c.setRotateAccumFlags(carryOut)
		return 4
	})
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// setRotateAccumFlags applies RLCA/RRCA/RLA/RRA's flag convention: S, Z and
// P/V are preserved, H and N are cleared, X/Y mirror the new accumulator
// value, and C takes the bit rotated out.
func (c *CPU) setRotateAccumFlags(carryOut bool) {
	f := c.regs.F & (FlagS | FlagZ | FlagPV)
	f |= xyFlags(c.regs.A)
	if carryOut {
		f |= FlagC
	}
	c.regs.F = f
}

// shiftOperand reads the operand a CB-class-0/1/2/3 instruction acts on,
// honoring the DDCB/FDCB forced-indexed-addressing rule.
func (c *CPU) shiftOperand(reg uint8) uint8 {
	if c.idx != idxNone {
		return c.readByte(c.hlAddr())
	}
	return c.reg8(reg)
}

// storeShiftResult writes a CB-class instruction's result back, applying
// the DDCB/FDCB forced-indexed-addressing and undocumented register
// copy-back rules.
func (c *CPU) storeShiftResult(reg uint8, v uint8) {
	if c.idx != idxNone {
		c.writeByte(c.hlAddr(), v)
		if reg != 6 {
			c.writePlainReg8(reg, v)
		}
		return
	}
	c.setReg8(reg, v)
}

// writePlainReg8 writes B/C/D/E/H/L/A directly, bypassing the IX/IY
// half-register substitution reg8/setReg8 apply; used only for the
// DDCB/FDCB undocumented copy-back target, which always names a plain
// register regardless of the active index prefix.
func (c *CPU) writePlainReg8(reg uint8, v uint8) {
	switch reg {
	case 0:
		c.regs.B = v
	case 1:
		c.regs.C = v
	case 2:
		c.regs.D = v
	case 3:
		c.regs.E = v
	case 4:
		c.regs.H = v
	case 5:
		c.regs.L = v
	case 7:
		c.regs.A = v
	}
}

func shiftCost(c *CPU, reg uint8) int {
	switch {
	case c.idx != idxNone:
		return 23
	case reg == 6:
		return 15
	default:
		return 8
	}
}

func bitCost(c *CPU, reg uint8) int {
	switch {
	case c.idx != idxNone:
		return 20
	case reg == 6:
		return 12
	default:
		return 8
	}
}

// registerShift registers one of RLC/RRC/RL/RR/SLA/SRA/SLL/SRL for a single
// register-field encoding.
func registerShift(opcode uint8, sub uint8, reg uint8) {
	registerOp(&cbTable, opcode, func(c *CPU) int {
		v := c.shiftOperand(reg)
		var result uint8
		var carryOut bool
		switch sub {
		case 0: // RLC
			carryOut = v&0x80 != 0
			result = v<<1 | boolBit(carryOut)
		case 1: // RRC
			carryOut = v&0x01 != 0
			result = v>>1 | boolBit(carryOut)<<7
		case 2: // RL
			carryOut = v&0x80 != 0
			result = v<<1 | boolBit(c.regs.F&FlagC != 0)
		case 3: // RR
			carryOut = v&0x01 != 0
			result = v>>1 | boolBit(c.regs.F&FlagC != 0)<<7
		case 4: // SLA
			carryOut = v&0x80 != 0
			result = v << 1
		case 5: // SRA
			carryOut = v&0x01 != 0
			result = v&0x80 | v>>1
		case 6: // SLL, undocumented: shifts in a 1 rather than a 0
			carryOut = v&0x80 != 0
			result = v<<1 | 1
		default: // SRL
			carryOut = v&0x01 != 0
			result = v >> 1
		}
		c.regs.F = setFlagsLogical(result, false)
		if carryOut {
			c.regs.F |= FlagC
		}
		c.storeShiftResult(reg, result)
		return shiftCost(c, reg)
	})
}

// registerBit registers BIT b,s. The flags' X/Y bits are approximated from
// the tested byte rather than the real hardware's internal address-latch
// register for the (HL)/(IX+d)/(IY+d) forms; see the design notes.
func registerBit(opcode uint8, bit uint8, reg uint8) {
	registerOp(&cbTable, opcode, func(c *CPU) int {
		v := c.shiftOperand(reg)
		set := v&(1<<bit) != 0
		f := c.regs.F & FlagC
		f |= FlagH
		f |= xyFlags(v)
		if !set {
			f |= FlagZ | FlagPV
		}
		if bit == 7 && set {
			f |= FlagS
		}
		c.regs.F = f
		return bitCost(c, reg)
	})
}

// registerResSet registers RES b,s / SET b,s.
func registerResSet(opcode uint8, bit uint8, reg uint8, set bool) {
	registerOp(&cbTable, opcode, func(c *CPU) int {
		v := c.shiftOperand(reg)
		if set {
			v |= 1 << bit
		} else {
			v &^= 1 << bit
		}
		c.storeShiftResult(reg, v)
		return shiftCost(c, reg)
	})
}
