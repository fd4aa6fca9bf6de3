package z80

// reg8 resolves a 3-bit register-field encoding (B,C,D,E,H,L,(HL),A) to its
// value, honoring the active DD/FD index substitution: under idxIX/idxIY,
// encodings 4/5 (H/L) read IXH/IXL or IYH/IYL instead, and encoding 6
// ((HL)) reads the byte at (IX+d)/(IY+d) using the displacement already
// consumed for this instruction.
func (c *CPU) reg8(idx uint8) uint8 {
	switch idx {
	case 0:
		return c.regs.B
	case 1:
		return c.regs.C
	case 2:
		return c.regs.D
	case 3:
		return c.regs.E
	case 4:
		if c.idx == idxIX {
			return c.regs.IXH()
		}
		if c.idx == idxIY {
			return c.regs.IYH()
		}
		return c.regs.H
	case 5:
		if c.idx == idxIX {
			return c.regs.IXL()
		}
		if c.idx == idxIY {
			return c.regs.IYL()
		}
		return c.regs.L
	case 6:
		return c.readByte(c.hlAddr())
	case 7:
		return c.regs.A
	default:
		invalidRegisterEncoding(idx)
		return 0
	}
}

// setReg8 writes a 3-bit register-field encoding, mirroring reg8's rules.
func (c *CPU) setReg8(idx uint8, v uint8) {
	switch idx {
	case 0:
		c.regs.B = v
	case 1:
		c.regs.C = v
	case 2:
		c.regs.D = v
	case 3:
		c.regs.E = v
	case 4:
		switch c.idx {
		case idxIX:
			c.regs.SetIXH(v)
		case idxIY:
			c.regs.SetIYH(v)
		default:
			c.regs.H = v
		}
	case 5:
		switch c.idx {
		case idxIX:
			c.regs.SetIXL(v)
		case idxIY:
			c.regs.SetIYL(v)
		default:
			c.regs.L = v
		}
	case 6:
		c.writeByte(c.hlAddr(), v)
	case 7:
		c.regs.A = v
	default:
		invalidRegisterEncoding(idx)
	}
}

// hlAddr returns the effective address a (HL)-style operand refers to:
// plain HL normally, or IX/IY plus the signed displacement fetched for
// this instruction when a DD/FD prefix is active. It reads no bytes itself;
// the displacement is consumed beforehand by fetchDisp or runCB.
func (c *CPU) hlAddr() uint16 {
	switch c.idx {
	case idxIX:
		return uint16(int32(c.regs.IX) + int32(c.indexedDisp))
	case idxIY:
		return uint16(int32(c.regs.IY) + int32(c.indexedDisp))
	default:
		return c.regs.GetHL()
	}
}

// fetchDisp consumes the displacement byte for an indexed (IX+d)/(IY+d)
// access that isn't already part of a DDCB/FDCB sequence (those stash it
// in c.indexedDisp before the opcode byte, via runCB). Plain DD/FD forms
// read it immediately after the opcode byte, before any other operand.
func (c *CPU) fetchDisp() {
	if c.idx != idxNone {
		c.indexedDisp = int8(c.fetchByte())
	}
}

// reg8Names holds the mnemonic of each 3-bit register encoding; it is not
// part of the decode hot path.
var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// regPair16 resolves a 2-bit register-pair encoding (BC,DE,HL/IX/IY,SP) for
// instructions that use the "rp" field, honoring index substitution.
func (c *CPU) regPair16(idx uint8) uint16 {
	switch idx {
	case 0:
		return c.regs.GetBC()
	case 1:
		return c.regs.GetDE()
	case 2:
		return c.indexedPair()
	case 3:
		return c.regs.SP
	default:
		invalidRegisterEncoding(idx)
		return 0
	}
}

// setRegPair16 writes a 2-bit register-pair encoding, mirroring regPair16.
func (c *CPU) setRegPair16(idx uint8, v uint16) {
	switch idx {
	case 0:
		c.regs.SetBC(v)
	case 1:
		c.regs.SetDE(v)
	case 2:
		c.setIndexedPair(v)
	case 3:
		c.regs.SP = v
	default:
		invalidRegisterEncoding(idx)
	}
}

// indexedPair returns HL, or IX/IY when a DD/FD prefix substitutes them.
func (c *CPU) indexedPair() uint16 {
	switch c.idx {
	case idxIX:
		return c.regs.IX
	case idxIY:
		return c.regs.IY
	default:
		return c.regs.GetHL()
	}
}

func (c *CPU) setIndexedPair(v uint16) {
	switch c.idx {
	case idxIX:
		c.regs.IX = v
	case idxIY:
		c.regs.IY = v
	default:
		c.regs.SetHL(v)
	}
}

// regPair16AF resolves the 2-bit "rp2" encoding used by PUSH/POP, which
// substitutes AF for SP in place of the "rp" encoding's SP.
func (c *CPU) regPair16AF(idx uint8) uint16 {
	if idx == 3 {
		return c.regs.GetAF()
	}
	return c.regPair16(idx)
}

func (c *CPU) setRegPair16AF(idx uint8, v uint16) {
	if idx == 3 {
		c.regs.SetAF(v)
		return
	}
	c.setRegPair16(idx, v)
}
