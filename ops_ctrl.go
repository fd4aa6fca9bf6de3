package z80

// registerCtrlOps registers NOP, HALT, DI/EI, IM 0/1/2, the I/R transfer
// instructions, and the ED-prefixed BCD digit rotates RLD/RRD.
func registerCtrlOps() {
	registerOp(&baseTable, 0x00, func(c *CPU) int {
		return 4
	})
	registerOp(&baseTable, 0x76, func(c *CPU) int {
		c.regs.Halted = true
		return 4
	})
	registerOp(&baseTable, 0xF3, func(c *CPU) int {
		c.regs.IFF1 = false
		c.regs.IFF2 = false
		return 4
	})
	registerOp(&baseTable, 0xFB, func(c *CPU) int {
		c.regs.IFF1 = true
		c.regs.IFF2 = true
		c.regs.EIHoldoff = true
		return 4
	})

	registerOp(&edTable, 0x46, func(c *CPU) int { c.regs.IM = 0; return 8 })
	registerOp(&edTable, 0x56, func(c *CPU) int { c.regs.IM = 1; return 8 })
	registerOp(&edTable, 0x5E, func(c *CPU) int { c.regs.IM = 2; return 8 })

	registerOp(&edTable, 0x47, func(c *CPU) int {
		c.regs.I = c.regs.A
		return 9
	})
	registerOp(&edTable, 0x4F, func(c *CPU) int {
		c.regs.R = c.regs.A
		return 9
	})
	registerOp(&edTable, 0x57, func(c *CPU) int {
		c.regs.A = c.regs.I
		c.setIRFlags(c.regs.I)
		return 9
	})
	registerOp(&edTable, 0x5F, func(c *CPU) int {
		c.regs.A = c.regs.R
		c.setIRFlags(c.regs.R)
		return 9
	})

	registerRLDRRD()
}

// setIRFlags applies LD A,I / LD A,R's flag convention: S/Z/X/Y mirror the
// loaded byte, H and N are cleared, and P/V takes IFF2 (so software can
// probe whether maskable interrupts were enabled before an NMI was
// accepted).
func (c *CPU) setIRFlags(v uint8) {
	f := c.regs.F & FlagC
	f |= szFlags(v) | xyFlags(v)
	if c.regs.IFF2 {
		f |= FlagPV
	}
	c.regs.F = f
}

// registerRLDRRD registers RLD/RRD: 4-bit digit rotates across A's low
// nibble and the two nibbles of (HL), used to shuffle BCD digits; A's high
// nibble is left unchanged.
func registerRLDRRD() {
	registerOp(&edTable, 0x6F, func(c *CPU) int {
		addr := c.regs.GetHL()
		m := c.readByte(addr)
		result := (m << 4) | (c.regs.A & 0x0F)
		c.regs.A = (c.regs.A & 0xF0) | (m >> 4)
		c.writeByte(addr, result)
		c.regs.F = (c.regs.F & FlagC) | setFlagsLogical(c.regs.A, false)
		return 18
	})
	registerOp(&edTable, 0x67, func(c *CPU) int {
		addr := c.regs.GetHL()
		m := c.readByte(addr)
		result := (c.regs.A&0x0F)<<4 | (m >> 4)
		c.regs.A = (c.regs.A & 0xF0) | (m & 0x0F)
		c.writeByte(addr, result)
		c.regs.F = (c.regs.F & FlagC) | setFlagsLogical(c.regs.A, false)
		return 18
	})
}
