package z80

// registerBlockOps registers the ED-prefixed block transfer and block
// search instruction families: LDI/LDD/LDIR/LDDR and CPI/CPD/CPIR/CPDR.
func registerBlockOps() {
	registerOp(&edTable, 0xA0, func(c *CPU) int { c.blockLoad(1); return 16 })
	registerOp(&edTable, 0xA8, func(c *CPU) int { c.blockLoad(-1); return 16 })
	registerOp(&edTable, 0xB0, func(c *CPU) int { return c.blockLoadRepeat(1) })
	registerOp(&edTable, 0xB8, func(c *CPU) int { return c.blockLoadRepeat(-1) })

	registerOp(&edTable, 0xA1, func(c *CPU) int { c.blockCompare(1); return 16 })
	registerOp(&edTable, 0xA9, func(c *CPU) int { c.blockCompare(-1); return 16 })
	registerOp(&edTable, 0xB1, func(c *CPU) int { return c.blockCompareRepeat(1) })
	registerOp(&edTable, 0xB9, func(c *CPU) int { return c.blockCompareRepeat(-1) })
}

// blockLoad implements LDI (step=1) / LDD (step=-1): copies (HL) to (DE),
// then advances HL and DE by step and decrements BC.
func (c *CPU) blockLoad(step int16) {
	v := c.readByte(c.regs.GetHL())
	c.writeByte(c.regs.GetDE(), v)
	c.regs.SetHL(uint16(int32(c.regs.GetHL()) + int32(step)))
	c.regs.SetDE(uint16(int32(c.regs.GetDE()) + int32(step)))
	bc := c.regs.GetBC() - 1
	c.regs.SetBC(bc)

	n := c.regs.A + v
	f := c.regs.F & (FlagS | FlagZ | FlagC)
	if n&0x02 != 0 {
		f |= FlagY
	}
	if n&0x08 != 0 {
		f |= FlagX
	}
	if bc != 0 {
		f |= FlagPV
	}
	c.regs.F = f
}

func (c *CPU) blockLoadRepeat(step int16) int {
	c.blockLoad(step)
	if c.regs.GetBC() != 0 {
		c.regs.PC -= 2
		return 21
	}
	return 16
}

// blockCompare implements CPI (step=1) / CPD (step=-1): compares A against
// (HL) as CP would (but leaves C untouched), then advances HL by step and
// decrements BC.
func (c *CPU) blockCompare(step int16) {
	v := c.readByte(c.regs.GetHL())
	c.regs.SetHL(uint16(int32(c.regs.GetHL()) + int32(step)))
	bc := c.regs.GetBC() - 1
	c.regs.SetBC(bc)

	result := c.regs.A - v
	half := (c.regs.A & 0x0F) < (v & 0x0F)

	f := (c.regs.F & FlagC) | FlagN
	f |= szFlags(result)
	if half {
		f |= FlagH
	}
	if bc != 0 {
		f |= FlagPV
	}

	n := result
	if half {
		n--
	}
	if n&0x02 != 0 {
		f |= FlagY
	}
	if n&0x08 != 0 {
		f |= FlagX
	}
	c.regs.F = f
}

func (c *CPU) blockCompareRepeat(step int16) int {
	c.blockCompare(step)
	if c.regs.GetBC() != 0 && c.regs.F&FlagZ == 0 {
		c.regs.PC -= 2
		return 21
	}
	return 16
}
