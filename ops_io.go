package z80

// registerIOOps registers the accumulator-only port instructions IN A,(n)/
// OUT (n),A, the general IN r,(C)/OUT (C),r forms, and the ED-prefixed
// block I/O families INI/IND/INIR/INDR and OUTI/OUTD/OTIR/OTDR.
func registerIOOps() {
	registerOp(&baseTable, 0xDB, func(c *CPU) int {
		n := c.fetchByte()
		c.regs.A = c.ioIn(c.regs.A, n)
		return 11
	})
	registerOp(&baseTable, 0xD3, func(c *CPU) int {
		n := c.fetchByte()
		c.ioOut(c.regs.A, n, c.regs.A)
		return 11
	})

	for r := uint8(0); r < 8; r++ {
		reg := r
		registerOp(&edTable, 0x40|reg<<3, func(c *CPU) int {
			v := c.ioIn(c.regs.B, c.regs.C)
			if reg != 6 {
				c.setReg8(reg, v)
			}
			c.regs.F = (c.regs.F & FlagC) | setFlagsLogical(v, false)
			return 12
		})
		registerOp(&edTable, 0x41|reg<<3, func(c *CPU) int {
			var v uint8
			if reg == 6 {
				v = 0
			} else {
				v = c.reg8(reg)
			}
			c.ioOut(c.regs.B, c.regs.C, v)
			return 12
		})
	}

	registerOp(&edTable, 0xA2, func(c *CPU) int { return c.blockIn(1) })
	registerOp(&edTable, 0xAA, func(c *CPU) int { return c.blockIn(-1) })
	registerOp(&edTable, 0xB2, func(c *CPU) int { return c.blockInRepeat(1) })
	registerOp(&edTable, 0xBA, func(c *CPU) int { return c.blockInRepeat(-1) })

	registerOp(&edTable, 0xA3, func(c *CPU) int { return c.blockOut(1) })
	registerOp(&edTable, 0xAB, func(c *CPU) int { return c.blockOut(-1) })
	registerOp(&edTable, 0xB3, func(c *CPU) int { return c.blockOutRepeat(1) })
	registerOp(&edTable, 0xBB, func(c *CPU) int { return c.blockOutRepeat(-1) })
}

// ioIn reads one byte from the port addressed by (hi,lo), using the Bus16
// capability (when WithPortWidth16 is set) instead of the default 8-bit
// InPort, which receives only lo.
func (c *CPU) ioIn(hi, lo uint8) uint8 {
	full := uint16(hi)<<8 | uint16(lo)
	if c.portWidth16 && c.bus16 != nil {
		return c.bus16.InPort16(full)
	}
	return c.bus.InPort(uint16(lo))
}

func (c *CPU) ioOut(hi, lo uint8, v uint8) {
	full := uint16(hi)<<8 | uint16(lo)
	if c.portWidth16 && c.bus16 != nil {
		c.bus16.OutPort16(full, v)
		return
	}
	c.bus.OutPort(uint16(lo), v)
}

// blockIn implements INI (step=1) / IND (step=-1). Its undocumented H/C/P-V
// flags follow the commonly documented approximation (derived from the
// input byte and C adjusted by step, i.e. C+1 for INI and C-1 for IND)
// rather than the exact internal adder behavior; see the design notes.
func (c *CPU) blockIn(step int16) int {
	v := c.ioIn(c.regs.B, c.regs.C)
	c.writeByte(c.regs.GetHL(), v)
	c.regs.SetHL(uint16(int32(c.regs.GetHL()) + int32(step)))
	c.regs.B--

	f := szFlags(c.regs.B) | xyFlags(c.regs.B)
	if v&0x80 != 0 {
		f |= FlagN
	}
	k := uint16(v) + uint16(uint8(int16(c.regs.C)+step))
	if k > 0xFF {
		f |= FlagH | FlagC
	}
	if parity(uint8(k&0x07)^c.regs.B) {
		f |= FlagPV
	}
	c.regs.F = f
	return 16
}

func (c *CPU) blockInRepeat(step int16) int {
	c.blockIn(step)
	if c.regs.B != 0 {
		c.regs.PC -= 2
		return 21
	}
	return 16
}

// blockOut implements OUTI (step=1) / OUTD (step=-1).
func (c *CPU) blockOut(step int16) int {
	v := c.readByte(c.regs.GetHL())
	c.regs.B--
	c.ioOut(c.regs.B, c.regs.C, v)
	c.regs.SetHL(uint16(int32(c.regs.GetHL()) + int32(step)))

	f := szFlags(c.regs.B) | xyFlags(c.regs.B)
	if v&0x80 != 0 {
		f |= FlagN
	}
	k := uint16(v) + uint16(c.regs.L)
	if k > 0xFF {
		f |= FlagH | FlagC
	}
	if parity(uint8(k&0x07) ^ c.regs.B) {
		f |= FlagPV
	}
	c.regs.F = f
	return 16
}

func (c *CPU) blockOutRepeat(step int16) int {
	c.blockOut(step)
	if c.regs.B != 0 {
		c.regs.PC -= 2
		return 21
	}
	return 16
}
