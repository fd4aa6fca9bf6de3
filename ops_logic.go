package z80

// registerLogicOps registers AND/OR/XOR A,s (the remaining three opcode
// fields of the 0x80-0xBF ALU grid), their immediate forms, and the
// accumulator/flag single-byte instructions CPL/SCF/CCF.
func registerLogicOps() {
	registerLogic8(4, func(a, b uint8) (uint8, bool) { return a & b, true })
	registerLogic8(5, func(a, b uint8) (uint8, bool) { return a ^ b, false })
	registerLogic8(6, func(a, b uint8) (uint8, bool) { return a | b, false })

	registerOp(&baseTable, 0x2F, func(c *CPU) int {
		c.regs.A = ^c.regs.A
		c.regs.F = (c.regs.F & (FlagS | FlagZ | FlagPV | FlagC)) | FlagH | FlagN | xyFlags(c.regs.A)
		return 4
	})
	registerOp(&baseTable, 0x37, func(c *CPU) int {
		c.regs.F = (c.regs.F & (FlagS | FlagZ | FlagPV)) | FlagC | xyFlags(c.regs.A)
		return 4
	})
	registerOp(&baseTable, 0x3F, func(c *CPU) int {
		carryWasSet := c.regs.F&FlagC != 0
		f := c.regs.F & (FlagS | FlagZ | FlagPV)
		if carryWasSet {
			f |= FlagH
		} else {
			f |= FlagC
		}
		c.regs.F = f | xyFlags(c.regs.A)
		return 4
	})
}

// registerLogic8 registers one of AND/XOR/OR's register/memory and
// immediate forms, sharing the flag convention setFlagsLogical implements.
func registerLogic8(op uint8, combine func(a, b uint8) (uint8, bool)) {
	apply := func(c *CPU, operand uint8) {
		result, half := combine(c.regs.A, operand)
		c.regs.A = result
		c.regs.F = setFlagsLogical(result, half)
	}

	for src := uint8(0); src < 8; src++ {
		s := src
		registerOp(&baseTable, 0x80|op<<3|s, func(c *CPU) int {
			c.fetchDispIfIndexedDst(s)
			apply(c, c.reg8(s))
			if s == 6 {
				if c.idx != idxNone {
					return 19
				}
				return 7
			}
			return 4
		})
	}

	registerOp(&baseTable, 0xC6|op<<3, func(c *CPU) int {
		apply(c, c.fetchByte())
		return 7
	})
}
