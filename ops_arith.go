package z80

// registerArithOps registers ADD/ADC/SUB/SBC/CP A,s (the 8-bit ALU forms
// sharing opcode field 0,1,2,7 of the 0x80-0xBF grid and their 0xC6-range
// immediate counterparts), INC/DEC r, the 16-bit ADD HL,ss/ADC HL,ss/
// SBC HL,ss/INC ss/DEC ss family, and ED NEG.
func registerArithOps() {
	registerAlu8(0, "ADD", false)
	registerAlu8(1, "ADC", true)
	registerAlu8(2, "SUB", false)
	registerAlu8(3, "SBC", true)
	registerAlu8(7, "CP", false)

	registerIncDec8()
	registerAdd16()
	registerIncDec16()
	registerNeg()
}

// registerAlu8 registers both the register/memory form (0x80|op<<3|src) and
// the immediate form (0xC6|op<<3) of an 8-bit add-family ALU operation.
// useCarry selects ADC/SBC's carry-in; name distinguishes ADD/SUB/CP, which
// all share the same underlying add/sub math (CP computes like SUB but
// discards the result).
func registerAlu8(op uint8, name string, useCarry bool) {
	isSub := name == "SUB" || name == "SBC" || name == "CP"

	apply := func(c *CPU, operand uint8) {
		var carryIn uint8
		if useCarry && c.regs.F&FlagC != 0 {
			carryIn = 1
		}
		var result, flags uint8
		if isSub {
			result, flags = setFlagsSub8(c.regs.A, operand, carryIn)
		} else {
			result, flags = setFlagsAdd8(c.regs.A, operand, carryIn)
		}
		c.regs.F = flags
		if name != "CP" {
			c.regs.A = result
		}
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

// registerIncDec8 registers INC r/DEC r for all 3-bit register encodings,
// including (HL) and the indexed (IX+d)/(IY+d) forms.
func registerIncDec8() {
	for r := uint8(0); r < 8; r++ {
		reg := r
		registerOp(&baseTable, 0x04|reg<<3, func(c *CPU) int {
			c.fetchDispIfIndexedDst(reg)
			before := c.reg8(reg)
			result, flags := setFlagsInc8(before)
			c.regs.F = (c.regs.F & FlagC) | (flags &^ FlagC)
			c.setReg8(reg, result)
			return incDecCost(c, reg)
		})
		registerOp(&baseTable, 0x05|reg<<3, func(c *CPU) int {
			c.fetchDispIfIndexedDst(reg)
			before := c.reg8(reg)
			result, flags := setFlagsDec8(before)
			c.regs.F = (c.regs.F & FlagC) | (flags &^ FlagC)
			c.setReg8(reg, result)
			return incDecCost(c, reg)
		})
	}
}

func incDecCost(c *CPU, reg uint8) int {
	switch {
	case reg == 6 && c.idx != idxNone:
		return 23
	case reg == 6:
		return 11
	case (reg == 4 || reg == 5) && c.idx != idxNone:
		return 8
	default:
		return 4
	}
}

// registerAdd16 registers ADD HL,ss (and its IX/IY-substituted forms) plus
// the ED-prefixed ADC HL,ss/SBC HL,ss, the only 16-bit arithmetic that
// touches S/Z/P-V.
func registerAdd16() {
	for rp := uint8(0); rp < 4; rp++ {
		p := rp
		registerOp(&baseTable, 0x09|p<<4, func(c *CPU) int {
			a := c.indexedPair()
			b := c.regPair16(p)
			result := a + b
			c.regs.F = addHLFlags(c.regs.F, uint8(result>>8), a, b)
			c.setIndexedPair(result)
			return 11
		})
	}

	for rp := uint8(0); rp < 4; rp++ {
		p := rp
		registerOp(&edTable, 0x4A|p<<4, func(c *CPU) int {
			var carryIn uint8
			if c.regs.F&FlagC != 0 {
				carryIn = 1
			}
			a := c.regs.GetHL()
			b := c.regPair16(p)
			result, flags := setFlagsAdd16(a, b, carryIn)
			c.regs.F = flags
			c.regs.SetHL(result)
			return 15
		})
		registerOp(&edTable, 0x42|p<<4, func(c *CPU) int {
			var carryIn uint8
			if c.regs.F&FlagC != 0 {
				carryIn = 1
			}
			a := c.regs.GetHL()
			b := c.regPair16(p)
			result, flags := setFlagsSub16(a, b, carryIn)
			c.regs.F = flags
			c.regs.SetHL(result)
			return 15
		})
	}
}

// registerIncDec16 registers INC ss/DEC ss (and IX/IY substitutions); these
// never touch flags.
func registerIncDec16() {
	for rp := uint8(0); rp < 4; rp++ {
		p := rp
		registerOp(&baseTable, 0x03|p<<4, func(c *CPU) int {
			c.setRegPair16(p, c.regPair16(p)+1)
			return 6
		})
		registerOp(&baseTable, 0x0B|p<<4, func(c *CPU) int {
			c.setRegPair16(p, c.regPair16(p)-1)
			return 6
		})
	}
}

// registerNeg registers ED NEG: A := 0 - A.
func registerNeg() {
	registerOp(&edTable, 0x44, func(c *CPU) int {
		result, flags := setFlagsSub8(0, c.regs.A, 0)
		c.regs.A = result
		c.regs.F = flags
		return 8
	})
}
