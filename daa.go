package z80

// registerDAA registers DAA: adjusts A after a binary ADD/ADC/SUB/SBC so
// the two nibbles again represent a valid BCD result, using the standard
// low/high correction table driven by N (which operation family ran last),
// H and C (from that operation) and A's own nibble values.
func registerDAA() {
	registerOp(&baseTable, 0x27, func(c *CPU) int {
		a := c.regs.A
		n := c.regs.F&FlagN != 0
		h := c.regs.F&FlagH != 0
		carryIn := c.regs.F&FlagC != 0

		var correction uint8
		carryOut := carryIn

		if h || a&0x0F > 9 {
			correction |= 0x06
		}
		if carryIn || a > 0x99 {
			correction |= 0x60
			carryOut = true
		}

		var result uint8
		if n {
			result = a - correction
		} else {
			result = a + correction
		}

		halfOut := false
		if n {
			halfOut = h && a&0x0F < 6
		} else {
			halfOut = a&0x0F+correction&0x0F > 0x0F
		}

		c.regs.A = result
		f := szFlags(result) | xyFlags(result)
		if n {
			f |= FlagN
		}
		if halfOut {
			f |= FlagH
		}
		if parity(result) {
			f |= FlagPV
		}
		if carryOut {
			f |= FlagC
		}
		c.regs.F = f
		return 4
	})
}
