package z80

// registerBranchOps registers JP/JR/DJNZ/CALL/RET and their conditional
// forms, RST, and the ED-prefixed RETN/RETI.
func registerBranchOps() {
	registerJP()
	registerJR()
	registerDJNZ()
	registerCall()
	registerRet()
	registerRST()
	registerRetNI()
}

// checkCond evaluates one of the eight 3-bit condition-field encodings
// (NZ,Z,NC,C,PO,PE,P,M) against the current flags.
func checkCond(c *CPU, cc uint8) bool {
	switch cc {
	case 0:
		return c.regs.F&FlagZ == 0
	case 1:
		return c.regs.F&FlagZ != 0
	case 2:
		return c.regs.F&FlagC == 0
	case 3:
		return c.regs.F&FlagC != 0
	case 4:
		return c.regs.F&FlagPV == 0
	case 5:
		return c.regs.F&FlagPV != 0
	case 6:
		return c.regs.F&FlagS == 0
	default:
		return c.regs.F&FlagS != 0
	}
}

func registerJP() {
	registerOp(&baseTable, 0xC3, func(c *CPU) int {
		c.regs.PC = c.fetchWord()
		return 10
	})
	for cc := uint8(0); cc < 8; cc++ {
		cond := cc
		registerOp(&baseTable, 0xC2|cond<<3, func(c *CPU) int {
			target := c.fetchWord()
			if checkCond(c, cond) {
				c.regs.PC = target
			}
			return 10
		})
	}
	registerOp(&baseTable, 0xE9, func(c *CPU) int {
		c.regs.PC = c.indexedPair()
		if c.idx != idxNone {
			return 8
		}
		return 4
	})
}

func registerJR() {
	registerOp(&baseTable, 0x18, func(c *CPU) int {
		d := int8(c.fetchByte())
		c.regs.PC = uint16(int32(c.regs.PC) + int32(d))
		return 12
	})
	jrCC := [4]uint8{0, 1, 2, 3}
	jrOpcodes := [4]uint8{0x20, 0x28, 0x30, 0x38}
	for i := 0; i < 4; i++ {
		cond := jrCC[i]
		registerOp(&baseTable, jrOpcodes[i], func(c *CPU) int {
			d := int8(c.fetchByte())
			if checkCond(c, cond) {
				c.regs.PC = uint16(int32(c.regs.PC) + int32(d))
				return 12
			}
			return 7
		})
	}
}

func registerDJNZ() {
	registerOp(&baseTable, 0x10, func(c *CPU) int {
		d := int8(c.fetchByte())
		c.regs.B--
		if c.regs.B != 0 {
			c.regs.PC = uint16(int32(c.regs.PC) + int32(d))
			return 13
		}
		return 8
	})
}

func registerCall() {
	registerOp(&baseTable, 0xCD, func(c *CPU) int {
		target := c.fetchWord()
		from := c.regs.PC
		c.pushWord(c.regs.PC)
		c.regs.PC = target
		c.notifyCall(from, target)
		return 17
	})
	for cc := uint8(0); cc < 8; cc++ {
		cond := cc
		registerOp(&baseTable, 0xC4|cond<<3, func(c *CPU) int {
			target := c.fetchWord()
			if checkCond(c, cond) {
				from := c.regs.PC
				c.pushWord(c.regs.PC)
				c.regs.PC = target
				c.notifyCall(from, target)
				return 17
			}
			return 10
		})
	}
}

func registerRet() {
	registerOp(&baseTable, 0xC9, func(c *CPU) int {
		from := c.regs.PC
		target := c.popWord()
		c.regs.PC = target
		c.notifyReturn(from, target)
		return 10
	})
	for cc := uint8(0); cc < 8; cc++ {
		cond := cc
		registerOp(&baseTable, 0xC0|cond<<3, func(c *CPU) int {
			if checkCond(c, cond) {
				from := c.regs.PC
				target := c.popWord()
				c.regs.PC = target
				c.notifyReturn(from, target)
				return 11
			}
			return 5
		})
	}
}

// registerRST registers the eight fixed-page-zero call instructions.
func registerRST() {
	for n := uint8(0); n < 8; n++ {
		vector := n * 8
		registerOp(&baseTable, 0xC7|n<<3, func(c *CPU) int {
			from := c.regs.PC
			c.pushWord(c.regs.PC)
			c.regs.PC = uint16(vector)
			c.notifyCall(from, uint16(vector))
			return 11
		})
	}
}

// registerRetNI registers the ED-prefixed RETN/RETI: both pop PC the same
// way RET does; RETN additionally restores IFF1 from IFF2 (the interrupt
// state an NMI saved on entry). Real hardware treats every 0x55/0x5D/...
// slot in the ED table as an alias of RETN except 0x4D (RETI); this models
// only the two canonical encodings, 0x45 and 0x4D.
func registerRetNI() {
	registerOp(&edTable, 0x45, func(c *CPU) int {
		c.regs.IFF1 = c.regs.IFF2
		from := c.regs.PC
		target := c.popWord()
		c.regs.PC = target
		c.notifyReturn(from, target)
		return 14
	})
	registerOp(&edTable, 0x4D, func(c *CPU) int {
		from := c.regs.PC
		target := c.popWord()
		c.regs.PC = target
		c.notifyReturn(from, target)
		return 14
	})
}
