package z80

// Registers holds the programmer-visible state of the Z80: the primary and
// shadow 8-bit register sets, the two 16-bit index registers, the program
// counter and stack pointer, the interrupt vector/refresh registers, and the
// interrupt flip-flops / mode. Pairs are exposed through explicit accessors
// (GetBC/SetBC, ...) rather than an unsafe union, following the teacher's
// convention in registers.go/ea.go of plain shift-and-mask pair helpers.
type Registers struct {
	A, F, B, C, D, E, H, L uint8
	A2, F2, B2, C2, D2, E2, H2, L2 uint8 // shadow set, swapped by EX AF,AF' / EXX

	PC, SP uint16
	IX, IY uint16

	I uint8 // interrupt vector base (IM 2)
	R uint8 // memory refresh counter (7 bits + latched high bit)

	IFF1, IFF2 bool
	IM         uint8 // 0, 1, or 2

	Halted    bool
	EIHoldoff bool // set when EI retires; cleared after the next instruction
}

// GetAF returns the AF register pair.
func (r *Registers) GetAF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }

// SetAF sets the AF register pair.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = uint8(v)
}

// GetBC returns the BC register pair.
func (r *Registers) GetBC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }

// SetBC sets the BC register pair.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// GetDE returns the DE register pair.
func (r *Registers) GetDE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }

// SetDE sets the DE register pair.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// GetHL returns the HL register pair.
func (r *Registers) GetHL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetHL sets the HL register pair.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// GetAF2 returns the shadow AF' register pair.
func (r *Registers) GetAF2() uint16 { return uint16(r.A2)<<8 | uint16(r.F2) }

// SetAF2 sets the shadow AF' register pair.
func (r *Registers) SetAF2(v uint16) {
	r.A2 = uint8(v >> 8)
	r.F2 = uint8(v)
}

// GetBC2 returns the shadow BC' register pair.
func (r *Registers) GetBC2() uint16 { return uint16(r.B2)<<8 | uint16(r.C2) }

// SetBC2 sets the shadow BC' register pair.
func (r *Registers) SetBC2(v uint16) {
	r.B2 = uint8(v >> 8)
	r.C2 = uint8(v)
}

// GetDE2 returns the shadow DE' register pair.
func (r *Registers) GetDE2() uint16 { return uint16(r.D2)<<8 | uint16(r.E2) }

// SetDE2 sets the shadow DE' register pair.
func (r *Registers) SetDE2(v uint16) {
	r.D2 = uint8(v >> 8)
	r.E2 = uint8(v)
}

// GetHL2 returns the shadow HL' register pair.
func (r *Registers) GetHL2() uint16 { return uint16(r.H2)<<8 | uint16(r.L2) }

// SetHL2 sets the shadow HL' register pair.
func (r *Registers) SetHL2(v uint16) {
	r.H2 = uint8(v >> 8)
	r.L2 = uint8(v)
}

// IXH returns the high byte of IX (undocumented 8-bit half-index access).
func (r *Registers) IXH() uint8 { return uint8(r.IX >> 8) }

// IXL returns the low byte of IX.
func (r *Registers) IXL() uint8 { return uint8(r.IX) }

// SetIXH sets the high byte of IX.
func (r *Registers) SetIXH(v uint8) { r.IX = uint16(v)<<8 | (r.IX & 0x00FF) }

// SetIXL sets the low byte of IX.
func (r *Registers) SetIXL(v uint8) { r.IX = (r.IX & 0xFF00) | uint16(v) }

// IYH returns the high byte of IY.
func (r *Registers) IYH() uint8 { return uint8(r.IY >> 8) }

// IYL returns the low byte of IY.
func (r *Registers) IYL() uint8 { return uint8(r.IY) }

// SetIYH sets the high byte of IY.
func (r *Registers) SetIYH(v uint8) { r.IY = uint16(v)<<8 | (r.IY & 0x00FF) }

// SetIYL sets the low byte of IY.
func (r *Registers) SetIYL(v uint8) { r.IY = (r.IY & 0xFF00) | uint16(v) }

// exchangeAF swaps AF and AF'. An involution: applying twice is a no-op.
func (r *Registers) exchangeAF() {
	r.A, r.A2 = r.A2, r.A
	r.F, r.F2 = r.F2, r.F
}

// exchangeExx swaps BC/DE/HL with their shadow counterparts. An involution.
func (r *Registers) exchangeExx() {
	r.B, r.B2 = r.B2, r.B
	r.C, r.C2 = r.C2, r.C
	r.D, r.D2 = r.D2, r.D
	r.E, r.E2 = r.E2, r.E
	r.H, r.H2 = r.H2, r.H
	r.L, r.L2 = r.L2, r.L
}
