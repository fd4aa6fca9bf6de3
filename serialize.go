package z80

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 43

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the full CPU state into buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small.
// The bus and bus16 references are not included.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("z80: serialize buffer too small")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	regBytes := []uint8{
		c.regs.A, c.regs.F, c.regs.B, c.regs.C, c.regs.D, c.regs.E, c.regs.H, c.regs.L,
		c.regs.A2, c.regs.F2, c.regs.B2, c.regs.C2, c.regs.D2, c.regs.E2, c.regs.H2, c.regs.L2,
	}
	copy(buf[off:], regBytes)
	off += len(regBytes)

	be.PutUint16(buf[off:], c.regs.PC)
	off += 2
	be.PutUint16(buf[off:], c.regs.SP)
	off += 2
	be.PutUint16(buf[off:], c.regs.IX)
	off += 2
	be.PutUint16(buf[off:], c.regs.IY)
	off += 2

	buf[off] = c.regs.I
	off++
	buf[off] = c.regs.R
	off++

	buf[off] = boolByte(c.regs.IFF1)
	off++
	buf[off] = boolByte(c.regs.IFF2)
	off++
	buf[off] = c.regs.IM
	off++
	buf[off] = boolByte(c.regs.Halted)
	off++
	buf[off] = boolByte(c.regs.EIHoldoff)
	off++

	be.PutUint64(buf[off:], c.cycles)
	off += 8

	buf[off] = boolByte(c.nmiPending)
	off++
	buf[off] = boolByte(c.irqLine)
	off++
	buf[off] = c.irqVector
	off++

	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small or the
// version does not match. The bus and bus16 fields are left unchanged.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("z80: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("z80: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	c.regs.A, c.regs.F, c.regs.B, c.regs.C = buf[off], buf[off+1], buf[off+2], buf[off+3]
	c.regs.D, c.regs.E, c.regs.H, c.regs.L = buf[off+4], buf[off+5], buf[off+6], buf[off+7]
	off += 8
	c.regs.A2, c.regs.F2, c.regs.B2, c.regs.C2 = buf[off], buf[off+1], buf[off+2], buf[off+3]
	c.regs.D2, c.regs.E2, c.regs.H2, c.regs.L2 = buf[off+4], buf[off+5], buf[off+6], buf[off+7]
	off += 8

	c.regs.PC = be.Uint16(buf[off:])
	off += 2
	c.regs.SP = be.Uint16(buf[off:])
	off += 2
	c.regs.IX = be.Uint16(buf[off:])
	off += 2
	c.regs.IY = be.Uint16(buf[off:])
	off += 2

	c.regs.I = buf[off]
	off++
	c.regs.R = buf[off]
	off++

	c.regs.IFF1 = buf[off] != 0
	off++
	c.regs.IFF2 = buf[off] != 0
	off++
	c.regs.IM = buf[off]
	off++
	c.regs.Halted = buf[off] != 0
	off++
	c.regs.EIHoldoff = buf[off] != 0
	off++

	c.cycles = be.Uint64(buf[off:])
	off += 8

	c.nmiPending = buf[off] != 0
	off++
	c.irqLine = buf[off] != 0
	off++
	c.irqVector = buf[off]
	off++

	return nil
}
