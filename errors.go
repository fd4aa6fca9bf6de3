package z80

import "fmt"

// opcodeGroup names the prefix context an unrecognized opcode byte was
// found in, used only to format InvalidOpcodeError's message.
type opcodeGroup uint8

const (
	opcodeGroupBase opcodeGroup = iota
	opcodeGroupCB
	opcodeGroupED
	opcodeGroupDD
	opcodeGroupFD
	opcodeGroupDDCB
	opcodeGroupFDCB
)

func (g opcodeGroup) prefix() string {
	switch g {
	case opcodeGroupCB:
		return "CB"
	case opcodeGroupED:
		return "ED"
	case opcodeGroupDD:
		return "DD"
	case opcodeGroupFD:
		return "FD"
	case opcodeGroupDDCB:
		return "DDCB"
	case opcodeGroupFDCB:
		return "FDCB"
	default:
		return "none"
	}
}

// InvalidOpcodeError is returned by Execute when the decoder reaches an
// opcode byte combination the Z80 never defines. It is recoverable: PC is
// left at the first byte (prefix included) of the faulting instruction, the
// rest of the visible state (flags, R) is left exactly as the partial fetch
// left it, and the host may resume execution at a different PC if it wishes.
type InvalidOpcodeError struct {
	Group  string
	Opcode uint8
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("detect an unknown operand (%s,%02X)", e.Group, e.Opcode)
}

func (c *CPU) invalidOpcode(group opcodeGroup, opcode uint8) error {
	return &InvalidOpcodeError{Group: group.prefix(), Opcode: opcode}
}

// invalidRegisterEncoding panics: reaching here means a handler computed a
// 3-bit register index outside 0-7, which can only happen from a bug in
// the decoder itself, not from any sequence of bytes a host could supply.
func invalidRegisterEncoding(idx uint8) {
	panic(fmt.Sprintf("z80: invalid register encoding %d", idx))
}
