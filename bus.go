package z80

// Bus provides the memory and I/O surface the CPU core reads and writes
// through. The core never owns memory layout or device mapping: it sees a
// flat 16-bit address space and a port space serviced entirely by these
// four callbacks, supplied by the host.
type Bus interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, val uint8)
	InPort(port uint16) uint8
	OutPort(port uint16, val uint8)
}

// Bus16 is optionally implemented by a Bus that wants the full composed
// 16-bit port address for block I/O (INI/INIR/IND/INDR/OUTI/OTIR/OUTD/OTDR),
// where the Z80 places B on the address bus's high byte. The CPU type-
// asserts for this capability once at construction time, mirroring the
// optional-capability pattern the teacher uses for its CycleBus interface.
type Bus16 interface {
	Bus
	InPort16(port uint16) uint8
	OutPort16(port uint16, val uint8)
}

// WaitStates models additive wait-state inflation used to emulate hosts
// with slower memory or bus contention (e.g. MSX-like machines). Values may
// be negative within reason; they are simply added to the base T-state
// count of the access they apply to.
type WaitStates struct {
	Fetch  int // added to every M1 (opcode/prefix) fetch
	FetchM int // added to every M1 fetch, separate knob for machines that split fetch cost further
	Mem    int // added to every non-M1 memory access
}
