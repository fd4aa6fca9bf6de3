package z80

import "testing"

// testBus is a flat 64K byte array plus a 256-entry port space, the
// simplest possible host Bus implementation.
type testBus struct {
	mem   [65536]uint8
	ports [256]uint8
}

func (b *testBus) ReadByte(addr uint16) uint8     { return b.mem[addr] }
func (b *testBus) WriteByte(addr uint16, v uint8) { b.mem[addr] = v }
func (b *testBus) InPort(port uint16) uint8       { return b.ports[uint8(port)] }
func (b *testBus) OutPort(port uint16, v uint8)   { b.ports[uint8(port)] = v }

func newTestCPU(prog ...uint8) (*CPU, *testBus) {
	bus := &testBus{}
	copy(bus.mem[:], prog)
	return New(bus), bus
}

func TestResetState(t *testing.T) {
	c, _ := newTestCPU()
	r := c.Registers()
	if r.PC != 0 {
		t.Fatalf("PC after reset = %04X, want 0", r.PC)
	}
	if r.SP != 0xFFFF {
		t.Fatalf("SP after reset = %04X, want FFFF", r.SP)
	}
	if r.IFF1 || r.IFF2 {
		t.Fatalf("IFF1/IFF2 after reset should be false")
	}
	if r.IM != 0 {
		t.Fatalf("IM after reset = %d, want 0", r.IM)
	}
}

func TestNOPCycles(t *testing.T) {
	c, _ := newTestCPU(0x00, 0x00, 0x00)
	spent, err := c.Execute(12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spent != 12 {
		t.Fatalf("spent = %d, want 12", spent)
	}
	if c.Registers().PC != 3 {
		t.Fatalf("PC = %d, want 3", c.Registers().PC)
	}
}

func TestLDRegisterRegisterRoundTrip(t *testing.T) {
	// LD B,A ; LD A,B
	c, _ := newTestCPU(0x47, 0x78)
	r := c.Registers()
	r.A = 0x5A
	c.SetRegisters(r)
	if _, err := c.Execute(8); err != nil {
		t.Fatal(err)
	}
	if c.Registers().A != 0x5A {
		t.Fatalf("A after round trip = %02X, want 5A", c.Registers().A)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	// PUSH BC ; POP DE
	c, _ := newTestCPU(0xC5, 0xD1)
	r := c.Registers()
	r.SetBC(0x1234)
	c.SetRegisters(r)
	if _, err := c.Execute(21); err != nil {
		t.Fatal(err)
	}
	got := c.Registers()
	if got.GetDE() != 0x1234 {
		t.Fatalf("DE after PUSH BC/POP DE = %04X, want 1234", got.GetDE())
	}
}

func TestExAFInvolution(t *testing.T) {
	c, _ := newTestCPU(0x08, 0x08)
	r := c.Registers()
	r.SetAF(0x1234)
	r.SetAF2(0x5678)
	c.SetRegisters(r)
	if _, err := c.Execute(8); err != nil {
		t.Fatal(err)
	}
	got := c.Registers()
	if got.GetAF() != 0x1234 || got.GetAF2() != 0x5678 {
		t.Fatalf("EX AF,AF' twice = %04X/%04X, want 1234/5678", got.GetAF(), got.GetAF2())
	}
}

func TestExxInvolution(t *testing.T) {
	c, _ := newTestCPU(0xD9, 0xD9)
	r := c.Registers()
	r.SetBC(0x1111)
	r.SetDE(0x2222)
	r.SetHL(0x3333)
	r.SetBC2(0x4444)
	r.SetDE2(0x5555)
	r.SetHL2(0x6666)
	c.SetRegisters(r)
	if _, err := c.Execute(8); err != nil {
		t.Fatal(err)
	}
	got := c.Registers()
	if got.GetBC() != 0x1111 || got.GetDE() != 0x2222 || got.GetHL() != 0x3333 {
		t.Fatalf("EXX twice did not restore primary set: %+v", got)
	}
}

func TestHaltParksPC(t *testing.T) {
	c, _ := newTestCPU(0x76)
	if _, err := c.Execute(40); err != nil {
		t.Fatal(err)
	}
	if !c.Halted() {
		t.Fatalf("expected halted state")
	}
	if c.Registers().PC != 1 {
		t.Fatalf("PC drifted while halted: %04X", c.Registers().PC)
	}
}

func TestInvalidOpcodeStopsExecute(t *testing.T) {
	// 0xED 0xFF is not a defined ED-prefixed opcode.
	c, _ := newTestCPU(0xED, 0xFF)
	spent, err := c.Execute(100)
	if err == nil {
		t.Fatalf("expected InvalidOpcodeError")
	}
	ioe, ok := err.(*InvalidOpcodeError)
	if !ok {
		t.Fatalf("error type = %T, want *InvalidOpcodeError", err)
	}
	if ioe.Group != "ED" || ioe.Opcode != 0xFF {
		t.Fatalf("error = %+v, want Group=ED Opcode=FF", ioe)
	}
	if spent != 0 {
		t.Fatalf("spent = %d, want 0 on a faulting instruction", spent)
	}
}

func TestIXHIXLUndocumentedAccess(t *testing.T) {
	// DD 26 nn: LD IXH,n ; DD 2E nn: LD IXL,n
	c, _ := newTestCPU(0xDD, 0x26, 0x12, 0xDD, 0x2E, 0x34)
	if _, err := c.Execute(22); err != nil {
		t.Fatal(err)
	}
	if c.Registers().IX != 0x1234 {
		t.Fatalf("IX = %04X, want 1234", c.Registers().IX)
	}
}

func TestInterruptModeOneAcceptance(t *testing.T) {
	c, _ := newTestCPU(0x00, 0x00, 0x00, 0x00)
	r := c.Registers()
	r.IFF1 = true
	r.IM = 1
	c.SetRegisters(r)
	c.GenerateIRQ(0xFF)
	if _, err := c.Execute(13); err != nil {
		t.Fatal(err)
	}
	got := c.Registers()
	if got.PC != 0x0038 {
		t.Fatalf("PC after IM1 acceptance = %04X, want 0038", got.PC)
	}
	if got.IFF1 {
		t.Fatalf("IFF1 should be cleared after interrupt acceptance")
	}
}

func TestEIHoldoff(t *testing.T) {
	// EI ; NOP (the instruction immediately after EI must run with
	// interrupts still effectively masked for that one instruction).
	c, _ := newTestCPU(0xFB, 0x00, 0x00)
	c.GenerateIRQ(0xFF)
	if _, err := c.Execute(4); err != nil {
		t.Fatal(err)
	}
	if c.Registers().PC != 1 {
		t.Fatalf("EI should not itself accept the pending interrupt")
	}
	if _, err := c.Execute(4); err != nil {
		t.Fatal(err)
	}
	if c.Registers().PC != 2 {
		t.Fatalf("the instruction right after EI must run before the interrupt is taken, PC=%04X", c.Registers().PC)
	}
}

func TestNMIIgnoresIFF1(t *testing.T) {
	c, _ := newTestCPU(0x00)
	r := c.Registers()
	r.IFF1 = false
	c.SetRegisters(r)
	c.GenerateNMI()
	if _, err := c.Execute(11); err != nil {
		t.Fatal(err)
	}
	if c.Registers().PC != 0x0066 {
		t.Fatalf("PC after NMI = %04X, want 0066", c.Registers().PC)
	}
}

func TestIndexedALUTiming(t *testing.T) {
	// LD IX,0x2000 ; ADD A,(IX+0)
	c, bus := newTestCPU(0xDD, 0x21, 0x00, 0x20, 0xDD, 0x86, 0x00)
	bus.mem[0x2000] = 0x01
	spent, err := c.Execute(14 + 19)
	if err != nil {
		t.Fatal(err)
	}
	if spent != 14+19 {
		t.Fatalf("spent = %d, want %d (ADD A,(IX+d) costs 19)", spent, 14+19)
	}
	if c.Registers().A != 0x01 {
		t.Fatalf("A after ADD A,(IX+0) = %02X, want 01", c.Registers().A)
	}
}

func TestIndexedLDTiming(t *testing.T) {
	// LD IX,0x2000 ; LD B,(IX+0)
	c, bus := newTestCPU(0xDD, 0x21, 0x00, 0x20, 0xDD, 0x46, 0x00)
	bus.mem[0x2000] = 0x7F
	spent, err := c.Execute(14 + 19)
	if err != nil {
		t.Fatal(err)
	}
	if spent != 14+19 {
		t.Fatalf("spent = %d, want %d (LD r,(IX+d) costs 19)", spent, 14+19)
	}
	if c.Registers().B != 0x7F {
		t.Fatalf("B after LD B,(IX+0) = %02X, want 7F", c.Registers().B)
	}
}

func TestIndexedLDImmTiming(t *testing.T) {
	// LD IX,0x2000 ; LD (IX+0),0x42
	c, bus := newTestCPU(0xDD, 0x21, 0x00, 0x20, 0xDD, 0x36, 0x00, 0x42)
	spent, err := c.Execute(14 + 19)
	if err != nil {
		t.Fatal(err)
	}
	if spent != 14+19 {
		t.Fatalf("spent = %d, want %d (LD (IX+d),n costs 19)", spent, 14+19)
	}
	if bus.mem[0x2000] != 0x42 {
		t.Fatalf("mem[0x2000] = %02X, want 42", bus.mem[0x2000])
	}
}

func TestJPIndirectIndexedTiming(t *testing.T) {
	// LD IX,0x2000 ; JP (IX)
	c, _ := newTestCPU(0xDD, 0x21, 0x00, 0x20, 0xDD, 0xE9)
	spent, err := c.Execute(14 + 8)
	if err != nil {
		t.Fatal(err)
	}
	if spent != 14+8 {
		t.Fatalf("spent = %d, want %d (JP (IX) costs 8)", spent, 14+8)
	}
	if c.Registers().PC != 0x2000 {
		t.Fatalf("PC after JP (IX) = %04X, want 2000", c.Registers().PC)
	}
}

func TestLDSPIXTiming(t *testing.T) {
	// LD IX,0x3000 ; LD SP,IX
	c, _ := newTestCPU(0xDD, 0x21, 0x00, 0x30, 0xDD, 0xF9)
	spent, err := c.Execute(14 + 10)
	if err != nil {
		t.Fatal(err)
	}
	if spent != 14+10 {
		t.Fatalf("spent = %d, want %d (LD SP,IX costs 10)", spent, 14+10)
	}
	if c.Registers().SP != 0x3000 {
		t.Fatalf("SP after LD SP,IX = %04X, want 3000", c.Registers().SP)
	}
}

func TestBreakOnOpcodeStopsAfterMatch(t *testing.T) {
	// NOP ; HALT
	c, _ := newTestCPU(0x00, 0x76)
	c.BreakOnOpcode("none", 0x00)
	spent, err := c.Execute(100)
	if err != nil {
		t.Fatal(err)
	}
	if spent != 4 {
		t.Fatalf("spent = %d, want 4 (stopped right after the matched NOP)", spent)
	}
	if c.Registers().PC != 1 {
		t.Fatalf("PC after break-on-opcode = %04X, want 1", c.Registers().PC)
	}
}

func TestRemoveAllBreakpoints(t *testing.T) {
	c, _ := newTestCPU(0x00, 0x00, 0x00)
	c.AddBreakpoint(0x0001)
	c.RemoveAllBreakpoints()
	spent, err := c.Execute(12)
	if err != nil {
		t.Fatal(err)
	}
	if spent != 12 {
		t.Fatalf("spent = %d, want 12 (breakpoint should no longer fire)", spent)
	}
}

func TestSixteenBitAddressWrap(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0xFFFF] = 0x23 // INC HL
	r := c.Registers()
	r.PC = 0xFFFF
	r.SetHL(0xFFFF)
	c.SetRegisters(r)
	if _, err := c.Execute(6); err != nil {
		t.Fatal(err)
	}
	got := c.Registers()
	if got.PC != 0 {
		t.Fatalf("PC after fetch at FFFF = %04X, want wraparound to 0000", got.PC)
	}
	if got.GetHL() != 0 {
		t.Fatalf("HL after INC HL at FFFF = %04X, want wraparound to 0000", got.GetHL())
	}
}
