// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "testing"

func loadCPU(code []byte) *CPU {
	mem := NewFlatMemory()
	mem.StoreBytes(0, code)
	return NewCPU(mem)
}

func step(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}
}

func expectPC(t *testing.T, c *CPU, pc uint16) {
	t.Helper()
	if c.Reg.PC != pc {
		t.Errorf("PC incorrect. exp: $%04X, got: $%04X", pc, c.Reg.PC)
	}
}

func expectSP(t *testing.T, c *CPU, sp uint16) {
	t.Helper()
	if c.Reg.SP != sp {
		t.Errorf("SP incorrect. exp: $%04X, got: $%04X", sp, c.Reg.SP)
	}
}

func expectA(t *testing.T, c *CPU, a byte) {
	t.Helper()
	if c.Reg.A != a {
		t.Errorf("Accumulator incorrect. exp: $%02X, got: $%02X", a, c.Reg.A)
	}
}

func expectMem(t *testing.T, c *CPU, addr uint16, v byte) {
	t.Helper()
	if got := c.Mem.LoadByte(addr); got != v {
		t.Errorf("Memory at $%04X incorrect. exp: $%02X, got: $%02X", addr, v, got)
	}
}

func expectCycles(t *testing.T, c *CPU, cycles uint64) {
	t.Helper()
	if c.Cycles != cycles {
		t.Errorf("Cycles incorrect. exp: %d, got: %d", cycles, c.Cycles)
	}
}

func TestMoves(t *testing.T) {
	c := loadCPU([]byte{
		0x06, 0x42, // MVI B, $42
		0x48,       // MOV C, B
		0x21, 0x00, 0x30, // LXI H, $3000
		0x71, // MOV M, C
		0x7e, // MOV A, M
	})
	step(t, c, 5)

	if c.Reg.B != 0x42 || c.Reg.C != 0x42 {
		t.Errorf("MOV register chain incorrect. B: $%02X, C: $%02X", c.Reg.B, c.Reg.C)
	}
	expectMem(t, c, 0x3000, 0x42)
	expectA(t, c, 0x42)
	expectPC(t, c, 8)
	expectCycles(t, c, 7+5+10+7+7)
}

func TestLoadStore(t *testing.T) {
	c := loadCPU([]byte{
		0x3e, 0x99, // MVI A, $99
		0x32, 0x00, 0x40, // STA $4000
		0x3e, 0x00, // MVI A, $00
		0x3a, 0x00, 0x40, // LDA $4000
		0x21, 0x34, 0x12, // LXI H, $1234
		0x22, 0x10, 0x40, // SHLD $4010
		0x2a, 0x10, 0x40, // LHLD $4010
	})
	step(t, c, 7)

	expectMem(t, c, 0x4000, 0x99)
	expectA(t, c, 0x99)
	expectMem(t, c, 0x4010, 0x34)
	expectMem(t, c, 0x4011, 0x12)
	if c.Reg.HL() != 0x1234 {
		t.Errorf("LHLD incorrect. exp: $1234, got: $%04X", c.Reg.HL())
	}
}

func TestStaxLdax(t *testing.T) {
	c := loadCPU([]byte{
		0x01, 0x00, 0x25, // LXI B, $2500
		0x3e, 0x77, // MVI A, $77
		0x02,       // STAX B
		0x3e, 0x00, // MVI A, $00
		0x0a, // LDAX B
	})
	step(t, c, 5)

	expectMem(t, c, 0x2500, 0x77)
	expectA(t, c, 0x77)
}

func TestPushPop(t *testing.T) {
	c := loadCPU([]byte{
		0x01, 0x45, 0x23, // LXI B, $2345
		0xc5, // PUSH B
		0xd1, // POP D
	})
	step(t, c, 2)

	expectSP(t, c, 0x23fe)
	expectMem(t, c, 0x23ff, 0x23)
	expectMem(t, c, 0x23fe, 0x45)

	step(t, c, 1)
	expectSP(t, c, 0x2400)
	if c.Reg.DE() != 0x2345 {
		t.Errorf("POP D incorrect. exp: $2345, got: $%04X", c.Reg.DE())
	}
	expectMem(t, c, 0x23ff, 0x00)
	expectMem(t, c, 0x23fe, 0x00)
}

func TestPushPopPSW(t *testing.T) {
	c := loadCPU([]byte{
		0x3e, 0xff, // MVI A, $FF
		0xc6, 0x01, // ADI $01
		0xf5,       // PUSH PSW
		0x3e, 0x12, // MVI A, $12
		0x37, // STC (already set; keeps flags nonzero)
		0xf1, // POP PSW
	})
	step(t, c, 3)

	psw := c.Reg.SavePSW()
	expectMem(t, c, 0x23ff, 0x00)
	expectMem(t, c, 0x23fe, psw)

	step(t, c, 3)
	expectA(t, c, 0x00)
	expectPSW(t, &c.Reg, psw)
}

func TestCall(t *testing.T) {
	c := loadCPU([]byte{
		0x00, 0x00, 0x00, 0x00, // NOP x4
		0xcd, 0xd4, 0xc3, // CALL $C3D4
	})
	step(t, c, 5)

	expectPC(t, c, 0xc3d4)
	expectSP(t, c, 0x23fe)
	expectMem(t, c, 0x23ff, 0x00)
	expectMem(t, c, 0x23fe, 0x07)
}

func TestCallRet(t *testing.T) {
	c := loadCPU([]byte{
		0xcd, 0x10, 0x00, // CALL $0010
		0x76, // HLT
	})
	c.Mem.StoreBytes(0x0010, []byte{
		0x3e, 0x5a, // MVI A, $5A
		0xc9, // RET
	})
	step(t, c, 3)

	expectPC(t, c, 0x0003)
	expectSP(t, c, 0x2400)
	expectA(t, c, 0x5a)
}

func TestConditionalJump(t *testing.T) {
	c := loadCPU([]byte{
		0x3e, 0x01, // MVI A, $01
		0x3d,             // DCR A
		0xc2, 0x00, 0x20, // JNZ $2000 (not taken)
		0xca, 0x00, 0x30, // JZ $3000 (taken)
	})
	step(t, c, 3)
	expectPC(t, c, 6)

	step(t, c, 1)
	expectPC(t, c, 0x3000)
	expectCycles(t, c, 7+5+10+10)
}

func TestConditionalCallRet(t *testing.T) {
	c := loadCPU([]byte{
		0x37,             // STC
		0xd4, 0x00, 0x20, // CNC $2000 (not taken)
		0xdc, 0x10, 0x00, // CC $0010 (taken)
	})
	c.Mem.StoreBytes(0x0010, []byte{
		0xd0, // RNC (not taken)
		0xd8, // RC (taken)
	})
	step(t, c, 3)
	expectPC(t, c, 0x0010)

	step(t, c, 2)
	expectPC(t, c, 0x0007)
	expectSP(t, c, 0x2400)
}

func TestRstAndInterrupt(t *testing.T) {
	c := loadCPU([]byte{
		0xfb, // EI
		0x00, // NOP
	})
	step(t, c, 2)

	c.GenerateInterrupt(0xd7) // RST 2
	expectPC(t, c, 0x0010)
	expectSP(t, c, 0x23fe)
	expectMem(t, c, 0x23ff, 0x00)
	expectMem(t, c, 0x23fe, 0x02)
}

func TestInterruptDisabled(t *testing.T) {
	c := loadCPU([]byte{
		0xf3, // DI
	})
	step(t, c, 1)

	c.GenerateInterrupt(0xcf)
	expectPC(t, c, 0x0001)
	expectSP(t, c, 0x2400)
}

func TestHalt(t *testing.T) {
	c := loadCPU([]byte{
		0x76, // HLT
	})
	step(t, c, 1)

	if !c.Halted {
		t.Error("HLT should halt the CPU")
	}

	pc := c.Reg.PC
	step(t, c, 1)
	expectPC(t, c, pc)
}

func TestUnimplementedOpcode(t *testing.T) {
	c := loadCPU([]byte{
		0x00, // NOP
		0x08, // unassigned
	})
	step(t, c, 1)

	err := c.Step()
	if err == nil {
		t.Fatal("expected an error stepping an unassigned opcode")
	}
	uerr, ok := err.(*UnimplementedOpcodeError)
	if !ok {
		t.Fatalf("expected UnimplementedOpcodeError, got: %v", err)
	}
	if uerr.Opcode != 0x08 || uerr.Addr != 0x0001 {
		t.Errorf("error details incorrect. got opcode $%02X at $%04X", uerr.Opcode, uerr.Addr)
	}
	expectPC(t, c, 0x0001)
	expectCycles(t, c, 4)
}

type testBus struct {
	inPort   byte
	outPort  byte
	outValue byte
}

func (b *testBus) In(port byte) byte {
	b.inPort = port
	return 0xa5
}

func (b *testBus) Out(port byte, v byte) {
	b.outPort = port
	b.outValue = v
}

func TestInOut(t *testing.T) {
	c := loadCPU([]byte{
		0xdb, 0x02, // IN 2
		0xd3, 0x04, // OUT 4
	})
	bus := &testBus{}
	c.AttachIOBus(bus)
	step(t, c, 2)

	if bus.inPort != 2 {
		t.Errorf("IN port incorrect. exp: 2, got: %d", bus.inPort)
	}
	expectA(t, c, 0xa5)
	if bus.outPort != 4 || bus.outValue != 0xa5 {
		t.Errorf("OUT incorrect. got port %d value $%02X", bus.outPort, bus.outValue)
	}
	expectPC(t, c, 4)
}

func TestInWithoutBus(t *testing.T) {
	c := loadCPU([]byte{
		0x3e, 0xff, // MVI A, $FF
		0xdb, 0x01, // IN 1
	})
	step(t, c, 2)
	expectA(t, c, 0x00)
}

func TestExchanges(t *testing.T) {
	c := loadCPU([]byte{
		0x11, 0x34, 0x12, // LXI D, $1234
		0x21, 0x78, 0x56, // LXI H, $5678
		0xeb, // XCHG
		0x31, 0x00, 0x24, // LXI SP, $2400
		0xe5, // PUSH H
		0x21, 0xcd, 0xab, // LXI H, $ABCD
		0xe3, // XTHL
	})
	step(t, c, 3)

	if c.Reg.DE() != 0x5678 || c.Reg.HL() != 0x1234 {
		t.Errorf("XCHG incorrect. DE: $%04X, HL: $%04X", c.Reg.DE(), c.Reg.HL())
	}

	step(t, c, 4)
	if c.Reg.HL() != 0x1234 {
		t.Errorf("XTHL HL incorrect. exp: $1234, got: $%04X", c.Reg.HL())
	}
	expectMem(t, c, 0x23fe, 0xcd)
	expectMem(t, c, 0x23ff, 0xab)
}

func TestPchlSphl(t *testing.T) {
	c := loadCPU([]byte{
		0x21, 0x00, 0x31, // LXI H, $3100
		0xf9, // SPHL
		0xe9, // PCHL
	})
	step(t, c, 3)

	expectSP(t, c, 0x3100)
	expectPC(t, c, 0x3100)
}

func TestDadH(t *testing.T) {
	c := loadCPU([]byte{
		0x21, 0x34, 0x12, // LXI H, $1234
		0x29, // DAD H
	})
	step(t, c, 2)

	if c.Reg.HL() != 0x2468 {
		t.Errorf("DAD H incorrect. exp: $2468, got: $%04X", c.Reg.HL())
	}
}

func TestMemoryOperands(t *testing.T) {
	c := loadCPU([]byte{
		0x21, 0x00, 0x28, // LXI H, $2800
		0x36, 0x10, // MVI M, $10
		0x34,       // INR M
		0x3e, 0x02, // MVI A, $02
		0x86, // ADD M
	})
	step(t, c, 5)

	expectMem(t, c, 0x2800, 0x11)
	expectA(t, c, 0x13)
}

func TestInstructionSetComplete(t *testing.T) {
	set := GetInstructionSet()
	for i := 0; i < 256; i++ {
		inst := set.Lookup(byte(i))
		if inst.Length < 1 || inst.Length > 3 {
			t.Errorf("opcode $%02X has invalid length %d", i, inst.Length)
		}
		if inst.Cycles == 0 {
			t.Errorf("opcode $%02X has no cycle count", i)
		}
		if inst.fn == nil && inst.Name != "?" {
			t.Errorf("opcode $%02X has no implementation", i)
		}
	}
}
