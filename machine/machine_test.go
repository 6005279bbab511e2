// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package machine

import "testing"

func TestShiftRegister(t *testing.T) {
	p := NewPorts()

	p.Out(4, 0xff)
	p.Out(4, 0xee)
	p.Out(4, 0xaa)
	if p.shiftReg != 0xaaee {
		t.Errorf("shift register incorrect. exp: $AAEE, got: $%04X", p.shiftReg)
	}

	p.Out(2, 0)
	if got := p.In(3); got != 0xaa {
		t.Errorf("unshifted read incorrect. exp: $AA, got: $%02X", got)
	}
}

func TestShiftRegisterOffset(t *testing.T) {
	p := NewPorts()
	p.shiftReg = 0x1fe0

	p.Out(2, 3)
	if got := p.In(3); got != 0xff {
		t.Errorf("shifted read incorrect. exp: $FF, got: $%02X", got)
	}

	// Only the low 3 bits of the shift amount matter.
	p.Out(2, 0x0b)
	if got := p.In(3); got != 0xff {
		t.Errorf("masked shift amount read incorrect. exp: $FF, got: $%02X", got)
	}
}

func TestButtons(t *testing.T) {
	p := NewPorts()

	if got := p.In(1); got != port1Always {
		t.Errorf("idle input port 1 incorrect. exp: $%02X, got: $%02X", port1Always, got)
	}

	p.SetButton(ButtonCoin, true)
	p.SetButton(ButtonP1Shoot, true)
	want := byte(port1Always | port1Coin | port1P1Shoot)
	if got := p.In(1); got != want {
		t.Errorf("input port 1 incorrect. exp: $%02X, got: $%02X", want, got)
	}

	p.SetButton(ButtonCoin, false)
	want = port1Always | port1P1Shoot
	if got := p.In(1); got != want {
		t.Errorf("input port 1 after release incorrect. exp: $%02X, got: $%02X", want, got)
	}

	p.SetButton(ButtonP2Left, true)
	if got := p.In(2); got != port2P2Left {
		t.Errorf("input port 2 incorrect. exp: $%02X, got: $%02X", port2P2Left, got)
	}
}

func TestLivesSwitches(t *testing.T) {
	p := NewPorts()

	p.SetLives(5)
	if got := p.In(2) & 0x03; got != 2 {
		t.Errorf("lives switches incorrect. exp: 2, got: %d", got)
	}

	p.SetLives(99)
	if got := p.In(2) & 0x03; got != 3 {
		t.Errorf("lives switches should clamp to 6. got: %d", got)
	}
}

func TestUnmappedPorts(t *testing.T) {
	p := NewPorts()
	if got := p.In(7); got != 0 {
		t.Errorf("unmapped port read incorrect. exp: 0, got: $%02X", got)
	}
	p.Out(9, 0xff) // must not panic
}

func TestMemoryMirror(t *testing.T) {
	m := NewMemory()

	m.StoreByte(0x2000, 0x42)
	if got := m.LoadByte(0x6000); got != 0x42 {
		t.Errorf("mirrored read incorrect. exp: $42, got: $%02X", got)
	}

	m.StoreByte(0xe001, 0x77)
	if got := m.LoadByte(0x2001); got != 0x77 {
		t.Errorf("mirrored write incorrect. exp: $77, got: $%02X", got)
	}
}

func TestLoadROM(t *testing.T) {
	m := NewMemory()

	if err := m.LoadROM([]byte{1, 2, 3}, 0x0800); err != nil {
		t.Fatalf("LoadROM failed: %v", err)
	}
	if m.LoadByte(0x0801) != 2 {
		t.Error("ROM image not loaded at requested base")
	}

	if err := m.LoadROM(make([]byte, 16), 0x1ff8); err == nil {
		t.Error("LoadROM should reject images extending past the ROM region")
	}
}

func TestVideoRAM(t *testing.T) {
	m := NewMemory()
	m.StoreByte(VideoBase, 0xa5)
	m.StoreByte(VideoBase+VideoSize-1, 0x5a)

	v := m.VideoRAM()
	if len(v) != VideoSize {
		t.Fatalf("video RAM size incorrect. exp: %d, got: %d", VideoSize, len(v))
	}
	if v[0] != 0xa5 || v[VideoSize-1] != 0x5a {
		t.Error("video RAM does not alias the frame buffer region")
	}
}

func TestFrameInterrupts(t *testing.T) {
	m := New()

	// EI, then loop forever. Interrupt handlers at $08 and $10 count
	// their invocations in RAM and return.
	err := m.LoadROM([]byte{
		0xfb,             // EI
		0xc3, 0x01, 0x00, // JMP $0001
	}, 0)
	if err != nil {
		t.Fatalf("LoadROM failed: %v", err)
	}
	m.Mem.StoreBytes(0x0008, []byte{
		0x21, 0x00, 0x20, // LXI H, $2000
		0x34, // INR M
		0xfb, // EI
		0xc9, // RET
	})
	m.Mem.StoreBytes(0x0010, []byte{
		0x21, 0x01, 0x20, // LXI H, $2001
		0x34, // INR M
		0xfb, // EI
		0xc9, // RET
	})

	// The vblank handler dispatched at the end of a frame runs during
	// the following frame, so emulate two frames.
	for i := 0; i < 2; i++ {
		if err := m.StepFrame(); err != nil {
			t.Fatalf("StepFrame failed: %v", err)
		}
	}

	if got := m.Mem.LoadByte(0x2000); got != 2 {
		t.Errorf("mid-screen interrupt count incorrect. exp: 2, got: %d", got)
	}
	if got := m.Mem.LoadByte(0x2001); got != 1 {
		t.Errorf("vblank interrupt count incorrect. exp: 1, got: %d", got)
	}
	if m.CPU.Cycles < 2*CyclesPerFrame {
		t.Errorf("frames consumed too few cycles: %d", m.CPU.Cycles)
	}
}

func TestDiagnosticSignal(t *testing.T) {
	m := New()

	err := m.LoadROM([]byte{
		0x3e, 0x01, // MVI A, $01
		0xd3, 0x00, // OUT 0
		0xc3, 0x04, 0x00, // JMP $0004
	}, 0)
	if err != nil {
		t.Fatalf("LoadROM failed: %v", err)
	}

	if err := m.StepFrame(); err != nil {
		t.Fatalf("StepFrame failed: %v", err)
	}
	if !m.Done() {
		t.Error("write to port 0 should stop the machine")
	}
}

func TestMachineShiftThroughCPU(t *testing.T) {
	m := New()

	err := m.LoadROM([]byte{
		0x3e, 0xff, // MVI A, $FF
		0xd3, 0x04, // OUT 4 (shift data)
		0x3e, 0xee, // MVI A, $EE
		0xd3, 0x04, // OUT 4
		0x3e, 0x04, // MVI A, $04
		0xd3, 0x02, // OUT 2 (shift amount)
		0xdb, 0x03, // IN 3 (shift result)
		0x76, // HLT
	}, 0)
	if err != nil {
		t.Fatalf("LoadROM failed: %v", err)
	}

	for !m.Done() {
		if err := m.CPU.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	// Register holds $EEFF; reading 4 bits down from the top yields $EF.
	if m.CPU.Reg.A != 0xef {
		t.Errorf("shift result incorrect. exp: $EF, got: $%02X", m.CPU.Reg.A)
	}
}
