// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Registers contains the state of all 8080 registers.
type Registers struct {
	A        byte   // accumulator
	B        byte   // general purpose register B
	C        byte   // general purpose register C
	D        byte   // general purpose register D
	E        byte   // general purpose register E
	H        byte   // high byte of the HL memory pointer
	L        byte   // low byte of the HL memory pointer
	SP       uint16 // stack pointer
	PC       uint16 // program counter
	Sign     bool   // PSW: Sign bit
	Zero     bool   // PSW: Zero bit
	AuxCarry bool   // PSW: Auxiliary carry bit (never computed)
	Parity   bool   // PSW: Parity bit
	Carry    bool   // PSW: Carry bit
}

// Bits assigned to the processor status word. Bits 1, 3 and 5 are
// reserved and always stored as zero.
const (
	CarryBit    = 1 << 0
	ParityBit   = 1 << 2
	AuxCarryBit = 1 << 4
	ZeroBit     = 1 << 6
	SignBit     = 1 << 7
)

// SavePSW saves the CPU flags into a processor status word byte.
func (r *Registers) SavePSW() byte {
	var psw byte
	if r.Carry {
		psw |= CarryBit
	}
	if r.Parity {
		psw |= ParityBit
	}
	if r.AuxCarry {
		psw |= AuxCarryBit
	}
	if r.Zero {
		psw |= ZeroBit
	}
	if r.Sign {
		psw |= SignBit
	}
	return psw
}

// RestorePSW restores the CPU flags from a processor status word byte.
// The reserved bits are ignored.
func (r *Registers) RestorePSW(psw byte) {
	r.Carry = ((psw & CarryBit) != 0)
	r.Parity = ((psw & ParityBit) != 0)
	r.AuxCarry = ((psw & AuxCarryBit) != 0)
	r.Zero = ((psw & ZeroBit) != 0)
	r.Sign = ((psw & SignBit) != 0)
}

// BC returns the B and C registers combined into a 16-bit register pair.
func (r *Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC stores a 16-bit value into the B and C registers.
func (r *Registers) SetBC(v uint16) {
	r.B, r.C = byte(v>>8), byte(v)
}

// DE returns the D and E registers combined into a 16-bit register pair.
func (r *Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE stores a 16-bit value into the D and E registers.
func (r *Registers) SetDE(v uint16) {
	r.D, r.E = byte(v>>8), byte(v)
}

// HL returns the H and L registers combined into a 16-bit register pair.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL stores a 16-bit value into the H and L registers.
func (r *Registers) SetHL(v uint16) {
	r.H, r.L = byte(v>>8), byte(v)
}

func boolToByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// Init initializes all registers. A through L = 0. SP = 0x2400, the top
// of working RAM; the stack grows downward from there. PC = 0. PSW = 0.
func (r *Registers) Init() {
	r.A = 0
	r.B = 0
	r.C = 0
	r.D = 0
	r.E = 0
	r.H = 0
	r.L = 0
	r.SP = 0x2400
	r.PC = 0
	r.RestorePSW(0)
}
