// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements an Intel 8080 CPU emulator suitable for driving
// the Space Invaders arcade hardware.
package cpu

import "fmt"

// An IOBus handles the CPU's IN and OUT instructions. The attached machine
// decides what each port number means.
type IOBus interface {
	In(port byte) byte
	Out(port byte, v byte)
}

// UnimplementedOpcodeError is returned by Step when the CPU fetches one of
// the opcodes left unassigned by the 8080 instruction set. The CPU's state
// is left untouched, so the program counter still addresses the offending
// opcode.
type UnimplementedOpcodeError struct {
	Opcode byte
	Addr   uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode $%02X at $%04X", e.Opcode, e.Addr)
}

// CPU represents a single Intel 8080 processor. It contains the register
// file and references the memory and I/O bus it operates on.
type CPU struct {
	Reg              Registers // registers and condition flags
	Mem              Memory    // assigned memory
	Cycles           uint64    // total cycles consumed since reset
	LastPC           uint16    // address of the last executed instruction
	InterruptEnabled bool      // set by EI, cleared by DI
	Halted           bool      // set once a HLT instruction executes

	instSet   *InstructionSet
	io        IOBus
	debugger  *Debugger
	storeByte func(addr uint16, v byte)
}

// NewCPU creates an 8080 CPU bound to the memory m.
func NewCPU(m Memory) *CPU {
	c := &CPU{
		Mem:     m,
		instSet: GetInstructionSet(),
	}
	c.storeByte = c.storeByteNormal
	c.Reg.Init()
	return c
}

// SetPC updates the CPU program counter to addr.
func (c *CPU) SetPC(addr uint16) {
	c.Reg.PC = addr
}

// GetInstruction returns the instruction assigned to opcode.
func (c *CPU) GetInstruction(opcode byte) *Instruction {
	return c.instSet.Lookup(opcode)
}

// AttachIOBus assigns an I/O bus to the CPU. Until a bus is attached, IN
// instructions load zero and OUT instructions are discarded.
func (c *CPU) AttachIOBus(io IOBus) {
	c.io = io
}

// AttachDebugger attaches a debugger to the CPU. The debugger receives
// notification whenever the program counter updates or a byte is stored to
// memory.
func (c *CPU) AttachDebugger(d *Debugger) {
	c.debugger = d
	c.storeByte = c.storeByteDebugger
}

// DetachDebugger detaches the currently attached debugger.
func (c *CPU) DetachDebugger() {
	c.debugger = nil
	c.storeByte = c.storeByteNormal
}

// Step the CPU by one instruction. Fetching an unassigned opcode returns an
// UnimplementedOpcodeError before any state changes.
func (c *CPU) Step() error {
	if c.Halted {
		return nil
	}

	if c.debugger != nil {
		c.debugger.onUpdatePC(c, c.Reg.PC)
	}

	opcode := c.Mem.LoadByte(c.Reg.PC)
	inst := c.instSet.Lookup(opcode)
	if inst.fn == nil {
		return &UnimplementedOpcodeError{Opcode: opcode, Addr: c.Reg.PC}
	}

	c.LastPC = c.Reg.PC
	c.Reg.PC++

	extra := inst.fn(c, inst)
	if extra == haltSentinel {
		c.Halted = true
	} else {
		c.Reg.PC += uint16(extra)
	}

	c.Cycles += uint64(inst.Cycles)
	return nil
}

// GenerateInterrupt executes the single-byte instruction opcode as if it
// had been jammed onto the data bus by external hardware. The request is
// ignored while interrupts are disabled.
func (c *CPU) GenerateInterrupt(opcode byte) {
	if !c.InterruptEnabled {
		return
	}

	inst := c.instSet.Lookup(opcode)
	if inst.fn == nil {
		return
	}

	c.LastPC = c.Reg.PC
	inst.fn(c, inst)
	c.Cycles += uint64(inst.Cycles)
}

// getReg loads the value of the register selected by a 3-bit field of an
// opcode. Index 6 selects the memory byte addressed by HL.
func (c *CPU) getReg(i byte) byte {
	switch i {
	case 0:
		return c.Reg.B
	case 1:
		return c.Reg.C
	case 2:
		return c.Reg.D
	case 3:
		return c.Reg.E
	case 4:
		return c.Reg.H
	case 5:
		return c.Reg.L
	case 6:
		return c.Mem.LoadByte(c.Reg.HL())
	default:
		return c.Reg.A
	}
}

// setReg stores v into the register selected by a 3-bit field of an
// opcode. Index 6 stores to the memory byte addressed by HL.
func (c *CPU) setReg(i byte, v byte) {
	switch i {
	case 0:
		c.Reg.B = v
	case 1:
		c.Reg.C = v
	case 2:
		c.Reg.D = v
	case 3:
		c.Reg.E = v
	case 4:
		c.Reg.H = v
	case 5:
		c.Reg.L = v
	case 6:
		c.storeByte(c.Reg.HL(), v)
	default:
		c.Reg.A = v
	}
}

// getPair loads the register pair selected by a 2-bit field of an opcode,
// with index 3 selecting the stack pointer.
func (c *CPU) getPair(i byte) uint16 {
	switch i {
	case 0:
		return c.Reg.BC()
	case 1:
		return c.Reg.DE()
	case 2:
		return c.Reg.HL()
	default:
		return c.Reg.SP
	}
}

// setPair stores v into the register pair selected by a 2-bit field of an
// opcode, with index 3 selecting the stack pointer.
func (c *CPU) setPair(i byte, v uint16) {
	switch i {
	case 0:
		c.Reg.SetBC(v)
	case 1:
		c.Reg.SetDE(v)
	case 2:
		c.Reg.SetHL(v)
	default:
		c.Reg.SP = v
	}
}

// condition evaluates the branch condition selected by a 3-bit field of a
// conditional jump, call or return opcode.
func (c *CPU) condition(i byte) bool {
	switch i {
	case 0:
		return !c.Reg.Zero
	case 1:
		return c.Reg.Zero
	case 2:
		return !c.Reg.Carry
	case 3:
		return c.Reg.Carry
	case 4:
		return !c.Reg.Parity
	case 5:
		return c.Reg.Parity
	case 6:
		return !c.Reg.Sign
	default:
		return c.Reg.Sign
	}
}

// imm8 loads the instruction's one-byte immediate operand.
func (c *CPU) imm8() byte {
	return c.Mem.LoadByte(c.Reg.PC)
}

// imm16 loads the instruction's two-byte little-endian operand.
func (c *CPU) imm16() uint16 {
	return c.Mem.LoadAddress(c.Reg.PC)
}

// storeByteNormal stores a byte to the memory bus.
func (c *CPU) storeByteNormal(addr uint16, v byte) {
	c.Mem.StoreByte(addr, v)
}

// storeByteDebugger stores a byte to the memory bus after notifying the
// attached debugger.
func (c *CPU) storeByteDebugger(addr uint16, v byte) {
	c.debugger.onDataStore(c, addr, v)
	c.Mem.StoreByte(addr, v)
}
