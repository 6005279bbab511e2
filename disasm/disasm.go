// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements an 8080 machine code disassembler.
package disasm

import (
	"fmt"
	"strings"

	"github.com/beevik/go8080/cpu"
)

// Disassemble the instruction at the requested address and return its
// assembly language string plus the address of the following instruction.
func Disassemble(m cpu.Memory, addr uint16) (line string, next uint16) {
	opcode := m.LoadByte(addr)
	inst := cpu.GetInstructionSet().Lookup(opcode)
	next = addr + uint16(inst.Length)

	switch inst.Length {
	case 2:
		line = join(inst.Name, fmt.Sprintf("$%02X", m.LoadByte(addr+1)))
	case 3:
		line = join(inst.Name, fmt.Sprintf("$%04X", m.LoadAddress(addr+1)))
	default:
		line = inst.Name
	}
	return line, next
}

// join attaches an operand string to a mnemonic. Mnemonics that already
// name a register take the operand after a comma, as in "MVI B,$12".
func join(name, operand string) string {
	if strings.ContainsRune(name, ' ') {
		return name + "," + operand
	}
	return name + " " + operand
}

// GetInstructionBytes returns the bytes occupied by the instruction at the
// requested address.
func GetInstructionBytes(m cpu.Memory, addr uint16) []byte {
	inst := cpu.GetInstructionSet().Lookup(m.LoadByte(addr))
	b := make([]byte, inst.Length)
	m.LoadBytes(addr, b)
	return b
}

// GetRegisterString returns a single-line representation of the CPU's
// register contents.
func GetRegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=%02X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X %s",
		r.A, r.BC(), r.DE(), r.HL(), r.SP, r.PC, getFlagString(r))
}

// getFlagString returns a string representation of the condition flags.
func getFlagString(r *cpu.Registers) string {
	flag := func(set bool, ch byte) byte {
		if set {
			return ch
		}
		return '-'
	}
	return fmt.Sprintf("[%c%c%c%c%c]",
		flag(r.Sign, 'S'),
		flag(r.Zero, 'Z'),
		flag(r.AuxCarry, 'A'),
		flag(r.Parity, 'P'),
		flag(r.Carry, 'C'))
}
