// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm

import (
	"testing"

	"github.com/beevik/go8080/cpu"
)

func TestDisassemble(t *testing.T) {
	cases := []struct {
		code []byte
		line string
	}{
		{[]byte{0x00}, "NOP"},
		{[]byte{0x06, 0x42}, "MVI B,$42"},
		{[]byte{0x21, 0x34, 0x12}, "LXI H,$1234"},
		{[]byte{0x3a, 0xff, 0x23}, "LDA $23FF"},
		{[]byte{0xc3, 0x00, 0x18}, "JMP $1800"},
		{[]byte{0xcd, 0xd4, 0xc3}, "CALL $C3D4"},
		{[]byte{0xdb, 0x01}, "IN $01"},
		{[]byte{0x76}, "HLT"},
		{[]byte{0xc7}, "RST 0"},
		{[]byte{0x79}, "MOV A,C"},
		{[]byte{0x08}, "?"},
	}

	mem := cpu.NewFlatMemory()
	for _, c := range cases {
		mem.StoreBytes(0x100, c.code)
		line, next := Disassemble(mem, 0x100)
		if line != c.line {
			t.Errorf("disassembly incorrect. exp: %q, got: %q", c.line, line)
		}
		if want := 0x100 + uint16(len(c.code)); next != want {
			t.Errorf("next address incorrect for %q. exp: $%04X, got: $%04X", c.line, want, next)
		}
	}
}

func TestGetInstructionBytes(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0x200, []byte{0x11, 0x22, 0x33})

	b := GetInstructionBytes(mem, 0x200)
	if len(b) != 3 || b[0] != 0x11 || b[1] != 0x22 || b[2] != 0x33 {
		t.Errorf("instruction bytes incorrect. got: % X", b)
	}
}

func TestGetRegisterString(t *testing.T) {
	var r cpu.Registers
	r.Init()
	r.A = 0x42
	r.SetHL(0x1234)
	r.Zero = true
	r.Carry = true

	want := "A=42 BC=0000 DE=0000 HL=1234 SP=2400 PC=0000 [-Z--C]"
	if got := GetRegisterString(&r); got != want {
		t.Errorf("register string incorrect.\nexp: %s\ngot: %s", want, got)
	}
}
