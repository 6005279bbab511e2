// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "testing"

func TestSavePSW(t *testing.T) {
	var r Registers
	r.Init()

	r.Sign = true
	r.Carry = true
	expectPSW(t, &r, SignBit|CarryBit)

	r.Zero = true
	r.Parity = true
	expectPSW(t, &r, SignBit|ZeroBit|ParityBit|CarryBit)
}

func TestRestorePSW(t *testing.T) {
	var r Registers
	r.Init()

	r.RestorePSW(0xff)
	if !r.Sign || !r.Zero || !r.Parity || !r.Carry {
		t.Errorf("RestorePSW failed to set flags. got: %08b", r.SavePSW())
	}
	expectPSW(t, &r, SignBit|ZeroBit|AuxCarryBit|ParityBit|CarryBit)

	r.RestorePSW(0x00)
	expectPSW(t, &r, 0)
}

func TestRegisterPairs(t *testing.T) {
	var r Registers
	r.Init()

	r.SetBC(0x1234)
	if r.B != 0x12 || r.C != 0x34 || r.BC() != 0x1234 {
		t.Errorf("BC pair incorrect. got: $%04X", r.BC())
	}

	r.SetDE(0x5678)
	if r.D != 0x56 || r.E != 0x78 || r.DE() != 0x5678 {
		t.Errorf("DE pair incorrect. got: $%04X", r.DE())
	}

	r.SetHL(0x9abc)
	if r.H != 0x9a || r.L != 0xbc || r.HL() != 0x9abc {
		t.Errorf("HL pair incorrect. got: $%04X", r.HL())
	}
}

func TestInit(t *testing.T) {
	var r Registers
	r.SetHL(0xffff)
	r.Carry = true
	r.Init()

	if r.A != 0 || r.HL() != 0 || r.PC != 0 {
		t.Error("Init failed to clear registers")
	}
	if r.SP != 0x2400 {
		t.Errorf("SP incorrect after init. exp: $2400, got: $%04X", r.SP)
	}
	expectPSW(t, &r, 0)
}