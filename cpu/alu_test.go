// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "testing"

func expectPSW(t *testing.T, r *Registers, psw byte) {
	t.Helper()
	if got := r.SavePSW(); got != psw {
		t.Errorf("PSW incorrect. exp: %08b, got: %08b", psw, got)
	}
}

func TestSetFlags(t *testing.T) {
	cases := []struct {
		result int16
		psw    byte
	}{
		{2, 0x00},
		{3, ParityBit},
		{0, ZeroBit | ParityBit},
		{-2, SignBit | CarryBit},
		{258, CarryBit},
	}

	var r Registers
	for _, c := range cases {
		r.Init()
		r.setFlags(c.result)
		expectPSW(t, &r, c.psw)
	}
}

func TestAdd(t *testing.T) {
	var r Registers
	r.Init()

	if got := r.add(0x6c, 0x2e); got != 0x9a {
		t.Errorf("ADD result incorrect. exp: $9A, got: $%02X", got)
	}
	if r.Sign || r.Zero || r.Carry || !r.Parity {
		t.Errorf("ADD flags incorrect. got PSW: %08b", r.SavePSW())
	}

	if got := r.add(0xff, 0x01); got != 0x00 {
		t.Errorf("ADD overflow result incorrect. exp: $00, got: $%02X", got)
	}
	if !r.Carry {
		t.Error("ADD overflow should set the carry flag")
	}
	if r.Zero {
		t.Error("ADD overflow past 255 should not set the zero flag")
	}
}

func TestAdcCarryIn(t *testing.T) {
	var r Registers
	r.Init()
	r.Carry = true

	if got := r.adc(0x3d, 0x42); got != 0x80 {
		t.Errorf("ADC result incorrect. exp: $80, got: $%02X", got)
	}
	if r.Carry {
		t.Error("ADC should clear carry when no overflow occurs")
	}

	r.Carry = true
	if got := r.adc(0xff, 0x00); got != 0x00 {
		t.Errorf("ADC wrap result incorrect. exp: $00, got: $%02X", got)
	}
	if !r.Carry {
		t.Error("ADC wrap should set the carry flag")
	}
}

func TestSub(t *testing.T) {
	var r Registers
	r.Init()

	if got := r.sub(0x09, 0x05); got != 0x04 {
		t.Errorf("SUB result incorrect. exp: $04, got: $%02X", got)
	}
	if r.Carry || r.Sign || r.Zero {
		t.Errorf("SUB flags incorrect. got PSW: %08b", r.SavePSW())
	}

	if got := r.sub(0x05, 0x09); got != 0xfc {
		t.Errorf("SUB borrow result incorrect. exp: $FC, got: $%02X", got)
	}
	if !r.Carry || !r.Sign {
		t.Errorf("SUB borrow should set carry and sign. got PSW: %08b", r.SavePSW())
	}
}

func TestSbbCarryIn(t *testing.T) {
	var r Registers
	r.Init()
	r.Carry = true

	if got := r.sbb(0x09, 0x05); got != 0x03 {
		t.Errorf("SBB result incorrect. exp: $03, got: $%02X", got)
	}
	if r.Carry {
		t.Error("SBB should clear carry when no borrow occurs")
	}
}

func TestCmp(t *testing.T) {
	var r Registers
	r.Init()

	r.cmp(0x0a, 0x05)
	if r.Carry || r.Zero {
		t.Errorf("CMP greater flags incorrect. got PSW: %08b", r.SavePSW())
	}

	r.cmp(0x05, 0x05)
	if !r.Zero || r.Carry {
		t.Errorf("CMP equal flags incorrect. got PSW: %08b", r.SavePSW())
	}

	r.cmp(0x05, 0x0a)
	if !r.Carry {
		t.Error("CMP smaller minuend should set the carry flag")
	}
}

func TestLogicSignQuirk(t *testing.T) {
	var r Registers
	r.Init()

	if got := r.and(0x80, 0xff); got != 0x80 {
		t.Errorf("ANA result incorrect. exp: $80, got: $%02X", got)
	}
	if !r.Sign {
		t.Error("logical result $80 should set the sign flag")
	}

	if got := r.xor(0x5a, 0x5a); got != 0x00 {
		t.Errorf("XRA result incorrect. exp: $00, got: $%02X", got)
	}
	if !r.Zero || !r.Parity || r.Carry {
		t.Errorf("XRA zero flags incorrect. got PSW: %08b", r.SavePSW())
	}

	if got := r.or(0x0f, 0xf0); got != 0xff {
		t.Errorf("ORA result incorrect. exp: $FF, got: $%02X", got)
	}
}

func TestInrDcrPreserveCarry(t *testing.T) {
	var r Registers
	r.Init()
	r.Carry = true

	if got := r.inr(0xff); got != 0x00 {
		t.Errorf("INR wrap result incorrect. exp: $00, got: $%02X", got)
	}
	if !r.Carry {
		t.Error("INR must not modify the carry flag")
	}
	if !r.Zero {
		t.Error("INR wrap to zero should set the zero flag")
	}

	r.Carry = false
	if got := r.dcr(0x00); got != 0xff {
		t.Errorf("DCR wrap result incorrect. exp: $FF, got: $%02X", got)
	}
	if r.Carry {
		t.Error("DCR must not modify the carry flag")
	}
}

func TestDad(t *testing.T) {
	var r Registers
	r.Init()

	if got := r.dad(0x1234, 0x1111); got != 0x2345 {
		t.Errorf("DAD result incorrect. exp: $2345, got: $%04X", got)
	}
	if r.Carry {
		t.Error("DAD without overflow should clear the carry flag")
	}

	if got := r.dad(0xffff, 0x0001); got != 0x0000 {
		t.Errorf("DAD overflow result incorrect. exp: $0000, got: $%04X", got)
	}
	if !r.Carry {
		t.Error("DAD overflow should set the carry flag")
	}
}

func TestRotateLeft(t *testing.T) {
	var r Registers
	r.Init()

	if got := r.rotateLeft(0x81, false); got != 0x03 {
		t.Errorf("RLC result incorrect. exp: $03, got: $%02X", got)
	}
	if !r.Carry {
		t.Error("RLC should copy bit 7 into the carry flag")
	}

	r.Carry = false
	if got := r.rotateLeft(0x81, true); got != 0x02 {
		t.Errorf("RAL result incorrect. exp: $02, got: $%02X", got)
	}
	if !r.Carry {
		t.Error("RAL should shift bit 7 into the carry flag")
	}
}

func TestRotateRight(t *testing.T) {
	var r Registers
	r.Init()

	if got := r.rotateRight(0x81, false); got != 0xc0 {
		t.Errorf("RRC result incorrect. exp: $C0, got: $%02X", got)
	}
	if !r.Carry {
		t.Error("RRC should copy bit 0 into the carry flag")
	}

	r.Carry = false
	if got := r.rotateRight(0x81, true); got != 0x40 {
		t.Errorf("RAR result incorrect. exp: $40, got: $%02X", got)
	}
	if !r.Carry {
		t.Error("RAR should shift bit 0 into the carry flag")
	}
}

func TestDaa(t *testing.T) {
	var r Registers
	r.Init()

	// 0x15 + 0x27 in BCD is 0x42.
	if got := r.daa(r.add(0x15, 0x27)); got != 0x42 {
		t.Errorf("DAA result incorrect. exp: $42, got: $%02X", got)
	}
	if r.Carry {
		t.Error("DAA should not set carry when the sum stays below 100")
	}

	// 0x91 + 0x19 in BCD is 0x10 with a carry out.
	if got := r.daa(r.add(0x91, 0x19)); got != 0x10 {
		t.Errorf("DAA carry result incorrect. exp: $10, got: $%02X", got)
	}
	if !r.Carry {
		t.Error("DAA should set carry when the sum reaches 100")
	}
}
