// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "math/bits"

// setFlags recomputes the Sign, Zero, Parity and Carry flags from the
// signed 16-bit intermediate of an arithmetic or logic operation. Carry is
// set when the intermediate exceeds 255 (a carry out of bit 7) or is
// negative (a borrow). The auxiliary carry is never computed.
func (r *Registers) setFlags(result int16) {
	r.Zero = (result == 0)
	r.Sign = (result < 0)
	r.Parity = parity(byte(result))
	r.Carry = (result > 255) || (result < 0)
	r.AuxCarry = false
}

// parity reports whether v contains an even number of set bits.
func parity(v byte) bool {
	return bits.OnesCount8(v)%2 == 0
}

// add sums two bytes and updates the flags from the full intermediate.
func (r *Registers) add(x, y byte) byte {
	result := int16(x) + int16(y)
	r.setFlags(result)
	return byte(result)
}

// adc sums two bytes plus the carry-in.
func (r *Registers) adc(x, y byte) byte {
	result := int16(x) + int16(y) + int16(boolToByte(r.Carry))
	r.setFlags(result)
	return byte(result)
}

// sub subtracts y from x. A borrow sets the carry flag.
func (r *Registers) sub(x, y byte) byte {
	result := int16(x) - int16(y)
	r.setFlags(result)
	return byte(result)
}

// sbb subtracts y and the carry-in from x.
func (r *Registers) sbb(x, y byte) byte {
	result := int16(x) - int16(y) - int16(boolToByte(r.Carry))
	r.setFlags(result)
	return byte(result)
}

// logic updates the flags for a bitwise result. The 8080 logical group has
// one quirk: a result of exactly 0x80 sets the sign flag even though the
// widened intermediate is positive.
func (r *Registers) logic(result byte) byte {
	r.setFlags(int16(result))
	if result == 0x80 {
		r.Sign = true
	}
	return result
}

func (r *Registers) and(x, y byte) byte {
	return r.logic(x & y)
}

func (r *Registers) xor(x, y byte) byte {
	return r.logic(x ^ y)
}

func (r *Registers) or(x, y byte) byte {
	return r.logic(x | y)
}

// cmp subtracts y from x, discarding the result. Carry ends up set exactly
// when x < y.
func (r *Registers) cmp(x, y byte) {
	r.setFlags(int16(x) - int16(y))
}

// inr increments a byte. The carry flag is not affected.
func (r *Registers) inr(v byte) byte {
	carry := r.Carry
	result := r.add(v, 1)
	r.Carry = carry
	return result
}

// dcr decrements a byte. The carry flag is not affected.
func (r *Registers) dcr(v byte) byte {
	carry := r.Carry
	result := r.sub(v, 1)
	r.Carry = carry
	return result
}

// dad adds a register pair to the HL pair, setting only the carry flag.
func (r *Registers) dad(hl, pair uint16) uint16 {
	result := uint32(hl) + uint32(pair)
	r.Carry = (result > 0xffff)
	return uint16(result)
}

// rotateLeft rotates v one bit left. The bit rotated out of position 7
// becomes the new carry; in through-carry mode the previous carry value is
// rotated into bit 0 instead of the wrapped bit.
func (r *Registers) rotateLeft(v byte, throughCarry bool) byte {
	result := v << 1
	if throughCarry {
		result |= boolToByte(r.Carry)
	} else {
		result |= v >> 7
	}
	r.Carry = (v & 0x80) != 0
	return result
}

// rotateRight rotates v one bit right. The bit rotated out of position 0
// becomes the new carry; in through-carry mode the previous carry value is
// rotated into bit 7 instead of the wrapped bit.
func (r *Registers) rotateRight(v byte, throughCarry bool) byte {
	result := v >> 1
	if throughCarry {
		result |= boolToByte(r.Carry) << 7
	} else {
		result |= v << 7
	}
	r.Carry = (v & 0x01) != 0
	return result
}

// daa decimal-adjusts the accumulator after BCD arithmetic. With the
// auxiliary carry permanently unset, only the low-nibble magnitude and the
// carry flag drive the adjustment.
func (r *Registers) daa(v byte) byte {
	carry := r.Carry
	var correction byte
	if v&0x0f > 9 {
		correction = 0x06
	}
	if carry || v>>4 > 9 {
		correction += 0x60
		carry = true
	}
	result := r.add(v, correction)
	r.Carry = carry
	return result
}
