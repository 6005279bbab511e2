// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// push stores a 16-bit value on the stack, high byte at the higher
// address, and decrements the stack pointer by two.
func (c *CPU) push(hi, lo byte) {
	c.storeByte(c.Reg.SP-1, hi)
	c.storeByte(c.Reg.SP-2, lo)
	c.Reg.SP -= 2
}

// pop removes a 16-bit value from the stack and increments the stack
// pointer by two. The vacated cells are zeroed.
func (c *CPU) pop() (hi, lo byte) {
	hi = c.Mem.LoadByte(c.Reg.SP + 1)
	lo = c.Mem.LoadByte(c.Reg.SP)
	c.Mem.StoreByte(c.Reg.SP+1, 0)
	c.Mem.StoreByte(c.Reg.SP, 0)
	c.Reg.SP += 2
	return hi, lo
}

// jump transfers control to addr when the condition holds.
func (c *CPU) jump(addr uint16, condition bool) {
	if condition {
		c.Reg.PC = addr
	}
}

// call pushes the return address and transfers control to addr when the
// condition holds. The return address is the address of the instruction
// following the call.
func (c *CPU) call(addr, ret uint16, condition bool) {
	if condition {
		c.push(byte(ret>>8), byte(ret))
		c.Reg.PC = addr
	}
}

// ret pops the return address off the stack and transfers control to it
// when the condition holds.
func (c *CPU) ret(condition bool) {
	if condition {
		hi, lo := c.pop()
		c.Reg.PC = uint16(hi)<<8 | uint16(lo)
	}
}
