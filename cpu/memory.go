// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// The Memory interface presents an interface to the CPU through which all
// memory accesses occur.
type Memory interface {
	// LoadByte loads a single byte from the address and returns it.
	LoadByte(addr uint16) byte

	// LoadBytes loads multiple bytes from the address and stores them into
	// the buffer 'b'.
	LoadBytes(addr uint16, b []byte)

	// LoadAddress loads a 16-bit little-endian address value from the
	// requested address and returns it.
	LoadAddress(addr uint16) uint16

	// StoreByte stores a byte to the requested address.
	StoreByte(addr uint16, v byte)

	// StoreBytes stores multiple bytes to the requested address.
	StoreBytes(addr uint16, b []byte)

	// StoreAddress stores a 16-bit address 'v' to the requested address in
	// little-endian order.
	StoreAddress(addr uint16, v uint16)
}

// FlatMemory represents an entire 16-bit address space as a singular
// 64K buffer.
type FlatMemory struct {
	b [64 * 1024]byte
}

// NewFlatMemory creates a new 16-bit memory space.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// LoadByte loads a single byte from the address and returns it.
func (m *FlatMemory) LoadByte(addr uint16) byte {
	return m.b[addr]
}

// LoadBytes loads multiple bytes from the address and stores them into the
// buffer 'b'.
func (m *FlatMemory) LoadBytes(addr uint16, b []byte) {
	if int(addr)+len(b) <= len(m.b) {
		copy(b, m.b[addr:])
	} else {
		r0 := len(m.b) - int(addr)
		r1 := len(b) - r0
		copy(b, m.b[addr:])
		copy(b[r0:], make([]byte, r1))
	}
}

// LoadAddress loads a 16-bit little-endian address value from the requested
// address and returns it.
func (m *FlatMemory) LoadAddress(addr uint16) uint16 {
	return uint16(m.b[addr]) | uint16(m.b[addr+1])<<8
}

// StoreByte stores a byte at the requested address.
func (m *FlatMemory) StoreByte(addr uint16, v byte) {
	m.b[addr] = v
}

// StoreBytes stores multiple bytes to the requested address.
func (m *FlatMemory) StoreBytes(addr uint16, b []byte) {
	copy(m.b[addr:], b)
}

// StoreAddress stores a 16-bit address value to the requested address in
// little-endian order.
func (m *FlatMemory) StoreAddress(addr uint16, v uint16) {
	m.b[addr] = byte(v)
	m.b[addr+1] = byte(v >> 8)
}

// Convert a little-endian operand to a 16-bit address.
func operandToAddress(operand []byte) uint16 {
	switch len(operand) {
	case 1:
		return uint16(operand[0])
	case 2:
		return uint16(operand[0]) | uint16(operand[1])<<8
	}
	return 0
}
