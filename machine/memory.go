// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package machine

import (
	"errors"
	"fmt"

	"github.com/beevik/go8080/cpu"
)

// ErrROMTooLarge is returned when a ROM image does not fit inside the
// cabinet's ROM region.
var ErrROMTooLarge = errors.New("ROM image does not fit in the ROM region")

// Memory map of the Space Invaders cabinet. The 8080 sees a 16-bit address
// space, but only 16KB is populated; higher addresses mirror the lower
// 16KB.
const (
	RomBase   = 0x0000
	RomSize   = 0x2000
	RamBase   = 0x2000
	RamSize   = 0x0400
	VideoBase = 0x2400
	VideoSize = 0x1c00

	addrMask = 0x3fff
)

// Memory implements the Space Invaders memory map: 8KB of ROM, 1KB of
// working RAM and 7KB of video RAM, mirrored across the rest of the
// address space.
type Memory struct {
	b [RomSize + RamSize + VideoSize]byte
}

// NewMemory creates a new Space Invaders memory instance.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadROM copies a ROM image into memory starting at the address base. It
// returns an error if the image does not fit inside the ROM region.
func (m *Memory) LoadROM(data []byte, base uint16) error {
	if int(base)+len(data) > RomSize {
		return fmt.Errorf("%w: %d bytes at $%04X", ErrROMTooLarge, len(data), base)
	}
	copy(m.b[base:], data)
	return nil
}

// VideoRAM returns the 7KB video RAM region holding the 256x224 1-bit
// frame buffer.
func (m *Memory) VideoRAM() []byte {
	return m.b[VideoBase-RomBase : VideoBase-RomBase+VideoSize]
}

// LoadByte loads a single byte from the address and returns it.
func (m *Memory) LoadByte(addr uint16) byte {
	return m.b[addr&addrMask]
}

// LoadBytes loads multiple bytes from the address and stores them into the
// buffer 'b'.
func (m *Memory) LoadBytes(addr uint16, b []byte) {
	for i := range b {
		b[i] = m.LoadByte(addr + uint16(i))
	}
}

// LoadAddress loads a 16-bit address value from the requested address and
// returns it.
func (m *Memory) LoadAddress(addr uint16) uint16 {
	return uint16(m.LoadByte(addr)) | uint16(m.LoadByte(addr+1))<<8
}

// StoreByte stores a byte at the requested address.
func (m *Memory) StoreByte(addr uint16, v byte) {
	m.b[addr&addrMask] = v
}

// StoreBytes stores multiple bytes to the requested address.
func (m *Memory) StoreBytes(addr uint16, b []byte) {
	for i := range b {
		m.StoreByte(addr+uint16(i), b[i])
	}
}

// StoreAddress stores a 16-bit address value to the requested address.
func (m *Memory) StoreAddress(addr uint16, v uint16) {
	m.StoreByte(addr, byte(v))
	m.StoreByte(addr+1, byte(v>>8))
}

// compile-time interface check
var _ cpu.Memory = (*Memory)(nil)
