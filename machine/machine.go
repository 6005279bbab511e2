// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package machine emulates the Space Invaders arcade cabinet: an Intel
// 8080 CPU wired to the cabinet's memory map, input ports, shift-register
// hardware and 60Hz video interrupts.
package machine

import (
	"log"

	"github.com/beevik/go8080/cpu"
)

// Frame timing. The cabinet's 8080 runs at 2MHz and the video hardware
// raises two interrupts per 60Hz frame: RST 1 when the beam reaches the
// middle of the screen and RST 2 at the vertical blank.
const (
	ClockRate      = 2000000
	FramesPerSec   = 60
	CyclesPerFrame = ClockRate / FramesPerSec

	midScreenOpcode = 0xcf // RST 1
	vblankOpcode    = 0xd7 // RST 2
)

// A Machine wires an 8080 CPU to the Space Invaders cabinet hardware.
type Machine struct {
	CPU   *cpu.CPU
	Mem   *Memory
	Ports *Ports

	nextIntCycle  uint64
	nextIntOpcode byte
	testDone      bool
	spWarned      bool
}

// New creates a Space Invaders machine with empty ROM.
func New() *Machine {
	m := &Machine{
		Mem:           NewMemory(),
		Ports:         NewPorts(),
		nextIntCycle:  CyclesPerFrame / 2,
		nextIntOpcode: midScreenOpcode,
	}
	m.CPU = cpu.NewCPU(m.Mem)
	m.CPU.AttachIOBus(m)
	return m
}

// LoadROM copies a ROM image into the machine's ROM region starting at
// base.
func (m *Machine) LoadROM(data []byte, base uint16) error {
	return m.Mem.LoadROM(data, base)
}

// Done reports whether the machine has stopped, either because the CPU
// halted or because the program signaled completion on output port 0.
func (m *Machine) Done() bool {
	return m.testDone || m.CPU.Halted
}

// Step executes a single CPU instruction, raising a video interrupt
// whenever the cycle counter crosses a half-frame boundary.
func (m *Machine) Step() error {
	if err := m.CPU.Step(); err != nil {
		return err
	}

	if sp := m.CPU.Reg.SP; sp != 0 && sp < RamBase && !m.spWarned {
		log.Printf("stack pointer $%04X descended below RAM at $%04X", sp, m.CPU.LastPC)
		m.spWarned = true
	}

	if m.CPU.Cycles >= m.nextIntCycle {
		m.CPU.GenerateInterrupt(m.nextIntOpcode)
		if m.nextIntOpcode == midScreenOpcode {
			m.nextIntOpcode = vblankOpcode
		} else {
			m.nextIntOpcode = midScreenOpcode
		}
		m.nextIntCycle += CyclesPerFrame / 2
	}
	return nil
}

// StepFrame emulates one 60Hz video frame's worth of CPU time, including
// the mid-screen and vertical blank interrupts.
func (m *Machine) StepFrame() error {
	target := m.CPU.Cycles + CyclesPerFrame
	for m.CPU.Cycles < target && !m.Done() {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run emulates frames until the machine stops or an instruction fails.
func (m *Machine) Run() error {
	for !m.Done() {
		if err := m.StepFrame(); err != nil {
			return err
		}
	}
	return nil
}

// In reads a byte from one of the cabinet's input ports.
func (m *Machine) In(port byte) byte {
	return m.Ports.In(port)
}

// Out writes a byte to one of the cabinet's output ports. A write to port
// 0 signals that a diagnostic program has finished.
func (m *Machine) Out(port byte, v byte) {
	if port == 0 {
		m.testDone = true
		return
	}
	m.Ports.Out(port, v)
}

// compile-time interface check
var _ cpu.IOBus = (*Machine)(nil)
