// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package machine

// A Button identifies one of the cabinet's physical inputs.
type Button int

// Cabinet buttons and switches.
const (
	ButtonCoin Button = iota
	ButtonTilt
	ButtonP1Start
	ButtonP1Shoot
	ButtonP1Left
	ButtonP1Right
	ButtonP2Start
	ButtonP2Shoot
	ButtonP2Left
	ButtonP2Right
)

// Input port bit assignments.
const (
	port1Coin    = 1 << 0
	port1P2Start = 1 << 1
	port1P1Start = 1 << 2
	port1Always  = 1 << 3
	port1P1Shoot = 1 << 4
	port1P1Left  = 1 << 5
	port1P1Right = 1 << 6

	port2Tilt    = 1 << 2
	port2P2Shoot = 1 << 4
	port2P2Left  = 1 << 5
	port2P2Right = 1 << 6
)

// Ports emulates the Space Invaders I/O board: two player input ports, the
// 16-bit shift register used for sprite positioning, and the sound output
// latches.
type Ports struct {
	input1 byte
	input2 byte

	shiftReg    uint16
	shiftAmount byte

	sound1 byte
	sound2 byte
}

// NewPorts creates the I/O board with all buttons released.
func NewPorts() *Ports {
	return &Ports{input1: port1Always}
}

// SetButton presses or releases a cabinet button.
func (p *Ports) SetButton(b Button, pressed bool) {
	var reg *byte
	var bit byte

	switch b {
	case ButtonCoin:
		reg, bit = &p.input1, port1Coin
	case ButtonP2Start:
		reg, bit = &p.input1, port1P2Start
	case ButtonP1Start:
		reg, bit = &p.input1, port1P1Start
	case ButtonP1Shoot:
		reg, bit = &p.input1, port1P1Shoot
	case ButtonP1Left:
		reg, bit = &p.input1, port1P1Left
	case ButtonP1Right:
		reg, bit = &p.input1, port1P1Right
	case ButtonTilt:
		reg, bit = &p.input2, port2Tilt
	case ButtonP2Shoot:
		reg, bit = &p.input2, port2P2Shoot
	case ButtonP2Left:
		reg, bit = &p.input2, port2P2Left
	case ButtonP2Right:
		reg, bit = &p.input2, port2P2Right
	default:
		return
	}

	if pressed {
		*reg |= bit
	} else {
		*reg &^= bit
	}
}

// SetLives configures the DIP switches selecting the number of starting
// lives (3 to 6).
func (p *Ports) SetLives(n int) {
	if n < 3 {
		n = 3
	}
	if n > 6 {
		n = 6
	}
	p.input2 = p.input2&^0x03 | byte(n-3)
}

// In reads an input port. Unmapped ports read as zero.
func (p *Ports) In(port byte) byte {
	switch port {
	case 1:
		return p.input1
	case 2:
		return p.input2
	case 3:
		return p.shiftResult()
	default:
		return 0
	}
}

// Out writes an output port. Writes to unmapped ports are discarded.
func (p *Ports) Out(port byte, v byte) {
	switch port {
	case 2:
		p.shiftAmount = v
	case 3:
		p.sound1 = v
	case 4:
		p.shiftData(v)
	case 5:
		p.sound2 = v
	case 6:
		// watchdog reset
	}
}

// shiftData loads a byte into the high half of the shift register, moving
// the previous high half down.
func (p *Ports) shiftData(v byte) {
	p.shiftReg = uint16(v)<<8 | p.shiftReg>>8
}

// shiftResult reads 8 bits of the shift register, offset from the top by
// the programmed shift amount. Only the low 3 bits of the shift amount are
// significant.
func (p *Ports) shiftResult() byte {
	amount := p.shiftAmount & 0x07
	return byte(p.shiftReg >> (8 - amount))
}
