// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "sort"

// The BreakHandler interface should be implemented by any object that
// wishes to receive debugger notifications.
type BreakHandler interface {
	OnBreakpoint(cpu *CPU, b *Breakpoint)
	OnDataBreakpoint(cpu *CPU, b *DataBreakpoint)
}

// A Debugger handles breakpoints and data breakpoints for a CPU it is
// attached to.
type Debugger struct {
	handler         BreakHandler
	breakpoints     map[uint16]*Breakpoint
	dataBreakpoints map[uint16]*DataBreakpoint
}

// A Breakpoint represents an address that will cause the debugger to stop
// code execution when the program counter reaches it.
type Breakpoint struct {
	Address  uint16 // address of the breakpoint
	Disabled bool   // true if the breakpoint is currently disabled
	StepOver bool   // true if the breakpoint is a temporary step-over breakpoint
}

type byBPAddr []*Breakpoint

func (a byBPAddr) Len() int           { return len(a) }
func (a byBPAddr) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byBPAddr) Less(i, j int) bool { return a[i].Address < a[j].Address }

// A DataBreakpoint represents an address that will cause the debugger to
// stop executing code when a byte is stored to it.
type DataBreakpoint struct {
	Address     uint16 // address of the data breakpoint
	Disabled    bool   // true if the data breakpoint is currently disabled
	Conditional bool   // true if the data breakpoint is conditional on a certain value being stored
	Value       byte   // the conditional value
}

type byDBPAddr []*DataBreakpoint

func (a byDBPAddr) Len() int           { return len(a) }
func (a byDBPAddr) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byDBPAddr) Less(i, j int) bool { return a[i].Address < a[j].Address }

// NewDebugger creates a new CPU debugger.
func NewDebugger(handler BreakHandler) *Debugger {
	return &Debugger{
		handler:         handler,
		breakpoints:     make(map[uint16]*Breakpoint),
		dataBreakpoints: make(map[uint16]*DataBreakpoint),
	}
}

// GetBreakpoints returns all breakpoints currently set in the debugger,
// sorted by address.
func (d *Debugger) GetBreakpoints() []*Breakpoint {
	var breakpoints []*Breakpoint
	for _, b := range d.breakpoints {
		breakpoints = append(breakpoints, b)
	}
	sort.Sort(byBPAddr(breakpoints))
	return breakpoints
}

// GetBreakpoint looks up a breakpoint by address and returns it if found.
// Otherwise it returns nil.
func (d *Debugger) GetBreakpoint(addr uint16) *Breakpoint {
	return d.breakpoints[addr]
}

// AddBreakpoint adds a new breakpoint address to the debugger. If the
// breakpoint was already set, the existing breakpoint is returned.
func (d *Debugger) AddBreakpoint(addr uint16) *Breakpoint {
	b, ok := d.breakpoints[addr]
	if !ok {
		b = &Breakpoint{Address: addr}
		d.breakpoints[addr] = b
	}
	return b
}

// RemoveBreakpoint removes a breakpoint from the debugger.
func (d *Debugger) RemoveBreakpoint(addr uint16) {
	delete(d.breakpoints, addr)
}

// GetDataBreakpoints returns all data breakpoints currently set in the
// debugger, sorted by address.
func (d *Debugger) GetDataBreakpoints() []*DataBreakpoint {
	var breakpoints []*DataBreakpoint
	for _, b := range d.dataBreakpoints {
		breakpoints = append(breakpoints, b)
	}
	sort.Sort(byDBPAddr(breakpoints))
	return breakpoints
}

// GetDataBreakpoint looks up a data breakpoint by address and returns it if
// found. Otherwise it returns nil.
func (d *Debugger) GetDataBreakpoint(addr uint16) *DataBreakpoint {
	return d.dataBreakpoints[addr]
}

// AddDataBreakpoint adds an unconditional data breakpoint at the requested
// address. If the data breakpoint was already set, the existing data
// breakpoint is returned.
func (d *Debugger) AddDataBreakpoint(addr uint16) *DataBreakpoint {
	b, ok := d.dataBreakpoints[addr]
	if !ok {
		b = &DataBreakpoint{Address: addr}
		d.dataBreakpoints[addr] = b
	}
	return b
}

// AddConditionalDataBreakpoint adds a conditional data breakpoint at the
// requested address. If the data breakpoint was already set, the existing
// data breakpoint is returned and its condition is updated.
func (d *Debugger) AddConditionalDataBreakpoint(addr uint16, value byte) *DataBreakpoint {
	b, ok := d.dataBreakpoints[addr]
	if !ok {
		b = &DataBreakpoint{Address: addr}
		d.dataBreakpoints[addr] = b
	}
	b.Conditional = true
	b.Value = value
	return b
}

// RemoveDataBreakpoint removes a data breakpoint at the requested address.
func (d *Debugger) RemoveDataBreakpoint(addr uint16) {
	delete(d.dataBreakpoints, addr)
}

func (d *Debugger) onUpdatePC(cpu *CPU, addr uint16) {
	if len(d.breakpoints) > 0 {
		if b, ok := d.breakpoints[addr]; ok && !b.Disabled {
			d.handler.OnBreakpoint(cpu, b)
		}
	}
}

func (d *Debugger) onDataStore(cpu *CPU, addr uint16, v byte) {
	if len(d.dataBreakpoints) > 0 {
		if b, ok := d.dataBreakpoints[addr]; ok && !b.Disabled {
			if !b.Conditional || b.Value == v {
				d.handler.OnDataBreakpoint(cpu, b)
			}
		}
	}
}
