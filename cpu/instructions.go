// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// An instfn implements one instruction. It runs with the program counter
// addressing the instruction's first operand byte and returns the number of
// operand bytes to skip, or haltSentinel when the CPU should halt.
// Instructions that transfer control update the program counter directly
// and return zero.
type instfn func(c *CPU, inst *Instruction) int

// haltSentinel is returned by the HLT instruction in place of an operand
// byte count.
const haltSentinel = 255

// An Instruction describes a single 8080 instruction.
type Instruction struct {
	Name   string // instruction mnemonic
	Opcode byte   // opcode value
	Length byte   // length in bytes, including the opcode
	Cycles byte   // clock cycles consumed by the instruction

	fn instfn // implementation, nil for unassigned opcodes
}

// An InstructionSet defines all 256 opcode slots of the 8080.
type InstructionSet struct {
	instructions [256]Instruction
}

// Lookup retrieves the instruction assigned to opcode. Unassigned opcodes
// return an instruction named "?" with a nil implementation.
func (s *InstructionSet) Lookup(opcode byte) *Instruction {
	return &s.instructions[opcode]
}

// instructionData is the raw instruction list used to build the instruction
// set. Cycle counts are fixed per opcode; conditional branches cost the
// same whether or not they are taken.
var instructionData = []Instruction{
	{"NOP", 0x00, 1, 4, nop},
	{"LXI B", 0x01, 3, 10, lxi},
	{"STAX B", 0x02, 1, 7, stax},
	{"INX B", 0x03, 1, 5, inx},
	{"INR B", 0x04, 1, 5, inr},
	{"DCR B", 0x05, 1, 5, dcr},
	{"MVI B", 0x06, 2, 7, mvi},
	{"RLC", 0x07, 1, 4, rlc},
	{"?", 0x08, 1, 4, nil},
	{"DAD B", 0x09, 1, 10, dad},
	{"LDAX B", 0x0a, 1, 7, ldax},
	{"DCX B", 0x0b, 1, 5, dcx},
	{"INR C", 0x0c, 1, 5, inr},
	{"DCR C", 0x0d, 1, 5, dcr},
	{"MVI C", 0x0e, 2, 7, mvi},
	{"RRC", 0x0f, 1, 4, rrc},

	{"?", 0x10, 1, 4, nil},
	{"LXI D", 0x11, 3, 10, lxi},
	{"STAX D", 0x12, 1, 7, stax},
	{"INX D", 0x13, 1, 5, inx},
	{"INR D", 0x14, 1, 5, inr},
	{"DCR D", 0x15, 1, 5, dcr},
	{"MVI D", 0x16, 2, 7, mvi},
	{"RAL", 0x17, 1, 4, ral},
	{"?", 0x18, 1, 4, nil},
	{"DAD D", 0x19, 1, 10, dad},
	{"LDAX D", 0x1a, 1, 7, ldax},
	{"DCX D", 0x1b, 1, 5, dcx},
	{"INR E", 0x1c, 1, 5, inr},
	{"DCR E", 0x1d, 1, 5, dcr},
	{"MVI E", 0x1e, 2, 7, mvi},
	{"RAR", 0x1f, 1, 4, rar},

	{"?", 0x20, 1, 4, nil},
	{"LXI H", 0x21, 3, 10, lxi},
	{"SHLD", 0x22, 3, 16, shld},
	{"INX H", 0x23, 1, 5, inx},
	{"INR H", 0x24, 1, 5, inr},
	{"DCR H", 0x25, 1, 5, dcr},
	{"MVI H", 0x26, 2, 7, mvi},
	{"DAA", 0x27, 1, 4, daa},
	{"?", 0x28, 1, 4, nil},
	{"DAD H", 0x29, 1, 10, dad},
	{"LHLD", 0x2a, 3, 16, lhld},
	{"DCX H", 0x2b, 1, 5, dcx},
	{"INR L", 0x2c, 1, 5, inr},
	{"DCR L", 0x2d, 1, 5, dcr},
	{"MVI L", 0x2e, 2, 7, mvi},
	{"CMA", 0x2f, 1, 4, cma},

	{"?", 0x30, 1, 4, nil},
	{"LXI SP", 0x31, 3, 10, lxi},
	{"STA", 0x32, 3, 13, sta},
	{"INX SP", 0x33, 1, 5, inx},
	{"INR M", 0x34, 1, 10, inr},
	{"DCR M", 0x35, 1, 10, dcr},
	{"MVI M", 0x36, 2, 10, mvi},
	{"STC", 0x37, 1, 4, stc},
	{"?", 0x38, 1, 4, nil},
	{"DAD SP", 0x39, 1, 10, dad},
	{"LDA", 0x3a, 3, 13, lda},
	{"DCX SP", 0x3b, 1, 5, dcx},
	{"INR A", 0x3c, 1, 5, inr},
	{"DCR A", 0x3d, 1, 5, dcr},
	{"MVI A", 0x3e, 2, 7, mvi},
	{"CMC", 0x3f, 1, 4, cmc},

	{"MOV B,B", 0x40, 1, 5, mov},
	{"MOV B,C", 0x41, 1, 5, mov},
	{"MOV B,D", 0x42, 1, 5, mov},
	{"MOV B,E", 0x43, 1, 5, mov},
	{"MOV B,H", 0x44, 1, 5, mov},
	{"MOV B,L", 0x45, 1, 5, mov},
	{"MOV B,M", 0x46, 1, 7, mov},
	{"MOV B,A", 0x47, 1, 5, mov},
	{"MOV C,B", 0x48, 1, 5, mov},
	{"MOV C,C", 0x49, 1, 5, mov},
	{"MOV C,D", 0x4a, 1, 5, mov},
	{"MOV C,E", 0x4b, 1, 5, mov},
	{"MOV C,H", 0x4c, 1, 5, mov},
	{"MOV C,L", 0x4d, 1, 5, mov},
	{"MOV C,M", 0x4e, 1, 7, mov},
	{"MOV C,A", 0x4f, 1, 5, mov},

	{"MOV D,B", 0x50, 1, 5, mov},
	{"MOV D,C", 0x51, 1, 5, mov},
	{"MOV D,D", 0x52, 1, 5, mov},
	{"MOV D,E", 0x53, 1, 5, mov},
	{"MOV D,H", 0x54, 1, 5, mov},
	{"MOV D,L", 0x55, 1, 5, mov},
	{"MOV D,M", 0x56, 1, 7, mov},
	{"MOV D,A", 0x57, 1, 5, mov},
	{"MOV E,B", 0x58, 1, 5, mov},
	{"MOV E,C", 0x59, 1, 5, mov},
	{"MOV E,D", 0x5a, 1, 5, mov},
	{"MOV E,E", 0x5b, 1, 5, mov},
	{"MOV E,H", 0x5c, 1, 5, mov},
	{"MOV E,L", 0x5d, 1, 5, mov},
	{"MOV E,M", 0x5e, 1, 7, mov},
	{"MOV E,A", 0x5f, 1, 5, mov},

	{"MOV H,B", 0x60, 1, 5, mov},
	{"MOV H,C", 0x61, 1, 5, mov},
	{"MOV H,D", 0x62, 1, 5, mov},
	{"MOV H,E", 0x63, 1, 5, mov},
	{"MOV H,H", 0x64, 1, 5, mov},
	{"MOV H,L", 0x65, 1, 5, mov},
	{"MOV H,M", 0x66, 1, 7, mov},
	{"MOV H,A", 0x67, 1, 5, mov},
	{"MOV L,B", 0x68, 1, 5, mov},
	{"MOV L,C", 0x69, 1, 5, mov},
	{"MOV L,D", 0x6a, 1, 5, mov},
	{"MOV L,E", 0x6b, 1, 5, mov},
	{"MOV L,H", 0x6c, 1, 5, mov},
	{"MOV L,L", 0x6d, 1, 5, mov},
	{"MOV L,M", 0x6e, 1, 7, mov},
	{"MOV L,A", 0x6f, 1, 5, mov},

	{"MOV M,B", 0x70, 1, 7, mov},
	{"MOV M,C", 0x71, 1, 7, mov},
	{"MOV M,D", 0x72, 1, 7, mov},
	{"MOV M,E", 0x73, 1, 7, mov},
	{"MOV M,H", 0x74, 1, 7, mov},
	{"MOV M,L", 0x75, 1, 7, mov},
	{"HLT", 0x76, 1, 7, hlt},
	{"MOV M,A", 0x77, 1, 7, mov},
	{"MOV A,B", 0x78, 1, 5, mov},
	{"MOV A,C", 0x79, 1, 5, mov},
	{"MOV A,D", 0x7a, 1, 5, mov},
	{"MOV A,E", 0x7b, 1, 5, mov},
	{"MOV A,H", 0x7c, 1, 5, mov},
	{"MOV A,L", 0x7d, 1, 5, mov},
	{"MOV A,M", 0x7e, 1, 7, mov},
	{"MOV A,A", 0x7f, 1, 5, mov},

	{"ADD B", 0x80, 1, 4, add},
	{"ADD C", 0x81, 1, 4, add},
	{"ADD D", 0x82, 1, 4, add},
	{"ADD E", 0x83, 1, 4, add},
	{"ADD H", 0x84, 1, 4, add},
	{"ADD L", 0x85, 1, 4, add},
	{"ADD M", 0x86, 1, 7, add},
	{"ADD A", 0x87, 1, 4, add},
	{"ADC B", 0x88, 1, 4, adc},
	{"ADC C", 0x89, 1, 4, adc},
	{"ADC D", 0x8a, 1, 4, adc},
	{"ADC E", 0x8b, 1, 4, adc},
	{"ADC H", 0x8c, 1, 4, adc},
	{"ADC L", 0x8d, 1, 4, adc},
	{"ADC M", 0x8e, 1, 7, adc},
	{"ADC A", 0x8f, 1, 4, adc},

	{"SUB B", 0x90, 1, 4, sub},
	{"SUB C", 0x91, 1, 4, sub},
	{"SUB D", 0x92, 1, 4, sub},
	{"SUB E", 0x93, 1, 4, sub},
	{"SUB H", 0x94, 1, 4, sub},
	{"SUB L", 0x95, 1, 4, sub},
	{"SUB M", 0x96, 1, 7, sub},
	{"SUB A", 0x97, 1, 4, sub},
	{"SBB B", 0x98, 1, 4, sbb},
	{"SBB C", 0x99, 1, 4, sbb},
	{"SBB D", 0x9a, 1, 4, sbb},
	{"SBB E", 0x9b, 1, 4, sbb},
	{"SBB H", 0x9c, 1, 4, sbb},
	{"SBB L", 0x9d, 1, 4, sbb},
	{"SBB M", 0x9e, 1, 7, sbb},
	{"SBB A", 0x9f, 1, 4, sbb},

	{"ANA B", 0xa0, 1, 4, ana},
	{"ANA C", 0xa1, 1, 4, ana},
	{"ANA D", 0xa2, 1, 4, ana},
	{"ANA E", 0xa3, 1, 4, ana},
	{"ANA H", 0xa4, 1, 4, ana},
	{"ANA L", 0xa5, 1, 4, ana},
	{"ANA M", 0xa6, 1, 7, ana},
	{"ANA A", 0xa7, 1, 4, ana},
	{"XRA B", 0xa8, 1, 4, xra},
	{"XRA C", 0xa9, 1, 4, xra},
	{"XRA D", 0xaa, 1, 4, xra},
	{"XRA E", 0xab, 1, 4, xra},
	{"XRA H", 0xac, 1, 4, xra},
	{"XRA L", 0xad, 1, 4, xra},
	{"XRA M", 0xae, 1, 7, xra},
	{"XRA A", 0xaf, 1, 4, xra},

	{"ORA B", 0xb0, 1, 4, ora},
	{"ORA C", 0xb1, 1, 4, ora},
	{"ORA D", 0xb2, 1, 4, ora},
	{"ORA E", 0xb3, 1, 4, ora},
	{"ORA H", 0xb4, 1, 4, ora},
	{"ORA L", 0xb5, 1, 4, ora},
	{"ORA M", 0xb6, 1, 7, ora},
	{"ORA A", 0xb7, 1, 4, ora},
	{"CMP B", 0xb8, 1, 4, cmp},
	{"CMP C", 0xb9, 1, 4, cmp},
	{"CMP D", 0xba, 1, 4, cmp},
	{"CMP E", 0xbb, 1, 4, cmp},
	{"CMP H", 0xbc, 1, 4, cmp},
	{"CMP L", 0xbd, 1, 4, cmp},
	{"CMP M", 0xbe, 1, 7, cmp},
	{"CMP A", 0xbf, 1, 4, cmp},

	{"RNZ", 0xc0, 1, 11, rcond},
	{"POP B", 0xc1, 1, 10, pop},
	{"JNZ", 0xc2, 3, 10, jcond},
	{"JMP", 0xc3, 3, 10, jmp},
	{"CNZ", 0xc4, 3, 17, ccond},
	{"PUSH B", 0xc5, 1, 11, push},
	{"ADI", 0xc6, 2, 7, adi},
	{"RST 0", 0xc7, 1, 11, rst},
	{"RZ", 0xc8, 1, 11, rcond},
	{"RET", 0xc9, 1, 10, ret},
	{"JZ", 0xca, 3, 10, jcond},
	{"?", 0xcb, 1, 10, nil},
	{"CZ", 0xcc, 3, 10, ccond},
	{"CALL", 0xcd, 3, 17, call},
	{"ACI", 0xce, 2, 7, aci},
	{"RST 1", 0xcf, 1, 11, rst},

	{"RNC", 0xd0, 1, 11, rcond},
	{"POP D", 0xd1, 1, 10, pop},
	{"JNC", 0xd2, 3, 10, jcond},
	{"OUT", 0xd3, 2, 10, out},
	{"CNC", 0xd4, 3, 17, ccond},
	{"PUSH D", 0xd5, 1, 11, push},
	{"SUI", 0xd6, 2, 7, sui},
	{"RST 2", 0xd7, 1, 11, rst},
	{"RC", 0xd8, 1, 11, rcond},
	{"?", 0xd9, 1, 10, nil},
	{"JC", 0xda, 3, 10, jcond},
	{"IN", 0xdb, 2, 10, in},
	{"CC", 0xdc, 3, 10, ccond},
	{"?", 0xdd, 1, 17, nil},
	{"SBI", 0xde, 2, 7, sbi},
	{"RST 3", 0xdf, 1, 11, rst},

	{"RPO", 0xe0, 1, 11, rcond},
	{"POP H", 0xe1, 1, 10, pop},
	{"JPO", 0xe2, 3, 10, jcond},
	{"XTHL", 0xe3, 1, 18, xthl},
	{"CPO", 0xe4, 3, 17, ccond},
	{"PUSH H", 0xe5, 1, 11, push},
	{"ANI", 0xe6, 2, 7, ani},
	{"RST 4", 0xe7, 1, 11, rst},
	{"RPE", 0xe8, 1, 11, rcond},
	{"PCHL", 0xe9, 1, 5, pchl},
	{"JPE", 0xea, 3, 10, jcond},
	{"XCHG", 0xeb, 1, 5, xchg},
	{"CPE", 0xec, 3, 17, ccond},
	{"?", 0xed, 1, 17, nil},
	{"XRI", 0xee, 2, 7, xri},
	{"RST 5", 0xef, 1, 11, rst},

	{"RP", 0xf0, 1, 11, rcond},
	{"POP PSW", 0xf1, 1, 10, pop},
	{"JP", 0xf2, 3, 10, jcond},
	{"DI", 0xf3, 1, 4, di},
	{"CP", 0xf4, 3, 17, ccond},
	{"PUSH PSW", 0xf5, 1, 11, push},
	{"ORI", 0xf6, 2, 7, ori},
	{"RST 6", 0xf7, 1, 11, rst},
	{"RM", 0xf8, 1, 11, rcond},
	{"SPHL", 0xf9, 1, 5, sphl},
	{"JM", 0xfa, 3, 10, jcond},
	{"EI", 0xfb, 1, 4, ei},
	{"CM", 0xfc, 3, 17, ccond},
	{"?", 0xfd, 1, 17, nil},
	{"CPI", 0xfe, 2, 7, cpi},
	{"RST 7", 0xff, 1, 11, rst},
}

// Pre-built instruction set, created on first use.
var instructionSet *InstructionSet

// GetInstructionSet returns the 8080 instruction set, building and caching
// it on first call.
func GetInstructionSet() *InstructionSet {
	if instructionSet == nil {
		set := &InstructionSet{}
		for _, d := range instructionData {
			if set.instructions[d.Opcode].Length != 0 {
				panic("duplicate opcode in instruction data")
			}
			set.instructions[d.Opcode] = d
		}
		for i := range set.instructions {
			if set.instructions[i].Length == 0 {
				panic("unassigned opcode in instruction data")
			}
		}
		instructionSet = set
	}
	return instructionSet
}

// dstIndex extracts the destination register field of an opcode.
func dstIndex(opcode byte) byte {
	return (opcode >> 3) & 7
}

// srcIndex extracts the source register field of an opcode.
func srcIndex(opcode byte) byte {
	return opcode & 7
}

// pairIndex extracts the register pair field of an opcode.
func pairIndex(opcode byte) byte {
	return (opcode >> 4) & 3
}

func nop(c *CPU, inst *Instruction) int {
	return 0
}

func lxi(c *CPU, inst *Instruction) int {
	c.setPair(pairIndex(inst.Opcode), c.imm16())
	return 2
}

func stax(c *CPU, inst *Instruction) int {
	c.storeByte(c.getPair(pairIndex(inst.Opcode)), c.Reg.A)
	return 0
}

func ldax(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Mem.LoadByte(c.getPair(pairIndex(inst.Opcode)))
	return 0
}

func inx(c *CPU, inst *Instruction) int {
	i := pairIndex(inst.Opcode)
	c.setPair(i, c.getPair(i)+1)
	return 0
}

func dcx(c *CPU, inst *Instruction) int {
	i := pairIndex(inst.Opcode)
	c.setPair(i, c.getPair(i)-1)
	return 0
}

func inr(c *CPU, inst *Instruction) int {
	i := dstIndex(inst.Opcode)
	c.setReg(i, c.Reg.inr(c.getReg(i)))
	return 0
}

func dcr(c *CPU, inst *Instruction) int {
	i := dstIndex(inst.Opcode)
	c.setReg(i, c.Reg.dcr(c.getReg(i)))
	return 0
}

func mvi(c *CPU, inst *Instruction) int {
	c.setReg(dstIndex(inst.Opcode), c.imm8())
	return 1
}

func dad(c *CPU, inst *Instruction) int {
	c.Reg.SetHL(c.Reg.dad(c.Reg.HL(), c.getPair(pairIndex(inst.Opcode))))
	return 0
}

func rlc(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.rotateLeft(c.Reg.A, false)
	return 0
}

func ral(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.rotateLeft(c.Reg.A, true)
	return 0
}

func rrc(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.rotateRight(c.Reg.A, false)
	return 0
}

func rar(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.rotateRight(c.Reg.A, true)
	return 0
}

func shld(c *CPU, inst *Instruction) int {
	addr := c.imm16()
	c.storeByte(addr, c.Reg.L)
	c.storeByte(addr+1, c.Reg.H)
	return 2
}

func lhld(c *CPU, inst *Instruction) int {
	addr := c.imm16()
	c.Reg.L = c.Mem.LoadByte(addr)
	c.Reg.H = c.Mem.LoadByte(addr + 1)
	return 2
}

func sta(c *CPU, inst *Instruction) int {
	c.storeByte(c.imm16(), c.Reg.A)
	return 2
}

func lda(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Mem.LoadByte(c.imm16())
	return 2
}

func daa(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.daa(c.Reg.A)
	return 0
}

func cma(c *CPU, inst *Instruction) int {
	c.Reg.A = ^c.Reg.A
	return 0
}

func stc(c *CPU, inst *Instruction) int {
	c.Reg.Carry = true
	return 0
}

func cmc(c *CPU, inst *Instruction) int {
	c.Reg.Carry = !c.Reg.Carry
	return 0
}

func mov(c *CPU, inst *Instruction) int {
	c.setReg(dstIndex(inst.Opcode), c.getReg(srcIndex(inst.Opcode)))
	return 0
}

func hlt(c *CPU, inst *Instruction) int {
	return haltSentinel
}

func add(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.add(c.Reg.A, c.getReg(srcIndex(inst.Opcode)))
	return 0
}

func adc(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.adc(c.Reg.A, c.getReg(srcIndex(inst.Opcode)))
	return 0
}

func sub(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.sub(c.Reg.A, c.getReg(srcIndex(inst.Opcode)))
	return 0
}

func sbb(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.sbb(c.Reg.A, c.getReg(srcIndex(inst.Opcode)))
	return 0
}

func ana(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.and(c.Reg.A, c.getReg(srcIndex(inst.Opcode)))
	return 0
}

func xra(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.xor(c.Reg.A, c.getReg(srcIndex(inst.Opcode)))
	return 0
}

func ora(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.or(c.Reg.A, c.getReg(srcIndex(inst.Opcode)))
	return 0
}

func cmp(c *CPU, inst *Instruction) int {
	c.Reg.cmp(c.Reg.A, c.getReg(srcIndex(inst.Opcode)))
	return 0
}

func adi(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.add(c.Reg.A, c.imm8())
	return 1
}

func aci(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.adc(c.Reg.A, c.imm8())
	return 1
}

func sui(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.sub(c.Reg.A, c.imm8())
	return 1
}

func sbi(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.sbb(c.Reg.A, c.imm8())
	return 1
}

func ani(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.and(c.Reg.A, c.imm8())
	return 1
}

func xri(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.xor(c.Reg.A, c.imm8())
	return 1
}

func ori(c *CPU, inst *Instruction) int {
	c.Reg.A = c.Reg.or(c.Reg.A, c.imm8())
	return 1
}

func cpi(c *CPU, inst *Instruction) int {
	c.Reg.cmp(c.Reg.A, c.imm8())
	return 1
}

func jmp(c *CPU, inst *Instruction) int {
	c.jump(c.imm16(), true)
	return 0
}

func jcond(c *CPU, inst *Instruction) int {
	if !c.condition(dstIndex(inst.Opcode)) {
		return 2
	}
	c.jump(c.imm16(), true)
	return 0
}

func call(c *CPU, inst *Instruction) int {
	c.call(c.imm16(), c.Reg.PC+2, true)
	return 0
}

func ccond(c *CPU, inst *Instruction) int {
	if !c.condition(dstIndex(inst.Opcode)) {
		return 2
	}
	c.call(c.imm16(), c.Reg.PC+2, true)
	return 0
}

func ret(c *CPU, inst *Instruction) int {
	c.ret(true)
	return 0
}

func rcond(c *CPU, inst *Instruction) int {
	c.ret(c.condition(dstIndex(inst.Opcode)))
	return 0
}

func rst(c *CPU, inst *Instruction) int {
	c.call(uint16(inst.Opcode&0x38), c.Reg.PC, true)
	return 0
}

func push(c *CPU, inst *Instruction) int {
	if i := pairIndex(inst.Opcode); i == 3 {
		c.push(c.Reg.A, c.Reg.SavePSW())
	} else {
		v := c.getPair(i)
		c.push(byte(v>>8), byte(v))
	}
	return 0
}

func pop(c *CPU, inst *Instruction) int {
	hi, lo := c.pop()
	if i := pairIndex(inst.Opcode); i == 3 {
		c.Reg.A = hi
		c.Reg.RestorePSW(lo)
	} else {
		c.setPair(i, uint16(hi)<<8|uint16(lo))
	}
	return 0
}

func pchl(c *CPU, inst *Instruction) int {
	c.Reg.PC = c.Reg.HL()
	return 0
}

func sphl(c *CPU, inst *Instruction) int {
	c.Reg.SP = c.Reg.HL()
	return 0
}

func xchg(c *CPU, inst *Instruction) int {
	d, e := c.Reg.D, c.Reg.E
	c.Reg.D, c.Reg.E = c.Reg.H, c.Reg.L
	c.Reg.H, c.Reg.L = d, e
	return 0
}

func xthl(c *CPU, inst *Instruction) int {
	lo := c.Mem.LoadByte(c.Reg.SP)
	hi := c.Mem.LoadByte(c.Reg.SP + 1)
	c.storeByte(c.Reg.SP, c.Reg.L)
	c.storeByte(c.Reg.SP+1, c.Reg.H)
	c.Reg.L, c.Reg.H = lo, hi
	return 0
}

func in(c *CPU, inst *Instruction) int {
	port := c.imm8()
	if c.io != nil {
		c.Reg.A = c.io.In(port)
	} else {
		c.Reg.A = 0
	}
	return 1
}

func out(c *CPU, inst *Instruction) int {
	port := c.imm8()
	if c.io != nil {
		c.io.Out(port, c.Reg.A)
	}
	return 1
}

func ei(c *CPU, inst *Instruction) int {
	c.InterruptEnabled = true
	return 0
}

func di(c *CPU, inst *Instruction) int {
	c.InterruptEnabled = false
	return 0
}
