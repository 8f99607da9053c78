package cpu

// Opcode is one entry of the opcode table: the decode-time information the
// main loop needs (mnemonic for diagnostics, addressing mode, total
// instruction length including the opcode byte, base cycle count) plus the
// handler that implements its semantics.
type Opcode struct {
	Mnemonic string
	Mode     Mode
	Len      uint8
	Cycles   uint8
	exec     func(*State, uint16) error
}

// opcodeTable maps opcode byte to its definition. Only the 151 documented
// NMOS 6502 opcodes are present; every other slot is nil and Step reports
// UnknownOpcode for it. The table is built once, in entries below, and
// never mutated afterward.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]*Opcode {
	var t [256]*Opcode
	for _, e := range opcodeEntries {
		if t[e.code] != nil {
			panic("duplicate opcode in table: " + e.op.Mnemonic)
		}
		op := e.op
		t[e.code] = &op
	}
	return t
}

// Lookup returns the opcode table entry for b, or nil if b is not one of
// the 151 documented opcodes.
func Lookup(b uint8) *Opcode {
	return opcodeTable[b]
}

type opcodeEntry struct {
	code uint8
	op   Opcode
}

// opcodeEntries lists every documented opcode exactly once. Cycle counts are
// the base (no page-cross or branch-taken) counts from the standard 6502
// reference tables; this core does not use them for timing (see the
// package doc); they are kept for table completeness only.
var opcodeEntries = []opcodeEntry{
	// ADC
	{0x69, Opcode{"ADC", ModeImmediate, 2, 2, opADC}},
	{0x65, Opcode{"ADC", ModeZeroPage, 2, 3, opADC}},
	{0x75, Opcode{"ADC", ModeZeroPageX, 2, 4, opADC}},
	{0x6D, Opcode{"ADC", ModeAbsolute, 3, 4, opADC}},
	{0x7D, Opcode{"ADC", ModeAbsoluteX, 3, 4, opADC}},
	{0x79, Opcode{"ADC", ModeAbsoluteY, 3, 4, opADC}},
	{0x61, Opcode{"ADC", ModeIndirectX, 2, 6, opADC}},
	{0x71, Opcode{"ADC", ModeIndirectY, 2, 5, opADC}},

	// AND
	{0x29, Opcode{"AND", ModeImmediate, 2, 2, opAND}},
	{0x25, Opcode{"AND", ModeZeroPage, 2, 3, opAND}},
	{0x35, Opcode{"AND", ModeZeroPageX, 2, 4, opAND}},
	{0x2D, Opcode{"AND", ModeAbsolute, 3, 4, opAND}},
	{0x3D, Opcode{"AND", ModeAbsoluteX, 3, 4, opAND}},
	{0x39, Opcode{"AND", ModeAbsoluteY, 3, 4, opAND}},
	{0x21, Opcode{"AND", ModeIndirectX, 2, 6, opAND}},
	{0x31, Opcode{"AND", ModeIndirectY, 2, 5, opAND}},

	// ASL
	{0x0A, Opcode{"ASL", ModeImplied, 1, 2, opASLAcc}},
	{0x06, Opcode{"ASL", ModeZeroPage, 2, 5, opASL}},
	{0x16, Opcode{"ASL", ModeZeroPageX, 2, 6, opASL}},
	{0x0E, Opcode{"ASL", ModeAbsolute, 3, 6, opASL}},
	{0x1E, Opcode{"ASL", ModeAbsoluteX, 3, 7, opASL}},

	// Branches
	{0x90, Opcode{"BCC", ModeImplied, 2, 2, opBCC}},
	{0xB0, Opcode{"BCS", ModeImplied, 2, 2, opBCS}},
	{0xF0, Opcode{"BEQ", ModeImplied, 2, 2, opBEQ}},
	{0x30, Opcode{"BMI", ModeImplied, 2, 2, opBMI}},
	{0xD0, Opcode{"BNE", ModeImplied, 2, 2, opBNE}},
	{0x10, Opcode{"BPL", ModeImplied, 2, 2, opBPL}},
	{0x50, Opcode{"BVC", ModeImplied, 2, 2, opBVC}},
	{0x70, Opcode{"BVS", ModeImplied, 2, 2, opBVS}},

	// BIT
	{0x24, Opcode{"BIT", ModeZeroPage, 2, 3, opBIT}},
	{0x2C, Opcode{"BIT", ModeAbsolute, 3, 4, opBIT}},

	// BRK
	{0x00, Opcode{"BRK", ModeImplied, 1, 7, opBRK}},

	// Flag clear/set
	{0x18, Opcode{"CLC", ModeImplied, 1, 2, opCLC}},
	{0xD8, Opcode{"CLD", ModeImplied, 1, 2, opCLD}},
	{0x58, Opcode{"CLI", ModeImplied, 1, 2, opCLI}},
	{0xB8, Opcode{"CLV", ModeImplied, 1, 2, opCLV}},
	{0x38, Opcode{"SEC", ModeImplied, 1, 2, opSEC}},
	{0xF8, Opcode{"SED", ModeImplied, 1, 2, opSED}},
	{0x78, Opcode{"SEI", ModeImplied, 1, 2, opSEI}},

	// CMP
	{0xC9, Opcode{"CMP", ModeImmediate, 2, 2, opCMP}},
	{0xC5, Opcode{"CMP", ModeZeroPage, 2, 3, opCMP}},
	{0xD5, Opcode{"CMP", ModeZeroPageX, 2, 4, opCMP}},
	{0xCD, Opcode{"CMP", ModeAbsolute, 3, 4, opCMP}},
	{0xDD, Opcode{"CMP", ModeAbsoluteX, 3, 4, opCMP}},
	{0xD9, Opcode{"CMP", ModeAbsoluteY, 3, 4, opCMP}},
	{0xC1, Opcode{"CMP", ModeIndirectX, 2, 6, opCMP}},
	{0xD1, Opcode{"CMP", ModeIndirectY, 2, 5, opCMP}},

	// CPX / CPY
	{0xE0, Opcode{"CPX", ModeImmediate, 2, 2, opCPX}},
	{0xE4, Opcode{"CPX", ModeZeroPage, 2, 3, opCPX}},
	{0xEC, Opcode{"CPX", ModeAbsolute, 3, 4, opCPX}},
	{0xC0, Opcode{"CPY", ModeImmediate, 2, 2, opCPY}},
	{0xC4, Opcode{"CPY", ModeZeroPage, 2, 3, opCPY}},
	{0xCC, Opcode{"CPY", ModeAbsolute, 3, 4, opCPY}},

	// DEC / INC (memory)
	{0xC6, Opcode{"DEC", ModeZeroPage, 2, 5, opDEC}},
	{0xD6, Opcode{"DEC", ModeZeroPageX, 2, 6, opDEC}},
	{0xCE, Opcode{"DEC", ModeAbsolute, 3, 6, opDEC}},
	{0xDE, Opcode{"DEC", ModeAbsoluteX, 3, 7, opDEC}},
	{0xE6, Opcode{"INC", ModeZeroPage, 2, 5, opINC}},
	{0xF6, Opcode{"INC", ModeZeroPageX, 2, 6, opINC}},
	{0xEE, Opcode{"INC", ModeAbsolute, 3, 6, opINC}},
	{0xFE, Opcode{"INC", ModeAbsoluteX, 3, 7, opINC}},

	// Register inc/dec
	{0xCA, Opcode{"DEX", ModeImplied, 1, 2, opDEX}},
	{0x88, Opcode{"DEY", ModeImplied, 1, 2, opDEY}},
	{0xE8, Opcode{"INX", ModeImplied, 1, 2, opINX}},
	{0xC8, Opcode{"INY", ModeImplied, 1, 2, opINY}},

	// EOR
	{0x49, Opcode{"EOR", ModeImmediate, 2, 2, opEOR}},
	{0x45, Opcode{"EOR", ModeZeroPage, 2, 3, opEOR}},
	{0x55, Opcode{"EOR", ModeZeroPageX, 2, 4, opEOR}},
	{0x4D, Opcode{"EOR", ModeAbsolute, 3, 4, opEOR}},
	{0x5D, Opcode{"EOR", ModeAbsoluteX, 3, 4, opEOR}},
	{0x59, Opcode{"EOR", ModeAbsoluteY, 3, 4, opEOR}},
	{0x41, Opcode{"EOR", ModeIndirectX, 2, 6, opEOR}},
	{0x51, Opcode{"EOR", ModeIndirectY, 2, 5, opEOR}},

	// JMP / JSR
	{0x4C, Opcode{"JMP", ModeAbsolute, 3, 3, opJMP}},
	{0x6C, Opcode{"JMP", ModeAbsolute, 3, 5, opJMPIndirect}},
	{0x20, Opcode{"JSR", ModeAbsolute, 3, 6, opJSR}},

	// LDA / LDX / LDY
	{0xA9, Opcode{"LDA", ModeImmediate, 2, 2, opLDA}},
	{0xA5, Opcode{"LDA", ModeZeroPage, 2, 3, opLDA}},
	{0xB5, Opcode{"LDA", ModeZeroPageX, 2, 4, opLDA}},
	{0xAD, Opcode{"LDA", ModeAbsolute, 3, 4, opLDA}},
	{0xBD, Opcode{"LDA", ModeAbsoluteX, 3, 4, opLDA}},
	{0xB9, Opcode{"LDA", ModeAbsoluteY, 3, 4, opLDA}},
	{0xA1, Opcode{"LDA", ModeIndirectX, 2, 6, opLDA}},
	{0xB1, Opcode{"LDA", ModeIndirectY, 2, 5, opLDA}},

	{0xA2, Opcode{"LDX", ModeImmediate, 2, 2, opLDX}},
	{0xA6, Opcode{"LDX", ModeZeroPage, 2, 3, opLDX}},
	{0xB6, Opcode{"LDX", ModeZeroPageY, 2, 4, opLDX}},
	{0xAE, Opcode{"LDX", ModeAbsolute, 3, 4, opLDX}},
	{0xBE, Opcode{"LDX", ModeAbsoluteY, 3, 4, opLDX}},

	{0xA0, Opcode{"LDY", ModeImmediate, 2, 2, opLDY}},
	{0xA4, Opcode{"LDY", ModeZeroPage, 2, 3, opLDY}},
	{0xB4, Opcode{"LDY", ModeZeroPageX, 2, 4, opLDY}},
	{0xAC, Opcode{"LDY", ModeAbsolute, 3, 4, opLDY}},
	{0xBC, Opcode{"LDY", ModeAbsoluteX, 3, 4, opLDY}},

	// LSR
	{0x4A, Opcode{"LSR", ModeImplied, 1, 2, opLSRAcc}},
	{0x46, Opcode{"LSR", ModeZeroPage, 2, 5, opLSR}},
	{0x56, Opcode{"LSR", ModeZeroPageX, 2, 6, opLSR}},
	{0x4E, Opcode{"LSR", ModeAbsolute, 3, 6, opLSR}},
	{0x5E, Opcode{"LSR", ModeAbsoluteX, 3, 7, opLSR}},

	// NOP
	{0xEA, Opcode{"NOP", ModeImplied, 1, 2, opNOP}},

	// ORA
	{0x09, Opcode{"ORA", ModeImmediate, 2, 2, opORA}},
	{0x05, Opcode{"ORA", ModeZeroPage, 2, 3, opORA}},
	{0x15, Opcode{"ORA", ModeZeroPageX, 2, 4, opORA}},
	{0x0D, Opcode{"ORA", ModeAbsolute, 3, 4, opORA}},
	{0x1D, Opcode{"ORA", ModeAbsoluteX, 3, 4, opORA}},
	{0x19, Opcode{"ORA", ModeAbsoluteY, 3, 4, opORA}},
	{0x01, Opcode{"ORA", ModeIndirectX, 2, 6, opORA}},
	{0x11, Opcode{"ORA", ModeIndirectY, 2, 5, opORA}},

	// Stack
	{0x48, Opcode{"PHA", ModeImplied, 1, 3, opPHA}},
	{0x08, Opcode{"PHP", ModeImplied, 1, 3, opPHP}},
	{0x68, Opcode{"PLA", ModeImplied, 1, 4, opPLA}},
	{0x28, Opcode{"PLP", ModeImplied, 1, 4, opPLP}},

	// ROL / ROR
	{0x2A, Opcode{"ROL", ModeImplied, 1, 2, opROLAcc}},
	{0x26, Opcode{"ROL", ModeZeroPage, 2, 5, opROL}},
	{0x36, Opcode{"ROL", ModeZeroPageX, 2, 6, opROL}},
	{0x2E, Opcode{"ROL", ModeAbsolute, 3, 6, opROL}},
	{0x3E, Opcode{"ROL", ModeAbsoluteX, 3, 7, opROL}},
	{0x6A, Opcode{"ROR", ModeImplied, 1, 2, opRORAcc}},
	{0x66, Opcode{"ROR", ModeZeroPage, 2, 5, opROR}},
	{0x76, Opcode{"ROR", ModeZeroPageX, 2, 6, opROR}},
	{0x6E, Opcode{"ROR", ModeAbsolute, 3, 6, opROR}},
	{0x7E, Opcode{"ROR", ModeAbsoluteX, 3, 7, opROR}},

	// RTI / RTS
	{0x40, Opcode{"RTI", ModeImplied, 1, 6, opRTI}},
	{0x60, Opcode{"RTS", ModeImplied, 1, 6, opRTS}},

	// SBC
	{0xE9, Opcode{"SBC", ModeImmediate, 2, 2, opSBC}},
	{0xE5, Opcode{"SBC", ModeZeroPage, 2, 3, opSBC}},
	{0xF5, Opcode{"SBC", ModeZeroPageX, 2, 4, opSBC}},
	{0xED, Opcode{"SBC", ModeAbsolute, 3, 4, opSBC}},
	{0xFD, Opcode{"SBC", ModeAbsoluteX, 3, 4, opSBC}},
	{0xF9, Opcode{"SBC", ModeAbsoluteY, 3, 4, opSBC}},
	{0xE1, Opcode{"SBC", ModeIndirectX, 2, 6, opSBC}},
	{0xF1, Opcode{"SBC", ModeIndirectY, 2, 5, opSBC}},

	// STA / STX / STY
	{0x85, Opcode{"STA", ModeZeroPage, 2, 3, opSTA}},
	{0x95, Opcode{"STA", ModeZeroPageX, 2, 4, opSTA}},
	{0x8D, Opcode{"STA", ModeAbsolute, 3, 4, opSTA}},
	{0x9D, Opcode{"STA", ModeAbsoluteX, 3, 5, opSTA}},
	{0x99, Opcode{"STA", ModeAbsoluteY, 3, 5, opSTA}},
	{0x81, Opcode{"STA", ModeIndirectX, 2, 6, opSTA}},
	{0x91, Opcode{"STA", ModeIndirectY, 2, 6, opSTA}},

	{0x86, Opcode{"STX", ModeZeroPage, 2, 3, opSTX}},
	{0x96, Opcode{"STX", ModeZeroPageY, 2, 4, opSTX}},
	{0x8E, Opcode{"STX", ModeAbsolute, 3, 4, opSTX}},

	{0x84, Opcode{"STY", ModeZeroPage, 2, 3, opSTY}},
	{0x94, Opcode{"STY", ModeZeroPageX, 2, 4, opSTY}},
	{0x8C, Opcode{"STY", ModeAbsolute, 3, 4, opSTY}},

	// Register transfers
	{0xAA, Opcode{"TAX", ModeImplied, 1, 2, opTAX}},
	{0xA8, Opcode{"TAY", ModeImplied, 1, 2, opTAY}},
	{0xBA, Opcode{"TSX", ModeImplied, 1, 2, opTSX}},
	{0x8A, Opcode{"TXA", ModeImplied, 1, 2, opTXA}},
	{0x9A, Opcode{"TXS", ModeImplied, 1, 2, opTXS}},
	{0x98, Opcode{"TYA", ModeImplied, 1, 2, opTYA}},
}
