package cpu

// This file implements the semantics of every documented 6502 instruction.
// Handlers share the signature func(*State, uint16) error; addr is the
// effective address resolve computed for addressable modes and is unused
// (zero) for Implied-mode opcodes, which instead read whatever they need
// directly off PC or the registers.

// --- Load / Store -----------------------------------------------------

func opLDA(s *State, addr uint16) error {
	s.A = s.Mem.Read8(addr)
	s.updateZN(s.A)
	return nil
}

func opLDX(s *State, addr uint16) error {
	s.X = s.Mem.Read8(addr)
	s.updateZN(s.X)
	return nil
}

func opLDY(s *State, addr uint16) error {
	s.Y = s.Mem.Read8(addr)
	s.updateZN(s.Y)
	return nil
}

func opSTA(s *State, addr uint16) error {
	s.Mem.Write8(addr, s.A)
	return nil
}

func opSTX(s *State, addr uint16) error {
	s.Mem.Write8(addr, s.X)
	return nil
}

func opSTY(s *State, addr uint16) error {
	s.Mem.Write8(addr, s.Y)
	return nil
}

// --- Register transfers ------------------------------------------------

func opTAX(s *State, _ uint16) error { s.X = s.A; s.updateZN(s.X); return nil }
func opTAY(s *State, _ uint16) error { s.Y = s.A; s.updateZN(s.Y); return nil }
func opTSX(s *State, _ uint16) error { s.X = s.SP; s.updateZN(s.X); return nil }
func opTXA(s *State, _ uint16) error { s.A = s.X; s.updateZN(s.A); return nil }
func opTYA(s *State, _ uint16) error { s.A = s.Y; s.updateZN(s.A); return nil }

// opTXS copies X into SP directly; unlike the other transfers this never
// touches the flags.
func opTXS(s *State, _ uint16) error { s.SP = s.X; return nil }

// --- Stack ---------------------------------------------------------------

func opPHA(s *State, _ uint16) error { s.push8(s.A); return nil }

func opPLA(s *State, _ uint16) error {
	s.A = s.pop8()
	s.updateZN(s.A)
	return nil
}

// opPHP pushes P with both B and B2 forced high, matching how a real 6502
// always reports itself as having triggered a software break when P is
// pushed explicitly (as opposed to pushed by a hardware interrupt).
func opPHP(s *State, _ uint16) error {
	s.push8(s.P | FlagB | FlagB2)
	return nil
}

func opPLP(s *State, _ uint16) error {
	s.P = s.pop8()
	return nil
}

// --- Logic ---------------------------------------------------------------

func opAND(s *State, addr uint16) error {
	s.A &= s.Mem.Read8(addr)
	s.updateZN(s.A)
	return nil
}

func opORA(s *State, addr uint16) error {
	s.A |= s.Mem.Read8(addr)
	s.updateZN(s.A)
	return nil
}

func opEOR(s *State, addr uint16) error {
	s.A ^= s.Mem.Read8(addr)
	s.updateZN(s.A)
	return nil
}

// --- Arithmetic ------------------------------------------------------------

// adc implements the shared ADC/SBC math: SBC calls this with its operand
// one's-complemented first, per the open question resolved in DESIGN.md.
// Decimal mode is deliberately ignored here (Ricoh/NES behavior).
func (s *State) adc(value uint8) {
	carry := uint16(s.P & FlagC)
	sum := uint16(s.A) + uint16(value) + carry
	result := uint8(sum)
	s.setFlag(FlagV, (s.A^result)&(value^result)&0x80 != 0)
	s.setFlag(FlagC, sum > 0xFF)
	s.A = result
	s.updateZN(s.A)
}

func opADC(s *State, addr uint16) error {
	s.adc(s.Mem.Read8(addr))
	return nil
}

func opSBC(s *State, addr uint16) error {
	s.adc(s.Mem.Read8(addr) ^ 0xFF)
	return nil
}

// --- Compare ---------------------------------------------------------------

func (s *State) compare(reg, value uint8) {
	s.updateZN(reg - value)
	s.setFlag(FlagC, reg >= value)
}

func opCMP(s *State, addr uint16) error { s.compare(s.A, s.Mem.Read8(addr)); return nil }
func opCPX(s *State, addr uint16) error { s.compare(s.X, s.Mem.Read8(addr)); return nil }
func opCPY(s *State, addr uint16) error { s.compare(s.Y, s.Mem.Read8(addr)); return nil }

// --- Increment / decrement ---------------------------------------------

func opINC(s *State, addr uint16) error {
	v := s.Mem.Read8(addr) + 1
	s.Mem.Write8(addr, v)
	s.updateZN(v)
	return nil
}

func opDEC(s *State, addr uint16) error {
	v := s.Mem.Read8(addr) - 1
	s.Mem.Write8(addr, v)
	s.updateZN(v)
	return nil
}

func opINX(s *State, _ uint16) error { s.X++; s.updateZN(s.X); return nil }
func opINY(s *State, _ uint16) error { s.Y++; s.updateZN(s.Y); return nil }
func opDEX(s *State, _ uint16) error { s.X--; s.updateZN(s.X); return nil }
func opDEY(s *State, _ uint16) error { s.Y--; s.updateZN(s.Y); return nil }

// --- Shifts and rotates --------------------------------------------------

func opASLAcc(s *State, _ uint16) error {
	s.setFlag(FlagC, s.A&0x80 != 0)
	s.A <<= 1
	s.updateZN(s.A)
	return nil
}

func opASL(s *State, addr uint16) error {
	v := s.Mem.Read8(addr)
	s.setFlag(FlagC, v&0x80 != 0)
	v <<= 1
	s.Mem.Write8(addr, v)
	s.updateZN(v)
	return nil
}

func opLSRAcc(s *State, _ uint16) error {
	s.setFlag(FlagC, s.A&0x01 != 0)
	s.A >>= 1
	s.updateZN(s.A)
	return nil
}

func opLSR(s *State, addr uint16) error {
	v := s.Mem.Read8(addr)
	s.setFlag(FlagC, v&0x01 != 0)
	v >>= 1
	s.Mem.Write8(addr, v)
	s.updateZN(v)
	return nil
}

func opROLAcc(s *State, _ uint16) error {
	carryIn := s.P & FlagC
	s.setFlag(FlagC, s.A&0x80 != 0)
	s.A = (s.A << 1) | carryIn
	s.updateZN(s.A)
	return nil
}

func opROL(s *State, addr uint16) error {
	v := s.Mem.Read8(addr)
	carryIn := s.P & FlagC
	s.setFlag(FlagC, v&0x80 != 0)
	v = (v << 1) | carryIn
	s.Mem.Write8(addr, v)
	s.updateZN(v)
	return nil
}

func opRORAcc(s *State, _ uint16) error {
	carryIn := s.P & FlagC
	s.setFlag(FlagC, s.A&0x01 != 0)
	s.A = (s.A >> 1) | (carryIn << 7)
	s.updateZN(s.A)
	return nil
}

func opROR(s *State, addr uint16) error {
	v := s.Mem.Read8(addr)
	carryIn := s.P & FlagC
	s.setFlag(FlagC, v&0x01 != 0)
	v = (v >> 1) | (carryIn << 7)
	s.Mem.Write8(addr, v)
	s.updateZN(v)
	return nil
}

// --- BIT -------------------------------------------------------------------

func opBIT(s *State, addr uint16) error {
	v := s.Mem.Read8(addr)
	s.setFlag(FlagN, v&0x80 != 0)
	s.setFlag(FlagV, v&0x40 != 0)
	s.setFlag(FlagZ, s.A&v == 0)
	return nil
}

// --- Flag set/clear ----------------------------------------------------

func opSEC(s *State, _ uint16) error { s.setFlag(FlagC, true); return nil }
func opSED(s *State, _ uint16) error { s.setFlag(FlagD, true); return nil }
func opSEI(s *State, _ uint16) error { s.setFlag(FlagI, true); return nil }
func opCLC(s *State, _ uint16) error { s.setFlag(FlagC, false); return nil }
func opCLD(s *State, _ uint16) error { s.setFlag(FlagD, false); return nil }
func opCLI(s *State, _ uint16) error { s.setFlag(FlagI, false); return nil }
func opCLV(s *State, _ uint16) error { s.setFlag(FlagV, false); return nil }

// --- NOP -------------------------------------------------------------------

func opNOP(s *State, _ uint16) error { return nil }

// --- Branches --------------------------------------------------------------

// branch reads the operand byte as a signed offset and, if taken, computes
// the new PC from the position just after that byte. PC is left alone when
// not taken, so the main loop's normal post-instruction advance handles
// skipping the operand.
func (s *State) branch(taken bool) {
	if !taken {
		return
	}
	offset := int8(s.Mem.Read8(s.PC))
	s.PC = s.PC + 1 + uint16(int16(offset))
}

func opBCC(s *State, _ uint16) error { s.branch(s.P&FlagC == 0); return nil }
func opBCS(s *State, _ uint16) error { s.branch(s.P&FlagC != 0); return nil }
func opBEQ(s *State, _ uint16) error { s.branch(s.P&FlagZ != 0); return nil }
func opBNE(s *State, _ uint16) error { s.branch(s.P&FlagZ == 0); return nil }
func opBMI(s *State, _ uint16) error { s.branch(s.P&FlagN != 0); return nil }
func opBPL(s *State, _ uint16) error { s.branch(s.P&FlagN == 0); return nil }
func opBVC(s *State, _ uint16) error { s.branch(s.P&FlagV == 0); return nil }
func opBVS(s *State, _ uint16) error { s.branch(s.P&FlagV != 0); return nil }

// --- Jumps, calls, returns ---------------------------------------------

func opJMP(s *State, addr uint16) error {
	s.PC = addr
	return nil
}

// opJMPIndirect implements the page-wrap bug in real 6502 silicon: when the
// pointer's low byte is 0xFF, the high byte of the target is fetched from
// the start of the same page rather than the next page.
func opJMPIndirect(s *State, ptr uint16) error {
	lo := s.Mem.Read8(ptr)
	hiAddr := ptr + 1
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	}
	hi := s.Mem.Read8(hiAddr)
	s.PC = (uint16(hi) << 8) | uint16(lo)
	return nil
}

// opJSR pushes the address of the last byte of the 3-byte JSR instruction
// (high byte first) and jumps to addr. s.PC at this point still points at
// the low byte of the operand, since resolve never mutates it.
func opJSR(s *State, addr uint16) error {
	s.push16(s.PC + 1)
	s.PC = addr
	return nil
}

func opRTS(s *State, _ uint16) error {
	s.PC = s.pop16() + 1
	return nil
}

// opRTI pops P (forcing B2 high and B low, since interrupt returns never
// carry a pending software break) then pops PC with no adjustment.
func opRTI(s *State, _ uint16) error {
	p := s.pop8()
	p = (p &^ FlagB) | FlagB2
	s.P = p
	s.PC = s.pop16()
	return nil
}

// opBRK is a no-op: the run loop treats the BRK opcode itself as the halt
// signal (see State.Step). A full 6502 would push PC+1 and P|B here and
// vector through IRQVector; that behavior is not needed by this core's test
// harness and is left out, per the package doc.
func opBRK(s *State, _ uint16) error { return nil }
