package cpu

// Mode is the addressing-mode tag carried by every opcode-table entry.
type Mode int

// The ten addressing modes the resolver understands. Implied covers both
// true no-operand instructions (CLC, TAX, RTS, RTI, ...) and the special
// cases (accumulator shifts, relative branches) whose handlers compute
// their own operand without going through resolve. JMP indirect and JSR
// are tagged Absolute: resolve yields the pointer or target address.
const (
	ModeImplied Mode = iota
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirectX
	ModeIndirectY
)

func (m Mode) String() string {
	switch m {
	case ModeImplied:
		return "Implied"
	case ModeImmediate:
		return "Immediate"
	case ModeZeroPage:
		return "ZeroPage"
	case ModeZeroPageX:
		return "ZeroPageX"
	case ModeZeroPageY:
		return "ZeroPageY"
	case ModeAbsolute:
		return "Absolute"
	case ModeAbsoluteX:
		return "AbsoluteX"
	case ModeAbsoluteY:
		return "AbsoluteY"
	case ModeIndirectX:
		return "IndirectX"
	case ModeIndirectY:
		return "IndirectY"
	default:
		return "Unknown"
	}
}

// resolve computes the effective address for mode given the current PC and
// index registers. PC must still be pointing at the first operand byte (it
// has not yet been advanced past the operand). resolve never mutates PC —
// callers advance it separately once the instruction is known to not have
// done so itself.
func (s *State) resolve(mode Mode) (uint16, error) {
	switch mode {
	case ModeImmediate:
		return s.PC, nil
	case ModeZeroPage:
		return uint16(s.Mem.Read8(s.PC)), nil
	case ModeZeroPageX:
		return uint16(s.Mem.Read8(s.PC) + s.X), nil
	case ModeZeroPageY:
		return uint16(s.Mem.Read8(s.PC) + s.Y), nil
	case ModeAbsolute:
		return s.Mem.Read16(s.PC), nil
	case ModeAbsoluteX:
		return s.Mem.Read16(s.PC) + uint16(s.X), nil
	case ModeAbsoluteY:
		return s.Mem.Read16(s.PC) + uint16(s.Y), nil
	case ModeIndirectX:
		ptr := s.Mem.Read8(s.PC) + s.X
		lo := uint16(s.Mem.Read8(uint16(ptr)))
		hi := uint16(s.Mem.Read8(uint16(ptr + 1)))
		return (hi << 8) | lo, nil
	case ModeIndirectY:
		ptr := s.Mem.Read8(s.PC)
		lo := uint16(s.Mem.Read8(uint16(ptr)))
		hi := uint16(s.Mem.Read8(uint16(ptr + 1)))
		return ((hi << 8) | lo) + uint16(s.Y), nil
	}
	return 0, InvalidAddressingMode{Mode: mode}
}
