// Package cpu implements an interpreting emulator for the MOS 6502
// microprocessor: the fetch/decode/execute loop, the addressing-mode
// resolver, and the arithmetic/logic/branch/stack semantics needed to
// reproduce, bit-exactly, the architectural state transitions a real 6502
// would produce for a given byte-stream program.
//
// Cycle-exact timing, decimal-mode arithmetic, and hardware IRQ/NMI are
// explicitly out of scope — this core advances one instruction per Step
// and treats BRK as the run loop's halt primitive.
package cpu

import (
	"fmt"

	"github.com/nsalt/sixtwo/memory"
)

// Status flag bit assignments, named N V - B D I Z C from bit 7 to bit 0.
const (
	FlagC  = uint8(0x01) // Carry
	FlagZ  = uint8(0x02) // Zero
	FlagI  = uint8(0x04) // Interrupt disable
	FlagD  = uint8(0x08) // Decimal (set/cleared but ignored by ADC/SBC)
	FlagB  = uint8(0x10) // Break (set when pushed by BRK/PHP, clear on IRQ/NMI)
	FlagB2 = uint8(0x20) // Unused, conventionally held high
	FlagV  = uint8(0x40) // Overflow
	FlagN  = uint8(0x80) // Negative
)

// Re-exported guest address-space vectors, for callers that want to reach
// them without importing memory directly.
const (
	NMIVector   = memory.NMIVector
	ResetVector = memory.ResetVector
	IRQVector   = memory.IRQVector
)

// UnknownOpcode is returned when Step fetches a byte that isn't one of the
// 151 documented 6502 opcodes. Undocumented opcodes are not implemented;
// decoding one is always a fatal error for this core.
type UnknownOpcode struct {
	Opcode uint8
	PC     uint16
}

func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode 0x%.2X at PC 0x%.4X", e.Opcode, e.PC)
}

// InvalidAddressingMode indicates resolve was asked to compute an effective
// address for a mode that isn't addressable (Implied). This always signals a
// bug in the opcode table or dispatch, never in the guest program.
type InvalidAddressingMode struct {
	Mode Mode
}

func (e InvalidAddressingMode) Error() string {
	return fmt.Sprintf("addressing mode %s has no effective address", e.Mode)
}

// State is the entire mutable architectural state of a 6502: the three
// general registers, the status byte, the stack pointer, the program
// counter, and the memory bus it executes against.
type State struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8
	PC uint16

	Mem memory.Bus

	halted bool
}

// New returns a State with every register, flag, and the PC zeroed.
func New(mem memory.Bus) *State {
	return &State{Mem: mem}
}

// Load copies program into memory starting at base and arranges for Reset
// to start execution there.
func (s *State) Load(program []uint8, base uint16) {
	if f, ok := s.Mem.(*memory.Flat); ok {
		f.Load(program, base)
		return
	}
	for i, b := range program {
		s.Mem.Write8(base+uint16(i), b)
	}
	s.Mem.Write16(memory.ResetVector, base)
}

// Reset reproduces the 6502's reset sequence: A and X are cleared, P is set
// to I|B2 (bit 5 always reads as 1), SP is set to 0xFD, and PC is loaded
// from the reset vector. Y is left untouched, matching real hardware where
// only the documented registers are disturbed.
func (s *State) Reset() {
	s.A = 0
	s.X = 0
	s.P = FlagI | FlagB2
	s.SP = 0xFD
	s.PC = s.Mem.Read16(memory.ResetVector)
	s.halted = false
}

// Halted reports whether the run loop has reached a BRK instruction.
func (s *State) Halted() bool {
	return s.halted
}

// Step executes exactly one instruction: fetch the opcode at PC, decode it
// via the opcode table, resolve its operand address (if addressable),
// dispatch to the instruction's semantics, and advance PC past any operand
// bytes the handler itself did not consume. Returns UnknownOpcode for a
// byte absent from the opcode table, or any error from resolve or the
// handler; returns nil with Halted() true once a BRK has been processed.
func (s *State) Step() error {
	if s.halted {
		return nil
	}

	op := s.Mem.Read8(s.PC)
	s.PC++

	entry := opcodeTable[op]
	if entry == nil {
		return UnknownOpcode{Opcode: op, PC: s.PC - 1}
	}

	pcBeforeOperand := s.PC

	var addr uint16
	var err error
	if entry.Mode != ModeImplied {
		addr, err = s.resolve(entry.Mode)
		if err != nil {
			return err
		}
	}

	if err := entry.exec(s, addr); err != nil {
		return err
	}

	if s.PC == pcBeforeOperand {
		s.PC += uint16(entry.Len - 1)
	}

	if op == 0x00 {
		s.halted = true
	}
	return nil
}

// Run executes instructions until a BRK is processed or Step returns an
// error.
func (s *State) Run() error {
	return s.RunWithCallback(nil)
}

// RunWithCallback is Run with an optional callback invoked before every
// Step with a mutable view of the processor state. This is the hook
// surrounding code uses to trace execution, set breakpoints, or inject
// input-device state between instructions; it runs inline, in the same
// goroutine, with no synchronization of its own.
func (s *State) RunWithCallback(cb func(*State)) error {
	for !s.halted {
		if cb != nil {
			cb(s)
		}
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// setFlag sets or clears the bits in mask depending on cond.
func (s *State) setFlag(mask uint8, cond bool) {
	if cond {
		s.P |= mask
	} else {
		s.P &^= mask
	}
}

// updateZN sets Z iff v is zero and N iff bit 7 of v is set. Used by every
// instruction whose result lands in A, X, Y, or memory.
func (s *State) updateZN(v uint8) {
	s.setFlag(FlagZ, v == 0)
	s.setFlag(FlagN, v&0x80 != 0)
}

// push8 writes val to the next free stack slot and decrements SP.
func (s *State) push8(val uint8) {
	s.Mem.Write8(0x0100|uint16(s.SP), val)
	s.SP--
}

// pop8 increments SP and returns the byte now at the top of the stack.
func (s *State) pop8() uint8 {
	s.SP++
	return s.Mem.Read8(0x0100 | uint16(s.SP))
}

// push16 pushes val high byte first, so the matching pop16 (low, then
// high) reconstructs it in order.
func (s *State) push16(val uint16) {
	s.push8(uint8(val >> 8))
	s.push8(uint8(val & 0xFF))
}

// pop16 pops low byte then high byte.
func (s *State) pop16() uint16 {
	lo := uint16(s.pop8())
	hi := uint16(s.pop8())
	return (hi << 8) | lo
}
