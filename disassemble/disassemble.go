// Package disassemble formats 6502 instructions found in guest memory as
// human-readable text, one instruction per Step call.
package disassemble

import (
	"fmt"

	"github.com/nsalt/sixtwo/cpu"
	"github.com/nsalt/sixtwo/memory"
)

// Step disassembles the instruction at pc and returns its text along with
// the number of bytes (including the opcode byte) the caller should advance
// PC by to reach the next instruction. This does not interpret the
// instruction, so a JMP target is printed, not followed.
//
// Step always reads two bytes past pc regardless of the instruction's real
// length, so the caller must ensure pc+2 is a valid address.
func Step(pc uint16, mem memory.Bus) (string, int) {
	o := mem.Read8(pc)
	b1 := mem.Read8(pc + 1)
	b2 := mem.Read8(pc + 2)

	entry := cpu.Lookup(o)
	if entry == nil {
		return fmt.Sprintf("%.4X %.2X      ???", pc, o), 1
	}

	var operand string
	switch entry.Mode {
	case cpu.ModeImplied:
		operand = ""
	case cpu.ModeImmediate:
		operand = fmt.Sprintf("#$%.2X", b1)
	case cpu.ModeZeroPage:
		operand = fmt.Sprintf("$%.2X", b1)
	case cpu.ModeZeroPageX:
		operand = fmt.Sprintf("$%.2X,X", b1)
	case cpu.ModeZeroPageY:
		operand = fmt.Sprintf("$%.2X,Y", b1)
	case cpu.ModeAbsolute:
		operand = fmt.Sprintf("$%.2X%.2X", b2, b1)
	case cpu.ModeAbsoluteX:
		operand = fmt.Sprintf("$%.2X%.2X,X", b2, b1)
	case cpu.ModeAbsoluteY:
		operand = fmt.Sprintf("$%.2X%.2X,Y", b2, b1)
	case cpu.ModeIndirectX:
		operand = fmt.Sprintf("($%.2X,X)", b1)
	case cpu.ModeIndirectY:
		operand = fmt.Sprintf("($%.2X),Y", b1)
	}

	// Branches are the one family that is nominally Implied but actually
	// consumes and interprets an operand byte as a signed, PC-relative
	// offset; give them their own rendering so the target address shows.
	if isBranch(entry.Mnemonic) {
		offset := int8(b1)
		target := pc + 2 + uint16(int16(offset))
		operand = fmt.Sprintf("$%.2X (%.4X)", b1, target)
	}

	var raw string
	switch int(entry.Len) {
	case 1:
		raw = fmt.Sprintf("%.2X     ", o)
	case 2:
		raw = fmt.Sprintf("%.2X %.2X  ", o, b1)
	case 3:
		raw = fmt.Sprintf("%.2X %.2X %.2X", o, b1, b2)
	}

	text := fmt.Sprintf("%.4X %s %-4s %s", pc, raw, entry.Mnemonic, operand)
	return text, int(entry.Len)
}

func isBranch(mnemonic string) bool {
	switch mnemonic {
	case "BCC", "BCS", "BEQ", "BNE", "BMI", "BPL", "BVC", "BVS":
		return true
	}
	return false
}
