package disassemble

import (
	"strings"
	"testing"

	"github.com/nsalt/sixtwo/memory"
)

func TestStepImmediate(t *testing.T) {
	m := memory.NewFlat()
	m.Write8(0x0600, 0xA9)
	m.Write8(0x0601, 0x2A)
	text, n := Step(0x0600, m)
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if !strings.Contains(text, "LDA") || !strings.Contains(text, "#$2A") {
		t.Errorf("text = %q, want it to mention LDA #$2A", text)
	}
}

func TestStepAbsolute(t *testing.T) {
	m := memory.NewFlat()
	m.Write8(0x0600, 0x4C)
	m.Write16(0x0601, 0x1234)
	text, n := Step(0x0600, m)
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
	if !strings.Contains(text, "JMP") || !strings.Contains(text, "$1234") {
		t.Errorf("text = %q, want it to mention JMP $1234", text)
	}
}

func TestStepBranchShowsComputedTarget(t *testing.T) {
	m := memory.NewFlat()
	m.Write8(0x0600, 0xD0) // BNE
	m.Write8(0x0601, 0xFC) // -4
	text, n := Step(0x0600, m)
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if !strings.Contains(text, "BNE") || !strings.Contains(text, "(05FE)") {
		t.Errorf("text = %q, want it to mention BNE and target 05FE", text)
	}
}

func TestStepImplied(t *testing.T) {
	m := memory.NewFlat()
	m.Write8(0x0600, 0xEA)
	text, n := Step(0x0600, m)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	if !strings.Contains(text, "NOP") {
		t.Errorf("text = %q, want it to mention NOP", text)
	}
}

func TestStepUnknownOpcode(t *testing.T) {
	m := memory.NewFlat()
	m.Write8(0x0600, 0x02) // not a documented opcode
	text, n := Step(0x0600, m)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	if !strings.Contains(text, "???") {
		t.Errorf("text = %q, want ??? for undocumented opcode", text)
	}
}
