package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/nsalt/sixtwo/memory"
)

// newTestState returns a State wired to a fresh flat bus with the reset
// vector pointed at base, already Reset so registers are in their
// power-on-like configuration.
func newTestState(t *testing.T, program []uint8, base uint16) *State {
	t.Helper()
	mem := memory.NewFlat()
	s := New(mem)
	s.Load(program, base)
	s.Reset()
	return s
}

func mustStep(t *testing.T, s *State) {
	t.Helper()
	if err := s.Step(); err != nil {
		t.Fatalf("Step() returned error: %v\nstate: %s", err, spew.Sdump(s))
	}
}

func TestResetSequence(t *testing.T) {
	s := newTestState(t, []uint8{0xEA}, 0x0600)
	s.A, s.X, s.P, s.SP = 0xFF, 0xFF, 0x00, 0x00
	s.Reset()
	want := &State{A: 0, X: 0, Y: s.Y, SP: 0xFD, P: FlagI | FlagB2, PC: 0x0600, Mem: s.Mem}
	if diff := deep.Equal(s, want); diff != nil {
		t.Errorf("Reset() diff: %v\nfull state: %s", diff, spew.Sdump(s))
	}
}

func TestLDAImmediateSetsRegisterAndFlags(t *testing.T) {
	s := newTestState(t, []uint8{0xA9, 0x2A}, 0x0600)
	mustStep(t, s)
	if s.A != 0x2A {
		t.Errorf("A = %.2X, want 2A", s.A)
	}
	if s.P&FlagZ != 0 || s.P&FlagN != 0 {
		t.Errorf("flags = %.2X, want Z and N clear", s.P)
	}
	if s.PC != 0x0602 {
		t.Errorf("PC = %.4X, want 0602", s.PC)
	}
}

func TestLDAZeroSetsZeroFlag(t *testing.T) {
	s := newTestState(t, []uint8{0xA9, 0x00}, 0x0600)
	mustStep(t, s)
	if s.P&FlagZ == 0 {
		t.Errorf("Z not set for zero load, flags = %.2X", s.P)
	}
}

func TestLDANegativeSetsNegativeFlag(t *testing.T) {
	s := newTestState(t, []uint8{0xA9, 0x80}, 0x0600)
	mustStep(t, s)
	if s.P&FlagN == 0 {
		t.Errorf("N not set for negative load, flags = %.2X", s.P)
	}
}

func TestTransferAndIncrementChain(t *testing.T) {
	// LDA #$05 ; TAX ; INX ; TXA
	s := newTestState(t, []uint8{0xA9, 0x05, 0xAA, 0xE8, 0x8A}, 0x0600)
	for i := 0; i < 4; i++ {
		mustStep(t, s)
	}
	if s.A != 0x06 || s.X != 0x06 {
		t.Errorf("A=%.2X X=%.2X, want both 06", s.A, s.X)
	}
}

func TestINXWrapsAroundToZero(t *testing.T) {
	s := newTestState(t, []uint8{0xE8}, 0x0600)
	s.X = 0xFF
	mustStep(t, s)
	if s.X != 0x00 {
		t.Errorf("X = %.2X, want 00", s.X)
	}
	if s.P&FlagZ == 0 {
		t.Errorf("Z not set after wrap, flags = %.2X", s.P)
	}
}

func TestADCSetsCarryOnOverflowPast255(t *testing.T) {
	s := newTestState(t, []uint8{0xA9, 0xFF, 0x69, 0x02}, 0x0600)
	mustStep(t, s) // LDA #$FF
	mustStep(t, s) // ADC #$02
	if s.A != 0x01 {
		t.Errorf("A = %.2X, want 01", s.A)
	}
	if s.P&FlagC == 0 {
		t.Errorf("C not set, flags = %.2X", s.P)
	}
}

func TestADCSignedOverflowSetsV(t *testing.T) {
	// 0x7F + 0x01 = 0x80: positive + positive = negative, V must be set.
	s := newTestState(t, []uint8{0xA9, 0x7F, 0x69, 0x01}, 0x0600)
	mustStep(t, s)
	mustStep(t, s)
	if s.A != 0x80 {
		t.Errorf("A = %.2X, want 80", s.A)
	}
	if s.P&FlagV == 0 {
		t.Errorf("V not set, flags = %.2X", s.P)
	}
	if s.P&FlagN == 0 {
		t.Errorf("N not set, flags = %.2X", s.P)
	}
}

func TestSBCBorrowClearsCarry(t *testing.T) {
	// SEC ; LDA #$05 ; SBC #$06 -> borrow, result 0xFF, carry clear.
	s := newTestState(t, []uint8{0x38, 0xA9, 0x05, 0xE9, 0x06}, 0x0600)
	mustStep(t, s)
	mustStep(t, s)
	mustStep(t, s)
	if s.A != 0xFF {
		t.Errorf("A = %.2X, want FF", s.A)
	}
	if s.P&FlagC != 0 {
		t.Errorf("C set after borrow, flags = %.2X", s.P)
	}
}

func TestEORTogglesBits(t *testing.T) {
	s := newTestState(t, []uint8{0xA9, 0xFF, 0x49, 0x0F}, 0x0600)
	mustStep(t, s)
	mustStep(t, s)
	if s.A != 0xF0 {
		t.Errorf("A = %.2X, want F0", s.A)
	}
}

func TestBITLeavesAccumulatorUnchanged(t *testing.T) {
	s := newTestState(t, []uint8{0xA9, 0x0F, 0x24, 0x10}, 0x0600)
	s.Mem.Write8(0x0010, 0xC0) // N and V set, A&M == 0
	mustStep(t, s)
	mustStep(t, s)
	if s.A != 0x0F {
		t.Errorf("A = %.2X, BIT must not modify accumulator", s.A)
	}
	if s.P&FlagN == 0 || s.P&FlagV == 0 {
		t.Errorf("N/V not copied from operand, flags = %.2X", s.P)
	}
	if s.P&FlagZ == 0 {
		t.Errorf("Z not set for zero-and result, flags = %.2X", s.P)
	}
}

func TestBranchTakenAndNotTaken(t *testing.T) {
	// BNE skips two bytes forward when Z is clear; BEQ then falls through
	// to the next instruction because Z is still clear.
	s := newTestState(t, []uint8{0xD0, 0x02, 0xEA, 0xEA, 0xA9, 0x01, 0xF0, 0x02}, 0x0600)
	mustStep(t, s)
	if s.PC != 0x0604 {
		t.Errorf("branch taken PC = %.4X, want 0604", s.PC)
	}
	mustStep(t, s) // LDA #$01
	if s.A != 0x01 {
		t.Errorf("A = %.2X, want 01", s.A)
	}
	mustStep(t, s) // BEQ, not taken
	if s.PC != 0x0608 {
		t.Errorf("branch not taken PC = %.4X, want 0608", s.PC)
	}
}

func TestBranchBackwardNegativeOffset(t *testing.T) {
	// At 0x0602: BPL -4 -> back to 0x0600.
	s := newTestState(t, []uint8{0xEA, 0xEA, 0x10, 0xFC}, 0x0600)
	s.PC = 0x0602
	mustStep(t, s)
	if s.PC != 0x0600 {
		t.Errorf("PC = %.4X, want 0600", s.PC)
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	s := newTestState(t, []uint8{0x6C, 0xFF, 0x02}, 0x0600)
	s.Mem.Write8(0x02FF, 0x00)
	s.Mem.Write8(0x0200, 0x06) // hardware bug: high byte from 0x0200, not 0x0300
	s.Mem.Write8(0x0300, 0xFF)
	mustStep(t, s)
	if s.PC != 0x0600 {
		t.Errorf("PC = %.4X, want 0600 (page-wrap bug)", s.PC)
	}
}

func TestJMPIndirectNoWrap(t *testing.T) {
	s := newTestState(t, []uint8{0x6C, 0x00, 0x02}, 0x0600)
	s.Mem.Write16(0x0200, 0x1234)
	mustStep(t, s)
	if s.PC != 0x1234 {
		t.Errorf("PC = %.4X, want 1234", s.PC)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	// JSR $0610 ; BRK  ... at $0610: RTS
	s := newTestState(t, []uint8{0x20, 0x10, 0x06, 0x00}, 0x0600)
	s.Mem.Write8(0x0610, 0x60)
	spBefore := s.SP
	mustStep(t, s) // JSR
	if s.PC != 0x0610 {
		t.Errorf("PC after JSR = %.4X, want 0610", s.PC)
	}
	mustStep(t, s) // RTS
	if s.PC != 0x0603 {
		t.Errorf("PC after RTS = %.4X, want 0603", s.PC)
	}
	if s.SP != spBefore {
		t.Errorf("SP after round trip = %.2X, want %.2X", s.SP, spBefore)
	}
}

func TestStackIsLIFO(t *testing.T) {
	s := newTestState(t, []uint8{0xA9, 0x01, 0x48, 0xA9, 0x02, 0x48, 0x68, 0xAA, 0x68}, 0x0600)
	for i := 0; i < 9; i++ {
		mustStep(t, s)
	}
	if s.A != 0x01 {
		t.Errorf("final A = %.2X, want 01 (first pop should be last push)", s.A)
	}
	if s.X != 0x02 {
		t.Errorf("X = %.2X, want 02", s.X)
	}
}

func TestPHPForcesBreakBits(t *testing.T) {
	s := newTestState(t, []uint8{0x08, 0x68}, 0x0600)
	s.P = 0x00
	mustStep(t, s) // PHP
	mustStep(t, s) // PLA pulls the pushed byte into A
	if s.A&FlagB == 0 || s.A&FlagB2 == 0 {
		t.Errorf("PHP did not force B/B2 high, pulled value = %.2X", s.A)
	}
}

func TestBRKHaltsExecution(t *testing.T) {
	s := newTestState(t, []uint8{0xEA, 0x00, 0xEA}, 0x0600)
	if err := s.Run(); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !s.Halted() {
		t.Fatal("Halted() = false after BRK")
	}
	if s.PC != 0x0602 {
		t.Errorf("PC = %.4X, want 0602 (stopped after BRK)", s.PC)
	}
}

func TestUnknownOpcodeIsReported(t *testing.T) {
	s := newTestState(t, []uint8{0xFF}, 0x0600)
	err := s.Step()
	if err == nil {
		t.Fatal("Step() returned nil error for undocumented opcode 0xFF")
	}
	uo, ok := err.(UnknownOpcode)
	if !ok {
		t.Fatalf("error type = %T, want UnknownOpcode", err)
	}
	if uo.Opcode != 0xFF || uo.PC != 0x0600 {
		t.Errorf("UnknownOpcode = %+v, want Opcode=FF PC=0600", uo)
	}
}

func TestAddressingModesAllResolve(t *testing.T) {
	s := newTestState(t, []uint8{0xEA}, 0x0600)
	s.X, s.Y = 0x01, 0x02

	tests := []struct {
		mode Mode
		pc   uint16
		want uint16
	}{
		{ModeImmediate, 0x0600, 0x0600},
		{ModeZeroPage, 0x0600, 0x0000},
		{ModeAbsolute, 0x0600, 0x0000},
		{ModeZeroPageX, 0x0600, 0x0001},
		{ModeZeroPageY, 0x0600, 0x0002},
		{ModeAbsoluteX, 0x0600, 0x0001},
		{ModeAbsoluteY, 0x0600, 0x0002},
		{ModeIndirectX, 0x0600, 0x0000},
		{ModeIndirectY, 0x0600, 0x0002},
	}
	s.Mem.Write8(0x0600, 0x00)
	for _, tc := range tests {
		s.PC = tc.pc
		got, err := s.resolve(tc.mode)
		if err != nil {
			t.Fatalf("resolve(%v) error: %v", tc.mode, err)
		}
		if got != tc.want {
			t.Errorf("resolve(%v) = %.4X, want %.4X", tc.mode, got, tc.want)
		}
	}
}

func TestZeroPageXWrapsAt256(t *testing.T) {
	s := newTestState(t, []uint8{0xEA}, 0x0600)
	s.X = 0x10
	s.Mem.Write8(0x0600, 0xF8) // 0xF8 + 0x10 wraps to 0x08
	s.PC = 0x0600
	got, err := s.resolve(ModeZeroPageX)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if got != 0x0008 {
		t.Errorf("resolve(ZeroPageX) = %.4X, want 0008", got)
	}
}

func TestIndirectXWrapsPointerInZeroPage(t *testing.T) {
	s := newTestState(t, []uint8{0xEA}, 0x0600)
	s.X = 0x04
	s.Mem.Write8(0x0600, 0xFE) // pointer base 0xFE + X(4) wraps to 0x02
	s.Mem.Write16(0x0002, 0x1234)
	s.PC = 0x0600
	got, err := s.resolve(ModeIndirectX)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if got != 0x1234 {
		t.Errorf("resolve(IndirectX) = %.4X, want 1234", got)
	}
}

func TestImpliedModeHasNoEffectiveAddress(t *testing.T) {
	s := newTestState(t, []uint8{0xEA}, 0x0600)
	_, err := s.resolve(ModeImplied)
	if err == nil {
		t.Fatal("resolve(ModeImplied) returned nil error, want InvalidAddressingMode")
	}
	if _, ok := err.(InvalidAddressingMode); !ok {
		t.Fatalf("error type = %T, want InvalidAddressingMode", err)
	}
}

func TestRunWithCallbackInvokedBeforeEveryStep(t *testing.T) {
	s := newTestState(t, []uint8{0xA9, 0x01, 0xA9, 0x02, 0x00}, 0x0600)
	var seen []uint16
	err := s.RunWithCallback(func(st *State) {
		seen = append(seen, st.PC)
	})
	if err != nil {
		t.Fatalf("RunWithCallback error: %v", err)
	}
	want := []uint16{0x0600, 0x0602, 0x0604}
	if diff := deep.Equal(seen, want); diff != nil {
		t.Errorf("callback PCs diff: %v, got %v", diff, seen)
	}
}

func TestCompareSetsCarryWhenRegisterGreaterOrEqual(t *testing.T) {
	s := newTestState(t, []uint8{0xA9, 0x05, 0xC9, 0x05}, 0x0600)
	mustStep(t, s)
	mustStep(t, s)
	if s.P&FlagC == 0 {
		t.Errorf("C not set for equal compare, flags = %.2X", s.P)
	}
	if s.P&FlagZ == 0 {
		t.Errorf("Z not set for equal compare, flags = %.2X", s.P)
	}
}

func TestRORRotatesThroughCarry(t *testing.T) {
	s := newTestState(t, []uint8{0x38, 0xA9, 0x02, 0x6A}, 0x0600) // SEC ; LDA #$02 ; ROR A
	mustStep(t, s)
	mustStep(t, s)
	mustStep(t, s)
	if s.A != 0x81 {
		t.Errorf("A = %.2X, want 81 (carry rotated into bit 7)", s.A)
	}
	if s.P&FlagC != 0 {
		t.Errorf("C set after rotating in a clear bit 0, flags = %.2X", s.P)
	}
}
