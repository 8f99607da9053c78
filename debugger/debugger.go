// Package debugger provides an interactive, single-step terminal UI for
// watching a 6502 program execute: a hex memory page table with the
// program counter highlighted, a register/flag status line, and the
// disassembly of the instruction about to run.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nsalt/sixtwo/cpu"
	"github.com/nsalt/sixtwo/disassemble"
	"github.com/nsalt/sixtwo/memory"
)

var statusStyle = lipgloss.NewStyle().Padding(0, 1)

type model struct {
	state  *cpu.State
	offset uint16
	prevPC uint16
	err    error
	done   bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j", "n":
			if m.done {
				return m, nil
			}
			m.prevPC = m.state.PC
			if err := m.state.Step(); err != nil {
				m.err = err
				m.done = true
				return m, nil
			}
			if m.state.Halted() {
				m.done = true
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory starting at start, with the
// byte at PC bracketed.
func (m model) renderPage(mem memory.Bus, start uint16) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.4X | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		v := mem.Read8(addr)
		if addr == m.state.PC {
			fmt.Fprintf(&b, "[%.2X] ", v)
		} else {
			fmt.Fprintf(&b, " %.2X  ", v)
		}
	}
	return b.String()
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf(" %.1X   ", b)
	}
	lines := []string{header}
	base := m.state.PC &^ 0x003F
	for row := uint16(0); row < 4; row++ {
		lines = append(lines, m.renderPage(m.state.Mem, base+row*16))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	s := m.state
	flagRow := "N V _ B D I Z C\n"
	for _, mask := range []uint8{cpu.FlagN, cpu.FlagV, cpu.FlagB2, cpu.FlagB, cpu.FlagD, cpu.FlagI, cpu.FlagZ, cpu.FlagC} {
		if s.P&mask != 0 {
			flagRow += "1 "
		} else {
			flagRow += "0 "
		}
	}
	return statusStyle.Render(fmt.Sprintf(
		"PC: %.4X (was %.4X)\nA:  %.2X\nX:  %.2X\nY:  %.2X\nSP: %.2X\n%s",
		s.PC, m.prevPC, s.A, s.X, s.Y, s.SP, flagRow,
	))
}

func (m model) View() string {
	var next string
	if m.done {
		if m.err != nil {
			next = fmt.Sprintf("stopped: %v", m.err)
		} else {
			next = "halted"
		}
	} else {
		next, _ = disassemble.Step(m.state.PC, m.state.Mem)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		"next: "+next,
		"",
		"space/j/n: step   q: quit",
	)
}

// Run loads program into state's memory at offset, resets state to start
// executing there, and launches the interactive step debugger. It blocks
// until the user quits.
func Run(state *cpu.State, program []uint8, offset uint16) error {
	state.Load(program, offset)
	state.Reset()
	p := tea.NewProgram(model{state: state, offset: offset})
	_, err := p.Run()
	return err
}
