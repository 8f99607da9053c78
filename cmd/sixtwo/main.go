// sixtwo is a command-line front end for the 6502 core: load a raw binary
// program, run it to completion, disassemble it, or single-step it in an
// interactive debugger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nsalt/sixtwo/cpu"
	"github.com/nsalt/sixtwo/debugger"
	"github.com/nsalt/sixtwo/disassemble"
	"github.com/nsalt/sixtwo/memory"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sixtwo",
		Short: "Run, disassemble, or step a 6502 program",
	}

	var loadAddr uint16

	runCmd := &cobra.Command{
		Use:   "run <program>",
		Short: "Load a binary and execute it until BRK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			mem := memory.NewFlat()
			state := cpu.New(mem)
			state.Load(program, loadAddr)
			state.Reset()
			if err := state.Run(); err != nil {
				return fmt.Errorf("execution stopped: %w", err)
			}
			fmt.Printf("halted at PC=%.4X A=%.2X X=%.2X Y=%.2X SP=%.2X P=%.2X\n",
				state.PC, state.A, state.X, state.Y, state.SP, state.P)
			return nil
		},
	}
	runCmd.Flags().Uint16Var(&loadAddr, "addr", 0x0600, "Address to load the program at")
	root.AddCommand(runCmd)

	var disasmAddr uint16
	var disasmCount int

	disasmCmd := &cobra.Command{
		Use:   "disasm <program>",
		Short: "Disassemble a binary starting at an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			mem := memory.NewFlat()
			mem.Load(program, disasmAddr)
			pc := disasmAddr
			for i := 0; i < disasmCount; i++ {
				text, n := disassemble.Step(pc, mem)
				fmt.Println(text)
				pc += uint16(n)
			}
			return nil
		},
	}
	disasmCmd.Flags().Uint16Var(&disasmAddr, "addr", 0x0600, "Address the program was loaded at")
	disasmCmd.Flags().IntVar(&disasmCount, "count", 20, "Number of instructions to disassemble")
	root.AddCommand(disasmCmd)

	var debugAddr uint16

	debugCmd := &cobra.Command{
		Use:   "debug <program>",
		Short: "Load a binary and single-step it in an interactive TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			mem := memory.NewFlat()
			state := cpu.New(mem)
			return debugger.Run(state, program, debugAddr)
		},
	}
	debugCmd.Flags().Uint16Var(&debugAddr, "addr", 0x0600, "Address to load the program at")
	root.AddCommand(debugCmd)

	return root
}
