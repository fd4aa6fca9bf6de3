// Command z80dbg is a small host harness around the z80 package: it loads a
// flat binary image into memory, runs the CPU for a given T-state budget,
// and prints the resulting register file. It exists to exercise the public
// API end to end; it is not part of the emulator core itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user-none/go-chip-z80"
)

// flatBus is the simplest possible host Bus: a 64K byte array with no port
// devices attached.
type flatBus struct {
	mem   [65536]uint8
	ports [256]uint8
}

func (b *flatBus) ReadByte(addr uint16) uint8     { return b.mem[addr] }
func (b *flatBus) WriteByte(addr uint16, v uint8) { b.mem[addr] = v }
func (b *flatBus) InPort(port uint16) uint8       { return b.ports[uint8(port)] }
func (b *flatBus) OutPort(port uint16, v uint8)   { b.ports[uint8(port)] = v }

func main() {
	rootCmd := &cobra.Command{
		Use:   "z80dbg",
		Short: "Minimal Z80 core host/debug harness",
	}

	var loadAddr uint16
	var budget int

	runCmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load a flat binary image and execute it for a T-state budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			bus := &flatBus{}
			copy(bus.mem[loadAddr:], data)

			cpu := z80.New(bus)
			regs := cpu.Registers()
			regs.PC = loadAddr
			cpu.SetRegisters(regs)

			spent, err := cpu.Execute(budget)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "stopped after %d T-states: %v\n", spent, err)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "ran %d T-states\n", spent)
			}
			printRegisters(cmd, cpu.Registers())
			return err
		},
	}
	runCmd.Flags().Uint16Var(&loadAddr, "org", 0x0000, "load address for the image")
	runCmd.Flags().IntVar(&budget, "budget", 1_000_000, "T-state budget to execute")

	disasmCmd := &cobra.Command{
		Use:   "disasm <image>",
		Short: "Dump the raw bytes of a flat binary image as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			for i, b := range data {
				if i%16 == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "\n%04X  ", int(loadAddr)+i)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%02X ", b)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	disasmCmd.Flags().Uint16Var(&loadAddr, "org", 0x0000, "base address to print alongside each byte")

	rootCmd.AddCommand(runCmd, disasmCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printRegisters(cmd *cobra.Command, r z80.Registers) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "PC=%04X SP=%04X IX=%04X IY=%04X\n", r.PC, r.SP, r.IX, r.IY)
	fmt.Fprintf(out, "A=%02X F=%02X BC=%02X%02X DE=%02X%02X HL=%02X%02X\n",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L)
	fmt.Fprintf(out, "I=%02X R=%02X IFF1=%v IFF2=%v IM=%d halted=%v\n",
		r.I, r.R, r.IFF1, r.IFF2, r.IM, r.Halted)
}
