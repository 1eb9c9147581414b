// This file is part of stm32f1.
//
// stm32f1 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// stm32f1 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with stm32f1.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/stm32f1/version"
	"github.com/spf13/cobra"
)

func newMemmapCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "memmap",
		Short: "print the memory map of the SoC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := sess.machine()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), m.SoC.Memory().Summary())
			return nil
		},
	}
}

func newRegsCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:       "regs [rcc|fsmc]",
		Short:     "print the registers of the RCC and FSMC",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"rcc", "fsmc"},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := sess.machine()
			if err != nil {
				return err
			}

			sel := "all"
			if len(args) > 0 {
				sel = args[0]
			}

			out := cmd.OutOrStdout()
			if sel == "all" || sel == "rcc" {
				fmt.Fprintf(out, "%s\n%s", m.SoC.RCC().Label(), m.SoC.RCC())
			}
			if sel == "all" || sel == "fsmc" {
				if m.SoC.FSMC() == nil {
					if sel == "fsmc" {
						return fmt.Errorf("no fsmc in %s density SoC", m.SoC.Density())
					}
					return nil
				}
				fmt.Fprintf(out, "%s\n%s", m.SoC.FSMC().Label(), m.SoC.FSMC())
			}
			return nil
		},
	}
}

func newIRQCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "irq",
		Short: "print the interrupt lines connected to the NVIC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := sess.machine()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), m.SoC.Interrupts())
			return nil
		},
	}
}

func newClocksCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clocks",
		Short: "print the clock graph and the cpu configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := sess.machine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, m.Sysclk)
			fmt.Fprintln(out, m.SoC.Sysclk())
			fmt.Fprintln(out, m.SoC.Refclk())
			fmt.Fprintln(out, m.SoC.CPU())
			return nil
		},
	}
}

func newMemvizCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "memviz",
		Short: "output the topology of the SoC as a graphviz graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := sess.machine()
			if err != nil {
				return err
			}
			top := m.SoC.Topology()
			memviz.Map(cmd.OutOrStdout(), &top)
			return nil
		},
	}
}

func newPeekCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "peek address [address...]",
		Short: "read 32bit values from the address space after reset",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := sess.machine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, a := range args {
				addr, err := strconv.ParseUint(strings.TrimSpace(a), 0, 32)
				if err != nil {
					return fmt.Errorf("peek: bad address (%s)", a)
				}
				v, err := m.SoC.Memory().Read32(uint32(addr))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%08x: %08x\n", addr, v)
			}
			return nil
		},
	}
}

func newPrefsCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "prefs",
		Short: "print the preferences used to create the machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := sess.preferences()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version of the program",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Display())
		},
	}
}
