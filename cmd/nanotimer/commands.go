// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/aamcrae/timer"
)

func clockCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "clock <timer>",
		Short: "Show the input clock of a timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := parseChannel(args[0])
			if err != nil {
				return err
			}
			src, div := e.dev.ClockSelect(ch)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s/%d %d Hz\n", ch, src, div+1, e.dev.ModuleClock(ch))
			return nil
		},
	}
}

func setClockCmd(e *env) *cobra.Command {
	var hirc uint32
	cmd := &cobra.Command{
		Use:   "setclock <timer> <source> <divider>",
		Short: "Select the clock source (HXT, LXT, LIRC, EXT, HIRC, MIRC, HCLK) and divider (0-15) of a timer",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := parseChannel(args[0])
			if err != nil {
				return err
			}
			src, ok := timer.ParseClockSource(args[1])
			if !ok {
				return fmt.Errorf("%s: unknown clock source", args[1])
			}
			div, err := parseUint32("divider", args[2])
			if err != nil {
				return err
			}
			if div > 15 {
				return fmt.Errorf("%d: divider must be 0-15", div)
			}
			if src == timer.SourceHIRC {
				switch hirc {
				case 12:
					e.dev.SelectHIRC(timer.HIRC12)
				case 16:
					e.dev.SelectHIRC(timer.HIRC16)
				case 36:
					e.dev.SelectHIRC(timer.HIRC36)
				default:
					return fmt.Errorf("%d: HIRC must be 12, 16 or 36", hirc)
				}
			}
			e.dev.SetModuleClock(ch, src, div)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&hirc, "hirc", 12, "HIRC frequency in MHz (12, 16 or 36)")
	return cmd
}

func openCmd(e *env) *cobra.Command {
	var start bool
	cmd := &cobra.Command{
		Use:   "open <timer> <oneshot|periodic|toggle|continuous> <frequency>",
		Short: "Configure a timer for a mode and frequency",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := parseChannel(args[0])
			if err != nil {
				return err
			}
			mode, ok := timer.ParseMode(args[1])
			if !ok {
				return fmt.Errorf("%s: unknown mode", args[1])
			}
			freq, err := parseUint32("frequency", args[2])
			if err != nil {
				return err
			}
			if freq == 0 {
				return fmt.Errorf("frequency must be greater than 0")
			}
			t := e.dev.Timer(ch)
			hz := t.Open(mode, freq)
			if start {
				t.Start()
			}
			s := t.Setting()
			fmt.Fprintf(cmd.OutOrStdout(), "%s compare %d prescale %d frequency %d Hz\n", ch, s.Compare, s.Prescale, hz)
			return nil
		},
	}
	cmd.Flags().BoolVar(&start, "start", false, "Start the timer")
	return cmd
}

func closeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "close <timer>",
		Short: "Stop a timer and disable its interrupts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := parseChannel(args[0])
			if err != nil {
				return err
			}
			e.dev.Timer(ch).Close()
			return nil
		},
	}
}

func delayCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delay <timer> <microseconds>",
		Short: "Busy wait using a timer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := parseChannel(args[0])
			if err != nil {
				return err
			}
			usec, err := parseUint32("delay", args[1])
			if err != nil {
				return err
			}
			if usec < timer.MinDelay || usec > timer.MaxDelay {
				return fmt.Errorf("%d: delay must be %d-%d", usec, timer.MinDelay, timer.MaxDelay)
			}
			t := e.dev.Timer(ch)
			if t.Clock() == 0 {
				return fmt.Errorf("%s: timer clock unknown", ch)
			}
			start := time.Now()
			t.Delay(usec)
			log.Printf("%s: delay of %dus took %s", ch, usec, time.Since(start))
			return nil
		},
	}
}

func freqCmd(e *env) *cobra.Command {
	var drop uint8
	var timeout uint32
	var intr, off bool
	cmd := &cobra.Command{
		Use:   "freq <0|2>",
		Short: "Enable or disable the frequency counter of a timer pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := parseChannel(args[0])
			if err != nil {
				return err
			}
			if ch != timer.Timer0 && ch != timer.Timer2 {
				return fmt.Errorf("%s: frequency counter must use TIMER0 or TIMER2", ch)
			}
			t := e.dev.Timer(ch)
			if off {
				t.DisableFreqCounter()
				return nil
			}
			if timeout > timer.MaxTimeout {
				return fmt.Errorf("%d: timeout must be at most %d", timeout, timer.MaxTimeout)
			}
			t.EnableFreqCounter(drop, timeout, intr)
			return nil
		},
	}
	cmd.Flags().Uint8Var(&drop, "drop", 0, "Events to drop before measuring")
	cmd.Flags().Uint32Var(&timeout, "timeout", 0, "Timeout in timer clocks (2-0xFFFFFF, 0 for none)")
	cmd.Flags().BoolVar(&intr, "int", false, "Enable the capture interrupt")
	cmd.Flags().BoolVar(&off, "off", false, "Disable the frequency counter")
	return cmd
}

func dumpCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the simulated registers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.mem == nil {
				return fmt.Errorf("dump requires --sim")
			}
			for _, a := range e.mem.Addresses() {
				fmt.Fprintf(cmd.OutOrStdout(), "0x%08x: 0x%08x\n", a, e.mem.Read32(a))
			}
			return nil
		},
	}
}
