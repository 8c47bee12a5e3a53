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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aamcrae/timer"
)

// env holds the device shared by the commands of one invocation,
// including every line of a script.
type env struct {
	dev *timer.Device
	mem *timer.Memory // Set when the registers are simulated

	memDevice string
	sim       bool
	sysclk    uint32
}

func (e *env) open() error {
	if e.dev != nil {
		return nil
	}
	c := timer.NewConfig().SetMemDevice(e.memDevice).SetSystemClock(timer.FixedClock(e.sysclk))
	if e.sim {
		e.mem = timer.NewMemory()
		e.dev = timer.NewDevice(c, e.mem)
		return nil
	}
	d, err := timer.Open(c)
	if err != nil {
		return err
	}
	e.dev = d
	return nil
}

func (e *env) close() {
	if e.dev != nil {
		e.dev.Close()
		e.dev = nil
	}
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "nanotimer",
		Short:         "Configure the Nano103 timers",
		Long:          "Configure and exercise the Nano103 general purpose timers through the mapped peripheral registers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.open()
		},
	}
	root.PersistentFlags().StringVarP(&e.memDevice, "mem", "m", "/dev/mem", "Memory device to map the registers from")
	root.PersistentFlags().BoolVar(&e.sim, "sim", false, "Use simulated registers")
	root.PersistentFlags().Uint32Var(&e.sysclk, "sysclk", 32000000, "System core clock in Hz")
	root.AddCommand(
		clockCmd(e),
		setClockCmd(e),
		openCmd(e),
		closeCmd(e),
		delayCmd(e),
		freqCmd(e),
		dumpCmd(e),
		scriptCmd(e),
	)
	return root
}

// parseChannel converts a timer number argument.
func parseChannel(s string) (timer.Channel, error) {
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil || n > uint64(timer.Timer3) {
		return 0, fmt.Errorf("%s: invalid timer, must be 0-3", s)
	}
	return timer.Channel(n), nil
}

// parseUint32 converts a numeric argument.
func parseUint32(name, s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid %s", s, name)
	}
	return uint32(n), nil
}
