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

package timer

import (
	"fmt"
	"strings"
)

// Channel identifies one of the timers.
type Channel int

const (
	Timer0 Channel = iota
	Timer1
	Timer2
	Timer3
	nTimers
)

var timerBases = [nTimers]uint32{timer0Base, timer1Base, timer2Base, timer3Base}

func (ch Channel) String() string {
	return fmt.Sprintf("TIMER%d", int(ch))
}

// Device is the handle for the clock controller and the timers.
type Device struct {
	cfg    *Config
	bus    Bus
	mapped *Mapped
	timers [nTimers]*Timer
}

// Open maps the peripheral registers from the memory device
// named in the configuration.
func Open(cfg *Config) (*Device, error) {
	m, err := Map(cfg.memDevice)
	if err != nil {
		return nil, err
	}
	d := NewDevice(cfg, m)
	d.mapped = m
	return d, nil
}

// NewDevice creates a Device that accesses the registers through bus.
func NewDevice(cfg *Config, bus Bus) *Device {
	d := &Device{cfg: cfg, bus: bus}
	for i := range d.timers {
		d.timers[i] = &Timer{dev: d, ch: Channel(i), base: timerBases[i]}
	}
	return d
}

// Timer returns the handle for the timer channel. ch must be
// between Timer0 and Timer3.
func (d *Device) Timer(ch Channel) *Timer {
	return d.timers[ch]
}

// Close stops all the timers and releases the register mapping.
func (d *Device) Close() {
	for _, t := range d.timers {
		t.Close()
	}
	if d.mapped != nil {
		d.mapped.Close()
		d.mapped = nil
	}
}

// SystemClock returns the current core clock frequency.
func (d *Device) SystemClock() uint32 {
	return d.cfg.sysClock()
}

// Config returns the configuration of the device.
func (d *Device) Config() *Config {
	return d.cfg
}

// Description returns a human readable string describing the clock setup
func (d *Device) Description() string {
	var s strings.Builder
	fmt.Fprint(&s, "Nano103 timers")
	if d.mapped != nil {
		fmt.Fprintf(&s, " (%s)", d.mapped.path)
	} else {
		fmt.Fprint(&s, " (unmapped)")
	}
	fmt.Fprintf(&s, " HXT %d, LXT %d, LIRC %d, MIRC %d, HIRC %d/%d/%d, core %d",
		d.cfg.osc[HXT], d.cfg.osc[LXT], d.cfg.osc[LIRC], d.cfg.osc[MIRC],
		d.cfg.osc[HIRC36M], d.cfg.osc[HIRC16M], d.cfg.osc[HIRC12M], d.SystemClock())
	return s.String()
}

// clk reads a clock controller register
func (d *Device) clk(offs uint32) uint32 {
	return d.bus.Read32(clkBase + offs)
}

// setClk writes a clock controller register
func (d *Device) setClk(offs uint32, v uint32) {
	d.bus.Write32(clkBase+offs, v)
}
