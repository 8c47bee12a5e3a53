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

// Osc identifies one of the fixed frequency oscillators.
type Osc int

const (
	HXT     Osc = iota // External high speed crystal
	LXT                // External low speed crystal
	LIRC               // Internal low speed RC oscillator
	MIRC               // Internal medium speed RC oscillator
	HIRC36M            // HIRC1
	HIRC16M            // HIRC0, trimmed to 16MHz
	HIRC12M            // HIRC0
	nOsc
)

// Default oscillator frequencies.
const (
	defHXT     = 12000000
	defLXT     = 32768
	defLIRC    = 10000
	defMIRC    = 4000000
	defHIRC36M = 36000000
	defHIRC16M = 16000000
	defHIRC12M = 12000000

	defCoreClock = 32000000
	defMemDevice = "/dev/mem"
)

// Config holds the board level clock parameters.
// A configuration is built through the config methods e.g:
//   c := NewConfig()
//   c.Oscillator(HXT, 16000000).SetSystemClock(func() uint32 { return 16000000 })
//   d, err := timer.Open(c)
type Config struct {
	osc       [nOsc]uint32
	sysClock  func() uint32
	memDevice string
}

// The default config, using the nominal oscillator frequencies,
// a 32MHz core clock and /dev/mem as the memory device.
var DefaultConfig *Config

func init() {
	DefaultConfig = NewConfig()
}

// NewConfig creates a Config with the nominal settings.
func NewConfig() *Config {
	c := new(Config)
	c.Clear()
	return c
}

// Clear resets the configuration to the nominal settings.
func (c *Config) Clear() *Config {
	c.osc = [nOsc]uint32{
		HXT:     defHXT,
		LXT:     defLXT,
		LIRC:    defLIRC,
		MIRC:    defMIRC,
		HIRC36M: defHIRC36M,
		HIRC16M: defHIRC16M,
		HIRC12M: defHIRC12M,
	}
	c.sysClock = FixedClock(defCoreClock)
	c.memDevice = defMemDevice
	return c
}

// Oscillator sets the frequency of an oscillator.
func (c *Config) Oscillator(o Osc, hz uint32) *Config {
	c.osc[o] = hz
	return c
}

// SetSystemClock sets the accessor used to read the current core clock.
func (c *Config) SetSystemClock(f func() uint32) *Config {
	c.sysClock = f
	return c
}

// SetMemDevice sets the device file that the registers are mapped from.
func (c *Config) SetMemDevice(path string) *Config {
	c.memDevice = path
	return c
}

// Frequency returns the configured frequency of the oscillator.
func (c *Config) Frequency(o Osc) uint32 {
	return c.osc[o]
}

// FixedClock returns a system clock accessor for a constant frequency.
func FixedClock(hz uint32) func() uint32 {
	return func() uint32 {
		return hz
	}
}
