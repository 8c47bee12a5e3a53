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

// ClockSource is the clock selected for a timer.
type ClockSource uint32

const (
	SourceHXT      ClockSource = 0
	SourceLXT      ClockSource = 1
	SourceLIRC     ClockSource = 2
	SourceExternal ClockSource = 3 // Timer pin; frequency unknown
	SourceHIRC     ClockSource = 4
	SourceMIRC     ClockSource = 5
	SourceHCLK     ClockSource = 6 // Codes 6 and 7 both select HCLK
)

var sourceNames = map[ClockSource]string{
	SourceHXT:      "HXT",
	SourceLXT:      "LXT",
	SourceLIRC:     "LIRC",
	SourceExternal: "EXT",
	SourceHIRC:     "HIRC",
	SourceMIRC:     "MIRC",
	SourceHCLK:     "HCLK",
}

func (s ClockSource) String() string {
	return sourceNames[s]
}

// ParseClockSource returns the clock source with the given name.
func ParseClockSource(name string) (ClockSource, bool) {
	for s, n := range sourceNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// sourceFromCode converts the 3 bit selector field to a ClockSource.
func sourceFromCode(code uint32) ClockSource {
	if code > uint32(SourceHCLK) {
		return SourceHCLK
	}
	return ClockSource(code)
}

// HIRCSelect is the frequency the HIRC clock source is trimmed to.
type HIRCSelect int

const (
	HIRC12 HIRCSelect = iota // HIRC0 at 12MHz
	HIRC16                   // HIRC0 at 16MHz
	HIRC36                   // HIRC1 at 36MHz
)

// Frequency returns the base frequency of the clock source, before the
// timer clock divider. An external pin source has no known frequency
// and returns 0; HCLK is read through sysclk.
func (s ClockSource) Frequency(c *Config, h HIRCSelect, sysclk func() uint32) uint32 {
	switch s {
	case SourceHXT:
		return c.osc[HXT]
	case SourceLXT:
		return c.osc[LXT]
	case SourceLIRC:
		return c.osc[LIRC]
	case SourceExternal:
		return 0
	case SourceHIRC:
		switch h {
		case HIRC36:
			return c.osc[HIRC36M]
		case HIRC16:
			return c.osc[HIRC16M]
		default:
			return c.osc[HIRC12M]
		}
	case SourceMIRC:
		return c.osc[MIRC]
	}
	return sysclk()
}

// selector returns the register offset and bit position of the clock
// source selector for the channel.
func (ch Channel) selector() (uint32, uint) {
	if ch < Timer2 {
		return rCLKSEL1, 8 + uint(ch)*4
	}
	return rCLKSEL2, 8 + uint(ch-Timer2)*4
}

// divider returns the bit position of the clock divider in CLKDIV1
func (ch Channel) divider() uint {
	return 8 + uint(ch)*4
}

// ClockSelect returns the clock source and divider currently selected for the channel.
func (d *Device) ClockSelect(ch Channel) (ClockSource, uint32) {
	offs, pos := ch.selector()
	src := sourceFromCode(field(d.clk(offs), pos, tmrSelMsk))
	div := field(d.clk(rCLKDIV1), ch.divider(), tmrDivMsk)
	return src, div
}

// HIRC returns the current HIRC frequency selection.
func (d *Device) HIRC() HIRCSelect {
	if field(d.clk(rCLKSEL0), clksel0HIRCSELPos, 1) != 0 {
		return HIRC36
	}
	if field(d.clk(rPWRCTL), pwrctlHIRC0FSELPos, 1) != 0 {
		return HIRC16
	}
	return HIRC12
}

// SelectHIRC sets the HIRC frequency selection bits.
func (d *Device) SelectHIRC(h HIRCSelect) {
	var sel, fsel uint32
	switch h {
	case HIRC36:
		sel = 1
	case HIRC16:
		fsel = 1
	}
	d.setClk(rCLKSEL0, setField(d.clk(rCLKSEL0), clksel0HIRCSELPos, 1, sel))
	d.setClk(rPWRCTL, setField(d.clk(rPWRCTL), pwrctlHIRC0FSELPos, 1, fsel))
}

// ModuleClock returns the clock frequency of the timer channel.
// The result is 0 if the timer is clocked from its external pin.
func (d *Device) ModuleClock(ch Channel) uint32 {
	src, div := d.ClockSelect(ch)
	return src.Frequency(d.cfg, d.HIRC(), d.cfg.sysClock) / (div + 1)
}

// SetModuleClock selects the clock source and divider (0-15) for the
// timer channel, and enables the timer clock.
func (d *Device) SetModuleClock(ch Channel, src ClockSource, div uint32) {
	offs, pos := ch.selector()
	d.setClk(offs, setField(d.clk(offs), pos, tmrSelMsk, uint32(src)))
	d.setClk(rCLKDIV1, setField(d.clk(rCLKDIV1), ch.divider(), tmrDivMsk, div))
	d.setClk(rAPBCLK, d.clk(rAPBCLK)|1<<(apbclkTMR0CKENPos+uint(ch)))
}
