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

// Mode is the operating mode written to the control register by Open.
type Mode uint32

const (
	OneShotMode    Mode = 0 << 4
	PeriodicMode   Mode = 1 << 4
	ToggleMode     Mode = 2 << 4
	ContinuousMode Mode = 3 << 4
)

var modeNames = map[string]Mode{
	"oneshot":    OneShotMode,
	"periodic":   PeriodicMode,
	"toggle":     ToggleMode,
	"continuous": ContinuousMode,
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, bool) {
	m, ok := modeNames[name]
	return m, ok
}

// Setting holds the register values derived for a timer.
type Setting struct {
	Compare  uint32
	Prescale uint32
	Mode     Mode
}

// Timer is the handle for a single timer channel.
type Timer struct {
	dev  *Device
	ch   Channel
	base uint32
}

// Channel returns the channel identity of the timer.
func (t *Timer) Channel() Channel {
	return t.ch
}

// Clock returns the input clock frequency of the timer.
func (t *Timer) Clock() uint32 {
	return t.dev.ModuleClock(t.ch)
}

// Calculate derives the compare and prescale values that come closest
// to freq from an input clock, and returns them with the frequency
// actually achieved. The fastest rate is clock/2 (compare of 2, no
// prescale). A clock wider than the 24 bit counter is halved by the
// prescaler. freq must not be 0.
func Calculate(clock, freq uint32) (Setting, uint32) {
	var s Setting
	if freq >= clock/2 {
		s.Compare = minCompare
	} else {
		c := clock
		if c > maxCount {
			s.Prescale = 1
			c >>= 1
		}
		s.Compare = c / freq
	}
	return s, clock / (s.Compare * (s.Prescale + 1))
}

// Open configures the timer to run in the mode at the frequency closest to freq,
// and returns the frequency achieved, which may differ from freq.
// The timer is not started. freq must not be 0.
func (t *Timer) Open(mode Mode, freq uint32) uint32 {
	s, hz := Calculate(t.Clock(), freq)
	s.Mode = mode
	t.apply(s)
	return hz
}

// Setting returns the register values currently programmed.
func (t *Timer) Setting() Setting {
	return Setting{
		Compare:  t.rd(rCMP),
		Prescale: t.rd(rPRECNT),
		Mode:     Mode(t.rd(rCTL) & ctlOPMODE),
	}
}

// apply writes the setting, replacing the control register.
func (t *Timer) apply(s Setting) {
	t.wr(rCMP, s.Compare)
	t.wr(rPRECNT, s.Prescale)
	t.wr(rCTL, uint32(s.Mode))
}

// Close stops the timer and disables its interrupts.
func (t *Timer) Close() {
	t.wr(rCTL, 0)
	t.wr(rINTEN, 0)
}

// Start starts the timer counting.
func (t *Timer) Start() {
	t.set(rCTL, ctlCNTEN)
}

// Stop stops the timer counting.
func (t *Timer) Stop() {
	t.clear(rCTL, ctlCNTEN)
}

// IsActive returns true if the timer is counting.
func (t *Timer) IsActive() bool {
	return t.rd(rCTL)&ctlACTSTS != 0
}

// ResetCounter resets the counter. Any write to the counter resets it.
func (t *Timer) ResetCounter() {
	t.wr(rCNT, 0)
}

// Counter returns the current count.
func (t *Timer) Counter() uint32 {
	return t.rd(rCNT) & maxCount
}

// SetCompare sets the compare value (2 - 0xFFFFFF).
func (t *Timer) SetCompare(v uint32) {
	t.wr(rCMP, v)
}

// SetPrescale sets the prescale value (0 - 0xFF).
func (t *Timer) SetPrescale(v uint32) {
	t.wr(rPRECNT, v)
}

func (t *Timer) rd(offs uint32) uint32 {
	return t.dev.bus.Read32(t.base + offs)
}

func (t *Timer) wr(offs uint32, v uint32) {
	t.dev.bus.Write32(t.base+offs, v)
}

// set sets bits in a register
func (t *Timer) set(offs uint32, bits uint32) {
	t.wr(offs, t.rd(offs)|bits)
}

// clear clears bits in a register
func (t *Timer) clear(offs uint32, bits uint32) {
	t.wr(offs, t.rd(offs)&^bits)
}
