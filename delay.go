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

// Delay limits, in microseconds.
const (
	MinDelay = 10
	MaxDelay = 1000000
)

// DelaySetting returns the one-shot setting for a delay of usec
// microseconds from the timer input clock, and the delay after rounding.
// The delay is rounded up to a 100us step when the timer is clocked
// from the LIRC (whose frequency is lirc), and to a 10us step otherwise.
func DelaySetting(clock, usec, lirc uint32) (Setting, uint32) {
	if clock == lirc {
		usec = ((usec + 99) / 100) * 100
	} else {
		usec = ((usec + 9) / 10) * 10
	}
	s := Setting{Mode: OneShotMode}
	if clock > maxCount {
		s.Prescale = 1
		clock >>= 1
	}
	// usec * clock overflows 32 bits.
	s.Compare = uint32(uint64(usec) * uint64(clock) / 1000000)
	return s, usec
}

// Delay busy waits for usec microseconds (MinDelay - MaxDelay) using the
// timer in one-shot mode. The previous configuration of the timer is
// lost. No interrupt is used, and the caller is blocked for the whole
// delay, so Delay should not be used where other work must proceed
// on the same goroutine or thread.
// The timer clock must be known i.e not the external pin.
// Only one prescale stage is used, so on a clock above 0xFFFFFF long delays
// need a compare value wider than the 24 bit counter (1s at 36MHz needs
// 18000000) and are cut short by the hardware.
func (t *Timer) Delay(usec uint32) {
	clk := t.Clock()
	spin := t.dev.SystemClock() / clk
	t.wr(rCTL, 0)
	s, _ := DelaySetting(clk, usec, t.dev.cfg.osc[LIRC])
	t.wr(rCMP, s.Compare)
	t.wr(rPRECNT, s.Prescale)
	t.wr(rCTL, uint32(s.Mode)|ctlCNTEN)
	// The active flag lags the counter enable by a few timer clocks, which may
	// be many core clocks; spin so the flag is seen before polling it.
	for ; spin > 0; spin-- {
		t.rd(rCNT)
	}
	for t.IsActive() {
	}
}
