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

// EnableWakeup allows the timer interrupt to wake the system.
func (t *Timer) EnableWakeup() {
	t.set(rCTL, ctlWKEN)
}

// DisableWakeup stops the timer interrupt waking the system.
func (t *Timer) DisableWakeup() {
	t.clear(rCTL, ctlWKEN)
}

// EnableInt enables the time-out interrupt.
func (t *Timer) EnableInt() {
	t.set(rINTEN, intenCNTIEN)
}

// DisableInt disables the time-out interrupt.
func (t *Timer) DisableInt() {
	t.clear(rINTEN, intenCNTIEN)
}

// EnableCaptureInt enables the capture interrupt.
func (t *Timer) EnableCaptureInt() {
	t.set(rINTEN, intenCAPIEN)
}

// DisableCaptureInt disables the capture interrupt.
func (t *Timer) DisableCaptureInt() {
	t.clear(rINTEN, intenCAPIEN)
}

// IntFlag returns true if the time-out interrupt flag is set.
func (t *Timer) IntFlag() bool {
	return t.rd(rINTSTS)&intstsCNTIF != 0
}

// ClearIntFlag clears the time-out interrupt flag. The flag is write-1-to-clear.
func (t *Timer) ClearIntFlag() {
	t.wr(rINTSTS, intstsCNTIF)
}

// CaptureIntFlag returns true if the capture interrupt flag is set.
func (t *Timer) CaptureIntFlag() bool {
	return t.rd(rINTSTS)&intstsCAPIF != 0
}

// ClearCaptureIntFlag clears the capture interrupt flag.
func (t *Timer) ClearCaptureIntFlag() {
	t.wr(rINTSTS, intstsCAPIF)
}
