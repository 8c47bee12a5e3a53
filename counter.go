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

// CaptureMode selects what happens to the counter on a capture event.
type CaptureMode uint32

const (
	CaptureFreeCounting    CaptureMode = 0           // Counter keeps running
	CaptureCounterReset    CaptureMode = ctlCAPFUNCS // Counter reset on capture
	CaptureTriggerCounting CaptureMode = ctlCAPCNTMD // Counter started by the first edge
)

// Edge selects the capture pin edges.
type Edge uint32

const (
	FallingEdge           Edge = 0 << 18
	RisingEdge            Edge = 1 << 18
	FallingThenRisingEdge Edge = 2 << 18
	RisingThenFallingEdge Edge = 3 << 18
)

// CounterEdge selects the counted edge of the event counter pin.
type CounterEdge uint32

const (
	CounterFallingEdge CounterEdge = 0
	CounterRisingEdge  CounterEdge = ctlCNTPHASE
)

// TriggerSource selects the interrupt source that triggers other modules.
type TriggerSource uint32

const (
	TimeoutTrigger TriggerSource = 0
	CaptureTrigger TriggerSource = ctlTRGSSEL
)

// Target is a mask of the modules triggered by the timer.
type Target uint32

const (
	TriggerPWM  Target = ctlTRGPWM
	TriggerPDMA Target = ctlTRGPDMA
	TriggerADC  Target = ctlTRGADC
)

// Frequency counter limits.
const (
	MinTimeout = 2
	MaxTimeout = maxCount
)

// EnableCapture enables the capture function with the mode and edge.
// The timer frequency is configured separately, e.g with Open.
func (t *Timer) EnableCapture(mode CaptureMode, edge Edge) {
	ctl := t.rd(rCTL) &^ (ctlCAPFUNCS | ctlCAPCNTMD | ctlCAPEDGE)
	t.wr(rCTL, ctl|uint32(mode)|uint32(edge)|ctlCAPEN)
}

// DisableCapture disables the capture function.
func (t *Timer) DisableCapture() {
	t.clear(rCTL, ctlCAPEN)
}

// CaptureData returns the last captured count.
func (t *Timer) CaptureData() uint32 {
	return t.rd(rCAP) & maxCount
}

// EnableEventCounter makes the timer count edges on its counter pin.
// The compare value is set separately.
func (t *Timer) EnableEventCounter(edge CounterEdge) {
	ctl := t.rd(rCTL) &^ ctlCNTPHASE
	t.wr(rCTL, ctl|uint32(edge)|ctlEXTCNTEN)
}

// DisableEventCounter disables the event counter.
func (t *Timer) DisableEventCounter() {
	t.clear(rCTL, ctlEXTCNTEN)
}

// EnableFreqCounter measures the frequency of the events on the
// timer pin using the timer pair (Timer0 and Timer1, or Timer2 and
// Timer3) in inter timer trigger mode. The receiver must be Timer0 or Timer2;
// on Timer1 or Timer3 the result is undefined, though the other pair is
// never touched.
// drop is the number of events ignored before the measurement starts.
// timeout (MinTimeout - MaxTimeout, in timer clocks) ends the measurement
// whether or not enough events have been seen; a value below MinTimeout
// disables the timeout. If intr is set, the capture interrupt of the
// second timer of the pair is enabled.
// If drop is not 0, a valid timeout should be provided.
func (t *Timer) EnableFreqCounter(drop uint8, timeout uint32, intr bool) {
	mode := uint32(ctlINTRTGEN)
	if drop != 0 || timeout >= MinTimeout {
		mode |= ctlINTRTGMD
	}
	if timeout < MinTimeout {
		timeout = MaxTimeout
	}
	peer := t.dev.timers[t.ch|1]
	peer.wr(rCMP, timeout)
	if intr {
		peer.wr(rINTEN, intenCAPIEN)
	} else {
		peer.wr(rINTEN, 0)
	}
	t.wr(rECTL, uint32(drop)<<ectlEVNTDPCNTPos)
	t.wr(rCTL, mode|ctlCNTEN)
}

// DisableFreqCounter disables inter timer trigger mode.
func (t *Timer) DisableFreqCounter() {
	t.clear(rCTL, ctlINTRTGEN|ctlINTRTGMD)
}

// DropCount returns the event drop count of the frequency counter.
func (t *Timer) DropCount() uint8 {
	return uint8(field(t.rd(rECTL), ectlEVNTDPCNTPos, ectlEVNTDPCNTMsk))
}

// SetTriggerSource selects the interrupt source used to trigger other modules.
func (t *Timer) SetTriggerSource(src TriggerSource) {
	t.wr(rCTL, (t.rd(rCTL)&^ctlTRGSSEL)|uint32(src))
}

// SetTriggerTarget sets the modules triggered by the timer interrupt.
func (t *Timer) SetTriggerTarget(mask Target) {
	ctl := t.rd(rCTL) &^ (ctlTRGPWM | ctlTRGPDMA | ctlTRGADC)
	t.wr(rCTL, ctl|uint32(mask))
}
