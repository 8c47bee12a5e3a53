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

import "testing"

func Test_FreqCounter(t *testing.T) {
	tests := map[string]struct {
		ch      Channel
		drop    uint8
		timeout uint32
		intr    bool
		ctl     uint32
		cmp     uint32
		inten   uint32
	}{
		"no-timeout":      {Timer0, 0, 0, false, ctlINTRTGEN | ctlCNTEN, MaxTimeout, 0},
		"timeout-1":       {Timer0, 0, 1, true, ctlINTRTGEN | ctlCNTEN, MaxTimeout, intenCAPIEN},
		"timeout":         {Timer0, 0, 1000, false, ctlINTRTGEN | ctlINTRTGMD | ctlCNTEN, 1000, 0},
		"drop":            {Timer2, 5, 0, true, ctlINTRTGEN | ctlINTRTGMD | ctlCNTEN, MaxTimeout, intenCAPIEN},
		"drop-timeout":    {Timer2, 255, MinTimeout, false, ctlINTRTGEN | ctlINTRTGMD | ctlCNTEN, MinTimeout, 0},
		"timeout-maximum": {Timer0, 1, MaxTimeout, true, ctlINTRTGEN | ctlINTRTGMD | ctlCNTEN, MaxTimeout, intenCAPIEN},
	}
	for n, tc := range tests {
		d, m := sim()
		base, peer := timerBases[tc.ch], timerBases[tc.ch+1]
		m.Write32(peer+rINTEN, intenCNTIEN|intenCAPIEN)
		d.Timer(tc.ch).EnableFreqCounter(tc.drop, tc.timeout, tc.intr)
		if v := m.Read32(base + rCTL); v != tc.ctl {
			t.Errorf("%s: CTL got 0x%08x expected 0x%08x", n, v, tc.ctl)
		}
		if v := m.Read32(base + rECTL); v != uint32(tc.drop)<<ectlEVNTDPCNTPos {
			t.Errorf("%s: ECTL got 0x%08x", n, v)
		}
		if v := d.Timer(tc.ch).DropCount(); v != tc.drop {
			t.Errorf("%s: DropCount got %d expected %d", n, v, tc.drop)
		}
		if v := m.Read32(peer + rCMP); v != tc.cmp {
			t.Errorf("%s: peer CMP got 0x%x expected 0x%x", n, v, tc.cmp)
		}
		if v := m.Read32(peer + rINTEN); v != tc.inten {
			t.Errorf("%s: peer INTEN got 0x%x expected 0x%x", n, v, tc.inten)
		}
	}
}

func Test_DisableFreqCounter(t *testing.T) {
	d, m := sim()
	tm := d.Timer(Timer0)
	tm.EnableFreqCounter(3, 500, true)
	tm.EnableCapture(CaptureFreeCounting, FallingThenRisingEdge)
	tm.DisableFreqCounter()
	want := uint32(ctlCNTEN | ctlCAPEN | uint32(FallingThenRisingEdge))
	if v := m.Read32(timer0Base + rCTL); v != want {
		t.Errorf("CTL got 0x%08x expected 0x%08x", v, want)
	}
	if v := m.Read32(timer1Base + rCMP); v != 500 {
		t.Errorf("TIMER1 CMP changed: %d", v)
	}
	if tm.DropCount() != 3 {
		t.Errorf("drop count changed")
	}
}

func Test_Capture(t *testing.T) {
	d, m := sim()
	tm := d.Timer(Timer1)
	tm.Open(PeriodicMode, 1000)
	tm.EnableCapture(CaptureCounterReset, RisingThenFallingEdge)
	want := uint32(PeriodicMode) | ctlCAPFUNCS | uint32(RisingThenFallingEdge) | ctlCAPEN
	if v := m.Read32(timer1Base + rCTL); v != want {
		t.Errorf("CTL got 0x%08x expected 0x%08x", v, want)
	}
	// Mode and edge are replaced, not merged.
	tm.EnableCapture(CaptureTriggerCounting, FallingEdge)
	want = uint32(PeriodicMode) | ctlCAPCNTMD | ctlCAPEN
	if v := m.Read32(timer1Base + rCTL); v != want {
		t.Errorf("CTL got 0x%08x expected 0x%08x", v, want)
	}
	tm.DisableCapture()
	if v := m.Read32(timer1Base + rCTL); v != uint32(PeriodicMode)|ctlCAPCNTMD {
		t.Errorf("CTL after disable got 0x%08x", v)
	}
	m.Write32(timer1Base+rCAP, 0xFF123456)
	if v := tm.CaptureData(); v != 0x123456 {
		t.Errorf("CaptureData got 0x%x", v)
	}
}

func Test_EventCounter(t *testing.T) {
	d, m := sim()
	tm := d.Timer(Timer2)
	tm.EnableEventCounter(CounterRisingEdge)
	if v := m.Read32(timer2Base + rCTL); v != ctlCNTPHASE|ctlEXTCNTEN {
		t.Errorf("CTL got 0x%08x", v)
	}
	tm.EnableEventCounter(CounterFallingEdge)
	if v := m.Read32(timer2Base + rCTL); v != ctlEXTCNTEN {
		t.Errorf("CTL got 0x%08x", v)
	}
	tm.DisableEventCounter()
	if v := m.Read32(timer2Base + rCTL); v != 0 {
		t.Errorf("CTL got 0x%08x", v)
	}
}

func Test_Trigger(t *testing.T) {
	d, m := sim()
	tm := d.Timer(Timer0)
	tm.Start()
	tm.SetTriggerSource(CaptureTrigger)
	tm.SetTriggerTarget(TriggerADC | TriggerPWM)
	if v := m.Read32(timer0Base + rCTL); v != ctlCNTEN|ctlTRGSSEL|ctlTRGADC|ctlTRGPWM {
		t.Errorf("CTL got 0x%08x", v)
	}
	tm.SetTriggerSource(TimeoutTrigger)
	tm.SetTriggerTarget(TriggerPDMA)
	if v := m.Read32(timer0Base + rCTL); v != ctlCNTEN|ctlTRGPDMA {
		t.Errorf("CTL got 0x%08x", v)
	}
}

func Test_Interrupts(t *testing.T) {
	d, m := sim()
	tm := d.Timer(Timer3)
	tm.EnableInt()
	tm.EnableCaptureInt()
	if v := m.Read32(timer3Base + rINTEN); v != intenCNTIEN|intenCAPIEN {
		t.Errorf("INTEN got 0x%x", v)
	}
	tm.DisableInt()
	if v := m.Read32(timer3Base + rINTEN); v != intenCAPIEN {
		t.Errorf("INTEN got 0x%x", v)
	}
	tm.DisableCaptureInt()
	if v := m.Read32(timer3Base + rINTEN); v != 0 {
		t.Errorf("INTEN got 0x%x", v)
	}
	m.Write32(timer3Base+rINTSTS, intstsCNTIF|intstsCAPIF)
	if !tm.IntFlag() || !tm.CaptureIntFlag() {
		t.Errorf("interrupt flags not seen")
	}
	// Write-1-to-clear
	m.OnWrite = func(addr, v uint32) uint32 {
		if addr == timer3Base+rINTSTS {
			return m.regs[addr] &^ v
		}
		return v
	}
	tm.ClearIntFlag()
	if tm.IntFlag() || !tm.CaptureIntFlag() {
		t.Errorf("ClearIntFlag got 0x%x", m.Read32(timer3Base+rINTSTS))
	}
	tm.ClearCaptureIntFlag()
	if tm.CaptureIntFlag() {
		t.Errorf("ClearCaptureIntFlag got 0x%x", m.Read32(timer3Base+rINTSTS))
	}
}

func Test_FreqCounterPairs(t *testing.T) {
	for _, ch := range []Channel{Timer1, Timer3} {
		d, m := sim()
		d.Timer(ch).EnableFreqCounter(0, 500, false)
		for _, other := range []Channel{Timer0, Timer1, Timer2, Timer3} {
			if other|1 == ch {
				continue
			}
			if v := m.Read32(timerBases[other] + rCMP); v != 0 {
				t.Errorf("%s receiver wrote %s CMP 0x%x", ch, other, v)
			}
		}
		if v := m.Read32(timerBases[ch] + rCMP); v != 500 {
			t.Errorf("%s CMP got %d expected 500", ch, v)
		}
	}
}

func Test_Wakeup(t *testing.T) {
	d, m := sim()
	tm := d.Timer(Timer1)
	tm.Open(PeriodicMode, 1000)
	tm.EnableWakeup()
	if v := m.Read32(timer1Base + rCTL); v != uint32(PeriodicMode)|ctlWKEN {
		t.Errorf("CTL got 0x%08x", v)
	}
	tm.DisableWakeup()
	if v := m.Read32(timer1Base + rCTL); v != uint32(PeriodicMode) {
		t.Errorf("CTL got 0x%08x", v)
	}
}
