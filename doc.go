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

/*

Package timer configures the four general purpose timers of the Nuvoton Nano103
series of Cortex-M0 microcontrollers.

The timers are arranged as two pairs (TIMER0/TIMER1 and TIMER2/TIMER3). Each
timer has a 24 bit up counter, an 8 bit prescaler and a clock selected from
one of several oscillators in the clock controller. This package derives
the compare, prescale and control register values from logical requests
(a target frequency, a delay in microseconds, a capture mode) and writes them
to the timer registers.

Register access goes through a Bus. Open maps the peripheral register windows
from a memory device file; NewDevice accepts any Bus, such as the in-memory
Memory type, which is useful for tests and for simulation e.g:

  d := timer.NewDevice(timer.DefaultConfig, timer.NewMemory())
  t := d.Timer(timer.Timer0)
  hz := t.Open(timer.PeriodicMode, 1000)

A timer channel must only be configured by one caller at a time; every
configuration call overwrites the control register of the channel.

*/
package timer
