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
	"bytes"
	"strings"
	"testing"

	"github.com/aamcrae/timer"
)

// simEnv returns an env with a device on simulated registers.
func simEnv() *env {
	e := &env{mem: timer.NewMemory()}
	e.dev = timer.NewDevice(timer.NewConfig(), e.mem)
	return e
}

func run(e *env, in string, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCmd(e)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetIn(strings.NewReader(in))
	err := root.Execute()
	return out.String(), err
}

const testScript = `
# Timer 1 from the 12MHz HIRC
setclock 1 HIRC 0 --hirc 12
open 1 periodic 1000
clock 1

freq 2 --drop 4 --timeout 0x100 --int
`

func Test_Script(t *testing.T) {
	e := &env{}
	out, err := run(e, testScript, "--sim", "script", "-")
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	for _, want := range []string{
		"TIMER1 compare 12000 prescale 0 frequency 1000 Hz\n",
		"TIMER1 HIRC/1 12000000 Hz\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
	if e.mem == nil {
		t.Fatalf("--sim did not create simulated registers")
	}
	if d := e.dev.Timer(timer.Timer2).DropCount(); d != 4 {
		t.Errorf("drop count got %d expected 4", d)
	}
	if c := e.dev.Timer(timer.Timer3).Setting().Compare; c != 0x100 {
		t.Errorf("timeout got 0x%x expected 0x100", c)
	}
	e.close()
	if e.dev != nil {
		t.Errorf("device not released")
	}
}

func Test_ScriptErrors(t *testing.T) {
	tests := map[string]string{
		"bad-line":    "open 1 periodic 100\nopen 9 periodic 100\n",
		"quote":       "open 1 'periodic 100\n",
		"nested":      "script -\n",
		"unknown-cmd": "start 1\n",
		"sysclk":      "delay 0 100 --sysclk 12000000\n",
		"sim":         "--sim=false clock 0\n",
		"mem":         "clock 0 -m /tmp/mem\n",
	}
	for n, s := range tests {
		if _, err := run(simEnv(), s, "script", "-"); err == nil {
			t.Errorf("%s: script succeeded", n)
		}
	}
	_, err := run(simEnv(), "clock 0\nclock x\n", "script", "-")
	if err == nil || !strings.HasPrefix(err.Error(), "-:2:") {
		t.Errorf("error does not name line 2: %v", err)
	}
}

func Test_Commands(t *testing.T) {
	tests := map[string]struct {
		args []string
		ok   bool
	}{
		"clock":          {[]string{"clock", "3"}, true},
		"clock-range":    {[]string{"clock", "4"}, false},
		"setclock":       {[]string{"setclock", "0", "LIRC", "1"}, true},
		"setclock-hirc":  {[]string{"setclock", "0", "HIRC", "0", "--hirc", "36"}, true},
		"setclock-bad":   {[]string{"setclock", "0", "HIRC", "0", "--hirc", "20"}, false},
		"setclock-div":   {[]string{"setclock", "0", "HXT", "16"}, false},
		"setclock-src":   {[]string{"setclock", "0", "PLL", "0"}, false},
		"open":           {[]string{"open", "2", "toggle", "500", "--start"}, true},
		"open-zero":      {[]string{"open", "2", "toggle", "0"}, false},
		"open-mode":      {[]string{"open", "2", "pwm", "10"}, false},
		"close":          {[]string{"close", "2"}, true},
		"delay":          {[]string{"delay", "0", "100"}, true},
		"delay-short":    {[]string{"delay", "0", "5"}, false},
		"delay-long":     {[]string{"delay", "0", "1000001"}, false},
		"freq":           {[]string{"freq", "0", "--timeout", "1000"}, true},
		"freq-off":       {[]string{"freq", "0", "--off"}, true},
		"freq-timer":     {[]string{"freq", "1"}, false},
		"freq-timeout":   {[]string{"freq", "2", "--timeout", "0x1000000"}, false},
		"dump":           {[]string{"dump"}, true},
		"missing-arg":    {[]string{"open", "1", "periodic"}, false},
		"unknown-source": {[]string{"setclock", "1", "hxt", "0"}, false},
	}
	for n, tc := range tests {
		_, err := run(simEnv(), "", tc.args...)
		if (err == nil) != tc.ok {
			t.Errorf("%s: %v got error %v", n, tc.args, err)
		}
	}
}

func Test_DelayExternalClock(t *testing.T) {
	e := simEnv()
	e.dev.SetModuleClock(timer.Timer1, timer.SourceExternal, 0)
	if _, err := run(e, "", "delay", "1", "100"); err == nil {
		t.Errorf("delay with external clock succeeded")
	}
}

func Test_Dump(t *testing.T) {
	e := simEnv()
	if _, err := run(e, "", "open", "0", "periodic", "1000"); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	out, err := run(e, "", "dump")
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	// TIMER0 CMP
	if !strings.Contains(out, "0x40010008: 0x00002ee0\n") {
		t.Errorf("dump output %q", out)
	}
	e.mem = nil
	if _, err := run(e, "", "dump"); err == nil {
		t.Errorf("dump without simulated registers succeeded")
	}
}

func Test_DeviceFlag(t *testing.T) {
	tests := map[string]string{
		"open 1 periodic 100":             "",
		"freq 0 --drop 2 --timeout=100":   "",
		"clock 0 --sysclk 100":            "--sysclk",
		"clock 0 --sysclk=100":            "--sysclk",
		"--sim clock 0":                   "--sim",
		"clock 0 --mem=/dev/mem":          "--mem",
		"clock 0 -m/dev/mem":              "--mem",
		"open 1 periodic 100 -- --sysclk": "",
	}
	for line, want := range tests {
		if got := deviceFlag(strings.Fields(line)); got != want {
			t.Errorf("%q: got %q expected %q", line, got, want)
		}
	}
}
