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
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Register windows that are mapped. Each covers one page.
var windowBases = []uint32{
	clkBase &^ 0xFFF,
	timer0Base &^ 0xFFF, // TIMER0 and TIMER1
	timer2Base &^ 0xFFF, // TIMER2 and TIMER3
}

const windowSize = 0x1000

type window struct {
	base uint32
	mem  []byte
}

// Mapped is a Bus that accesses the registers through memory mapped
// windows of a memory device.
type Mapped struct {
	file    *os.File
	path    string
	windows []window
}

// Map opens the memory device and maps the clock controller and timer
// register windows.
func Map(path string) (*Mapped, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0660)
	if err != nil {
		return nil, err
	}
	m := &Mapped{file: f, path: path}
	for _, b := range windowBases {
		mem, err := unix.Mmap(int(f.Fd()), int64(b), windowSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("%s: map 0x%08x: %v", path, b, err)
		}
		m.windows = append(m.windows, window{base: b, mem: mem})
	}
	return m, nil
}

// Close unmaps the windows and closes the device.
func (m *Mapped) Close() {
	for _, w := range m.windows {
		unix.Munmap(w.mem)
	}
	m.windows = nil
	m.file.Close()
}

// Read32 reads one 32 bit register.
func (m *Mapped) Read32(addr uint32) uint32 {
	return atomic.LoadUint32(m.reg(addr))
}

// Write32 writes one 32 bit register.
func (m *Mapped) Write32(addr uint32, v uint32) {
	atomic.StoreUint32(m.reg(addr), v)
}

// reg returns a pointer to the mapped register.
func (m *Mapped) reg(addr uint32) *uint32 {
	for _, w := range m.windows {
		if addr >= w.base && addr < w.base+windowSize {
			return (*uint32)(unsafe.Pointer(&w.mem[addr-w.base]))
		}
	}
	panic(fmt.Sprintf("%s: register 0x%08x not mapped", m.path, addr))
}
