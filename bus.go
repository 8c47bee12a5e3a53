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
	"sync"

	"golang.org/x/exp/slices"
)

// Bus provides 32 bit access to peripheral registers by physical address.
type Bus interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, v uint32)
}

// Memory is a Bus backed by ordinary memory. Registers read as zero
// until written. The optional hooks allow hardware behaviour to be
// simulated e.g a status bit that clears after a number of reads:
//   m := NewMemory()
//   m.OnRead = func(addr, v uint32) uint32 { ... }
// The hooks are called with the Memory locked, and must not call
// back into the Memory.
type Memory struct {
	mu   sync.Mutex
	regs map[uint32]uint32

	// OnRead is called with the stored value; the returned value is
	// stored and returned to the reader.
	OnRead func(addr, v uint32) uint32
	// OnWrite is called with the written value; the returned value is
	// stored.
	OnWrite func(addr, v uint32) uint32
}

// NewMemory creates an empty register memory.
func NewMemory() *Memory {
	return &Memory{regs: make(map[uint32]uint32)}
}

// Read32 reads the register at addr.
func (m *Memory) Read32(addr uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.regs[addr]
	if m.OnRead != nil {
		v = m.OnRead(addr, v)
		m.regs[addr] = v
	}
	return v
}

// Write32 writes v to the register at addr.
func (m *Memory) Write32(addr uint32, v uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OnWrite != nil {
		v = m.OnWrite(addr, v)
	}
	m.regs[addr] = v
}

// Addresses returns the sorted list of registers that hold a value.
func (m *Memory) Addresses() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := make([]uint32, 0, len(m.regs))
	for r := range m.regs {
		a = append(a, r)
	}
	slices.Sort(a)
	return a
}
