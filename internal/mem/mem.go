/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify it
under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful, but
WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public
License along with this program. If not, see
<http://www.gnu.org/licenses/>.
*/

// Package mem implements the byte-addressed RAM the interpreter runs
// against: a power-of-two-sized byte array with 16-bit big-endian word
// access at even addresses.
package mem

import "fmt"

// DefaultSize is the memory size used when the caller doesn't specify
// one: 64KiB, matching RiSC-16's 16-bit address space.
const DefaultSize = 64 * 1024

// Memory is byte-addressed RAM whose size is a power of two. It has a
// single owner per engine instance; the loader writes into it, the
// engine borrows it for the lifetime of a run.
type Memory struct {
	bytes []byte
}

// New allocates a zeroed Memory of the given size, which must be a
// power of two and at least 2.
func New(size int) (*Memory, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("memory size %d is not a power of two >= 2", size)
	}
	return &Memory{bytes: make([]byte, size)}, nil
}

// Size returns the memory's byte capacity.
func (m *Memory) Size() int {
	return len(m.bytes)
}

// Clear zeroes the entire memory. Called at the start of every program
// load.
func (m *Memory) Clear() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
}

// ReadWord returns the 16-bit big-endian value at addr. addr must be
// even and within [0, Size()).
func (m *Memory) ReadWord(addr int) (uint16, error) {
	if err := m.checkWordAddr(addr); err != nil {
		return 0, err
	}
	return uint16(m.bytes[addr])<<8 | uint16(m.bytes[addr+1]), nil
}

// WriteWord stores a 16-bit big-endian value at addr. addr must be
// even and within [0, Size()).
func (m *Memory) WriteWord(addr int, value uint16) error {
	if err := m.checkWordAddr(addr); err != nil {
		return err
	}
	m.bytes[addr] = byte(value >> 8)
	m.bytes[addr+1] = byte(value)
	return nil
}

func (m *Memory) checkWordAddr(addr int) error {
	if addr < 0 || addr+1 >= len(m.bytes) {
		return fmt.Errorf("address 0x%04X out of range [0, 0x%04X)", addr, len(m.bytes))
	}
	if addr%2 != 0 {
		return fmt.Errorf("address 0x%04X is odd, word access requires an even address", addr)
	}
	return nil
}

// LoadWords writes a sequence of 16-bit words starting at byte address
// 0, two bytes each, used by the assembler/loader to populate memory
// from an AssembledProgram.
func (m *Memory) LoadWords(words []uint16) error {
	m.Clear()
	addr := 0
	for _, w := range words {
		if err := m.WriteWord(addr, w); err != nil {
			return err
		}
		addr += 2
	}
	return nil
}

// Bytes returns the raw underlying byte slice for direct inspection by
// a disassembler or debugger. It is a view, not a copy; callers must
// not retain it past the memory's lifetime.
func (m *Memory) Bytes() []byte {
	return m.bytes
}
