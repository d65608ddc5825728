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

// Package meta holds ProgramMetadata: per-address instruction/data
// tags and the label<->address map a viewer or debugger queries to
// render a program. The core builds this during assembly; it does not
// itself render anything.
package meta

import "fmt"

// Tag classifies what was emitted at an address.
type Tag int

const (
	Instruction Tag = iota
	Data
)

func (t Tag) String() string {
	if t == Instruction {
		return "instruction"
	}
	return "data"
}

// Metadata is the per-address tag map plus the bidirectional label map
// and entry point for an assembled program. An address holds at most
// one tag at a time; the label map is injective (one name per address,
// one address per name).
type Metadata struct {
	tags       map[uint32]Tag
	addrToName map[uint32]string
	nameToAddr map[string]uint32
	entryPoint uint32
}

// New returns empty Metadata with the given entry point (conventionally 0).
func New(entryPoint uint32) *Metadata {
	return &Metadata{
		tags:       make(map[uint32]Tag),
		addrToName: make(map[uint32]string),
		nameToAddr: make(map[string]uint32),
		entryPoint: entryPoint,
	}
}

// Tag returns the tag at addr, if any.
func (m *Metadata) Tag(addr uint32) (Tag, bool) {
	t, ok := m.tags[addr]
	return t, ok
}

// SetTag records that addr holds an instruction or data word.
func (m *Metadata) SetTag(addr uint32, t Tag) {
	m.tags[addr] = t
}

// AddLabel records a label name at an address. It is an error to bind
// the same name twice or to bind two names to the same address,
// keeping the map injective.
func (m *Metadata) AddLabel(name string, addr uint32) error {
	if existing, ok := m.nameToAddr[name]; ok {
		return fmt.Errorf("label %q already bound to address 0x%04X", name, existing)
	}
	if existing, ok := m.addrToName[addr]; ok {
		return fmt.Errorf("address 0x%04X already labeled %q", addr, existing)
	}
	m.nameToAddr[name] = addr
	m.addrToName[addr] = name
	return nil
}

// LabelAt returns the label bound to addr, if any.
func (m *Metadata) LabelAt(addr uint32) (string, bool) {
	n, ok := m.addrToName[addr]
	return n, ok
}

// AddressOf returns the address bound to a label, if any.
func (m *Metadata) AddressOf(name string) (uint32, bool) {
	a, ok := m.nameToAddr[name]
	return a, ok
}

// EntryPoint returns the program's entry address.
func (m *Metadata) EntryPoint() uint32 {
	return m.entryPoint
}
