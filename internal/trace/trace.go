/*
Copyright © 2024 Jeff Berkowitz (pdxjjb@gmail.com)

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

// Package trace records a bounded history of executed instructions
// for the run command's --trace output. It is a read surface only: it
// never changes what the execution engine computes, and the bare
// cpu.ExecutionEngine.Step stays pure and unaware of it.
package trace

import (
	"fmt"
	"strings"

	"github.com/pdxjjb/risc16/internal/cpu"
	"github.com/pdxjjb/risc16/internal/disasm"
	"github.com/pdxjjb/risc16/internal/meta"
)

// DefaultCapacity is the ring buffer size used when the caller doesn't
// specify one.
const DefaultCapacity = 256

// Entry is one traced step.
type Entry struct {
	PCBefore uint16
	Word     uint16
	Mnemonic string
	Obs      cpu.Observation
	PCAfter  uint16
}

// Recorder is a fixed-capacity ring buffer of Entry. Once full, each
// append evicts the oldest entry.
type Recorder struct {
	capacity int
	entries  []Entry
	next     int
	full     bool
}

// New returns a Recorder with the given capacity, or DefaultCapacity
// if capacity <= 0.
func New(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{capacity: capacity, entries: make([]Entry, capacity)}
}

// Record appends one traced step, overwriting the oldest entry once
// the buffer is full.
func (r *Recorder) Record(pcBefore, word uint16, obs cpu.Observation, pcAfter uint16) {
	text, _ := decodeForTrace(word)
	r.entries[r.next] = Entry{
		PCBefore: pcBefore,
		Word:     word,
		Mnemonic: text,
		Obs:      obs,
		PCAfter:  pcAfter,
	}
	r.next = (r.next + 1) % r.capacity
	if r.next == 0 {
		r.full = true
	}
}

func decodeForTrace(word uint16) (string, string) {
	line := disasm.One(0, word, meta.Instruction, true, "", false)
	return line.Text, line.Warning
}

// Entries returns the recorded entries oldest-first.
func (r *Recorder) Entries() []Entry {
	if !r.full {
		out := make([]Entry, r.next)
		copy(out, r.entries[:r.next])
		return out
	}
	out := make([]Entry, r.capacity)
	copy(out, r.entries[r.next:])
	copy(out[r.capacity-r.next:], r.entries[:r.next])
	return out
}

// Dump renders the recorded entries oldest-first, one line each.
func (r *Recorder) Dump() string {
	var b strings.Builder
	for _, e := range r.Entries() {
		fmt.Fprintf(&b, "%04X -> %04X  %-28s %s\n", e.PCBefore, e.PCAfter, e.Mnemonic, observationText(e.Obs))
	}
	return b.String()
}

func observationText(o cpu.Observation) string {
	var parts []string
	if o.HasDest {
		parts = append(parts, fmt.Sprintf("dest=r%d", o.Dest))
	}
	if o.HasMem {
		parts = append(parts, fmt.Sprintf("mem=0x%04X", o.Addr))
	}
	if o.HasBranch {
		parts = append(parts, fmt.Sprintf("taken=%v target=0x%04X", o.Taken, o.Target))
	}
	return strings.Join(parts, " ")
}
