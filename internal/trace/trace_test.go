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

package trace

import (
	"strings"
	"testing"

	"github.com/pdxjjb/risc16/internal/cpu"
	"github.com/pdxjjb/risc16/internal/isa"
	"github.com/pdxjjb/risc16/internal/mem"
)

func TestRecorderWrapsAtCapacity(t *testing.T) {
	r := New(2)
	r.Record(0, 0, cpu.Observation{}, 2)
	r.Record(2, 0, cpu.Observation{}, 4)
	r.Record(4, 0, cpu.Observation{}, 6)
	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].PCBefore != 2 || entries[1].PCBefore != 4 {
		t.Errorf("entries = %+v, want oldest-first starting at pc=2", entries)
	}
}

func TestStepRecords(t *testing.T) {
	m, err := mem.New(mem.DefaultSize)
	if err != nil {
		t.Fatalf("mem.New: %v", err)
	}
	words := []uint16{
		isa.Encode(isa.Instruction{Op: isa.ADDI, RegA: 1, RegB: 0, Imm: 5}),
	}
	if err := m.LoadWords(words); err != nil {
		t.Fatalf("LoadWords: %v", err)
	}
	e := cpu.New(m)
	r := New(DefaultCapacity)
	s, err := Step(e, r, cpu.Reset())
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if s.Register(1) != 5 {
		t.Errorf("r1 = %d, want 5", s.Register(1))
	}
	entries := r.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Mnemonic, "addi") {
		t.Errorf("mnemonic = %q, want addi prefix", entries[0].Mnemonic)
	}
}
