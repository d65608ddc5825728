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

// Package roundtrip checks that assembling, disassembling, and
// reassembling a program is idempotent: every word the disassembler
// renders must reassemble back to the exact same word, since by the
// time a program is assembled its pseudo-instructions are already
// gone and its labels are already resolved to concrete immediates.
package roundtrip

import (
	"fmt"
	"strings"

	"github.com/pdxjjb/risc16/internal/asm"
	"github.com/pdxjjb/risc16/internal/disasm"
)

// Mismatch describes one word that failed to round-trip.
type Mismatch struct {
	Address     uint32
	Original    uint16
	Reassembled uint16
}

// Check assembles source, disassembles the result, reassembles the
// disassembled text, and compares the two word images. It returns a
// nil Mismatch slice when every word round-trips exactly.
func Check(source string) ([]Mismatch, error) {
	first, err := asm.Assemble(source)
	if err != nil {
		return nil, fmt.Errorf("initial assembly failed: %w", err)
	}

	lines := disasm.Program(first.Words, first.Metadata)
	var rendered strings.Builder
	for _, l := range lines {
		rendered.WriteString(l.Text)
		rendered.WriteByte('\n')
	}

	second, err := asm.Assemble(rendered.String())
	if err != nil {
		return nil, fmt.Errorf("reassembly of disassembled text failed: %w\ndisassembly:\n%s", err, rendered.String())
	}

	if len(second.Words) != len(first.Words) {
		return nil, fmt.Errorf("reassembly produced %d words, want %d", len(second.Words), len(first.Words))
	}

	var mismatches []Mismatch
	for i, w := range first.Words {
		if second.Words[i] != w {
			mismatches = append(mismatches, Mismatch{
				Address:     uint32(i) * 2,
				Original:    w,
				Reassembled: second.Words[i],
			})
		}
	}
	return mismatches, nil
}
