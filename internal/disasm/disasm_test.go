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

package disasm

import (
	"strings"
	"testing"

	"github.com/pdxjjb/risc16/internal/meta"
)

func TestOneInstruction(t *testing.T) {
	line := One(0, 0x0503, meta.Instruction, false, "", false)
	if line.Text != "add r1, r2, r3" {
		t.Errorf("text = %q, want %q", line.Text, "add r1, r2, r3")
	}
	if line.Warning != "" {
		t.Errorf("warning = %q, want empty", line.Warning)
	}
}

func TestOneJalrTwoOperands(t *testing.T) {
	line := One(0, 0xE000, meta.Instruction, false, "", false) // jalr r0, r0
	if line.Text != "jalr r0, r0" {
		t.Errorf("text = %q, want %q", line.Text, "jalr r0, r0")
	}
}

func TestOneDataTagged(t *testing.T) {
	line := One(4, 42, meta.Data, true, "", false)
	if line.Text != ".fill 0x002A" {
		t.Errorf("text = %q, want %q", line.Text, ".fill 0x002A")
	}
}

func TestOneInvalidEncodingFallsBackToWord(t *testing.T) {
	// RRR opcode (000) with non-zero padding bits 6:3 is invalid.
	bad := uint16(0x0078)
	line := One(0, bad, meta.Instruction, false, "", false)
	if !strings.HasPrefix(line.Text, ".word") {
		t.Errorf("text = %q, want .word fallback", line.Text)
	}
	if line.Warning == "" {
		t.Error("expected a warning for invalid encoding")
	}
}

func TestOneWithLabelComment(t *testing.T) {
	line := One(0, 0x0503, meta.Instruction, false, "start", true)
	if !strings.Contains(line.Text, "# start:") {
		t.Errorf("text = %q, want label comment", line.Text)
	}
}

func TestProgram(t *testing.T) {
	words := []uint16{0x0503, 0x6464}
	lines := Program(words, nil)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[1].Address != 2 {
		t.Errorf("address[1] = %d, want 2", lines[1].Address)
	}
}
