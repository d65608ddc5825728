/*
Copyright © 2023 Jeff Berkowitz (pdxjjb@gmail.com)

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

package asm

import (
	"github.com/pdxjjb/risc16/internal/symtab"
)

// UnresolvedKind identifies which patch computation a pending label
// reference needs once its address is known.
type UnresolvedKind struct{ k int }

var (
	// Branch patches a beq immediate to (target - (pc+2)), checked
	// against the signed 7-bit RRI range.
	Branch = UnresolvedKind{0}
	// LoadStore patches an lw/sw immediate to (target - pc), the
	// offset from the instruction's own byte address, since lw/sw
	// compute their effective address as rB + imm at runtime. Checked
	// against the signed 7-bit RRI range.
	LoadStore = UnresolvedKind{1}
	// MoviUpper patches a lui immediate to the label's address shifted
	// right by ranges.LUIShift.
	MoviUpper = UnresolvedKind{2}
	// MoviLower patches an addi immediate to the label's address
	// masked by ranges.LLIMask.
	MoviLower = UnresolvedKind{3}
	// Fill patches a .fill data word to the label's absolute address,
	// unchecked (a data word holds any 16-bit pattern).
	Fill = UnresolvedKind{4}
)

func (k UnresolvedKind) String() string {
	switch k {
	case Branch:
		return "BRANCH"
	case LoadStore:
		return "LOAD_STORE"
	case MoviUpper:
		return "MOVI_UPPER"
	case MoviLower:
		return "MOVI_LOWER"
	case Fill:
		return "FILL"
	default:
		return "UNKNOWN"
	}
}

// UnresolvedReference is a pending patch: word Address in the output
// still needs Kind's computation applied once Label resolves.
type UnresolvedReference struct {
	Address uint32
	Kind    UnresolvedKind
	Label   string
	Line    int
	Source  string
}

// AssembledProgram is the result of a full two-pass assembly: the
// emitted word image, the symbol table that produced it, and any
// warnings collected along the way. A program with a non-nil error
// returned alongside it from Assemble carries no other guarantees.
type AssembledProgram struct {
	Words    []uint16
	Symbols  *symtab.Table
	Warnings []string
}

// Size returns the number of 16-bit words in the program image.
func (p *AssembledProgram) Size() int {
	return len(p.Words)
}
