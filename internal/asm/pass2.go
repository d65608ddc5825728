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
	"github.com/pdxjjb/risc16/internal/isa"
	"github.com/pdxjjb/risc16/internal/ranges"
)

// runPass2 resolves every pending label reference left by pass 1,
// patching the corresponding word in place. Each patch re-decodes the
// placeholder word, fills in the computed immediate, and re-encodes
// it, so registers chosen in pass 1 survive untouched.
func runPass2(r *pass1Result) error {
	for _, ref := range r.pending {
		target, ok := r.symbols.Lookup(ref.Label)
		if !ok {
			return newError(UndefinedLabel, ref.Line, ref.Source,
				"undefined label %q", ref.Label)
		}

		switch ref.Kind {
		case Branch:
			// ref.Address is a word index; the running PC at the time
			// the engine evaluates this branch is its byte address
			// plus 2, since beq advances PC before adding the offset.
			pc := int64(ref.Address)*2 + 2
			offset := int64(target) - pc
			if !ranges.InRRIRange(int(offset)) {
				return newError(OutOfRange, ref.Line, ref.Source,
					"branch to %q is out of range (offset %d)", ref.Label, offset)
			}
			patchImm(r, ref.Address, int16(offset))

		case LoadStore:
			// lw/sw compute their effective address as rB + imm at
			// runtime, not an absolute address, so a label reference
			// here patches in an offset from the instruction's own
			// byte address (Branch above measures from pc+2 instead).
			pc := int64(ref.Address) * 2
			offset := int64(target) - pc
			if !ranges.InRRIRange(int(offset)) {
				return newError(OutOfRange, ref.Line, ref.Source,
					"address of %q is out of range for lw/sw (offset %d)", ref.Label, offset)
			}
			patchImm(r, ref.Address, int16(offset))

		case MoviUpper:
			patchImm(r, ref.Address, int16(int64(target)>>ranges.LUIShift))

		case MoviLower:
			patchImm(r, ref.Address, int16(int64(target)&ranges.LLIMask))

		case Fill:
			r.words[ref.Address] = uint16(target)
		}
	}
	return nil
}

func patchImm(r *pass1Result, addr uint32, imm int16) {
	inst := isa.Decode(r.words[addr])
	inst.Imm = imm
	r.words[addr] = isa.Encode(inst)
}
