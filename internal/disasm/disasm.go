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

// Package disasm renders RiSC-16 words back into assembly text. Unlike
// the assembler, it is best-effort: an address with no metadata is
// decoded optimistically as an instruction and falls back to raw data
// only if the bit pattern isn't a valid encoding.
package disasm

import (
	"fmt"

	"github.com/pdxjjb/risc16/internal/isa"
	"github.com/pdxjjb/risc16/internal/meta"
)

// Line is one disassembled line of output: the address, the raw word,
// the rendered text, and a non-fatal warning when the word wasn't a
// clean instruction encoding.
type Line struct {
	Address uint32
	Word    uint16
	Text    string
	Warning string
}

// One decodes a single word at addr. tag, if ok is true, overrides the
// optimistic instruction-first guess with the metadata recorded by the
// assembler; label, if present, is appended as a comment.
func One(addr uint32, word uint16, tag meta.Tag, tagOK bool, label string, labelOK bool) Line {
	line := Line{Address: addr, Word: word}

	if tagOK && tag == meta.Data {
		line.Text = fmt.Sprintf(".fill 0x%04X", word)
	} else {
		line.Text, line.Warning = decodeInstruction(word)
	}

	if labelOK {
		line.Text = fmt.Sprintf("%-28s # %s:", line.Text, label)
	}
	return line
}

func decodeInstruction(word uint16) (string, string) {
	if !isa.IsValidInstruction(word) {
		return fmt.Sprintf(".word 0x%04X", word), "not a valid instruction encoding"
	}
	inst := isa.Decode(word)
	mnemonic := inst.Op.String()

	switch isa.Format(inst.Op) {
	case isa.RRR:
		return fmt.Sprintf("%s r%d, r%d, r%d", mnemonic, inst.RegA, inst.RegB, inst.RegC), ""
	case isa.RRI:
		if inst.Op == isa.JALR {
			return fmt.Sprintf("%s r%d, r%d", mnemonic, inst.RegA, inst.RegB), ""
		}
		return fmt.Sprintf("%s r%d, r%d, %d", mnemonic, inst.RegA, inst.RegB, inst.Imm), ""
	case isa.RI:
		return fmt.Sprintf("%s r%d, %d", mnemonic, inst.RegA, inst.Imm), ""
	default:
		return fmt.Sprintf(".word 0x%04X", word), "unrecognized format"
	}
}

// Program disassembles an entire word image, consulting md for tags
// and labels at each address if md is non-nil.
func Program(words []uint16, md *meta.Metadata) []Line {
	lines := make([]Line, len(words))
	for i, w := range words {
		addr := uint32(i) * 2
		var tag meta.Tag
		var tagOK bool
		var label string
		var labelOK bool
		if md != nil {
			tag, tagOK = md.Tag(addr)
			label, labelOK = md.LabelAt(addr)
		}
		lines[i] = One(addr, w, tag, tagOK, label, labelOK)
	}
	return lines
}
