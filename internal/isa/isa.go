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

// Package isa defines the RiSC-16 opcode set, instruction formats and
// the bit-exact 16-bit encoding/decoding between them. Opcode and
// FormatType are named struct-wrapped ints rather than bare ints, so a
// stray int literal can't be assigned where one is expected.
package isa

import "fmt"

// Opcode identifies one of the eight RiSC-16 instructions.
type Opcode struct{ code uint16 }

var (
	ADD  = Opcode{0}
	ADDI = Opcode{1}
	NAND = Opcode{2}
	LUI  = Opcode{3}
	SW   = Opcode{4}
	LW   = Opcode{5}
	BEQ  = Opcode{6}
	JALR = Opcode{7}
)

// Code returns the 3-bit binary opcode.
func (o Opcode) Code() uint16 { return o.code }

func (o Opcode) String() string {
	if n, ok := opcodeNames[o]; ok {
		return n
	}
	return fmt.Sprintf("Opcode(%d)", o.code)
}

var opcodeNames = map[Opcode]string{
	ADD: "add", ADDI: "addi", NAND: "nand", LUI: "lui",
	SW: "sw", LW: "lw", BEQ: "beq", JALR: "jalr",
}

var mnemonicToOpcode = map[string]Opcode{
	"add": ADD, "addi": ADDI, "nand": NAND, "lui": LUI,
	"sw": SW, "lw": LW, "beq": BEQ, "jalr": JALR,
}

// Lookup resolves a lower-cased mnemonic to its Opcode.
func Lookup(mnemonic string) (Opcode, bool) {
	op, ok := mnemonicToOpcode[mnemonic]
	return op, ok
}

// FormatType is one of the three RiSC-16 instruction encodings.
type FormatType struct{ f int }

var (
	RRR = FormatType{0}
	RRI = FormatType{1}
	RI  = FormatType{2}
)

func (f FormatType) String() string {
	switch f {
	case RRR:
		return "RRR"
	case RRI:
		return "RRI"
	case RI:
		return "RI"
	default:
		return "???"
	}
}

var opcodeFormat = map[Opcode]FormatType{
	ADD: RRR, NAND: RRR,
	ADDI: RRI, SW: RRI, LW: RRI, BEQ: RRI, JALR: RRI,
	LUI: RI,
}

// Format returns the instruction format for op.
func Format(op Opcode) FormatType {
	return opcodeFormat[op]
}

// Instruction is a fully resolved RiSC-16 instruction record: one of
// the three formats, carrying only the fields that format uses.
// Address is the word-aligned byte address the instruction occupies;
// it is informational and ignored by Decode's equality under the
// encode/decode round trip.
type Instruction struct {
	Op      Opcode
	RegA    uint16 // 0-7, always present
	RegB    uint16 // 0-7, absent (0) for RI format
	RegC    uint16 // 0-7, RRR only
	Imm     int16  // RRI (signed, [-64,63]) or RI (unsigned, [0,1023])
	Address uint32
}
