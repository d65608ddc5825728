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
	"github.com/pdxjjb/risc16/internal/meta"
	"github.com/pdxjjb/risc16/internal/number"
	"github.com/pdxjjb/risc16/internal/ranges"
	"github.com/pdxjjb/risc16/internal/symtab"
)

// pass1Result is what pass 1 hands to pass 2: the word image so far
// (with 0 placeholders where a label reference is still pending), the
// symbol table, the pending patches, and display metadata.
type pass1Result struct {
	words   []uint16
	symbols *symtab.Table
	pending []UnresolvedReference
	md      *meta.Metadata
}

// runPass1 walks the expanded token stream, assigning each instruction
// and data word the next sequential address, binding labels to the
// address of the first word they precede, and recording a patch for
// every operand that names a label instead of a literal.
func runPass1(tokens []ExpandedToken) (*pass1Result, error) {
	r := &pass1Result{
		symbols: symtab.New(),
		md:      meta.New(0),
	}

	for _, tok := range tokens {
		byteAddr := uint32(len(r.words)) * 2
		if tok.Label != "" {
			if firstLine, exists := r.symbols.DefinedAt(tok.Label); exists {
				return nil, newError(DuplicateLabel, firstLine, tok.Source,
					"label %q already defined at line %d", tok.Label, firstLine)
			}
			if err := r.symbols.Define(tok.Label, byteAddr, tok.Line); err != nil {
				return nil, newError(DuplicateLabel, tok.Line, tok.Source, "%s", err)
			}
			r.md.AddLabel(tok.Label, byteAddr)
		}

		switch tok.Operation {
		case ".fill":
			if err := assembleFill(r, tok); err != nil {
				return nil, err
			}
		case ".space":
			if err := assembleSpace(r, tok); err != nil {
				return nil, err
			}
		default:
			if err := assembleInstruction(r, tok); err != nil {
				return nil, err
			}
		}
	}

	if len(r.words) == 0 {
		return nil, newError(EmptyProgram, 0, "", "program contains no instructions or data")
	}

	return r, nil
}

func assembleFill(r *pass1Result, tok ExpandedToken) error {
	if len(tok.Operands) == 0 {
		return newError(SyntaxError, tok.Line, tok.Source, ".fill requires at least one operand")
	}
	for _, op := range tok.Operands {
		wordIdx := uint32(len(r.words))
		r.md.SetTag(wordIdx*2, meta.Data)
		if op.Sentinel != NoSentinel {
			r.pending = append(r.pending, UnresolvedReference{
				Address: wordIdx, Kind: Fill, Label: op.Label, Line: tok.Line, Source: tok.Source,
			})
			r.words = append(r.words, 0)
			continue
		}
		if number.IsNumber(op.Text) {
			v, _ := number.Parse(op.Text)
			r.words = append(r.words, uint16(v))
			continue
		}
		if !labelCharset.MatchString(op.Text) {
			return newError(InvalidOperand, tok.Line, tok.Source,
				".fill operand %q is neither a number nor a label", op.Text)
		}
		r.pending = append(r.pending, UnresolvedReference{
			Address: wordIdx, Kind: Fill, Label: op.Text, Line: tok.Line, Source: tok.Source,
		})
		r.words = append(r.words, 0)
	}
	return nil
}

func assembleSpace(r *pass1Result, tok ExpandedToken) error {
	if len(tok.Operands) != 1 {
		return newError(SyntaxError, tok.Line, tok.Source,
			".space requires exactly 1 operand, got %d", len(tok.Operands))
	}
	countText := tok.Operands[0].Text
	count, ok := number.Parse(countText)
	if !ok || count < 0 {
		return newError(InvalidOperand, tok.Line, tok.Source,
			".space operand %q must be a non-negative number", countText)
	}
	for i := int64(0); i < count; i++ {
		r.md.SetTag(uint32(len(r.words))*2, meta.Data)
		r.words = append(r.words, 0)
	}
	return nil
}

func assembleInstruction(r *pass1Result, tok ExpandedToken) error {
	op, ok := isa.Lookup(tok.Operation)
	if !ok {
		return newError(InvalidOpcode, tok.Line, tok.Source,
			"unrecognized mnemonic %q", tok.Operation)
	}

	wordIdx := uint32(len(r.words))
	r.md.SetTag(wordIdx*2, meta.Instruction)

	var inst isa.Instruction
	inst.Op = op

	if op == isa.JALR {
		if len(tok.Operands) != 2 {
			return newError(SyntaxError, tok.Line, tok.Source,
				"jalr requires 2 operands, got %d", len(tok.Operands))
		}
		ra, err := operandRegister(tok, 0)
		if err != nil {
			return err
		}
		rb, err := operandRegister(tok, 1)
		if err != nil {
			return err
		}
		inst.RegA, inst.RegB = ra, rb
		r.words = append(r.words, isa.Encode(inst))
		return nil
	}

	switch isa.Format(op) {
	case isa.RRR:
		if len(tok.Operands) != 3 {
			return newError(SyntaxError, tok.Line, tok.Source,
				"%s requires 3 operands, got %d", tok.Operation, len(tok.Operands))
		}
		ra, err := operandRegister(tok, 0)
		if err != nil {
			return err
		}
		rb, err := operandRegister(tok, 1)
		if err != nil {
			return err
		}
		rc, err := operandRegister(tok, 2)
		if err != nil {
			return err
		}
		inst.RegA, inst.RegB, inst.RegC = ra, rb, rc
		r.words = append(r.words, isa.Encode(inst))

	case isa.RRI:
		if len(tok.Operands) != 3 {
			return newError(SyntaxError, tok.Line, tok.Source,
				"%s requires 3 operands, got %d", tok.Operation, len(tok.Operands))
		}
		ra, err := operandRegister(tok, 0)
		if err != nil {
			return err
		}
		rb, err := operandRegister(tok, 1)
		if err != nil {
			return err
		}
		inst.RegA, inst.RegB = ra, rb

		immOp := tok.Operands[2]
		switch {
		case immOp.Sentinel == MovLowerSentinel:
			r.pending = append(r.pending, UnresolvedReference{
				Address: wordIdx, Kind: MoviLower, Label: immOp.Label, Line: tok.Line, Source: tok.Source,
			})
			r.words = append(r.words, isa.Encode(inst))
			return nil
		case number.IsNumber(immOp.Text):
			v, _ := number.Parse(immOp.Text)
			if !ranges.InRRIRange(int(v)) {
				return newError(OutOfRange, tok.Line, tok.Source,
					"immediate %d out of range [%d, %d]", v, ranges.RRIMin, ranges.RRIMax)
			}
			inst.Imm = int16(v)
			r.words = append(r.words, isa.Encode(inst))
			return nil
		case op == isa.BEQ && labelCharset.MatchString(immOp.Text):
			r.pending = append(r.pending, UnresolvedReference{
				Address: wordIdx, Kind: Branch, Label: immOp.Text, Line: tok.Line, Source: tok.Source,
			})
			r.words = append(r.words, isa.Encode(inst))
			return nil
		case (op == isa.LW || op == isa.SW) && labelCharset.MatchString(immOp.Text):
			r.pending = append(r.pending, UnresolvedReference{
				Address: wordIdx, Kind: LoadStore, Label: immOp.Text, Line: tok.Line, Source: tok.Source,
			})
			r.words = append(r.words, isa.Encode(inst))
			return nil
		default:
			return newError(InvalidImmediate, tok.Line, tok.Source,
				"%s immediate %q is not valid", tok.Operation, immOp.Text)
		}

	case isa.RI:
		if len(tok.Operands) != 2 {
			return newError(SyntaxError, tok.Line, tok.Source,
				"%s requires 2 operands, got %d", tok.Operation, len(tok.Operands))
		}
		ra, err := operandRegister(tok, 0)
		if err != nil {
			return err
		}
		inst.RegA = ra

		immOp := tok.Operands[1]
		switch {
		case immOp.Sentinel == MovUpperSentinel:
			r.pending = append(r.pending, UnresolvedReference{
				Address: wordIdx, Kind: MoviUpper, Label: immOp.Label, Line: tok.Line, Source: tok.Source,
			})
			r.words = append(r.words, isa.Encode(inst))
			return nil
		case number.IsNumber(immOp.Text):
			v, _ := number.Parse(immOp.Text)
			if !ranges.InRIRange(int(v)) {
				return newError(OutOfRange, tok.Line, tok.Source,
					"immediate %d out of range [%d, %d]", v, ranges.RIMin, ranges.RIMax)
			}
			inst.Imm = int16(v)
			r.words = append(r.words, isa.Encode(inst))
			return nil
		default:
			return newError(InvalidOperand, tok.Line, tok.Source,
				"%s does not accept a label operand %q", tok.Operation, immOp.Text)
		}
	}

	return nil
}

func operandRegister(tok ExpandedToken, i int) (uint16, error) {
	op := tok.Operands[i]
	reg, ok := parseRegister(op.Text)
	if !ok {
		return 0, newError(InvalidRegister, tok.Line, tok.Source,
			"%q is not a register", op.Text)
	}
	return reg, nil
}
