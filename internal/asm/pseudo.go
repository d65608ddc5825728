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
	"strconv"

	"github.com/pdxjjb/risc16/internal/number"
	"github.com/pdxjjb/risc16/internal/ranges"
)

// SentinelKind marks an expanded operand that stands for one half of a
// label address rather than a literal value. The pseudo-instruction
// expander produces these in place of the magic strings
// "__MOVI_UPPER__"/"__MOVI_LOWER__" a text-based expansion would need;
// the pass-1 parser switches on Sentinel instead of pattern-matching
// operand text.
type SentinelKind int

const (
	NoSentinel SentinelKind = iota
	MovUpperSentinel
	MovLowerSentinel
)

// Operand is one expanded, per-instruction operand: either ordinary
// operand text (a register, a number, or a label) or a sentinel
// referring to one half of a not-yet-resolved label address.
type Operand struct {
	Text     string
	Sentinel SentinelKind
	Label    string // set when Sentinel != NoSentinel
}

// ExpandedToken is one real-instruction-or-directive line after
// pseudo-instruction expansion. Several ExpandedTokens can come from a
// single source Token (movi expands to two); Line/Source point back at
// the originating line for diagnostics.
type ExpandedToken struct {
	Line      int
	Label     string // only the first ExpandedToken from a Token keeps the label
	Operation string
	Operands  []Operand
	Source    string
}

// Expand rewrites the pseudo-instructions (nop, halt, lli, movi) in
// tokens into their real-instruction equivalents, and wraps every
// other token's operand strings into Operands unchanged. A label on a
// pseudo-instruction attaches only to the first instruction it expands
// to, so a branch to that label always lands on the same address the
// original mnemonic occupied.
func Expand(tokens []Token) ([]ExpandedToken, error) {
	var out []ExpandedToken
	for _, tok := range tokens {
		expanded, err := expandOne(tok)
		if err != nil {
			return out, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

func expandOne(tok Token) ([]ExpandedToken, error) {
	switch tok.Operation {
	case "nop":
		return expandNop(tok)
	case "halt":
		return expandHalt(tok)
	case "lli":
		return expandLli(tok)
	case "movi":
		return expandMovi(tok)
	case ".fill", ".space":
		return []ExpandedToken{passThrough(tok)}, nil
	default:
		return []ExpandedToken{passThrough(tok)}, nil
	}
}

func passThrough(tok Token) ExpandedToken {
	ops := make([]Operand, len(tok.Operands))
	for i, o := range tok.Operands {
		ops[i] = Operand{Text: o}
	}
	return ExpandedToken{
		Line:      tok.Line,
		Label:     tok.Label,
		Operation: tok.Operation,
		Operands:  ops,
		Source:    tok.Source,
	}
}

// expandNop rewrites "nop" into "add r0, r0, r0": adding zero to zero
// and storing it in r0 changes nothing.
func expandNop(tok Token) ([]ExpandedToken, error) {
	if len(tok.Operands) != 0 {
		return nil, newError(SyntaxError, tok.Line, tok.Source,
			"nop takes no operands")
	}
	return []ExpandedToken{{
		Line:      tok.Line,
		Label:     tok.Label,
		Operation: "add",
		Operands: []Operand{
			{Text: "r0"}, {Text: "r0"}, {Text: "r0"},
		},
		Source: tok.Source,
	}}, nil
}

// expandHalt rewrites "halt" into "jalr r0, r0", the encoding the
// execution engine recognises as a halt.
func expandHalt(tok Token) ([]ExpandedToken, error) {
	if len(tok.Operands) != 0 {
		return nil, newError(SyntaxError, tok.Line, tok.Source,
			"halt takes no operands")
	}
	return []ExpandedToken{{
		Line:      tok.Line,
		Label:     tok.Label,
		Operation: "jalr",
		Operands: []Operand{
			{Text: "r0"}, {Text: "r0"},
		},
		Source: tok.Source,
	}}, nil
}

// expandLli rewrites "lli rA, imm" into "addi rA, rA, (imm & 0x3F)",
// adding the low six bits of imm to rA. After a lui, whose low six
// bits are zero, this sets exactly those bits.
func expandLli(tok Token) ([]ExpandedToken, error) {
	if len(tok.Operands) != 2 {
		return nil, newError(SyntaxError, tok.Line, tok.Source,
			"lli requires 2 operands, got %d", len(tok.Operands))
	}
	reg := tok.Operands[0]
	if !isRegister(reg) {
		return nil, newError(InvalidRegister, tok.Line, tok.Source,
			"%q is not a register", reg)
	}
	immText := tok.Operands[1]
	imm, ok := number.Parse(immText)
	if !ok {
		return nil, newError(InvalidImmediate, tok.Line, tok.Source,
			"lli immediate %q must be numeric", immText)
	}
	low := imm & ranges.LLIMask
	return []ExpandedToken{{
		Line:      tok.Line,
		Label:     tok.Label,
		Operation: "addi",
		Operands: []Operand{
			{Text: reg}, {Text: reg}, {Text: decimalText(low)},
		},
		Source: tok.Source,
	}}, nil
}

// expandMovi rewrites "movi rA, value" into a lui/addi pair that loads
// all 16 bits of value into rA. value may be a numeric literal in
// [0, 65535] or a label; in the label case the two instructions carry
// MovUpperSentinel/MovLowerSentinel operands that pass-2 resolves once
// the label's address is known.
func expandMovi(tok Token) ([]ExpandedToken, error) {
	if len(tok.Operands) != 2 {
		return nil, newError(SyntaxError, tok.Line, tok.Source,
			"movi requires 2 operands, got %d", len(tok.Operands))
	}
	reg := tok.Operands[0]
	if !isRegister(reg) {
		return nil, newError(InvalidRegister, tok.Line, tok.Source,
			"%q is not a register", reg)
	}
	valueText := tok.Operands[1]

	if number.IsNumber(valueText) {
		value, _ := number.Parse(valueText)
		if !ranges.InMOVIRange(value) {
			return nil, newError(InvalidImmediate, tok.Line, tok.Source,
				"movi immediate %d out of range [0, 65535]", value)
		}
		upper := value >> ranges.LUIShift
		lower := value & ranges.LLIMask
		return []ExpandedToken{
			{
				Line:      tok.Line,
				Label:     tok.Label,
				Operation: "lui",
				Operands:  []Operand{{Text: reg}, {Text: decimalText(upper)}},
				Source:    tok.Source,
			},
			{
				Line:      tok.Line,
				Operation: "addi",
				Operands:  []Operand{{Text: reg}, {Text: reg}, {Text: decimalText(lower)}},
				Source:    tok.Source,
			},
		}, nil
	}

	if !labelCharset.MatchString(valueText) {
		return nil, newError(InvalidOperand, tok.Line, tok.Source,
			"movi operand %q is neither a number nor a label", valueText)
	}
	return []ExpandedToken{
		{
			Line:      tok.Line,
			Label:     tok.Label,
			Operation: "lui",
			Operands: []Operand{
				{Text: reg},
				{Sentinel: MovUpperSentinel, Label: valueText},
			},
			Source: tok.Source,
		},
		{
			Line:      tok.Line,
			Operation: "addi",
			Operands: []Operand{
				{Text: reg}, {Text: reg},
				{Sentinel: MovLowerSentinel, Label: valueText},
			},
			Source: tok.Source,
		},
	}, nil
}

func decimalText(v int64) string {
	return strconv.FormatInt(v, 10)
}
