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

import "testing"

func TestTokenizeBasic(t *testing.T) {
	src := "add r1, r2, r3\n"
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
	tok := toks[0]
	if tok.Operation != "add" {
		t.Errorf("operation = %q, want add", tok.Operation)
	}
	if len(tok.Operands) != 3 || tok.Operands[0] != "r1" || tok.Operands[1] != "r2" || tok.Operands[2] != "r3" {
		t.Errorf("operands = %v", tok.Operands)
	}
	if tok.Label != "" {
		t.Errorf("label = %q, want empty", tok.Label)
	}
	if tok.Line != 1 {
		t.Errorf("line = %d, want 1", tok.Line)
	}
}

func TestTokenizeCommentsAndBlankLines(t *testing.T) {
	src := "# a full line comment\n\nadd r1, r2, r3 # trailing comment\n   \n"
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
	if toks[0].Line != 3 {
		t.Errorf("line = %d, want 3", toks[0].Line)
	}
}

func TestTokenizeLabel(t *testing.T) {
	src := "loop: addi r1, r1, -1\n"
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Label != "loop" {
		t.Errorf("label = %q, want loop", toks[0].Label)
	}
	if toks[0].Operation != "addi" {
		t.Errorf("operation = %q, want addi", toks[0].Operation)
	}
}

func TestTokenizeLabelOnly(t *testing.T) {
	src := "loop:\n"
	_, err := Tokenize(src)
	if err == nil {
		t.Fatal("expected error for label with no statement")
	}
	aerr := err.(*Error)
	if aerr.Kind != LabelSyntaxError {
		t.Errorf("kind = %v, want LabelSyntaxError", aerr.Kind)
	}
}

func TestTokenizeBadLabelCharset(t *testing.T) {
	src := "lo op: nop\n"
	_, err := Tokenize(src)
	if err == nil {
		t.Fatal("expected error for label with embedded space")
	}
}

func TestTokenizeZeroOperandStatement(t *testing.T) {
	src := "nop\nhalt\n"
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if len(toks[0].Operands) != 0 {
		t.Errorf("operands = %v, want none", toks[0].Operands)
	}
}

func TestTokenizeOperandSplitOnCommasAndSpaces(t *testing.T) {
	src := "add r1,r2 ,  r3\n"
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"r1", "r2", "r3"}
	if len(toks[0].Operands) != len(want) {
		t.Fatalf("operands = %v, want %v", toks[0].Operands, want)
	}
	for i, w := range want {
		if toks[0].Operands[i] != w {
			t.Errorf("operand[%d] = %q, want %q", i, toks[0].Operands[i], w)
		}
	}
}

func TestTokenizeUppercaseOperationLowered(t *testing.T) {
	src := "ADD r1, r2, r3\n"
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Operation != "add" {
		t.Errorf("operation = %q, want add", toks[0].Operation)
	}
}

func TestTokenizeEmptySource(t *testing.T) {
	toks, err := Tokenize("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 0 {
		t.Errorf("got %d tokens, want 0", len(toks))
	}
}
