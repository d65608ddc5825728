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

func expandSingle(t *testing.T, src string) []ExpandedToken {
	t.Helper()
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	out, err := Expand(toks)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	return out
}

func TestExpandNop(t *testing.T) {
	out := expandSingle(t, "nop\n")
	if len(out) != 1 {
		t.Fatalf("got %d expanded tokens, want 1", len(out))
	}
	if out[0].Operation != "add" {
		t.Errorf("operation = %q, want add", out[0].Operation)
	}
	for _, op := range out[0].Operands {
		if op.Text != "r0" {
			t.Errorf("operand = %+v, want r0", op)
		}
	}
}

func TestExpandHalt(t *testing.T) {
	out := expandSingle(t, "done: halt\n")
	if len(out) != 1 {
		t.Fatalf("got %d expanded tokens, want 1", len(out))
	}
	if out[0].Operation != "jalr" {
		t.Errorf("operation = %q, want jalr", out[0].Operation)
	}
	if out[0].Label != "done" {
		t.Errorf("label = %q, want done", out[0].Label)
	}
	if len(out[0].Operands) != 2 {
		t.Errorf("operands = %+v, want 2", out[0].Operands)
	}
}

func TestExpandLli(t *testing.T) {
	out := expandSingle(t, "lli r3, 10\n")
	if len(out) != 1 {
		t.Fatalf("got %d expanded tokens, want 1", len(out))
	}
	if out[0].Operation != "addi" {
		t.Errorf("operation = %q, want addi", out[0].Operation)
	}
	if out[0].Operands[2].Text != "10" {
		t.Errorf("immediate = %q, want 10", out[0].Operands[2].Text)
	}
}

func TestExpandLliMasksHighBits(t *testing.T) {
	out := expandSingle(t, "lli r3, 100\n")
	if out[0].Operands[2].Text != "36" { // 100 & 0x3F == 36
		t.Errorf("immediate = %q, want 36", out[0].Operands[2].Text)
	}
}

func TestExpandMoviNumeric(t *testing.T) {
	out := expandSingle(t, "movi r1, 1000\n")
	if len(out) != 2 {
		t.Fatalf("got %d expanded tokens, want 2", len(out))
	}
	if out[0].Operation != "lui" || out[1].Operation != "addi" {
		t.Fatalf("operations = %q, %q", out[0].Operation, out[1].Operation)
	}
	// 1000 = 0b1111101000 -> upper (1000 >> 6) = 0b1111 = 15, lower 6 = 0b101000 = 40
	if out[0].Operands[1].Text != "15" {
		t.Errorf("upper = %q, want 15", out[0].Operands[1].Text)
	}
	if out[1].Operands[2].Text != "40" {
		t.Errorf("lower = %q, want 40", out[1].Operands[2].Text)
	}
}

func TestExpandMoviLabel(t *testing.T) {
	out := expandSingle(t, "movi r1, target\n")
	if len(out) != 2 {
		t.Fatalf("got %d expanded tokens, want 2", len(out))
	}
	if out[0].Operands[1].Sentinel != MovUpperSentinel || out[0].Operands[1].Label != "target" {
		t.Errorf("upper operand = %+v", out[0].Operands[1])
	}
	if out[1].Operands[2].Sentinel != MovLowerSentinel || out[1].Operands[2].Label != "target" {
		t.Errorf("lower operand = %+v", out[1].Operands[2])
	}
}

func TestExpandMoviOutOfRange(t *testing.T) {
	_, err := Expand(mustTokenize(t, "movi r1, 70000\n"))
	if err == nil {
		t.Fatal("expected out of range error")
	}
	if aerr, ok := err.(*Error); !ok || aerr.Kind != InvalidImmediate {
		t.Errorf("error = %v, want InvalidImmediate", err)
	}
}

func TestExpandLabelOnlyOnFirstInstruction(t *testing.T) {
	out := expandSingle(t, "start: movi r1, 5\n")
	if out[0].Label != "start" {
		t.Errorf("first label = %q, want start", out[0].Label)
	}
	if out[1].Label != "" {
		t.Errorf("second label = %q, want empty", out[1].Label)
	}
}

func mustTokenize(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return toks
}
