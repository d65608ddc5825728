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

// Package asm implements the two-pass RiSC-16 assembler: tokenizing,
// pseudo-instruction expansion, symbol collection and instruction
// emission, and label-reference resolution, in that order.
package asm

import "github.com/pdxjjb/risc16/internal/meta"

// Result bundles everything a caller of Assemble needs: the resolved
// word image and symbol table from AssembledProgram, plus the
// per-address tag and label metadata a listing or disassembler reads.
type Result struct {
	*AssembledProgram
	Metadata *meta.Metadata
}

// Assemble runs the full pipeline over source text: Tokenize, Expand,
// then pass 1 (symbol collection and emission) and pass 2 (label
// resolution). It returns on the first error encountered, the same
// fail-fast discipline each stage already follows.
func Assemble(source string) (*Result, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}

	expanded, err := Expand(tokens)
	if err != nil {
		return nil, err
	}

	p1, err := runPass1(expanded)
	if err != nil {
		return nil, err
	}

	if err := runPass2(p1); err != nil {
		return nil, err
	}

	return &Result{
		AssembledProgram: &AssembledProgram{
			Words:   p1.words,
			Symbols: p1.symbols,
		},
		Metadata: p1.md,
	}, nil
}
