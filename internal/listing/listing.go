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

// Package listing renders an assembled program as either a raw binary
// byte stream or a human-readable listing. It is the minimal
// core-side support a standalone viewer tool needs; it does not
// implement a viewer itself.
package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdxjjb/risc16/internal/asm"
	"github.com/pdxjjb/risc16/internal/disasm"
	"github.com/pdxjjb/risc16/internal/isa"
)

// ReadBinary decodes raw bytes into words, high byte first, the
// inverse of WriteBinary. An odd-length input is an error: every
// RiSC-16 word is 2 bytes.
func ReadBinary(data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("binary length %d is not a multiple of 2", len(data))
	}
	words := make([]uint16, len(data)/2)
	for i := range words {
		words[i] = isa.DecodeBytes([2]byte{data[i*2], data[i*2+1]})
	}
	return words, nil
}

// WriteBinary writes the program's words to w as big-endian bytes, the
// same layout Memory.LoadWords expects back.
func WriteBinary(w io.Writer, words []uint16) error {
	buf := make([]byte, 0, len(words)*2)
	for _, word := range words {
		b := isa.EncodeBytes(word)
		buf = append(buf, b[0], b[1])
	}
	_, err := w.Write(buf)
	return err
}

// WriteListing writes one line per word to w: address, hex word,
// disassembled mnemonic, and the label bound there, if any.
func WriteListing(w io.Writer, res *asm.Result) error {
	lines := disasm.Program(res.Words, res.Metadata)
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%04X: %04X  %s\n", l.Address, l.Word, l.Text)
	}
	_, err := w.Write([]byte(b.String()))
	return err
}
