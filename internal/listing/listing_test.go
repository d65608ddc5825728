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

package listing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdxjjb/risc16/internal/asm"
)

func TestWriteBinary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, []uint16{0x0503, 0x6464}); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	want := []byte{0x05, 0x03, 0x64, 0x64}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestReadBinaryRoundTrip(t *testing.T) {
	words := []uint16{0x0503, 0x6464, 0x257F}
	var buf bytes.Buffer
	if err := WriteBinary(&buf, words); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	got, err := ReadBinary(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if len(got) != len(words) {
		t.Fatalf("got %d words, want %d", len(got), len(words))
	}
	for i, w := range words {
		if got[i] != w {
			t.Errorf("word[%d] = 0x%04X, want 0x%04X", i, got[i], w)
		}
	}
}

func TestReadBinaryOddLength(t *testing.T) {
	_, err := ReadBinary([]byte{0x01})
	if err == nil {
		t.Fatal("expected error for odd-length input")
	}
}

func TestWriteListing(t *testing.T) {
	res, err := asm.Assemble("start: add r1, r2, r3\n")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteListing(&buf, res); err != nil {
		t.Fatalf("WriteListing: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "0000: 0503") {
		t.Errorf("listing = %q, missing address/word", out)
	}
	if !strings.Contains(out, "add r1, r2, r3") {
		t.Errorf("listing = %q, missing mnemonic", out)
	}
	if !strings.Contains(out, "start:") {
		t.Errorf("listing = %q, missing label", out)
	}
}
