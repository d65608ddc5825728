/*
Copyright © 2024 Jeff Berkowitz (pdxjjb@gmail.com)

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

package roundtrip

import "testing"

func TestCheckSimpleProgram(t *testing.T) {
	src := "add r1, r2, r3\nlui r1, 100\naddi r1, r2, -1\nhalt\n"
	mismatches, err := Check(src)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(mismatches) != 0 {
		t.Errorf("mismatches = %+v, want none", mismatches)
	}
}

func TestCheckBranchesAndLabels(t *testing.T) {
	src := "loop: add r1, r1, r1\nbeq r0, r0, loop\nlw r2, r1, loop\nsw r2, r1, loop\nhalt\n"
	mismatches, err := Check(src)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(mismatches) != 0 {
		t.Errorf("mismatches = %+v, want none", mismatches)
	}
}

func TestCheckMoviAndFill(t *testing.T) {
	src := "movi r1, target\nhalt\ntarget: .fill 42\n"
	mismatches, err := Check(src)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(mismatches) != 0 {
		t.Errorf("mismatches = %+v, want none", mismatches)
	}
}

func TestCheckNopAndSpace(t *testing.T) {
	src := "nop\n.space 2\nhalt\n"
	mismatches, err := Check(src)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(mismatches) != 0 {
		t.Errorf("mismatches = %+v, want none", mismatches)
	}
}
