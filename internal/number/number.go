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

// Package number parses the textual literals accepted by the RiSC-16
// assembler: decimal (optionally signed), hexadecimal (0x/0X prefix)
// and octal (leading 0 followed by octal digits). A lone "0" is
// decimal zero, never octal.
package number

import "strconv"

// Parse returns the integer value of s and true if s is a number in
// one of the three accepted bases. It returns false, not an error,
// when s is not a number at all (e.g. a label) so callers can fall
// back to symbol resolution without a separate "is this numeric"
// pre-check.
func Parse(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}

	neg := false
	rest := s
	if rest[0] == '-' {
		neg = true
		rest = rest[1:]
	}
	if rest == "" {
		return 0, false
	}

	var v int64
	var err error
	switch {
	case len(rest) > 2 && (rest[0:2] == "0x" || rest[0:2] == "0X"):
		v, err = strconv.ParseInt(rest[2:], 16, 64)
	case len(rest) > 1 && rest[0] == '0':
		v, err = strconv.ParseInt(rest[1:], 8, 64)
	default:
		v, err = strconv.ParseInt(rest, 10, 64)
	}
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// IsNumber reports whether s parses as a number under Parse.
func IsNumber(s string) bool {
	_, ok := Parse(s)
	return ok
}
