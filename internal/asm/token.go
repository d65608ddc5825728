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

// Token is one tokenised source line: an optional label, an operation
// mnemonic (already lower-cased), its ordered operand list, and the
// verbatim source text for diagnostics. Blank and comment-only lines
// never produce a Token.
type Token struct {
	Line      int
	Label     string
	Operation string
	Operands  []string
	Source    string
}
