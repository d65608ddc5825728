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

package cpu

// Observation records the side effects of a single executed
// instruction, beyond the resulting ProcessorState: which register (if
// any) changed, which memory address (if any) was touched, and the
// branch decision (if any) that was made. Fields not meaningful for a
// given opcode are left at their zero value alongside the matching
// Has* flag left false.
type Observation struct {
	HasDest bool
	Dest    int // register index written

	HasMem bool
	Addr   uint16 // effective memory address read or written

	HasBranch bool
	Taken     bool
	Target    uint16 // resulting PC
}
