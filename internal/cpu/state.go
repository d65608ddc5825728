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

// Package cpu implements the RiSC-16 fetch/decode/dispatch loop: an
// immutable ProcessorState, one pure transition function per opcode,
// and an ExecutionEngine that threads state through Step and Run.
package cpu

// ProcessorState is an immutable snapshot of the machine: 8 general
// registers (R0 hardwired to 0), the program counter, the halted
// flag, and a monotonically increasing instruction count. Every
// executor in this package consumes a ProcessorState and Memory and
// returns a new ProcessorState rather than mutating one in place.
type ProcessorState struct {
	Registers        [8]int16
	PC               uint16
	Halted           bool
	InstructionCount uint64
}

// Reset returns the initial ProcessorState: all registers zero, PC at
// 0, not halted, zero instructions executed.
func Reset() ProcessorState {
	return ProcessorState{}
}

// Register returns the value of register i. Register 0 always reads 0.
func (s ProcessorState) Register(i int) int16 {
	if i == 0 {
		return 0
	}
	return s.Registers[i]
}

// withRegister returns a copy of s with register i set to v. Writes to
// register 0 are silently dropped.
func (s ProcessorState) withRegister(i int, v int16) ProcessorState {
	if i == 0 {
		return s
	}
	s.Registers[i] = v
	return s
}
