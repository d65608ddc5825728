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

import (
	"github.com/pdxjjb/risc16/internal/isa"
	"github.com/pdxjjb/risc16/internal/mem"
)

// execute dispatches inst against state and m, returning the successor
// state and an Observation, or a Fault if the instruction could not
// complete (an invalid effective address). The dispatch is an
// exhaustive switch over the closed opcode set rather than a registry
// of function values: there are exactly eight opcodes, they never
// change at runtime, and any opcode without a case falls through to
// the default Fault.
func execute(s ProcessorState, m *mem.Memory, inst isa.Instruction) (ProcessorState, Observation, error) {
	switch inst.Op {
	case isa.ADD:
		return execAdd(s, inst)
	case isa.ADDI:
		return execAddi(s, inst)
	case isa.NAND:
		return execNand(s, inst)
	case isa.LUI:
		return execLui(s, inst)
	case isa.SW:
		return execSw(s, m, inst)
	case isa.LW:
		return execLw(s, m, inst)
	case isa.BEQ:
		return execBeq(s, inst)
	case isa.JALR:
		return execJalr(s, inst)
	default:
		return s, Observation{}, newFault(InvalidPC, "undecodable opcode %v", inst.Op)
	}
}

func execAdd(s ProcessorState, inst isa.Instruction) (ProcessorState, Observation, error) {
	v := s.Register(int(inst.RegB)) + s.Register(int(inst.RegC))
	ns := s.withRegister(int(inst.RegA), v)
	ns.PC += 2
	ns.InstructionCount++
	return ns, Observation{HasDest: true, Dest: int(inst.RegA)}, nil
}

func execAddi(s ProcessorState, inst isa.Instruction) (ProcessorState, Observation, error) {
	v := s.Register(int(inst.RegB)) + inst.Imm
	ns := s.withRegister(int(inst.RegA), v)
	ns.PC += 2
	ns.InstructionCount++
	return ns, Observation{HasDest: true, Dest: int(inst.RegA)}, nil
}

func execNand(s ProcessorState, inst isa.Instruction) (ProcessorState, Observation, error) {
	v := ^(s.Register(int(inst.RegB)) & s.Register(int(inst.RegC)))
	ns := s.withRegister(int(inst.RegA), v)
	ns.PC += 2
	ns.InstructionCount++
	return ns, Observation{HasDest: true, Dest: int(inst.RegA)}, nil
}

func execLui(s ProcessorState, inst isa.Instruction) (ProcessorState, Observation, error) {
	v := inst.Imm << 6
	ns := s.withRegister(int(inst.RegA), v)
	ns.PC += 2
	ns.InstructionCount++
	return ns, Observation{HasDest: true, Dest: int(inst.RegA)}, nil
}

func execSw(s ProcessorState, m *mem.Memory, inst isa.Instruction) (ProcessorState, Observation, error) {
	addr := effectiveAddress(s, inst)
	if err := m.WriteWord(int(addr), uint16(s.Register(int(inst.RegA)))); err != nil {
		return s, Observation{}, newFault(InvalidAddress, "sw: %s", err)
	}
	ns := s
	ns.PC += 2
	ns.InstructionCount++
	return ns, Observation{HasMem: true, Addr: addr}, nil
}

func execLw(s ProcessorState, m *mem.Memory, inst isa.Instruction) (ProcessorState, Observation, error) {
	addr := effectiveAddress(s, inst)
	word, err := m.ReadWord(int(addr))
	if err != nil {
		return s, Observation{}, newFault(InvalidAddress, "lw: %s", err)
	}
	ns := s.withRegister(int(inst.RegA), int16(word))
	ns.PC += 2
	ns.InstructionCount++
	return ns, Observation{HasDest: true, Dest: int(inst.RegA), HasMem: true, Addr: addr}, nil
}

func execBeq(s ProcessorState, inst isa.Instruction) (ProcessorState, Observation, error) {
	taken := s.Register(int(inst.RegA)) == s.Register(int(inst.RegB))
	ns := s
	next := s.PC + 2
	if taken {
		next = uint16(int32(s.PC) + 2 + int32(inst.Imm))
	}
	ns.PC = next
	ns.InstructionCount++
	return ns, Observation{HasBranch: true, Taken: taken, Target: next}, nil
}

func execJalr(s ProcessorState, inst isa.Instruction) (ProcessorState, Observation, error) {
	// Halt detection inspects the encoded operands, not the runtime
	// register values: jalr r0, r0 halts even though the write to R0
	// is dropped, which is how the halt pseudo-instruction works.
	halts := inst.RegA == 0 && inst.RegB == 0

	ns := s.withRegister(int(inst.RegA), int16(s.PC+2))
	target := uint16(s.Register(int(inst.RegB)))
	ns.PC = target
	ns.InstructionCount++
	ns.Halted = halts
	return ns, Observation{HasDest: true, Dest: int(inst.RegA), HasBranch: true, Target: target}, nil
}

func effectiveAddress(s ProcessorState, inst isa.Instruction) uint16 {
	return uint16(s.Register(int(inst.RegB))) + uint16(inst.Imm)
}
