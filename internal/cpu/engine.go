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

// DefaultStepLimit bounds Run when the caller doesn't supply one.
const DefaultStepLimit = 65535

// ExecutionEngine owns exactly one Memory for the lifetime of a run.
// It is stateless between steps: the caller threads ProcessorState
// through Step (or lets Run do it), so an engine can be reused across
// independent programs by simply calling Reset-derived states against
// the same Memory.
type ExecutionEngine struct {
	Memory *mem.Memory
}

// New returns an ExecutionEngine over m.
func New(m *mem.Memory) *ExecutionEngine {
	return &ExecutionEngine{Memory: m}
}

// Step advances state by exactly one instruction: fetch, decode,
// dispatch, return. It is a Fault to step a halted state, or to step
// with a PC that is odd or outside the memory's bounds.
func (e *ExecutionEngine) Step(s ProcessorState) (ProcessorState, Observation, error) {
	if s.Halted {
		return s, Observation{}, newFault(AlreadyHalted, "cannot step a halted processor")
	}
	if int(s.PC)+1 >= e.Memory.Size() || s.PC%2 != 0 {
		return s, Observation{}, newFault(InvalidPC, "pc 0x%04X is odd or out of range", s.PC)
	}

	word, err := e.Memory.ReadWord(int(s.PC))
	if err != nil {
		return s, Observation{}, newFault(InvalidPC, "%s", err)
	}
	inst := isa.Decode(word)
	inst.Address = uint32(s.PC)

	return execute(s, e.Memory, inst)
}

// RunResult is what Run hands back: the last ProcessorState reached,
// the Observations for every step actually executed, and the number of
// steps taken.
type RunResult struct {
	State        ProcessorState
	Observations []Observation
	Steps        int
}

// Run repeatedly calls Step until the state halts or limit steps have
// run, whichever comes first. Reaching the limit without halting is a
// Fault; the caller may still inspect RunResult for the last state
// reached before the fault, and the Observations collected so far.
func (e *ExecutionEngine) Run(s ProcessorState, limit int) (RunResult, error) {
	if limit <= 0 {
		limit = DefaultStepLimit
	}
	result := RunResult{State: s}
	for result.Steps < limit {
		if result.State.Halted {
			return result, nil
		}
		ns, obs, err := e.Step(result.State)
		if err != nil {
			return result, err
		}
		result.State = ns
		result.Observations = append(result.Observations, obs)
		result.Steps++
	}
	if result.State.Halted {
		return result, nil
	}
	return result, newFault(StepLimitReached, "exceeded %d steps without halting", limit)
}
