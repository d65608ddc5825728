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

package trace

import "github.com/pdxjjb/risc16/internal/cpu"

// Step calls e.Step and, if it succeeds, appends the result to r. It
// exists only for the run command's --trace flag; ExecutionEngine.Step
// itself never calls into this package.
func Step(e *cpu.ExecutionEngine, r *Recorder, s cpu.ProcessorState) (cpu.ProcessorState, error) {
	word, err := e.Memory.ReadWord(int(s.PC))
	if err != nil {
		return s, err
	}
	ns, obs, err := e.Step(s)
	if err != nil {
		return ns, err
	}
	r.Record(s.PC, word, obs, ns.PC)
	return ns, nil
}
