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

import "fmt"

// FaultReason distinguishes the circumstances under which a Fault was
// raised; every value renders as EXECUTION_FAULT in the error
// taxonomy, with the reason carried in the message.
type FaultReason struct{ r int }

var (
	AlreadyHalted    = FaultReason{0}
	InvalidPC        = FaultReason{1}
	InvalidAddress   = FaultReason{2}
	StepLimitReached = FaultReason{3}
)

func (r FaultReason) String() string {
	switch r {
	case AlreadyHalted:
		return "already halted"
	case InvalidPC:
		return "invalid program counter"
	case InvalidAddress:
		return "invalid memory address"
	case StepLimitReached:
		return "step limit reached"
	default:
		return "unknown"
	}
}

// Fault is the single error type the engine raises.
type Fault struct {
	Reason  FaultReason
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("EXECUTION_FAULT: %s: %s", f.Reason, f.Message)
}

func newFault(reason FaultReason, format string, args ...any) *Fault {
	return &Fault{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
