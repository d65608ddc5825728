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

import "fmt"

// ErrorKind is the stable assembly error taxonomy, modeled as a
// struct-wrapped int rather than a bare int or a string, so a stray
// literal can't be assigned where an ErrorKind is expected.
type ErrorKind struct{ k int }

var (
	SyntaxError      = ErrorKind{0}
	InvalidOpcode    = ErrorKind{1}
	InvalidOperand   = ErrorKind{2}
	InvalidRegister  = ErrorKind{3}
	InvalidImmediate = ErrorKind{4}
	UndefinedLabel   = ErrorKind{5}
	DuplicateLabel   = ErrorKind{6}
	LabelSyntaxError = ErrorKind{7}
	OutOfRange       = ErrorKind{8}
	InvalidDirective = ErrorKind{9}
	MemoryOverflow   = ErrorKind{10}
	EmptyProgram     = ErrorKind{11}
)

var kindNames = map[ErrorKind]string{
	SyntaxError:      "SYNTAX_ERROR",
	InvalidOpcode:    "INVALID_OPCODE",
	InvalidOperand:   "INVALID_OPERAND",
	InvalidRegister:  "INVALID_REGISTER",
	InvalidImmediate: "INVALID_IMMEDIATE",
	UndefinedLabel:   "UNDEFINED_LABEL",
	DuplicateLabel:   "DUPLICATE_LABEL",
	LabelSyntaxError: "LABEL_SYNTAX_ERROR",
	OutOfRange:       "OUT_OF_RANGE",
	InvalidDirective: "INVALID_DIRECTIVE",
	MemoryOverflow:   "MEMORY_OVERFLOW",
	EmptyProgram:     "EMPTY_PROGRAM",
}

func (k ErrorKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "UNKNOWN_ERROR"
}

// Error is a single assembly diagnostic, constructed the same way by
// the tokenizer, expander, parser and resolver. Assembly stops at the
// first one, so a failed Assemble call returns exactly one Error.
type Error struct {
	Kind    ErrorKind
	Line    int    // 1-based source line
	Column  int    // 0 if unknown
	Message string
	Source  string // the offending source line, verbatim
}

func (e *Error) Error() string {
	return e.Format()
}

// Format renders the multi-line presentation: line number, source
// text, and (when the column is known) a caret under the offending
// column.
func (e *Error) Format() string {
	s := fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
	if e.Source != "" {
		s += fmt.Sprintf("\n  %s", e.Source)
		if e.Column > 0 {
			s += fmt.Sprintf("\n  %s^", spaces(e.Column-1))
		}
	}
	return s
}

// Compact renders a single-line presentation suitable for a status bar
// or a summary listing.
func (e *Error) Compact() string {
	return fmt.Sprintf("%d: %s: %s", e.Line, e.Kind, e.Message)
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func newError(kind ErrorKind, line int, source, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
		Source:  source,
	}
}
