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

// Package symtab implements the assembler's label -> address mapping.
// Keys are unique and case-sensitive; entries are kept in insertion
// order so a symbol dump is deterministic.
package symtab

import "fmt"

// Entry is one symbol table row.
type Entry struct {
	Name    string
	Address uint32
	Line    int
}

// Table is a label -> address map, insertion-ordered for deterministic
// iteration.
type Table struct {
	index map[string]int // name -> position in order
	order []Entry
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Define binds name to address at the given source line. It fails if
// name is already defined; the table never contains two entries with
// the same key.
func (t *Table) Define(name string, address uint32, line int) error {
	if _, exists := t.index[name]; exists {
		return fmt.Errorf("%s redefined", name)
	}
	t.index[name] = len(t.order)
	t.order = append(t.order, Entry{Name: name, Address: address, Line: line})
	return nil
}

// Lookup returns the address bound to name.
func (t *Table) Lookup(name string) (uint32, bool) {
	i, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.order[i].Address, true
}

// Has reports whether name is defined.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// DefinedAt returns the source line name was first defined at.
func (t *Table) DefinedAt(name string) (int, bool) {
	i, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.order[i].Line, true
}

// Entries returns all entries in insertion order. The returned slice
// is a copy; callers may not mutate the table through it.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of defined symbols.
func (t *Table) Len() int {
	return len(t.order)
}
