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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdxjjb/risc16/internal/roundtrip"
)

func main() {
	cmd := &cobra.Command{
		Use:          "risc16itf SOURCE",
		Short:        "Check that SOURCE survives assemble-disassemble-reassemble unchanged",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(args[0])
		},
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func check(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	mismatches, err := roundtrip.Check(string(data))
	if err != nil {
		return err
	}
	if len(mismatches) == 0 {
		fmt.Println("round trip ok")
		return nil
	}

	for _, m := range mismatches {
		fmt.Fprintf(os.Stderr, "0x%04X: original=0x%04X reassembled=0x%04X\n", m.Address, m.Original, m.Reassembled)
	}
	return fmt.Errorf("%d word(s) failed to round-trip", len(mismatches))
}
