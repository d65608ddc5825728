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

	"github.com/pdxjjb/risc16/internal/disasm"
	"github.com/pdxjjb/risc16/internal/listing"
)

func main() {
	cmd := &cobra.Command{
		Use:          "risc16dis BINARY",
		Short:        "Disassemble a raw RiSC-16 binary",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return disassemble(args[0])
		},
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func disassemble(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	words, err := listing.ReadBinary(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for _, line := range disasm.Program(words, nil) {
		if line.Warning != "" {
			fmt.Printf("%04X: %04X  %s  ; %s\n", line.Address, line.Word, line.Text, line.Warning)
		} else {
			fmt.Printf("%04X: %04X  %s\n", line.Address, line.Word, line.Text)
		}
	}
	return nil
}
