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
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdxjjb/risc16/internal/asm"
	"github.com/pdxjjb/risc16/internal/listing"
	"github.com/pdxjjb/risc16/internal/logging"
)

func main() {
	var debug bool
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "risc16as [flags] SOURCE",
		Short: "Assemble a RiSC-16 source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(debug)
			return assemble(log, args[0], format, out)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&format, "format", "bin", "output format: bin or listing")
	cmd.Flags().StringVar(&out, "out", "", "output path (default: stdout for listing, a.out for bin)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func assemble(log *slog.Logger, source, format, out string) error {
	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}
	log.Debug("assembling", "source", source, "bytes", len(data))

	res, err := asm.Assemble(string(data))
	if err != nil {
		if aerr, ok := err.(*asm.Error); ok {
			fmt.Fprintln(os.Stderr, aerr.Format())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return errQuiet{}
	}

	log.Debug("assembled", "words", len(res.Words), "symbols", res.Symbols.Len())

	switch format {
	case "bin":
		return writeBinary(res, out)
	case "listing":
		return writeListing(res, out)
	default:
		return fmt.Errorf("unknown format %q (want bin or listing)", format)
	}
}

func writeBinary(res *asm.Result, out string) error {
	if out == "" {
		out = "a.out"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	return listing.WriteBinary(f, res.Words)
}

func writeListing(res *asm.Result, out string) error {
	if out == "" {
		return listing.WriteListing(os.Stdout, res)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	return listing.WriteListing(f, res)
}

// errQuiet signals main to exit nonzero without cobra re-printing the
// diagnostic that was already written to stderr.
type errQuiet struct{}

func (errQuiet) Error() string { return "" }
