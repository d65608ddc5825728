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
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdxjjb/risc16/internal/asm"
	"github.com/pdxjjb/risc16/internal/cpu"
	"github.com/pdxjjb/risc16/internal/listing"
	"github.com/pdxjjb/risc16/internal/logging"
	"github.com/pdxjjb/risc16/internal/mem"
	"github.com/pdxjjb/risc16/internal/trace"
)

func main() {
	var debug bool
	var limit int
	var memSize int
	var doTrace bool

	cmd := &cobra.Command{
		Use:   "risc16run [flags] SOURCE|BINARY",
		Short: "Run a RiSC-16 program to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(debug)
			return run(log, args[0], limit, memSize, doTrace)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().IntVar(&limit, "limit", cpu.DefaultStepLimit, "maximum steps before faulting")
	cmd.Flags().IntVar(&memSize, "mem-size", mem.DefaultSize, "memory size in bytes (power of two)")
	cmd.Flags().BoolVar(&doTrace, "trace", false, "print an instruction trace after running")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(log *slog.Logger, path string, limit, memSize int, doTrace bool) error {
	words, err := loadWords(path)
	if err != nil {
		return err
	}
	log.Debug("loaded program", "path", path, "words", len(words))

	m, err := mem.New(memSize)
	if err != nil {
		return err
	}
	if err := m.LoadWords(words); err != nil {
		return fmt.Errorf("load program into memory: %w", err)
	}

	engine := cpu.New(m)
	state := cpu.Reset()

	var rec *trace.Recorder
	var result cpu.RunResult
	if doTrace {
		rec = trace.New(trace.DefaultCapacity)
		result, err = runTraced(engine, rec, state, limit)
	} else {
		result, err = engine.Run(state, limit)
	}

	if doTrace {
		fmt.Fprint(os.Stderr, rec.Dump())
	}

	printState(result.State)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errQuiet{}
	}
	return nil
}

func runTraced(engine *cpu.ExecutionEngine, rec *trace.Recorder, s cpu.ProcessorState, limit int) (cpu.RunResult, error) {
	result := cpu.RunResult{State: s}
	if limit <= 0 {
		limit = cpu.DefaultStepLimit
	}
	for result.Steps < limit {
		if result.State.Halted {
			return result, nil
		}
		ns, err := trace.Step(engine, rec, result.State)
		if err != nil {
			return result, err
		}
		result.State = ns
		result.Steps++
	}
	if result.State.Halted {
		return result, nil
	}
	return result, &cpu.Fault{
		Reason:  cpu.StepLimitReached,
		Message: fmt.Sprintf("exceeded %d steps without halting", limit),
	}
}

func loadWords(path string) ([]uint16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".s") || strings.HasSuffix(path, ".asm") {
		res, err := asm.Assemble(string(data))
		if err != nil {
			if aerr, ok := err.(*asm.Error); ok {
				return nil, fmt.Errorf("%s", aerr.Format())
			}
			return nil, err
		}
		return res.Words, nil
	}
	return listing.ReadBinary(data)
}

func printState(s cpu.ProcessorState) {
	fmt.Printf("pc=0x%04X halted=%v steps=%d\n", s.PC, s.Halted, s.InstructionCount)
	for i := 0; i < 8; i++ {
		fmt.Printf("r%d=%d ", i, s.Register(i))
	}
	fmt.Println()
}

// errQuiet signals main to exit nonzero without cobra re-printing the
// diagnostic that was already written to stderr.
type errQuiet struct{}

func (errQuiet) Error() string { return "" }
