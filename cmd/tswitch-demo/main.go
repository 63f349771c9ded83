// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command tswitch-demo runs every dispatch strategy over five demo types
// and reports the selected value and outcome on stderr.
//
// Without arguments it dispatches m = 25; with any argument, m = 33.
// The index strategies select position m/8, the keyed strategies look up m
// in the keys {11, 22, 25, 33, 55}.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"code.hybscloud.com/tswitch"
)

type Int1 struct{}
type Int2 struct{}
type Int3 struct{}
type Int4 struct{}
type Int5 struct{}

func (Int1) Value() int { return 1 }
func (Int2) Value() int { return 2 }
func (Int3) Value() int { return 3 }
func (Int4) Value() int { return 4 }
func (Int5) Value() int { return 5 }

type demoTypes = tswitch.Types5[Int1, Int2, Int3, Int4, Int5]

var demoKeys = tswitch.MustKeys[demoTypes](11, 22, 25, 33, 55)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stderr)
}

func runWithArgs(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("tswitch-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioPath := fs.String("scenarios", "", "path to YAML scenario file")
	colorMode := fs.String("color", "auto", "color outcomes: auto, always, never")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [-scenarios file.yaml] [-color mode] [arg]\n\n", fs.Name()),
			writeln(stderr, "Dispatches m = 25 (no argument) or m = 33 (any argument) through every strategy."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	color, err := resolveColor(*colorMode, stderr)
	if err != nil {
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	sc := defaultScenario(fs.NArg())
	if *scenarioPath != "" {
		sc, err = loadScenarioFile(*scenarioPath)
		if err != nil {
			_ = writef(stderr, "error loading scenarios: %v\n", err)
			return 1
		}
	}

	keys := demoKeys
	if len(sc.Keys) > 0 {
		keys, err = tswitch.NewKeys[demoTypes](sc.Keys...)
		if err != nil {
			_ = writef(stderr, "error: %v\n", err)
			return 1
		}
	}

	for _, m := range sc.Values {
		if err := runScenario(stderr, m, keys, color); err != nil {
			return 1
		}
	}
	return 0
}

// runScenario dispatches m through all four strategies.
func runScenario(w io.Writer, m int, keys tswitch.Keys[demoTypes], color bool) error {
	var werr error
	process := func(tok tswitch.Token) {
		v := tok.Zero().(interface{ Value() int })
		werr = errors.Join(werr, writef(w, "val = %d\n", v.Value()))
	}
	report := func(name string, ok bool) {
		werr = errors.Join(werr, writef(w, "%s = %s\n", name, outcome(ok, color)))
	}

	k := m / 8
	if err := writef(w, "k = %d m = %d\n", k, m); err != nil {
		return err
	}
	// A negative k converts to a large index and selects nothing.
	report("Index", tswitch.Index[demoTypes](uint(k), process))
	report("IndexLinear", tswitch.IndexLinear[demoTypes](uint(k), process))
	report("Keyed", tswitch.Keyed(m, keys, process))
	report("KeyedLinear", tswitch.KeyedLinear(m, keys, process))
	return werr
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
