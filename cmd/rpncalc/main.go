// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rpncalc is the decimal RPN calculator's command-line front
// end: flag parsing ported from rcornwell-S370/main.go's getopt block,
// settings loaded via config.Load/LoadFrom, and a repl.REPL driving
// either an interactive liner session or a batch run over stdin/a
// script file, the same file-vs-stdin branch robpike-ivy's main() uses.
package main

import (
	"fmt"
	"io"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"rpncalc.dev/kernel/config"
	"rpncalc.dev/kernel/internal/rpnlog"
	"rpncalc.dev/kernel/repl"
	"rpncalc.dev/kernel/rpn"
)

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Settings file (default: "+config.Path()+")")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDecPlaces := getopt.IntLong("dec-places", 'p', 0, "Working decimal places [6,32] (default: from settings)")
	optDeg := getopt.BoolLong("deg", 'd', "Use degrees for trig operators")
	optRad := getopt.BoolLong("rad", 'r', "Use radians for trig operators")
	optSci := getopt.BoolLong("sci", 's', "Render results in scientific notation")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logSink io.Writer
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rpncalc: %s\n", err)
			os.Exit(1)
		}
		logSink = f
		defer f.Close()
	}
	log := rpnlog.NewLogger(logSink, *optLogFile == "")

	cfgPath := *optConfig
	var cfg *config.Settings
	var err error
	if cfgPath != "" {
		cfg, err = config.LoadFrom(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Error("failed to load settings", "err", err)
		fmt.Fprintf(os.Stderr, "rpncalc: %s\n", err)
		os.Exit(1)
	}

	if *optDecPlaces != 0 {
		if err := cfg.SetDecPlaces(*optDecPlaces); err != nil {
			fmt.Fprintf(os.Stderr, "rpncalc: %s\n", err)
			os.Exit(2)
		}
	}
	if *optDeg && *optRad {
		fmt.Fprintln(os.Stderr, "rpncalc: --deg and --rad are mutually exclusive")
		os.Exit(2)
	}
	if *optDeg {
		cfg.SetDegrees(true)
	}
	if *optRad {
		cfg.SetDegrees(false)
	}
	if *optSci {
		cfg.SetScientific(true)
	}

	log.Info("rpncalc started", "dec_places", cfg.DecimalPlaces(), "degrees", cfg.Degrees())

	eval := rpn.NewEvaluator(cfg, log)
	session := repl.New(eval, os.Stdout, log, 0)

	args := getopt.Args()
	var runErr error
	switch {
	case len(args) > 0:
		runErr = runFiles(session, args)
	case isInteractive():
		runErr = session.RunInteractive("> ")
	default:
		runErr = session.RunBatch(os.Stdin)
	}
	if runErr != nil {
		log.Error("session ended with error", "err", runErr)
		fmt.Fprintf(os.Stderr, "rpncalc: %s\n", runErr)
		os.Exit(1)
	}
}

// runFiles runs the REPL in batch mode over each named script file in
// turn, stopping at the first one that fails to open, mirroring
// ivy.go's per-argument file loop.
func runFiles(session *repl.REPL, names []string) error {
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = session.RunBatch(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// isInteractive reports whether stdin is a terminal rather than a
// pipe or redirected file, deciding between the liner-backed
// interactive session and plain batch mode.
func isInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
