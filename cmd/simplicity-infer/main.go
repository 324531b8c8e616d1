// Simplicity Type Inference
// Copyright (C) 2026 the simplicity-infer contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command simplicity-infer loads an expression DAG fixture and runs
// monomorphic type inference over it, printing the resulting type-DAG or
// reporting why none exists.
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"

	"github.com/simplicity-infer/typeinfer/dag"
	"github.com/simplicity-infer/typeinfer/errkind"
	"github.com/simplicity-infer/typeinfer/infer"
	"github.com/simplicity-infer/typeinfer/metrics"
	"github.com/simplicity-infer/typeinfer/typedag"

	_ "github.com/simplicity-infer/typeinfer/arraysolver"
	_ "github.com/simplicity-infer/typeinfer/referencesolver"
)

const version = "0.1.0"

// args is the CLI parsing structure, parsed by go-arg.
type args struct {
	Input  string `arg:"positional,required" help:"path to a YAML expression DAG fixture"`
	Solver string `arg:"--solver" default:"array" help:"registered solver to use (array, reference)"`
	Debug  bool   `arg:"--debug" help:"print solver debug state on failure"`
	Verify bool   `arg:"--verify" help:"cross-check the array solver's result against the reference solver"`
	Print  bool   `arg:"--print" help:"pretty-print the resulting type-DAG"`

	MetricsListen string `arg:"--metrics-listen" help:"expose Prometheus metrics on this address while inferring (e.g. 127.0.0.1:9234)"`
}

func (args) Version() string {
	return "simplicity-infer " + version
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simplicity-infer: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	var a args
	arg.MustParse(&a)

	g, err := dag.LoadYAML(a.Input)
	if err != nil {
		return errors.Wrapf(err, "could not load %s", a.Input)
	}

	logf := func(format string, v ...interface{}) {
		fmt.Fprintf(os.Stderr, "simplicity-infer: "+format+"\n", v...)
	}

	init := &infer.Init{SolverName: a.Solver, Logf: logf, Debug: a.Debug}

	var typeDag *typedag.Array
	var sourceIx, targetIx int
	if a.MetricsListen != "" {
		rec := &metrics.Recorder{Listen: a.MetricsListen}
		if rerr := rec.Init(); rerr != nil {
			return errors.Wrap(rerr, "could not initialize metrics recorder")
		}
		if rerr := rec.Start(); rerr != nil {
			return errors.Wrap(rerr, "could not start metrics server")
		}
		logf("serving Prometheus metrics on %s/metrics", a.MetricsListen)
		typeDag, sourceIx, targetIx, err = rec.Infer(g, init)
	} else {
		typeDag, sourceIx, targetIx, err = infer.InferTypes(g, init)
	}
	if err != nil {
		if rerr := reportErr(err); rerr != nil {
			return rerr
		}
	}

	if a.Verify && a.Solver != "reference" {
		refInit := &infer.Init{SolverName: "reference", Logf: logf, Debug: a.Debug}
		refG, _ := dag.LoadYAML(a.Input) // fresh copy: InferTypes annotates in place
		refTypeDag, refSrc, refTgt, refErr := infer.InferTypes(refG, refInit)
		if (err == nil) != (refErr == nil) {
			return fmt.Errorf("cross-check mismatch: %s solver succeeded=%t, reference solver succeeded=%t", a.Solver, err == nil, refErr == nil)
		}
		if refErr == nil {
			if refTypeDag.Len() != typeDag.Len() {
				return fmt.Errorf("cross-check mismatch: %s solver produced %d type nodes, reference solver produced %d", a.Solver, typeDag.Len(), refTypeDag.Len())
			}
			if refSrc != sourceIx || refTgt != targetIx {
				return fmt.Errorf("cross-check mismatch: %s solver annotated root as %d->%d, reference solver as %d->%d", a.Solver, sourceIx, targetIx, refSrc, refTgt)
			}
		}
	}
	if err != nil {
		return nil // no principal type, already reported
	}

	fmt.Printf("root type: %d -> %d (%d type nodes)\n", sourceIx, targetIx, typeDag.Len())
	if a.Print {
		litter.Dump(typeDag.Nodes)
	}
	return nil
}

func reportErr(err error) error {
	var ke *errkind.Error
	if errors.As(err, &ke) && ke.Kind.Soft() {
		fmt.Printf("no principal type: %s\n", ke)
		return nil
	}
	return err
}
