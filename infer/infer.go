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

package infer

import (
	"github.com/simplicity-infer/typeinfer/constraints"
	"github.com/simplicity-infer/typeinfer/dag"
	"github.com/simplicity-infer/typeinfer/errkind"
	"github.com/simplicity-infer/typeinfer/typedag"
)

// Init carries everything a single InferTypes call needs beyond the graph
// itself: which solver backend to drive it with, and where to send
// diagnostic output. Logf is a closure rather than a package logger so that
// two concurrent calls to InferTypes, each with its own Init, never
// interleave or share log state.
type Init struct {
	// SolverName selects a registered Solver. The empty string means
	// "use whatever is registered as the default."
	SolverName string
	// Logf receives one line per notable event if non-nil.
	Logf func(format string, v ...interface{})
	// Debug makes InferTypes log the chosen solver's DebugSolverState
	// output through Logf when the solver fails. The returned error does
	// not include it.
	Debug bool
}

func (init *Init) logf(format string, v ...interface{}) {
	if init != nil && init.Logf != nil {
		init.Logf(format, v...)
	}
}

// InferTypes is the single public entrypoint: it emits constraints for g,
// hands them to the selected solver, and on success annotates every node
// of g with its inferred source and target type-DAG index.
//
// The returned error, when non-nil, is always an *errkind.Error. A Kind of
// Malformed or AllocationFailure means inference could not run to
// completion at all. A Kind of Clash or OccursCheck means inference ran to
// completion but g has no principal type; typeDag is nil in that case, but
// the error is still the caller's signal, not a sentinel on typeDag.
func InferTypes(g *dag.Graph, init *Init) (typeDag *typedag.Array, sourceIx, targetIx int, err error) {
	if init == nil {
		init = &Init{}
	}

	if verr := g.Validate(); verr != nil {
		return nil, 0, 0, errkind.Wrap(errkind.Malformed, verr, "infer: invalid input graph")
	}

	solver, ok := Lookup(init.SolverName)
	if !ok {
		name := init.SolverName
		if name == "" {
			name = "(default)"
		}
		return nil, 0, 0, errkind.New(errkind.AllocationFailure, "infer: no solver registered as %s", name)
	}

	census := dag.CensusOf(g)
	init.logf("infer: %d nodes, variable pool hint %d", len(g.Nodes), census.VariablePoolHint())

	c, cerr := constraints.Emit(g, census)
	if cerr != nil {
		return nil, 0, 0, errkind.Wrap(errkind.Malformed, cerr, "infer: constraint emission failed")
	}
	init.logf("infer: emitted %d variables, %d binds, %d unify ops", c.NumVars, len(c.Binds), len(c.Unifies))

	result, serr := solver.Solve(c)
	if serr != nil {
		if init.Debug {
			init.logf("infer: solver state at failure:\n%s", solver.DebugSolverState())
		}
		return nil, 0, 0, serr
	}

	root := g.Root()
	for i, n := range g.Nodes {
		n.TypeAnnotation = dag.Annotation{
			SourceIx: result.VarToNode[c.NodeSource[i]],
			TargetIx: result.VarToNode[c.NodeTarget[i]],
		}
		g.Nodes[i] = n
	}

	return result.TypeDag, g.Nodes[root].TypeAnnotation.SourceIx, g.Nodes[root].TypeAnnotation.TargetIx, nil
}
