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

package metrics

import (
	"testing"

	"github.com/simplicity-infer/typeinfer/dag"
	"github.com/simplicity-infer/typeinfer/infer"

	_ "github.com/simplicity-infer/typeinfer/arraysolver"
)

func TestRecorderInfersAndCounts(t *testing.T) {
	r := &Recorder{}
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %s", err)
	}

	g := &dag.Graph{Nodes: []dag.Node{{Tag: dag.TagIden, Child0: dag.NoChild, Child1: dag.NoChild}}}
	typeDag, src, tgt, err := r.Infer(g, &infer.Init{SolverName: "array"})
	if err != nil {
		t.Fatalf("Infer: %s", err)
	}
	if typeDag == nil {
		t.Fatalf("expected a non-nil type-DAG on success")
	}
	if src != tgt {
		t.Fatalf("iden should infer equal source and target")
	}
}

func TestRecorderCountsFailures(t *testing.T) {
	r := &Recorder{Listen: "127.0.0.1:0"}
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %s", err)
	}

	g := &dag.Graph{} // empty: fails validation
	if _, _, _, err := r.Infer(g, &infer.Init{SolverName: "array"}); err == nil {
		t.Fatalf("expected an error for an empty graph")
	}
}
