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

package arraysolver

import (
	"testing"

	"github.com/simplicity-infer/typeinfer/dag"
	"github.com/simplicity-infer/typeinfer/errkind"
	"github.com/simplicity-infer/typeinfer/infer"
	"github.com/simplicity-infer/typeinfer/typedag"
)

func mustInfer(t *testing.T, g *dag.Graph) (*typedag.Array, int, int) {
	t.Helper()
	typeDag, src, tgt, err := infer.InferTypes(g, &infer.Init{SolverName: "array"})
	if err != nil {
		t.Fatalf("InferTypes: %s", err)
	}
	return typeDag, src, tgt
}

func TestIdenInfersToFreshVariableBothEnds(t *testing.T) {
	g := &dag.Graph{Nodes: []dag.Node{{Tag: dag.TagIden, Child0: dag.NoChild, Child1: dag.NoChild}}}
	typeDag, src, tgt := mustInfer(t, g)
	if src != tgt {
		t.Fatalf("iden's source and target should be the identical frozen type, got %d and %d", src, tgt)
	}
	if err := typeDag.Valid(); err != nil {
		t.Fatalf("type-DAG should be well-formed: %s", err)
	}
}

func TestUnitInfersTargetOne(t *testing.T) {
	g := &dag.Graph{Nodes: []dag.Node{{Tag: dag.TagUnit, Child0: dag.NoChild, Child1: dag.NoChild}}}
	typeDag, _, tgt := mustInfer(t, g)
	if typeDag.Nodes[tgt].Kind != typedag.One {
		t.Fatalf("unit's target should freeze to ONE, got %s", typeDag.Nodes[tgt].Kind)
	}
}

func TestPairOfIdensSharesSource(t *testing.T) {
	g := &dag.Graph{
		Nodes: []dag.Node{
			{Tag: dag.TagIden, Child0: dag.NoChild, Child1: dag.NoChild},
			{Tag: dag.TagIden, Child0: dag.NoChild, Child1: dag.NoChild},
			{Tag: dag.TagPair, Child0: 0, Child1: 1},
		},
	}
	typeDag, src, tgt := mustInfer(t, g)
	n := typeDag.Nodes[tgt]
	if n.Kind != typedag.Product {
		t.Fatalf("pair of two combinators should target a PRODUCT, got %s", n.Kind)
	}
	if n.Child0 != n.Child1 {
		t.Fatalf("pair(iden, iden) should produce PRODUCT(A, A) for the same A, got %d and %d", n.Child0, n.Child1)
	}
	if n.Child0 != src {
		t.Fatalf("pair(iden, iden)'s source and each product slot should be the same frozen type")
	}
}

func TestSharedNodeAnnotatesBothReferenceSitesIdentically(t *testing.T) {
	// node 0 (iden) is referenced as a child by two distinct later nodes,
	// 1 and 2, neither of which references the other. The shared node's
	// source must freeze to one index, and both reference sites, whose
	// sources are node 0's source, must carry that same index; pair(1, 2)
	// also unifies node 1's source with node 2's source.
	g := &dag.Graph{
		Nodes: []dag.Node{
			{Tag: dag.TagIden, Child0: dag.NoChild, Child1: dag.NoChild}, // 0: A -> A
			{Tag: dag.TagInjl, Child0: 0, Child1: dag.NoChild},           // 1: A -> SUM(A, B)
			{Tag: dag.TagInjr, Child0: 0, Child1: dag.NoChild},           // 2: A -> SUM(C, A)
			{Tag: dag.TagPair, Child0: 1, Child1: 2},                     // 3: forces node1.src == node2.src
		},
	}
	typeDag, _, _, err := infer.InferTypes(g, &infer.Init{SolverName: "array"})
	if err != nil {
		t.Fatalf("InferTypes: %s", err)
	}
	if err := typeDag.Valid(); err != nil {
		t.Fatalf("type-DAG should be well-formed: %s", err)
	}

	root := g.Nodes[0].TypeAnnotation.SourceIx
	if g.Nodes[1].TypeAnnotation.SourceIx != root {
		t.Fatalf("injl's reference to the shared node should annotate to %d, got %d", root, g.Nodes[1].TypeAnnotation.SourceIx)
	}
	if g.Nodes[2].TypeAnnotation.SourceIx != root {
		t.Fatalf("injr's reference to the shared node should annotate to %d, got %d", root, g.Nodes[2].TypeAnnotation.SourceIx)
	}
}

func TestComposeClash(t *testing.T) {
	// jet0 : ONE -> SUM(ONE, ONE), jet1 : PRODUCT(ONE, ONE) -> ONE.
	// comp(jet0, jet1) requires jet0's target to unify with jet1's
	// source: SUM against PRODUCT, which can never agree.
	one := dag.One
	g := &dag.Graph{
		Nodes: []dag.Node{
			{Tag: dag.TagJet, Child0: dag.NoChild, Child1: dag.NoChild,
				ConcreteSource: one(), ConcreteTarget: dag.SumOf(one(), one())},
			{Tag: dag.TagJet, Child0: dag.NoChild, Child1: dag.NoChild,
				ConcreteSource: dag.ProductOf(one(), one()), ConcreteTarget: one()},
			{Tag: dag.TagComp, Child0: 0, Child1: 1},
		},
	}
	_, _, _, err := infer.InferTypes(g, &infer.Init{SolverName: "array"})
	if err == nil {
		t.Fatalf("expected a clash between SUM and PRODUCT")
	}
	var ke *errkind.Error
	if !asErrkind(err, &ke) {
		t.Fatalf("expected an *errkind.Error, got %T: %v", err, err)
	}
	if ke.Kind != errkind.Clash {
		t.Fatalf("expected Kind Clash, got %s", ke.Kind)
	}
}

func TestCyclicConstraintIsOccursCheck(t *testing.T) {
	// take(iden) : A*C -> A. pair(iden, take(iden)) requires both children
	// to share a source, so iden's A must equal take's PRODUCT(A, C):
	// a direct self-reference the freezer must reject.
	g := &dag.Graph{
		Nodes: []dag.Node{
			{Tag: dag.TagIden, Child0: dag.NoChild, Child1: dag.NoChild}, // 0
			{Tag: dag.TagTake, Child0: 0, Child1: dag.NoChild},           // 1: A*C -> A
			{Tag: dag.TagPair, Child0: 0, Child1: 1},                     // 2: forces iden's var == take's product
		},
	}
	_, _, _, err := infer.InferTypes(g, &infer.Init{SolverName: "array"})
	if err == nil {
		t.Fatalf("expected an occurs-check failure")
	}
	var ke *errkind.Error
	if !asErrkind(err, &ke) {
		t.Fatalf("expected an *errkind.Error, got %T: %v", err, err)
	}
	if ke.Kind != errkind.OccursCheck {
		t.Fatalf("expected Kind OccursCheck, got %s", ke.Kind)
	}
}

func asErrkind(err error, target **errkind.Error) bool {
	if e, ok := err.(*errkind.Error); ok {
		*target = e
		return true
	}
	return false
}
