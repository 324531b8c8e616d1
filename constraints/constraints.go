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

// Package constraints implements the constraint emitter: a single forward
// pass over an expression DAG that allocates symbolic unification variables
// for every node's source and target type and issues the unification
// requests corresponding to each combinator's typing rule. It never
// inspects or depends on how a variable is actually represented in memory;
// that's left entirely to whichever solver consumes the result, so the same
// emission logic grounds every solver in this module.
package constraints

import (
	"fmt"

	"github.com/simplicity-infer/typeinfer/dag"
	"github.com/simplicity-infer/typeinfer/typedag"
)

// Bind says that symbolic variable Var must be bound to the constructor
// Kind applied to Arg0 and Arg1 (both ignored when Kind is typedag.One).
// Every symbolic variable is the target of at most one Bind, issued once,
// at the same time it's allocated — emission never asks a solver to
// re-bind a variable.
type Bind struct {
	Var        int
	Kind       typedag.Kind
	Arg0, Arg1 int
}

// Constraints is the solver-agnostic output of Emit: how many symbolic
// variables exist, which of them carry a known binding, which pairs must
// be unified, and which of the expression DAG's nodes map to which
// variables.
type Constraints struct {
	NumVars int
	Binds   []Bind
	Unifies [][2]int

	// NodeSource and NodeTarget map dag.Graph node index to symbolic
	// variable id, for writing annotations back after solving.
	NodeSource []int
	NodeTarget []int
}

type emitter struct {
	g       *dag.Graph
	numVars int
	binds   []Bind
	unifies [][2]int
	nsrc    []int
	ntgt    []int
}

func (e *emitter) newVar() int {
	v := e.numVars
	e.numVars++
	return v
}

func (e *emitter) bind(kind typedag.Kind, arg0, arg1 int) int {
	v := e.newVar()
	e.binds = append(e.binds, Bind{Var: v, Kind: kind, Arg0: arg0, Arg1: arg1})
	return v
}

func (e *emitter) bindOne() int {
	return e.bind(typedag.One, -1, -1)
}

func (e *emitter) unify(a, b int) {
	e.unifies = append(e.unifies, [2]int{a, b})
}

// buildConcrete allocates one bound variable per node of a ConcreteType
// tree, bottom-up, and returns the variable id of the root.
func (e *emitter) buildConcrete(ct *dag.ConcreteType) (int, error) {
	if ct == nil {
		return 0, fmt.Errorf("constraints: nil concrete type")
	}
	switch ct.Kind {
	case typedag.One:
		return e.bindOne(), nil
	case typedag.Sum, typedag.Product:
		a, err := e.buildConcrete(ct.Arg0)
		if err != nil {
			return 0, err
		}
		b, err := e.buildConcrete(ct.Arg1)
		if err != nil {
			return 0, err
		}
		return e.bind(ct.Kind, a, b), nil
	default:
		return 0, fmt.Errorf("constraints: unknown concrete type kind %v", ct.Kind)
	}
}

// Emit walks g in a single forward pass (children are always emitted
// before the parents that reference them, since the DAG invariant
// guarantees child indices are strictly smaller) and produces the
// constraints encoding its principal-type problem. census pre-sizes the
// Binds and Unifies slices so emission doesn't grow them geometrically
// node by node; a nil census is computed from g.
func Emit(g *dag.Graph, census dag.Census) (*Constraints, error) {
	if census == nil {
		census = dag.CensusOf(g)
	}
	hint := census.VariablePoolHint()

	e := &emitter{
		g:       g,
		binds:   make([]Bind, 0, hint),
		unifies: make([][2]int, 0, hint),
		nsrc:    make([]int, len(g.Nodes)),
		ntgt:    make([]int, len(g.Nodes)),
	}

	for i, n := range g.Nodes {
		if err := e.emitNode(i, n); err != nil {
			return nil, fmt.Errorf("constraints: node %d (%s): %w", i, n.Tag, err)
		}
	}

	if g.Program {
		root := g.Root()
		one := e.bindOne()
		e.unify(e.nsrc[root], one)
		e.unify(e.ntgt[root], one)
	}

	return &Constraints{
		NumVars:    e.numVars,
		Binds:      e.binds,
		Unifies:    e.unifies,
		NodeSource: e.nsrc,
		NodeTarget: e.ntgt,
	}, nil
}

func (e *emitter) emitNode(i int, n dag.Node) error {
	switch n.Tag {
	case dag.TagIden:
		a := e.newVar()
		e.nsrc[i], e.ntgt[i] = a, a

	case dag.TagUnit:
		a := e.newVar()
		one := e.bindOne()
		e.nsrc[i], e.ntgt[i] = a, one

	case dag.TagInjl:
		c := n.Child0
		b := e.newVar() // fresh right summand, never used by this node
		sum := e.bind(typedag.Sum, e.ntgt[c], b)
		e.nsrc[i], e.ntgt[i] = e.nsrc[c], sum

	case dag.TagInjr:
		c := n.Child0
		a := e.newVar() // fresh left summand, never used by this node
		sum := e.bind(typedag.Sum, a, e.ntgt[c])
		e.nsrc[i], e.ntgt[i] = e.nsrc[c], sum

	case dag.TagCase:
		left, right := n.Child0, n.Child1
		a, b, c, d := e.newVar(), e.newVar(), e.newVar(), e.newVar()
		sum := e.bind(typedag.Sum, a, b)
		src := e.bind(typedag.Product, sum, c)

		leftExpect := e.bind(typedag.Product, a, c)
		e.unify(e.nsrc[left], leftExpect)
		rightExpect := e.bind(typedag.Product, b, c)
		e.unify(e.nsrc[right], rightExpect)
		e.unify(e.ntgt[left], d)
		e.unify(e.ntgt[right], d)

		e.nsrc[i], e.ntgt[i] = src, d

	case dag.TagPair:
		s, t := n.Child0, n.Child1
		e.unify(e.nsrc[s], e.nsrc[t])
		prod := e.bind(typedag.Product, e.ntgt[s], e.ntgt[t])
		e.nsrc[i], e.ntgt[i] = e.nsrc[s], prod

	case dag.TagTake:
		t := n.Child0
		c := e.newVar()
		prod := e.bind(typedag.Product, e.nsrc[t], c)
		e.nsrc[i], e.ntgt[i] = prod, e.ntgt[t]

	case dag.TagDrop:
		t := n.Child0
		c := e.newVar()
		prod := e.bind(typedag.Product, c, e.nsrc[t])
		e.nsrc[i], e.ntgt[i] = prod, e.ntgt[t]

	case dag.TagComp:
		s, t := n.Child0, n.Child1
		e.unify(e.ntgt[s], e.nsrc[t])
		e.nsrc[i], e.ntgt[i] = e.nsrc[s], e.ntgt[t]

	case dag.TagDisconnect:
		// s : PRODUCT(W, A) -> PRODUCT(B, C), t : C -> D
		// disconnect(s, t) : A -> PRODUCT(B, D)
		s, t := n.Child0, n.Child1
		w, a := e.newVar(), e.newVar()
		prodSrc := e.bind(typedag.Product, w, a)
		e.unify(e.nsrc[s], prodSrc)

		b, c := e.newVar(), e.newVar()
		prodTgt := e.bind(typedag.Product, b, c)
		e.unify(e.ntgt[s], prodTgt)
		e.unify(e.nsrc[t], c)

		out := e.bind(typedag.Product, b, e.ntgt[t])
		e.nsrc[i], e.ntgt[i] = a, out

	case dag.TagWitness:
		a, b := e.newVar(), e.newVar()
		e.nsrc[i], e.ntgt[i] = a, b

	case dag.TagAssertL:
		s := n.Child0 // s : A*C -> D
		a, b, c := e.newVar(), e.newVar(), e.newVar()
		prodExpect := e.bind(typedag.Product, a, c)
		e.unify(e.nsrc[s], prodExpect)
		sum := e.bind(typedag.Sum, a, b)
		src := e.bind(typedag.Product, sum, c)
		e.nsrc[i], e.ntgt[i] = src, e.ntgt[s]

	case dag.TagAssertR:
		t := n.Child0 // t : B*C -> D
		a, b, c := e.newVar(), e.newVar(), e.newVar()
		prodExpect := e.bind(typedag.Product, b, c)
		e.unify(e.nsrc[t], prodExpect)
		sum := e.bind(typedag.Sum, a, b)
		src := e.bind(typedag.Product, sum, c)
		e.nsrc[i], e.ntgt[i] = src, e.ntgt[t]

	case dag.TagFail:
		a, b := e.newVar(), e.newVar()
		e.nsrc[i], e.ntgt[i] = a, b

	case dag.TagJet, dag.TagPrim:
		a, err := e.buildConcrete(n.ConcreteSource)
		if err != nil {
			return err
		}
		b, err := e.buildConcrete(n.ConcreteTarget)
		if err != nil {
			return err
		}
		e.nsrc[i], e.ntgt[i] = a, b

	default:
		return fmt.Errorf("unhandled tag %v", n.Tag)
	}
	return nil
}
