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

// Package referencesolver is a small, deliberately unoptimized Solver: a
// plain recursive unifier and freezer over disjointset.Elem, meant to be
// run side-by-side with arraysolver in tests and cross-checked against it
// rather than used in production. Its simplicity is the point — it's
// easier to convince yourself this one is correct, which is exactly what
// you want from something whose job is catching bugs in the other one.
package referencesolver

import (
	"fmt"

	"github.com/simplicity-infer/typeinfer/constraints"
	"github.com/simplicity-infer/typeinfer/disjointset"
	"github.com/simplicity-infer/typeinfer/errkind"
	"github.com/simplicity-infer/typeinfer/infer"
	"github.com/simplicity-infer/typeinfer/typedag"
)

func init() {
	infer.Register("reference", &Solver{})
}

// Solver is the recursive reference implementation of infer.Solver.
type Solver struct {
	lastDebug string
}

const (
	white = 0
	gray  = 1
	black = 2
)

// varNode is the payload hung off every disjointset.Elem.
type varNode struct {
	bound      bool
	kind       typedag.Kind
	arg0, arg1 *disjointset.Elem[*varNode]

	color    int
	frozen   bool
	frozenIx int
}

// Solve implements infer.Solver.
func (s *Solver) Solve(c *constraints.Constraints) (*infer.Result, *errkind.Error) {
	elems := make([]*disjointset.Elem[*varNode], c.NumVars)
	for v := range elems {
		elems[v] = disjointset.NewElem(&varNode{})
	}

	for _, b := range c.Binds {
		r := elems[b.Var].Find()
		nv := &varNode{bound: true, kind: b.Kind}
		if b.Kind != typedag.One {
			nv.arg0, nv.arg1 = elems[b.Arg0], elems[b.Arg1]
		}
		r.Value = nv
	}

	for _, pair := range c.Unifies {
		if err := s.unify(elems[pair[0]], elems[pair[1]]); err != nil {
			s.lastDebug = fmt.Sprintf("unify failed: %s", err)
			return nil, err
		}
	}

	arr := typedag.NewArray(c.NumVars)
	varToNode := make([]int, c.NumVars)
	for v, e := range elems {
		idx, err := s.freeze(e, arr)
		if err != nil {
			s.lastDebug = fmt.Sprintf("freeze failed at variable %d: %s", v, err)
			return nil, err
		}
		varToNode[v] = idx
	}

	return &infer.Result{TypeDag: arr, VarToNode: varToNode}, nil
}

func (s *Solver) unify(a, b *disjointset.Elem[*varNode]) *errkind.Error {
	ra, rb := a.Find(), b.Find()
	if ra == rb {
		return nil
	}
	va, vb := ra.Value, rb.Value
	merged := ra.Union(rb)

	switch {
	case va.bound && vb.bound:
		if va.kind != vb.kind {
			return errkind.New(errkind.Clash, "cannot unify %s with %s", va.kind, vb.kind)
		}
		merged.Value = va
		if va.kind == typedag.One {
			return nil
		}
		if err := s.unify(va.arg0, vb.arg0); err != nil {
			return err
		}
		return s.unify(va.arg1, vb.arg1)
	case va.bound:
		merged.Value = va
	case vb.bound:
		merged.Value = vb
	}
	return nil
}

func (s *Solver) freeze(e *disjointset.Elem[*varNode], arr *typedag.Array) (int, *errkind.Error) {
	r := e.Find()
	v := r.Value
	if v.frozen {
		return v.frozenIx, nil
	}
	if v.color == gray {
		return 0, errkind.New(errkind.OccursCheck, "cyclic type binding")
	}
	v.color = gray

	var idx int
	var err error
	switch {
	case !v.bound || v.kind == typedag.One:
		idx = arr.InternOne()
	case v.kind == typedag.Sum:
		a0, serr := s.freeze(v.arg0, arr)
		if serr != nil {
			return 0, serr
		}
		a1, serr := s.freeze(v.arg1, arr)
		if serr != nil {
			return 0, serr
		}
		idx, err = arr.InternSum(a0, a1)
	case v.kind == typedag.Product:
		a0, serr := s.freeze(v.arg0, arr)
		if serr != nil {
			return 0, serr
		}
		a1, serr := s.freeze(v.arg1, arr)
		if serr != nil {
			return 0, serr
		}
		idx, err = arr.InternProduct(a0, a1)
	}
	v.color = black
	if err != nil {
		return 0, errkind.Wrap(errkind.AllocationFailure, err, "freeze: could not intern type node")
	}
	v.frozen = true
	v.frozenIx = idx
	return idx, nil
}

// DebugSolverState implements infer.Solver.
func (s *Solver) DebugSolverState() string {
	return s.lastDebug
}
