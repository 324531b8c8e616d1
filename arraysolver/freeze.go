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
	"github.com/simplicity-infer/typeinfer/errkind"
	"github.com/simplicity-infer/typeinfer/typedag"
	"github.com/simplicity-infer/typeinfer/variable"
)

const (
	white = 0
	gray  = 1
	black = 2
)

// freezeFrame is one entry of the explicit freeze stack. phase 0 means "not
// yet descended into children"; phase 1 means "children are frozen, ready
// to intern this representative itself."
type freezeFrame struct {
	rep   int
	phase int
}

// freeze converts every bound (or left unbound) representative reachable
// from the pool into a node of a hash-consed typedag.Array, detecting
// cycles in the binding graph along the way via an explicit-stack
// two-colour walk. Unbound variables — type variables no constraint ever
// pinned down — are closed to ONE, the simplest type consistent with no
// constraints at all, since this engine never generalizes them into a
// polymorphic scheme.
func freeze(pool *variable.Pool, numVars int, typeDagHint int) ([]int, *typedag.Array, *errkind.Error) {
	color := make([]uint8, numVars)
	frozenIx := make([]int, numVars)
	for i := range frozenIx {
		frozenIx[i] = -1
	}
	arr := typedag.NewArray(typeDagHint)

	freezeRep := func(root int) *errkind.Error {
		if frozenIx[root] != -1 {
			return nil
		}
		stack := []freezeFrame{{rep: root, phase: 0}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			r := top.rep
			if frozenIx[r] != -1 {
				stack = stack[:len(stack)-1]
				continue
			}

			if top.phase == 0 {
				if color[r] == gray {
					return errkind.New(errkind.OccursCheck, "cyclic type binding at variable %d", r)
				}
				color[r] = gray
				top.phase = 1

				kind, a0, a1, ok := pool.Binding(r)
				if ok && kind != typedag.One {
					ra0, ra1 := pool.Find(a0), pool.Find(a1)
					if frozenIx[ra1] == -1 {
						stack = append(stack, freezeFrame{rep: ra1, phase: 0})
					}
					if frozenIx[ra0] == -1 {
						stack = append(stack, freezeFrame{rep: ra0, phase: 0})
					}
				}
				continue
			}

			color[r] = black
			kind, a0, a1, ok := pool.Binding(r)

			var idx int
			var err error
			switch {
			case !ok || kind == typedag.One:
				idx = arr.InternOne()
			case kind == typedag.Sum:
				idx, err = arr.InternSum(frozenIx[pool.Find(a0)], frozenIx[pool.Find(a1)])
			case kind == typedag.Product:
				idx, err = arr.InternProduct(frozenIx[pool.Find(a0)], frozenIx[pool.Find(a1)])
			}
			if err != nil {
				return errkind.Wrap(errkind.AllocationFailure, err, "freeze: could not intern type node")
			}
			frozenIx[r] = idx
			stack = stack[:len(stack)-1]
		}
		return nil
	}

	varToNode := make([]int, numVars)
	for v := 0; v < numVars; v++ {
		r := pool.Find(v)
		if ferr := freezeRep(r); ferr != nil {
			return nil, nil, ferr
		}
		varToNode[v] = frozenIx[r]
	}

	return varToNode, arr, nil
}
