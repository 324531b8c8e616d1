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

// Package arraysolver is the production Solver: an iterative, explicit-
// stack worklist unifier over a variable.Pool, followed by an explicit-
// stack two-colour freezer that hash-conses the result into a compact
// typedag.Array. Neither phase recurses, so neither phase's stack depth
// depends on Go's goroutine stack; both scale with the size of the
// expression DAG instead.
package arraysolver

import (
	"github.com/simplicity-infer/typeinfer/constraints"
	"github.com/simplicity-infer/typeinfer/errkind"
	"github.com/simplicity-infer/typeinfer/typedag"
	"github.com/simplicity-infer/typeinfer/variable"
)

// unify drives c's Binds and Unifies to a fixed point over pool, using an
// explicit slice as the unification worklist instead of recursing on
// every Sum/Product unification. It returns a *errkind.Error with Kind
// Clash the first time two bound representatives disagree on their
// constructor; pool is left in whatever partial state it reached, which is
// fine since the caller discards it on error.
func unify(pool *variable.Pool, c *constraints.Constraints) *errkind.Error {
	for _, b := range c.Binds {
		pool.Bind(b.Var, b.Kind, b.Arg0, b.Arg1)
	}

	worklist := make([][2]int, len(c.Unifies))
	copy(worklist, c.Unifies)

	for len(worklist) > 0 {
		n := len(worklist) - 1
		a, b := worklist[n][0], worklist[n][1]
		worklist = worklist[:n]

		ra, rb := pool.Find(a), pool.Find(b)
		if ra == rb {
			continue
		}

		kindA, a0, a1, okA := pool.Binding(ra)
		kindB, b0, b1, okB := pool.Binding(rb)

		merged := pool.Union(ra, rb)

		switch {
		case okA && okB:
			if kindA != kindB {
				return errkind.New(errkind.Clash, "cannot unify %s with %s", kindA, kindB)
			}
			pool.Bind(merged, kindA, a0, a1)
			if kindA != typedag.One {
				worklist = append(worklist, [2]int{a0, b0}, [2]int{a1, b1})
			}
		case okA:
			pool.Bind(merged, kindA, a0, a1)
		case okB:
			pool.Bind(merged, kindB, b0, b1)
		}
	}

	return nil
}
