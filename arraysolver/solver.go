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
	"fmt"
	"sync"

	"github.com/sanity-io/litter"

	"github.com/simplicity-infer/typeinfer/constraints"
	"github.com/simplicity-infer/typeinfer/errkind"
	"github.com/simplicity-infer/typeinfer/infer"
	"github.com/simplicity-infer/typeinfer/variable"
)

func init() {
	s := &Solver{}
	infer.Register("array", s)
	infer.Register("", s)
}

// Solver is the production infer.Solver backend: index-based union-find
// plus hash-consed freezing. A single instance is shared across every
// InferTypes call (registered once from init), since Solve keeps no state
// across calls beyond the last-failure snapshot used for debugging.
type Solver struct {
	mu        sync.Mutex
	lastDebug string
}

// Solve implements infer.Solver.
func (s *Solver) Solve(c *constraints.Constraints) (*infer.Result, *errkind.Error) {
	pool := variable.NewPool(c.NumVars)
	for i := 0; i < c.NumVars; i++ {
		pool.New()
	}

	if uerr := unify(pool, c); uerr != nil {
		s.recordDebug(pool, c, uerr)
		return nil, uerr
	}

	varToNode, arr, ferr := freeze(pool, c.NumVars, c.NumVars)
	if ferr != nil {
		s.recordDebug(pool, c, ferr)
		return nil, ferr
	}

	return &infer.Result{TypeDag: arr, VarToNode: varToNode}, nil
}

func (s *Solver) recordDebug(pool *variable.Pool, c *constraints.Constraints, err *errkind.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastDebug = fmt.Sprintf("error: %s\nvariables: %d\nbinds: %s\n",
		err, pool.Len(), litter.Sdump(c.Binds))
}

// DebugSolverState implements infer.Solver. It reports the state captured
// at the most recent failing Solve call from any goroutine; callers that
// need a precise per-call snapshot should serialize their InferTypes calls
// when Init.Debug is set.
func (s *Solver) DebugSolverState() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDebug
}
