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

// Package infer defines the pluggable Solver contract and the process-wide
// registry solvers install themselves into, plus the single InferTypes
// entrypoint that drives an expression DAG from emission through solving to
// a frozen type-DAG. Concrete solvers (the array solver, the reference
// solver) live in their own packages and register themselves from an
// init(), specifically so this package never has to import them and risk a
// cycle.
package infer

import (
	"fmt"
	"sync"

	"github.com/simplicity-infer/typeinfer/constraints"
	"github.com/simplicity-infer/typeinfer/errkind"
	"github.com/simplicity-infer/typeinfer/typedag"
)

// Result is what a Solver hands back on success: the frozen, hash-consed
// type-DAG plus a mapping from every symbolic unification variable emitted
// by constraints.Emit to the TypeDag index it froze to.
type Result struct {
	TypeDag   *typedag.Array
	VarToNode []int
}

// Solver is the contract a unification backend implements: given the
// number of variables and the binds/unifies constraints.Emit produced, it
// either unifies and freezes them into a Result, or reports why it
// couldn't. DebugSolverState is a debug hook InferTypes logs on failure
// when Init.Debug is set; solvers that have nothing interesting to show
// may return the empty string.
type Solver interface {
	Solve(c *constraints.Constraints) (*Result, *errkind.Error)
	DebugSolverState() string
}

var (
	registryMu sync.Mutex
	registry   = map[string]Solver{}
)

// Register installs a Solver under name, so that Lookup(name) and, for
// name == "", LookupDefault can find it later. It's meant to be called
// from a solver package's init(); registering the same name twice is a
// programmer error and panics immediately rather than silently shadowing
// the earlier registration.
func Register(name string, solver Solver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("infer: solver %q already registered", name))
	}
	registry[name] = solver
}

// Lookup finds a previously Register'd Solver by name.
func Lookup(name string) (Solver, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	s, ok := registry[name]
	return s, ok
}

// LookupDefault returns the Solver registered under the empty name, the
// one InferTypes uses when its caller doesn't ask for a specific backend.
func LookupDefault() (Solver, bool) {
	return Lookup("")
}
