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

package dag

import (
	"fmt"

	"github.com/simplicity-infer/typeinfer/errkind"
)

// Graph is a well-formed Simplicity expression DAG: an indexed sequence of
// combinator nodes. Program marks whether the root (the last node) is a
// declared Simplicity program, which pins its source and target types to
// ONE.
type Graph struct {
	Nodes   []Node
	Program bool
}

// Root returns the index of the final node, the conventional root of a
// Simplicity expression DAG built bottom-up.
func (g *Graph) Root() int {
	return len(g.Nodes) - 1
}

// Validate checks the well-formedness precondition this engine assumes:
// every child reference is a valid, strictly-earlier index, every tag has
// the children its arity demands, and every jet/primitive leaf carries the
// concrete type it's required to. It aggregates every problem it finds
// instead of stopping at the first, so a caller handing in a malformed
// graph during development gets the whole picture at once.
func (g *Graph) Validate() error {
	if len(g.Nodes) == 0 {
		return fmt.Errorf("dag: empty graph")
	}

	var errs []error
	for i, n := range g.Nodes {
		arity := n.Tag.Arity()
		if arity < 0 {
			errs = append(errs, fmt.Errorf("node %d: unknown tag %d", i, n.Tag))
			continue
		}

		children := [2]int{n.Child0, n.Child1}
		for slot := 0; slot < 2; slot++ {
			used := slot < arity
			c := children[slot]
			if used {
				if c == NoChild {
					errs = append(errs, fmt.Errorf("node %d (%s): missing required child %d", i, n.Tag, slot))
				} else if c < 0 || c >= i {
					errs = append(errs, fmt.Errorf("node %d (%s): child %d index %d is not < %d", i, n.Tag, slot, c, i))
				}
			} else if c != NoChild {
				errs = append(errs, fmt.Errorf("node %d (%s): unexpected child %d set to %d", i, n.Tag, slot, c))
			}
		}

		if n.Tag == TagJet || n.Tag == TagPrim {
			if n.ConcreteSource == nil || n.ConcreteTarget == nil {
				errs = append(errs, fmt.Errorf("node %d (%s): missing concrete source/target type", i, n.Tag))
			}
		}
	}

	return errkind.AggregateFormatted(func(errs []error) string {
		s := fmt.Sprintf("dag: %d validation error(s) found:", len(errs))
		for _, e := range errs {
			s += "\n  * " + e.Error()
		}
		return s
	}, errs...)
}
