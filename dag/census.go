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

// Census tallies how many nodes of each combinator tag occur in a Graph.
// It exists purely to pre-size the constraint emitter's Binds and Unifies
// slices; nothing in this engine uses it to bound or reject an inference.
type Census map[Tag]int

// CensusOf computes the census of a Graph by a single pass over its nodes.
func CensusOf(g *Graph) Census {
	c := make(Census, 16)
	for _, n := range g.Nodes {
		c[n.Tag]++
	}
	return c
}

// Total returns the total node count recorded in the census.
func (c Census) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// VariablePoolHint estimates how many unification variables the emitter
// will allocate; constraints.Emit uses it to pre-size its Binds and Unifies
// slices once instead of growing them geometrically on every combinator.
// Most combinators allocate at most two variables, so three per node is a
// generous but cheap-to-compute upper bound for them; case (eight),
// disconnect (seven) and assertl/assertr (six) allocate more and get larger
// multipliers. pair shares the assertl/assertr multiplier. Jets and
// primitives allocate one variable per node of their concrete types, which
// the flat multiplier does not bound.
func (c Census) VariablePoolHint() int {
	hint := 0
	for tag, n := range c {
		switch tag {
		case TagCase, TagDisconnect:
			hint += n * 8
		case TagPair, TagAssertL, TagAssertR:
			hint += n * 6
		default:
			hint += n * 3
		}
	}
	if hint < 8 {
		hint = 8
	}
	return hint
}

// TypeDagHint estimates how many type-DAG nodes freezing will produce.
// Every unification variable can freeze to at most one type-DAG node, so
// the variable pool hint is already a safe (if loose) upper bound.
func (c Census) TypeDagHint() int {
	return c.VariablePoolHint()
}
