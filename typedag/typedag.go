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

// Package typedag implements the dense, hash-consed output container for
// monomorphic Simplicity types. A Simplicity type is a finite tree over
// ONE | SUM(a, b) | PRODUCT(a, b); this package represents such a tree as an
// array of nodes where every child reference is an index strictly less than
// the referencing node's own index, so index 0 is always ONE and the whole
// array is already in topological order by construction.
package typedag

import "fmt"

// Kind identifies which Simplicity type constructor a Node represents.
type Kind uint8

const (
	// One is the trivial unit type.
	One Kind = iota
	// Sum is the disjoint union of two types.
	Sum
	// Product is the pair of two types.
	Product
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case One:
		return "ONE"
	case Sum:
		return "SUM"
	case Product:
		return "PRODUCT"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node is one entry of a type-DAG. Child0 and Child1 are only meaningful
// when Kind is Sum or Product, and must both be strictly less than this
// node's own index within the owning Array.
type Node struct {
	Kind           Kind
	Child0, Child1 int
}

// String renders a node using the indices of its owning array.
func (n Node) String() string {
	switch n.Kind {
	case One:
		return "ONE"
	case Sum:
		return fmt.Sprintf("SUM(%d, %d)", n.Child0, n.Child1)
	case Product:
		return fmt.Sprintf("PRODUCT(%d, %d)", n.Child0, n.Child1)
	default:
		return fmt.Sprintf("<bad kind %d>", n.Kind)
	}
}

// internKey is the hash-consing key for an Array's intern table.
type internKey struct {
	kind           Kind
	child0, child1 int
}

// Array is the output type-DAG. Index 0 is always ONE. It supports an
// append/intern interface so that equal subterms may (but need not) be
// shared; callers outside this package should only ever grow an Array via
// InternSum and InternProduct, never by mutating Nodes directly.
type Array struct {
	Nodes []Node

	intern map[internKey]int // hash-consing table, nil disables consing
}

// NewArray allocates an Array with index 0 pre-populated as ONE, and
// pre-sized capacity taken from a caller-supplied hint (typically derived
// from a combinator census). Hash-consing is always enabled; callers that
// want every subterm materialised independently should not rely on pointer
// identity of returned indices in the first place, since this engine never
// promises one representation or the other (spec: "may be shared").
func NewArray(capacityHint int) *Array {
	if capacityHint < 1 {
		capacityHint = 1
	}
	a := &Array{
		Nodes:  make([]Node, 1, capacityHint),
		intern: make(map[internKey]int, capacityHint),
	}
	a.Nodes[0] = Node{Kind: One}
	a.intern[internKey{kind: One}] = 0
	return a
}

// InternOne returns the canonical index for ONE, which is always 0.
func (a *Array) InternOne() int {
	return 0
}

// InternSum returns the index of a SUM(child0, child1) node, appending a
// new one only if an equal entry isn't already present. child0 and child1
// must already be valid indices into a.
func (a *Array) InternSum(child0, child1 int) (int, error) {
	return a.intern_(Sum, child0, child1)
}

// InternProduct is InternSum's PRODUCT counterpart.
func (a *Array) InternProduct(child0, child1 int) (int, error) {
	return a.intern_(Product, child0, child1)
}

func (a *Array) intern_(kind Kind, child0, child1 int) (int, error) {
	if child0 < 0 || child0 >= len(a.Nodes) || child1 < 0 || child1 >= len(a.Nodes) {
		return 0, fmt.Errorf("typedag: child index out of range (have %d nodes, want %d, %d)", len(a.Nodes), child0, child1)
	}
	key := internKey{kind: kind, child0: child0, child1: child1}
	if ix, ok := a.intern[key]; ok {
		return ix, nil
	}
	ix := len(a.Nodes)
	a.Nodes = append(a.Nodes, Node{Kind: kind, Child0: child0, Child1: child1})
	if a.intern != nil {
		a.intern[key] = ix
	}
	return ix, nil
}

// Len returns the number of nodes currently materialised.
func (a *Array) Len() int {
	return len(a.Nodes)
}

// Valid checks the well-formedness invariants: index 0 is ONE, and every
// node's children are strictly less than its own index.
func (a *Array) Valid() error {
	if len(a.Nodes) == 0 {
		return fmt.Errorf("typedag: empty array, missing ONE at index 0")
	}
	if a.Nodes[0].Kind != One {
		return fmt.Errorf("typedag: index 0 is %s, not ONE", a.Nodes[0].Kind)
	}
	for i, n := range a.Nodes {
		if n.Kind == One {
			continue
		}
		if n.Child0 >= i || n.Child1 >= i {
			return fmt.Errorf("typedag: node %d (%s) has a child index >= %d", i, n, i)
		}
	}
	return nil
}
