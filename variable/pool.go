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

// Package variable implements the union-find pool the array solver unifies
// over: a flat, pre-sizeable slice of elements addressed by index rather
// than by pointer, so the whole pool can be allocated once from the
// emitter's variable count and never needs per-element initialization
// beyond Go's own zero-value.
package variable

import "github.com/simplicity-infer/typeinfer/typedag"

// elem is one slot of the pool. Its zero value is exactly a fresh,
// unranked, parentless, unbound variable: hasParent false makes index 0
// a safe "no parent" sentinel without reserving it, so New never has to
// touch a freshly grown slice entry.
type elem struct {
	hasParent bool
	parent    int32
	rank      int32

	isBound    bool
	kind       typedag.Kind
	arg0, arg1 int32
}

// Pool is the union-find store of unification variables. The zero Pool is
// not usable; construct one with NewPool.
type Pool struct {
	elems []elem
}

// NewPool allocates a pool pre-sized to capacityHint elements. The hint is
// purely an allocation courtesy: New still works past the hint, just with
// ordinary slice growth from then on.
func NewPool(capacityHint int) *Pool {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Pool{elems: make([]elem, 0, capacityHint)}
}

// New allocates a fresh, unbound variable and returns its id.
func (p *Pool) New() int {
	id := len(p.elems)
	p.elems = append(p.elems, elem{})
	return id
}

// Len reports how many variables have been allocated.
func (p *Pool) Len() int {
	return len(p.elems)
}

// Find returns the representative id of the set containing v, compressing
// the path as it walks so repeated lookups on the same variable are
// amortized constant time.
func (p *Pool) Find(v int) int {
	root := v
	for p.elems[root].hasParent {
		root = int(p.elems[root].parent)
	}
	for v != root {
		next := int(p.elems[v].parent)
		p.elems[v].parent = int32(root)
		p.elems[v].hasParent = true
		v = next
	}
	return root
}

// Union merges the sets containing a and b by rank, and returns the
// resulting representative. It does not touch bindings; callers that need
// to merge bindings (checking for a clash) must do that themselves before
// or after calling Union, since only the caller knows the unifier's
// clash-reporting conventions.
func (p *Pool) Union(a, b int) int {
	ra, rb := p.Find(a), p.Find(b)
	if ra == rb {
		return ra
	}
	if p.elems[ra].rank < p.elems[rb].rank {
		ra, rb = rb, ra
	}
	p.elems[rb].parent = int32(ra)
	p.elems[rb].hasParent = true
	if p.elems[ra].rank == p.elems[rb].rank {
		p.elems[ra].rank++
	}
	return ra
}

// IsBound reports whether the representative of v carries a binding.
func (p *Pool) IsBound(v int) bool {
	r := p.Find(v)
	return p.elems[r].isBound
}

// Binding returns the constructor bound to the representative of v. The
// second return value is false if v's representative is unbound.
func (p *Pool) Binding(v int) (kind typedag.Kind, arg0, arg1 int, ok bool) {
	r := p.Find(v)
	e := p.elems[r]
	if !e.isBound {
		return 0, 0, 0, false
	}
	return e.kind, int(e.arg0), int(e.arg1), true
}

// Bind attaches a constructor binding to the representative of v. Binding
// a variable that is already bound overwrites the previous binding; the
// unifier is responsible for deciding whether that should happen (it
// shouldn't, outside of merging two already-bound representatives, which
// it handles explicitly instead of calling Bind twice).
func (p *Pool) Bind(v int, kind typedag.Kind, arg0, arg1 int) {
	r := p.Find(v)
	p.elems[r].isBound = true
	p.elems[r].kind = kind
	p.elems[r].arg0 = int32(arg0)
	p.elems[r].arg1 = int32(arg1)
}
