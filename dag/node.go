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

import "github.com/simplicity-infer/typeinfer/typedag"

// NoChild marks an unused child slot.
const NoChild = -1

// ConcreteType is a finite, fully-instantiated type tree supplied directly
// by the caller for jet and primitive leaves, whose monomorphic type is
// known up front rather than inferred. It uses the same ONE/SUM/PRODUCT
// grammar as typedag.Array, but as an ordinary tree rather than a
// hash-consed array, since callers build these by hand or from a small
// fixture file.
type ConcreteType struct {
	Kind       typedag.Kind
	Arg0, Arg1 *ConcreteType
}

// One is the concrete unit type.
func One() *ConcreteType { return &ConcreteType{Kind: typedag.One} }

// SumOf builds a concrete SUM(a, b) type.
func SumOf(a, b *ConcreteType) *ConcreteType {
	return &ConcreteType{Kind: typedag.Sum, Arg0: a, Arg1: b}
}

// ProductOf builds a concrete PRODUCT(a, b) type.
func ProductOf(a, b *ConcreteType) *ConcreteType {
	return &ConcreteType{Kind: typedag.Product, Arg0: a, Arg1: b}
}

// Annotation records the solved type of a node once inference succeeds:
// indices into the type-DAG returned alongside it.
type Annotation struct {
	SourceIx, TargetIx int
}

// Node is one combinator of an expression DAG. Child0 and Child1 are
// indices into the owning Graph's Nodes slice, strictly less than this
// node's own index (so Nodes form a DAG, not a general graph); unused
// slots hold NoChild. ConcreteSource and ConcreteTarget are only consulted
// for TagJet and TagPrim nodes.
type Node struct {
	Tag            Tag
	Child0, Child1 int

	ConcreteSource *ConcreteType
	ConcreteTarget *ConcreteType

	// TypeAnnotation is written by the engine exactly once, on a
	// successful inference call; callers must not read it otherwise.
	TypeAnnotation Annotation
}
