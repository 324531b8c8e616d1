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

// Package dag implements the Simplicity expression-DAG container that this
// module treats as an external collaborator: a borrowed, indexed sequence of
// combinator nodes, each carrying up to two child references (strictly less
// than its own index) and a writable type annotation slot. Nothing in this
// package performs unification; it only describes the shape the inference
// engine consumes and annotates.
package dag

import "fmt"

// Tag identifies the combinator a Node represents. The set and arities
// below follow the standard Simplicity combinators, as fixed by the
// reference implementation this module's spec was distilled from.
type Tag uint8

const (
	// TagIden is the identity combinator: A -> A.
	TagIden Tag = iota
	// TagUnit sends any type to ONE: A -> ONE.
	TagUnit
	// TagInjl injects into the left of a sum, given a child A -> B:
	// A -> SUM(B, C) for some C.
	TagInjl
	// TagInjr injects into the right of a sum, given a child A -> C:
	// A -> SUM(B, C) for some B.
	TagInjr
	// TagCase case-splits on a sum, given two children sharing a
	// context and a result type.
	TagCase
	// TagPair builds a product of two children sharing a source type.
	TagPair
	// TagTake discards the right half of a product source.
	TagTake
	// TagDrop discards the left half of a product source.
	TagDrop
	// TagComp composes two children end to end.
	TagComp
	// TagDisconnect splits a child's witness-carrying input and
	// threads the remainder through a second child.
	TagDisconnect
	// TagWitness is a leaf carrying a value whose type is otherwise
	// unconstrained by this node; child types are solved only through
	// sharing with how it's used elsewhere in the DAG.
	TagWitness
	// TagAssertL is like TagCase, but the right branch is pruned (only
	// its commitment hash is present, not a real subexpression).
	TagAssertL
	// TagAssertR is TagAssertL's mirror image.
	TagAssertR
	// TagFail is a leaf that never type-checks against anything but
	// also never constrains anything: A -> B for fresh A, B.
	TagFail
	// TagJet is a leaf with a concrete, caller-supplied monomorphic
	// type (a precomputed primitive implementation).
	TagJet
	// TagPrim is a leaf with a concrete, caller-supplied monomorphic
	// type (a primitive of the underlying application, e.g. a
	// blockchain-specific opcode).
	TagPrim
)

// String returns the combinator's conventional lowercase name.
func (t Tag) String() string {
	switch t {
	case TagIden:
		return "iden"
	case TagUnit:
		return "unit"
	case TagInjl:
		return "injl"
	case TagInjr:
		return "injr"
	case TagCase:
		return "case"
	case TagPair:
		return "pair"
	case TagTake:
		return "take"
	case TagDrop:
		return "drop"
	case TagComp:
		return "comp"
	case TagDisconnect:
		return "disconnect"
	case TagWitness:
		return "witness"
	case TagAssertL:
		return "assertl"
	case TagAssertR:
		return "assertr"
	case TagFail:
		return "fail"
	case TagJet:
		return "jet"
	case TagPrim:
		return "prim"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// Arity describes how many child expression references a tag uses: 0, 1,
// or 2. TagAssertL and TagAssertR are arity 1: the pruned branch is a
// commitment hash, not a real subexpression, so it isn't a DAG edge.
func (t Tag) Arity() int {
	switch t {
	case TagIden, TagUnit, TagWitness, TagFail, TagJet, TagPrim:
		return 0
	case TagInjl, TagInjr, TagTake, TagDrop, TagAssertL, TagAssertR:
		return 1
	case TagCase, TagPair, TagComp, TagDisconnect:
		return 2
	default:
		return -1 // unknown tag
	}
}
