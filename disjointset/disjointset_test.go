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

package disjointset

import "testing"

func TestSingletonIsConnectedToItself(t *testing.T) {
	e := NewElem(1)
	if !e.IsConnected(e) {
		t.Fatalf("an element should be connected to itself")
	}
}

func TestUnionConnectsElements(t *testing.T) {
	a, b := NewElem("a"), NewElem("b")
	if a.IsConnected(b) {
		t.Fatalf("distinct fresh elements should not start connected")
	}
	a.Union(b)
	if !a.IsConnected(b) {
		t.Fatalf("elements should be connected after Union")
	}
}

func TestUnionIsTransitive(t *testing.T) {
	a, b, c := NewElem(1), NewElem(2), NewElem(3)
	a.Union(b)
	b.Union(c)
	if !a.IsConnected(c) {
		t.Fatalf("union should be transitive")
	}
}

func TestFindCompressesPath(t *testing.T) {
	a, b, c := NewElem(1), NewElem(2), NewElem(3)
	a.Union(b)
	b.Union(c)
	rootBefore := c.Find()
	// After Find, c should point directly at its representative.
	if c.parent != rootBefore {
		t.Fatalf("Find should leave c pointing directly at the representative")
	}
	// Calling Find again should return the same representative.
	if c.Find() != rootBefore {
		t.Fatalf("Find should be stable across repeated calls")
	}
}
