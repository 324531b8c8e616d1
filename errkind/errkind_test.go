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

package errkind

import (
	"errors"
	"testing"
)

func TestSoft(t *testing.T) {
	cases := map[Kind]bool{
		None:              false,
		Malformed:         false,
		AllocationFailure: false,
		Clash:             true,
		OccursCheck:       true,
	}
	for k, want := range cases {
		if got := k.Soft(); got != want {
			t.Errorf("%s.Soft() = %v, want %v", k, got, want)
		}
	}
}

func TestWrapPreservesKind(t *testing.T) {
	orig := New(Clash, "first: %s", "problem")
	wrapped := Wrap(AllocationFailure, orig, "second")
	if wrapped.Kind != Clash {
		t.Fatalf("Wrap should preserve the original Kind, got %s", wrapped.Kind)
	}
}

func TestWrapOfPlainErrorUsesGivenKind(t *testing.T) {
	wrapped := Wrap(Malformed, errors.New("boom"), "context")
	if wrapped.Kind != Malformed {
		t.Fatalf("expected Kind Malformed, got %s", wrapped.Kind)
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("inner")
	e := &Error{Kind: Clash, Err: inner}
	if !errors.Is(e, inner) {
		t.Fatalf("errors.Is should see through to the wrapped error")
	}
}

func TestAggregateOfNoErrorsIsNil(t *testing.T) {
	if err := Aggregate(nil, nil); err != nil {
		t.Fatalf("expected nil, got %s", err)
	}
}

func TestAggregateCombinesErrors(t *testing.T) {
	err := Aggregate(errors.New("a"), nil, errors.New("b"))
	if err == nil {
		t.Fatalf("expected a combined error")
	}
}
