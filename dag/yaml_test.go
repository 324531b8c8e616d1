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
	"os"
	"path/filepath"
	"testing"
)

const fixtureYAML = `
program: true
nodes:
  - tag: iden
  - tag: unit
  - tag: comp
    child0: 0
    child1: 1
`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("could not write fixture: %s", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFixture(t, fixtureYAML)
	g, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %s", err)
	}
	if !g.Program {
		t.Fatalf("expected program: true to round-trip")
	}
	if len(g.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(g.Nodes))
	}
	if g.Nodes[2].Tag != TagComp || g.Nodes[2].Child0 != 0 || g.Nodes[2].Child1 != 1 {
		t.Fatalf("unexpected comp node: %+v", g.Nodes[2])
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("loaded graph should validate: %s", err)
	}
}

func TestLoadYAMLRejectsUnknownTag(t *testing.T) {
	path := writeFixture(t, "nodes:\n  - tag: bogus\n")
	if _, err := LoadYAML(path); err == nil {
		t.Fatalf("expected an error for an unknown tag")
	}
}

func TestLoadYAMLConcreteType(t *testing.T) {
	path := writeFixture(t, `
nodes:
  - tag: jet
    source:
      kind: one
    target:
      kind: sum
      arg0:
        kind: one
      arg1:
        kind: one
`)
	g, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %s", err)
	}
	n := g.Nodes[0]
	if n.ConcreteSource == nil || n.ConcreteSource.Kind.String() != "ONE" {
		t.Fatalf("unexpected concrete source: %+v", n.ConcreteSource)
	}
	if n.ConcreteTarget == nil || n.ConcreteTarget.Kind.String() != "SUM" {
		t.Fatalf("unexpected concrete target: %+v", n.ConcreteTarget)
	}
}

func TestSaveYAMLRoundTrips(t *testing.T) {
	path := writeFixture(t, fixtureYAML)
	g, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %s", err)
	}

	out := filepath.Join(t.TempDir(), "roundtrip.yaml")
	if err := SaveYAML(out, g); err != nil {
		t.Fatalf("SaveYAML: %s", err)
	}

	g2, err := LoadYAML(out)
	if err != nil {
		t.Fatalf("LoadYAML(roundtrip): %s", err)
	}
	if g2.Program != g.Program {
		t.Fatalf("program flag did not round-trip: got %t, want %t", g2.Program, g.Program)
	}
	if len(g2.Nodes) != len(g.Nodes) {
		t.Fatalf("node count did not round-trip: got %d, want %d", len(g2.Nodes), len(g.Nodes))
	}
	for i := range g.Nodes {
		if g2.Nodes[i].Tag != g.Nodes[i].Tag || g2.Nodes[i].Child0 != g.Nodes[i].Child0 || g2.Nodes[i].Child1 != g.Nodes[i].Child1 {
			t.Fatalf("node %d did not round-trip: got %+v, want %+v", i, g2.Nodes[i], g.Nodes[i])
		}
	}
}

func TestSaveYAMLRoundTripsConcreteType(t *testing.T) {
	g := &Graph{Nodes: []Node{{
		Tag:            TagJet,
		Child0:         NoChild,
		Child1:         NoChild,
		ConcreteSource: One(),
		ConcreteTarget: SumOf(One(), One()),
	}}}

	out := filepath.Join(t.TempDir(), "concrete.yaml")
	if err := SaveYAML(out, g); err != nil {
		t.Fatalf("SaveYAML: %s", err)
	}

	g2, err := LoadYAML(out)
	if err != nil {
		t.Fatalf("LoadYAML: %s", err)
	}
	n := g2.Nodes[0]
	if n.ConcreteSource == nil || n.ConcreteSource.Kind.String() != "ONE" {
		t.Fatalf("unexpected concrete source: %+v", n.ConcreteSource)
	}
	if n.ConcreteTarget == nil || n.ConcreteTarget.Kind.String() != "SUM" {
		t.Fatalf("unexpected concrete target: %+v", n.ConcreteTarget)
	}
}
