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
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/simplicity-infer/typeinfer/typedag"
)

// yamlConcreteType is the on-disk shape of a ConcreteType.
type yamlConcreteType struct {
	Kind string            `yaml:"kind"` // "one", "sum", "product"
	Arg0 *yamlConcreteType `yaml:"arg0,omitempty"`
	Arg1 *yamlConcreteType `yaml:"arg1,omitempty"`
}

// yamlNode is the on-disk shape of a Node.
type yamlNode struct {
	Tag    string `yaml:"tag"`
	Child0 *int   `yaml:"child0,omitempty"`
	Child1 *int   `yaml:"child1,omitempty"`

	ConcreteSource *yamlConcreteType `yaml:"source,omitempty"`
	ConcreteTarget *yamlConcreteType `yaml:"target,omitempty"`
}

// yamlGraph is the on-disk shape of a Graph, used as the fixture format
// consumed by the CLI and by this package's tests.
type yamlGraph struct {
	Program bool       `yaml:"program"`
	Nodes   []yamlNode `yaml:"nodes"`
}

var tagByName = func() map[string]Tag {
	m := make(map[string]Tag)
	for _, t := range []Tag{
		TagIden, TagUnit, TagInjl, TagInjr, TagCase, TagPair, TagTake,
		TagDrop, TagComp, TagDisconnect, TagWitness, TagAssertL,
		TagAssertR, TagFail, TagJet, TagPrim,
	} {
		m[t.String()] = t
	}
	return m
}()

func concreteFromYAML(y *yamlConcreteType) (*ConcreteType, error) {
	if y == nil {
		return nil, nil
	}
	switch y.Kind {
	case "one":
		return One(), nil
	case "sum":
		a, err := concreteFromYAML(y.Arg0)
		if err != nil {
			return nil, err
		}
		b, err := concreteFromYAML(y.Arg1)
		if err != nil {
			return nil, err
		}
		if a == nil || b == nil {
			return nil, fmt.Errorf("dag: sum type missing arg0/arg1")
		}
		return SumOf(a, b), nil
	case "product":
		a, err := concreteFromYAML(y.Arg0)
		if err != nil {
			return nil, err
		}
		b, err := concreteFromYAML(y.Arg1)
		if err != nil {
			return nil, err
		}
		if a == nil || b == nil {
			return nil, fmt.Errorf("dag: product type missing arg0/arg1")
		}
		return ProductOf(a, b), nil
	default:
		return nil, fmt.Errorf("dag: unknown concrete type kind %q", y.Kind)
	}
}

func concreteToYAML(ct *ConcreteType) *yamlConcreteType {
	if ct == nil {
		return nil
	}
	y := &yamlConcreteType{}
	switch ct.Kind {
	case typedag.One:
		y.Kind = "one"
	case typedag.Sum:
		y.Kind = "sum"
		y.Arg0 = concreteToYAML(ct.Arg0)
		y.Arg1 = concreteToYAML(ct.Arg1)
	case typedag.Product:
		y.Kind = "product"
		y.Arg0 = concreteToYAML(ct.Arg0)
		y.Arg1 = concreteToYAML(ct.Arg1)
	}
	return y
}

// SaveYAML writes g to filename in the same fixture format LoadYAML reads,
// the inverse of LoadYAML for round-tripping a graph built in memory back
// to disk. TypeAnnotation is not written.
func SaveYAML(filename string, g *Graph) error {
	y := yamlGraph{
		Program: g.Program,
		Nodes:   make([]yamlNode, len(g.Nodes)),
	}
	for i, n := range g.Nodes {
		yn := yamlNode{Tag: n.Tag.String()}
		if n.Child0 != NoChild {
			c := n.Child0
			yn.Child0 = &c
		}
		if n.Child1 != NoChild {
			c := n.Child1
			yn.Child1 = &c
		}
		yn.ConcreteSource = concreteToYAML(n.ConcreteSource)
		yn.ConcreteTarget = concreteToYAML(n.ConcreteTarget)
		y.Nodes[i] = yn
	}

	data, err := yaml.Marshal(&y)
	if err != nil {
		return errors.Wrapf(err, "dag: could not marshal graph")
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, "dag: could not write %s", filename)
	}
	return nil
}

// LoadYAML parses a Graph from a YAML fixture file. It does not call
// Validate; callers should do that themselves before running inference.
func LoadYAML(filename string) (*Graph, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "dag: could not read %s", filename)
	}

	var y yamlGraph
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, errors.Wrapf(err, "dag: could not parse %s", filename)
	}

	g := &Graph{
		Program: y.Program,
		Nodes:   make([]Node, len(y.Nodes)),
	}
	for i, yn := range y.Nodes {
		tag, ok := tagByName[yn.Tag]
		if !ok {
			return nil, fmt.Errorf("dag: node %d: unknown tag %q", i, yn.Tag)
		}
		n := Node{Tag: tag, Child0: NoChild, Child1: NoChild}
		if yn.Child0 != nil {
			n.Child0 = *yn.Child0
		}
		if yn.Child1 != nil {
			n.Child1 = *yn.Child1
		}
		if n.ConcreteSource, err = concreteFromYAML(yn.ConcreteSource); err != nil {
			return nil, errors.Wrapf(err, "dag: node %d", i)
		}
		if n.ConcreteTarget, err = concreteFromYAML(yn.ConcreteTarget); err != nil {
			return nil, errors.Wrapf(err, "dag: node %d", i)
		}
		g.Nodes[i] = n
	}
	return g, nil
}
