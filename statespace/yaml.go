package statespace

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// graphDoc mirrors the YAML layout accepted by LoadGraph.
type graphDoc struct {
	Initial    string    `yaml:"initial"`
	Goals      []string  `yaml:"goals"`
	Undirected bool      `yaml:"undirected"`
	Edges      []edgeDoc `yaml:"edges"`
}

type edgeDoc struct {
	From string   `yaml:"from"`
	To   string   `yaml:"to"`
	Cost *float64 `yaml:"cost"` // nil: core.DefaultStepCost
}

// LoadGraph decodes a Graph from YAML read from r.
func LoadGraph(r io.Reader) (*Graph, error) {
	var doc graphDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("statespace: empty graph document: %w", err)
		}
		return nil, fmt.Errorf("statespace: decode graph: %w", err)
	}

	g, err := NewGraph(doc.Initial, doc.Goals...)
	if err != nil {
		return nil, err
	}
	for i, e := range doc.Edges {
		cost := 1.0
		if e.Cost != nil {
			cost = *e.Cost
		}
		if doc.Undirected {
			err = g.AddUndirectedEdge(e.From, e.To, cost)
		} else {
			err = g.AddEdge(e.From, e.To, cost)
		}
		if err != nil {
			return nil, fmt.Errorf("statespace: edge %d: %w", i, err)
		}
	}

	return g, nil
}

// LoadGraphFile is LoadGraph on the file at path.
func LoadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadGraph(f)
}
