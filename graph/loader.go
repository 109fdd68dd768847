package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

// instanceDoc is the on-disk format shared with the dataset
// generator: {"num_vertices": N, "edges": [[u,v], ...]}.
type instanceDoc struct {
	NumVertices *int     `json:"num_vertices"`
	Edges       [][2]int `json:"edges"`
}

// LoadJSON reads a graph instance from path. Duplicate edges in the
// document are collapsed; out-of-range endpoints and self-loops are
// errors.
func LoadJSON(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	return ParseJSON(data)
}

// ParseJSON decodes a graph instance from raw JSON.
func ParseJSON(data []byte) (*Graph, error) {
	var doc instanceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse graph JSON: %w", err)
	}
	if doc.NumVertices == nil {
		return nil, fmt.Errorf("graph JSON missing num_vertices")
	}
	if *doc.NumVertices < 0 {
		return nil, fmt.Errorf("num_vertices is negative: %d", *doc.NumVertices)
	}

	g := New(*doc.NumVertices)
	for _, e := range doc.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("bad edge in graph JSON: %w", err)
		}
	}
	return g, nil
}

// WriteJSON writes g to path in the instance format.
func WriteJSON(path string, g *Graph) error {
	n := g.NumVertices()
	doc := instanceDoc{NumVertices: &n, Edges: make([][2]int, 0, g.NumEdges())}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, [2]int{e.U, e.V})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode graph JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write graph file: %w", err)
	}
	return nil
}
