// Package graph accumulates provenance fragments and renders them as Graphviz DOT.
package graph

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/emicklei/dot"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

// Graph is the output of one build. Nodes and edges are kept in emission order.
type Graph struct {
	name         string
	highestBlock uint64
	nodes        []model.Node
	edges        []model.Edge
}

// New returns an empty graph named name for a log synced up to highestBlock.
func New(name string, highestBlock uint64) *Graph {
	return &Graph{name: name, highestBlock: highestBlock}
}

// Name returns the graph identifier.
func (g *Graph) Name() string {
	return g.name
}

// HighestBlock returns the synced height the graph was built from.
func (g *Graph) HighestBlock() uint64 {
	return g.highestBlock
}

// Add appends the declarations of f.
func (g *Graph) Add(f model.Fragment) error {
	for _, n := range f.Nodes {
		if n.ID == "" {
			return errors.New("node without id")
		}
	}
	for _, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("edge %q -> %q has an empty endpoint", e.From, e.To)
		}
	}
	g.nodes = append(g.nodes, f.Nodes...)
	g.edges = append(g.edges, f.Edges...)
	return nil
}

// Nodes returns the declared nodes.
func (g *Graph) Nodes() []model.Node {
	return slices.Clone(g.nodes)
}

// Edges returns every edge.
func (g *Graph) Edges() []model.Edge {
	return slices.Clone(g.edges)
}

// WeightedEdges returns the withdrawal attribution edges.
func (g *Graph) WeightedEdges() []model.Edge {
	out := make([]model.Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.Weighted() {
			out = append(out, e)
		}
	}
	return out
}

// Render builds the DOT document. Nodes only referenced by edges keep their id as label.
func (g *Graph) Render() *dot.Graph {
	d := dot.NewGraph(dot.Directed)
	d.ID(g.name)

	for _, n := range g.nodes {
		node := d.Node(n.ID).Attr("id", n.ID)
		if n.Label != "" {
			node.Label(n.Label)
		}
		if n.Fill != "" {
			node.Attr("style", "filled").Attr("fillcolor", n.Fill)
		}
	}
	for _, e := range g.edges {
		edge := d.Edge(d.Node(e.From), d.Node(e.To))
		if e.Weighted() {
			edge.Attr("weight", e.Weight).
				Attr("penwidth", e.PenWidth).
				Attr("len", e.Length)
		}
	}
	return d
}

// DOT returns the rendered document.
func (g *Graph) DOT() string {
	return g.Render().String()
}

// WriteDOT writes the rendered document to w.
func (g *Graph) WriteDOT(w io.Writer) error {
	if _, err := io.WriteString(w, g.DOT()); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}
