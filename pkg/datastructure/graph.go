package datastructure

import (
	"github.com/paulmach/orb"
)

// Graph road network graph yang dibangun per request. Node diidentifikasi dengan nilai koordinat persis (tanpa toleransi),
// jadi dua titik yang beda di digit terakhir float-nya jadi dua node yang berbeda.
type Graph struct {
	Nodes []orb.Point
	Edges map[orb.Point][]orb.Point

	nodeSet map[orb.Point]struct{}
}

func NewGraph() *Graph {
	return &Graph{
		Nodes:   make([]orb.Point, 0),
		Edges:   make(map[orb.Point][]orb.Point),
		nodeSet: make(map[orb.Point]struct{}),
	}
}

// AddNode register node baru, return false kalau node sudah ada.
func (g *Graph) AddNode(p orb.Point) bool {
	if _, ok := g.nodeSet[p]; ok {
		return false
	}
	g.nodeSet[p] = struct{}{}
	g.Nodes = append(g.Nodes, p)
	return true
}

// AddEdge add edge from->to, plus reverse edge to->from kalau bukan oneway. edge duplikat tidak di-dedup.
func (g *Graph) AddEdge(from, to orb.Point, oneway bool) {
	g.Edges[from] = append(g.Edges[from], to)
	if !oneway {
		g.Edges[to] = append(g.Edges[to], from)
	}
}

func (g *Graph) HasNode(p orb.Point) bool {
	_, ok := g.nodeSet[p]
	return ok
}

func (g *Graph) GetOutEdges(p orb.Point) []orb.Point {
	return g.Edges[p]
}

func (g *Graph) GetNumNodes() int {
	return len(g.Nodes)
}

func (g *Graph) GetNumEdges() int {
	count := 0
	for _, neighbors := range g.Edges {
		count += len(neighbors)
	}
	return count
}
