package routingalgorithm

import (
	"math"

	"lintang/georoute/pkg/datastructure"
	"lintang/georoute/pkg/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

type RouteAlgorithm struct {
	g *datastructure.Graph
}

func NewRouteAlgorithm(g *datastructure.Graph) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}

// heuristic jarak euclidean di bidang datar dari koordinat mentah (lon/lat), tanpa proyeksi.
// dipakai juga sebagai cost edge, jadi heuristicnya consistent.
func heuristic(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// AStar shortest path dari start ke goal. Return Route kosong (Found false) kalau goal tidak reachable.
// frontier min-heap: fScore terkecil, tie-break node yang lebih dulu masuk frontier.
func (rt *RouteAlgorithm) AStar(start, goal orb.Point) datastructure.Route {
	gScore := make(map[orb.Point]float64, rt.g.GetNumNodes())
	fScore := make(map[orb.Point]float64, rt.g.GetNumNodes())
	for _, node := range rt.g.Nodes {
		gScore[node] = math.Inf(1)
		fScore[node] = math.Inf(1)
	}
	gScore[start] = 0
	fScore[start] = heuristic(start, goal)

	cameFrom := make(map[orb.Point]orb.Point)

	openSet := newMinHeap()
	openSet.Insert(start, fScore[start])

	for openSet.Size() > 0 {
		current, _ := openSet.ExtractMin()
		if current.Item == goal {
			return datastructure.Route{
				Path:  reconstructPath(cameFrom, start, goal),
				Cost:  gScore[goal],
				Found: true,
			}
		}

		for _, neighbor := range rt.g.GetOutEdges(current.Item) {
			neighborG, known := gScore[neighbor]
			if !known {
				// node di luar rt.g.Nodes tidak pernah masuk search
				continue
			}

			tentativeGScore := gScore[current.Item] + heuristic(current.Item, neighbor)
			if tentativeGScore < neighborG {
				cameFrom[neighbor] = current.Item
				gScore[neighbor] = tentativeGScore
				fScore[neighbor] = tentativeGScore + heuristic(neighbor, goal)

				if openSet.Contains(neighbor) {
					_ = openSet.DecreaseKey(neighbor, fScore[neighbor])
				} else {
					openSet.Insert(neighbor, fScore[neighbor])
				}
			}
		}
	}

	return datastructure.NotFoundRoute()
}

func reconstructPath(cameFrom map[orb.Point]orb.Point, start, goal orb.Point) []orb.Point {
	path := []orb.Point{}
	curr := goal
	for {
		prev, ok := cameFrom[curr]
		if !ok {
			break
		}
		path = append(path, curr)
		curr = prev
	}
	path = append(path, start)
	util.ReverseG(path)
	return path
}
