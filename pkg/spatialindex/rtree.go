package spatialindex

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

var tol = 0.0000001

type nodeRect struct {
	location rtreego.Point
	node     orb.Point
}

func (n *nodeRect) Bounds() rtreego.Rect {
	return n.location.ToRect(tol)
}

// NodeIndex rtree untuk snap titik sembarang ke node graph terdekat.
type NodeIndex struct {
	tree *rtreego.Rtree
}

func NewNodeIndex(nodes []orb.Point) *NodeIndex {
	objs := make([]rtreego.Spatial, 0, len(nodes))
	for _, n := range nodes {
		objs = append(objs, &nodeRect{location: rtreego.Point{n.X(), n.Y()}, node: n})
	}
	return &NodeIndex{
		tree: rtreego.NewTree(2, 25, 50, objs...), // 2 dimension, 25 min entries dan 50 max entries
	}
}

// Nearest node terdekat dari p (jarak euclidean di koordinat mentah). false kalau index kosong.
func (idx *NodeIndex) Nearest(p orb.Point) (orb.Point, bool) {
	if idx.tree.Size() == 0 {
		return p, false
	}
	nearest := idx.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	if nearest == nil {
		return p, false
	}
	return nearest.(*nodeRect).node, true
}

func (idx *NodeIndex) Size() int {
	return idx.tree.Size()
}
