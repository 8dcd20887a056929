package generator

import (
	"math/rand"

	"basement/pkg/engine/world"
	gameworld "basement/pkg/game/world"
)

// quadrantPaths maps the four depth-2 BSP nodes to difficulty tiers 0-3.
// The order walks the quadrants so that consecutive tiers share an edge.
var quadrantPaths = [4]string{"aa", "ab", "bb", "ba"}

// bspNode represents a node in the BSP tree. path spells the route from the
// root, "a" for the first child and "b" for the second.
type bspNode struct {
	rect        world.Rect
	depth       int
	path        string
	cutVertical bool // how the parent was cut
	left, right *bspNode
	room        *gameworld.Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// newBSPTree partitions rect. The first two levels bisect exactly so the
// depth-2 nodes are four equal quadrants.
func newBSPTree(rng *rand.Rand, rect world.Rect, minLeaf int) *bspNode {
	root := &bspNode{rect: rect}
	splitBSP(rng, root, minLeaf)
	return root
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	switch node.depth {
	case 0:
		bisect(node, node.rect.W >= node.rect.H)
	case 1:
		bisect(node, !node.cutVertical)
	default:
		if !randomSplit(rng, node, minSize) {
			return
		}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

func bisect(node *bspNode, vertical bool) {
	if vertical {
		splitAt(node, true, node.rect.W/2)
	} else {
		splitAt(node, false, node.rect.H/2)
	}
	node.left.cutVertical = vertical
	node.right.cutVertical = vertical
}

// randomSplit picks an orientation favouring the longer side and a random
// cut that keeps both halves at least minSize wide.
func randomSplit(rng *rand.Rand, node *bspNode, minSize int) bool {
	w, h := node.rect.W, node.rect.H
	if w < minSize*2 && h < minSize*2 {
		return false
	}

	var vertical bool
	if w > h && w >= minSize*2 {
		vertical = true
	} else if h > w && h >= minSize*2 {
		vertical = false
	} else if w >= minSize*2 && h >= minSize*2 {
		vertical = rng.Intn(2) == 0
	} else {
		vertical = w >= minSize*2
	}

	if vertical {
		splitAt(node, true, minSize+rng.Intn(w-minSize*2+1))
	} else {
		splitAt(node, false, minSize+rng.Intn(h-minSize*2+1))
	}
	return true
}

func splitAt(node *bspNode, vertical bool, at int) {
	r := node.rect
	var a, b world.Rect
	if vertical {
		a = world.Rect{X: r.X, Y: r.Y, W: at, H: r.H}
		b = world.Rect{X: r.X + at, Y: r.Y, W: r.W - at, H: r.H}
	} else {
		a = world.Rect{X: r.X, Y: r.Y, W: r.W, H: at}
		b = world.Rect{X: r.X, Y: r.Y + at, W: r.W, H: r.H - at}
	}
	node.left = &bspNode{rect: a, depth: node.depth + 1, path: node.path + "a"}
	node.right = &bspNode{rect: b, depth: node.depth + 1, path: node.path + "b"}
}

// find returns the node at path, or nil
func (n *bspNode) find(path string) *bspNode {
	node := n
	for _, step := range path {
		if node == nil || node.isLeaf() {
			return nil
		}
		if step == 'a' {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node
}

// quadrants returns the four tier nodes in difficulty order
func (n *bspNode) quadrants() [4]*bspNode {
	var q [4]*bspNode
	for i, path := range quadrantPaths {
		q[i] = n.find(path)
	}
	return q
}

// difficultyOf returns the tier of a node at depth 2 or deeper
func difficultyOf(path string) int {
	if len(path) < 2 {
		return 0
	}
	for i, qp := range quadrantPaths {
		if path[:2] == qp {
			return i
		}
	}
	return 0
}

// leaves collects leaf nodes left to right
func (n *bspNode) leaves() []*bspNode {
	if n.isLeaf() {
		return []*bspNode{n}
	}
	return append(n.left.leaves(), n.right.leaves()...)
}

// leftmostLeaf follows first children down to a leaf
func (n *bspNode) leftmostLeaf() *bspNode {
	node := n
	for !node.isLeaf() {
		node = node.left
	}
	return node
}

// collectRooms collects all rooms from the BSP tree
func (n *bspNode) collectRooms() []*gameworld.Room {
	var rooms []*gameworld.Room
	for _, leaf := range n.leaves() {
		if leaf.room != nil {
			rooms = append(rooms, leaf.room)
		}
	}
	return rooms
}

// siblingPairs returns the children of every internal node at minDepth or
// deeper, in pre-order
func (n *bspNode) siblingPairs(minDepth int) [][2]*bspNode {
	if n.isLeaf() {
		return nil
	}
	var pairs [][2]*bspNode
	if n.depth >= minDepth {
		pairs = append(pairs, [2]*bspNode{n.left, n.right})
	}
	pairs = append(pairs, n.left.siblingPairs(minDepth)...)
	pairs = append(pairs, n.right.siblingPairs(minDepth)...)
	return pairs
}
