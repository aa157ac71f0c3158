package systems

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
)

// pathNode is one entry of the A* open list.
type pathNode struct {
	pos    domain.GridPosition
	g      int // cost from start
	f      int // g + Manhattan heuristic
	seq    int // discovery order, breaks f ties deterministically
	parent *pathNode
	index  int // heap bookkeeping
}

// openList implements heap.Interface ordered by f, then discovery order.
type openList []*pathNode

func (o openList) Len() int { return len(o) }

func (o openList) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}

func (o openList) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *openList) Push(x interface{}) {
	n := len(*o)
	node := x.(*pathNode)
	node.index = n
	*o = append(*o, node)
}

func (o *openList) Pop() interface{} {
	old := *o
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*o = old[0 : n-1]
	return node
}

// FindPath runs A* over the grid with four-directional movement, unit step
// cost and the Manhattan heuristic. The returned path includes both start
// and goal; nil means no path.
//
// Not-found cases: start or goal out of bounds, goal not walkable, or the
// node-expansion budget exhausted (maxIterations <= 0 uses the default).
// The budget collapse is indistinguishable from a hard impossibility on
// purpose: the caller is free to retry with a larger budget.
//
// start == goal short-circuits to a one-element path even when the tile is
// not walkable; that is a no-op marker, not a walkability bypass.
func FindPath(g *domain.Grid, start, goal domain.GridPosition, maxIterations int) []domain.GridPosition {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}
	if start == goal {
		return []domain.GridPosition{start}
	}
	if !g.IsWalkable(goal) {
		return nil
	}
	if maxIterations <= 0 {
		maxIterations = domain.DefaultMaxPathIterations
	}

	open := make(openList, 0, 64)
	heap.Init(&open)

	seq := 0
	startNode := &pathNode{pos: start, g: 0, f: start.ManhattanTo(goal), seq: seq}
	heap.Push(&open, startNode)

	bestG := map[int]int{g.Index(start): 0}
	closed := make(map[int]bool)

	expanded := 0
	for open.Len() > 0 {
		node := heap.Pop(&open).(*pathNode)
		idx := g.Index(node.pos)
		if closed[idx] {
			continue
		}
		closed[idx] = true

		expanded++
		if expanded > maxIterations {
			logger.Log.WithFields(logrus.Fields{
				"component": "pathfinding",
				"expanded":  expanded,
			}).Debug("A* iteration budget exhausted")
			return nil
		}

		if node.pos == goal {
			return reconstruct(node)
		}

		for _, n := range g.OrthogonalNeighbors(node.pos) {
			nIdx := g.Index(n)
			if closed[nIdx] || !g.IsWalkable(n) {
				continue
			}
			tentative := node.g + 1
			if best, seen := bestG[nIdx]; seen && tentative >= best {
				continue
			}
			bestG[nIdx] = tentative
			seq++
			heap.Push(&open, &pathNode{
				pos:    n,
				g:      tentative,
				f:      tentative + n.ManhattanTo(goal),
				seq:    seq,
				parent: node,
			})
		}
	}

	return nil
}

func reconstruct(node *pathNode) []domain.GridPosition {
	length := 0
	for n := node; n != nil; n = n.parent {
		length++
	}
	path := make([]domain.GridPosition, length)
	for n := node; n != nil; n = n.parent {
		length--
		path[length] = n.pos
	}
	return path
}

// NextStep returns the first cell of the path from one position towards
// another, i.e. the second path element. The second result is false when
// from == to or no path exists.
func NextStep(g *domain.Grid, from, to domain.GridPosition) (domain.GridPosition, bool) {
	path := FindPath(g, from, to, domain.DefaultMaxPathIterations)
	if len(path) < 2 {
		return domain.GridPosition{}, false
	}
	return path[1], true
}

// ReachablePositions flood-fills walkable orthogonal neighbors from start,
// bounded by path length <= maxDistance. The start cell itself is excluded
// and the result carries no duplicates. Results come out in breadth-first
// discovery order, which is deterministic.
func ReachablePositions(g *domain.Grid, start domain.GridPosition, maxDistance int) []domain.GridPosition {
	if maxDistance <= 0 || !g.InBounds(start) {
		return nil
	}

	type frontier struct {
		pos   domain.GridPosition
		depth int
	}

	visited := map[int]bool{g.Index(start): true}
	queue := []frontier{{pos: start, depth: 0}}
	var out []domain.GridPosition

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth == maxDistance {
			continue
		}
		for _, n := range g.OrthogonalNeighbors(cur.pos) {
			idx := g.Index(n)
			if visited[idx] || !g.IsWalkable(n) {
				continue
			}
			visited[idx] = true
			out = append(out, n)
			queue = append(queue, frontier{pos: n, depth: cur.depth + 1})
		}
	}

	return out
}
