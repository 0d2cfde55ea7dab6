package engine

import "slices"

// MinRun is the shortest straight line of equal runes that counts as a match.
const MinRun = 3

// Cluster is a connected group of matched runes sharing one value.
// Indices are sorted ascending.
type Cluster struct {
	Element Element
	Level   Level
	Indices []int
}

// Len returns the number of runes in the cluster.
func (c Cluster) Len() int {
	return len(c.Indices)
}

// Detect finds all clusters on g.
//
// A cell is matched when it lies on a horizontal or vertical run of at
// least MinRun value-equal runes. Matched cells are then grouped by
// 4-directional flood fill over value-equal matched neighbours, so an L or
// T of crossing runs forms one cluster, and a matched cell can join a
// cluster through a neighbour even if that neighbour's own run was in the
// other direction. Clusters come back ordered by their smallest index.
func Detect(g *Grid) []Cluster {
	marked := markRuns(g)

	var clusters []Cluster
	visited := make([]bool, g.Len())
	for seed := 0; seed < g.Len(); seed++ {
		if !marked[seed] || visited[seed] {
			continue
		}
		clusters = append(clusters, flood(g, seed, marked, visited))
	}
	return clusters
}

// markRuns flags every cell that sits on a run of MinRun or more.
func markRuns(g *Grid) []bool {
	n := g.Size()
	marked := make([]bool, g.Len())

	scan := func(at func(i int) int) {
		start := 0
		for i := 1; i <= n; i++ {
			if i < n && g.At(at(i)).SameValue(g.At(at(start))) {
				continue
			}
			if i-start >= MinRun && !g.At(at(start)).IsZero() {
				for k := start; k < i; k++ {
					marked[at(k)] = true
				}
			}
			start = i
		}
	}

	for y := 0; y < n; y++ {
		scan(func(i int) int { return g.Index(i, y) })
	}
	for x := 0; x < n; x++ {
		scan(func(i int) int { return g.Index(x, i) })
	}
	return marked
}

// flood collects the cluster containing seed with an explicit work queue.
func flood(g *Grid, seed int, marked, visited []bool) Cluster {
	value := g.At(seed)
	n := g.Size()

	queue := []int{seed}
	visited[seed] = true
	var members []int

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		members = append(members, curr)

		x, y := curr%n, curr/n
		neighbours := [4][2]int{{x, y - 1}, {x, y + 1}, {x - 1, y}, {x + 1, y}}
		for _, nb := range neighbours {
			nx, ny := nb[0], nb[1]
			if nx < 0 || ny < 0 || nx >= n || ny >= n {
				continue
			}
			next := g.Index(nx, ny)
			if visited[next] || !marked[next] || !g.At(next).SameValue(value) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	slices.Sort(members)
	return Cluster{Element: value.Element, Level: value.Level, Indices: members}
}

// Move is a candidate swap between two adjacent cells.
type Move struct {
	From, To int
}

// FindMoves lists every adjacent swap that would produce at least one match.
// Each pair appears once with From < To.
func FindMoves(g *Grid) []Move {
	n := g.Size()
	var moves []Move
	try := func(a, b int) {
		if g.At(a).SameValue(g.At(b)) {
			return
		}
		g.Swap(a, b)
		if onRun(g, a) || onRun(g, b) {
			moves = append(moves, Move{From: a, To: b})
		}
		g.Swap(a, b)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := g.Index(x, y)
			if x+1 < n {
				try(i, g.Index(x+1, y))
			}
			if y+1 < n {
				try(i, g.Index(x, y+1))
			}
		}
	}
	return moves
}

// onRun reports whether index sits on a horizontal or vertical run.
func onRun(g *Grid, index int) bool {
	r := g.At(index)
	if r.IsZero() {
		return false
	}
	c := g.Coord(index)
	count := func(dx, dy int) int {
		k := 0
		for x, y := c.X+dx, c.Y+dy; g.AtXY(x, y).SameValue(r); x, y = x+dx, y+dy {
			k++
		}
		return k
	}
	return 1+count(-1, 0)+count(1, 0) >= MinRun || 1+count(0, -1)+count(0, 1) >= MinRun
}
