package mapgen

import (
	"math/rand"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/grid"
)

// fillMaze carves a recursive-backtracker maze: rooms sit on odd coordinates, walls between them
// Braiding reopens walls behind dead ends to add cycles
func fillMaze(blocked []bool, b grid.Bounds, seed int64, braiding float64) {
	if b.Width < 3 || b.Height < 3 {
		return
	}
	for i := range blocked {
		blocked[i] = true
	}

	rng := rand.New(rand.NewSource(seed))
	open := func(p core.Position) { blocked[b.Index(p)] = false }
	isRoom := func(p core.Position) bool {
		return p.X%2 == 1 && p.Y%2 == 1 && p.X < b.Width-1 && p.Y < b.Height-1
	}

	start := core.Pos(1, 1)
	open(start)
	stack := []core.Position{start}
	dirs := []grid.Direction{grid.DirN, grid.DirE, grid.DirS, grid.DirW}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		carved := false
		for _, d := range dirs {
			wall := grid.Step(cur, d)
			next := grid.Step(wall, d)
			if !isRoom(next) || !blocked[b.Index(next)] {
				continue
			}
			open(wall)
			open(next)
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}

	if braiding <= 0 {
		return
	}
	for y := 1; y < b.Height-1; y += 2 {
		for x := 1; x < b.Width-1; x += 2 {
			room := core.Pos(x, y)
			if !isRoom(room) || openNeighbors(blocked, b, room) != 1 || rng.Float64() >= braiding {
				continue
			}
			for _, d := range dirs {
				wall := grid.Step(room, d)
				if isRoom(grid.Step(wall, d)) && blocked[b.Index(wall)] {
					open(wall)
					break
				}
			}
		}
	}
}

func openNeighbors(blocked []bool, b grid.Bounds, p core.Position) int {
	n := 0
	for _, nb := range grid.Neighbors(p, b) {
		if !blocked[b.Index(nb)] {
			n++
		}
	}
	return n
}

// connectStarts carves an L-shaped corridor from every start to the first one
func connectStarts(blocked []bool, b grid.Bounds, starts []core.Position) {
	if len(starts) < 2 {
		return
	}
	hub := starts[0]
	for _, s := range starts[1:] {
		x, y := s.X, s.Y
		for x != hub.X {
			blocked[b.Index(core.Pos(x, y))] = false
			if x < hub.X {
				x++
			} else {
				x--
			}
		}
		for y != hub.Y {
			blocked[b.Index(core.Pos(x, y))] = false
			if y < hub.Y {
				y++
			} else {
				y--
			}
		}
	}
}
