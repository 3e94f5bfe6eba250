// Package grid is the orthogonal neighbor model every propagation step is built on
package grid

import "github.com/lixenwraith/territory/core"

// Direction is one of the four orthogonal steps, DirNone marks an origin without heading
type Direction int8

const (
	DirNone Direction = -1
	DirN    Direction = 0
	DirE    Direction = 1
	DirS    Direction = 2
	DirW    Direction = 3

	DirCount = 4
)

// DirVectors is indexed by Direction, order N, E, S, W (y grows downward)
var DirVectors = [DirCount][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}


// Bounds is the width/height of a map, valid coordinates are 0 <= x < Width, 0 <= y < Height
type Bounds struct {
	Width, Height int
}

// Contains reports whether p lies within the bounds
func (b Bounds) Contains(p core.Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.Width && p.Y < b.Height
}

// Area returns the number of cells, zero for degenerate bounds
func (b Bounds) Area() int {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// Index flattens p into row-major order, caller guarantees Contains(p)
func (b Bounds) Index(p core.Position) int {
	return p.Y*b.Width + p.X
}

// Step returns the position one cell from p in direction d
func Step(p core.Position, d Direction) core.Position {
	if d < 0 || d >= DirCount {
		return p
	}
	v := DirVectors[d]
	return p.Add(v[0], v[1])
}

// Neighbors returns the in-bounds orthogonal neighbors of p in N, E, S, W order
// No diagonals; at most four results, never duplicates
func Neighbors(p core.Position, b Bounds) []core.Position {
	out := make([]core.Position, 0, DirCount)
	for d := Direction(0); d < DirCount; d++ {
		n := Step(p, d)
		if b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

func (d Direction) String() string {
	switch d {
	case DirN:
		return "N"
	case DirE:
		return "E"
	case DirS:
		return "S"
	case DirW:
		return "W"
	}
	return "-"
}
