package routingalgorithm

import (
	"container/heap"
	"errors"
	"fmt"
	"lintang/pathplanner/pkg/datastructure"
	"lintang/pathplanner/pkg/util"
)

// GridPitch jarak antar cell lattice (0.001 derajat) dalam unit fixed-point datastructure.Cell.
const GridPitch int64 = 1000

var (
	// ErrNoPath satu-satunya failure mode planner: goal tidak bisa dicapai dari start.
	ErrNoPath = errors.New("no path")
	// ErrSearchLimit dikembalikan kalau batas ekspansi (WithMaxExpansions) tercapai sebelum goal ditemukan.
	ErrSearchLimit = fmt.Errorf("%w: search expansion limit reached", ErrNoPath)
)

// urutan tetangga: +lat, -lat, +lon, -lon
var gridDirections = [4][2]int64{
	{GridPitch, 0},
	{-GridPitch, 0},
	{0, GridPitch},
	{0, -GridPitch},
}

type GridPathResult struct {
	Path     []datastructure.Coordinate
	Expanded int
}

type gridOptions struct {
	maxExpansions int
}

type Option func(*gridOptions)

// WithMaxExpansions membatasi jumlah cell yang di-expand. 0 berarti tanpa batas.
func WithMaxExpansions(n int) Option {
	return func(o *gridOptions) { o.maxExpansions = n }
}

type GridRouteAlgorithm struct {
	opts gridOptions
}

func NewGridRouteAlgorithm(opts ...Option) *GridRouteAlgorithm {
	o := gridOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return &GridRouteAlgorithm{opts: o}
}

// gridHeuristic manhattan distance dalam derajat antara cell dan goal.
func gridHeuristic(a, b datastructure.Cell) float64 {
	return float64(util.Abs(a.Lat-b.Lat)+util.Abs(a.Lon-b.Lon)) / datastructure.CellScale
}

type cameFromPair struct {
	prev    datastructure.Cell
	hasPrev bool
}

// GridAStar A* di lattice 2D tak hingga dengan pitch 0.001, gerak 4 arah, tiap langkah cost 1.
// start, goal, dan blocked dibulatkan ke 6 digit desimal dulu; koordinat yang tidak sejajar dengan lattice start
// tidak di-snap, jadi goal seperti itu menghasilkan ErrNoPath.
// Start atau goal yang tidak bisa jadi Cell (NaN, Inf, di luar datastructure.MaxCellDegrees) menghasilkan ErrNoPath;
// blocked seperti itu diabaikan karena tidak pernah dilewati.
// Tidak ada closed set: cell yang ditemukan lagi dengan cost lebih kecil akan di-expand ulang.
func (rt *GridRouteAlgorithm) GridAStar(start, goal datastructure.Coordinate, blocked []datastructure.Coordinate) (GridPathResult, error) {
	from, okFrom := datastructure.NewCellChecked(start)
	to, okTo := datastructure.NewCellChecked(goal)
	if !okFrom || !okTo {
		return GridPathResult{}, ErrNoPath
	}

	blockedSet := make(map[datastructure.Cell]struct{}, len(blocked))
	for _, b := range blocked {
		cell, ok := datastructure.NewCellChecked(b)
		if !ok {
			continue
		}
		blockedSet[cell] = struct{}{}
	}

	if !isGoalReachable(from, to, blockedSet) {
		return GridPathResult{}, ErrNoPath
	}

	pq := &gridPriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &gridPQNode{rank: 0, cell: from})

	costSoFar := map[datastructure.Cell]int{from: 0}
	cameFrom := map[datastructure.Cell]cameFromPair{from: {}}

	expanded := 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*gridPQNode)
		if current.cell == to {
			return GridPathResult{
				Path:     reconstructGridPath(cameFrom, to),
				Expanded: expanded,
			}, nil
		}

		if rt.opts.maxExpansions > 0 && expanded >= rt.opts.maxExpansions {
			return GridPathResult{Expanded: expanded}, ErrSearchLimit
		}
		expanded++

		for _, d := range gridDirections {
			nb := current.cell.Add(d[0], d[1])
			if _, ok := blockedSet[nb]; ok {
				continue
			}

			newCost := costSoFar[current.cell] + 1
			oldCost, ok := costSoFar[nb]
			if !ok || newCost < oldCost {
				costSoFar[nb] = newCost
				cameFrom[nb] = cameFromPair{prev: current.cell, hasPrev: true}
				priority := float64(newCost) + gridHeuristic(nb, to)
				heap.Push(pq, &gridPQNode{rank: priority, cell: nb})
			}
		}
	}

	return GridPathResult{Expanded: expanded}, ErrNoPath
}

func reconstructGridPath(cameFrom map[datastructure.Cell]cameFromPair, to datastructure.Cell) []datastructure.Coordinate {
	path := []datastructure.Coordinate{}
	curr := to
	for {
		path = append(path, curr.Coordinate())
		pair := cameFrom[curr]
		if !pair.hasPrev {
			break
		}
		curr = pair.prev
	}
	util.ReverseG(path)
	return path
}
