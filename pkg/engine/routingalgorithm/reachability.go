package routingalgorithm

import "lintang/pathplanner/pkg/datastructure"

type cellBounds struct {
	minLat, maxLat int64
	minLon, maxLon int64
}

func (b cellBounds) outside(c datastructure.Cell) bool {
	return c.Lat < b.minLat || c.Lat > b.maxLat || c.Lon < b.minLon || c.Lon > b.maxLon
}

func onSameLattice(a, b datastructure.Cell) bool {
	return (a.Lat-b.Lat)%GridPitch == 0 && (a.Lon-b.Lon)%GridPitch == 0
}

// isGoalReachable memutuskan secara eksak apakah A* di lattice tak hingga akan pernah pop goal.
// Lattice tanpa batas berarti goal yang tidak bisa dicapai membuat frontier tumbuh terus, jadi kasus itu
// dideteksi di sini dulu. Hasil path A* untuk goal yang reachable tidak berubah.
//
// Komplemen dari himpunan blocked yang finite cuma punya satu komponen tak hingga. Cell di luar bounding box
// blocked pasti ada di komponen itu, dan region yang dikurung k cell blocked ukurannya < k*k.
func isGoalReachable(from, to datastructure.Cell, blocked map[datastructure.Cell]struct{}) bool {
	if from == to {
		return true
	}
	if !onSameLattice(from, to) {
		return false
	}
	if _, ok := blocked[to]; ok {
		return false
	}

	walls := make(map[datastructure.Cell]struct{}, len(blocked))
	var bounds cellBounds
	for b := range blocked {
		if !onSameLattice(from, b) {
			continue
		}
		if len(walls) == 0 {
			bounds = cellBounds{b.Lat, b.Lat, b.Lon, b.Lon}
		}
		walls[b] = struct{}{}
		bounds.minLat = min(bounds.minLat, b.Lat)
		bounds.maxLat = max(bounds.maxLat, b.Lat)
		bounds.minLon = min(bounds.minLon, b.Lon)
		bounds.maxLon = max(bounds.maxLon, b.Lon)
	}
	if len(walls) < 4 {
		// butuh minimal 4 cell untuk mengurung satu cell
		return true
	}
	limit := len(walls)*len(walls) + 1

	startRegion, startEscaped := floodFill(from, walls, bounds, limit)
	if _, ok := startRegion[to]; ok {
		return true
	}
	if !startEscaped {
		return false
	}
	_, goalEscaped := floodFill(to, walls, bounds, limit)
	return goalEscaped
}

// floodFill BFS 4 arah dari origin. origin sendiri boleh blocked (start yang blocked tetap di-expand A*).
// escaped true kalau region menyentuh komponen tak hingga.
func floodFill(origin datastructure.Cell, walls map[datastructure.Cell]struct{}, bounds cellBounds,
	limit int) (region map[datastructure.Cell]struct{}, escaped bool) {
	region = map[datastructure.Cell]struct{}{origin: {}}
	queue := []datastructure.Cell{origin}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if bounds.outside(curr) || len(region) > limit {
			return region, true
		}
		for _, d := range gridDirections {
			nb := curr.Add(d[0], d[1])
			if _, ok := walls[nb]; ok {
				continue
			}
			if _, ok := region[nb]; ok {
				continue
			}
			region[nb] = struct{}{}
			queue = append(queue, nb)
		}
	}
	return region, false
}
