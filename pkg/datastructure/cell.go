package datastructure

import "math"

// CellScale jumlah unit fixed-point per derajat (6 digit desimal).
const CellScale = 1_000_000

// Cell identitas lattice: koordinat yang dibulatkan ke 6 digit desimal, disimpan sebagai integer
// supaya perbandingan & key map tidak kena masalah floating point.
type Cell struct {
	Lat int64
	Lon int64
}

// MaxCellDegrees batas |lat| dan |lon| yang masih bisa jadi Cell. Di bawah 2^62 unit fixed-point, jadi selisih
// dua cell dan langkah ke tetangga tidak overflow int64.
const MaxCellDegrees = 4e12

func scaleToCell(v float64) int64 {
	return int64(math.Round(v * CellScale))
}

func inCellRange(v float64) bool {
	// NaN gagal di perbandingan ini
	return v >= -MaxCellDegrees && v <= MaxCellDegrees
}

// NewCell membulatkan koordinat mentah ke cell. Dua koordinat yang bulat ke pasangan 6 digit yang sama
// adalah cell yang sama. Koordinat di luar MaxCellDegrees harus dicek dulu pakai NewCellChecked.
func NewCell(c Coordinate) Cell {
	return Cell{Lat: scaleToCell(c.Lat), Lon: scaleToCell(c.Lon)}
}

// NewCellChecked seperti NewCell, tapi ok false kalau lat/lon NaN, Inf, atau di luar MaxCellDegrees.
func NewCellChecked(c Coordinate) (Cell, bool) {
	if !inCellRange(c.Lat) || !inCellRange(c.Lon) {
		return Cell{}, false
	}
	return NewCell(c), true
}

func (c Cell) Coordinate() Coordinate {
	return Coordinate{
		Lat: float64(c.Lat) / CellScale,
		Lon: float64(c.Lon) / CellScale,
	}
}

func (c Cell) Add(dLat, dLon int64) Cell {
	return Cell{Lat: c.Lat + dLat, Lon: c.Lon + dLon}
}

// Less urutan leksikografis (lat, lon).
func (c Cell) Less(o Cell) bool {
	if c.Lat != o.Lat {
		return c.Lat < o.Lat
	}
	return c.Lon < o.Lon
}
