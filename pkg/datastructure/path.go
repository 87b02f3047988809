package datastructure

import "github.com/twpayne/go-polyline"

// RenderPath encode path jadi google encoded polyline.
func RenderPath(path []Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
