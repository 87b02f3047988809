package geo

import (
	"lintang/pathplanner/pkg/datastructure"

	"github.com/golang/geo/s2"
)

const earthRadiusM = 6371008.8

// CalculateHaversineDistance jarak great-circle (meter) antara dua titik.
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	from := s2.LatLngFromDegrees(latOne, longOne)
	to := s2.LatLngFromDegrees(latTwo, longTwo)
	return from.Distance(to).Radians() * earthRadiusM
}

// PathLength total panjang path (meter).
func PathLength(path []datastructure.Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += CalculateHaversineDistance(path[i-1].Lat, path[i-1].Lon, path[i].Lat, path[i].Lon)
	}
	return total
}
