package datastructure

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// NewCoordinateFromPair dari [lat, lon] (format request api).
func NewCoordinateFromPair(pair []float64) Coordinate {
	return Coordinate{
		Lat: pair[0],
		Lon: pair[1],
	}
}

func (c Coordinate) Pair() []float64 {
	return []float64{c.Lat, c.Lon}
}
