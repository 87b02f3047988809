package kv

import (
	"lintang/pathplanner/pkg/datastructure"

	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
)

// CachedPlan hasil plan yang disimpan di pebble. Found false berarti goal tidak reachable.
type CachedPlan struct {
	Start    datastructure.Coordinate
	Goal     datastructure.Coordinate
	Path     []datastructure.Coordinate
	Expanded int64
	Found    bool
}

func Encode(p CachedPlan) ([]byte, error) {
	return binary.Marshal(p)
}

func Decode(bb []byte) (CachedPlan, error) {
	var p CachedPlan
	err := binary.Unmarshal(bb, &p)
	return p, err
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}

func CompressPlan(p CachedPlan) ([]byte, error) {
	bb, err := Encode(p)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func LoadPlan(bbCompressed []byte) (CachedPlan, error) {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return CachedPlan{}, err
	}
	return Decode(bb)
}
