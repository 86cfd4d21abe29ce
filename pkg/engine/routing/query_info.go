package routing

import (
	da "github.com/lintang-b-s/poinav/pkg/datastructure"
)

// vertexInfo. search state of one coordinate during a single Navigate call.
type vertexInfo struct {
	prev    da.GeoCoord
	hasPrev bool // false only for the start
	dist    float64
	settled bool
}

func newStartInfo() vertexInfo {
	return vertexInfo{}
}

func newVertexInfo(prev da.GeoCoord, dist float64) vertexInfo {
	return vertexInfo{
		prev:    prev,
		hasPrev: true,
		dist:    dist,
	}
}

func (vi *vertexInfo) getDist() float64 {
	return vi.dist
}

func (vi *vertexInfo) isSettled() bool {
	return vi.settled
}

func (vi *vertexInfo) settle() {
	vi.settled = true
}
