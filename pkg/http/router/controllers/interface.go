package controllers

import (
	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/spatialindex"
)

type RoutingService interface {
	Navigate(start, destination string) (datastructure.Route, error)
	NearbyAttractions(lat, lon, radius float64) ([]spatialindex.NearbyAttraction, error)
}
