package controllers

import (
	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/spatialindex"
)

type navigateRequest struct {
	Start       string `json:"start" validate:"required,max=256"`
	Destination string `json:"destination" validate:"required,max=256"`
}

type nearbyRequest struct {
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `json:"lon" validate:"min=-180,max=180"`
	Radius float64 `json:"radius" validate:"min=0,max=50"`
}

type coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func newCoordinate(c datastructure.GeoCoord) coordinate {
	return coordinate{Lat: c.Lat, Lon: c.Lon}
}

type navInstruction struct {
	Type        string      `json:"type"`
	Direction   string      `json:"direction"`
	Street      string      `json:"street"`
	Distance    float64     `json:"distance,omitempty"`
	Start       *coordinate `json:"start,omitempty"`
	End         *coordinate `json:"end,omitempty"`
	Instruction string      `json:"instruction"`
}

func newNavInstructions(directions []datastructure.NavSegment) []navInstruction {
	instructions := make([]navInstruction, 0, len(directions))
	for _, d := range directions {
		ins := navInstruction{
			Type:        d.GetCommand().String(),
			Direction:   d.GetDirection(),
			Street:      d.GetStreetName(),
			Instruction: d.String(),
		}
		if !d.IsTurn() {
			gs := d.GetGeoSegment()
			start, end := newCoordinate(gs.Start), newCoordinate(gs.End)
			ins.Distance = d.GetDistance()
			ins.Start = &start
			ins.End = &end
		}
		instructions = append(instructions, ins)
	}
	return instructions
}

type navigateResponse struct {
	Start       string           `json:"start"`
	Destination string           `json:"destination"`
	Distance    float64          `json:"distance"`
	Polyline    string           `json:"polyline"`
	Directions  []navInstruction `json:"directions"`
}

func newNavigateResponse(route datastructure.Route) navigateResponse {
	return navigateResponse{
		Start:       route.GetStart(),
		Destination: route.GetDestination(),
		Distance:    route.GetDistance(),
		Polyline:    route.GetPolyline(),
		Directions:  newNavInstructions(route.GetDirections()),
	}
}

type nearbyAttraction struct {
	Name     string     `json:"name"`
	Location coordinate `json:"location"`
	Distance float64    `json:"distance"`
}

func newNearbyResponse(attractions []spatialindex.NearbyAttraction) []nearbyAttraction {
	resp := make([]nearbyAttraction, 0, len(attractions))
	for _, a := range attractions {
		resp = append(resp, nearbyAttraction{
			Name:     a.GetName(),
			Location: newCoordinate(a.GetCoord()),
			Distance: a.GetDistance(),
		})
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
