package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/poinav/pkg"
)

// NavSegment is one line of driving directions, either a turn onto a street or a
// proceed along it.
type NavSegment struct {
	command    pkg.NavCommand
	direction  string
	streetName string
	distance   float64
	geoSegment GeoSegment
}

func NewProceedNavSegment(direction, streetName string, distance float64, gs GeoSegment) NavSegment {
	return NavSegment{
		command:    pkg.PROCEED,
		direction:  direction,
		streetName: streetName,
		distance:   distance,
		geoSegment: gs,
	}
}

func NewTurnNavSegment(direction, streetName string) NavSegment {
	return NavSegment{
		command:    pkg.TURN,
		direction:  direction,
		streetName: streetName,
	}
}

func (n NavSegment) GetCommand() pkg.NavCommand {
	return n.command
}

func (n NavSegment) GetDirection() string {
	return n.direction
}

func (n NavSegment) GetStreetName() string {
	return n.streetName
}

// GetDistance is in miles, zero for turns.
func (n NavSegment) GetDistance() float64 {
	return n.distance
}

func (n NavSegment) GetGeoSegment() GeoSegment {
	return n.geoSegment
}

func (n NavSegment) IsTurn() bool {
	return n.command == pkg.TURN
}

func (n NavSegment) String() string {
	if n.command == pkg.TURN {
		return fmt.Sprintf("Turn %s onto %s", n.direction, n.streetName)
	}
	return fmt.Sprintf("Proceed %.2f miles %s on %s", n.distance, n.direction, n.streetName)
}
