package pkg

// enum of navigate() outcome
type NavResult uint8

const (
	NAV_SUCCESS NavResult = iota
	NAV_BAD_SOURCE
	NAV_BAD_DESTINATION
	NAV_NO_ROUTE
)

func (r NavResult) String() string {
	switch r {
	case NAV_SUCCESS:
		return "success"
	case NAV_BAD_SOURCE:
		return "bad source"
	case NAV_BAD_DESTINATION:
		return "bad destination"
	case NAV_NO_ROUTE:
		return "no route"
	default:
		return "unknown"
	}
}

// enum of nav segment kind
type NavCommand uint8

const (
	PROCEED NavCommand = iota
	TURN
)

func (c NavCommand) String() string {
	if c == TURN {
		return "turn"
	}
	return "proceed"
}

const (
	TURN_LEFT  = "left"
	TURN_RIGHT = "right"
)

// compass headings, counter-clockwise starting from east.
const (
	HEADING_EAST      = "east"
	HEADING_NORTHEAST = "northeast"
	HEADING_NORTH     = "north"
	HEADING_NORTHWEST = "northwest"
	HEADING_WEST      = "west"
	HEADING_SOUTHWEST = "southwest"
	HEADING_SOUTH     = "south"
	HEADING_SOUTHEAST = "southeast"
)

const (
	EARTH_RADIUS_KM = 6371.0
	KM_PER_MILE     = 1.609344

	DEFAULT_ROUTE_CACHE_SIZE = 1 << 12
	DEFAULT_NEARBY_RADIUS    = 0.5 // miles
	DEFAULT_NEARBY_MAX       = 20
)

const (
	DEBUG = false
)
