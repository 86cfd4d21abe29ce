package routing

import (
	"errors"

	"github.com/lintang-b-s/poinav/pkg"
)

var (
	ErrBadSource        = errors.New("start attraction not found")
	ErrBadDestination   = errors.New("destination attraction not found")
	ErrNoRoute          = errors.New("no route between start and destination")
	ErrInconsistentPath = errors.New("search produced a path the segment index cannot connect")
)

// ResultError maps an unsuccessful navigation result to its sentinel error, nil on success.
func ResultError(r pkg.NavResult) error {
	switch r {
	case pkg.NAV_BAD_SOURCE:
		return ErrBadSource
	case pkg.NAV_BAD_DESTINATION:
		return ErrBadDestination
	case pkg.NAV_NO_ROUTE:
		return ErrNoRoute
	default:
		return nil
	}
}
