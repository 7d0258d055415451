package geocode

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("geocode not found")

// Geocoder resolves a coordinate to a human-readable address. Used to fill
// in missing address fields on submitted reports; scoring never reads the
// resolved address.
type Geocoder interface {
	Reverse(ctx context.Context, lat float64, lng float64) (Place, error)
}

type Place struct {
	Address   string
	AdminArea string
	RoadName  string
}

// ShouldReverse reports whether a submitted location still needs address
// resolution.
func ShouldReverse(address string, lat float64, lng float64) bool {
	if address != "" {
		return false
	}
	return lat != 0 || lng != 0
}
