// Package geo resolves distances between named places.
//
// The default implementation geocodes place names through a Nominatim
// endpoint and routes between the coordinates through an OSRM endpoint.
// Lookups perform network I/O; callers should bound them with a context
// timeout. There is no caching and no retrying: a failed lookup is an
// ordinary error for the caller to surface.
package geo

import "context"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrDistanceLookup indicates the provider could not resolve a place or the
// routing call failed. It is never retried and carries no fallback value.
var ErrDistanceLookup = constError("distance lookup failed")

// DistanceProvider resolves the travel distance in kilometers between two
// place names.
type DistanceProvider interface {
	Distance(ctx context.Context, origin, destination string) (float64, error)
}
