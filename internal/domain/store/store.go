// Package store defines the store roster consumed by the order generator.
package store

import "github.com/go-faster/errors"

// ErrEmptyRoster is returned when a run is configured without any store.
var ErrEmptyRoster = errors.New("store roster is empty")

// Size is the physical size class of a store.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// Tier is the traffic tier (popularity) of a store.
type Tier string

const (
	TierHigh   Tier = "High"
	TierMedium Tier = "Medium"
	TierLow    Tier = "Low"
)

// Parking is the parking capacity class of a store.
type Parking string

const (
	ParkingVeryLimited Parking = "Very Limited"
	ParkingLimited     Parking = "Limited"
	ParkingModerate    Parking = "Moderate"
	ParkingAdequate    Parking = "Adequate"
	ParkingSpacious    Parking = "Spacious"
)

// Store is a single supermarket location.
type Store struct {
	ID           string
	Region       string
	Neighborhood string
	Population   int
	Size         Size
	Parking      Parking
	Tier         Tier
}
