package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// PositionReading is one fix reported by the device geolocation watch.
// Accuracy is the error radius in meters; smaller is better.
type PositionReading struct {
	Point     orb.Point `json:"point"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// Latitude returns the reading's latitude.
func (r PositionReading) Latitude() float64 {
	return r.Point.Lat()
}

// Longitude returns the reading's longitude.
func (r PositionReading) Longitude() float64 {
	return r.Point.Lon()
}

// PositionErrorCode mirrors the browser geolocation error codes.
type PositionErrorCode int

const (
	PositionUnknownError     PositionErrorCode = 0
	PositionPermissionDenied PositionErrorCode = 1
	PositionUnavailable      PositionErrorCode = 2
	PositionTimeout          PositionErrorCode = 3
)

const (
	positionPermissionDeniedMsg = "Location permission was denied. Allow location access and try again."
	positionUnavailableMsg      = "Your location is currently unavailable. Check that location services are on."
	positionTimeoutMsg          = "Getting your location took too long. Move to an open area and try again."
	positionUnknownMsg          = "An unknown error occurred while getting your location."
)

// PositionError is a failed geolocation watch callback.
type PositionError struct {
	Code   PositionErrorCode `json:"code"`
	Reason string            `json:"reason,omitempty"`
}

// Error implements the error interface with the user-facing message for the code.
func (e *PositionError) Error() string {
	switch e.Code {
	case PositionPermissionDenied:
		return positionPermissionDeniedMsg
	case PositionUnavailable:
		return positionUnavailableMsg
	case PositionTimeout:
		return positionTimeoutMsg
	default:
		return positionUnknownMsg
	}
}

// PositionUpdate is a single callback of a position watch: either a reading or an error.
type PositionUpdate struct {
	Reading *PositionReading
	Err     *PositionError
}

// WatchOptions mirror the watchPosition options.
type WatchOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// ResolvedLocation is a retained reading plus its reverse-geocoded address.
type ResolvedLocation struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Accuracy    float64   `json:"accuracy"`
	DisplayName string    `json:"displayName"`
	Locality    string    `json:"locality,omitempty"`
	City        string    `json:"city,omitempty"`
	Region      string    `json:"region,omitempty"`
	Country     string    `json:"country,omitempty"`
	CountryCode string    `json:"countryCode,omitempty"`
	Postcode    string    `json:"postcode,omitempty"`
	Source      string    `json:"source"` // Name of the geocoder that answered.
	SampleCount int       `json:"sampleCount"`
	CapturedAt  time.Time `json:"capturedAt"`
}

// GeocodedAddress is the answer of a reverse geocoder.
type GeocodedAddress struct {
	DisplayName string
	Locality    string
	City        string
	Region      string
	Country     string
	CountryCode string
	Postcode    string
	Source      string
}

// LocationProgress is published while a sampling window is running.
type LocationProgress struct {
	Percent      int     `json:"percent"`
	Samples      int     `json:"samples"`
	BestAccuracy float64 `json:"bestAccuracy,omitempty"`
}
