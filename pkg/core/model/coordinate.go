package model

// Coordinate represents a geographical location with a latitude and
// longitude. It is the raw location descriptor of a vehicle as
// supplied by its owner; the human-readable address form is derived
// from it at read time and is never persisted.
type Coordinate struct {
	Lat float64 `json:"lat"` // latitude of the geo-location
	Lon float64 `json:"lon"` // longitude of the geo-location
}
