package domain

import (
	"errors"
	"strconv"
)

var ErrInvalidCoordinates = errors.New("coordinates out of range")

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Report whether the point lies within [-90, 90] latitude and [-180, 180] longitude.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Return coordinates as "lat,lon" for maps URLs.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}
