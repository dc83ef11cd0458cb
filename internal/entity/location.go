package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Location names one of the 11 cells of the board.
type Location int

const (
	A1 Location = iota
	B1
	B2
	B3
	C1
	C2
	C3
	D1
	D2
	D3
	E3
)

const (
	// LocationCount is the number of cells on the board.
	LocationCount = 11

	// NoLocation marks the absence of a location, e.g. before the first move.
	NoLocation Location = -1

	// CenterLocation is exempt from the empty-cell bonus and from king capture.
	CenterLocation = C2
)

var ErrUnknownLocation = errors.New("unknown location")

var locationNames = [LocationCount]string{
	"A1", "B1", "B2", "B3", "C1", "C2", "C3", "D1", "D2", "D3", "E3",
}

// Locations returns every location in board order.
func Locations() []Location {
	locations := make([]Location, LocationCount)
	for i := range locations {
		locations[i] = Location(i)
	}

	return locations
}

// ParseLocation - resolves a cell name such as "b2" into a Location.
func ParseLocation(name string) (Location, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, locationName := range locationNames {
		if locationName == name {
			return Location(i), nil
		}
	}

	return NoLocation, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
}

func (that Location) IsValid() bool {
	return that >= A1 && that <= E3
}

func (that Location) IsCenter() bool {
	return that == CenterLocation
}

func (that Location) String() string {
	if !that.IsValid() {
		return fmt.Sprintf("Location(%d)", int(that))
	}

	return locationNames[that]
}
