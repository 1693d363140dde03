package datastructure

import (
	"errors"
	"fmt"
)

var ErrUnknownMode = errors.New("unknown travel mode")

// Mode travel mode. setiap mode punya allow-list road class (fclass) sendiri.
type Mode int

const (
	ModeBikeFoot Mode = iota
	ModeCar
)

var bikeFootClasses = []string{"footway", "pedestrian", "path", "cycleway", "steps", "service"}

var carClasses = []string{"motorway", "trunk", "primary", "secondary", "tertiary", "residential"}

func ParseMode(mode string) (Mode, error) {
	switch mode {
	case "bikeFoot":
		return ModeBikeFoot, nil
	case "car":
		return ModeCar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeBikeFoot:
		return "bikeFoot"
	case ModeCar:
		return "car"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// AllowedClasses road class yang boleh dilewati mode ini. mode di luar enum -> nil (tidak ada edge yang masuk graph).
func (m Mode) AllowedClasses() []string {
	switch m {
	case ModeBikeFoot:
		return bikeFootClasses
	case ModeCar:
		return carClasses
	default:
		return nil
	}
}

func (m Mode) Allows(fclass string) bool {
	for _, c := range m.AllowedClasses() {
		if c == fclass {
			return true
		}
	}
	return false
}

// Modes semua travel mode yang disupport.
func Modes() []Mode {
	return []Mode{ModeBikeFoot, ModeCar}
}
