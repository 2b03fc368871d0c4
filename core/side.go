package core

// Side is a signed direction: tilt, input and fall direction all share it
type Side int8

const (
	SideLeft  Side = -1
	SideNone  Side = 0
	SideRight Side = 1
)

// Sides lists the two real directions in a stable order
var Sides = [2]Side{SideLeft, SideRight}

// SideOf maps a signed value to the side it leans toward, zero counts as left
func SideOf(v float64) Side {
	if v > 0 {
		return SideRight
	}
	return SideLeft
}

// Sign returns -1, 0 or 1
func (s Side) Sign() float64 {
	return float64(s)
}

// Opposite returns the other direction, SideNone stays SideNone
func (s Side) Opposite() Side {
	return -s
}

// Index maps left/right to 0/1 for per-side arrays, SideNone returns -1
func (s Side) Index() int {
	switch s {
	case SideLeft:
		return 0
	case SideRight:
		return 1
	default:
		return -1
	}
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// MarshalText encodes the side by name
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
