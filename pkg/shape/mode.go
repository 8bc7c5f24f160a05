// Package shape turns an ordered anchor list into the canonical parameters
// of one of four parametric shapes.
package shape

import (
	"fmt"
	"strings"
)

// Mode selects which shape an anchor list describes.
type Mode int

const (
	Box       Mode = iota // axis-aligned box over the anchors
	Cylinder              // vertical cylinder around the first anchor
	Ellipsoid             // ellipsoid, see EllipsoidMode
	Tube                  // tube along a Catmull-Rom curve through the anchors
)

// Modes lists every shape mode in cycling order.
var Modes = []Mode{Box, Cylinder, Ellipsoid, Tube}

func (m Mode) String() string {
	switch m {
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case Ellipsoid:
		return "ellipsoid"
	case Tube:
		return "tube"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name back into a Mode. "rectangle" and "spline"
// are accepted as aliases of box and tube.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "box", "rectangle":
		return Box, nil
	case "cylinder":
		return Cylinder, nil
	case "ellipsoid":
		return Ellipsoid, nil
	case "tube", "spline":
		return Tube, nil
	}
	return 0, fmt.Errorf("invalid shape mode %q, expected box, cylinder, ellipsoid, or tube", s)
}

// EllipsoidMode alters how an ellipsoid is derived from the anchors.
type EllipsoidMode int

const (
	// FitToBoundingBox inscribes the ellipsoid in the anchors' bounding box.
	FitToBoundingBox EllipsoidMode = iota
	// CenterAndRadius centers the ellipsoid on the first anchor; the
	// farthest anchor in the XZ plane sets the horizontal radius.
	CenterAndRadius
)

func (m EllipsoidMode) String() string {
	switch m {
	case FitToBoundingBox:
		return "fit"
	case CenterAndRadius:
		return "center"
	default:
		return "unknown"
	}
}

// ParseEllipsoidMode converts a sub-mode name back into an EllipsoidMode.
func ParseEllipsoidMode(s string) (EllipsoidMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fit", "fit-to-box", "box":
		return FitToBoundingBox, nil
	case "center", "center-radius", "radius":
		return CenterAndRadius, nil
	}
	return 0, fmt.Errorf("invalid ellipsoid mode %q, expected fit or center", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m EllipsoidMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *EllipsoidMode) UnmarshalText(b []byte) error {
	v, err := ParseEllipsoidMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
