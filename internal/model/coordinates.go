package model

import (
	"fmt"
	"regexp"
)

// coordPattern matches the stored coordinate format "X:<x> Y:<y> Z:<z>".
// Components are any non-whitespace run, so size codes like "1.25" or
// "-0.005" both parse.
var coordPattern = regexp.MustCompile(`X:(\S+)\s+Y:(\S+)\s+Z:(\S+)`)

// Coordinates holds the three work offsets of a setup sheet.
// Values are kept as entered rather than parsed to floats: machinists
// record offsets with significant trailing zeros.
type Coordinates struct {
	X string
	Y string
	Z string
}

// ParseCoordinates extracts X/Y/Z components from the stored textual form.
// Returns false if the text does not match the fixed pattern.
func ParseCoordinates(s string) (Coordinates, bool) {
	m := coordPattern.FindStringSubmatch(s)
	if m == nil {
		return Coordinates{}, false
	}
	return Coordinates{X: m[1], Y: m[2], Z: m[3]}, true
}

// String formats the coordinates in the stored form "X:<x> Y:<y> Z:<z>".
func (c Coordinates) String() string {
	return fmt.Sprintf("X:%s Y:%s Z:%s", c.X, c.Y, c.Z)
}

// IsComplete returns true when all three components are present.
func (c Coordinates) IsComplete() bool {
	return c.X != "" && c.Y != "" && c.Z != ""
}
