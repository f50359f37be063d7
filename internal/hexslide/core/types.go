// Package core provides the generation and solvability engine for hexslide.
// This package is UI-agnostic and deterministic for a given seed.
package core

import "strings"

// Dir is one of the six hex directions a piece can face.
type Dir uint8

const (
	DirEast Dir = iota
	DirSouthEast
	DirSouthWest
	DirWest
	DirNorthWest
	DirNorthEast
	DirCount // Sentinel value for iteration
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirEast:
		return "E"
	case DirSouthEast:
		return "SE"
	case DirSouthWest:
		return "SW"
	case DirWest:
		return "W"
	case DirNorthWest:
		return "NW"
	case DirNorthEast:
		return "NE"
	default:
		return "?"
	}
}

// Delta returns the axial (dx, dy) offset for one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirEast:
		return 1, 0
	case DirSouthEast:
		return 0, 1
	case DirSouthWest:
		return -1, 1
	case DirWest:
		return -1, 0
	case DirNorthWest:
		return 0, -1
	case DirNorthEast:
		return 1, -1
	default:
		return 0, 0
	}
}

// Opposite returns the direction rotated by 180 degrees.
func (d Dir) Opposite() Dir {
	switch d {
	case DirEast:
		return DirWest
	case DirSouthEast:
		return DirNorthWest
	case DirSouthWest:
		return DirNorthEast
	case DirWest:
		return DirEast
	case DirNorthWest:
		return DirSouthEast
	case DirNorthEast:
		return DirSouthWest
	default:
		return d
	}
}

// Arrow returns a single glyph for ASCII rendering.
func (d Dir) Arrow() rune {
	switch d {
	case DirEast:
		return '>'
	case DirSouthEast:
		return '\\'
	case DirSouthWest:
		return '/'
	case DirWest:
		return '<'
	case DirNorthWest:
		return '`'
	case DirNorthEast:
		return '^'
	default:
		return '?'
	}
}

// Valid reports whether d is one of the six directions.
func (d Dir) Valid() bool {
	return d < DirCount
}

// ParseDir converts a string to a Dir.
// Returns DirEast and false if the string is not recognized.
func ParseDir(s string) (Dir, bool) {
	switch strings.ToLower(s) {
	case "e", "east":
		return DirEast, true
	case "se", "southeast":
		return DirSouthEast, true
	case "sw", "southwest":
		return DirSouthWest, true
	case "w", "west":
		return DirWest, true
	case "nw", "northwest":
		return DirNorthWest, true
	case "ne", "northeast":
		return DirNorthEast, true
	default:
		return DirEast, false
	}
}

// AllDirs returns the six directions in table order.
func AllDirs() []Dir {
	return []Dir{DirEast, DirSouthEast, DirSouthWest, DirWest, DirNorthWest, DirNorthEast}
}
