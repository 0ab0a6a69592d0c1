package core

import (
	"fmt"
	"strings"
)

// Heading is one of the four grid directions a snake head can face
type Heading int

const (
	HeadingLeft Heading = iota
	HeadingUp
	HeadingRight
	HeadingDown
)

// Headings lists every heading in declaration order
var Headings = [4]Heading{HeadingLeft, HeadingUp, HeadingRight, HeadingDown}

// Opposite returns the heading pointing the other way
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	}
	panic(fmt.Sprintf("invalid heading %d", int(h)))
}

// Delta returns the one-cell step for the heading, Up increases Y
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	case HeadingUp:
		return 0, 1
	case HeadingDown:
		return 0, -1
	}
	panic(fmt.Sprintf("invalid heading %d", int(h)))
}

// String returns the lowercase heading name
func (h Heading) String() string {
	switch h {
	case HeadingLeft:
		return "left"
	case HeadingUp:
		return "up"
	case HeadingRight:
		return "right"
	case HeadingDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseHeading resolves a heading name, case-insensitive
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return HeadingLeft, nil
	case "up":
		return HeadingUp, nil
	case "right":
		return HeadingRight, nil
	case "down":
		return HeadingDown, nil
	}
	return 0, fmt.Errorf("unknown heading %q", s)
}
