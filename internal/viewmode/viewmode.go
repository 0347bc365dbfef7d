// Package viewmode holds a page's presentation mode.
package viewmode

import "fmt"

type Mode int

const (
	Grid Mode = iota
	List
	Map
)

func (m Mode) String() string {
	switch m {
	case Grid:
		return "grid"
	case List:
		return "list"
	case Map:
		return "map"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Parse converts a mode name as written in config files.
func Parse(s string) (Mode, error) {
	switch s {
	case "grid":
		return Grid, nil
	case "list":
		return List, nil
	case "map":
		return Map, nil
	}
	return 0, fmt.Errorf("unknown view mode %q", s)
}

// Controller switches between the two modes a page supports. The first
// mode of the pair is the initial one.
type Controller struct {
	pair    [2]Mode
	current Mode
}

func New(first, second Mode) *Controller {
	return &Controller{pair: [2]Mode{first, second}, current: first}
}

func (c *Controller) Mode() Mode { return c.current }

func (c *Controller) Supports(m Mode) bool {
	return m == c.pair[0] || m == c.pair[1]
}

// Set switches to m. Unsupported modes leave the controller unchanged and
// return false.
func (c *Controller) Set(m Mode) bool {
	if !c.Supports(m) {
		return false
	}
	c.current = m
	return true
}

// Toggle flips to the other mode of the pair.
func (c *Controller) Toggle() Mode {
	if c.current == c.pair[0] {
		c.current = c.pair[1]
	} else {
		c.current = c.pair[0]
	}
	return c.current
}
