// Package config holds the startup configuration of the snake host
// Values come from defaults, an optional TOML file, environment variables and flags, in that order
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/core"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Cell is a grid cell written as [x, y] in TOML
type Cell [2]int

// Config is the full startup configuration
type Config struct {
	Arena  ArenaConfig       `toml:"arena"`
	Timing TimingConfig      `toml:"timing"`
	Snake  SnakeConfig       `toml:"snake"`
	Food   FoodConfig        `toml:"food"`
	Look   LookConfig        `toml:"look"`
	Demo   DemoConfig        `toml:"demo"`
	Keys   map[string]string `toml:"keys"` // key name or rune -> heading name
	Debug  bool              `toml:"debug"`
}

type ArenaConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type TimingConfig struct {
	TickMS  int `toml:"tick_ms"`
	FrameMS int `toml:"frame_ms"`
}

// SnakeConfig is the initial chain, head first
type SnakeConfig struct {
	Head    Cell   `toml:"head"`
	Heading string `toml:"heading"`
	Body    []Cell `toml:"body"`
}

// FoodConfig seeds the food placement source, 0 draws from system entropy
type FoodConfig struct {
	Seed uint64 `toml:"seed"`
}

// TileLook is the size fraction and RGB color of one tile kind
type TileLook struct {
	Size  float32    `toml:"size"`
	Color [3]float32 `toml:"color"`
}

type LookConfig struct {
	Head    TileLook   `toml:"head"`
	Segment TileLook   `toml:"segment"`
	Food    TileLook   `toml:"food"`
	Clear   [3]float32 `toml:"clear"`
}

// DemoConfig controls the free motion mover, off by default
type DemoConfig struct {
	Enabled  bool       `toml:"enabled"`
	Velocity [2]float32 `toml:"velocity"`
	Look     TileLook   `toml:"look"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  constants.ArenaWidth,
			Height: constants.ArenaHeight,
		},
		Timing: TimingConfig{
			TickMS:  int(constants.GameUpdateInterval / time.Millisecond),
			FrameMS: int(constants.FrameUpdateInterval / time.Millisecond),
		},
		Snake: SnakeConfig{
			Head:    Cell{constants.InitialHeadX, constants.InitialHeadY},
			Heading: constants.InitialHeading,
			Body:    []Cell{{constants.InitialSegmentX, constants.InitialSegmentY}},
		},
		Look: LookConfig{
			Head:    TileLook{Size: constants.HeadSize, Color: constants.HeadColor},
			Segment: TileLook{Size: constants.SegmentSize, Color: constants.SegmentColor},
			Food:    TileLook{Size: constants.FoodSize, Color: constants.FoodColor},
			Clear:   constants.ClearColor,
		},
		Demo: DemoConfig{
			Velocity: constants.DemoVelocity,
			Look:     TileLook{Size: constants.DemoSize, Color: constants.DemoColor},
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("config %s: %w: %s", path, ErrInvalid, strict.String())
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// TickInterval returns the fixed tick period
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// FrameInterval returns the host frame period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Timing.FrameMS) * time.Millisecond
}

// InitialHeading parses the configured heading
func (c *Config) InitialHeading() (core.Heading, error) {
	return core.ParseHeading(c.Snake.Heading)
}

// Validate reports every problem found, each wrapping ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		fail("arena must be positive, got %dx%d", c.Arena.Width, c.Arena.Height)
	}
	if c.Timing.TickMS <= 0 {
		fail("tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	if c.Timing.FrameMS <= 0 {
		fail("frame_ms must be positive, got %d", c.Timing.FrameMS)
	}
	if _, err := c.InitialHeading(); err != nil {
		fail("snake heading: %v", err)
	}

	if len(c.Snake.Body) == 0 {
		fail("snake needs at least one body segment")
	}
	seen := map[Cell]bool{c.Snake.Head: true}
	prev := c.Snake.Head
	for i, cell := range c.Snake.Body {
		if seen[cell] {
			fail("snake body[%d] %v overlaps the chain", i, cell)
		}
		seen[cell] = true
		if !adjacent(prev, cell) {
			fail("snake body[%d] %v is not adjacent to %v", i, cell, prev)
		}
		prev = cell
	}

	looks := []struct {
		name string
		look TileLook
	}{
		{"head", c.Look.Head},
		{"segment", c.Look.Segment},
		{"food", c.Look.Food},
		{"demo", c.Demo.Look},
	}
	for _, l := range looks {
		if l.look.Size <= 0 || l.look.Size > 1 {
			fail("%s size must be in (0,1], got %v", l.name, l.look.Size)
		}
		if !validColor(l.look.Color) {
			fail("%s color components must be in [0,1], got %v", l.name, l.look.Color)
		}
	}
	if !validColor(c.Look.Clear) {
		fail("clear color components must be in [0,1], got %v", c.Look.Clear)
	}

	return errors.Join(errs...)
}

func adjacent(a, b Cell) bool {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx+dy*dy == 1
}

func validColor(c [3]float32) bool {
	for _, v := range c {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}
