package tetris

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

var ErrInvalidConfig = errors.New("tetris: invalid config")

// Config holds the tunables of a game. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Width  int
	Height int

	// LinesPerLevel is the number of cleared lines per level step.
	LinesPerLevel int
	// HardDropPointsPerRow is awarded for every row a hard drop travels.
	HardDropPointsPerRow int

	BaseDropInterval time.Duration
	MinDropInterval  time.Duration
	DropIntervalStep time.Duration
}

func DefaultConfig() Config {
	return Config{
		Width:                DefaultWidth,
		Height:               DefaultHeight,
		LinesPerLevel:        10,
		HardDropPointsPerRow: 2,
		BaseDropInterval:     time.Second,
		MinDropInterval:      100 * time.Millisecond,
		DropIntervalStep:     75 * time.Millisecond,
	}
}

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	// the widest piece is 4 cells
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("%w: board %dx%d is smaller than 4x4", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.LinesPerLevel <= 0 {
		return fmt.Errorf("%w: lines per level must be positive, got %d", ErrInvalidConfig, c.LinesPerLevel)
	}
	if c.HardDropPointsPerRow < 0 {
		return fmt.Errorf("%w: hard drop points must not be negative", ErrInvalidConfig)
	}
	if c.MinDropInterval <= 0 || c.BaseDropInterval < c.MinDropInterval {
		return fmt.Errorf("%w: drop interval %s must be at least the floor %s (floor > 0)",
			ErrInvalidConfig, c.BaseDropInterval, c.MinDropInterval)
	}
	if c.DropIntervalStep < 0 {
		return fmt.Errorf("%w: drop interval step must not be negative", ErrInvalidConfig)
	}
	return nil
}
