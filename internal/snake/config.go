package snake

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	// ErrBoardTooSmall is returned for boards that cannot hold any valid start.
	ErrBoardTooSmall = errors.New("snake: board too small")
	// ErrStartLength is returned when the start length does not fit the board.
	ErrStartLength = errors.New("snake: start length out of range")
)

// MinSide is the smallest board side that admits a start length of one.
const MinSide = 4

// Config controls the board dimensions and the initial snake.
type Config struct {
	Width       int
	Height      int
	StartLength int
}

// DefaultConfig returns the standard 25x25 board with a three-cell snake.
func DefaultConfig() Config {
	return Config{Width: 25, Height: 25, StartLength: 3}
}

// MaxStartLength is the largest start length the board admits: the head is
// drawn from [L, side-L) on both axes, which needs L <= min(W,H)/2 - 1.
func (c Config) MaxStartLength() int {
	return min(c.Width, c.Height)/2 - 1
}

// Validate rejects configurations the engine cannot place a snake on. Values
// are never clamped.
func (c Config) Validate() error {
	if c.Width < MinSide || c.Height < MinSide {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrBoardTooSmall, c.Width, c.Height, MinSide, MinSide)
	}
	if c.StartLength < 1 || c.StartLength > c.MaxStartLength() {
		return fmt.Errorf("%w: %d not in [1, %d] for a %dx%d board", ErrStartLength, c.StartLength, c.MaxStartLength(), c.Width, c.Height)
	}
	return nil
}

// FromMap overlays flag-style key/value pairs (w, h, start) on DefaultConfig.
// Unknown keys and malformed numbers are reported instead of skipped.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := cfg[k]
		var dst *int
		switch k {
		case "w", "width":
			dst = &c.Width
		case "h", "height":
			dst = &c.Height
		case "start", "start_length":
			dst = &c.StartLength
		default:
			return c, fmt.Errorf("snake: unknown config key %q", k)
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("snake: config %s=%q: %w", k, v, err)
		}
		*dst = parsed
	}
	return c, nil
}
