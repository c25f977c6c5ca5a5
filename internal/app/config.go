package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"visnake/internal/snake"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	StartLength int
	TPS         int
	Seed        int64
	Scale       int
	LogPath     string
	Overrides   KVList
}

// NewConfig returns a Config populated with the original game's defaults: a
// 25x25 board, a three-cell snake and ten moves per second.
func NewConfig() *Config {
	d := snake.DefaultConfig()
	return &Config{Width: d.Width, Height: d.Height, StartLength: d.StartLength, TPS: 10, Scale: 16}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.StartLength, "start", c.StartLength, "initial snake length")
	fs.IntVar(&c.TPS, "tps", c.TPS, "moves per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first game (0 picks one from the clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the GUI build")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "write the game log to this file")
	fs.Var(&c.Overrides, "set", "engine override in key=value form (repeatable)")
}

// EngineConfig merges the board flags with -set overrides and validates the
// result.
func (c *Config) EngineConfig() (snake.Config, error) {
	kv := map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"start": strconv.Itoa(c.StartLength),
	}
	for _, item := range c.Overrides {
		k, v, ok := strings.Cut(item, "=")
		if !ok {
			return snake.Config{}, fmt.Errorf("override %q: expected key=value", item)
		}
		kv[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	cfg, err := snake.FromMap(kv)
	if err != nil {
		return snake.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return snake.Config{}, err
	}
	return cfg, nil
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
