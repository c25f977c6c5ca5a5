package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces the environment variables read by LoadEnv.
const EnvPrefix = "VISNAKE_"

// LoadEnv loads an optional dotenv file and applies VISNAKE_* variables to c.
// It runs before flag parsing so explicit flags still win. Variables already
// set in the process environment take precedence over the file.
func (c *Config) LoadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"WIDTH", &c.Width},
		{"HEIGHT", &c.Height},
		{"START", &c.StartLength},
		{"TPS", &c.TPS},
		{"SCALE", &c.Scale},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(EnvPrefix + v.name)
		if !ok || raw == "" {
			continue
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w", EnvPrefix, v.name, raw, err)
		}
		*v.dst = parsed
	}
	if raw, ok := os.LookupEnv(EnvPrefix + "SEED"); ok && raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED=%q: %w", EnvPrefix, raw, err)
		}
		c.Seed = parsed
	}
	if raw, ok := os.LookupEnv(EnvPrefix + "LOG"); ok {
		c.LogPath = raw
	}
	return nil
}
