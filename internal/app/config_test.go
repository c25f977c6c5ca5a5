package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"visnake/internal/snake"
)

func TestBindParsesFlagsAndOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("visnake", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-w", "30", "-h", "20", "-tps", "15", "-seed", "9", "-set", "start=6"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	eng, err := cfg.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig: %v", err)
	}
	want := snake.Config{Width: 30, Height: 20, StartLength: 6}
	if eng != want {
		t.Fatalf("EngineConfig = %+v, want %+v", eng, want)
	}
	if cfg.TPS != 15 || cfg.Seed != 9 {
		t.Fatalf("tps=%d seed=%d", cfg.TPS, cfg.Seed)
	}
}

func TestEngineConfigRejectsBadValues(t *testing.T) {
	cfg := NewConfig()
	cfg.StartLength = 20
	if _, err := cfg.EngineConfig(); !errors.Is(err, snake.ErrStartLength) {
		t.Fatalf("EngineConfig = %v, want ErrStartLength", err)
	}

	cfg = NewConfig()
	cfg.Overrides = KVList{"start"}
	if _, err := cfg.EngineConfig(); err == nil {
		t.Fatal("override without '=' must be rejected")
	}

	cfg = NewConfig()
	cfg.Overrides = KVList{"speed=3"}
	if _, err := cfg.EngineConfig(); err == nil {
		t.Fatal("unknown override key must be rejected")
	}
}

func unsetEnv(t *testing.T, names ...string) {
	t.Helper()
	for _, n := range names {
		key := EnvPrefix + n
		prev, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestLoadEnvAppliesDotenvAndProcessEnv(t *testing.T) {
	unsetEnv(t, "WIDTH", "HEIGHT", "START", "TPS", "SCALE", "SEED", "LOG")
	path := filepath.Join(t.TempDir(), ".env")
	data := "VISNAKE_WIDTH=40\nVISNAKE_HEIGHT=30\nVISNAKE_SEED=77\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	os.Setenv(EnvPrefix+"HEIGHT", "12")

	cfg := NewConfig()
	if err := cfg.LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.Width != 40 {
		t.Fatalf("Width = %d, want 40 from dotenv", cfg.Width)
	}
	if cfg.Height != 12 {
		t.Fatalf("Height = %d, want 12 from the process environment", cfg.Height)
	}
	if cfg.Seed != 77 {
		t.Fatalf("Seed = %d, want 77", cfg.Seed)
	}
	if cfg.StartLength != snake.DefaultConfig().StartLength {
		t.Fatalf("StartLength = %d, want default", cfg.StartLength)
	}
}

func TestLoadEnvMissingFileAndBadValue(t *testing.T) {
	unsetEnv(t, "WIDTH", "HEIGHT", "START", "TPS", "SCALE", "SEED", "LOG")
	cfg := NewConfig()
	if err := cfg.LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing dotenv file should be ignored: %v", err)
	}

	os.Setenv(EnvPrefix+"TPS", "fast")
	if err := cfg.LoadEnv(""); err == nil {
		t.Fatal("malformed VISNAKE_TPS must be rejected")
	}
}
