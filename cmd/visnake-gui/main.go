//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"visnake/internal/app"
	"visnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(".env"); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engCfg, err := cfg.EngineConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng, err := snake.New(engCfg, seed)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	game := app.New(app.NewSession(eng, nil), cfg.Scale, cfg.TPS)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("visnake")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
