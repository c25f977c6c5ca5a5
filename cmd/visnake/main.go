package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"visnake/internal/app"
	"visnake/internal/snake"
	"visnake/internal/term"
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

	// The screen owns the terminal while the game runs.
	log.SetOutput(io.Discard)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	log.Printf("start %dx%d start=%d seed=%d", engCfg.Width, engCfg.Height, engCfg.StartLength, seed)

	s, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("screen: %v", err)
	}
	if err := s.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("screen: %v", err)
	}
	s.HideCursor()

	sess := app.NewSession(eng, nil)
	runErr := term.Run(s, sess, time.Second/time.Duration(max(cfg.TPS, 1)))
	s.Fini()
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
	log.Printf("quit score=%d length=%d status=%s", eng.Score(), eng.Len(), eng.Status())
}
