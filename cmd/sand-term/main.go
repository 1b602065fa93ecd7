package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"sandpit/internal/app"
	"sandpit/internal/audio"
	"sandpit/internal/sims/sand"
	"sandpit/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	fit := flag.Bool("fit", true, "size the grid to the terminal, ignoring -rows and -cols")
	volume := flag.Float64("volume", 0, "fire crackle volume (0 mutes)")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	simCfg := sand.FromMap(cfg.SimConfig())
	if *fit {
		simCfg.Rows, simCfg.Cols = term.GridFor(screen.Size())
	}
	world := sand.NewWithConfig(simCfg)
	log.Printf("sand-term: %dx%d grid, seed %d", simCfg.Rows, simCfg.Cols, simCfg.Seed)

	fe := term.New(screen, world, cfg)
	if *volume > 0 {
		player, err := audio.NewPlayer(*volume)
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer player.Close()
			fe.SetSound(player)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := fe.Run(ctx); err != nil {
		log.Printf("sand-term: %v", err)
	}
}

// setupLog keeps log output off the terminal the UI owns.
func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}
