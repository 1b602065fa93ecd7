//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandpit/internal/app"
	"sandpit/internal/audio"
	"sandpit/internal/core"
	_ "sandpit/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	volume := flag.Float64("volume", 0.5, "fire crackle volume (0 mutes)")
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}
	box, ok := factory(cfg.SimConfig()).(app.Sandbox)
	if !ok {
		log.Fatalf("sim %q cannot be painted", cfg.Sim)
	}

	game := app.New(box, cfg)
	if *volume > 0 {
		player, err := audio.NewPlayer(*volume)
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer player.Close()
			game.SetSound(player)
		}
	}

	size := box.Size()
	ebiten.SetWindowTitle("sandpit - " + box.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.Panel, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
