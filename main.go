package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/colorator/internal/config"
	"github.com/iburimskiy/colorator/internal/game"
	"github.com/iburimskiy/colorator/internal/wheel"
)

func main() {
	debug := flag.Bool("debug", false, "verbose/debug logging")
	dump := flag.Bool("dump", false, "print the draw list as JSON and exit")
	export := flag.String("export", "", "write the wheel as a PNG to the given path and exit")
	angle := flag.Int("angle", 0, "hue to select for -dump and -export")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *debug {
		cfg.Debug = true
	}
	game.SetupLogging(cfg.Debug)

	if *dump || *export != "" {
		w := game.Headless(cfg, *angle)
		if *dump {
			out, err := wheel.DrawListJSON(w.Render())
			if err != nil {
				log.Fatalf("dump: %v", err)
			}
			fmt.Println(out)
		}
		if *export != "" {
			if err := game.WritePNG(*export, w); err != nil {
				log.Fatalf("export: %v", err)
			}
		}
		return
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	g := game.New(cfg)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
	log.Printf("last color %s", g.Widget().SelectedColor().Hex())
}
