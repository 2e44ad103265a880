package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"infcanvas/internal/config"
	"infcanvas/internal/gui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := log.New(os.Stderr, "infcanvas ", log.LstdFlags)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("infcanvas")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(gui.New(cfg, logger)); err != nil {
		log.Fatal(err)
	}
}
