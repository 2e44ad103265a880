// Package gui runs the canvas in a desktop window with ebiten.
package gui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"infcanvas/internal/canvas"
	"infcanvas/internal/config"
)

// Game implements ebiten.Game. The machine is created on the first Layout,
// once the window size is known.
type Game struct {
	cfg     *config.Config
	log     *log.Logger
	machine *canvas.Machine
	surf    *surface

	width, height int
	last          frameInput
}

func New(cfg *config.Config, logger *log.Logger) *Game {
	return &Game{
		cfg:  cfg,
		log:  logger,
		surf: &surface{},
		last: frameInput{X: -1, Y: -1},
	}
}

// Machine returns nil until the first Layout.
func (g *Game) Machine() *canvas.Machine { return g.machine }

func (g *Game) Update() error {
	if g.machine == nil {
		return nil
	}
	g.updateKeys()

	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	in := frameInput{
		X: mx, Y: my,
		Width: g.width, Height: g.height,
		PrimaryDown:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PrimaryUp:     inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		SecondaryDown: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle),
		SecondaryUp:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle),
		WheelY:        wy,
	}
	for _, ev := range decode(in, g.last, g.cfg.WheelStep) {
		g.machine.Handle(ev)
	}
	g.last = in
	return nil
}

func (g *Game) updateKeys() {
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	for i, k := range keys {
		if inpututil.IsKeyJustPressed(k) && i < len(canvas.Modes) {
			g.machine.SetMode(canvas.Modes[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.machine.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		g.machine.ResetView()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.machine == nil {
		return
	}
	screen.DrawImage(g.surf.img, nil)
	msg := fmt.Sprintf("%d%%  %s  segs=%d", g.machine.ZoomPercent(), g.machine.Mode(), len(g.machine.Segments()))
	if !g.machine.Mode().Draws() {
		msg += "  (not available yet)"
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth == g.width && outsideHeight == g.height && g.machine != nil {
		return g.width, g.height
	}
	g.width, g.height = outsideWidth, outsideHeight
	if g.machine == nil {
		opts := g.cfg.Options()
		if g.log != nil {
			opts = append(opts, canvas.WithLogger(g.log))
		}
		g.machine = canvas.New(g.surf, g.width, g.height, opts...)
	} else {
		g.machine.Resize(g.width, g.height)
	}
	return g.width, g.height
}
