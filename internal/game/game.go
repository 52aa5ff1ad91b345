package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/colorator/internal/config"
	"github.com/iburimskiy/colorator/internal/wheel"
)

// Game hosts a color wheel in an ebiten window. The wheel fills the window
// inside a fixed padding.
type Game struct {
	cfg    *config.Config
	widget *wheel.Widget

	width, height int

	pointer pointerTracker
	layers  layerCache
	tone    *tonePlayer

	// input edge detection
	prevKey map[ebiten.Key]bool

	redraw  bool
	lastErr error
}

// New builds the host and its widget.
func New(cfg *config.Config) *Game {
	g := &Game{
		cfg:     cfg,
		widget:  NewWidget(cfg),
		tone:    newTonePlayer(cfg.Sound),
		prevKey: map[ebiten.Key]bool{},
		redraw:  true,
	}
	g.widget.OnInvalidate(func() { g.redraw = true })
	g.widget.OnChange(func(sel wheel.Selection) {
		logDebug("hue %d -> %s", sel.Angle, sel.Color.Hex())
	})
	return g
}

// NewWidget returns a widget with the configured ring dimensions.
func NewWidget(cfg *config.Config) *wheel.Widget {
	return wheel.New(wheel.Options{RingWidth: cfg.RingWidth, RingStroke: cfg.RingStroke})
}

// Headless lays a widget out at the configured window size and, when angle
// is not 0, presses the pointer on that hue so the selection follows the
// same path as a click. The pointer aims at the middle of the degree, at least
// a pixel out from the center, so it resolves back to angle.
func Headless(cfg *config.Config, angle int) *wheel.Widget {
	w := NewWidget(cfg)
	pad := float64(2 * cfg.Padding)
	w.Resize(float64(cfg.WindowWidth)-pad, float64(cfg.WindowHeight)-pad)
	if angle != 0 {
		geom := w.Geometry()
		p := geom.PointAt(float64(angle)+0.5, math.Max(geom.OuterRadius, 1))
		w.PointerDown(p.X, p.Y)
		w.PointerUp(p.X, p.Y)
	}
	return w
}

// Widget exposes the hosted wheel, e.g. to read the selected color.
func (g *Game) Widget() *wheel.Widget { return g.widget }

func (g *Game) setErr(err error) {
	g.lastErr = err
	g.redraw = true
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	for _, ev := range g.pointer.poll() {
		g.dispatch(ev)
	}

	if justPressed(ebiten.KeyS) {
		if err := g.saveDialog(); err != nil {
			logError("export: %v", err)
			g.setErr(err)
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw only repaints after the widget asked for it; the screen keeps its
// previous contents otherwise.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.redraw {
		return
	}
	g.redraw = false

	screen.Fill(wheel.Background())
	runs := splitRuns(g.widget.Render())
	g.layers.sync(g.widget.Geometry(), runs)
	pad := float64(g.cfg.Padding)
	g.layers.drawRuns(screen, runs, pad, pad)

	ebitenutil.DebugPrintAt(screen, statusLine(g.widget.Selection(), g.widget.State(), g.lastErr), 4, 2)
}

// Layout gives the widget the whole window minus the padding.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		pad := 2 * g.cfg.Padding
		w, h := g.widget.Measure(float64(outsideWidth-pad), float64(outsideHeight-pad))
		g.widget.Resize(w, h)
		g.redraw = true
	}
	return outsideWidth, outsideHeight
}
