package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/colorator/internal/wheel"
)

type pointerKind int

const (
	pointerDown pointerKind = iota
	pointerMove
	pointerUp
	pointerCancel
)

// pointerEvent is a press, drag or release in screen coordinates.
type pointerEvent struct {
	kind pointerKind
	x, y float64
}

// pointerTracker turns ebiten's polled mouse and touch state into pointer
// events. Only one pointer is followed at a time: the mouse, or the first
// touch when the mouse is up.
type pointerTracker struct {
	mouseDown bool
	touching  bool
	touchID   ebiten.TouchID
	touchIDs  []ebiten.TouchID
	lastX     int
	lastY     int
}

func (p *pointerTracker) poll() []pointerEvent {
	if !ebiten.IsFocused() {
		if p.mouseDown || p.touching {
			p.mouseDown, p.touching = false, false
			return []pointerEvent{{kind: pointerCancel}}
		}
		return nil
	}
	if p.touching {
		return p.pollTouch()
	}
	if ev, ok := p.pollMouse(); ok {
		return []pointerEvent{ev}
	}
	if p.mouseDown {
		return nil
	}
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) == 0 {
		return nil
	}
	p.touchID = p.touchIDs[0]
	p.touching = true
	p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
	return []pointerEvent{p.event(pointerDown)}
}

func (p *pointerTracker) pollMouse() (pointerEvent, bool) {
	x, y := ebiten.CursorPosition()
	switch {
	case !p.mouseDown && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.mouseDown = true
		p.lastX, p.lastY = x, y
		return p.event(pointerDown), true
	case p.mouseDown && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		p.mouseDown = false
		p.lastX, p.lastY = x, y
		return p.event(pointerUp), true
	case p.mouseDown && (x != p.lastX || y != p.lastY):
		p.lastX, p.lastY = x, y
		return p.event(pointerMove), true
	}
	return pointerEvent{}, false
}

func (p *pointerTracker) pollTouch() []pointerEvent {
	if inpututil.IsTouchJustReleased(p.touchID) {
		p.touching = false
		return []pointerEvent{p.event(pointerUp)}
	}
	x, y := ebiten.TouchPosition(p.touchID)
	if x == p.lastX && y == p.lastY {
		return nil
	}
	p.lastX, p.lastY = x, y
	return []pointerEvent{p.event(pointerMove)}
}

func (p *pointerTracker) event(kind pointerKind) pointerEvent {
	return pointerEvent{kind: kind, x: float64(p.lastX), y: float64(p.lastY)}
}

// dispatch hands an event to the widget in its local coordinates.
func (g *Game) dispatch(ev pointerEvent) {
	pad := float64(g.cfg.Padding)
	x, y := ev.x-pad, ev.y-pad
	switch ev.kind {
	case pointerDown:
		g.widget.PointerDown(x, y)
	case pointerMove:
		g.widget.PointerMove(x, y)
	case pointerUp:
		dragging := g.widget.State() == wheel.Dragging
		g.widget.PointerUp(x, y)
		if dragging {
			g.commit()
		}
	case pointerCancel:
		g.widget.PointerCancel()
	}
}

// commit runs once a drag ends with the final selection.
func (g *Game) commit() {
	sel := g.widget.Selection()
	logInfo("selected %s (hue %d)", sel.Color.Hex(), sel.Angle)
	if err := g.tone.play(sel.Angle); err != nil {
		logError("feedback tone: %v", err)
		g.setErr(err)
	}
}
