package wheel

import "testing"

func TestNewWidgetStartsIdleOnRed(t *testing.T) {
	w := New(DefaultOptions())
	if w.State() != Idle {
		t.Fatalf("state %v", w.State())
	}
	if w.SelectedAngle() != 0 || w.SelectedColor() != Red {
		t.Fatalf("initial selection %+v", w.Selection())
	}
}

func TestInvalidOptionsFallBack(t *testing.T) {
	w := New(Options{RingWidth: 10, RingStroke: 40})
	g := w.Resize(100, 100)
	if g.RingWidth != DefaultRingWidth || g.RingStroke != DefaultRingStroke {
		t.Fatalf("expected defaults, got %d/%d", g.RingWidth, g.RingStroke)
	}
}

func TestPointerDownSelectsRed(t *testing.T) {
	w := New(DefaultOptions())
	w.Resize(300, 300)
	if !w.PointerDown(300, 150) {
		t.Fatalf("event not consumed")
	}
	if w.SelectedAngle() != 0 {
		t.Fatalf("angle %d", w.SelectedAngle())
	}
	if w.SelectedColor() != (RGB{255, 0, 0}) {
		t.Fatalf("color %v", w.SelectedColor())
	}
	if w.State() != Dragging {
		t.Fatalf("state %v", w.State())
	}
}

func TestDragToLeftSelectsCyan(t *testing.T) {
	w := New(DefaultOptions())
	w.Resize(300, 300)
	w.PointerDown(300, 150)
	w.PointerMove(0, 150)
	if w.SelectedAngle() != 180 {
		t.Fatalf("angle %d", w.SelectedAngle())
	}
	if w.SelectedColor() != (RGB{0, 255, 255}) {
		t.Fatalf("color %v", w.SelectedColor())
	}
	w.PointerUp(0, 150)
	if w.State() != Idle {
		t.Fatalf("state %v after up", w.State())
	}
	if w.SelectedColor() != Cyan {
		t.Fatalf("selection lost on release")
	}
}

func TestReleaseSelectsUnderPointer(t *testing.T) {
	w := New(DefaultOptions())
	w.Resize(300, 300)
	var changes []Selection
	w.OnChange(func(s Selection) { changes = append(changes, s) })
	w.PointerDown(300, 150)
	w.PointerUp(150, 0)
	if w.SelectedAngle() != 270 || w.SelectedColor() != AngleToColor(270) {
		t.Fatalf("selection %+v after release", w.Selection())
	}
	if w.State() != Idle {
		t.Fatalf("state %v", w.State())
	}
	if len(changes) != 1 || changes[0].Angle != 270 {
		t.Fatalf("changes %+v", changes)
	}
	// A release with no drag in progress changes nothing.
	w.PointerUp(0, 150)
	if w.SelectedAngle() != 270 {
		t.Fatalf("idle release moved selection to %d", w.SelectedAngle())
	}
}

func TestMoveWhileIdleKeepsSelection(t *testing.T) {
	w := New(DefaultOptions())
	w.Resize(300, 300)
	if !w.PointerMove(150, 0) {
		t.Fatalf("move not consumed")
	}
	if w.SelectedAngle() != 0 {
		t.Fatalf("idle move changed angle to %d", w.SelectedAngle())
	}
}

func TestPointerCancelEndsDrag(t *testing.T) {
	w := New(DefaultOptions())
	w.Resize(300, 300)
	w.PointerDown(150, 300)
	w.PointerCancel()
	if w.State() != Idle || w.SelectedAngle() != 90 {
		t.Fatalf("state %v angle %d", w.State(), w.SelectedAngle())
	}
	w.PointerMove(0, 150)
	if w.SelectedAngle() != 90 {
		t.Fatalf("move after cancel changed angle")
	}
}

func TestPointerDownAtCenter(t *testing.T) {
	w := New(DefaultOptions())
	w.Resize(300, 300)
	w.PointerDown(150, 0)
	w.PointerMove(150, 150)
	if w.SelectedAngle() != 0 || w.SelectedColor() != Red {
		t.Fatalf("center should resolve to 0, got %d", w.SelectedAngle())
	}
}

func TestPointerOnZeroSizedWidget(t *testing.T) {
	w := New(DefaultOptions())
	w.Resize(0, 0)
	w.PointerDown(0, 0)
	w.PointerMove(-10, 0)
	if w.SelectedAngle() != 180 {
		t.Fatalf("angle %d", w.SelectedAngle())
	}
	if len(w.Render()) == 0 {
		t.Fatalf("empty draw list")
	}
}

func TestCallbacks(t *testing.T) {
	w := New(DefaultOptions())
	redraws := 0
	var changes []Selection
	w.OnInvalidate(func() { redraws++ })
	w.OnChange(func(s Selection) { changes = append(changes, s) })

	w.Resize(300, 300)
	if redraws != 1 {
		t.Fatalf("resize should request a redraw, got %d", redraws)
	}
	w.Resize(300, 300)
	if redraws != 1 {
		t.Fatalf("same size should not redraw, got %d", redraws)
	}

	w.PointerDown(150, 300) // 90
	w.PointerMove(150, 300) // unchanged
	w.PointerMove(0, 150)   // 180
	w.PointerUp(0, 150)
	if len(changes) != 2 || changes[0].Angle != 90 || changes[1].Angle != 180 {
		t.Fatalf("changes %+v", changes)
	}
	if changes[1].Color != Cyan {
		t.Fatalf("change color %v", changes[1].Color)
	}
	// resize, down, move to 180, up
	if redraws != 4 {
		t.Fatalf("redraws %d", redraws)
	}
}

func TestMeasureTakesOfferedBox(t *testing.T) {
	w := New(DefaultOptions())
	if ww, hh := w.Measure(320, 240); ww != 320 || hh != 240 {
		t.Fatalf("measure %v x %v", ww, hh)
	}
	if ww, hh := w.Measure(-1, 5); ww != 0 || hh != 5 {
		t.Fatalf("measure %v x %v", ww, hh)
	}
}

func TestSelectionAtInvariant(t *testing.T) {
	for a := -720; a <= 720; a += 7 {
		s := SelectionAt(a)
		if s.Angle < 0 || s.Angle >= 360 {
			t.Fatalf("angle %d normalized to %d", a, s.Angle)
		}
		if s.Color != AngleToColor(s.Angle) {
			t.Fatalf("selection %+v out of sync", s)
		}
	}
}
