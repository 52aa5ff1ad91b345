package wheel

// State is the interaction state of a Widget.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Selection is the chosen point on the hue ring. Build it with SelectionAt so
// Color always matches Angle.
type Selection struct {
	Angle int `json:"angle"`
	Color RGB `json:"color"`
}

// SelectionAt returns the selection for an angle in degrees.
func SelectionAt(angle int) Selection {
	angle = normalizeDegrees(angle)
	return Selection{Angle: angle, Color: AngleToColor(angle)}
}

// Options configures a Widget.
type Options struct {
	RingWidth  int
	RingStroke int
}

// DefaultOptions returns the stock ring dimensions.
func DefaultOptions() Options {
	return Options{RingWidth: DefaultRingWidth, RingStroke: DefaultRingStroke}
}

func (o Options) valid() bool {
	return o.RingWidth > 0 && o.RingStroke >= 0 && o.RingStroke <= o.RingWidth
}

// Widget is the color wheel. A host measures it, resizes it, feeds it pointer
// events in widget-local coordinates and draws what Render returns. It is not
// safe for concurrent use; hosts call it from their event loop.
type Widget struct {
	opts  Options
	geom  Geometry
	sel   Selection
	state State

	invalidate func()
	changed    func(Selection)
}

// New returns an idle widget with angle 0 selected. Invalid options fall back
// to DefaultOptions.
func New(opts Options) *Widget {
	if !opts.valid() {
		opts = DefaultOptions()
	}
	return &Widget{
		opts: opts,
		geom: NewGeometry(0, 0, opts.RingWidth, opts.RingStroke),
		sel:  SelectionAt(0),
	}
}

// OnInvalidate registers the redraw request callback.
func (w *Widget) OnInvalidate(fn func()) { w.invalidate = fn }

// OnChange registers a callback run whenever the selected angle changes.
func (w *Widget) OnChange(fn func(Selection)) { w.changed = fn }

// Measure reports the size the widget wants inside the offered box. The wheel
// has no intrinsic size and takes whatever it is given.
func (w *Widget) Measure(width, height float64) (float64, float64) {
	return nonNegative(width), nonNegative(height)
}

// Resize lays the wheel out in a new bounding box.
func (w *Widget) Resize(width, height float64) Geometry {
	g := NewGeometry(width, height, w.opts.RingWidth, w.opts.RingStroke)
	if g != w.geom {
		w.geom = g
		w.requestRedraw()
	}
	return g
}

// PointerDown starts a drag and selects the hue under the pointer.
func (w *Widget) PointerDown(x, y float64) bool {
	w.state = Dragging
	w.selectAt(x, y)
	w.requestRedraw()
	return true
}

// PointerMove follows the pointer while dragging. Moves without a preceding
// PointerDown are consumed but leave the selection alone.
func (w *Widget) PointerMove(x, y float64) bool {
	if w.state != Dragging {
		return true
	}
	if w.selectAt(x, y) {
		w.requestRedraw()
	}
	return true
}

// PointerUp ends a drag, selecting the hue under the release point. Releases
// without a drag are consumed and change nothing.
func (w *Widget) PointerUp(x, y float64) bool {
	if w.state == Dragging {
		w.selectAt(x, y)
		w.state = Idle
		w.requestRedraw()
	}
	return true
}

// PointerCancel ends a drag without a final position.
func (w *Widget) PointerCancel() {
	if w.state == Dragging {
		w.state = Idle
		w.requestRedraw()
	}
}

func (w *Widget) selectAt(x, y float64) bool {
	angle := ResolveAngle(x, y, w.geom)
	if angle == w.sel.Angle {
		return false
	}
	w.sel = SelectionAt(angle)
	if w.changed != nil {
		w.changed(w.sel)
	}
	return true
}

func (w *Widget) requestRedraw() {
	if w.invalidate != nil {
		w.invalidate()
	}
}

// SelectedColor is the color at the selected angle.
func (w *Widget) SelectedColor() RGB { return w.sel.Color }

// SelectedAngle is the selected angle in degrees.
func (w *Widget) SelectedAngle() int { return w.sel.Angle }

// Selection returns the selected angle together with its color.
func (w *Widget) Selection() Selection { return w.sel }

// State reports whether a drag is in progress.
func (w *Widget) State() State { return w.state }

// Geometry returns the layout from the last Resize.
func (w *Widget) Geometry() Geometry { return w.geom }

// Render returns the draw list for the current geometry and selection.
func (w *Widget) Render() []Primitive {
	return Render(w.geom, w.sel)
}
