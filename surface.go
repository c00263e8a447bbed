package checkers

import "image/color"

// Surface is the drawing target a Board renders into.
//
// It is the subset of the gg.Context API the board needs, so *gg.Context
// satisfies it directly. Width and Height are in pixels.
//
// Drawing follows the canvas model: ClearPath begins a new path, DrawArc
// appends an arc running from angle1 to angle2 in radians, and Stroke or Fill
// paints the path in the current color and clears it.
type Surface interface {
	Width() int
	Height() int

	ClearPath()
	DrawArc(x, y, r, angle1, angle2 float64)
	SetColor(c color.Color)
	Stroke() error
	Fill() error
}

// TextSurface is implemented by surfaces that can draw text.
// Boards created with WithLabels use it to annotate slots.
type TextSurface interface {
	// DrawStringAnchored draws s so that the anchor (ax, ay) of its bounding
	// box, each in [0, 1], lies at (x, y).
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

// Event is an input event delivered to listeners.
type Event struct {
	// Type is the event name, for example "click".
	Type string

	// X and Y locate pointer events in surface pixels.
	X, Y float64
}

// Listener handles an event.
type Listener func(Event)

// ListenerID identifies a registered listener. Go functions are not
// comparable, so removal is by ID rather than by function value.
type ListenerID uint64

// EventTarget is implemented by surfaces that deliver input events.
type EventTarget interface {
	// AddEventListener registers fn for events named event.
	AddEventListener(event string, fn Listener) ListenerID

	// RemoveEventListener unregisters the listener with the given id.
	// Removing an unknown id is a no-op.
	RemoveEventListener(event string, id ListenerID)
}
