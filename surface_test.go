package checkers

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// *gg.Context is the reference Surface.
var _ Surface = (*gg.Context)(nil)
var _ TextSurface = (*gg.Context)(nil)

var errDrawFailed = errors.New("draw failed")

// drawOp is one painted circle recorded by fakeSurface.
type drawOp struct {
	kind   string // "stroke" or "fill"
	x, y   float64
	r      float64
	color  color.Color
	angle1 float64
	angle2 float64
}

// fakeSurface records circles painted on it.
type fakeSurface struct {
	w, h int

	ops    []drawOp
	labels []string

	arc     *drawOp
	current color.Color

	// failAt makes the n-th paint call (1-based) fail; 0 never fails.
	failAt int
	paints int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h}
}

func (f *fakeSurface) Width() int  { return f.w }
func (f *fakeSurface) Height() int { return f.h }
func (f *fakeSurface) ClearPath()  { f.arc = nil }

func (f *fakeSurface) DrawArc(x, y, r, angle1, angle2 float64) {
	f.arc = &drawOp{x: x, y: y, r: r, angle1: angle1, angle2: angle2}
}

func (f *fakeSurface) SetColor(c color.Color) { f.current = c }

func (f *fakeSurface) Stroke() error { return f.paint("stroke") }
func (f *fakeSurface) Fill() error   { return f.paint("fill") }

func (f *fakeSurface) paint(kind string) error {
	f.paints++
	if f.failAt > 0 && f.paints == f.failAt {
		f.arc = nil
		return errDrawFailed
	}
	if f.arc == nil {
		return errors.New("paint without path")
	}
	op := *f.arc
	op.kind = kind
	op.color = f.current
	f.ops = append(f.ops, op)
	f.arc = nil
	return nil
}

// fakeTextSurface adds text support to fakeSurface.
type fakeTextSurface struct {
	*fakeSurface
}

func (f fakeTextSurface) DrawStringAnchored(s string, x, y, ax, ay float64) {
	f.labels = append(f.labels, s)
}

// fakeEventSurface adds an event registry to fakeSurface.
type fakeEventSurface struct {
	*fakeSurface
	next      ListenerID
	listeners map[string]map[ListenerID]Listener
}

func newFakeEventSurface(size int) *fakeEventSurface {
	return &fakeEventSurface{
		fakeSurface: newFakeSurface(size, size),
		listeners:   make(map[string]map[ListenerID]Listener),
	}
}

func (f *fakeEventSurface) AddEventListener(event string, fn Listener) ListenerID {
	f.next++
	if f.listeners[event] == nil {
		f.listeners[event] = make(map[ListenerID]Listener)
	}
	f.listeners[event][f.next] = fn
	return f.next
}

func (f *fakeEventSurface) RemoveEventListener(event string, id ListenerID) {
	delete(f.listeners[event], id)
}

func (f *fakeEventSurface) dispatch(ev Event) {
	for _, fn := range f.listeners[ev.Type] {
		fn(ev)
	}
}

// newGeneratedBoard returns a generated board over a size×size fake surface.
func newGeneratedBoard(t testing.TB, size int, opts ...BoardOption) (*Board, *fakeSurface) {
	t.Helper()
	s := newFakeSurface(size, size)
	b, err := NewBoard(s, opts...)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if err := b.Generate(color.Black); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return b, s
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
