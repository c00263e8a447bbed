package checkers

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(newFakeSurface(160, 160))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if b.Width() != 160 || b.Height() != 160 {
		t.Errorf("size = %dx%d, want 160x160", b.Width(), b.Height())
	}
	if b.UnitLength() != 10 {
		t.Errorf("UnitLength() = %v, want 10", b.UnitLength())
	}
	if b.Radius() != 72 {
		t.Errorf("Radius() = %v, want 72", b.Radius())
	}
	if !nearlyEqual(b.SlotRadius(), 160.0/120) {
		t.Errorf("SlotRadius() = %v, want %v", b.SlotRadius(), 160.0/120)
	}
	if b.IsGenerated() {
		t.Error("new board reports generated")
	}
	if len(b.Slots()) != 0 {
		t.Errorf("new board has %d slots", len(b.Slots()))
	}
}

func TestNewBoardRejectsBadSurface(t *testing.T) {
	tests := []struct {
		name string
		s    Surface
		want error
	}{
		{"nil surface", nil, ErrNilSurface},
		{"non-square", newFakeSurface(100, 50), ErrNonSquareSurface},
		{"tall", newFakeSurface(50, 100), ErrNonSquareSurface},
		{"empty", newFakeSurface(0, 0), ErrNonSquareSurface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.s)
			if b != nil {
				t.Errorf("NewBoard returned a board: %+v", b)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("NewBoard error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("NewBoard error = %v, want ErrValidation kind", err)
			}
		})
	}
}

func TestNonSquareSurfaceDrawsNothing(t *testing.T) {
	s := newFakeSurface(100, 50)
	if _, err := NewBoard(s); err == nil {
		t.Fatal("NewBoard succeeded on a 100x50 surface")
	}
	if len(s.ops) != 0 {
		t.Errorf("surface has %d draw ops, want 0", len(s.ops))
	}
}

func TestGenerateDrawsOutlineFirst(t *testing.T) {
	s := newFakeSurface(160, 160)
	b, err := NewBoard(s)
	if err != nil {
		t.Fatal(err)
	}
	red := color.RGBA{R: 255, A: 255}
	if err := b.Generate(red); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(s.ops) == 0 {
		t.Fatal("Generate drew nothing")
	}
	outline := s.ops[0]
	if outline.kind != "stroke" || outline.x != 80 || outline.y != 80 || outline.r != 72 {
		t.Errorf("outline = %+v, want stroke at (80, 80) r=72", outline)
	}
	if outline.color != red {
		t.Errorf("outline color = %v, want %v", outline.color, red)
	}
	if outline.angle1 != 0 || !nearlyEqual(outline.angle2, 2*math.Pi) {
		t.Errorf("outline arc = [%v, %v], want full circle", outline.angle1, outline.angle2)
	}

	// One outline plus one stroked circle per slot, all black.
	if len(s.ops) != 1+len(b.Slots()) {
		t.Errorf("draw ops = %d, want %d", len(s.ops), 1+len(b.Slots()))
	}
	for i, op := range s.ops[1:] {
		if op.kind != "stroke" || op.color != color.Black || !nearlyEqual(op.r, b.SlotRadius()) {
			t.Errorf("slot op %d = %+v", i, op)
			break
		}
	}
}

func TestGenerateSlotCount(t *testing.T) {
	tests := []struct {
		name     string
		identity SlotIdentity
		want     int
	}{
		{"cell identity", CellIdentity, 121},
		{"legacy xy identity", LegacyXYIdentity, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newGeneratedBoard(t, 160, WithSlotIdentity(tt.identity))
			slots := b.Slots()
			if len(slots) != tt.want {
				t.Errorf("slots = %d, want %d", len(slots), tt.want)
			}
			if len(slots) >= Quads*Span*Span {
				t.Errorf("slots = %d, want fewer than %d candidates", len(slots), Quads*Span*Span)
			}
			for i := range slots {
				for j := i + 1; j < len(slots); j++ {
					if slots[i].Equal(slots[j]) {
						t.Fatalf("slots %v and %v are equal", slots[i].Coordinate(), slots[j].Coordinate())
					}
				}
			}
		})
	}
}

func TestGenerateSlotsAreDistinctPixels(t *testing.T) {
	b, _ := newGeneratedBoard(t, 640)
	slots := b.Slots()
	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].Position().Distance(slots[j].Position()) < b.UnitLength()/2 {
				t.Fatalf("slots %v and %v overlap", slots[i].Coordinate(), slots[j].Coordinate())
			}
		}
	}
}

func TestGenerateTwice(t *testing.T) {
	b, s := newGeneratedBoard(t, 160)
	ops, slots := len(s.ops), len(b.Slots())

	err := b.Generate(color.Black)
	if !errors.Is(err, ErrAlreadyGenerated) || !errors.Is(err, ErrPrecondition) {
		t.Errorf("second Generate error = %v, want ErrAlreadyGenerated", err)
	}
	if len(s.ops) != ops {
		t.Errorf("second Generate drew %d ops", len(s.ops)-ops)
	}
	if len(b.Slots()) != slots {
		t.Errorf("slots = %d after second Generate, want %d", len(b.Slots()), slots)
	}
}

func TestGenerateDrawFailure(t *testing.T) {
	for _, failAt := range []int{1, 2, 50} {
		s := newFakeSurface(160, 160)
		s.failAt = failAt
		b, err := NewBoard(s)
		if err != nil {
			t.Fatal(err)
		}
		if err := b.Generate(color.Black); !errors.Is(err, errDrawFailed) {
			t.Errorf("failAt=%d: Generate error = %v, want %v", failAt, err, errDrawFailed)
		}
		if b.IsGenerated() {
			t.Errorf("failAt=%d: board generated after draw failure", failAt)
		}
		if len(b.Slots()) != 0 {
			t.Errorf("failAt=%d: %d slots after draw failure", failAt, len(b.Slots()))
		}
	}
}

func TestGenerateNilColorDefaultsToBlack(t *testing.T) {
	s := newFakeSurface(160, 160)
	b, _ := NewBoard(s)
	if err := b.Generate(nil); err != nil {
		t.Fatal(err)
	}
	if s.ops[0].color != color.Black {
		t.Errorf("outline color = %v, want black", s.ops[0].color)
	}
}

func TestSlotColorOption(t *testing.T) {
	gray := color.Gray{Y: 0x44}
	_, s := newGeneratedBoard(t, 160, WithSlotColor(gray))
	if s.ops[1].color != gray {
		t.Errorf("slot color = %v, want %v", s.ops[1].color, gray)
	}
}

func TestIsOnBoard(t *testing.T) {
	b, err := NewBoard(newFakeSurface(160, 160))
	if err != nil {
		t.Fatal(err)
	}
	for quad := 0; quad < Quads; quad++ {
		for x := 0; x < Span; x++ {
			for y := 0; y < Span; y++ {
				if c := NewCoordinate(quad, x, y); !b.IsOnBoard(c) {
					t.Errorf("IsOnBoard(%v) = false", c)
				}
			}
		}
	}

	off := []Coordinate{
		NewCoordinate(-1, 0, 0),
		NewCoordinate(6, 0, 0),
		NewCoordinate(0, -1, 0),
		NewCoordinate(0, 5, 0),
		NewCoordinate(0, 0, -1),
		NewCoordinate(0, 0, 5),
		NewCoordinate(100, 100, 100),
	}
	for _, c := range off {
		if b.IsOnBoard(c) {
			t.Errorf("IsOnBoard(%v) = true", c)
		}
	}
}

func TestNewGame(t *testing.T) {
	b, err := NewBoard(newFakeSurface(160, 160))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.NewGame(); !errors.Is(err, ErrNotGenerated) || !errors.Is(err, ErrPrecondition) {
		t.Errorf("NewGame before Generate = %v, want ErrNotGenerated", err)
	}
	if err := b.Generate(color.Black); err != nil {
		t.Fatal(err)
	}
	if err := b.NewGame(); err != nil {
		t.Errorf("NewGame after Generate = %v", err)
	}
}

func TestSlotsReturnsCopy(t *testing.T) {
	b, _ := newGeneratedBoard(t, 160)
	slots := b.Slots()
	slots[0] = nil
	if b.Slots()[0] == nil {
		t.Error("Slots() exposes the board's slice")
	}
}

func TestSlotFor(t *testing.T) {
	b, _ := newGeneratedBoard(t, 160)

	s, ok := b.SlotFor(NewCoordinate(3, 0, 2))
	if !ok {
		t.Fatal("SlotFor(q3(0,2)) not found")
	}
	if want := NewCoordinate(2, 2, 0); s.Coordinate().Cell() != want {
		t.Errorf("SlotFor(q3(0,2)) = %v, want cell %v", s.Coordinate(), want)
	}
	if _, ok := b.SlotFor(NewCoordinate(0, 5, 0)); ok {
		t.Error("SlotFor found a slot for an off-board coordinate")
	}
}

func TestEventListenersPassThrough(t *testing.T) {
	s := newFakeEventSurface(160)
	b, err := NewBoard(s)
	if err != nil {
		t.Fatal(err)
	}

	var got []Event
	id, err := b.AddEventListener("click", func(ev Event) { got = append(got, ev) })
	if err != nil {
		t.Fatalf("AddEventListener: %v", err)
	}
	s.dispatch(Event{Type: "click", X: 1, Y: 2})
	s.dispatch(Event{Type: "move", X: 3, Y: 4})
	if len(got) != 1 || got[0].X != 1 || got[0].Y != 2 {
		t.Errorf("events = %+v, want one click at (1, 2)", got)
	}

	if err := b.RemoveEventListener("click", id); err != nil {
		t.Fatalf("RemoveEventListener: %v", err)
	}
	s.dispatch(Event{Type: "click"})
	if len(got) != 1 {
		t.Errorf("listener called after removal: %+v", got)
	}
}

func TestEventListenersUnsupported(t *testing.T) {
	b, err := NewBoard(newFakeSurface(160, 160))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddEventListener("click", func(Event) {}); !errors.Is(err, ErrNoEventTarget) {
		t.Errorf("AddEventListener error = %v, want ErrNoEventTarget", err)
	}
	if err := b.RemoveEventListener("click", 1); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("RemoveEventListener error = %v, want errors.ErrUnsupported", err)
	}
}

func TestParseSlotIdentity(t *testing.T) {
	tests := []struct {
		in      string
		want    SlotIdentity
		wantErr bool
	}{
		{"", CellIdentity, false},
		{"cell", CellIdentity, false},
		{"Legacy-XY", LegacyXYIdentity, false},
		{"xy", LegacyXYIdentity, false},
		{"pixel", CellIdentity, true},
	}
	for _, tt := range tests {
		got, err := ParseSlotIdentity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSlotIdentity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSlotIdentity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if s := SlotIdentity(9).String(); s != "SlotIdentity(9)" {
		t.Errorf("SlotIdentity(9).String() = %q", s)
	}
}
