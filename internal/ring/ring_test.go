package ring

import (
	"math"
	"testing"
	"time"

	"github.com/ayoisaiah/focusring/internal/clock"
)

var epoch = time.Date(2025, time.July, 30, 9, 0, 0, 0, time.UTC)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLinearAnimation(t *testing.T) {
	clk := clock.NewFake(epoch)
	m := New(clk, 40)

	if v := m.Value(); v != 1 {
		t.Fatalf("a new ring should be full, got %v", v)
	}

	m.BeginAnimation(1, 6*time.Second)

	clk.Advance(3 * time.Second)

	if v := m.Value(); !near(v, 0.5) {
		t.Fatalf("expected 0.5 halfway, got %v", v)
	}

	clk.Advance(10 * time.Second)

	if v := m.Value(); v != 0 {
		t.Fatalf("expected the ring to hold 0 after completion, got %v", v)
	}

	if m.Moving() {
		t.Fatal("a completed animation should not be moving")
	}
}

func TestPartialStart(t *testing.T) {
	clk := clock.NewFake(epoch)
	m := New(clk, 40)

	m.BeginAnimation(0.5, 3*time.Second)

	clk.Advance(time.Second)

	if v := m.Value(); !near(v, 1.0/3.0) {
		t.Fatalf("expected 1/3, got %v", v)
	}
}

func TestFreezeAndResume(t *testing.T) {
	clk := clock.NewFake(epoch)
	m := New(clk, 40)

	m.BeginAnimation(1, 6*time.Second)

	clk.Advance(2 * time.Second)
	m.Freeze()

	frozen := m.Value()
	if !near(frozen, 4.0/6.0) {
		t.Fatalf("expected 2/3 when frozen, got %v", frozen)
	}

	clk.Advance(5 * time.Second)

	if v := m.Value(); v != frozen {
		t.Fatalf("a frozen ring must not move, got %v", v)
	}

	if m.Moving() {
		t.Fatal("a frozen ring should not request frames")
	}

	m.Resume(5 * time.Second)

	if v := m.Value(); !near(v, frozen) {
		t.Fatalf("resume must not jump: expected %v, got %v", frozen, v)
	}

	clk.Advance(time.Second)

	if v := m.Value(); !near(v, 0.5) {
		t.Fatalf("expected 0.5 one second after resuming, got %v", v)
	}
}

func TestSnapToFull(t *testing.T) {
	clk := clock.NewFake(epoch)
	m := New(clk, 40)

	m.BeginAnimation(1, time.Second)
	clk.Advance(500 * time.Millisecond)
	m.SnapToFull()

	if v := m.Value(); v != 1 {
		t.Fatalf("expected a full ring, got %v", v)
	}

	// resuming a cancelled animation does nothing
	m.Resume(time.Second)

	if v := m.Value(); v != 1 {
		t.Fatalf("expected a full ring, got %v", v)
	}
}

func TestColorCrossFade(t *testing.T) {
	clk := clock.NewFake(epoch)
	m := New(clk, 40)

	m.SetColor("#FF3B30", 0)

	if c := m.Color(); c != "#ff3b30" {
		t.Fatalf("expected #ff3b30, got %s", c)
	}

	m.SetColor("#34C759", 300*time.Millisecond)

	if c := m.Color(); c != "#ff3b30" {
		t.Fatalf("fade should start from the current colour, got %s", c)
	}

	if !m.Moving() {
		t.Fatal("a fading ring should request frames")
	}

	clk.Advance(150 * time.Millisecond)

	if c := m.Color(); c == "#ff3b30" || c == "#34c759" {
		t.Fatalf("expected a blended colour midway, got %s", c)
	}

	clk.Advance(150 * time.Millisecond)

	if c := m.Color(); c != "#34c759" {
		t.Fatalf("expected #34c759 after the fade, got %s", c)
	}

	m.SetColor("not-a-colour", 0)

	if c := m.Color(); c != "#34c759" {
		t.Fatalf("an invalid colour should be ignored, got %s", c)
	}
}

func TestFrameLoop(t *testing.T) {
	clk := clock.NewFake(epoch)
	m := New(clk, 40)

	if m.Frame() != nil {
		t.Fatal("an idle ring should not request frames")
	}

	m.BeginAnimation(1, time.Second)

	if m.Frame() == nil {
		t.Fatal("an animating ring should request frames")
	}

	stale := FrameMsg{id: m.id, tag: m.tag}

	if m.Frame() == nil {
		t.Fatal("expected a new frame loop")
	}

	if m.Update(stale) != nil {
		t.Fatal("a superseded frame should end its loop")
	}

	if m.Update(FrameMsg{id: m.id, tag: m.tag}) == nil {
		t.Fatal("the live frame should continue the loop")
	}
}

func TestView(t *testing.T) {
	clk := clock.NewFake(epoch)
	m := New(clk, 20)

	m.SetColor("#FF3B30", 0)

	if m.View() == "" {
		t.Fatal("expected a rendered bar")
	}

	m.SetWidth(30)

	if m.Width() != 30 {
		t.Fatalf("expected width 30, got %d", m.Width())
	}
}
