package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) (*TcellScreen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(20, 6)
	scr := NewTcellScreen(sim)
	t.Cleanup(scr.Close)
	return scr, sim
}

func TestTcellReadKeyMapping(t *testing.T) {
	scr, sim := newSimScreen(t)

	cases := []struct {
		key  tcell.Key
		r    rune
		want Key
	}{
		{tcell.KeyRune, 'g', Key('g')},
		{tcell.KeyRune, ' ', Key(' ')},
		{tcell.KeyEnter, '\r', KeyEnter},
		{tcell.KeyBackspace2, 0, KeyBackspace},
		{tcell.KeyUp, 0, KeyUp},
		{tcell.KeyPgUp, 0, KeyPageUp},
		{tcell.KeyCtrlR, 0, KeyCtrlR},
		{tcell.KeyF5, 0, KeyF5},
	}
	for _, tc := range cases {
		sim.InjectKey(tc.key, tc.r, tcell.ModNone)
	}

	// The pending resize events from Init and SetSize are absorbed
	// inside ReadKey, so the injected keys come back in order
	for _, tc := range cases {
		got, err := scr.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey: %v", err)
		}
		if got != tc.want {
			t.Errorf("Expected key %d, got %d", tc.want, got)
		}
	}
}

func TestKeyFromEventUnmapped(t *testing.T) {
	cases := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyF13, 0, tcell.ModNone),
	}
	for _, ev := range cases {
		if got := keyFromEvent(ev); got != KeyNone {
			t.Errorf("Expected KeyNone for %v, got %d", ev.Key(), got)
		}
	}
}

func TestTcellWriteAt(t *testing.T) {
	scr, sim := newSimScreen(t)

	scr.WriteAt(1, 2, "hi", Fg(ColorGreen).Bold())
	scr.Flush()

	cells, w, _ := sim.GetContents()
	for i, want := range []rune{'h', 'i'} {
		cell := cells[1*w+2+i]
		if len(cell.Runes) == 0 || cell.Runes[0] != want {
			t.Fatalf("Cell %d: expected %q, got %v", i, want, cell.Runes)
		}
		fg, _, attrs := cell.Style.Decompose()
		if fg != tcell.ColorLime {
			t.Errorf("Cell %d: expected lime foreground, got %v", i, fg)
		}
		if attrs&tcell.AttrBold == 0 {
			t.Errorf("Cell %d: expected bold attribute", i)
		}
	}
}

func TestTcellDimensions(t *testing.T) {
	scr, _ := newSimScreen(t)

	h, w := scr.Dimensions()
	if h != 6 || w != 20 {
		t.Errorf("Expected 6x20, got %dx%d", h, w)
	}
}

func TestTcellReadKeyAfterClose(t *testing.T) {
	scr, sim := newSimScreen(t)

	// Drain the startup resize events before closing
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	if _, err := scr.ReadKey(); err != nil {
		t.Fatalf("ReadKey: %v", err)
	}

	scr.Close()
	if _, err := scr.ReadKey(); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}
