package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pipeline"
)

func testBeats() []pipeline.BeatPlacement {
	return []pipeline.BeatPlacement{
		{
			Letter:   "G",
			GridMode: grid.ModeDiamond,
			Primary: pipeline.PropPlacement{
				Color:    "primary",
				Location: "nw",
				State:    "resolved",
				Offset:   grid.Point{X: 55, Y: -55},
				Rotation: 180,
			},
			Secondary: pipeline.PropPlacement{
				Color:    "secondary",
				Location: "ne",
				State:    "resolved",
				Offset:   grid.Point{X: -55, Y: -55},
			},
		},
		{
			Letter:   "Λ",
			GridMode: grid.ModeDiamond,
			EndsBeta: true,
			Primary:  pipeline.PropPlacement{Color: "primary", State: "resolved", Beta: grid.Point{Y: -25}},
			Secondary: pipeline.PropPlacement{
				Color: "secondary",
				State: "resolved",
				Beta:  grid.Point{Y: 25},
			},
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBeatModelNavigation(t *testing.T) {
	m := NewBeatModel("GΛ", testBeats())

	next, _ := m.Update(keyMsg("l"))
	m = next.(BeatModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after next, want 1", m.Cursor)
	}

	// Cursor clamps at the last beat
	next, _ = m.Update(keyMsg("l"))
	m = next.(BeatModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d past end, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("h"))
	m = next.(BeatModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after prev, want 0", m.Cursor)
	}

	next, _ = m.Update(keyMsg("G"))
	m = next.(BeatModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after end key, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("g"))
	m = next.(BeatModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after home key, want 0", m.Cursor)
	}
}

func TestBeatModelQuit(t *testing.T) {
	m := NewBeatModel("G", testBeats())
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestBeatModelView(t *testing.T) {
	m := NewBeatModel("GΛ", testBeats())

	view := m.View()
	if !strings.Contains(view, "G (diamond)") {
		t.Errorf("view should show the current letter, got:\n%s", view)
	}
	if !strings.Contains(view, "resolved") {
		t.Error("view should show placement state")
	}
	if !strings.Contains(view, "Beat 1 of 2") {
		t.Error("view should show beat position")
	}

	m.Cursor = 1
	view = m.View()
	if !strings.Contains(view, "β") {
		t.Error("view should flag beta endings")
	}
}

func TestBeatModelViewEmpty(t *testing.T) {
	m := NewBeatModel("", nil)
	if view := m.View(); !strings.Contains(view, "No beats") {
		t.Errorf("empty view = %q", view)
	}
}
