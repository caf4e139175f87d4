package placement

import (
	"testing"

	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

var octants = map[int]bool{0: true, 45: true, 90: true, 135: true, 180: true, 225: true, 270: true, 315: true}

func allLocations() []grid.Location {
	return append(append([]grid.Location{}, grid.Cardinals...), grid.Intercardinals...)
}

func TestProRotation(t *testing.T) {
	tests := []struct {
		sense pictograph.RotationSense
		loc   grid.Location
		want  int
	}{
		{pictograph.Clockwise, grid.North, 315},
		{pictograph.CounterClockwise, grid.North, 45},
		{pictograph.Clockwise, grid.Northeast, 0},
		{pictograph.CounterClockwise, grid.Southwest, 270},
	}
	ctx := ctxWith("A", grid.ModeDiamond, stubSource{})
	for _, tt := range tests {
		m := &pictograph.Motion{Category: pictograph.Pro, Sense: tt.sense}
		if got := ResolveRotation(m, tt.loc, ctx, RotationOptions{}); got != tt.want {
			t.Errorf("pro %s at %s = %d, want %d", tt.sense, tt.loc, got, tt.want)
		}
	}
}

func TestAntiRotationPatterns(t *testing.T) {
	ctx := ctxWith("B", grid.ModeDiamond, stubSource{})
	m := &pictograph.Motion{Category: pictograph.Anti, Sense: pictograph.Clockwise}

	regular := ResolveRotation(m, grid.North, ctx, RotationOptions{AntiPattern: AntiRegular})
	if regular != 45 {
		t.Errorf("anti regular cw at n = %d, want 45", regular)
	}

	// The alternate pattern agrees on cardinals and diverges on diagonals.
	if got := ResolveRotation(m, grid.North, ctx, RotationOptions{AntiPattern: AntiAlternate}); got != regular {
		t.Errorf("alternate cardinal = %d, want %d", got, regular)
	}
	reg := ResolveRotation(m, grid.Northeast, ctx, RotationOptions{AntiPattern: AntiRegular})
	alt := ResolveRotation(m, grid.Northeast, ctx, RotationOptions{AntiPattern: AntiAlternate})
	if reg == alt {
		t.Errorf("anti patterns should diverge at ne: both %d", reg)
	}
}

func TestFloatRotationUsesHandPath(t *testing.T) {
	ctx := ctxWith("F", grid.ModeDiamond, stubSource{})

	// Prop sense says ccw, but the hand travels n->e, a clockwise
	// path; the clockwise table must win.
	m := &pictograph.Motion{
		Category: pictograph.Float,
		Start:    grid.North, End: grid.East,
		Sense: pictograph.CounterClockwise,
	}
	if got := ResolveRotation(m, grid.Northeast, ctx, RotationOptions{}); got != 0 {
		t.Errorf("float cw hand path at ne = %d, want 0", got)
	}

	m.Start, m.End = grid.East, grid.North
	if got := ResolveRotation(m, grid.Northeast, ctx, RotationOptions{}); got != 90 {
		t.Errorf("float ccw hand path at ne = %d, want 90", got)
	}
}

func TestDashNoRotationAngles(t *testing.T) {
	ctx := ctxWith("D", grid.ModeDiamond, stubSource{})
	tests := []struct {
		start, end grid.Location
		want       int
	}{
		{grid.South, grid.North, 0},
		{grid.North, grid.South, 180},
		{grid.West, grid.East, 90},
		{grid.Southwest, grid.Northeast, 45},
	}
	for _, tt := range tests {
		m := &pictograph.Motion{
			Category: pictograph.Dash,
			Start:    tt.start, End: tt.end,
			Sense: pictograph.NoRotation,
		}
		if got := ResolveRotation(m, grid.East, ctx, RotationOptions{}); got != tt.want {
			t.Errorf("dash %s->%s = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDashRotationOrientationAndOverride(t *testing.T) {
	ctx := ctxWith("D", grid.ModeDiamond, stubSource{})
	m := &pictograph.Motion{
		Category: pictograph.Dash,
		Start:    grid.North, End: grid.South,
		Sense:  pictograph.Clockwise,
		EndOri: pictograph.In,
		Turns:  1,
	}

	radial := ResolveRotation(m, grid.East, ctx, RotationOptions{})
	if radial != 0 {
		t.Errorf("radial cw dash at e = %d, want 0", radial)
	}

	m.EndOri = pictograph.Clock
	nonRadial := ResolveRotation(m, grid.East, ctx, RotationOptions{})
	if nonRadial != 270 {
		t.Errorf("non-radial cw dash at e = %d, want 270", nonRadial)
	}

	override := ResolveRotation(m, grid.East, ctx, RotationOptions{DashOverride: true})
	if override != 180 {
		t.Errorf("cw dash override at e = %d, want 180", override)
	}

	m.Sense = pictograph.CounterClockwise
	override = ResolveRotation(m, grid.East, ctx, RotationOptions{DashOverride: true})
	if override != 0 {
		t.Errorf("ccw dash override at e = %d, want 0", override)
	}
}

func TestStaticRotation(t *testing.T) {
	ctx := ctxWith("α", grid.ModeDiamond, stubSource{})

	m := &pictograph.Motion{
		Category: pictograph.Static,
		Sense:    pictograph.Clockwise,
		EndOri:   pictograph.In,
	}
	if got := ResolveRotation(m, grid.East, ctx, RotationOptions{}); got != 90 {
		t.Errorf("radial cw static at e = %d, want 90", got)
	}

	m.EndOri = pictograph.Counter
	if got := ResolveRotation(m, grid.East, ctx, RotationOptions{}); got != 270 {
		t.Errorf("non-radial cw static at e = %d, want 270", got)
	}
}

func TestStaticStillOverrides(t *testing.T) {
	ctx := ctxWith("α", grid.ModeDiamond, stubSource{})

	m := &pictograph.Motion{
		Category: pictograph.Static,
		Sense:    pictograph.NoRotation,
		StartOri: pictograph.In,
	}
	if got := ResolveRotation(m, grid.North, ctx, RotationOptions{}); got != 180 {
		t.Errorf("still radial static at n = %d, want 180", got)
	}

	m.StartOri = pictograph.Clock
	if got := ResolveRotation(m, grid.North, ctx, RotationOptions{}); got != 0 {
		t.Errorf("still non-radial static at n = %d, want 0", got)
	}

	// Diagonals fall back to the clockwise sub-entry when no sense applies.
	m.StartOri = pictograph.Out
	if got := ResolveRotation(m, grid.Northeast, ctx, RotationOptions{}); got != 225 {
		t.Errorf("still radial static at ne = %d, want 225", got)
	}
}

func TestStaticStillDiagonalAngles(t *testing.T) {
	// Spinless statics on diagonals always take the clockwise table
	// entry; this pins all 8 diagonal angles so a change to the
	// fallback shows up immediately.
	ctx := ctxWith("α", grid.ModeDiamond, stubSource{})
	tests := []struct {
		loc               grid.Location
		radial, nonRadial int
	}{
		{grid.Northeast, 225, 45},
		{grid.Southeast, 315, 135},
		{grid.Southwest, 45, 225},
		{grid.Northwest, 135, 315},
	}
	for _, tt := range tests {
		m := &pictograph.Motion{
			Category: pictograph.Static,
			Start:    tt.loc, End: tt.loc,
			Sense:    pictograph.NoRotation,
			StartOri: pictograph.In,
		}
		if got := ResolveRotation(m, tt.loc, ctx, RotationOptions{}); got != tt.radial {
			t.Errorf("still radial static at %s = %d, want %d", tt.loc, got, tt.radial)
		}
		m.StartOri = pictograph.Clock
		if got := ResolveRotation(m, tt.loc, ctx, RotationOptions{}); got != tt.nonRadial {
			t.Errorf("still non-radial static at %s = %d, want %d", tt.loc, got, tt.nonRadial)
		}
	}
}

func TestDualDashLetterAngles(t *testing.T) {
	ctx := ctxWith(pictograph.LetterPhiDash, grid.ModeDiamond, stubSource{})
	m := &pictograph.Motion{
		Category: pictograph.Dash,
		Start:    grid.North, End: grid.South,
		Sense: pictograph.NoRotation,
		Color: pictograph.Primary,
	}
	if got := ResolveRotation(m, grid.East, ctx, RotationOptions{}); got != 90 {
		t.Errorf("Φ- primary n->s = %d, want 90", got)
	}

	m.Color = pictograph.Secondary
	if got := ResolveRotation(m, grid.West, ctx, RotationOptions{}); got != 270 {
		t.Errorf("Φ- secondary n->s = %d, want 270", got)
	}
}

func TestLambdaDashAnglesPerGrid(t *testing.T) {
	m := &pictograph.Motion{
		Category: pictograph.Dash,
		Start:    grid.Northeast, End: grid.Southwest,
		Sense: pictograph.NoRotation,
	}

	diamond := ResolveRotation(m, grid.Southeast, ctxWith(pictograph.LetterLambda, grid.ModeDiamond, stubSource{}), RotationOptions{})
	box := ResolveRotation(m, grid.Southeast, ctxWith(pictograph.LetterLambda, grid.ModeBox, stubSource{}), RotationOptions{})
	if diamond != 135 {
		t.Errorf("Λ diamond ne->sw = %d, want 135", diamond)
	}
	if box != 180 {
		t.Errorf("Λ box ne->sw = %d, want 180", box)
	}
}

func TestRotationAlwaysOctant(t *testing.T) {
	ctx := ctxWith("A", grid.ModeDiamond, stubSource{})
	cats := []pictograph.Category{pictograph.Pro, pictograph.Anti, pictograph.Float, pictograph.Dash, pictograph.Static}
	senses := []pictograph.RotationSense{pictograph.Clockwise, pictograph.CounterClockwise, pictograph.NoRotation}
	oris := []pictograph.Orientation{pictograph.In, pictograph.Out, pictograph.Clock, pictograph.Counter}

	for _, cat := range cats {
		for _, sense := range senses {
			for _, ori := range oris {
				for _, loc := range allLocations() {
					m := &pictograph.Motion{
						Category: cat,
						Start:    grid.North, End: grid.East,
						Sense:    sense,
						StartOri: ori, EndOri: ori,
					}
					got := ResolveRotation(m, loc, ctx, RotationOptions{})
					if !octants[got] {
						t.Fatalf("%s/%s/%s at %s = %d, not an octant angle", cat, sense, ori, loc, got)
					}
				}
			}
		}
	}
}
