package placement

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// Context carries the pictograph-level facts a resolver needs beyond
// the motion itself: the symbolic letter, the grid mode, and a
// capability to reach the other motions. The engine never looks these
// up from global state.
type Context struct {
	Letter  pictograph.Letter
	Mode    grid.Mode
	Motions pictograph.MotionSource
}

// ContextFor builds a Context from a pictograph value.
func ContextFor(p *pictograph.Pictograph) Context {
	return Context{Letter: p.Letter, Mode: p.GridMode, Motions: p}
}

// other returns the opposite color's motion, nil-safe.
func (c Context) other(col pictograph.Color) *pictograph.Motion {
	if c.Motions == nil {
		return nil
	}
	return c.Motions.OtherMotion(col)
}

// shift returns the pictograph's shift motion, nil-safe.
func (c Context) shift() *pictograph.Motion {
	if c.Motions == nil {
		return nil
	}
	return c.Motions.ShiftMotion()
}
