package pictograph

import "github.com/pictoplace/pictoplace/pkg/grid"

// MotionSource is the capability the placement engine uses to reach
// the motions of a pictograph it is placing. Keeping this a small
// interface means resolvers carry no hidden context and tests can use
// stub implementations.
type MotionSource interface {
	// OtherMotion returns the motion of the opposite color, or nil
	// when none exists.
	OtherMotion(c Color) *Motion

	// ShiftMotion returns the pictograph's shift motion (pro, anti,
	// or float), or nil when none exists.
	ShiftMotion() *Motion
}

// Pictograph is one symbolic diagram: a letter, a grid mode, and the
// two colored motions it depicts.
type Pictograph struct {
	Letter    Letter    `json:"letter"`
	GridMode  grid.Mode `json:"grid_mode"`
	Primary   Motion    `json:"primary"`
	Secondary Motion    `json:"secondary"`
}

// Motion returns the motion of the given color.
func (p *Pictograph) Motion(c Color) *Motion {
	if c == Primary {
		return &p.Primary
	}
	return &p.Secondary
}

// OtherMotion returns the motion of the opposite color.
func (p *Pictograph) OtherMotion(c Color) *Motion {
	return p.Motion(c.Other())
}

// ShiftMotion returns the first shift-category motion of the
// pictograph, or nil when neither motion is a shift.
func (p *Pictograph) ShiftMotion() *Motion {
	if p.Primary.Category.IsShift() {
		return &p.Primary
	}
	if p.Secondary.Category.IsShift() {
		return &p.Secondary
	}
	return nil
}

// DashMotion returns the first dash-category motion, or nil.
func (p *Pictograph) DashMotion() *Motion {
	if p.Primary.Category == Dash {
		return &p.Primary
	}
	if p.Secondary.Category == Dash {
		return &p.Secondary
	}
	return nil
}

// EndsBeta reports whether both motions end at the same grid location.
func (p *Pictograph) EndsBeta() bool {
	return p.Primary.End == p.Secondary.End
}

var _ MotionSource = (*Pictograph)(nil)
