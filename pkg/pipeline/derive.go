package pipeline

import (
	"github.com/pictoplace/pictoplace/pkg/adjust"
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
	"github.com/pictoplace/pictoplace/pkg/placement"
	"github.com/pictoplace/pictoplace/pkg/sequence"
)

// PropPlacement is the derived placement of one prop's glyph, in the
// shape API consumers and encoders expect.
type PropPlacement struct {
	Color    pictograph.Color `json:"color"`
	Location grid.Location    `json:"location,omitempty"`
	State    string           `json:"state"`
	Reason   string           `json:"reason,omitempty"`
	Offset   grid.Point       `json:"offset"`
	Rotation int              `json:"rotation"`
	Mirrored bool             `json:"mirrored"`
	Beta     grid.Point       `json:"beta"`
}

// BeatPlacement pairs the two prop placements of one beat.
type BeatPlacement struct {
	Letter    pictograph.Letter `json:"letter"`
	GridMode  grid.Mode         `json:"grid_mode"`
	EndsBeta  bool              `json:"ends_beta"`
	Primary   PropPlacement     `json:"primary"`
	Secondary PropPlacement     `json:"secondary"`
}

// Derive computes placements for every beat of a sequence.
// It is a pure function: same sequence, table, and options always
// produce the same slice.
func Derive(seq *sequence.Sequence, table *adjust.Table, rotOpts placement.RotationOptions, skipBeta bool) []BeatPlacement {
	out := make([]BeatPlacement, 0, len(seq.Beats))
	for i := range seq.Beats {
		beat := &seq.Beats[i]
		ctx := placement.ContextFor(beat)

		var beta placement.BetaResult
		endsBeta := beat.EndsBeta()
		if endsBeta && !skipBeta {
			beta = placement.BetaSeparation(beat)
		}

		out = append(out, BeatPlacement{
			Letter:    beat.Letter,
			GridMode:  beat.GridMode,
			EndsBeta:  endsBeta,
			Primary:   deriveProp(&beat.Primary, ctx, table, rotOpts, beta.Primary),
			Secondary: deriveProp(&beat.Secondary, ctx, table, rotOpts, beta.Secondary),
		})
	}
	return out
}

func deriveProp(m *pictograph.Motion, ctx placement.Context, table *adjust.Table, rotOpts placement.RotationOptions, beta grid.Point) PropPlacement {
	base := table.Lookup(ctx.Letter, m.Category)
	res := placement.Place(m, ctx, base, rotOpts)

	return PropPlacement{
		Color:    m.Color,
		Location: res.Location.Location,
		State:    res.Location.State.String(),
		Reason:   res.Location.Reason,
		Offset:   res.Offset,
		Rotation: res.Rotation,
		Mirrored: res.Mirrored,
		Beta:     beta,
	}
}
