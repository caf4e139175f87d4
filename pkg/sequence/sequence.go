package sequence

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// Sequence is a validated, ordered run of pictographs.
type Sequence struct {
	Name     string                  `json:"name"`
	Word     string                  `json:"word,omitempty"`
	GridMode grid.Mode               `json:"grid_mode"`
	Beats    []pictograph.Pictograph `json:"beats"`
}

// Letters returns the letter of each beat in order.
func (s *Sequence) Letters() []pictograph.Letter {
	letters := make([]pictograph.Letter, len(s.Beats))
	for i := range s.Beats {
		letters[i] = s.Beats[i].Letter
	}
	return letters
}
