package pipeline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/pictoplace/pictoplace/pkg/errors"
	"github.com/pictoplace/pictoplace/pkg/sequence"
)

// document is the top-level JSON artifact shape.
type document struct {
	Name     string          `json:"name,omitempty"`
	Word     string          `json:"word,omitempty"`
	GridMode string          `json:"grid_mode"`
	Beats    []BeatPlacement `json:"beats"`
}

// Encode serializes derived placements in the requested format.
func Encode(seq *sequence.Sequence, placements []BeatPlacement, format string, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(seq, placements, pretty)
	case FormatCSV:
		return encodeCSV(placements)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
}

func encodeJSON(seq *sequence.Sequence, placements []BeatPlacement, pretty bool) ([]byte, error) {
	doc := document{
		Name:     seq.Name,
		Word:     seq.Word,
		GridMode: string(seq.GridMode),
		Beats:    placements,
	}
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// csvHeader is the fixed column order of the CSV artifact.
var csvHeader = []string{
	"beat", "letter", "grid_mode", "color",
	"location", "state", "rotation", "mirrored",
	"offset_x", "offset_y", "beta_x", "beta_y",
}

func encodeCSV(placements []BeatPlacement) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for i, beat := range placements {
		for _, prop := range []*PropPlacement{&beat.Primary, &beat.Secondary} {
			row := []string{
				strconv.Itoa(i + 1),
				string(beat.Letter),
				string(beat.GridMode),
				string(prop.Color),
				string(prop.Location),
				prop.State,
				strconv.Itoa(prop.Rotation),
				strconv.FormatBool(prop.Mirrored),
				formatFloat(prop.Offset.X),
				formatFloat(prop.Offset.Y),
				formatFloat(prop.Beta.X),
				formatFloat(prop.Beta.Y),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
