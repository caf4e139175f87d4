package sequence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pictoplace/pictoplace/pkg/errors"
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// Raw manifest shapes. Everything is a plain string here so that the
// loader owns all validation and error reporting.

type manifest struct {
	Name     string         `json:"name" toml:"name"`
	Word     string         `json:"word" toml:"word"`
	GridMode string         `json:"grid_mode" toml:"grid_mode"`
	Beats    []manifestBeat `json:"beats" toml:"beats"`
}

type manifestBeat struct {
	Letter    string         `json:"letter" toml:"letter"`
	GridMode  string         `json:"grid_mode" toml:"grid_mode"`
	Primary   manifestMotion `json:"primary" toml:"primary"`
	Secondary manifestMotion `json:"secondary" toml:"secondary"`
}

type manifestMotion struct {
	Category string  `json:"category" toml:"category"`
	Start    string  `json:"start" toml:"start"`
	End      string  `json:"end" toml:"end"`
	Sense    string  `json:"sense" toml:"sense"`
	StartOri string  `json:"start_ori" toml:"start_ori"`
	EndOri   string  `json:"end_ori" toml:"end_ori"`
	Turns    float64 `json:"turns" toml:"turns"`
}

// Load reads a sequence manifest from path. The format is chosen by
// extension: .toml or .json. The basename is validated first so that
// hidden files and oddly named manifests are rejected before any read.
func Load(path string) (*Sequence, error) {
	if err := errors.ValidateManifestFilename(filepath.Base(path)); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "manifest not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read manifest")
	}

	var m manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest TOML")
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest JSON")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest format: %s", filepath.Ext(path))
	}

	return m.toSequence()
}

// LoadJSON decodes a manifest from raw JSON, as received by the API.
func LoadJSON(data []byte) (*Sequence, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest JSON")
	}
	return m.toSequence()
}

func (m *manifest) toSequence() (*Sequence, error) {
	if len(m.Beats) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest has no beats")
	}

	mode := grid.ModeDiamond
	if m.GridMode != "" {
		parsed, err := grid.ParseMode(m.GridMode)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGridMode, err, "manifest grid mode")
		}
		mode = parsed
	}

	seq := &Sequence{
		Name:     m.Name,
		Word:     m.Word,
		GridMode: mode,
		Beats:    make([]pictograph.Pictograph, 0, len(m.Beats)),
	}

	for i, beat := range m.Beats {
		p, err := beat.toPictograph(mode)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "beat %d", i+1)
		}
		seq.Beats = append(seq.Beats, *p)
	}
	return seq, nil
}

func (b *manifestBeat) toPictograph(defaultMode grid.Mode) (*pictograph.Pictograph, error) {
	if err := errors.ValidateLetterName(b.Letter); err != nil {
		return nil, err
	}

	mode := defaultMode
	if b.GridMode != "" {
		parsed, err := grid.ParseMode(b.GridMode)
		if err != nil {
			return nil, err
		}
		mode = parsed
	}

	primary, err := b.Primary.toMotion(pictograph.Primary)
	if err != nil {
		return nil, err
	}
	secondary, err := b.Secondary.toMotion(pictograph.Secondary)
	if err != nil {
		return nil, err
	}

	return &pictograph.Pictograph{
		Letter:    pictograph.Letter(b.Letter),
		GridMode:  mode,
		Primary:   *primary,
		Secondary: *secondary,
	}, nil
}

func (mm *manifestMotion) toMotion(color pictograph.Color) (*pictograph.Motion, error) {
	cat, err := pictograph.ParseCategory(mm.Category)
	if err != nil {
		return nil, err
	}
	start, err := grid.ParseLocation(mm.Start)
	if err != nil {
		return nil, err
	}
	end, err := grid.ParseLocation(mm.End)
	if err != nil {
		return nil, err
	}
	sense, err := pictograph.ParseRotationSense(mm.Sense)
	if err != nil {
		return nil, err
	}
	startOri, err := pictograph.ParseOrientation(mm.StartOri)
	if err != nil {
		return nil, err
	}
	endOri, err := pictograph.ParseOrientation(mm.EndOri)
	if err != nil {
		return nil, err
	}
	if mm.Turns < 0 {
		return nil, errors.New(errors.ErrCodeInvalidMotion, "turns cannot be negative: %g", mm.Turns)
	}

	// Statics stay put; everything else needs a start distinct from
	// the end unless it is a dash landing back on itself, which the
	// dash tables reject anyway.
	if cat == pictograph.Static && start != end {
		return nil, errors.New(errors.ErrCodeInvalidMotion, "static motion must start and end at the same location")
	}

	return &pictograph.Motion{
		Category: cat,
		Start:    start,
		End:      end,
		Sense:    sense,
		StartOri: startOri,
		EndOri:   endOri,
		Turns:    mm.Turns,
		Color:    color,
	}, nil
}
