package sequence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pictoplace/pictoplace/pkg/errors"
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

const tomlManifest = `
name = "demo"
word = "GA"
grid_mode = "diamond"

[[beats]]
letter = "G"

[beats.primary]
category = "pro"
start = "w"
end = "n"
sense = "cw"
turns = 1.0
start_ori = "in"
end_ori = "in"

[beats.secondary]
category = "anti"
start = "e"
end = "n"
sense = "ccw"
turns = 1.0
start_ori = "in"
end_ori = "in"

[[beats]]
letter = "A"
grid_mode = "box"

[beats.primary]
category = "pro"
start = "ne"
end = "se"
sense = "cw"
turns = 0.0
start_ori = "in"
end_ori = "out"

[beats.secondary]
category = "pro"
start = "sw"
end = "nw"
sense = "cw"
turns = 0.0
start_ori = "in"
end_ori = "out"
`

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	seq, err := Load(writeManifest(t, "demo.toml", tomlManifest))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if seq.Name != "demo" || seq.Word != "GA" {
		t.Errorf("header = %q/%q, want demo/GA", seq.Name, seq.Word)
	}
	if seq.GridMode != grid.ModeDiamond {
		t.Errorf("grid mode = %s, want diamond", seq.GridMode)
	}
	if len(seq.Beats) != 2 {
		t.Fatalf("beats = %d, want 2", len(seq.Beats))
	}

	g := seq.Beats[0]
	if g.Letter != "G" || g.Primary.Category != pictograph.Pro || g.Primary.Start != grid.West {
		t.Errorf("first beat = %+v", g)
	}
	if g.Primary.Color != pictograph.Primary || g.Secondary.Color != pictograph.Secondary {
		t.Error("colors not assigned by position")
	}

	// Per-beat grid mode override
	if seq.Beats[1].GridMode != grid.ModeBox {
		t.Errorf("second beat mode = %s, want box", seq.Beats[1].GridMode)
	}

	if got := seq.Letters(); len(got) != 2 || got[0] != "G" || got[1] != "A" {
		t.Errorf("Letters() = %v", got)
	}
}

func TestLoadJSONManifest(t *testing.T) {
	content := `{
		"name": "single",
		"grid_mode": "box",
		"beats": [{
			"letter": "Λ",
			"primary": {"category": "dash", "start": "ne", "end": "sw", "sense": "none", "turns": 0},
			"secondary": {"category": "static", "start": "nw", "end": "nw", "sense": "none", "end_ori": "in", "turns": 0}
		}]
	}`
	seq, err := Load(writeManifest(t, "single.json", content))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if seq.GridMode != grid.ModeBox {
		t.Errorf("grid mode = %s, want box", seq.GridMode)
	}
	if seq.Beats[0].Letter != pictograph.LetterLambda {
		t.Errorf("letter = %s, want Λ", seq.Beats[0].Letter)
	}

	// Same payload through the API entry point
	if _, err := LoadJSON([]byte(content)); err != nil {
		t.Errorf("LoadJSON() failed: %v", err)
	}
}

func TestLoadDefaultsGridModeToDiamond(t *testing.T) {
	content := `{
		"beats": [{
			"letter": "A",
			"primary": {"category": "pro", "start": "n", "end": "e", "sense": "cw"},
			"secondary": {"category": "pro", "start": "s", "end": "w", "sense": "cw"}
		}]
	}`
	seq, err := LoadJSON([]byte(content))
	if err != nil {
		t.Fatalf("LoadJSON() failed: %v", err)
	}
	if seq.GridMode != grid.ModeDiamond {
		t.Errorf("default grid mode = %s, want diamond", seq.GridMode)
	}
}

func TestLoadRejectsInvalidManifests(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{
			name:    "no beats",
			content: `{"beats": []}`,
			code:    errors.ErrCodeInvalidManifest,
		},
		{
			name:    "bad grid mode",
			content: `{"grid_mode": "hex", "beats": [{"letter": "A"}]}`,
			code:    errors.ErrCodeInvalidGridMode,
		},
		{
			name: "bad category",
			content: `{"beats": [{
				"letter": "A",
				"primary": {"category": "spin", "start": "n", "end": "e", "sense": "cw"},
				"secondary": {"category": "pro", "start": "s", "end": "w", "sense": "cw"}
			}]}`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "bad location",
			content: `{"beats": [{
				"letter": "A",
				"primary": {"category": "pro", "start": "north", "end": "e", "sense": "cw"},
				"secondary": {"category": "pro", "start": "s", "end": "w", "sense": "cw"}
			}]}`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "negative turns",
			content: `{"beats": [{
				"letter": "A",
				"primary": {"category": "pro", "start": "n", "end": "e", "sense": "cw", "turns": -1},
				"secondary": {"category": "pro", "start": "s", "end": "w", "sense": "cw"}
			}]}`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "moving static",
			content: `{"beats": [{
				"letter": "A",
				"primary": {"category": "static", "start": "n", "end": "e", "sense": "none"},
				"secondary": {"category": "pro", "start": "s", "end": "w", "sense": "cw"}
			}]}`,
			code: errors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON([]byte(tt.content))
			if err == nil {
				t.Fatal("LoadJSON() = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load(writeManifest(t, "demo.yaml", "beats: []"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error code = %v, want UNSUPPORTED", errors.GetCode(err))
	}
}

func TestLoadRejectsHiddenFile(t *testing.T) {
	_, err := Load(writeManifest(t, ".demo.toml", tomlManifest))
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("error code = %v, want INVALID_MANIFEST", errors.GetCode(err))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
