package adjust

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pictoplace/pictoplace/pkg/errors"
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

func TestLookupFallsBackToDefaults(t *testing.T) {
	table := Builtin()
	table.Letters["G"] = map[pictograph.Category]grid.Point{
		pictograph.Pro: {X: 60, Y: 40},
	}

	// Letter override wins
	if got := table.Lookup("G", pictograph.Pro); got != (grid.Point{X: 60, Y: 40}) {
		t.Errorf("Lookup(G, pro) = %v, want override (60,40)", got)
	}

	// Missing category falls back to the default
	if got := table.Lookup("G", pictograph.Dash); got != table.Defaults[pictograph.Dash] {
		t.Errorf("Lookup(G, dash) = %v, want category default", got)
	}

	// Missing letter falls back to the default
	if got := table.Lookup("Q", pictograph.Pro); got != table.Defaults[pictograph.Pro] {
		t.Errorf("Lookup(Q, pro) = %v, want category default", got)
	}
}

func TestMerge(t *testing.T) {
	base := Builtin()
	overlay := &Table{
		Defaults: map[pictograph.Category]grid.Point{
			pictograph.Pro: {X: 99, Y: 99},
		},
		Letters: map[pictograph.Letter]map[pictograph.Category]grid.Point{
			"A": {pictograph.Anti: {X: 1, Y: 2}},
		},
	}

	merged := base.Merge(overlay)

	if got := merged.Defaults[pictograph.Pro]; got != (grid.Point{X: 99, Y: 99}) {
		t.Errorf("overlay default not applied: %v", got)
	}
	if got := merged.Defaults[pictograph.Dash]; got != base.Defaults[pictograph.Dash] {
		t.Errorf("base default lost: %v", got)
	}
	if got := merged.Lookup("A", pictograph.Anti); got != (grid.Point{X: 1, Y: 2}) {
		t.Errorf("overlay letter override not applied: %v", got)
	}

	// Base is untouched
	if base.Defaults[pictograph.Pro] == (grid.Point{X: 99, Y: 99}) {
		t.Error("Merge modified the receiver")
	}

	// Nil overlay is a copy
	copied := base.Merge(nil)
	if copied.Defaults[pictograph.Pro] != base.Defaults[pictograph.Pro] {
		t.Error("Merge(nil) should copy the receiver")
	}
}

func TestFileSourceJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adjust.json")
	content := `{"defaults":{"pro":{"x":10,"y":20}},"letters":{"W-":{"dash":{"x":5,"y":5}}}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := table.Defaults[pictograph.Pro]; got != (grid.Point{X: 10, Y: 20}) {
		t.Errorf("pro default = %v, want (10,20)", got)
	}
	if got := table.Lookup("W-", pictograph.Dash); got != (grid.Point{X: 5, Y: 5}) {
		t.Errorf("W- dash override = %v, want (5,5)", got)
	}
}

func TestFileSourceErrors(t *testing.T) {
	// Missing file
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}.Load(context.Background())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}

	// Unsupported extension
	path := filepath.Join(t.TempDir(), "adjust.yaml")
	if err := os.WriteFile(path, []byte("defaults: {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = FileSource{Path: path}.Load(context.Background())
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("unsupported format error code = %v, want UNSUPPORTED", errors.GetCode(err))
	}

	// Invalid JSON
	path = filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = FileSource{Path: path}.Load(context.Background())
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("invalid JSON error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestResolve(t *testing.T) {
	// Empty ref returns builtins
	table, err := Resolve(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("Resolve(\"\") failed: %v", err)
	}
	if table.Defaults[pictograph.Pro] != Builtin().Defaults[pictograph.Pro] {
		t.Error("empty ref should return built-in defaults")
	}

	// Remote ref merges over builtins
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"defaults":{"static":{"x":7,"y":0}}}`))
	}))
	defer srv.Close()

	table, err = Resolve(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Resolve(url) failed: %v", err)
	}
	if got := table.Defaults[pictograph.Static]; got != (grid.Point{X: 7, Y: 0}) {
		t.Errorf("remote static default = %v, want (7,0)", got)
	}
	// Builtin entries survive the merge
	if got := table.Defaults[pictograph.Pro]; got != Builtin().Defaults[pictograph.Pro] {
		t.Errorf("builtin pro default lost after merge: %v", got)
	}
}
