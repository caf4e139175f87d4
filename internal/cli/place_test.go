package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const testManifest = `
name = "demo"
word = "G"
grid_mode = "diamond"

[[beats]]
letter = "G"

[beats.primary]
category = "pro"
start = "w"
end = "n"
sense = "cw"
turns = 1
start_ori = "in"
end_ori = "in"

[beats.secondary]
category = "anti"
start = "e"
end = "n"
sense = "ccw"
turns = 1
start_ori = "in"
end_ori = "in"
`

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sequence.toml")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testContext() context.Context {
	return withLogger(context.Background(), newLogger(io.Discard, log.FatalLevel))
}

func TestPlaceCommand(t *testing.T) {
	manifest := writeManifest(t)
	out := filepath.Join(t.TempDir(), "out.json")

	cmd := newPlaceCmd()
	cmd.SetArgs([]string{manifest, "-o", out, "--no-cache"})
	if err := cmd.ExecuteContext(testContext()); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var doc struct {
		Beats []struct {
			Letter string `json:"letter"`
		} `json:"beats"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc.Beats) != 1 || doc.Beats[0].Letter != "G" {
		t.Errorf("unexpected output: %s", data)
	}
}

func TestPlaceCommandMultiFormat(t *testing.T) {
	manifest := writeManifest(t)
	base := filepath.Join(t.TempDir(), "out")

	cmd := newPlaceCmd()
	cmd.SetArgs([]string{manifest, "-f", "json", "-f", "csv", "-o", base, "--no-cache"})
	if err := cmd.ExecuteContext(testContext()); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	for _, ext := range []string{".json", ".csv"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing artifact %s: %v", ext, err)
		}
	}

	csvData, err := os.ReadFile(base + ".csv")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(csvData), "beat,letter") {
		t.Errorf("csv artifact = %q", csvData)
	}
}

func TestPlaceCommandMultiFormatNeedsOutput(t *testing.T) {
	manifest := writeManifest(t)

	cmd := newPlaceCmd()
	cmd.SetArgs([]string{manifest, "-f", "json", "-f", "csv", "--no-cache"})
	if err := cmd.ExecuteContext(testContext()); err == nil {
		t.Error("multiple formats without --output should fail")
	}
}

func TestPlaceCommandMissingManifest(t *testing.T) {
	cmd := newPlaceCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.toml"), "--no-cache"})
	if err := cmd.ExecuteContext(testContext()); err == nil {
		t.Error("missing manifest should fail")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		format string
		multi  bool
		want   string
	}{
		{"stdout", "", "json", false, ""},
		{"single keeps base", "out.json", "json", false, "out.json"},
		{"multi swaps extension", "out.json", "csv", true, "out.csv"},
		{"multi appends extension", "out", "json", true, "out.json"},
		{"single ignores format", "result.data", "csv", false, "result.data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.base, tt.format, tt.multi); got != tt.want {
				t.Errorf("outputPath(%q, %q, %v) = %q, want %q", tt.base, tt.format, tt.multi, got, tt.want)
			}
		})
	}
}
