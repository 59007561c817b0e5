package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/RICE-COMP318-FALL23/radixsort-cll/config"
	"github.com/RICE-COMP318-FALL23/radixsort-cll/radixsort"
)

func writeInput(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		body   string
		want   string
	}{
		{"text lines", config.FormatText, config.OutputLines, "10\n23\n5\n100\n", "5\n23\n100\n"},
		{"text inline", config.FormatText, config.OutputInline, "16 1a ff 09", "09 1a ff\n"},
		{"json to json", config.FormatJSON, config.OutputJSON, `{"radix": 16, "items": ["ff", "1a"]}`, "[\"1a\",\"ff\"]\n"},
		{"json hex numbers", config.FormatJSON, config.OutputInline, `{"radix": 16, "items": [255, "1a", 10]}`, "a 1a ff\n"},
		{"radix only lines", config.FormatText, config.OutputLines, "10\n", ""},
		{"radix only json", config.FormatText, config.OutputJSON, "10\n", "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load("")
			if err != nil {
				t.Fatal(err)
			}
			cfg.Input.Format = tt.input
			cfg.Output.Format = tt.output

			var out bytes.Buffer
			if err := run(cfg, writeInput(t, "input.txt", tt.body), &out); err != nil {
				t.Fatalf("run() failed: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, out.String())
			}
		})
	}
}

func TestRunEmptyFile(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	err = run(cfg, writeInput(t, "empty.txt", ""), &out)
	if !errors.Is(err, radixsort.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := run(cfg, filepath.Join(t.TempDir(), "nope.txt"), &bytes.Buffer{}); err == nil {
		t.Error("Expected error for missing input file")
	}
}

func TestRunInvalidJSON(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Input.Format = config.FormatJSON
	if err := run(cfg, writeInput(t, "in.json", `{"radix": 10, "items": ["1a"]}`), &bytes.Buffer{}); err == nil {
		t.Error("Expected malformed digit error")
	}
}
