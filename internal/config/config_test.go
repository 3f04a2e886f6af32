package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Load on missing file returned error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoad_Clamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	content := "rows=9\ncolumns=5\nset=abc\nplayers=2\ncolour=red\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Config{Rows: 3, Columns: 5, ArtSet: 1, Players: 2}
	if cfg != want {
		t.Errorf("Expected %+v, got %+v", want, cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config")
	in := Config{Rows: 4, Columns: 5, ArtSet: 2, Players: 2}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{"rows=4", "columns=5", "set=2", "players=2"} {
		if !strings.Contains(string(data), line) {
			t.Errorf("Saved file missing %q:\n%s", line, data)
		}
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out != in {
		t.Errorf("Round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want Config
	}{
		{Config{3, 4, 1, 1}, Config{3, 4, 1, 1}},
		{Config{4, 5, 2, 2}, Config{4, 5, 2, 2}},
		{Config{2, 6, 0, 3}, Config{3, 4, 1, 1}},
		{Config{}, Default()},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(); got != tt.want {
			t.Errorf("Clamp(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestSet(t *testing.T) {
	cfg := Default()
	if err := cfg.Set(KeyColumns, "5"); err != nil {
		t.Fatal(err)
	}
	if cfg.Columns != 5 {
		t.Errorf("Expected 5 columns, got %d", cfg.Columns)
	}
	if err := cfg.Set("colour", "1"); err == nil {
		t.Error("Expected error for unknown key")
	}
	if err := cfg.Set(KeyRows, "many"); err == nil {
		t.Error("Expected error for non-numeric value")
	}
}

func TestString(t *testing.T) {
	got := Config{Rows: 4, Columns: 4, ArtSet: 2, Players: 1}.String()
	want := "columns=4\nplayers=1\nrows=4\nset=2"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
