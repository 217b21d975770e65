package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	text := `generator: sphere
bases: [2, 3]
count: 500
seed: 7
`
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Generator != "sphere" {
		t.Errorf("Generator = %q, want sphere", c.Generator)
	}
	if len(c.Bases) != 2 || c.Bases[0] != 2 || c.Bases[1] != 3 {
		t.Errorf("Bases = %v, want [2 3]", c.Bases)
	}
	if c.Count != 500 {
		t.Errorf("Count = %d, want 500", c.Count)
	}
	if c.Seed != 7 {
		t.Errorf("Seed = %d, want 7", c.Seed)
	}
	if len(c.Scales) != 0 {
		t.Errorf("Scales = %v, want empty", c.Scales)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Load on a missing file = nil, want error")
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("generator: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load on malformed YAML = nil, want error")
	}
}
