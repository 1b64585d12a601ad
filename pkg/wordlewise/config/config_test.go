package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/wordlewise/pkg/wordlewise/internalerr"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
length: 6
only_alpha: true
cache_path: /tmp/lists.db
lists:
  allowed: allowed.txt
  answers: https://example.com/answers.txt
defaults:
  top_k: 5
  strategy: exact
  pool: allowed
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Length != 6 {
		t.Errorf("Length = %d, want 6", cfg.Length)
	}
	if !cfg.OnlyAlpha {
		t.Error("OnlyAlpha should be true")
	}
	if cfg.Lists.Answers != "https://example.com/answers.txt" {
		t.Errorf("Lists.Answers = %q", cfg.Lists.Answers)
	}
	if cfg.Defaults.TopK != 5 || cfg.Defaults.Strategy != "exact" || cfg.Defaults.Pool != "allowed" {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
lists:
  allowed: allowed.txt
  answers: answers.txt
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Length != 5 {
		t.Errorf("default Length = %d, want 5", cfg.Length)
	}
	if cfg.Defaults.TopK != 10 {
		t.Errorf("default TopK = %d, want 10", cfg.Defaults.TopK)
	}
	if cfg.Defaults.Strategy != "heuristic" {
		t.Errorf("default Strategy = %q, want heuristic", cfg.Defaults.Strategy)
	}
	if cfg.Defaults.Pool != "answers" {
		t.Errorf("default Pool = %q, want answers", cfg.Defaults.Pool)
	}
}

func TestLoadRejectsMissingLists(t *testing.T) {
	path := writeConfig(t, "length: 5\n")
	if _, err := Load(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Load without lists = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadRejectsBadStrategy(t *testing.T) {
	path := writeConfig(t, `
lists:
  allowed: a.txt
  answers: b.txt
defaults:
  strategy: oracle
`)
	if _, err := Load(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Load with bad strategy = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadRejectsBadPool(t *testing.T) {
	path := writeConfig(t, `
lists:
  allowed: a.txt
  answers: b.txt
defaults:
  pool: everything
`)
	if _, err := Load(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Load with bad pool = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateRejectsNegativeValues(t *testing.T) {
	var cfg Config
	cfg.Lists.Allowed = "a.txt"
	cfg.Lists.Answers = "b.txt"
	cfg.ApplyDefaults()

	cfg.Length = -1
	if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("negative length = %v, want ErrInvalidConfig", err)
	}

	cfg.Length = 5
	cfg.Defaults.TopK = -3
	if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("negative top_k = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}
