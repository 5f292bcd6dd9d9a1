package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg != *Defaults() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "custom.yaml")
	body := "data_dir: /srv/cricsheet\ntop_n: 10\nworkers: 8\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CRICMETRICS_TOP_N", "50")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != "/srv/cricsheet" || cfg.Workers != 8 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.TopN != 50 {
		t.Errorf("env should override file: expected top_n 50, got %d", cfg.TopN)
	}
	if cfg.Source != path || cfg.DotEnv {
		t.Errorf("expected source %q without .env, got source=%q dotenv=%v", path, cfg.Source, cfg.DotEnv)
	}
}

func TestLoad_NonIntegerEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CRICMETRICS_WORKERS", "many")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-integer CRICMETRICS_WORKERS")
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(DefaultFile, []byte("top_n: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); err == nil {
		t.Error("expected parse error")
	}

	if err := os.WriteFile(DefaultFile, []byte("top_n: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); err == nil {
		t.Error("expected error for negative top_n")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(".env", []byte("CRICMETRICS_WORKERS=2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set; make sure
	// the variable is unset for this test and restored afterwards.
	t.Setenv("CRICMETRICS_WORKERS", "")
	os.Unsetenv("CRICMETRICS_WORKERS")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Workers != 2 || !cfg.DotEnv {
		t.Errorf("expected workers from .env, got %d (dotenv=%v)", cfg.Workers, cfg.DotEnv)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
