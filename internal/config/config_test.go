package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Serve.Port != DefaultPort {
		t.Fatalf("port default mismatch: %d", cfg.Serve.Port)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Fatalf("host default mismatch: %q", cfg.Serve.Host)
	}
	if cfg.Output != DefaultOutput {
		t.Fatalf("output default mismatch: %q", cfg.Output)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := `{
  "title": "Demo",
  "serve": {"port": 8080, "host": "0.0.0.0"},
  "output": "out",
  "deploy": {"bucket": "my-bucket", "prefix": "site/", "region": "eu-west-1"}
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Title != "Demo" {
		t.Fatalf("title mismatch: %q", cfg.Title)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Fatalf("addr mismatch: %q", cfg.Addr())
	}
	if cfg.Output != "out" {
		t.Fatalf("output mismatch: %q", cfg.Output)
	}
	if cfg.Deploy.Bucket != "my-bucket" || cfg.Deploy.Region != "eu-west-1" {
		t.Fatalf("deploy mismatch: %#v", cfg.Deploy)
	}
	if cfg.Path() != path {
		t.Fatalf("config path mismatch: %q", cfg.Path())
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"title": "X"}`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Serve.Port != DefaultPort || cfg.Output != DefaultOutput {
		t.Fatalf("defaults not applied: %#v", cfg)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{not json`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatalf("invalid JSON should error")
	}
}
