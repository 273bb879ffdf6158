package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testToml = `
[development]
addr = ":8080"
web_dir = "web"
log_level = "debug"
log_to_stdout = true

[production]
addr = ":9000"
web_dir = "/srv/weightboard/web"
log_level = "info"
logs_path = "/var/log/weightboard/app.log"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(testToml), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDevelopment(t *testing.T) {
	cfg, err := Load(writeTestConfig(t), "development")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if !cfg.LogToStdout {
		t.Error("expected log_to_stdout")
	}
}

func TestLoadProduction(t *testing.T) {
	cfg, err := Load(writeTestConfig(t), "prod")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.LogsPath != "/var/log/weightboard/app.log" {
		t.Errorf("logs_path = %q", cfg.LogsPath)
	}
}

func TestLoadUnknownEnv(t *testing.T) {
	if _, err := Load(writeTestConfig(t), "staging"); err == nil {
		t.Error("expected error for unknown env")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ADDR", ":7777")
	cfg, err := Load(writeTestConfig(t), "development")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":7777" {
		t.Errorf("addr = %q, want env override", cfg.Addr)
	}
}
