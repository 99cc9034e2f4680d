package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Output.Precision)
	}
	if cfg.Output.Degrees {
		t.Error("expected degrees to be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "quatcalc.yaml")

	yamlContent := `
output:
  precision: 3
  degrees: true

logging:
  level: "debug"
  log_file: "quatcalc.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Precision != 3 {
		t.Errorf("expected precision 3, got %d", cfg.Output.Precision)
	}
	if !cfg.Output.Degrees {
		t.Error("expected degrees to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "quatcalc.log" {
		t.Errorf("expected log file 'quatcalc.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  precision: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/quatcalc.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	*flagDebug = true
	*flagPrecision = 9
	*flagDegrees = true
	*flagLogFile = "out.log"
	defer func() {
		*flagDebug = false
		*flagPrecision = -1
		*flagDegrees = false
		*flagLogFile = ""
	}()

	cfg := Default()
	applyFlags(cfg)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Output.Precision != 9 {
		t.Errorf("expected precision 9, got %d", cfg.Output.Precision)
	}
	if !cfg.Output.Degrees {
		t.Error("expected degrees to be true")
	}
	if cfg.Logging.LogFile != "out.log" {
		t.Errorf("expected log file 'out.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "quatcalc.yaml")

	yamlContent := `
output:
  precision: 2
logging:
  level: "warn"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flag overrides the file value
	*flagConfig = configPath
	*flagPrecision = 8
	defer func() {
		*flagConfig = ""
		*flagPrecision = -1
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Precision comes from the flag, not the file
	if cfg.Output.Precision != 8 {
		t.Errorf("expected precision 8 from flag, got %d", cfg.Output.Precision)
	}

	// Level comes from the file since no flag override
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level 'warn' from file, got %s", cfg.Logging.Level)
	}
}
