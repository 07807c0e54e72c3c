package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not error: %v", err)
	}
	if cfg.Mail.SMTPHost != "smtp.gmail.com" || cfg.Mail.SMTPPort != 587 {
		t.Errorf("mail defaults wrong: %s:%d", cfg.Mail.SMTPHost, cfg.Mail.SMTPPort)
	}
	if cfg.Scan.WindowDays != 30 {
		t.Errorf("window_days default wrong: %d", cfg.Scan.WindowDays)
	}
	if cfg.Scan.Threshold != 3 {
		t.Errorf("proximity_threshold default wrong: %g", cfg.Scan.Threshold)
	}
	if cfg.DataSource.SymbolFile != "symbols.txt" {
		t.Errorf("symbol_file default wrong: %s", cfg.DataSource.SymbolFile)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
mail:
  sender: bot@example.com
  recipient: trader@example.com
scan:
  window_days: 45
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RECEIVER_EMAIL", "other@example.com")
	t.Setenv("PROXIMITY_THRESHOLD", "0")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mail.Sender != "bot@example.com" {
		t.Errorf("yaml sender not applied: %s", cfg.Mail.Sender)
	}
	if cfg.Mail.Recipient != "other@example.com" {
		t.Errorf("env override lost: %s", cfg.Mail.Recipient)
	}
	if cfg.Scan.WindowDays != 45 {
		t.Errorf("yaml window_days not applied: %d", cfg.Scan.WindowDays)
	}
	if cfg.Scan.Threshold != 0 {
		t.Errorf("explicit zero threshold must survive defaults, got %g", cfg.Scan.Threshold)
	}
}

func TestLoad_YAMLZeroThresholdKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
scan:
  proximity_threshold: 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scan.Threshold != 0 {
		t.Errorf("explicit zero in yaml must not become the default, got %g", cfg.Scan.Threshold)
	}

	// And a non-zero yaml value passes through untouched.
	content = `
scan:
  proximity_threshold: 1.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scan.Threshold != 1.5 {
		t.Errorf("yaml threshold not applied, got %g", cfg.Scan.Threshold)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure without mail credentials")
	}
	cfg.Mail.Sender = "bot@example.com"
	cfg.Mail.Password = "app-password"
	cfg.Mail.Recipient = "trader@example.com"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}
