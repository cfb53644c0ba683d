package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hikarutsuji/rirekisho/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoadConfig_FullDocument(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
source:
  origin: https://example.com
output:
  dir: ./out
form:
  postalCode: 123-4567
  address: 東京都千代田区1-1
  phone: 090-0000-0000
  motivation: 貴社の事業に魅力を感じたため。
  preference: 特になし。
photo:
  path: ./photo.jpg
`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Source.Origin != "https://example.com" {
		t.Errorf("Source.Origin = %q", cfg.Source.Origin)
	}
	if cfg.Form.Address != "東京都千代田区1-1" {
		t.Errorf("Form.Address = %q", cfg.Form.Address)
	}
	if cfg.Photo.Path != "./photo.jpg" {
		t.Errorf("Photo.Path = %q", cfg.Photo.Path)
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig("")
	if !errors.Is(err, config.ErrEmptyConfigName) {
		t.Errorf("err = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "form: [broken")
	_, err := config.LoadConfig(path)
	if !errors.Is(err, config.ErrConfigParse) {
		t.Errorf("err = %v, want ErrConfigParse", err)
	}
}

func TestValidate_FieldTooLong(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Form.PostalCode = strings.Repeat("1", config.MaxPostalCodeLength+1)
	err := cfg.Validate()
	if !errors.Is(err, config.ErrFieldTooLong) {
		t.Errorf("err = %v, want ErrFieldTooLong", err)
	}
}

func TestValidate_OriginAndDirExclusive(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Source.Origin = "https://example.com"
	cfg.Source.Dir = "./site"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want mutual exclusion error")
	}
}
