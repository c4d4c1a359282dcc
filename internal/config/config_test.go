package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gyeh/tagstamp/internal/model"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("time_zone: Asia/Kolkata\nculture: en-GB\nformats:\n  - dd/MM/yyyy HH:mm\n  - dd MMM yyyy HH:mm\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.TimeZone != "Asia/Kolkata" || c.Culture != "en-GB" {
		t.Errorf("unexpected zone/culture: %q %q", c.TimeZone, c.Culture)
	}
	if len(c.Formats) != 2 || c.Formats[0] != "dd/MM/yyyy HH:mm" {
		t.Errorf("unexpected formats: %v", c.Formats)
	}
}

func TestLoadFromFile_FlagsWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("time_zone: Asia/Kolkata\nflag_key: urn:from-file\n"), 0644)

	c := Config{TimeZone: "UTC"}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.TimeZone != "UTC" {
		t.Errorf("flag value overwritten: %q", c.TimeZone)
	}
	if c.FlagKey != "urn:from-file" {
		t.Errorf("file value not applied: %q", c.FlagKey)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	err := c.LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("formats: [unterminated\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestOptions_Defaults(t *testing.T) {
	var c Config
	opts := c.Options()
	if opts.FlagKey != model.FlagKeyOffline || opts.ValueKey != model.ValueKeySyncTime {
		t.Errorf("unexpected keys: %q %q", opts.FlagKey, opts.ValueKey)
	}
	if opts.TimeZone != model.DefaultTimeZone || opts.Culture != model.DefaultCulture {
		t.Errorf("unexpected zone/culture: %q %q", opts.TimeZone, opts.Culture)
	}
}

func TestResolve(t *testing.T) {
	c := Config{TimeZone: "Australia/Hobart"}
	n, err := c.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if n.Zone().Name != "Australia/Hobart" {
		t.Errorf("zone = %q", n.Zone().Name)
	}

	bad := Config{TimeZone: "Atlantis/Capital"}
	if _, err := bad.Resolve(); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestValidateWithDSN(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.yaml")
	os.WriteFile(path, []byte("id: a\n"), 0644)

	c := Config{FilePath: path}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := c.ValidateWithDSN(); err == nil {
		t.Fatal("expected error without DSN")
	}
	if err := (&Config{}).Validate(); err == nil {
		t.Fatal("expected error without file")
	}
}
