package pkgconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestViperConfigValues(t *testing.T) {
	path := writeConfigFile(t, "int: 42\nbool: true\nstring: hi\narray: a, b,c\n")

	cfg, err := NewViper(path, nil)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	defer func() {
		if err := cfg.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	if !cfg.FromFile() {
		t.Fatalf("FromFile: expected true")
	}
	if got := cfg.GetInt("int"); got != 42 {
		t.Fatalf("GetInt: expected 42, got %d", got)
	}
	if got := cfg.GetBool("bool"); got != true {
		t.Fatalf("GetBool: expected true, got %v", got)
	}
	if got := cfg.GetString("string"); got != "hi" {
		t.Fatalf("GetString: expected hi, got %q", got)
	}
	if got := cfg.GetArray("array"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("GetArray: unexpected value: %#v", got)
	}
}

func TestViperDefaultsAndUnmarshal(t *testing.T) {
	path := writeConfigFile(t, "bank:\n  name: Test Bank\naccounts:\n  - number: \"1001\"\n    pin: 1111\n    balance: \"500.00\"\n")

	cfg, err := NewViper(path, map[string]any{
		"bank.name":     "Pillar Bank",
		"bank.currency": "PHP",
	})
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetString("bank.name"); got != "Test Bank" {
		t.Fatalf("file value should win over default, got %q", got)
	}
	if got := cfg.GetString("bank.currency"); got != "PHP" {
		t.Fatalf("default should fill missing key, got %q", got)
	}

	var accounts []struct {
		Number  string `mapstructure:"number"`
		PIN     int    `mapstructure:"pin"`
		Balance string `mapstructure:"balance"`
	}
	if err := cfg.Unmarshal("accounts", &accounts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Number != "1001" || accounts[0].PIN != 1111 || accounts[0].Balance != "500.00" {
		t.Fatalf("Unmarshal: unexpected value: %#v", accounts)
	}
}

func TestNewViperOrDefaultsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := NewViper(path, nil); err == nil {
		t.Fatalf("NewViper: expected error for missing file")
	}

	cfg, err := NewViperOrDefaults(path, map[string]any{"atm.max_pin_attempts": 3})
	if err != nil {
		t.Fatalf("NewViperOrDefaults: %v", err)
	}
	if cfg.FromFile() {
		t.Fatalf("FromFile: expected false")
	}
	if got := cfg.GetInt("atm.max_pin_attempts"); got != 3 {
		t.Fatalf("GetInt: expected default 3, got %d", got)
	}
	if got := cfg.GetArray("bills.billers"); got != nil {
		t.Fatalf("GetArray: expected nil for missing key, got %#v", got)
	}
}
