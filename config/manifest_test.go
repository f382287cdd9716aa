package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseManifest(t *testing.T) {
	src := `
name: hesap
entry: ./src/main.otağ
include:
  - src/matematik.otağ
  - lib//metin.otağ
`
	manifest, err := ParseManifest(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if manifest.Name != "hesap" {
		t.Errorf("expected name hesap, got %s", manifest.Name)
	}
	if manifest.Entry != "src/main.otağ" {
		t.Errorf("expected entry src/main.otağ, got %s", manifest.Entry)
	}
	expected := []string{"src/main.otağ", "src/matematik.otağ", "lib/metin.otağ"}
	if !reflect.DeepEqual(manifest.Files(), expected) {
		t.Errorf("expected %v, got %v", expected, manifest.Files())
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		issues []string
	}{
		{
			name:   "missing fields",
			src:    "include: []\n",
			issues: []string{"name must be provided", "entry must be provided"},
		},
		{
			name: "bad paths",
			src:  "name: x\nentry: /main.otağ\ninclude:\n  - ../dis.otağ\n  - a.txt\n  - ''\n",
			issues: []string{
				"entry must be relative to the manifest (/main.otağ)",
				"include[0] must stay inside the project (../dis.otağ)",
				"include[1] must be a .otağ file (a.txt)",
				"include[2] must be a non-empty path",
			},
		},
		{
			name:   "duplicate include",
			src:    "name: x\nentry: main.otağ\ninclude:\n  - a.otağ\n  - ./a.otağ\n",
			issues: []string{"include[1] duplicates include[0] (a.otağ)"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseManifest(strings.NewReader(test.src))
			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if !reflect.DeepEqual(validation.Issues, test.issues) {
				t.Errorf("expected %q, got %q", test.issues, validation.Issues)
			}
		})
	}
}

func TestParseManifestUnknownField(t *testing.T) {
	_, err := ParseManifest(strings.NewReader("name: x\nentry: main.otağ\nsurum: 1\n"))
	if err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
	var validation *ValidationError
	if errors.As(err, &validation) {
		t.Errorf("expected a decode error, got validation error %s", err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, MANIFEST_FILE)
	err := os.WriteFile(manifestPath, []byte("name: proje\nentry: main.otağ\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if manifest.Dir != filepath.Dir(manifest.Path) {
		t.Errorf("expected dir %s, got %s", filepath.Dir(manifest.Path), manifest.Dir)
	}

	empty := filepath.Join(dir, "bos.yml")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadManifest(empty); err == nil || !strings.Contains(err.Error(), "empty manifest") {
		t.Errorf("expected empty manifest error, got %v", err)
	}

	if _, err := LoadManifest(filepath.Join(dir, "yok.yml")); err == nil {
		t.Error("expected error for missing manifest, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if dir != filepath.Join(home, APP_NAME) {
		t.Errorf("expected %s, got %s", filepath.Join(home, APP_NAME), dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("expected %s to be created", dir)
	}

	history, err := HistoryPath()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if history != filepath.Join(home, APP_NAME, HISTORY_FILE) {
		t.Errorf("unexpected history path %s", history)
	}
}
