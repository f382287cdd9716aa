package vfs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAddAndGetFile(t *testing.T) {
	store := New()
	store.AddFile("lib/./matematik.otağ", "söyle 1")

	tests := []struct {
		path  string
		found bool
	}{
		{"lib/matematik.otağ", true},
		{"lib/../lib/matematik.otağ", true},
		{"matematik.otağ", false},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			src, ok := store.GetFile(test.path)
			if ok != test.found {
				t.Fatalf("expected found=%v, got %v", test.found, ok)
			}
			if ok && src != "söyle 1" {
				t.Errorf("expected %q, got %q", "söyle 1", src)
			}
			if store.FileExists(test.path) != test.found {
				t.Errorf("FileExists disagrees with GetFile for %s", test.path)
			}
		})
	}
}

func TestAddFileReplaces(t *testing.T) {
	store := New()
	store.AddFile("a.otağ", "söyle 1")
	store.AddFile("a.otağ", "söyle 2")

	src, _ := store.GetFile("a.otağ")
	if src != "söyle 2" {
		t.Errorf("expected %q, got %q", "söyle 2", src)
	}
}

func TestFilesSorted(t *testing.T) {
	store := New()
	store.AddFile("c.otağ", "")
	store.AddFile("a.otağ", "")
	store.AddFile("b/a.otağ", "")

	expected := []string{"a.otağ", "b/a.otağ", "c.otağ"}
	if got := store.Files(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestResolveNotFound(t *testing.T) {
	_, err := New().Resolve("yok.otağ")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskAndLayered(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, "disk.otağ"), []byte("söyle \"disk\""), 0644)
	if err != nil {
		t.Fatal(err)
	}

	memory := New()
	memory.AddFile("bellek.otağ", "söyle \"bellek\"")
	memory.AddFile("disk.otağ", "söyle \"gölge\"")

	layered := Layered{memory, Disk{Root: root}}

	tests := []struct {
		path     string
		expected string
	}{
		{"bellek.otağ", "söyle \"bellek\""},
		{"disk.otağ", "söyle \"gölge\""},
	}
	for _, test := range tests {
		src, err := layered.Resolve(test.path)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if string(src) != test.expected {
			t.Errorf("expected %q, got %q", test.expected, string(src))
		}
	}

	src, err := Disk{Root: root}.Resolve("disk.otağ")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(src) != "söyle \"disk\"" {
		t.Errorf("expected disk source, got %q", string(src))
	}

	_, err = layered.Resolve("yok.otağ")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
