// Package vfs stores program sources by path so programs can be run without
// touching the disk.
package vfs

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
)

var ErrNotFound = errors.New("file not found")

// Resolver turns a cleaned, slash-separated path into source text.
type Resolver interface {
	Resolve(filePath string) ([]byte, error)
}

type FS struct {
	files map[string]string
}

func New() *FS {
	return &FS{files: make(map[string]string)}
}

// AddFile stores src under the cleaned path, replacing any previous text.
func (store *FS) AddFile(filePath, src string) {
	store.files[path.Clean(filePath)] = src
}

func (store *FS) GetFile(filePath string) (string, bool) {
	src, ok := store.files[path.Clean(filePath)]
	return src, ok
}

func (store *FS) FileExists(filePath string) bool {
	_, ok := store.GetFile(filePath)
	return ok
}

func (store *FS) Resolve(filePath string) ([]byte, error) {
	src, ok := store.GetFile(filePath)
	if !ok {
		return nil, fmt.Errorf("%s: %w", filePath, ErrNotFound)
	}
	return []byte(src), nil
}

// Files lists every stored path in sorted order.
func (store *FS) Files() []string {
	files := make([]string, 0, len(store.files))
	for name := range store.files {
		files = append(files, name)
	}
	sort.Strings(files)
	return files
}

// Disk resolves paths relative to Root on the OS filesystem.
type Disk struct {
	Root string
}

func (d Disk) Resolve(filePath string) ([]byte, error) {
	full := filepath.FromSlash(path.Clean(filePath))
	if d.Root != "" && !filepath.IsAbs(full) {
		full = filepath.Join(d.Root, full)
	}

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", filePath, ErrNotFound)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filePath)
	}

	return os.ReadFile(full)
}

// Layered asks each resolver in order and returns the first hit. A resolver
// answering ErrNotFound passes the lookup to the next one.
type Layered []Resolver

func (l Layered) Resolve(filePath string) ([]byte, error) {
	for _, resolver := range l {
		src, err := resolver.Resolve(filePath)
		if err == nil {
			return src, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%s: %w", filePath, ErrNotFound)
}
