// Package config holds the project manifest (otag.yml) and the user
// configuration directory.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const MANIFEST_FILE = "otag.yml"

const SOURCE_EXTENSION = ".otağ"

// Manifest is a parsed otag.yml. Entry and Include are slash-separated
// paths relative to Dir.
type Manifest struct {
	Path    string
	Dir     string
	Name    string
	Entry   string
	Include []string
}

type manifestFile struct {
	Name    string   `yaml:"name"`
	Entry   string   `yaml:"entry"`
	Include []string `yaml:"include"`
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func LoadManifest(manifestPath string) (*Manifest, error) {
	if manifestPath == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", manifestPath, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	manifest, err := ParseManifest(file)
	if err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", absPath, err)
	}
	manifest.Path = absPath
	manifest.Dir = filepath.Dir(absPath)
	return manifest, nil
}

// ParseManifest decodes and validates a manifest. Path and Dir are left
// empty.
func ParseManifest(r io.Reader) (*Manifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty manifest")
		}
		return nil, err
	}

	manifest := &Manifest{
		Name:    strings.TrimSpace(raw.Name),
		Entry:   cleanSourcePath(raw.Entry),
		Include: make([]string, 0, len(raw.Include)),
	}
	for _, include := range raw.Include {
		manifest.Include = append(manifest.Include, cleanSourcePath(include))
	}

	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func cleanSourcePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	return path.Clean(filepath.ToSlash(p))
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}

	if m.Entry == "" {
		errs.Issues = append(errs.Issues, "entry must be provided")
	} else {
		errs.Issues = append(errs.Issues, checkSourcePath("entry", m.Entry)...)
	}

	seen := make(map[string]int, len(m.Include))
	for i, include := range m.Include {
		field := fmt.Sprintf("include[%d]", i)
		if include == "" {
			errs.Issues = append(errs.Issues, field+" must be a non-empty path")
			continue
		}
		errs.Issues = append(errs.Issues, checkSourcePath(field, include)...)
		if first, ok := seen[include]; ok {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s duplicates include[%d] (%s)", field, first, include))
		} else {
			seen[include] = i
		}
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func checkSourcePath(field, p string) []string {
	var issues []string
	if path.IsAbs(p) || filepath.IsAbs(p) {
		issues = append(issues, fmt.Sprintf("%s must be relative to the manifest (%s)", field, p))
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		issues = append(issues, fmt.Sprintf("%s must stay inside the project (%s)", field, p))
	}
	if !strings.HasSuffix(p, SOURCE_EXTENSION) {
		issues = append(issues, fmt.Sprintf("%s must be a %s file (%s)", field, SOURCE_EXTENSION, p))
	}
	return issues
}

// Files lists the entry followed by the includes, in manifest order.
func (m *Manifest) Files() []string {
	files := make([]string, 0, len(m.Include)+1)
	files = append(files, m.Entry)
	for _, include := range m.Include {
		if include != m.Entry {
			files = append(files, include)
		}
	}
	return files
}
