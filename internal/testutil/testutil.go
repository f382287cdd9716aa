package testutil

import (
	"bytes"
	"os"
	"path/filepath"

	otag "github.com/HicaroD/Otag"
)

// Run executes src as an inline program and returns what it printed.
func Run(src string) (string, error) {
	var out bytes.Buffer
	err := otag.New(otag.WithStdout(&out)).RunInline(src)
	return out.String(), err
}

// RunFile executes the file at filePath, resolving its imports from the
// same directory on disk.
func RunFile(filePath string) (string, error) {
	var out bytes.Buffer
	rt := otag.New(otag.WithStdout(&out), otag.WithDisk(filepath.Dir(filePath)))
	err := rt.Run(filepath.Base(filePath))
	return out.String(), err
}

// ExpectedOutput reads the .out file next to a test program.
func ExpectedOutput(programPath string) (string, error) {
	ext := filepath.Ext(programPath)
	data, err := os.ReadFile(programPath[:len(programPath)-len(ext)] + ".out")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
