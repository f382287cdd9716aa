package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	APP_NAME     = "otag"
	HISTORY_FILE = "history"
)

// DEV is set from the binary's -ldflags (see cmd/otag) and only changes
// where the configuration directory lives.
var DEV bool

func SetDevMode(dev bool) {
	DEV = dev
}

// ConfigDir returns the directory for Otağ's user files, creating it if
// needed. In development mode it lives under the working directory so a
// dev build never touches the user's real history.
func ConfigDir() (string, error) {
	if DEV {
		return makeDir(filepath.Join(".otag", "dev"))
	}
	return getConfigDir(APP_NAME)
}

// HistoryPath is where the interactive prompt keeps its history.
func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HISTORY_FILE), nil
}

func getConfigDir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", fmt.Errorf("could not determine home directory")
	}

	return makeDir(configDir)
}

func makeDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
