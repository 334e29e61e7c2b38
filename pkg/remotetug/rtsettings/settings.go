// Package rtsettings resolves user settings from the settings file and
// environment. Command line flags are layered on top by the caller.
package rtsettings

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/datatug/remotetug/pkg/fsutils"
	"gopkg.in/yaml.v3"
)

const UserDir = "~/.remotetug"

const (
	settingsFileName = "settings.yaml"
	logFileName      = "remotetug.log"
)

const (
	EnvURL         = "REMOTETUG_URL"
	EnvDownloadDir = "REMOTETUG_DOWNLOAD_DIR"
)

const (
	DefaultURL      = "http://localhost:5000"
	DefaultLocale   = "en"
	DefaultLogLevel = "info"
)

var osUserHomeDir = os.UserHomeDir
var yamlUnmarshal = yaml.Unmarshal

type Settings struct {
	URL         string `yaml:"url,omitempty"`
	DownloadDir string `yaml:"download_dir,omitempty"`
	Locale      string `yaml:"locale,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
	LogFile     string `yaml:"log_file,omitempty"`
	ViewMode    string `yaml:"view_mode,omitempty"`
}

func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

func SettingsFilePath() string {
	dir, _ := GetUserDir()
	return filepath.Join(dir, settingsFileName)
}

func Defaults() Settings {
	userDir, _ := GetUserDir()
	downloadDir := "Downloads"
	if home, err := osUserHomeDir(); err == nil {
		downloadDir = filepath.Join(home, "Downloads")
	}
	return Settings{
		URL:         DefaultURL,
		DownloadDir: downloadDir,
		Locale:      DefaultLocale,
		LogLevel:    DefaultLogLevel,
		LogFile:     filepath.Join(userDir, logFileName),
		ViewMode:    "list",
	}
}

// Load returns defaults overridden by the settings file at filePath.
// A missing file is not an error.
func Load(filePath string) (Settings, error) {
	settings := Defaults()
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}
	var fromFile Settings
	if err = yamlUnmarshal(data, &fromFile); err != nil {
		return settings, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return settings.Merge(fromFile), nil
}

// Merge returns s with every non-empty field of override applied.
func (s Settings) Merge(override Settings) Settings {
	if override.URL != "" {
		s.URL = override.URL
	}
	if override.DownloadDir != "" {
		s.DownloadDir = fsutils.ExpandHome(override.DownloadDir)
	}
	if override.Locale != "" {
		s.Locale = override.Locale
	}
	if override.LogLevel != "" {
		s.LogLevel = override.LogLevel
	}
	if override.LogFile != "" {
		s.LogFile = fsutils.ExpandHome(override.LogFile)
	}
	if override.ViewMode != "" {
		s.ViewMode = override.ViewMode
	}
	return s
}

// FromEnv picks the settings that can be given through environment variables.
func FromEnv(getenv func(string) string) Settings {
	return Settings{
		URL:         strings.TrimSpace(getenv(EnvURL)),
		DownloadDir: strings.TrimSpace(getenv(EnvDownloadDir)),
	}
}

// StoreURL validates and parses the configured server address.
func (s Settings) StoreURL() (*url.URL, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", s.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", s.URL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q: host is missing", s.URL)
	}
	return u, nil
}
