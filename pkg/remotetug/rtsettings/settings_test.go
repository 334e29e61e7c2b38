package rtsettings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withHomeDir(t *testing.T, home string, err error) {
	t.Helper()
	old := osUserHomeDir
	t.Cleanup(func() {
		osUserHomeDir = old
	})
	osUserHomeDir = func() (string, error) {
		return home, err
	}
}

func TestGetUserDir(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		withHomeDir(t, "/tmp/home", nil)
		dir, err := GetUserDir()
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join("/tmp/home", ".remotetug"), dir)
	})
	t.Run("error", func(t *testing.T) {
		wantErr := errors.New("home dir error")
		withHomeDir(t, "", wantErr)
		dir, err := GetUserDir()
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, UserDir, dir)
	})
}

func TestDefaults(t *testing.T) {
	withHomeDir(t, "/tmp/home", nil)
	d := Defaults()
	assert.Equal(t, DefaultURL, d.URL)
	assert.Equal(t, filepath.Join("/tmp/home", "Downloads"), d.DownloadDir)
	assert.Equal(t, "en", d.Locale)
	assert.Equal(t, "info", d.LogLevel)
	assert.Equal(t, filepath.Join("/tmp/home", ".remotetug", "remotetug.log"), d.LogFile)
	assert.Equal(t, filepath.Join("/tmp/home", ".remotetug", "settings.yaml"), SettingsFilePath())
}

func TestLoad(t *testing.T) {
	withHomeDir(t, "/tmp/home", nil)
	dir := t.TempDir()

	t.Run("missing_file", func(t *testing.T) {
		s, err := Load(filepath.Join(dir, "missing.yaml"))
		assert.NoError(t, err)
		assert.Equal(t, Defaults(), s)
	})

	t.Run("overrides", func(t *testing.T) {
		filePath := filepath.Join(dir, "settings.yaml")
		data := []byte("url: https://files.example.com\nlocale: fr\ndownload_dir: ~/dl\n")
		assert.NoError(t, os.WriteFile(filePath, data, 0o644))
		s, err := Load(filePath)
		assert.NoError(t, err)
		assert.Equal(t, "https://files.example.com", s.URL)
		assert.Equal(t, "fr", s.Locale)
		assert.Equal(t, "info", s.LogLevel)
		assert.Equal(t, "list", s.ViewMode)
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		filePath := filepath.Join(dir, "bad.yaml")
		assert.NoError(t, os.WriteFile(filePath, []byte("url: ["), 0o644))
		_, err := Load(filePath)
		assert.Error(t, err)
	})

	t.Run("unreadable", func(t *testing.T) {
		_, err := Load(dir)
		assert.Error(t, err)
	})
}

func TestPrecedence(t *testing.T) {
	withHomeDir(t, "/tmp/home", nil)
	fromFile := Settings{URL: "http://file:1", DownloadDir: "/from/file", Locale: "de"}
	env := FromEnv(func(key string) string {
		if key == EnvURL {
			return " http://env:2 "
		}
		return ""
	})
	flags := Settings{Locale: "fr"}

	s := Defaults().Merge(fromFile).Merge(env).Merge(flags)
	assert.Equal(t, "http://env:2", s.URL)
	assert.Equal(t, "/from/file", s.DownloadDir)
	assert.Equal(t, "fr", s.Locale)
}

func TestSettings_StoreURL(t *testing.T) {
	u, err := Settings{URL: "https://files.example.com/root"}.StoreURL()
	assert.NoError(t, err)
	assert.Equal(t, "files.example.com", u.Host)

	for _, bad := range []string{"ftp://x", "http://", "http://[::1", "localhost:5000"} {
		_, err = Settings{URL: bad}.StoreURL()
		assert.Error(t, err, bad)
	}
}
