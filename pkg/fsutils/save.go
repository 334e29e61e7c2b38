package fsutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// UniqueFilePath returns a path in dir for name that does not exist yet.
// Taken names get a counter before the extension: "report (1).pdf".
func UniqueFilePath(dir, name string) string {
	for i := 0; ; i++ {
		candidate := candidatePath(dir, name, i)
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// claimFilePath is UniqueFilePath that also creates the returned file
// exclusively, so concurrent callers never get the same path.
func claimFilePath(dir, name string) (string, error) {
	for i := 0; ; i++ {
		candidate := candidatePath(dir, name, i)
		f, err := os.OpenFile(candidate, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			return candidate, f.Close()
		}
		if !os.IsExist(err) {
			return "", err
		}
	}
}

func candidatePath(dir, name string, i int) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "download"
	}
	if i == 0 {
		return filepath.Join(dir, name)
	}
	ext := filepath.Ext(name)
	return filepath.Join(dir, fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(name, ext), i, ext))
}

// SaveStream copies r into a new file named after name inside dir.
// Content goes to a temp file first and is renamed into place only after
// the copy succeeded, so a failed transfer leaves nothing behind.
func SaveStream(dir, name string, r io.Reader) (savedPath string, written int64, err error) {
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, err
	}
	tmp, err := os.CreateTemp(dir, ".download-*.part")
	if err != nil {
		return "", 0, err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()
	if written, err = io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return "", written, err
	}
	if err = tmp.Close(); err != nil {
		return "", written, err
	}
	if savedPath, err = claimFilePath(dir, name); err != nil {
		return "", written, err
	}
	if err = os.Rename(tmpName, savedPath); err != nil {
		_ = os.Remove(savedPath)
		return "", written, err
	}
	return savedPath, written, nil
}
