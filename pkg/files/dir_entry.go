package files

import (
	"encoding/json"
	"os"
	"time"
)

// ModifiedLayout is the layout the store uses for the "modified" field.
const ModifiedLayout = "2006-01-02 15:04:05"

type DirEntryOption func(*DirEntry)

// NewDirEntry creates an entry. The path is the entry's full store path,
// the name is its final segment.
func NewDirEntry(name, path string, isDir bool, o ...DirEntryOption) DirEntry {
	dirEntry := DirEntry{
		name:  name,
		path:  path,
		isDir: isDir,
	}
	for _, opt := range o {
		opt(&dirEntry)
	}
	return dirEntry
}

func Size(v int64) DirEntryOption {
	return func(d *DirEntry) {
		d.size = v
	}
}

func SizeFormatted(v string) DirEntryOption {
	return func(d *DirEntry) {
		d.sizeFormatted = v
	}
}

func Modified(v string) DirEntryOption {
	return func(d *DirEntry) {
		d.modified = v
	}
}

func MimeType(v string) DirEntryOption {
	return func(d *DirEntry) {
		d.mimeType = v
	}
}

var _ os.DirEntry = (*DirEntry)(nil)

// DirEntry describes one file or folder of a listing response.
// Values are never mutated after decoding.
type DirEntry struct {
	name          string
	path          string
	isDir         bool
	size          int64
	sizeFormatted string
	modified      string
	mimeType      string
}

func (d DirEntry) Name() string          { return d.name }
func (d DirEntry) Path() string          { return d.path }
func (d DirEntry) IsDir() bool           { return d.isDir }
func (d DirEntry) Size() int64           { return d.size }
func (d DirEntry) SizeFormatted() string { return d.sizeFormatted }
func (d DirEntry) Modified() string      { return d.modified }
func (d DirEntry) MimeType() string      { return d.mimeType }

func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}

func (d DirEntry) Info() (os.FileInfo, error) {
	return NewFileInfo(d), nil
}

// ModTime parses the modified timestamp in local time.
// It returns zero time when the store sent nothing parsable.
func (d DirEntry) ModTime() time.Time {
	if d.modified == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(ModifiedLayout, d.modified, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

type dirEntryJSON struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	IsDirectory   bool   `json:"is_directory"`
	Size          int64  `json:"size,omitempty"`
	SizeFormatted string `json:"size_formatted,omitempty"`
	Modified      string `json:"modified,omitempty"`
	MimeType      string `json:"mime_type,omitempty"`
}

func (d DirEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(dirEntryJSON{
		Name:          d.name,
		Path:          d.path,
		IsDirectory:   d.isDir,
		Size:          d.size,
		SizeFormatted: d.sizeFormatted,
		Modified:      d.modified,
		MimeType:      d.mimeType,
	})
}

func (d *DirEntry) UnmarshalJSON(data []byte) error {
	var v dirEntryJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*d = DirEntry{
		name:          v.Name,
		path:          v.Path,
		isDir:         v.IsDirectory,
		size:          v.Size,
		sizeFormatted: v.SizeFormatted,
		modified:      v.Modified,
		mimeType:      v.MimeType,
	}
	return nil
}
