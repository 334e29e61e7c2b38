package files

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

import (
	"context"
	"io"
	"net/url"
)

// Stats is the store-wide usage summary.
type Stats struct {
	TotalFiles         int    `json:"total_files"`
	TotalFolders       int    `json:"total_folders"`
	TotalSize          int64  `json:"total_size,omitempty"`
	TotalSizeFormatted string `json:"total_size_formatted"`
}

// Store is a remote hierarchical file store.
// Every operation maps to exactly one remote call and never retries.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	List(ctx context.Context, path string) ([]DirEntry, error)
	// Download returns the response body and its length, -1 when unknown.
	Download(ctx context.Context, path string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, path string) error
	Stats(ctx context.Context) (Stats, error)
}
