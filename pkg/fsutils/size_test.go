package fsutils

import (
	"testing"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{-1, "0.0 B"},
		{0, "0.0 B"},
		{500, "500.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{1024 * 1024 * 1024, "1.0 GB"},
		{1024 * 1024 * 1024 * 1024, "1.0 TB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1024.0 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			actual := FormatFileSize(tt.size)
			if actual != tt.expected {
				t.Errorf("FormatFileSize(%d) = %s; want %s", tt.size, actual, tt.expected)
			}
		})
	}
}
