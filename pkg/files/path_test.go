package files

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPath(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"/", ""},
		{"docs", "docs"},
		{"/docs/2024/", "docs/2024"},
		{"docs//2024", "docs/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanPath(tt.in))
		})
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "", BaseName(""))
	assert.Equal(t, "y.txt", BaseName("/x/y.txt"))
	assert.Equal(t, "2024", BaseName("docs/2024/"))
}

func TestParentPath(t *testing.T) {
	assert.Equal(t, "", ParentPath(""))
	assert.Equal(t, "", ParentPath("docs"))
	assert.Equal(t, "docs", ParentPath("docs/2024"))
	assert.Equal(t, "a/b", ParentPath("a/b/c"))
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "a.txt", JoinPath("", "a.txt"))
	assert.Equal(t, "docs/a.txt", JoinPath("docs", "a.txt"))
}
