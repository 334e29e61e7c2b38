package files

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func names(entries []DirEntry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Name()
	}
	return result
}

func TestSortDirEntries(t *testing.T) {
	t.Run("dirs_before_files", func(t *testing.T) {
		entries := []DirEntry{
			NewDirEntry("b.txt", "b.txt", false),
			NewDirEntry("A", "A", true),
		}
		SortDirEntries(entries, language.English)
		assert.Equal(t, []string{"A", "b.txt"}, names(entries))
	})

	t.Run("dirs_precede_files_regardless_of_name", func(t *testing.T) {
		entries := []DirEntry{
			NewDirEntry("aaa.txt", "aaa.txt", false),
			NewDirEntry("zzz", "zzz", true),
			NewDirEntry("Bbb", "Bbb", true),
			NewDirEntry("ccc.txt", "ccc.txt", false),
		}
		SortDirEntries(entries, language.English)
		assert.Equal(t, []string{"Bbb", "zzz", "aaa.txt", "ccc.txt"}, names(entries))
	})

	t.Run("locale_aware", func(t *testing.T) {
		entries := []DirEntry{
			NewDirEntry("zebra", "zebra", false),
			NewDirEntry("Émile", "Émile", false),
			NewDirEntry("apple", "apple", false),
		}
		SortDirEntries(entries, language.French)
		assert.Equal(t, []string{"apple", "Émile", "zebra"}, names(entries))
	})

	t.Run("idempotent", func(t *testing.T) {
		entries := []DirEntry{
			NewDirEntry("b", "b", false),
			NewDirEntry("a", "a", false),
			NewDirEntry("d", "d", true),
			NewDirEntry("c", "c", true),
		}
		once := names(SortDirEntries(entries, language.English))
		twice := names(SortDirEntries(entries, language.English))
		assert.Equal(t, once, twice)
		assert.Equal(t, []string{"c", "d", "a", "b"}, twice)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, SortDirEntries(nil, language.English))
	})
}

func TestDirContext(t *testing.T) {
	dc := NewDirContext(nil, "docs/2024", []DirEntry{
		NewDirEntry("b.txt", "docs/2024/b.txt", false),
		NewDirEntry("a", "docs/2024/a", true),
	})
	assert.Equal(t, "2024", dc.Name())
	assert.Equal(t, "docs/2024", dc.String())
	assert.Equal(t, 1, dc.Dirs())
	assert.Equal(t, []string{"a", "b.txt"}, names(dc.Sorted(language.English).Children()))

	root := NewDirContext(nil, "", nil)
	assert.Equal(t, "", root.Name())
}
