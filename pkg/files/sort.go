package files

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortDirEntries orders directories before files and each group by name
// using the collation rules of lang. The slice is sorted in place.
func SortDirEntries(entries []DirEntry, lang language.Tag) []DirEntry {
	// A Collator keeps internal buffers, so each call gets its own.
	c := collate.New(lang)
	sort.SliceStable(entries, func(i, j int) bool {
		// Directories first
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		// Then by name
		return c.CompareString(entries[i].Name(), entries[j].Name()) < 0
	})
	return entries
}
