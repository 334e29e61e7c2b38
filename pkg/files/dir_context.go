package files

import (
	"golang.org/x/text/language"
)

// DirContext is one loaded listing of a store directory.
type DirContext struct {
	Store    Store
	Path     string
	children []DirEntry
}

func (c *DirContext) SetChildren(entries []DirEntry) {
	c.children = entries
}

func (c *DirContext) Children() []DirEntry {
	return c.children
}

// Dirs counts child directories.
func (c *DirContext) Dirs() (count int) {
	for _, child := range c.children {
		if child.IsDir() {
			count++
		}
	}
	return
}

func (c *DirContext) Name() string {
	if c.Path == "" {
		return ""
	}
	return BaseName(c.Path)
}

func (c *DirContext) String() string {
	return c.Path
}

// Sorted sorts the children with the listing sort policy and returns c.
func (c *DirContext) Sorted(lang language.Tag) *DirContext {
	SortDirEntries(c.children, lang)
	return c
}

func NewDirContext(store Store, path string, children []DirEntry) *DirContext {
	return &DirContext{
		Store:    store,
		Path:     path,
		children: children,
	}
}
