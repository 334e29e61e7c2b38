// Package viewers renders the first bytes of a remote file.
package viewers

import (
	"github.com/datatug/remotetug/pkg/files"
	"github.com/rivo/tview"
)

// MaxPreviewBytes is how much of a file is fetched for previewing.
const MaxPreviewBytes = 10 * 1024

// Previewer shows data, a possibly truncated prefix of entry's content.
// Preview must be called on the UI goroutine.
type Previewer interface {
	Preview(entry files.DirEntry, data []byte)
	Main() tview.Primitive
}

type Meta struct {
	Groups []*MetaGroup
}

type MetaGroup struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Records []*MetaRecord `json:"records"`
}

type MetaRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Value      string `json:"value"`
	ValueAlign Align
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)
