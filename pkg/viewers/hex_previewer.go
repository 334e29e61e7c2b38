package viewers

import (
	"encoding/hex"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ Previewer = (*HexPreviewer)(nil)

// HexPreviewer dumps binary content as offset, hex and ASCII columns.
type HexPreviewer struct {
	*tview.TextView
}

func NewHexPreviewer() *HexPreviewer {
	return &HexPreviewer{
		TextView: tview.NewTextView().
			SetDynamicColors(false).
			SetWrap(false).
			SetScrollable(true).
			SetTextColor(tcell.ColorLightGray),
	}
}

func (p *HexPreviewer) Preview(_ files.DirEntry, data []byte) {
	p.SetText(hex.Dump(data))
	p.ScrollToBeginning()
}

func (p *HexPreviewer) Main() tview.Primitive {
	return p.TextView
}
