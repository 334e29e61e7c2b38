package viewers

import (
	"github.com/datatug/remotetug/pkg/chroma2tcell"
	"github.com/datatug/remotetug/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ Previewer = (*TextPreviewer)(nil)

type TextPreviewer struct {
	*tview.TextView
}

func NewTextPreviewer() *TextPreviewer {
	return &TextPreviewer{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true).
			SetScrollable(true),
	}
}

func (p *TextPreviewer) Preview(entry files.DirEntry, data []byte) {
	p.setText(entry.Name(), string(data))
}

func (p *TextPreviewer) setText(name, text string) {
	colorized, _, err := chroma2tcell.ColorizeFile(name, text)
	p.SetTextColor(tcell.ColorWhiteSmoke)
	if err != nil {
		p.ShowError("Failed to format file: " + err.Error())
		return
	}
	p.SetText(colorized)
	p.ScrollToBeginning()
}

func (p *TextPreviewer) Main() tview.Primitive {
	return p.TextView
}

func (p *TextPreviewer) ShowError(text string) {
	p.SetText(tview.Escape(text))
	p.SetTextColor(tcell.ColorOrangeRed)
}
