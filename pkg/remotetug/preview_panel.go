package remotetug

import (
	"strings"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/datatug/remotetug/pkg/sneatv"
	"github.com/datatug/remotetug/pkg/viewers"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type previewPanel struct {
	*sneatv.Boxed
	nav        *Navigator
	rows       *tview.Flex
	attrs      *tview.Table
	sizeCell   *tview.TableCell
	modCell    *tview.TableCell
	typeCell   *tview.TableCell
	textView   *tview.TextView
	previewers *viewers.Previewers
	main       tview.Primitive
}

func newPreviewPanel(nav *Navigator) *previewPanel {
	rows := tview.NewFlex()
	rows.SetDirection(tview.FlexRow)
	separator := tview.NewTextView().
		SetText(strings.Repeat("─", 40)).
		SetTextColor(tcell.ColorGray)
	p := &previewPanel{
		nav:        nav,
		rows:       rows,
		textView:   tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		previewers: viewers.NewPreviewers(),
		Boxed: sneatv.NewBoxed(
			rows,
			sneatv.WithRightBorder(0),
		),
	}
	p.attrs = p.createAttrsTable()
	rows.AddItem(p.attrs, 3, 0, false)
	rows.AddItem(separator, 1, 0, false)
	rows.SetTitle(" Preview ")
	p.setMain(p.textView)
	rows.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEscape:
			nav.setAppFocus(nav.files)
			return nil
		default:
			return event
		}
	})
	return p
}

func (p *previewPanel) createAttrsTable() *tview.Table {
	t := tview.NewTable()
	label := func(row int, text string) *tview.TableCell {
		t.SetCell(row, 0, tview.NewTableCell(text).
			SetAlign(tview.AlignRight).
			SetTextColor(tcell.ColorLightSteelBlue).
			SetSelectable(false))
		value := tview.NewTableCell("").SetExpansion(1)
		t.SetCell(row, 1, value)
		return value
	}
	p.sizeCell = label(0, "Size")
	p.modCell = label(1, "Modified")
	p.typeCell = label(2, "Type")
	return t
}

func (p *previewPanel) setMain(main tview.Primitive) {
	if p.main == main {
		return
	}
	if p.main != nil {
		p.rows.RemoveItem(p.main)
	}
	p.main = main
	p.rows.AddItem(main, 0, 1, false)
}

// SetEntry shows the listing attributes of entry and clears the body.
func (p *previewPanel) SetEntry(entry files.DirEntry) {
	p.rows.SetTitle(" " + tview.Escape(entry.Name()) + " ")
	p.sizeCell.SetText(SizeText(entry))
	p.modCell.SetText(tview.Escape(entry.Modified()))
	p.typeCell.SetText(tview.Escape(entry.MimeType()))
	if entry.IsDir() {
		p.SetText("Folder: " + tview.Escape(entry.Path()))
		return
	}
	p.SetText("")
}

func (p *previewPanel) ShowData(entry files.DirEntry, data []byte) {
	previewer := p.previewers.For(viewers.KindOf(entry, data))
	previewer.Preview(entry, data)
	p.setMain(previewer.Main())
}

func (p *previewPanel) SetErr(text string) {
	p.setMain(p.textView)
	p.textView.SetText(tview.Escape(text))
	p.textView.SetTextColor(tcell.ColorOrangeRed)
}

func (p *previewPanel) SetText(text string) {
	p.setMain(p.textView)
	p.textView.SetText(text)
	p.textView.SetTextColor(tcell.ColorWhiteSmoke)
}

func (p *previewPanel) Clear() {
	p.rows.SetTitle(" Preview ")
	p.sizeCell.SetText("")
	p.modCell.SetText("")
	p.typeCell.SetText("")
	p.SetText("")
}
