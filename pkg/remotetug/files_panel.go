package remotetug

import (
	"fmt"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/datatug/remotetug/pkg/remotetug/rtnav"
	"github.com/datatug/remotetug/pkg/sneatv"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type filesPanel struct {
	*sneatv.Boxed
	table  *tview.Table
	rows   *FileRows
	footer *tview.TextView
	nav    *Navigator

	currentFileName string
}

func newFilesPanel(nav *Navigator, mode rtnav.ViewMode) *filesPanel {
	table := tview.NewTable()
	footer := tview.NewTextView().SetDynamicColors(true)
	f := &filesPanel{
		nav:    nav,
		table:  table,
		rows:   NewFileRows(nil, mode),
		footer: footer,
		Boxed: sneatv.NewBoxed(
			table,
			sneatv.WithLeftBorder(0),
			sneatv.WithRightBorder(0),
			sneatv.WithFooter(footer),
		),
	}
	f.rows.SetLoading(true)
	table.SetContent(f.rows)
	table.SetFixed(1, 0)
	f.applySelectable()
	table.SetTitle(" Files ")
	table.SetInputCapture(f.inputCapture)
	table.SetSelectedFunc(f.selected)
	table.SetSelectionChangedFunc(f.selectionChanged)
	table.SetFocusFunc(f.focus)
	table.SetBlurFunc(f.blur)
	f.blur()
	return f
}

func (f *filesPanel) Draw(screen tcell.Screen) {
	if f.rows.ViewMode() == rtnav.ViewModeGrid {
		_, _, width, _ := f.table.GetInnerRect()
		if width > 0 && f.rows.SetGridColumns(width/gridCellWidth) {
			f.selectCurrentFile()
		}
	}
	f.Boxed.Draw(screen)
}

func (f *filesPanel) focus() {
	f.table.SetSelectedStyle(tcell.StyleDefault.Background(tcell.ColorCornflowerBlue).Foreground(tcell.ColorWhite))
}

func (f *filesPanel) blur() {
	f.table.SetSelectedStyle(tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhiteSmoke))
}

func (f *filesPanel) applySelectable() {
	if f.rows.ViewMode() == rtnav.ViewModeGrid {
		f.table.SetFixed(0, 0)
		f.table.SetSelectable(true, true)
	} else {
		f.table.SetFixed(1, 0)
		f.table.SetSelectable(true, false)
	}
}

// SetLoading shows the loading placeholder until the first listing arrives.
func (f *filesPanel) SetLoading(loading bool) {
	f.rows.SetLoading(loading)
	if loading {
		f.footer.SetText("[gray]loading...[-]")
	} else {
		f.renderFooter()
	}
}

// SetFailed shows the load failure placeholder when nothing was listed yet.
func (f *filesPanel) SetFailed(failed bool) {
	f.rows.SetFailed(failed)
}

func (f *filesPanel) SetDir(dir *files.DirContext) {
	f.rows.Dir = dir
	f.rows.SetLoading(false)
	f.rows.SetFailed(false)
	title := rtnav.HomeLabel
	if dir.Path != "" {
		title = dir.Path
	}
	f.table.SetTitle(" Files: " + tview.Escape(title) + " ")
	f.renderFooter()
	if !f.selectCurrentFile() {
		f.selectFirst()
	}
	f.table.ScrollToBeginning()
}

func (f *filesPanel) renderFooter() {
	dir := f.rows.Dir
	if dir == nil {
		f.footer.SetText("")
		return
	}
	dirs := dir.Dirs()
	fileCount := len(dir.Children()) - dirs
	f.footer.SetText(fmt.Sprintf("[white]%d[-] folders, [white]%d[-] files", dirs, fileCount))
}

func (f *filesPanel) SetViewMode(mode rtnav.ViewMode) {
	entry, hasEntry := f.SelectedEntry()
	f.rows.SetViewMode(mode)
	f.applySelectable()
	if hasEntry {
		f.currentFileName = entry.Name()
	}
	if !f.selectCurrentFile() {
		f.selectFirst()
	}
}

func (f *filesPanel) SetCurrentFile(name string) {
	f.currentFileName = name
	f.selectCurrentFile()
}

func (f *filesPanel) selectCurrentFile() bool {
	if f.currentFileName == "" {
		return false
	}
	row, col, ok := f.rows.IndexOf(f.currentFileName)
	if !ok {
		return false
	}
	f.table.Select(row, col)
	return true
}

func (f *filesPanel) selectFirst() {
	if f.rows.IsEmpty() {
		return
	}
	if f.rows.ViewMode() == rtnav.ViewModeGrid {
		f.table.Select(0, 0)
	} else {
		f.table.Select(1, 0)
	}
}

// SelectedEntry returns the entry under the cursor.
func (f *filesPanel) SelectedEntry() (files.DirEntry, bool) {
	row, col := f.table.GetSelection()
	return f.rows.EntryAt(row, col)
}

func (f *filesPanel) selected(row, col int) {
	entry, ok := f.rows.EntryAt(row, col)
	if !ok {
		return
	}
	f.nav.guard("activate", func() {
		f.nav.Activate(entry)
	})
}

func (f *filesPanel) selectionChanged(row, col int) {
	entry, ok := f.rows.EntryAt(row, col)
	if !ok {
		return
	}
	f.currentFileName = entry.Name()
	f.nav.guard("select", func() {
		f.nav.onEntrySelected(entry)
	})
}

func (f *filesPanel) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.nav.GoUp()
		return nil
	case tcell.KeyDelete, tcell.KeyF8:
		f.requestDelete()
		return nil
	case tcell.KeyUp:
		row, _ := f.table.GetSelection()
		top := 1
		if f.rows.ViewMode() == rtnav.ViewModeGrid {
			top = 0
		}
		if row <= top {
			f.nav.setAppFocus(f.nav.breadcrumbs)
			return nil
		}
		return event
	case tcell.KeyRune:
		switch event.Rune() {
		case 'd', 'D':
			f.requestDelete()
			return nil
		case 'p', 'P':
			if entry, ok := f.SelectedEntry(); ok {
				f.nav.Preview(entry)
			}
			return nil
		}
	}
	return event
}

func (f *filesPanel) requestDelete() {
	if entry, ok := f.SelectedEntry(); ok {
		f.nav.RequestDelete(entry)
	}
}
