package remotetug

import (
	"github.com/datatug/remotetug/pkg/files"
	"github.com/datatug/remotetug/pkg/fsutils"
	"github.com/datatug/remotetug/pkg/remotetug/rtnav"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	msgLoading     = "Loading files..."
	msgNoFiles     = "No files found"
	msgLoadFailed  = "Could not load files"
	msgUploadHint  = "Upload some files to get started!"
	folderSizeText = "Folder"
)

const (
	nameColIndex = iota
	sizeColIndex
	modifiedColIndex
	typeColIndex
	listColumnCount
)

const (
	defaultGridColumns = 4
	gridCellWidth      = 24
)

var listHeaders = [listColumnCount]string{"Name", "Size", "Modified", "Type"}

var _ tview.TableContent = (*FileRows)(nil)

// FileRows presents a sorted listing either as a table with a header row
// or as a grid of names filled row by row.
type FileRows struct {
	tview.TableContentReadOnly
	Dir         *files.DirContext
	mode        rtnav.ViewMode
	gridColumns int
	loading     bool
	failed      bool
}

func NewFileRows(dir *files.DirContext, mode rtnav.ViewMode) *FileRows {
	return &FileRows{
		Dir:         dir,
		mode:        mode,
		gridColumns: defaultGridColumns,
	}
}

func (r *FileRows) entries() []files.DirEntry {
	if r.Dir == nil {
		return nil
	}
	return r.Dir.Children()
}

func (r *FileRows) SetViewMode(mode rtnav.ViewMode) {
	r.mode = mode
}

func (r *FileRows) ViewMode() rtnav.ViewMode {
	return r.mode
}

// SetGridColumns returns true when the column count changed.
func (r *FileRows) SetGridColumns(columns int) bool {
	columns = max(columns, 1)
	if columns == r.gridColumns {
		return false
	}
	r.gridColumns = columns
	return true
}

// SetLoading marks that a listing is in flight. It only shows when nothing
// was loaded yet, otherwise the previous listing stays on screen.
func (r *FileRows) SetLoading(loading bool) {
	r.loading = loading
}

// SetFailed marks that the last listing failed. Like loading, it only
// shows when there is no earlier listing to keep on screen.
func (r *FileRows) SetFailed(failed bool) {
	r.failed = failed
}

func (r *FileRows) IsEmpty() bool {
	return len(r.entries()) == 0
}

func (r *FileRows) GetRowCount() int {
	entries := r.entries()
	if len(entries) == 0 {
		if r.mode == rtnav.ViewModeList {
			return 3
		}
		return 2
	}
	if r.mode == rtnav.ViewModeGrid {
		return (len(entries) + r.gridColumns - 1) / r.gridColumns
	}
	return len(entries) + 1
}

func (r *FileRows) GetColumnCount() int {
	if r.mode == rtnav.ViewModeGrid {
		return r.gridColumns
	}
	return listColumnCount
}

// EntryAt returns the entry shown in the given cell.
func (r *FileRows) EntryAt(row, col int) (files.DirEntry, bool) {
	entries := r.entries()
	var i int
	if r.mode == rtnav.ViewModeGrid {
		if col < 0 || col >= r.gridColumns {
			return files.DirEntry{}, false
		}
		i = row*r.gridColumns + col
	} else {
		i = row - 1
	}
	if i < 0 || i >= len(entries) {
		return files.DirEntry{}, false
	}
	return entries[i], true
}

// IndexOf returns the row and column of the entry with the given name.
func (r *FileRows) IndexOf(name string) (row, col int, ok bool) {
	for i, entry := range r.entries() {
		if entry.Name() != name {
			continue
		}
		if r.mode == rtnav.ViewModeGrid {
			return i / r.gridColumns, i % r.gridColumns, true
		}
		return i + 1, 0, true
	}
	return 0, 0, false
}

func (r *FileRows) GetCell(row, col int) *tview.TableCell {
	if r.IsEmpty() {
		return r.getPlaceholderCell(row, col)
	}
	if r.mode == rtnav.ViewModeList && row == 0 {
		return r.getHeaderCell(col)
	}
	entry, ok := r.EntryAt(row, col)
	if !ok {
		if r.mode == rtnav.ViewModeGrid {
			return tview.NewTableCell("").SetSelectable(false).SetExpansion(1)
		}
		return nil
	}
	if r.mode == rtnav.ViewModeGrid {
		return r.getGridCell(entry)
	}
	return r.getListCell(entry, col)
}

func (r *FileRows) getPlaceholderCell(row, col int) *tview.TableCell {
	if col != nameColIndex {
		return nil
	}
	if r.mode == rtnav.ViewModeList {
		if row == 0 {
			return r.getHeaderCell(col)
		}
		row--
	}
	var text string
	switch {
	case r.loading && r.Dir == nil:
		if row == 0 {
			text = "[::i]" + msgLoading + "[::-]"
		}
	case r.failed && r.Dir == nil:
		if row == 0 {
			text = "⚠ " + msgLoadFailed
		}
	case row == 0:
		text = "📂 " + msgNoFiles
	case row == 1:
		text = "[::i]" + msgUploadHint + "[::-]"
	}
	return tview.NewTableCell(text).
		SetTextColor(tcell.ColorGray).
		SetSelectable(false)
}

func (r *FileRows) getHeaderCell(col int) *tview.TableCell {
	if col < 0 || col >= listColumnCount {
		return nil
	}
	cell := tview.NewTableCell(listHeaders[col]).
		SetTextColor(tcell.ColorLightSteelBlue).
		SetAttributes(tcell.AttrBold).
		SetSelectable(false)
	if col == nameColIndex {
		cell.SetExpansion(1)
	}
	if col == sizeColIndex {
		cell.SetAlign(tview.AlignRight)
	}
	return cell
}

func (r *FileRows) getListCell(entry files.DirEntry, col int) *tview.TableCell {
	var cell *tview.TableCell
	switch col {
	case nameColIndex:
		cell = tview.NewTableCell(GetIcon(entry) + " " + tview.Escape(entry.Name())).
			SetExpansion(1)
		if entry.IsDir() {
			cell.SetTextColor(tcell.ColorWhite)
		} else {
			cell.SetTextColor(GetColorByFileExt(entry.Name()))
		}
	case sizeColIndex:
		cell = tview.NewTableCell(SizeText(entry)).
			SetAlign(tview.AlignRight).
			SetTextColor(tcell.ColorLightGray)
	case modifiedColIndex:
		cell = tview.NewTableCell(tview.Escape(entry.Modified())).
			SetTextColor(tcell.ColorDarkGray)
	case typeColIndex:
		cell = tview.NewTableCell(tview.Escape(entry.MimeType())).
			SetTextColor(tcell.ColorDarkGray)
	default:
		return nil
	}
	return cell.SetReference(entry)
}

func (r *FileRows) getGridCell(entry files.DirEntry) *tview.TableCell {
	color := GetColorByFileExt(entry.Name())
	if entry.IsDir() {
		color = tcell.ColorWhite
	}
	return tview.NewTableCell(GetIcon(entry)+" "+tview.Escape(entry.Name())).
		SetTextColor(color).
		SetMaxWidth(gridCellWidth - 1).
		SetExpansion(1).
		SetReference(entry)
}

// SizeText is what the size column shows for entry.
func SizeText(entry files.DirEntry) string {
	if entry.IsDir() {
		return folderSizeText
	}
	if formatted := entry.SizeFormatted(); formatted != "" {
		return formatted
	}
	return fsutils.FormatFileSize(entry.Size())
}
