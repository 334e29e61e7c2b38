package viewers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type MetaTable struct {
	*tview.Table
}

func NewMetaTable() *MetaTable {
	return &MetaTable{Table: tview.NewTable()}
}

// SetMeta renders a title row per group followed by its records.
func (t *MetaTable) SetMeta(meta *Meta) {
	t.Clear()
	if meta == nil {
		return
	}
	row := 0
	for _, group := range meta.Groups {
		title := tview.NewTableCell(group.Title).
			SetTextColor(tcell.ColorLightSkyBlue).
			SetSelectable(false)
		t.SetCell(row, 0, title)
		row++
		for _, record := range group.Records {
			t.SetCell(row, 0, tview.NewTableCell("  "+record.Title).SetTextColor(tcell.ColorGray))
			value := tview.NewTableCell(record.Value)
			if record.ValueAlign == AlignRight {
				value.SetAlign(tview.AlignRight)
			}
			t.SetCell(row, 1, value)
			row++
		}
	}
}
