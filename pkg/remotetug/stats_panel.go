package remotetug

import (
	"fmt"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const defaultSizeText = "0 B"

// statsPanel is the one-line store summary shown above the breadcrumbs.
type statsPanel struct {
	*tview.TextView
	stats  files.Stats
	loaded bool
}

func newStatsPanel() *statsPanel {
	p := &statsPanel{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetTextAlign(tview.AlignRight).
			SetTextColor(tcell.ColorLightGray),
	}
	p.render()
	return p
}

func (p *statsPanel) SetStats(stats files.Stats) {
	p.stats = stats
	p.loaded = true
	p.render()
}

func (p *statsPanel) Stats() (files.Stats, bool) {
	return p.stats, p.loaded
}

func (p *statsPanel) render() {
	p.SetText(statsText(p.stats))
}

func statsText(stats files.Stats) string {
	size := stats.TotalSizeFormatted
	if size == "" {
		size = defaultSizeText
	}
	return fmt.Sprintf("Files: [white]%d[-]  Size: [white]%s[-]  Folders: [white]%d[-] ",
		stats.TotalFiles, tview.Escape(size), stats.TotalFolders)
}
