package remotetug

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const hotkeyColor = "yellow"

type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}

// bottom is the hint line; each item is a clickable region.
type bottom struct {
	*tview.TextView
	menuItems []MenuItem
}

func newBottom(nav *Navigator) *bottom {
	b := &bottom{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
	}
	b.menuItems = getMenuItems(nav)
	b.SetHighlightedFunc(b.highlighted)
	b.render()
	return b
}

func getMenuItems(nav *Navigator) []MenuItem {
	return []MenuItem{
		{Title: "F1 Help", HotKeys: []string{"F1"}, Action: nav.ShowHelp},
		{Title: "F5 Refresh", HotKeys: []string{"F5"}, Action: nav.Refresh},
		{Title: "F8 Delete", HotKeys: []string{"F8"}, Action: nav.RequestDeleteSelected},
		{Title: "View", HotKeys: []string{"V"}, Action: nav.ToggleViewMode},
		{Title: "Upload", HotKeys: []string{"U"}, Action: nav.ShowUpload},
		{Title: "Preview", HotKeys: []string{"P"}, Action: nav.PreviewSelected},
		{Title: "Quit", HotKeys: []string{"Q"}, Action: nav.Quit},
	}
}

func (b *bottom) render() {
	b.SetText(renderMenuItems(b.menuItems))
}

func renderMenuItems(menuItems []MenuItem) string {
	const separator = "┊"
	titles := make([]string, 0, len(menuItems))
	for _, mi := range menuItems {
		title := mi.Title
		for _, key := range mi.HotKeys {
			title = strings.Replace(title, key, fmt.Sprintf("[%s]%s[-]", hotkeyColor, key), 1)
		}
		titles = append(titles, fmt.Sprintf(`["%s"]%s[""]`, mi.HotKeys[0], title))
	}
	return strings.Join(titles, separator)
}

func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	for _, mi := range b.menuItems {
		if mi.HotKeys[0] == region && mi.Action != nil {
			mi.Action()
			return
		}
	}
}
