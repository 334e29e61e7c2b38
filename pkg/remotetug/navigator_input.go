package remotetug

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (nav *Navigator) inputCapture(event *tcell.EventKey) (result *tcell.EventKey) {
	result = event
	nav.guard("key", func() {
		result = nav.handleKey(event)
	})
	return result
}

func (nav *Navigator) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF1:
		nav.ShowHelp()
		return nil
	case tcell.KeyF5, tcell.KeyCtrlR:
		nav.Refresh()
		return nil
	case tcell.KeyTab:
		nav.focusNext()
		return nil
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			switch event.Rune() {
			case 'x', 'X':
				nav.Quit()
				return nil
			}
			return event
		}
		switch event.Rune() {
		case 'v', 'V':
			nav.ToggleViewMode()
			return nil
		case 'u', 'U':
			nav.ShowUpload()
			return nil
		case 'q', 'Q':
			nav.Quit()
			return nil
		}
	}
	return event
}

func (nav *Navigator) focusNext() {
	order := []tview.Primitive{nav.files, nav.preview, nav.breadcrumbs}
	for i, p := range order {
		if p.HasFocus() {
			nav.setAppFocus(order[(i+1)%len(order)])
			return
		}
	}
	nav.setAppFocus(nav.files)
}
